package lexer

import (
	"strconv"

	"github.com/ovum-lang/ovum/core/token"
	"github.com/ovum-lang/ovum/core/value"
)

// scanNumber handles a digit-led literal:
//
//	123        INT
//	1.5        FLOAT (the dot must be followed by a digit)
//	1.5e-3     FLOAT
//	1e10       FLOAT (exponent without fraction)
//	1.         INT 1; the dot is left for the next token
func scanNumber(l *Lexer) (token.Token, bool, error) {
	if l.debugLevel > DebugOff {
		l.recordDebugEvent("enter_scanNumber", "digit-led literal")
	}

	// Un-consume the leading digit and read the whole run in one go
	l.RetreatOne()
	l.ConsumeWhile(digitByte)

	if l.Peek(0) == '.' && digitByte(l.Peek(1)) {
		l.Advance() // '.'
		l.ConsumeWhile(digitByte)
		if err := scanExponent(l); err != nil {
			return token.Token{}, false, err
		}
		return floatToken(l)
	}

	if isExponentMarker(l.Peek(0)) {
		if err := scanExponent(l); err != nil {
			return token.Token{}, false, err
		}
		return floatToken(l)
	}

	raw := l.RawLexeme()
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return token.Token{}, false, l.fail(MalformedInteger, err, "malformed integer literal: %s", raw)
	}
	return token.NewInt(raw, n, l.tokenPos()), true, nil
}

// scanDot owns '.': a following digit makes it a float such as .5 or
// .5e-3, anything else makes it an operator.
func scanDot(l *Lexer) (token.Token, bool, error) {
	if !digitByte(l.Peek(0)) {
		return scanOperator(l)
	}

	if l.debugLevel > DebugOff {
		l.recordDebugEvent("enter_scanNumber", "dot-led literal")
	}

	l.ConsumeWhile(digitByte)
	if err := scanExponent(l); err != nil {
		return token.Token{}, false, err
	}
	return floatToken(l)
}

func isExponentMarker(ch byte) bool {
	return ch == 'e' || ch == 'E'
}

// scanExponent consumes an optional (e|E)[+-]?digit+ suffix. A marker
// without at least one digit after the optional sign is an error.
func scanExponent(l *Lexer) error {
	if !isExponentMarker(l.Peek(0)) {
		return nil
	}
	l.Advance() // e or E

	if sign := l.Peek(0); sign == '+' || sign == '-' {
		l.Advance()
	}

	if !digitByte(l.Peek(0)) {
		return l.fail(MalformedExponent, nil, "malformed exponent in %s", l.RawLexeme())
	}
	l.ConsumeWhile(digitByte)
	return nil
}

func floatToken(l *Lexer) (token.Token, bool, error) {
	raw := l.RawLexeme()
	v, err := value.ParseFloat(raw)
	if err != nil {
		return token.Token{}, false, l.fail(MalformedFloat, err, "malformed float literal: %s", raw)
	}
	return token.NewFloat(raw, v, l.tokenPos()), true, nil
}
