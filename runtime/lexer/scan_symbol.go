package lexer

import (
	"github.com/ovum-lang/ovum/core/token"
)

// scanOperator emits the operator that starts with Current. One byte of
// lookahead: if the pair is a multi-op it is consumed as one token.
func scanOperator(l *Lexer) (token.Token, bool, error) {
	if next := l.Peek(0); next != 0 && isMultiOpPair(l.Current(), next) {
		l.Advance()
	}
	return token.NewOperator(l.RawLexeme(), l.tokenPos()), true, nil
}

// scanPunct emits a single-character punctuation token
func scanPunct(l *Lexer) (token.Token, bool, error) {
	return token.NewPunct(l.RawLexeme(), l.tokenPos()), true, nil
}

// scanSlash separates line comments, block comments and division
func scanSlash(l *Lexer) (token.Token, bool, error) {
	switch l.Peek(0) {
	case '/':
		// Stop before the newline; it is its own token
		for !l.IsAtEnd() && l.Peek(0) != '\n' {
			l.Advance()
		}
		return commentToken(l)

	case '*':
		l.Advance() // '*'
		for {
			if l.IsAtEnd() {
				return token.Token{}, false, l.fail(UnterminatedBlockComment, nil, "unterminated block comment")
			}
			if l.Advance() == '*' && l.Peek(0) == '/' {
				l.Advance()
				return commentToken(l)
			}
		}

	default:
		return scanOperator(l)
	}
}

// commentToken emits the scanned comment only when comments are retained
func commentToken(l *Lexer) (token.Token, bool, error) {
	if !l.keepComments {
		return token.Token{}, false, nil
	}
	return token.NewComment(l.RawLexeme(), l.tokenPos()), true, nil
}

// scanDefault rejects any byte without a strategy
func scanDefault(l *Lexer) (token.Token, bool, error) {
	ch := l.Current()
	if ch < 0x20 || ch >= 0x7f {
		return token.Token{}, false, l.fail(UnexpectedCharacter, nil, "unexpected byte 0x%02x", ch)
	}
	return token.Token{}, false, l.fail(UnexpectedCharacter, nil, "unexpected character %q", ch)
}
