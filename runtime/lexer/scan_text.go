package lexer

import (
	"github.com/ovum-lang/ovum/core/token"
)

// scanWhitespace skips spaces, tabs and carriage returns. No token.
func scanWhitespace(l *Lexer) (token.Token, bool, error) {
	l.ConsumeWhile(whitespaceByte)
	return token.Token{}, false, nil
}

// scanNewline emits one NEWLINE per '\n'; runs are not coalesced
func scanNewline(l *Lexer) (token.Token, bool, error) {
	return token.NewNewline(l.tokenPos()), true, nil
}

// scanIdentifier reads [a-zA-Z_][a-zA-Z0-9_]* and classifies it as a
// keyword, a BOOL literal, the xor operator or an identifier.
func scanIdentifier(l *Lexer) (token.Token, bool, error) {
	l.ConsumeWhile(identPartByte)
	text := l.RawLexeme()
	pos := l.tokenPos()

	switch {
	case text == "true" || text == "false":
		return token.NewBool(text, text == "true", pos), true, nil
	case IsKeyword(text):
		return token.NewKeyword(text, pos), true, nil
	case text == xorWord:
		return token.NewOperator(text, pos), true, nil
	default:
		return token.NewIdent(text, pos), true, nil
	}
}

// scanDirective reads '#' followed by a word. Only directive words in the
// keyword set are accepted; they lex as keywords and are never expanded.
func scanDirective(l *Lexer) (token.Token, bool, error) {
	if next := l.Peek(0); next >= 128 || !isLetter[next] {
		return token.Token{}, false, l.fail(UnexpectedCharacter, nil, "unexpected character '#'")
	}

	l.ConsumeWhile(identPartByte)
	text := l.RawLexeme()
	if !IsKeyword(text) {
		err := l.fail(UnexpectedCharacter, nil, "unknown directive %q", text)
		err.Char = '#'
		return token.Token{}, false, err
	}
	return token.NewKeyword(text, l.tokenPos()), true, nil
}

// scanString reads a double-quoted literal. The lexeme keeps quotes and
// escapes; the value holds the decoded text.
func scanString(l *Lexer) (token.Token, bool, error) {
	var decoded []byte

	for {
		if l.IsAtEnd() {
			return token.Token{}, false, l.fail(UnterminatedString, nil, "unterminated string literal")
		}

		ch := l.Advance()
		switch ch {
		case '"':
			return token.NewString(l.RawLexeme(), string(decoded), l.tokenPos()), true, nil
		case '\n':
			return token.Token{}, false, l.fail(UnterminatedString, nil, "unterminated string literal (newline inside)")
		case '\\':
			if l.IsAtEnd() {
				return token.Token{}, false, l.fail(UnterminatedString, nil, "unterminated string literal")
			}
			decoded = append(decoded, decodeStringEscape(l.Advance()))
		default:
			decoded = append(decoded, ch)
		}
	}
}

func decodeStringEscape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		// \\ and \" decode to themselves, as does anything unknown
		return ch
	}
}

// scanChar reads exactly one byte or one escape between single quotes
func scanChar(l *Lexer) (token.Token, bool, error) {
	if l.IsAtEnd() {
		return token.Token{}, false, l.fail(UnterminatedChar, nil, "unterminated char literal")
	}

	var ch byte
	if l.Peek(0) == '\\' {
		l.Advance()
		if l.IsAtEnd() {
			return token.Token{}, false, l.fail(UnterminatedChar, nil, "unterminated char literal")
		}
		ch = decodeCharEscape(l.Advance())
	} else {
		ch = l.Advance()
	}

	if l.IsAtEnd() || l.Peek(0) != '\'' {
		return token.Token{}, false, l.fail(UnterminatedChar, nil, "unterminated char literal")
	}
	l.Advance()

	return token.NewChar(l.RawLexeme(), ch, l.tokenPos()), true, nil
}

func decodeCharEscape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	default:
		// \\ and \' decode to themselves, as does anything unknown
		return ch
	}
}
