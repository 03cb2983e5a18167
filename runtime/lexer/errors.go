package lexer

import (
	"errors"
	"fmt"

	"github.com/ovum-lang/ovum/core/token"
)

// ErrorKind classifies scanning failures
type ErrorKind int

const (
	UnexpectedCharacter ErrorKind = iota
	UnterminatedChar
	UnterminatedString
	UnterminatedBlockComment
	MalformedExponent
	MalformedFloat
	MalformedInteger
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "unexpected character"
	case UnterminatedChar:
		return "unterminated char literal"
	case UnterminatedString:
		return "unterminated string literal"
	case UnterminatedBlockComment:
		return "unterminated block comment"
	case MalformedExponent:
		return "malformed exponent"
	case MalformedFloat:
		return "malformed float literal"
	case MalformedInteger:
		return "malformed integer literal"
	default:
		return "lex error"
	}
}

// Hint returns a short suggestion for fixing the error, or ""
func (k ErrorKind) Hint() string {
	switch k {
	case UnterminatedChar:
		return "A char literal holds exactly one character or escape, e.g. 'a' or '\\n'"
	case UnterminatedString:
		return "Close the string with '\"' on the same line; use \\n for line breaks"
	case UnterminatedBlockComment:
		return "Close the comment with '*/'"
	case MalformedExponent:
		return "An exponent needs at least one digit, e.g. 1e10 or 2.5e-3"
	case MalformedInteger:
		return "Integer literals must fit in a signed 64-bit integer"
	default:
		return ""
	}
}

// LexError is the single terminal error of a failed scan.
// Pos is where the offending token started.
type LexError struct {
	Kind    ErrorKind
	Message string
	Pos     token.Position
	Char    byte   // offending byte for UnexpectedCharacter
	Lexeme  string // raw text scanned before the failure
	Cause   error  // numeric parse failure, if any
}

// Error implements the error interface
func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Unwrap allows error unwrapping
func (e *LexError) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is, or wraps, a LexError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var le *LexError
	return errors.As(err, &le) && le.Kind == kind
}

// fail builds a LexError positioned at the current token start
func (l *Lexer) fail(kind ErrorKind, cause error, format string, args ...interface{}) *LexError {
	err := &LexError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     l.tokenPos(),
		Lexeme:  l.RawLexeme(),
		Cause:   cause,
	}
	if kind == UnexpectedCharacter {
		err.Char = l.Current()
	}
	return err
}
