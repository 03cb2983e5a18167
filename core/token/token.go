// Package token defines the classified, positioned units produced by the
// Ovum lexer.
//
// Tokens are immutable. They are built once by the lexer through the
// constructors in this package and read through accessor methods; Clone
// returns a deep copy including any literal Value.
package token

import (
	"fmt"
	"strings"

	"github.com/ovum-lang/ovum/core/invariant"
	"github.com/ovum-lang/ovum/core/value"
)

// Kind represents the lexical class of a token
type Kind uint8

const (
	IDENT Kind = iota
	KEYWORD
	INT
	FLOAT
	STRING
	CHAR
	BOOL
	OPERATOR
	PUNCT
	NEWLINE
	COMMENT
	EOF
)

// Kinds lists every token kind in declaration order
var Kinds = []Kind{IDENT, KEYWORD, INT, FLOAT, STRING, CHAR, BOOL, OPERATOR, PUNCT, NEWLINE, COMMENT, EOF}

// String returns the kind name used in the token text form
func (k Kind) String() string {
	switch k {
	case IDENT:
		return "IDENT"
	case KEYWORD:
		return "KEYWORD"
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case STRING:
		return "STRING"
	case CHAR:
		return "CHAR"
	case BOOL:
		return "BOOL"
	case OPERATOR:
		return "OPERATOR"
	case PUNCT:
		return "PUNCT"
	case NEWLINE:
		return "NEWLINE"
	case COMMENT:
		return "COMMENT"
	case EOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// ParseKind returns the kind named s (case-insensitive)
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if strings.EqualFold(k.String(), s) {
			return k, true
		}
	}
	return 0, false
}

// IsLiteral reports whether tokens of this kind carry a Value
func (k Kind) IsLiteral() bool {
	return k >= INT && k <= BOOL
}

// ValueKind returns the value kind a literal token kind must carry
func (k Kind) ValueKind() (value.Kind, bool) {
	switch k {
	case INT:
		return value.Int, true
	case FLOAT:
		return value.Float, true
	case STRING:
		return value.String, true
	case CHAR:
		return value.Char, true
	case BOOL:
		return value.Bool, true
	default:
		return 0, false
	}
}

// Position represents a position in the source code
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// String returns line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// NewlineLexeme is the placeholder lexeme of NEWLINE tokens
const NewlineLexeme = `\n`

// Token is a classified, positioned unit of lexical text
type Token struct {
	kind   Kind
	lexeme string
	pos    Position
	val    *value.Value // literal kinds only
}

// Kind returns the token kind
func (t Token) Kind() Kind { return t.kind }

// Lexeme returns the raw source text of the token. NEWLINE tokens return
// NewlineLexeme and EOF returns "".
func (t Token) Lexeme() string { return t.lexeme }

// Pos returns where the token's first byte was consumed
func (t Token) Pos() Position { return t.pos }

// Line returns the 1-based line of the token
func (t Token) Line() int { return t.pos.Line }

// Column returns the 1-based column of the token
func (t Token) Column() int { return t.pos.Column }

// Value returns the decoded literal payload. ok is false for non-literal
// tokens.
func (t Token) Value() (v value.Value, ok bool) {
	if t.val == nil {
		return value.Value{}, false
	}
	return t.val.Clone(), true
}

// Clone returns a deep copy of the token
func (t Token) Clone() Token {
	c := t
	if t.val != nil {
		v := t.val.Clone()
		c.val = &v
	}
	return c
}

// Equal reports whether two tokens have the same kind, lexeme, position
// and value.
func (t Token) Equal(o Token) bool {
	if t.kind != o.kind || t.lexeme != o.lexeme || t.pos != o.pos {
		return false
	}
	if (t.val == nil) != (o.val == nil) {
		return false
	}
	return t.val == nil || t.val.Equal(*o.val)
}

// String renders the diagnostic text form:
//
//	Token(<KIND>, '<lexeme>'[, <decoded-value>], @<line>:<column>)
func (t Token) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Token(%s, '%s'", t.kind, t.lexeme)
	if t.val != nil {
		b.WriteString(", ")
		b.WriteString(t.val.String())
	}
	fmt.Fprintf(&b, ", @%d:%d)", t.pos.Line, t.pos.Column)
	return b.String()
}

// Constructors. Each one fixes the kind so a token can never carry a
// value of the wrong type.

// NewIdent creates an IDENT token
func NewIdent(lexeme string, pos Position) Token {
	return Token{kind: IDENT, lexeme: lexeme, pos: pos}
}

// NewKeyword creates a KEYWORD token
func NewKeyword(lexeme string, pos Position) Token {
	return Token{kind: KEYWORD, lexeme: lexeme, pos: pos}
}

// NewOperator creates an OPERATOR token
func NewOperator(lexeme string, pos Position) Token {
	return Token{kind: OPERATOR, lexeme: lexeme, pos: pos}
}

// NewPunct creates a PUNCT token
func NewPunct(lexeme string, pos Position) Token {
	return Token{kind: PUNCT, lexeme: lexeme, pos: pos}
}

// NewNewline creates a NEWLINE token
func NewNewline(pos Position) Token {
	return Token{kind: NEWLINE, lexeme: NewlineLexeme, pos: pos}
}

// NewComment creates a COMMENT token
func NewComment(lexeme string, pos Position) Token {
	return Token{kind: COMMENT, lexeme: lexeme, pos: pos}
}

// NewEOF creates the end-of-input token
func NewEOF(pos Position) Token {
	return Token{kind: EOF, pos: pos}
}

// NewLiteral creates a literal token. Panics if kind is not a literal kind
// or v does not match it.
func NewLiteral(kind Kind, raw string, v value.Value, pos Position) Token {
	want, ok := kind.ValueKind()
	invariant.Precondition(ok, "kind %s is not a literal kind", kind)
	invariant.Precondition(v.Kind() == want, "%s token cannot carry a %s value", kind, v.Kind())

	c := v.Clone()
	return Token{kind: kind, lexeme: raw, pos: pos, val: &c}
}

// NewInt creates an INT literal token
func NewInt(raw string, v int64, pos Position) Token {
	return NewLiteral(INT, raw, value.NewInt(v), pos)
}

// NewFloat creates a FLOAT literal token from an already parsed value
func NewFloat(raw string, v value.Value, pos Position) Token {
	return NewLiteral(FLOAT, raw, v, pos)
}

// NewString creates a STRING literal token; raw keeps quotes and escapes,
// decoded is the resolved text.
func NewString(raw, decoded string, pos Position) Token {
	return NewLiteral(STRING, raw, value.NewString(decoded), pos)
}

// NewChar creates a CHAR literal token
func NewChar(raw string, c byte, pos Position) Token {
	return NewLiteral(CHAR, raw, value.NewChar(c), pos)
}

// NewBool creates a BOOL literal token
func NewBool(raw string, b bool, pos Position) Token {
	return NewLiteral(BOOL, raw, value.NewBool(b), pos)
}
