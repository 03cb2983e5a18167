// Package value defines the decoded payloads carried by literal tokens.
//
// A Value is a closed variant: exactly one of Int, Float, String, Char or
// Bool. The zero Value is Int(0). Values are immutable; Float payloads are
// copied on the way in and on the way out so no caller can alias them.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/ovum-lang/ovum/core/invariant"
)

// Kind identifies which payload a Value carries
type Kind uint8

const (
	Int Kind = iota
	Float
	String
	Char
	Bool
)

// String returns the type name of the kind
func (k Kind) String() string {
	switch k {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case Char:
		return "Char"
	case Bool:
		return "Bool"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a decoded literal payload
type Value struct {
	kind Kind
	i    int64
	f    *apd.Decimal // set only for Float
	s    string
	c    byte
	b    bool
}

// NewInt creates an Int value
func NewInt(v int64) Value {
	return Value{kind: Int, i: v}
}

// NewFloat creates a Float value holding a copy of d
func NewFloat(d *apd.Decimal) Value {
	invariant.NotNil(d, "decimal")
	return Value{kind: Float, f: new(apd.Decimal).Set(d)}
}

// ParseFloat parses decimal floating-point text such as "1.5", ".5" or
// "2.5e-3" into a Float value.
func ParseFloat(text string) (Value, error) {
	d, _, err := apd.NewFromString(text)
	if err != nil {
		return Value{}, fmt.Errorf("parse float %q: %w", text, err)
	}
	if d.Form != apd.Finite {
		return Value{}, fmt.Errorf("parse float %q: not a finite number", text)
	}
	return Value{kind: Float, f: d}, nil
}

// NewString creates a String value from decoded text
func NewString(s string) Value {
	return Value{kind: String, s: s}
}

// NewChar creates a Char value from a single decoded byte
func NewChar(c byte) Value {
	return Value{kind: Char, c: c}
}

// NewBool creates a Bool value
func NewBool(b bool) Value {
	return Value{kind: Bool, b: b}
}

// Kind returns the payload kind
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the Int payload.
// Panics if v is not an Int.
func (v Value) Int() int64 {
	v.expect(Int)
	return v.i
}

// Float returns a copy of the Float payload.
// Panics if v is not a Float.
func (v Value) Float() *apd.Decimal {
	v.expect(Float)
	return new(apd.Decimal).Set(v.f)
}

// Float64 returns the Float payload rounded to float64
func (v Value) Float64() (float64, error) {
	v.expect(Float)
	return v.f.Float64()
}

// Str returns the String payload.
// Panics if v is not a String.
func (v Value) Str() string {
	v.expect(String)
	return v.s
}

// Char returns the Char payload.
// Panics if v is not a Char.
func (v Value) Char() byte {
	v.expect(Char)
	return v.c
}

// Bool returns the Bool payload.
// Panics if v is not a Bool.
func (v Value) Bool() bool {
	v.expect(Bool)
	return v.b
}

func (v Value) expect(k Kind) {
	invariant.Precondition(v.kind == k, "value is %s, not %s", v.kind, k)
}

// Clone returns an independent copy of v
func (v Value) Clone() Value {
	c := v
	if v.f != nil {
		c.f = new(apd.Decimal).Set(v.f)
	}
	return c
}

// Equal reports whether v and o have the same kind and payload.
// Floats compare numerically, so 1.50 equals 1.5.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Int:
		return v.i == o.i
	case Float:
		return v.f.Cmp(o.f) == 0
	case String:
		return v.s == o.s
	case Char:
		return v.c == o.c
	case Bool:
		return v.b == o.b
	default:
		return false
	}
}

// String returns the canonical text form used in diagnostics:
// 42, 1.5E+10, "decoded text", 'c', true.
func (v Value) String() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return v.f.String()
	case String:
		return strconv.Quote(v.s)
	case Char:
		return strconv.QuoteRune(rune(v.c))
	case Bool:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}

// Literal renders v as Ovum source text that lexes back to an equal value
// of the same kind.
func (v Value) Literal() string {
	switch v.kind {
	case Float:
		text := v.f.String()
		if !strings.ContainsAny(text, ".eE") {
			// "1" would lex as an Int
			text += ".0"
		}
		return text
	case String:
		return quoteString(v.s)
	case Char:
		return quoteChar(v.c)
	default:
		return v.String()
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// quoteChar only escapes what char literals decode; CR has no char escape
// and is written raw.
func quoteChar(c byte) string {
	switch c {
	case '\n':
		return `'\n'`
	case '\t':
		return `'\t'`
	case '\\':
		return `'\\'`
	case '\'':
		return `'\''`
	default:
		return "'" + string([]byte{c}) + "'"
	}
}
