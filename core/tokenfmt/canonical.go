// Package tokenfmt serializes token streams. The binary form is canonical
// CBOR behind a small preamble and is hashed with BLAKE2b-256; JSON and
// YAML carry the same canonical records for inspection and tooling.
package tokenfmt

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/ovum-lang/ovum/core/token"
	"github.com/ovum-lang/ovum/core/value"
)

// CanonicalToken is the order-preserving record form of one token
type CanonicalToken struct {
	Kind   string          `cbor:"1,keyasint" json:"kind" yaml:"kind"`
	Lexeme string          `cbor:"2,keyasint" json:"lexeme" yaml:"lexeme"`
	Line   int             `cbor:"3,keyasint" json:"line" yaml:"line"`
	Column int             `cbor:"4,keyasint" json:"column" yaml:"column"`
	Offset int             `cbor:"5,keyasint" json:"offset" yaml:"offset"`
	Value  *CanonicalValue `cbor:"6,keyasint,omitempty" json:"value,omitempty" yaml:"value,omitempty"`
}

// CanonicalValue holds a literal payload. Exactly one field is set and it
// matches the token kind. Floats are stored as decimal text so no
// precision is lost.
type CanonicalValue struct {
	Int    *int64  `cbor:"1,keyasint,omitempty" json:"int,omitempty" yaml:"int,omitempty"`
	Float  *string `cbor:"2,keyasint,omitempty" json:"float,omitempty" yaml:"float,omitempty"`
	String *string `cbor:"3,keyasint,omitempty" json:"string,omitempty" yaml:"string,omitempty"`
	Char   *uint8  `cbor:"4,keyasint,omitempty" json:"char,omitempty" yaml:"char,omitempty"`
	Bool   *bool   `cbor:"5,keyasint,omitempty" json:"bool,omitempty" yaml:"bool,omitempty"`
}

// FromTokens converts tokens to canonical records, preserving order
func FromTokens(tokens []token.Token) []CanonicalToken {
	out := make([]CanonicalToken, len(tokens))
	for i, tok := range tokens {
		pos := tok.Pos()
		out[i] = CanonicalToken{
			Kind:   tok.Kind().String(),
			Lexeme: tok.Lexeme(),
			Line:   pos.Line,
			Column: pos.Column,
			Offset: pos.Offset,
		}
		if v, ok := tok.Value(); ok {
			out[i].Value = canonicalValue(v)
		}
	}
	return out
}

func canonicalValue(v value.Value) *CanonicalValue {
	cv := &CanonicalValue{}
	switch v.Kind() {
	case value.Int:
		n := v.Int()
		cv.Int = &n
	case value.Float:
		s := v.Float().String()
		cv.Float = &s
	case value.String:
		s := v.Str()
		cv.String = &s
	case value.Char:
		c := v.Char()
		cv.Char = &c
	case value.Bool:
		b := v.Bool()
		cv.Bool = &b
	}
	return cv
}

// ToTokens rebuilds tokens from canonical records. The records must form a
// complete stream: valid kinds and positions, literal payloads matching
// their kinds, and exactly one EOF at the end.
func ToTokens(records []CanonicalToken) ([]token.Token, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("empty token stream: missing EOF")
	}

	out := make([]token.Token, len(records))
	for i, rec := range records {
		tok, err := rec.toToken()
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		if tok.Kind() == token.EOF && i != len(records)-1 {
			return nil, fmt.Errorf("token %d: EOF before end of stream", i)
		}
		out[i] = tok
	}

	if last := out[len(out)-1]; last.Kind() != token.EOF {
		return nil, fmt.Errorf("stream ends with %s, not EOF", last.Kind())
	}
	return out, nil
}

func (rec CanonicalToken) toToken() (token.Token, error) {
	kind, ok := token.ParseKind(rec.Kind)
	if !ok {
		return token.Token{}, fmt.Errorf("unknown kind %q", rec.Kind)
	}
	if rec.Line < 1 || rec.Column < 1 || rec.Offset < 0 {
		return token.Token{}, fmt.Errorf("invalid position %d:%d (offset %d)", rec.Line, rec.Column, rec.Offset)
	}
	pos := token.Position{Line: rec.Line, Column: rec.Column, Offset: rec.Offset}

	if !kind.IsLiteral() {
		if rec.Value != nil {
			return token.Token{}, fmt.Errorf("%s token carries a value", kind)
		}
		return nonLiteral(kind, rec.Lexeme, pos)
	}

	if rec.Value == nil {
		return token.Token{}, fmt.Errorf("%s token has no value", kind)
	}
	return rec.Value.literal(kind, rec.Lexeme, pos)
}

func nonLiteral(kind token.Kind, lexeme string, pos token.Position) (token.Token, error) {
	switch kind {
	case token.IDENT:
		return token.NewIdent(lexeme, pos), nil
	case token.KEYWORD:
		return token.NewKeyword(lexeme, pos), nil
	case token.OPERATOR:
		return token.NewOperator(lexeme, pos), nil
	case token.PUNCT:
		return token.NewPunct(lexeme, pos), nil
	case token.COMMENT:
		return token.NewComment(lexeme, pos), nil
	case token.NEWLINE:
		if lexeme != token.NewlineLexeme {
			return token.Token{}, fmt.Errorf("NEWLINE lexeme %q, want %q", lexeme, token.NewlineLexeme)
		}
		return token.NewNewline(pos), nil
	case token.EOF:
		if lexeme != "" {
			return token.Token{}, fmt.Errorf("EOF lexeme %q, want empty", lexeme)
		}
		return token.NewEOF(pos), nil
	default:
		return token.Token{}, fmt.Errorf("unhandled kind %s", kind)
	}
}

func (cv *CanonicalValue) set() int {
	n := 0
	for _, isSet := range []bool{cv.Int != nil, cv.Float != nil, cv.String != nil, cv.Char != nil, cv.Bool != nil} {
		if isSet {
			n++
		}
	}
	return n
}

func (cv *CanonicalValue) literal(kind token.Kind, lexeme string, pos token.Position) (token.Token, error) {
	if cv.set() != 1 {
		return token.Token{}, fmt.Errorf("%s value must set exactly one field", kind)
	}

	switch {
	case kind == token.INT && cv.Int != nil:
		return token.NewInt(lexeme, *cv.Int, pos), nil
	case kind == token.FLOAT && cv.Float != nil:
		v, err := value.ParseFloat(*cv.Float)
		if err != nil {
			return token.Token{}, err
		}
		return token.NewFloat(lexeme, v, pos), nil
	case kind == token.STRING && cv.String != nil:
		return token.NewString(lexeme, *cv.String, pos), nil
	case kind == token.CHAR && cv.Char != nil:
		return token.NewChar(lexeme, *cv.Char, pos), nil
	case kind == token.BOOL && cv.Bool != nil:
		return token.NewBool(lexeme, *cv.Bool, pos), nil
	default:
		return token.Token{}, fmt.Errorf("%s token has a value of another kind", kind)
	}
}

// MarshalBody produces the deterministic CBOR body for tokens
func MarshalBody(tokens []token.Token) ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}

	data, err := encMode.Marshal(FromTokens(tokens))
	if err != nil {
		return nil, fmt.Errorf("CBOR encoding failed: %w", err)
	}
	return data, nil
}

// UnmarshalBody decodes a CBOR body produced by MarshalBody. Lexemes and
// strings are raw source bytes and need not be valid UTF-8.
func UnmarshalBody(data []byte) ([]token.Token, error) {
	decMode, err := cbor.DecOptions{
		UTF8:             cbor.UTF8DecodeInvalid,
		MaxArrayElements: maxTokens,
	}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR decoder: %w", err)
	}

	var records []CanonicalToken
	if err := decMode.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("CBOR decoding failed: %w", err)
	}
	return ToTokens(records)
}
