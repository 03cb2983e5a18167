package lexer

import (
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"

	"github.com/ovum-lang/ovum/core/token"
	"github.com/ovum-lang/ovum/core/value"
)

func mustFloat(t *testing.T, text string) value.Value {
	t.Helper()
	v, err := value.ParseFloat(text)
	if err != nil {
		t.Fatalf("ParseFloat(%q): %v", text, err)
	}
	return v
}

// Rendering a literal value as source and lexing it again yields a single
// literal token of the same kind with an equal value.
func TestLiteralRoundTrip(t *testing.T) {
	values := []value.Value{
		value.NewInt(0),
		value.NewInt(42),
		value.NewInt(9223372036854775807),
		mustFloat(t, "1.5"),
		mustFloat(t, "0.001"),
		mustFloat(t, "1e10"),
		mustFloat(t, "2.5e-12"),
		mustFloat(t, "3"),
		value.NewFloat(apd.New(7, 0)),
		value.NewString(""),
		value.NewString("plain"),
		value.NewString("line\nbreak\ttab\rcr"),
		value.NewString(`quote " and back \ slash`),
		value.NewString("bytes \xc3\xa9"),
		value.NewChar('a'),
		value.NewChar('\n'),
		value.NewChar('\t'),
		value.NewChar('\''),
		value.NewChar('\\'),
		value.NewChar('"'),
		value.NewChar(' '),
		value.NewBool(true),
		value.NewBool(false),
	}

	for _, v := range values {
		src := v.Literal()
		t.Run(src, func(t *testing.T) {
			tokens, err := Tokenize(src, false)
			if err != nil {
				t.Fatalf("lex %q: %v", src, err)
			}
			if len(tokens) != 2 {
				t.Fatalf("lex %q: expected one literal, got %v", src, tokens)
			}

			got, ok := tokens[0].Value()
			if !ok {
				t.Fatalf("lex %q: %s has no value", src, tokens[0])
			}
			if !got.Equal(v) {
				t.Errorf("lex %q: got %s, want %s", src, got, v)
			}

			wantKind, _ := tokens[0].Kind().ValueKind()
			if wantKind != v.Kind() {
				t.Errorf("lex %q: token kind %s carries %s", src, tokens[0].Kind(), v.Kind())
			}
		})
	}
}

// Literal tokens always carry a value of the matching kind
func TestLiteralKindsMatchValues(t *testing.T) {
	tokens, err := Tokenize(`1 2.5 "s" 'c' true .5 1e3 false`, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, tok := range tokens {
		v, ok := tok.Value()
		if tok.Kind().IsLiteral() != ok {
			t.Fatalf("%s: literal=%v but has value=%v", tok, tok.Kind().IsLiteral(), ok)
		}
		if !ok {
			continue
		}
		want, _ := tok.Kind().ValueKind()
		if v.Kind() != want {
			t.Errorf("%s: value kind %s, want %s", tok, v.Kind(), want)
		}
	}
}

// Concatenating the lexemes of every non-newline token, with the dropped
// whitespace put back, reproduces the input.
func TestLexemesCoverInput(t *testing.T) {
	input := "fun f(a: Int) {\n  return a*2 + .5 // done\n}\n"
	tokens, err := Tokenize(input, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buf := []byte(strings.Repeat(" ", len(input)))
	for _, tok := range tokens {
		lexeme := tok.Lexeme()
		if tok.Kind() == token.NEWLINE {
			lexeme = "\n"
		}
		copy(buf[tok.Pos().Offset:], lexeme)
	}

	if string(buf) != input {
		t.Errorf("rebuilt %q, want %q", buf, input)
	}
}

func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"",
		"fun main() {\n  return 42\n}",
		"x ?: y?.z :: w := 1.5e-3",
		`"str\"ing" 'c' '\n'`,
		"/* block */ // line\n",
		"1..2 .5 1. 1e",
		"#import io",
		"@$\x00\xff",
		`"open`,
		"/* open",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tokens, err := Tokenize(input, true)
		if err != nil {
			if tokens != nil {
				t.Fatalf("error with partial tokens: %v", err)
			}
			if _, ok := err.(*LexError); !ok {
				t.Fatalf("error is %T, not *LexError", err)
			}
			return
		}

		if len(tokens) == 0 {
			t.Fatal("no tokens")
		}
		last := tokens[len(tokens)-1]
		if last.Kind() != token.EOF || last.Pos().Offset != len(input) {
			t.Fatalf("bad trailing token %s", last)
		}
		for _, tok := range tokens[:len(tokens)-1] {
			if tok.Kind() == token.EOF {
				t.Fatalf("EOF before end: %v", tokens)
			}
			if tok.Kind() != token.NEWLINE && !strings.HasPrefix(input[tok.Pos().Offset:], tok.Lexeme()) {
				t.Fatalf("%s does not match source at offset %d", tok, tok.Pos().Offset)
			}
		}
	})
}
