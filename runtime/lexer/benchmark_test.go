package lexer

import (
	"fmt"
	"strings"
	"testing"
)

// generateTypicalSource builds a mid-sized Ovum file out of common
// declarations.
func generateTypicalSource(repeat int) string {
	patterns := []string{
		"#import io",
		"class Point implements Printable {",
		"  val x: Float = 0.0",
		"  var label: String = \"origin\\n\"",
		"  override pure fun norm(): Float {",
		"    return x * x + 1.5e-3 // squared",
		"  }",
		"  /* separator */",
		"  fun sep(): Char = ','",
		"  fun ok(): Bool = x >= 0.0 && label != null ?: false",
		"}",
	}

	var b strings.Builder
	for i := 0; i < repeat; i++ {
		for _, p := range patterns {
			b.WriteString(p)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// BenchmarkLexerCore measures tokenization across syntax complexity levels.
// Lexer creation is excluded.
func BenchmarkLexerCore(b *testing.B) {
	scenarios := map[string]string{
		"simple":     "val x = 5",
		"arithmetic": "count + 1 >= max && timeout <= 30 xor done",
		"literals":   `"text\twith escapes" 'c' 1.5e-10 .25 true`,
		"realistic":  generateTypicalSource(10),
	}

	for name, input := range scenarios {
		b.Run(name, func(b *testing.B) {
			inputBytes := []byte(input)
			l := NewLexer(WithLogger(quietLogger()))

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				l.Init(inputBytes)
				if _, err := l.Tokenize(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkTelemetryModes measures observability overhead
func BenchmarkTelemetryModes(b *testing.B) {
	input := []byte(generateTypicalSource(10))
	modes := map[string][]LexerOpt{
		"off":    nil,
		"basic":  {WithTelemetryBasic()},
		"timing": {WithTelemetryTiming()},
		"debug":  {WithDebugPaths()},
	}

	for name, opts := range modes {
		b.Run(name, func(b *testing.B) {
			l := NewLexer(append(opts, WithLogger(quietLogger()))...)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.Init(input)
				if _, err := l.Tokenize(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkLexerScaling checks that cost grows linearly with input size
func BenchmarkLexerScaling(b *testing.B) {
	for _, repeat := range []int{1, 10, 100} {
		input := []byte(generateTypicalSource(repeat))
		b.Run(fmt.Sprintf("repeat_%d", repeat), func(b *testing.B) {
			l := NewLexer(WithLogger(quietLogger()))
			b.SetBytes(int64(len(input)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.Init(input)
				if _, err := l.Tokenize(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
