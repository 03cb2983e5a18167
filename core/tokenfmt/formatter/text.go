// Package formatter provides human-readable formatting for token streams.
// This includes the listing, source snippets, and stream diffs.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ovum-lang/ovum/core/token"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// Colorize wraps text in ANSI color codes if color is enabled
func Colorize(text, color string, useColor bool) string {
	if !useColor || text == "" || color == "" {
		return text
	}
	return color + text + ColorReset
}

// Format returns a listing with one token per line:
//
//	1:1     KEYWORD   fun
//	1:5     IDENT     main
//	2:10    INT       42          = 42
func Format(tokens []token.Token, useColor bool) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(formatLine(tok, useColor))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatLine(tok token.Token, useColor bool) string {
	pos := fmt.Sprintf("%-7s", tok.Pos().String())
	kind := fmt.Sprintf("%-9s", tok.Kind().String())
	line := Colorize(pos, ColorGray, useColor) + " " + Colorize(kind, kindColor(tok.Kind()), useColor) + " " + displayLexeme(tok)

	if v, ok := tok.Value(); ok {
		line = fmt.Sprintf("%-40s %s", line, Colorize("= "+v.String(), ColorGray, useColor))
	}
	return strings.TrimRight(line, " ")
}

// FormatToken returns a single-line description used in diffs
func FormatToken(tok token.Token) string {
	s := fmt.Sprintf("%s %s %s", tok.Pos(), tok.Kind(), displayLexeme(tok))
	if v, ok := tok.Value(); ok {
		s += " = " + v.String()
	}
	return s
}

// displayLexeme keeps the listing on one line per token
func displayLexeme(tok token.Token) string {
	lexeme := tok.Lexeme()
	switch tok.Kind() {
	case token.NEWLINE, token.EOF:
		return lexeme
	}
	if strings.ContainsAny(lexeme, "\n\r\t") || !isPrintable(lexeme) {
		return strconv.Quote(lexeme)
	}
	return lexeme
}

func isPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] >= 0x7f {
			return false
		}
	}
	return true
}

func kindColor(k token.Kind) string {
	switch k {
	case token.KEYWORD:
		return ColorBlue
	case token.INT, token.FLOAT, token.STRING, token.CHAR, token.BOOL:
		return ColorGreen
	case token.OPERATOR, token.PUNCT:
		return ColorYellow
	case token.COMMENT:
		return ColorGray
	case token.IDENT:
		return ColorCyan
	default:
		return ""
	}
}

// Summary counts tokens per kind, in kind declaration order:
//
//	IDENT 3, KEYWORD 2, INT 1, EOF 1
func Summary(tokens []token.Token) string {
	counts := make(map[token.Kind]int)
	for _, tok := range tokens {
		counts[tok.Kind()]++
	}

	var parts []string
	for _, k := range token.Kinds {
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", k, n))
		}
	}
	return strings.Join(parts, ", ")
}
