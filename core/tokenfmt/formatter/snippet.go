package formatter

import (
	"fmt"
	"strings"

	"github.com/ovum-lang/ovum/core/token"
)

// Snippet renders the source line at pos with a caret under the column,
// in Rust/Clang style:
//
//	 --> main.ov:2:3
//	  |
//	2 |   @
//	  |   ^
//
// name may be empty. Returns "" when pos is outside source.
func Snippet(source, name string, pos token.Position, useColor bool) string {
	if pos.Line < 1 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}
	lineContent := strings.TrimRight(lines[pos.Line-1], "\r")

	location := fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	if name != "" {
		location = name + ":" + location
	}

	gutter := len(fmt.Sprint(pos.Line))
	pad := strings.Repeat(" ", gutter)

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s %s\n", pad, Colorize("-->", ColorBlue, useColor), location)
	fmt.Fprintf(&b, "%s %s\n", pad, Colorize("|", ColorBlue, useColor))
	fmt.Fprintf(&b, "%s %s %s\n", Colorize(fmt.Sprint(pos.Line), ColorBlue, useColor), Colorize("|", ColorBlue, useColor), lineContent)
	fmt.Fprintf(&b, "%s %s", pad, Colorize("|", ColorBlue, useColor))
	if pos.Column > 0 && pos.Column <= len(lineContent)+1 {
		b.WriteString(" " + caretIndent(lineContent, pos.Column-1) + Colorize("^", ColorRed, useColor))
	}
	b.WriteByte('\n')

	return b.String()
}

// caretIndent pads to n bytes, keeping tabs so the caret lines up
func caretIndent(line string, n int) string {
	var b strings.Builder
	for i := 0; i < n && i < len(line); i++ {
		if line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
