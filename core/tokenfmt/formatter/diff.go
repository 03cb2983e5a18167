package formatter

import (
	"fmt"
	"strings"

	"github.com/ovum-lang/ovum/core/token"
)

// DiffResult represents the differences between two token streams.
type DiffResult struct {
	Added    []TokenDiff // Tokens only in actual
	Removed  []TokenDiff // Tokens only in expected
	Modified []TokenDiff // Tokens at the same index that changed
}

// TokenDiff represents a difference at one stream index.
type TokenDiff struct {
	Index    int    // 0-based stream index
	Expected string // Formatted expected token (empty for added tokens)
	Actual   string // Formatted actual token (empty for removed tokens)
}

// Empty reports whether the streams were identical
func (r *DiffResult) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Modified) == 0
}

// Diff compares two streams index by index.
func Diff(expected, actual []token.Token) *DiffResult {
	result := &DiffResult{}

	n := max(len(expected), len(actual))
	for i := 0; i < n; i++ {
		switch {
		case i >= len(actual):
			result.Removed = append(result.Removed, TokenDiff{Index: i, Expected: FormatToken(expected[i])})
		case i >= len(expected):
			result.Added = append(result.Added, TokenDiff{Index: i, Actual: FormatToken(actual[i])})
		case !expected[i].Equal(actual[i]):
			result.Modified = append(result.Modified, TokenDiff{
				Index:    i,
				Expected: FormatToken(expected[i]),
				Actual:   FormatToken(actual[i]),
			})
		}
	}

	return result
}

// FormatDiff returns a human-readable diff display with optional colour.
func FormatDiff(result *DiffResult, useColor bool) string {
	var b strings.Builder

	red, green, yellow, reset := "", "", "", ""
	if useColor {
		red, green, yellow, reset = ColorRed, ColorGreen, ColorYellow, ColorReset
	}

	if len(result.Modified) > 0 {
		fmt.Fprintf(&b, "%sModified tokens:%s\n", yellow, reset)
		for _, diff := range result.Modified {
			fmt.Fprintf(&b, "  token %d:\n", diff.Index)
			fmt.Fprintf(&b, "    %s- %s%s\n", red, diff.Expected, reset)
			fmt.Fprintf(&b, "    %s+ %s%s\n", green, diff.Actual, reset)
		}
		fmt.Fprintln(&b)
	}

	if len(result.Added) > 0 {
		fmt.Fprintf(&b, "%sAdded tokens:%s\n", green, reset)
		for _, diff := range result.Added {
			fmt.Fprintf(&b, "  %s+ token %d: %s%s\n", green, diff.Index, diff.Actual, reset)
		}
		fmt.Fprintln(&b)
	}

	if len(result.Removed) > 0 {
		fmt.Fprintf(&b, "%sRemoved tokens:%s\n", red, reset)
		for _, diff := range result.Removed {
			fmt.Fprintf(&b, "  %s- token %d: %s%s\n", red, diff.Index, diff.Expected, reset)
		}
		fmt.Fprintln(&b)
	}

	if result.Empty() {
		fmt.Fprintln(&b, "No differences found.")
	}

	return b.String()
}
