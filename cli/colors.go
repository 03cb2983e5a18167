package main

import (
	"os"

	"github.com/ovum-lang/ovum/core/tokenfmt/formatter"
)

// Re-export color constants from formatter package for convenience
const (
	ColorReset  = formatter.ColorReset
	ColorRed    = formatter.ColorRed
	ColorGreen  = formatter.ColorGreen
	ColorYellow = formatter.ColorYellow
	ColorBlue   = formatter.ColorBlue
	ColorCyan   = formatter.ColorCyan
	ColorGray   = formatter.ColorGray
)

// Colorize wraps text in ANSI color codes if color is enabled
func Colorize(text, color string, useColor bool) string {
	return formatter.Colorize(text, color, useColor)
}

// ShouldUseColor determines if color output should be used.
// Respects --no-color and the NO_COLOR environment variable.
func ShouldUseColor(noColorFlag bool) bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
