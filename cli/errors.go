package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ovum-lang/ovum/core/tokenfmt/formatter"
	"github.com/ovum-lang/ovum/runtime/lexer"
)

// CLIError represents a formatted CLI error with context
type CLIError struct {
	Type    string // "usage", "input"
	Message string
	Details string // Additional context
	Hint    string // How to fix it
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Details != "" {
		b.WriteString("\n")
		b.WriteString(e.Details)
	}
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// SourceError is a lexer failure together with the source it came from
type SourceError struct {
	Name   string
	Source string
	Err    *lexer.LexError
}

func (e *SourceError) Error() string {
	return e.Name + ":" + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// FormatError formats an error for CLI output with colors
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}

	var srcErr *SourceError
	var cliErr *CLIError
	switch {
	case errors.As(err, &srcErr):
		formatSourceError(w, srcErr, useColor)
	case errors.As(err, &cliErr):
		formatCLIError(w, cliErr, useColor)
	default:
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Error())
	}
}

// formatSourceError prints the message, a snippet with a caret and a hint
func formatSourceError(w io.Writer, err *SourceError, useColor bool) {
	lexErr := err.Err
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), lexErr.Message)
	_, _ = fmt.Fprint(w, formatter.Snippet(err.Source, err.Name, lexErr.Pos, useColor))

	if hint := lexErr.Kind.Hint(); hint != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor), hint)
	}
}

// formatCLIError formats CLI errors
func formatCLIError(w io.Writer, err *CLIError, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Message)

	if err.Details != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", err.Details)
	}

	if err.Hint != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor), err.Hint)
	}
}
