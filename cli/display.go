package main

import (
	"io"

	"github.com/ovum-lang/ovum/core/token"
	"github.com/ovum-lang/ovum/core/tokenfmt/formatter"
)

// DisplayTokens renders a token listing followed by a per-kind summary.
// This is a thin wrapper around formatter.Format.
func DisplayTokens(w io.Writer, tokens []token.Token, useColor bool) error {
	if _, err := io.WriteString(w, formatter.Format(tokens, useColor)); err != nil {
		return err
	}
	_, err := io.WriteString(w, Colorize("# "+formatter.Summary(tokens), ColorGray, useColor)+"\n")
	return err
}
