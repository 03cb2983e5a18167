package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/ovum-lang/ovum/core/token"
	"github.com/ovum-lang/ovum/runtime/lexer"
)

// session owns one reusable lexer for the lifetime of a command
type session struct {
	name      string
	lexer     *lexer.Lexer
	logger    *slog.Logger
	telemetry bool
	stderr    io.Writer
}

func newSession(opts *options, logger *slog.Logger, stderr io.Writer) *session {
	lexOpts := []lexer.LexerOpt{lexer.WithLogger(logger)}
	if opts.comments {
		lexOpts = append(lexOpts, lexer.WithComments())
	}
	if opts.telemetry {
		lexOpts = append(lexOpts, lexer.WithTelemetryTiming())
	}
	if opts.debug {
		lexOpts = append(lexOpts, lexer.WithDebugPaths())
	}

	return &session{
		name:      displayName(opts.file),
		lexer:     lexer.NewLexer(lexOpts...),
		logger:    logger,
		telemetry: opts.telemetry,
		stderr:    stderr,
	}
}

// lex tokenizes source. Lexer failures come back as *SourceError so they
// can be shown with a snippet.
func (s *session) lex(source []byte) ([]token.Token, error) {
	began := time.Now()
	s.lexer.Init(source)

	tokens, err := s.lexer.Tokenize()
	if err != nil {
		s.logger.Info("tokenize failed", "file", s.name, "error", err)
		if lexErr, ok := err.(*lexer.LexError); ok {
			return nil, &SourceError{Name: s.name, Source: string(source), Err: lexErr}
		}
		return nil, err
	}

	s.logger.Info("tokenized", "file", s.name, "bytes", len(source), "tokens", len(tokens), "elapsed", time.Since(began))
	if s.telemetry {
		writeTelemetry(s.stderr, s.lexer.GetTokenTelemetry())
	}
	return tokens, nil
}

// writeTelemetry prints one line per kind, in kind order
func writeTelemetry(w io.Writer, telemetry map[token.Kind]*lexer.TokenTelemetry) {
	kinds := make([]token.Kind, 0, len(telemetry))
	for k := range telemetry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, k := range kinds {
		t := telemetry[k]
		_, _ = fmt.Fprintf(w, "%-9s count=%-6d total=%-10s avg=%-10s min=%-10s max=%s\n",
			k, t.Count, t.TotalTime, t.AvgTime, t.MinTime, t.MaxTime)
	}
}

func displayName(file string) string {
	if file == defaultFile || file == "-" {
		return "<stdin>"
	}
	return file
}
