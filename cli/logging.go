package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// newLogger builds the command logger. Terminal output is a text handler
// on stderr (warnings only unless --debug); --log-file and --journal add
// handlers through a fanout. The returned func closes the log file.
func newLogger(stderr io.Writer, opts *options) (*slog.Logger, func() error, error) {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	if opts.debug || os.Getenv("OVUM_DEBUG_LEXER") != "" {
		level.Set(slog.LevelDebug)
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 && a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		}),
	}
	closeFunc := func() error { return nil }

	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		fileLevel := slog.LevelInfo
		if opts.debug {
			fileLevel = slog.LevelDebug
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: fileLevel}))
		closeFunc = f.Close
	}

	if opts.journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			// Not fatal: the journal socket is missing outside systemd
			_, _ = fmt.Fprintf(stderr, "warning: systemd journal unavailable: %v\n", err)
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0]), closeFunc, nil
	}
	return slog.New(slogmulti.Fanout(handlers...)), closeFunc, nil
}

// toJournalKey maps an attribute key to a valid journal field name
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}
