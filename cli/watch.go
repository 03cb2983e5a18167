package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ovum-lang/ovum/core/token"
	"github.com/ovum-lang/ovum/core/tokenfmt/formatter"
)

// watcher re-tokenizes a file and reports what changed
type watcher struct {
	session  *session
	out      *output
	stdout   io.Writer
	stderr   io.Writer
	useColor bool

	prev []token.Token // last successful stream, filtered
}

// update lexes source and prints either the full stream (first run and
// non-text formats) or a diff against the previous stream.
func (w *watcher) update(source []byte) {
	tokens, err := w.session.lex(source)
	if err != nil {
		FormatError(w.stderr, err, w.useColor)
		return
	}

	if w.prev == nil || w.out.format != formatText {
		if err := w.out.write(w.stdout, tokens); err != nil {
			FormatError(w.stderr, err, w.useColor)
		}
		w.prev = w.out.filter(tokens)
		return
	}

	next := w.out.filter(tokens)
	diff := formatter.Diff(w.prev, next)
	_, _ = fmt.Fprintf(w.stdout, "%s\n", Colorize("--- "+w.session.name+" changed ---", ColorCyan, w.useColor))
	_, _ = fmt.Fprint(w.stdout, formatter.FormatDiff(diff, w.useColor))
	w.prev = next
}

// watch prints the token stream of opts.file, then follows changes until
// ctx is cancelled.
func watch(ctx context.Context, s *session, out *output, stdout, stderr io.Writer, useColor bool) error {
	if s.name == displayName(defaultFile) {
		return &CLIError{
			Type:    "usage",
			Message: "--watch needs a file",
			Hint:    "Pass a file path; stdin cannot be watched",
		}
	}
	path, err := filepath.Abs(s.name)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", s.name, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	// Watch the directory: editors often replace the file on save
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", s.name, err)
	}

	w := &watcher{session: s, out: out, stdout: stdout, stderr: stderr, useColor: useColor}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", s.name, err)
	}
	w.update(source)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			source, err := os.ReadFile(path)
			if err != nil {
				// The file may be mid-replace; the next event will catch up
				s.logger.Debug("read after change failed", "file", s.name, "error", err)
				continue
			}
			w.update(source)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watch error", "file", s.name, "error", err)
		}
	}
}
