package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// defaultFile is the -f value that means "no file given"
const defaultFile = ""

// options holds the parsed command line
type options struct {
	file      string
	comments  bool
	format    string
	kinds     []string
	watch     bool
	telemetry bool
	debug     bool
	logFile   string
	journal   bool
	noColor   bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and returns the process exit status
func execute(args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	cmd := newRootCmd(opts, stdout, stderr)
	cmd.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		FormatError(stderr, err, ShouldUseColor(opts.noColor))
		return 1
	}
	return 0
}

func newRootCmd(opts *options, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ovum [file]",
		Short: "Tokenize Ovum source files",
		Long: `Tokenize an Ovum source file and print the token stream.

Input comes from the file argument, -f/--file, or stdin ("-f -" or piped).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if opts.file != defaultFile && opts.file != args[0] {
					return &CLIError{
						Type:    "usage",
						Message: "conflicting input files",
						Details: fmt.Sprintf("argument %q and --file %q", args[0], opts.file),
						Hint:    "Pass the file either as an argument or with -f, not both",
					}
				}
				opts.file = args[0]
			}
			return run(cmd.Context(), opts, stdout, stderr)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", defaultFile, `Path to the source file ("-" for stdin)`)
	flags.BoolVar(&opts.comments, "comments", false, "Emit COMMENT tokens")
	flags.StringVar(&opts.format, "format", formatText, "Output format: text, json, yaml or cbor")
	flags.StringSliceVar(&opts.kinds, "kind", nil, "Only print tokens of this kind (repeatable)")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "Re-tokenize the file whenever it changes")
	flags.BoolVar(&opts.telemetry, "telemetry", false, "Print per-kind token counts and timing to stderr")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging and lexer tracing")
	flags.StringVar(&opts.logFile, "log-file", "", "Also write JSON logs to this file")
	flags.BoolVar(&opts.journal, "journal", false, "Also send logs to the systemd journal")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return rootCmd
}

func run(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	useColor := ShouldUseColor(opts.noColor)

	out, err := newOutput(opts.format, opts.kinds, useColor)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(stderr, opts)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	s := newSession(opts, logger, stderr)

	if opts.watch {
		return watch(ctx, s, out, stdout, stderr, useColor)
	}

	reader, closeFunc, err := getInputReader(opts.file)
	if err != nil {
		return err
	}
	defer func() { _ = closeFunc() }()

	source, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	tokens, err := s.lex(source)
	if err != nil {
		return err
	}
	return out.write(stdout, tokens)
}
