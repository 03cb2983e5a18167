package main

import (
	"fmt"
	"io"
	"os"
)

// stdin is swapped out by tests
var stdin = func() *os.File { return os.Stdin }

// getInputReader handles the 3 modes of input:
// 1. Explicit stdin with -f -
// 2. Piped input (auto-detected when no file is given)
// 3. File input
func getInputReader(file string) (io.Reader, func() error, error) {
	noClose := func() error { return nil }

	// Mode 1: Explicit stdin
	if file == "-" {
		return stdin(), noClose, nil
	}

	// Mode 2: Piped input
	if file == defaultFile {
		if hasPipedInput() {
			return stdin(), noClose, nil
		}
		return nil, nil, &CLIError{
			Type:    "usage",
			Message: "no input",
			Hint:    "Pass a file, use -f -, or pipe source to stdin",
		}
	}

	// Mode 3: File input
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening file %s: %w", file, err)
	}

	return f, f.Close, nil
}

// hasPipedInput detects if there's data piped to stdin
func hasPipedInput() bool {
	stat, err := stdin().Stat()
	if err != nil {
		return false
	}

	// Pipes may not report a size, so only the mode is checked
	return (stat.Mode() & os.ModeCharDevice) == 0
}
