// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"os"
)

// ExitCoder is implemented by errors that carry their own exit code.
// A command that returns one has already written its own output.
type ExitCoder interface {
	error
	ExitCode() int
}

// Fatal reports err and exits. An error wrapping an ExitCoder exits
// with its code and prints nothing more; anything else is written to
// stderr as "error: err" with exit code 1. Use it in main() for errors
// returned by run(), where the structured logger may not be
// initialized.
func Fatal(err error) {
	var coder ExitCoder
	if errors.As(err, &coder) {
		os.Exit(coder.ExitCode())
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
