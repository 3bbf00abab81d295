// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Pomodoro is the command-line client for the pomodorod timer daemon.
package main

import (
	"os"

	"github.com/bureau-foundation/pomodoro/cmd/pomodoro/commands"
	"github.com/bureau-foundation/pomodoro/lib/process"
)

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	return commands.Root(os.Stdout).Execute(os.Args[1:])
}
