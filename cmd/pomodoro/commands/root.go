// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"

	"github.com/bureau-foundation/pomodoro/cmd/pomodoro/cli"
	"github.com/bureau-foundation/pomodoro/lib/version"
)

// Root returns the top-level pomodoro command. Command output is
// written to stdout; help goes to stderr.
func Root(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "pomodoro",
		Summary: "Control the pomodoro timer daemon",
		Description: `Control the pomodoro timer daemon.

pomodorod keeps a single countdown. "start" begins it (or resumes a
stopped one), "stop" pauses it and keeps the remainder, and "reset"
returns to a fresh full-length pomodoro. When a countdown runs out the
daemon shows a desktop notification.`,
		Subcommands: []*cli.Command{
			startCommand(stdout),
			stopCommand(stdout),
			resetCommand(stdout),
			remainingCommand(stdout),
			showCommand(stdout),
			statusCommand(stdout),
			watchCommand(),
			rawCommand(stdout),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					if len(args) > 0 {
						return cli.Validation("unexpected argument: %s", args[0])
					}
					version.Print(stdout, "pomodoro")
					return nil
				},
			},
		},
	}
}
