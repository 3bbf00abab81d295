// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pomodoro/cmd/pomodoro/cli"
	"github.com/bureau-foundation/pomodoro/lib/pomodoro"
)

// snapshotCommand builds a command that performs one state-changing
// action and prints the resulting state.
func snapshotCommand(stdout io.Writer, name, summary, description string) *cli.Command {
	var conn connection
	var output cli.JSONOutput

	return &cli.Command{
		Name:        name,
		Summary:     summary,
		Description: description,
		Usage:       "pomodoro " + name + " [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
			conn.addFlags(flagSet)
			output.AddFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			snapshot, err := conn.snapshot(name)
			if err != nil {
				return err
			}
			if done, err := output.EmitJSON(stdout, snapshot); done {
				return err
			}
			renderSnapshot(stdout, snapshot)
			return nil
		},
	}
}

func startCommand(stdout io.Writer) *cli.Command {
	command := snapshotCommand(stdout, "start", "Start or resume the timer",
		`Start a countdown. A stopped timer resumes from where it was stopped;
otherwise a fresh pomodoro of the daemon's configured length begins.
Starting a timer that is already running changes nothing.`)
	command.Examples = []cli.Example{
		{Description: "Start a pomodoro", Command: "pomodoro start"},
	}
	return command
}

func stopCommand(stdout io.Writer) *cli.Command {
	return snapshotCommand(stdout, "stop", "Pause the timer, keeping the time left",
		`Pause the running countdown. The time left is kept and the next
"start" resumes from it. With less than a second left, stop behaves
like reset. Stopping a timer that is not running changes nothing.`)
}

func resetCommand(stdout io.Writer) *cli.Command {
	return snapshotCommand(stdout, "reset", "Cancel the timer and forget the time left",
		`Cancel any running countdown and discard a stopped remainder. The
next "start" begins a fresh full-length pomodoro.`)
}

func remainingCommand(stdout io.Writer) *cli.Command {
	var conn connection
	var asClock bool

	return &cli.Command{
		Name:    "remaining",
		Summary: "Print the seconds left",
		Description: `Print the whole seconds left on the timer: live while running, the
stored remainder when stopped, and the full pomodoro length when idle.`,
		Usage: "pomodoro remaining [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("remaining", pflag.ContinueOnError)
			conn.addFlags(flagSet)
			flagSet.BoolVar(&asClock, "clock", false, "print as m:ss instead of seconds")
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "Status bar segment", Command: "pomodoro remaining --clock"},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			var response pomodoro.RemainingResponse
			if err := conn.call("remaining", &response); err != nil {
				return err
			}
			if asClock {
				fmt.Fprintln(stdout, formatClock(response.Remaining))
				return nil
			}
			fmt.Fprintln(stdout, strconv.FormatInt(response.Remaining, 10))
			return nil
		},
	}
}

func showCommand(stdout io.Writer) *cli.Command {
	var conn connection
	var output cli.JSONOutput
	var exitStatus bool

	return &cli.Command{
		Name:    "show",
		Summary: "Show the timer state",
		Description: `Show whether the timer is running, stopped, or idle, how much time is
left, and when a running countdown will end.`,
		Usage: "pomodoro show [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			conn.addFlags(flagSet)
			output.AddFlags(flagSet)
			flagSet.BoolVar(&exitStatus, "exit-status", false, "exit 1 when the timer is not running")
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "Machine-readable state", Command: "pomodoro show --json"},
			{Description: "Only act while a pomodoro runs", Command: "pomodoro show --exit-status >/dev/null && echo focus"},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			snapshot, err := conn.snapshot("show")
			if err != nil {
				return err
			}
			done, err := output.EmitJSON(stdout, snapshot)
			if err != nil {
				return err
			}
			if !done {
				renderSnapshot(stdout, snapshot)
			}
			if exitStatus && !snapshot.Active {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

func statusCommand(stdout io.Writer) *cli.Command {
	var conn connection
	var output cli.JSONOutput

	return &cli.Command{
		Name:    "status",
		Summary: "Show daemon version, uptime, and counters",
		Usage:   "pomodoro status [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("status", pflag.ContinueOnError)
			conn.addFlags(flagSet)
			output.AddFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			var status pomodoro.Status
			if err := conn.call("status", &status); err != nil {
				return err
			}
			if done, err := output.EmitJSON(stdout, status); done {
				return err
			}
			renderStatus(stdout, status)
			return nil
		},
	}
}

func rawCommand(stdout io.Writer) *cli.Command {
	var conn connection

	return &cli.Command{
		Name:    "raw",
		Summary: "Send a plain-text command and print the reply",
		Description: `Send one command over the daemon's plain-text protocol, exactly as a
shell script would, and print the reply payload if there is one.
Commands without a reply (start, stop, reset) and commands the daemon
does not recognize print nothing.`,
		Usage: "pomodoro raw <command> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("raw", pflag.ContinueOnError)
			conn.addFlags(flagSet)
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "The JSON a status bar would read", Command: "pomodoro raw show"},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("raw takes exactly one command, got %d arguments", len(args))
			}
			reply, err := conn.sendText(args[0])
			if err != nil {
				return err
			}
			if reply != nil {
				fmt.Fprintf(stdout, "%s\n", reply)
			}
			return nil
		},
	}
}
