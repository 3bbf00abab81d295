// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the pomodoro
// client: a [Command] tree with pflag-based flag parsing, generated
// help, and typo suggestions for unknown commands and flags.
//
// It also holds the pieces every command shares: [SocketFlag] for
// locating the daemon, [ToolError] for errors with an actionable
// hint, [ExitError] for handled non-zero exits, and [WriteJSON] for
// --json output.
package cli
