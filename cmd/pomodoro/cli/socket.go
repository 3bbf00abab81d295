// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"os"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pomodoro/lib/config"
)

// SocketEnvironmentVariable overrides the default daemon socket.
const SocketEnvironmentVariable = "POMODORO_SOCKET"

// SocketFlag adds --socket to a command.
type SocketFlag struct {
	Path string
}

// AddFlags registers --socket on flagSet.
func (s *SocketFlag) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&s.Path, "socket", DefaultSocketPath(),
		"daemon socket (env "+SocketEnvironmentVariable+")")
}

// DefaultSocketPath returns $POMODORO_SOCKET, or the daemon's default
// socket path when it is unset.
func DefaultSocketPath() string {
	if path := os.Getenv(SocketEnvironmentVariable); path != "" {
		return path
	}
	return config.Default().SocketPath
}

// DiagnoseSocketError turns a connection failure into a ToolError with
// a hint when the cause is recognizable: no socket file, or a socket
// file with nobody listening (a daemon that was killed). Returns nil
// for anything else so the caller keeps its own wrapping.
func DiagnoseSocketError(err error, socketPath string) *ToolError {
	switch {
	case errors.Is(err, syscall.ENOENT):
		return Unavailable("pomodorod is not running (no socket at %s)", socketPath).
			WithHint("Start the daemon with 'pomodorod', or point --socket at the socket it listens on.")
	case errors.Is(err, syscall.ECONNREFUSED):
		return Unavailable("nothing is listening on %s", socketPath).
			WithHint("The socket file is left over from a daemon that exited. Start 'pomodorod' again; it replaces the stale socket.")
	case errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		return Unavailable("permission denied accessing %s", socketPath).
			WithHint("The socket belongs to another user. Check its ownership: ls -la " + socketPath)
	}
	return nil
}
