// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"fmt"
	"log/slog"
	"os/exec"
)

// defaultCommand is the freedesktop notification CLI shipped by
// libnotify.
const defaultCommand = "notify-send"

// CommandNotifier launches an external program for each notification
// with the arguments "--icon=<icon> <title> <body>".
type CommandNotifier struct {
	command string
	logger  *slog.Logger
}

// NewCommandNotifier returns a CommandNotifier that runs command, or
// notify-send when command is empty.
func NewCommandNotifier(command string, logger *slog.Logger) *CommandNotifier {
	if command == "" {
		command = defaultCommand
	}
	return &CommandNotifier{command: command, logger: logger}
}

// Notify starts the command and returns immediately. The child is
// reaped on a separate goroutine so it never lingers as a zombie.
func (n *CommandNotifier) Notify(notification Notification) {
	command, err := n.launch(notification)
	if err != nil {
		n.logger.Warn("notification command failed to start",
			"command", n.command,
			"error", err,
		)
		return
	}
	go func() {
		if err := command.Wait(); err != nil {
			n.logger.Debug("notification command exited with error",
				"command", n.command,
				"error", err,
			)
		}
	}()
}

// launch starts the notification process without waiting for it.
func (n *CommandNotifier) launch(notification Notification) (*exec.Cmd, error) {
	var arguments []string
	if notification.Icon != "" {
		arguments = append(arguments, "--icon="+notification.Icon)
	}
	arguments = append(arguments, notification.Title, notification.Body)

	command := exec.Command(n.command, arguments...)
	if err := command.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", n.command, err)
	}
	return command, nil
}
