// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"fmt"
	"log/slog"
)

// Notification is the content of one desktop notification.
type Notification struct {
	Title string
	Body  string
	Icon  string
}

// DefaultNotification is shown when the configuration does not
// override it.
var DefaultNotification = Notification{
	Title: "Pomodoro Timer",
	Body:  "Timer completed!",
	Icon:  "time",
}

// Notifier shows a notification. Notify must not block on delivery.
type Notifier interface {
	Notify(Notification)
}

// Func adapts a plain function to the Notifier interface.
type Func func(Notification)

// Notify calls f(notification).
func (f Func) Notify(notification Notification) { f(notification) }

// Nop discards every notification.
type Nop struct{}

// Notify does nothing.
func (Nop) Notify(Notification) {}

// Backend names a notification mechanism in configuration.
type Backend string

const (
	// BackendCommand runs an external command (notify-send by default).
	BackendCommand Backend = "command"
	// BackendDBus talks to the freedesktop notification service directly.
	BackendDBus Backend = "dbus"
	// BackendNone disables notifications.
	BackendNone Backend = "none"
)

// Backends lists every valid Backend, for validation and help text.
var Backends = []Backend{BackendCommand, BackendDBus, BackendNone}

// New returns the Notifier for backend. command is the executable used
// by BackendCommand; empty means notify-send. appName identifies the
// sender to the D-Bus notification service.
func New(backend Backend, command, appName string, logger *slog.Logger) (Notifier, error) {
	switch backend {
	case BackendCommand:
		return NewCommandNotifier(command, logger), nil
	case BackendDBus:
		return NewDBusNotifier(appName, logger), nil
	case BackendNone:
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown notification backend %q (valid: %v)", backend, Backends)
	}
}
