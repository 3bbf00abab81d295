// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/godbus/dbus/v5"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func TestNewBackends(t *testing.T) {
	tests := []struct {
		backend Backend
		check   func(Notifier) bool
	}{
		{BackendCommand, func(n Notifier) bool { _, ok := n.(*CommandNotifier); return ok }},
		{BackendDBus, func(n Notifier) bool { _, ok := n.(*DBusNotifier); return ok }},
		{BackendNone, func(n Notifier) bool { _, ok := n.(Nop); return ok }},
	}
	for _, test := range tests {
		t.Run(string(test.backend), func(t *testing.T) {
			notifier, err := New(test.backend, "", "pomodoro", testLogger())
			if err != nil {
				t.Fatalf("New(%q): %v", test.backend, err)
			}
			if !test.check(notifier) {
				t.Errorf("New(%q) returned %T", test.backend, notifier)
			}
		})
	}
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New("carrier-pigeon", "", "pomodoro", testLogger())
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "carrier-pigeon") {
		t.Errorf("error %q does not name the backend", err)
	}
}

func TestCommandNotifierDefaultsToNotifySend(t *testing.T) {
	notifier := NewCommandNotifier("", testLogger())
	if notifier.command != "notify-send" {
		t.Errorf("command = %q, want notify-send", notifier.command)
	}
}

func TestCommandNotifierArguments(t *testing.T) {
	directory := t.TempDir()
	outputPath := filepath.Join(directory, "arguments")
	scriptPath := filepath.Join(directory, "fake-notify-send")
	script := "#!/bin/sh\nfor argument in \"$@\"; do echo \"$argument\"; done > " + outputPath + "\n"
	if err := os.WriteFile(scriptPath, []byte(script), 0o755); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	notifier := NewCommandNotifier(scriptPath, testLogger())
	command, err := notifier.launch(DefaultNotification)
	if err != nil {
		t.Fatalf("launch: %v", err)
	}
	if err := command.Wait(); err != nil {
		t.Fatalf("script exited with error: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("reading script output: %v", err)
	}
	got := strings.Split(strings.TrimSpace(string(data)), "\n")
	want := []string{"--icon=time", "Pomodoro Timer", "Timer completed!"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("arguments = %q, want %q", got, want)
	}
}

func TestCommandNotifierMissingBinaryIsIgnored(t *testing.T) {
	notifier := NewCommandNotifier(filepath.Join(t.TempDir(), "does-not-exist"), testLogger())

	if _, err := notifier.launch(DefaultNotification); err == nil {
		t.Fatal("launch should fail for a missing binary")
	}
	// Notify swallows the same failure.
	notifier.Notify(DefaultNotification)
}

func TestDBusNotifierConnectFailure(t *testing.T) {
	notifier := NewDBusNotifier("pomodoro", testLogger())
	busDown := errors.New("no session bus")
	notifier.connect = func() (*dbus.Conn, error) { return nil, busDown }

	err := notifier.send(context.Background(), DefaultNotification)
	if !errors.Is(err, busDown) {
		t.Errorf("send error = %v, want wrapped %v", err, busDown)
	}
}

func TestFuncNotifier(t *testing.T) {
	var received []Notification
	notifier := Func(func(notification Notification) {
		received = append(received, notification)
	})

	notifier.Notify(DefaultNotification)
	if len(received) != 1 || received[0] != DefaultNotification {
		t.Errorf("received = %+v, want one DefaultNotification", received)
	}
}
