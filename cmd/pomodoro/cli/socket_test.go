// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"testing"

	"github.com/spf13/pflag"
)

func TestDefaultSocketPath(t *testing.T) {
	t.Setenv(SocketEnvironmentVariable, "/custom/pomodoro.sock")
	if got := DefaultSocketPath(); got != "/custom/pomodoro.sock" {
		t.Errorf("DefaultSocketPath() = %q, want the environment value", got)
	}

	t.Setenv(SocketEnvironmentVariable, "")
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/42")
	if got := DefaultSocketPath(); got != "/run/user/42/pomodoro.sock" {
		t.Errorf("DefaultSocketPath() = %q, want the runtime dir socket", got)
	}
}

func TestSocketFlag(t *testing.T) {
	t.Setenv(SocketEnvironmentVariable, "/env.sock")

	var socket SocketFlag
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	socket.AddFlags(flagSet)

	if err := flagSet.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if socket.Path != "/env.sock" {
		t.Errorf("default Path = %q, want /env.sock", socket.Path)
	}

	if err := flagSet.Parse([]string{"--socket", "/flag.sock"}); err != nil {
		t.Fatal(err)
	}
	if socket.Path != "/flag.sock" {
		t.Errorf("Path = %q, want /flag.sock", socket.Path)
	}
}

func TestDiagnoseSocketError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing", fmt.Errorf("connecting: %w", syscall.ENOENT), "not running"},
		{"refused", fmt.Errorf("connecting: %w", syscall.ECONNREFUSED), "nothing is listening"},
		{"permission", fmt.Errorf("connecting: %w", syscall.EACCES), "permission denied"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			diagnosed := DiagnoseSocketError(test.err, "/tmp/p.sock")
			if diagnosed == nil {
				t.Fatal("expected a diagnosis")
			}
			if diagnosed.Category != CategoryUnavailable {
				t.Errorf("Category = %q, want unavailable", diagnosed.Category)
			}
			if !strings.Contains(diagnosed.Error(), test.want) || diagnosed.Hint == "" {
				t.Errorf("diagnosis %q should mention %q and carry a hint", diagnosed, test.want)
			}
		})
	}

	if DiagnoseSocketError(errors.New("decoding failed"), "/tmp/p.sock") != nil {
		t.Error("unrelated error should not be diagnosed")
	}
}
