// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/pomodoro/cmd/pomodoro/cli"
	"github.com/bureau-foundation/pomodoro/lib/clock"
	"github.com/bureau-foundation/pomodoro/lib/notify"
	"github.com/bureau-foundation/pomodoro/lib/pomodoro"
	"github.com/bureau-foundation/pomodoro/lib/service"
	"github.com/bureau-foundation/pomodoro/lib/testutil"
)

var epoch = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// testDaemon serves a session on a fake clock and returns the socket
// path clients should use.
func testDaemon(t *testing.T) (*pomodoro.Session, *clock.FakeClock, string) {
	t.Helper()

	fakeClock := clock.Fake(epoch)
	session := pomodoro.New(pomodoro.Config{Duration: 25 * time.Minute}, fakeClock, notify.Nop{}, testLogger())
	t.Cleanup(session.Close)

	socketPath := testutil.SocketPath(t, "pomodoro.sock")
	server := service.NewSocketServer(socketPath, testLogger())
	session.Register(server)
	server.Handle("status", func(context.Context, []byte) (any, error) {
		return pomodoro.Status{
			Version:                "test",
			SocketPath:             socketPath,
			UptimeSeconds:          7200,
			DefaultDurationSeconds: 1500,
			State:                  session.State(),
			Completions:            1234,
		}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		server.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})

	for {
		if _, err := os.Stat(socketPath); err == nil {
			break
		}
		if t.Context().Err() != nil {
			t.Fatal("daemon socket never appeared")
		}
		time.Sleep(time.Millisecond) //nolint:realclock polling for the listener
	}
	return session, fakeClock, socketPath
}

// execute runs the CLI with args and returns stdout with styling
// stripped.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	root := Root(&stdout)
	root.HelpOutput = &stdout
	err := root.Execute(args)
	return ansi.Strip(stdout.String()), err
}

func TestStartStopShow(t *testing.T) {
	previous := now
	t.Cleanup(func() { now = previous })

	_, fakeClock, socketPath := testDaemon(t)
	now = fakeClock.Now

	output, err := execute(t, "start", "--socket", socketPath)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !strings.Contains(output, "running  25:00 left") {
		t.Errorf("start output = %q", output)
	}
	if !strings.Contains(output, "25 minutes from now") {
		t.Errorf("start output should phrase the end relative to now: %q", output)
	}

	fakeClock.Advance(10 * time.Second)

	output, err = execute(t, "stop", "--socket", socketPath)
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if !strings.Contains(output, "stopped  24:50 left") {
		t.Errorf("stop output = %q", output)
	}

	output, err = execute(t, "show", "--socket", socketPath, "--json")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var snapshot pomodoro.Snapshot
	if err := json.Unmarshal([]byte(output), &snapshot); err != nil {
		t.Fatalf("show --json is not JSON: %v\n%s", err, output)
	}
	if snapshot.Remaining != 1490 || snapshot.State != pomodoro.StateStopped || snapshot.End != nil {
		t.Errorf("snapshot = %+v", snapshot)
	}

	output, err = execute(t, "reset", "--socket", socketPath)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !strings.Contains(output, "idle  25:00, ready to start") {
		t.Errorf("reset output = %q", output)
	}
}

func TestRemaining(t *testing.T) {
	session, fakeClock, socketPath := testDaemon(t)
	session.Start()
	fakeClock.Advance(61 * time.Second)

	output, err := execute(t, "remaining", "--socket", socketPath)
	if err != nil {
		t.Fatalf("remaining: %v", err)
	}
	if output != "1439\n" {
		t.Errorf("remaining = %q, want 1439", output)
	}

	output, err = execute(t, "remaining", "--socket", socketPath, "--clock")
	if err != nil {
		t.Fatalf("remaining --clock: %v", err)
	}
	if output != "23:59\n" {
		t.Errorf("remaining --clock = %q, want 23:59", output)
	}
}

func TestShowExitStatus(t *testing.T) {
	session, _, socketPath := testDaemon(t)

	_, err := execute(t, "show", "--socket", socketPath, "--exit-status")
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("idle show --exit-status error = %v, want exit code 1", err)
	}

	session.Start()
	if _, err := execute(t, "show", "--socket", socketPath, "--exit-status"); err != nil {
		t.Errorf("running show --exit-status: %v", err)
	}
}

func TestStatus(t *testing.T) {
	previous := now
	t.Cleanup(func() { now = previous })
	now = func() time.Time { return epoch }

	_, _, socketPath := testDaemon(t)

	output, err := execute(t, "status", "--socket", socketPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, want := range []string{"pomodorod test", socketPath, "2 hours ago", "25:00", "idle", "1,234"} {
		if !strings.Contains(output, want) {
			t.Errorf("status output missing %q:\n%s", want, output)
		}
	}
}

func TestRaw(t *testing.T) {
	_, _, socketPath := testDaemon(t)

	output, err := execute(t, "raw", "--socket", socketPath, "remaining")
	if err != nil {
		t.Fatalf("raw remaining: %v", err)
	}
	if output != "1500\n" {
		t.Errorf("raw remaining = %q, want 1500", output)
	}

	output, err = execute(t, "raw", "--socket", socketPath, "show")
	if err != nil {
		t.Fatalf("raw show: %v", err)
	}
	if strings.TrimSpace(output) != `{"end":null,"remaining":1500,"active":false,"state":"idle"}` {
		t.Errorf("raw show = %q", output)
	}

	output, err = execute(t, "raw", "--socket", socketPath, "bogus")
	if err != nil {
		t.Fatalf("raw bogus: %v", err)
	}
	if output != "" {
		t.Errorf("unknown raw command printed %q", output)
	}

	if _, err := execute(t, "raw", "--socket", socketPath); err == nil {
		t.Error("raw without a command should fail")
	}
}

func TestDaemonNotRunning(t *testing.T) {
	socketPath := testutil.SocketPath(t, "absent.sock")

	_, err := execute(t, "show", "--socket", socketPath)
	var toolErr *cli.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("error = %v (%T), want *cli.ToolError", err, err)
	}
	if toolErr.Category != cli.CategoryUnavailable {
		t.Errorf("Category = %q, want unavailable", toolErr.Category)
	}
	if !strings.Contains(err.Error(), "pomodorod is not running") {
		t.Errorf("error %q should say the daemon is not running", err)
	}
}

func TestUnexpectedArgument(t *testing.T) {
	if _, err := execute(t, "start", "now"); err == nil {
		t.Error("start with a positional argument should fail")
	}
}

func TestVersion(t *testing.T) {
	output, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(output, "pomodoro ") {
		t.Errorf("version output = %q", output)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{1500, "25:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{5430, "1:30:30"},
		{-5, "0:00"},
	}
	for _, test := range tests {
		if got := formatClock(test.seconds); got != test.want {
			t.Errorf("formatClock(%d) = %q, want %q", test.seconds, got, test.want)
		}
	}
}
