// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/bureau-foundation/pomodoro/lib/pomodoro"
	"github.com/bureau-foundation/pomodoro/lib/tui"
)

// now is the wall clock used to phrase relative times. Tests replace it.
var now = time.Now

// formatClock renders whole seconds as m:ss, or h:mm:ss from an hour up.
func formatClock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

func stateLabel(state pomodoro.State) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(tui.DefaultTheme.StateColor(string(state))).
		Render(string(state))
}

// renderSnapshot writes the human form of a Snapshot:
//
//	running  24:50 left
//	ends at 15:04 (24 minutes from now)
func renderSnapshot(w io.Writer, snapshot pomodoro.Snapshot) {
	clock := formatClock(snapshot.Remaining)
	switch snapshot.State {
	case pomodoro.StateRunning:
		fmt.Fprintf(w, "%s  %s left\n", stateLabel(snapshot.State), clock)
		if snapshot.End != nil {
			end := time.Unix(*snapshot.End, 0)
			fmt.Fprintf(w, "ends at %s (%s)\n", end.Local().Format("15:04"),
				humanize.RelTime(end, now(), "ago", "from now"))
		}
	case pomodoro.StateStopped:
		fmt.Fprintf(w, "%s  %s left\n", stateLabel(snapshot.State), clock)
	default:
		fmt.Fprintf(w, "%s  %s, ready to start\n", stateLabel(snapshot.State), clock)
	}
}

// renderStatus writes the human form of the daemon's status reply.
func renderStatus(w io.Writer, status pomodoro.Status) {
	startedAt := now().Add(-time.Duration(status.UptimeSeconds * float64(time.Second)))
	fmt.Fprintf(w, "pomodorod %s\n", status.Version)
	fmt.Fprintf(w, "  socket:       %s\n", status.SocketPath)
	fmt.Fprintf(w, "  started:      %s\n", humanize.RelTime(startedAt, now(), "ago", "from now"))
	fmt.Fprintf(w, "  pomodoro:     %s\n", formatClock(status.DefaultDurationSeconds))
	fmt.Fprintf(w, "  state:        %s\n", stateLabel(status.State))
	fmt.Fprintf(w, "  completions:  %s\n", humanize.Comma(status.Completions))
}
