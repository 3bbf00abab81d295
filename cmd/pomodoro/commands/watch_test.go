// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/pomodoro/lib/pomodoro"
)

// fakeSource records requested actions and replies with a fixed
// snapshot or error.
type fakeSource struct {
	actions []string
	reply   pomodoro.Snapshot
	err     error
}

func (f *fakeSource) snapshot(action string) (pomodoro.Snapshot, error) {
	f.actions = append(f.actions, action)
	return f.reply, f.err
}

// runCmd executes a tea.Cmd that is expected to produce a
// snapshotMsg.
func runCmd(t *testing.T, cmd tea.Cmd) snapshotMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	produced := cmd()
	message, ok := produced.(snapshotMsg)
	if !ok {
		t.Fatalf("command produced %T, want snapshotMsg", produced)
	}
	return message
}

func keyPress(runes string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(runes)}
}

func TestWatchToggleStartsWhenIdle(t *testing.T) {
	source := &fakeSource{reply: pomodoro.Snapshot{Remaining: 1500, Active: true, State: pomodoro.StateRunning}}
	model := newWatchModel(source, 1500)

	_, cmd := model.Update(keyPress("s"))
	message := runCmd(t, cmd)
	if len(source.actions) != 1 || source.actions[0] != "start" {
		t.Errorf("actions = %v, want [start]", source.actions)
	}
	if !message.snapshot.Active {
		t.Error("reply snapshot should be delivered to the model")
	}
}

func TestWatchToggleStopsWhenRunning(t *testing.T) {
	end := int64(1767258000)
	source := &fakeSource{}
	model := newWatchModel(source, 1500)

	updatedModel, _ := model.Update(snapshotMsg{snapshot: pomodoro.Snapshot{
		End: &end, Remaining: 900, Active: true, State: pomodoro.StateRunning,
	}})
	model = updatedModel.(watchModel)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	runCmd(t, cmd)
	if len(source.actions) != 1 || source.actions[0] != "stop" {
		t.Errorf("actions = %v, want [stop]", source.actions)
	}
}

func TestWatchReset(t *testing.T) {
	source := &fakeSource{}
	model := newWatchModel(source, 1500)

	_, cmd := model.Update(keyPress("r"))
	runCmd(t, cmd)
	if len(source.actions) != 1 || source.actions[0] != "reset" {
		t.Errorf("actions = %v, want [reset]", source.actions)
	}
}

func TestWatchQuit(t *testing.T) {
	model := newWatchModel(&fakeSource{}, 1500)

	_, cmd := model.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestWatchView(t *testing.T) {
	model := newWatchModel(&fakeSource{}, 1500)

	if view := ansi.Strip(model.View()); !strings.Contains(view, "connecting...") {
		t.Errorf("initial view should say connecting:\n%s", view)
	}

	updatedModel, _ := model.Update(snapshotMsg{snapshot: pomodoro.Snapshot{
		Remaining: 750, State: pomodoro.StateStopped,
	}})
	view := ansi.Strip(updatedModel.View())
	for _, want := range []string{"12:30", "stopped", "s start/stop", "r reset", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Count(view, "█") != progressWidth/2 {
		t.Errorf("progress bar should be half full:\n%s", view)
	}
}

func TestWatchKeepsLastSnapshotOnError(t *testing.T) {
	model := newWatchModel(&fakeSource{}, 1500)

	updatedModel, _ := model.Update(snapshotMsg{snapshot: pomodoro.Snapshot{Remaining: 600, State: pomodoro.StateStopped}})
	updatedModel, _ = updatedModel.Update(snapshotMsg{err: errors.New("connection refused")})

	view := ansi.Strip(updatedModel.View())
	if !strings.Contains(view, "10:00") {
		t.Errorf("view should keep the last snapshot:\n%s", view)
	}
	if !strings.Contains(view, "connection refused") {
		t.Errorf("view should show the error:\n%s", view)
	}
}

func TestWatchTickRefreshes(t *testing.T) {
	model := newWatchModel(&fakeSource{}, 1500)

	_, cmd := model.Update(watchTickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule a refresh")
	}
}
