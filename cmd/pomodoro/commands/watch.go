// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pomodoro/cmd/pomodoro/cli"
	"github.com/bureau-foundation/pomodoro/lib/pomodoro"
	"github.com/bureau-foundation/pomodoro/lib/tui"
)

// watchInterval is how often the watch view polls the daemon.
const watchInterval = time.Second

// progressWidth is the width of the watch view's progress bar.
const progressWidth = 40

func watchCommand() *cli.Command {
	var conn connection

	return &cli.Command{
		Name:    "watch",
		Summary: "Live countdown view with start/stop/reset keys",
		Description: `Show a live countdown that refreshes every second. Keys:

  s, space   start or stop
  r          reset
  q, ctrl+c  quit (the timer keeps running in the daemon)`,
		Usage: "pomodoro watch [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("watch", pflag.ContinueOnError)
			conn.addFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			// Fail fast with a diagnosable error rather than a TUI
			// showing a connection error.
			var status pomodoro.Status
			if err := conn.call("status", &status); err != nil {
				return err
			}
			model := newWatchModel(&conn, status.DefaultDurationSeconds)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// watchSource is the daemon as seen by the watch view.
type watchSource interface {
	snapshot(action string) (pomodoro.Snapshot, error)
}

// watchKeyMap defines the watch view's key bindings.
type watchKeyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

var defaultWatchKeys = watchKeyMap{
	Toggle: key.NewBinding(
		key.WithKeys("s", " "),
		key.WithHelp("s", "start/stop"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// snapshotMsg carries the result of one daemon request.
type snapshotMsg struct {
	snapshot pomodoro.Snapshot
	err      error
}

// watchTickMsg triggers the periodic refresh.
type watchTickMsg time.Time

type watchModel struct {
	source watchSource
	keys   watchKeyMap
	theme  tui.Theme

	// pomodoroSeconds is the daemon's full pomodoro length, the
	// denominator of the progress bar.
	pomodoroSeconds int64

	snapshot pomodoro.Snapshot
	loaded   bool
	err      error
}

func newWatchModel(source watchSource, pomodoroSeconds int64) watchModel {
	return watchModel{
		source:          source,
		keys:            defaultWatchKeys,
		theme:           tui.DefaultTheme,
		pomodoroSeconds: pomodoroSeconds,
	}
}

// request returns a tea.Cmd that performs action against the daemon.
func (model watchModel) request(action string) tea.Cmd {
	source := model.source
	return func() tea.Msg {
		snapshot, err := source.snapshot(action)
		return snapshotMsg{snapshot: snapshot, err: err}
	}
}

func watchTick() tea.Cmd {
	return tea.Tick(watchInterval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

// Init implements tea.Model.
func (model watchModel) Init() tea.Cmd {
	return tea.Batch(model.request("show"), watchTick())
}

// Update implements tea.Model.
func (model watchModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit
		case key.Matches(message, model.keys.Toggle):
			if model.snapshot.Active {
				return model, model.request("stop")
			}
			return model, model.request("start")
		case key.Matches(message, model.keys.Reset):
			return model, model.request("reset")
		}

	case watchTickMsg:
		return model, tea.Batch(model.request("show"), watchTick())

	case snapshotMsg:
		model.err = message.err
		if message.err == nil {
			model.snapshot = message.snapshot
			model.loaded = true
		}
	}
	return model, nil
}

// View implements tea.Model.
func (model watchModel) View() string {
	theme := model.theme
	header := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	help := lipgloss.NewStyle().Foreground(theme.HelpText)

	var lines []string
	lines = append(lines, header.Render("pomodoro"), "")

	if !model.loaded {
		lines = append(lines, faint.Render("connecting..."))
	} else {
		snapshot := model.snapshot
		color := theme.StateColor(string(snapshot.State))
		clock := lipgloss.NewStyle().Bold(true).Foreground(color).Render(formatClock(snapshot.Remaining))
		lines = append(lines,
			clock+"  "+faint.Render(string(snapshot.State)),
			tui.RenderProgressBar(theme, progressWidth, model.elapsedFraction(), color),
		)
		if snapshot.End != nil {
			end := time.Unix(*snapshot.End, 0).Local()
			lines = append(lines, faint.Render("ends at "+end.Format("15:04:05")))
		} else {
			lines = append(lines, "")
		}
	}

	if model.err != nil {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.ErrorText).Render(model.err.Error()))
	}

	bindings := []key.Binding{model.keys.Toggle, model.keys.Reset, model.keys.Quit}
	var helpParts []string
	for _, binding := range bindings {
		helpParts = append(helpParts, binding.Help().Key+" "+binding.Help().Desc)
	}
	lines = append(lines, "", help.Render(strings.Join(helpParts, " • ")))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// elapsedFraction is how much of a full pomodoro has been used.
func (model watchModel) elapsedFraction() float64 {
	if model.pomodoroSeconds <= 0 {
		return 0
	}
	return 1 - float64(model.snapshot.Remaining)/float64(model.pomodoroSeconds)
}
