// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		fraction float64
		filled   int
	}{
		{"empty", 10, 0, 0},
		{"full", 10, 1, 10},
		{"half", 10, 0.5, 5},
		{"rounds", 10, 0.26, 3},
		{"clamps high", 8, 1.7, 8},
		{"clamps low", 8, -0.3, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bar := ansi.Strip(RenderProgressBar(DefaultTheme, test.width, test.fraction, DefaultTheme.StateRunning))
			if got := strings.Count(bar, "█"); got != test.filled {
				t.Errorf("filled cells = %d, want %d (%q)", got, test.filled, bar)
			}
			if got := ansi.StringWidth(bar); got != test.width {
				t.Errorf("width = %d, want %d", got, test.width)
			}
		})
	}
}

func TestRenderProgressBarZeroWidth(t *testing.T) {
	if bar := RenderProgressBar(DefaultTheme, 0, 0.5, DefaultTheme.StateRunning); bar != "" {
		t.Errorf("zero-width bar = %q, want empty", bar)
	}
}

func TestStateColor(t *testing.T) {
	theme := DefaultTheme
	if theme.StateColor("running") != theme.StateRunning {
		t.Error("running should use StateRunning")
	}
	if theme.StateColor("stopped") != theme.StateStopped {
		t.Error("stopped should use StateStopped")
	}
	if theme.StateColor("idle") != theme.StateIdle {
		t.Error("idle should use StateIdle")
	}
	if theme.StateColor("exploded") != theme.FaintText {
		t.Error("unknown state should use FaintText")
	}
}
