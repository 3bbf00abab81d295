// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the pomodoro terminal views.
// All colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Timer state colors.
	StateRunning lipgloss.Color
	StateStopped lipgloss.Color
	StateIdle    lipgloss.Color

	// Error messages, such as a daemon that stopped answering.
	ErrorText lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
}

// StateColor returns the color for a timer state name (running,
// stopped, idle) and FaintText for anything else.
func (theme Theme) StateColor(state string) lipgloss.Color {
	switch state {
	case "running":
		return theme.StateRunning
	case "stopped":
		return theme.StateStopped
	case "idle":
		return theme.StateIdle
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	StateRunning: lipgloss.Color("196"), // tomato red
	StateStopped: lipgloss.Color("220"), // amber
	StateIdle:    lipgloss.Color("114"), // green

	ErrorText: lipgloss.Color("203"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
}
