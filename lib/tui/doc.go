// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui holds the terminal rendering pieces shared by the
// pomodoro client: the color [Theme] keyed by timer state, and
// [RenderProgressBar], the horizontal bar used by the live watch view.
//
// Everything here is pure string rendering with lipgloss. The
// bubbletea model that drives the watch view lives with the command
// that runs it.
package tui
