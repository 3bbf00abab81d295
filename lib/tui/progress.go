// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderProgressBar produces a single-row bar of the given width with
// the leading fraction filled. fraction is clamped to [0, 1]. The
// filled part uses fillColor; the track uses the theme's border color.
func RenderProgressBar(theme Theme, width int, fraction float64, fillColor lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	fraction = min(max(fraction, 0), 1)

	filled := int(fraction*float64(width) + 0.5)
	filled = min(filled, width)

	fillStyle := lipgloss.NewStyle().Foreground(fillColor)
	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)

	return fillStyle.Render(strings.Repeat("█", filled)) +
		trackStyle.Render(strings.Repeat("░", width-filled))
}
