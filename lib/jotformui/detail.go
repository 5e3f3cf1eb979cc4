// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package jotformui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ljt019/jotview/lib/tui"
)

// DescriptionPane renders the selected jotform's description with
// manual line scrolling. The scroll offset comes straight from the
// session and has no upper clamp: lines scrolled past the end of the
// text render blank instead of the offset snapping back, so the pane
// never second-guesses the session's state.
type DescriptionPane struct {
	theme tui.Theme
}

// NewDescriptionPane creates a DescriptionPane using the given theme.
func NewDescriptionPane(theme tui.Theme) DescriptionPane {
	return DescriptionPane{theme: theme}
}

// View renders the pane at the given size: the description wrapped to
// the content width, sliced from offset, padded to exactly height
// lines, with a proportional scrollbar column on the right. When the
// offset runs past the wrapped text the scrollbar thumb pins to the
// bottom.
func (pane DescriptionPane) View(description string, offset, width, height int) string {
	if width < 3 || height < 1 {
		return ""
	}

	// 1 column of left padding, 1 for the scrollbar.
	contentWidth := width - 2
	lines := wrapDescription(description, contentWidth)

	visible := make([]string, height)
	for row := range visible {
		lineIndex := offset + row
		if lineIndex < len(lines) {
			visible[row] = lines[lineIndex]
		}
	}

	textStyle := lipgloss.NewStyle().Foreground(pane.theme.NormalText)
	body := lipgloss.NewStyle().
		PaddingLeft(1).
		Width(width - 1).
		Height(height).
		Render(textStyle.Render(strings.Join(visible, "\n")))

	scrollbar := tui.RenderScrollbar(
		pane.theme, height,
		len(lines), height, offset,
		false,
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, body, scrollbar)
}

// ViewEmpty renders the placeholder shown when no jotform is selected.
func (pane DescriptionPane) ViewEmpty(width, height int) string {
	if width < 3 || height < 1 {
		return ""
	}

	emptyStyle := lipgloss.NewStyle().
		Foreground(pane.theme.FaintText)

	content := lipgloss.NewStyle().
		Width(width - 1).
		Height(height).
		Render(lipgloss.Place(
			width-1, height,
			lipgloss.Center, lipgloss.Center,
			emptyStyle.Render("Select a Jotform to view description"),
		))

	scrollbar := tui.RenderScrollbar(
		pane.theme, height,
		0, height, 0,
		false,
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, content, scrollbar)
}

// wrapDescription word-wraps the text to the given width and splits it
// into lines. Words longer than the width break mid-word so nothing
// bleeds into the scrollbar column. An empty description still yields
// one (blank) line, which keeps the scrollbar geometry stable.
func wrapDescription(description string, width int) []string {
	if width < 1 {
		return []string{""}
	}
	return strings.Split(ansi.Wrap(description, width, ""), "\n")
}
