// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package jotformui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	schema "github.com/ljt019/jotview/lib/schema/jotform"
	"github.com/ljt019/jotview/lib/tui"
)

// tableColumns names the review table's columns in display order.
// Every column takes an equal share of the row width; the leftover
// from integer division goes one column at a time from the left.
var tableColumns = []string{
	"Submitter",
	"Date",
	"Location",
	"Exhibit",
	"Priority",
	"Department",
	"Status",
}

// TableRenderer handles the table-style rendering of jotform rows
// within a given width.
type TableRenderer struct {
	theme tui.Theme
	width int
}

// NewTableRenderer creates a TableRenderer for the given row width.
func NewTableRenderer(theme tui.Theme, width int) TableRenderer {
	return TableRenderer{theme: theme, width: width}
}

// columnWidths splits the row width evenly across the columns.
func (renderer TableRenderer) columnWidths() []int {
	widths := make([]int, len(tableColumns))
	if renderer.width <= 0 {
		return widths
	}
	base := renderer.width / len(tableColumns)
	remainder := renderer.width % len(tableColumns)
	for index := range widths {
		widths[index] = base
		if index < remainder {
			widths[index]++
		}
	}
	return widths
}

// RenderHeader renders the column title row.
func (renderer TableRenderer) RenderHeader() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(renderer.theme.HeaderForeground).
		Bold(true)

	widths := renderer.columnWidths()
	var row strings.Builder
	for index, title := range tableColumns {
		row.WriteString(renderCell(title, widths[index], headerStyle, headerStyle, nil))
	}
	return lipgloss.NewStyle().Width(renderer.width).MaxWidth(renderer.width).Render(row.String())
}

// RenderRow renders a single jotform as a table row. The selected flag
// controls highlight styling. The highlights parameter carries rune
// positions from the fuzzy filter for the free-text columns; matched
// characters get the match highlight treatment.
func (renderer TableRenderer) RenderRow(form schema.Jotform, selected bool, highlights CellHighlights) string {
	if selected {
		return renderer.renderSelectedRow(form, highlights)
	}
	return renderer.renderNormalRow(form, highlights)
}

// renderNormalRow renders a row with per-column foreground colors on
// the default terminal background. Status, priority, and department
// cells take their color from the theme lookup so the operator can
// triage by hue without reading.
func (renderer TableRenderer) renderNormalRow(form schema.Jotform, highlights CellHighlights) string {
	textStyle := lipgloss.NewStyle().Foreground(renderer.theme.NormalText)
	dateStyle := lipgloss.NewStyle().Foreground(renderer.theme.FaintText)
	highlightStyle := lipgloss.NewStyle().
		Foreground(renderer.theme.NormalText).
		Background(renderer.theme.MatchHighlightBackground)

	priorityStyle := lipgloss.NewStyle().
		Foreground(renderer.theme.PriorityColor(form.PriorityLevel)).
		Bold(form.PriorityLevel == schema.PriorityHigh)
	departmentStyle := lipgloss.NewStyle().
		Foreground(renderer.theme.DepartmentColor(form.Department))
	statusStyle := lipgloss.NewStyle().
		Foreground(renderer.theme.StatusColor(form.Status))

	widths := renderer.columnWidths()
	var row strings.Builder
	row.WriteString(renderCell(form.SubmitterName.First, widths[0], textStyle, highlightStyle, highlights.Submitter))
	row.WriteString(renderCell(form.DisplayDate(), widths[1], dateStyle, highlightStyle, nil))
	row.WriteString(renderCell(form.Location, widths[2], textStyle, highlightStyle, highlights.Location))
	row.WriteString(renderCell(form.ExhibitName, widths[3], textStyle, highlightStyle, highlights.Exhibit))
	row.WriteString(renderCell(string(form.PriorityLevel), widths[4], priorityStyle, highlightStyle, nil))
	row.WriteString(renderCell(string(form.Department), widths[5], departmentStyle, highlightStyle, nil))
	row.WriteString(renderCell(string(form.Status), widths[6], statusStyle, highlightStyle, nil))

	return lipgloss.NewStyle().Width(renderer.width).MaxWidth(renderer.width).Render(row.String())
}

// renderSelectedRow renders the selected row with a highlight
// background. All cells use the selected foreground so the semantic
// colors never fight the selection bar; filter matches switch to
// bold+underline because a background tint would vanish against the
// selection color.
func (renderer TableRenderer) renderSelectedRow(form schema.Jotform, highlights CellHighlights) string {
	baseStyle := lipgloss.NewStyle().
		Background(renderer.theme.SelectedBackground).
		Foreground(renderer.theme.SelectedForeground)
	highlightStyle := baseStyle.Bold(true).Underline(true)

	widths := renderer.columnWidths()
	var row strings.Builder
	row.WriteString(renderCell(form.SubmitterName.First, widths[0], baseStyle, highlightStyle, highlights.Submitter))
	row.WriteString(renderCell(form.DisplayDate(), widths[1], baseStyle, highlightStyle, nil))
	row.WriteString(renderCell(form.Location, widths[2], baseStyle, highlightStyle, highlights.Location))
	row.WriteString(renderCell(form.ExhibitName, widths[3], baseStyle, highlightStyle, highlights.Exhibit))
	row.WriteString(renderCell(string(form.PriorityLevel), widths[4], baseStyle, highlightStyle, nil))
	row.WriteString(renderCell(string(form.Department), widths[5], baseStyle, highlightStyle, nil))
	row.WriteString(renderCell(string(form.Status), widths[6], baseStyle, highlightStyle, nil))

	return baseStyle.Width(renderer.width).MaxWidth(renderer.width).Render(row.String())
}

// renderCell renders one table cell: text truncated to the cell width
// (ellipsis when cut), highlighted at the matched rune positions, and
// padded to exactly width columns. The final column of every cell
// stays blank so adjacent cells never touch.
func renderCell(text string, width int, baseStyle, highlightStyle lipgloss.Style, positions []int) string {
	if width <= 0 {
		return ""
	}

	contentWidth := width - 1
	if contentWidth < 1 {
		return baseStyle.Render(" ")
	}

	display := text
	if lipgloss.Width(display) > contentWidth {
		display = truncateString(display, contentWidth-1) + "…"
	}

	rendered := highlightRuns(display, positions, baseStyle, highlightStyle)

	padding := width - lipgloss.Width(display)
	if padding > 0 {
		rendered += baseStyle.Render(strings.Repeat(" ", padding))
	}
	return rendered
}

// highlightRuns renders text with character-level highlighting at the
// given rune positions. Positions index the original column text, so
// anything past the truncated display is ignored. Consecutive runs of
// same-style characters are batched into a single Render call to keep
// ANSI output compact.
func highlightRuns(text string, positions []int, baseStyle, highlightStyle lipgloss.Style) string {
	if len(positions) == 0 {
		return baseStyle.Render(text)
	}

	positionSet := make(map[int]bool, len(positions))
	for _, position := range positions {
		positionSet[position] = true
	}

	runes := []rune(text)
	var result strings.Builder
	runStart := 0
	isHighlighted := len(runes) > 0 && positionSet[0]

	for index := 1; index <= len(runes); index++ {
		currentHighlighted := index < len(runes) && positionSet[index]
		if currentHighlighted != isHighlighted || index == len(runes) {
			chunk := string(runes[runStart:index])
			if isHighlighted {
				result.WriteString(highlightStyle.Render(chunk))
			} else {
				result.WriteString(baseStyle.Render(chunk))
			}
			runStart = index
			isHighlighted = currentHighlighted
		}
	}

	return result.String()
}

// truncateString truncates a string to maxWidth visual columns.
// Handles wide characters via lipgloss width measurement.
func truncateString(text string, maxWidth int) string {
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for length := len(runes) - 1; length >= 0; length-- {
		candidate := string(runes[:length])
		if lipgloss.Width(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}
