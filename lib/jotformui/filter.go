// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package jotformui

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/junegunn/fzf/src/util"

	schema "github.com/ljt019/jotview/lib/schema/jotform"
	"github.com/ljt019/jotview/lib/tui"
)

// FilterModel implements fzf-style fuzzy matching across the jotform
// fields an operator would search by: submitter name, location,
// exhibit, description, department, and status. The filter is a
// view-layer overlay: the session core keeps the full collection and
// its triage order untouched, and clearing the filter restores them.
type FilterModel struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus
	// (the user pressed / to start typing).
	Active bool

	// slab is the reusable fzf scratch allocation, created on first
	// use. The single event loop is the only caller, so sharing one
	// slab across matches is safe.
	slab *util.Slab
}

// FilterResult pairs a jotform with its best match score and the rune
// positions that matched inside the table's highlightable columns.
type FilterResult struct {
	Form  schema.Jotform
	Score int

	Highlights CellHighlights
}

// CellHighlights carries matched rune positions for the table's
// free-text columns. Positions index the column's source text, not
// the truncated cell; the renderer skips positions past the cut.
// Matches in fields without a highlightable column (description,
// department, status) narrow the list without highlighting anything.
type CellHighlights struct {
	Submitter []int
	Location  []int
	Exhibit   []int
}

// ApplyFuzzy filters the forms against the current query. An empty
// query returns every form in its input order with zero scores.
// Otherwise a form is kept when any searched field matches, scored by
// its best field, and the results come back best match first (stable,
// so equal scores keep the triage order).
func (filter *FilterModel) ApplyFuzzy(forms []schema.Jotform) []FilterResult {
	if filter.Input == "" {
		results := make([]FilterResult, len(forms))
		for index, form := range forms {
			results[index] = FilterResult{Form: form}
		}
		return results
	}

	if filter.slab == nil {
		filter.slab = tui.NewSlab()
	}
	pattern := []rune(filter.Input)

	var results []FilterResult
	for _, form := range forms {
		result := FilterResult{Form: form}

		// Submitter matches run against the full name so a last-name
		// query still narrows, even though the table only shows the
		// first name. Positions inside the last name fall past the
		// displayed cell and simply don't highlight.
		submitter := tui.FuzzyMatch(form.SubmitterName.First+" "+form.SubmitterName.Last, pattern, filter.slab)
		if submitter.Score > result.Score {
			result.Score = submitter.Score
		}
		if submitter.Score > 0 {
			result.Highlights.Submitter = submitter.Positions
		}

		location := tui.FuzzyMatch(form.Location, pattern, filter.slab)
		if location.Score > result.Score {
			result.Score = location.Score
		}
		if location.Score > 0 {
			result.Highlights.Location = location.Positions
		}

		exhibit := tui.FuzzyMatch(form.ExhibitName, pattern, filter.slab)
		if exhibit.Score > result.Score {
			result.Score = exhibit.Score
		}
		if exhibit.Score > 0 {
			result.Highlights.Exhibit = exhibit.Positions
		}

		// Score-only fields.
		for _, text := range []string{form.Description, string(form.Department), string(form.Status)} {
			if match := tui.FuzzyMatch(text, pattern, filter.slab); match.Score > result.Score {
				result.Score = match.Score
			}
		}

		if result.Score > 0 {
			results = append(results, result)
		}
	}

	slices.SortStableFunc(results, func(a, b FilterResult) int {
		return b.Score - a.Score
	})
	return results
}

// HandleRune processes a character typed while the filter is active.
// Returns true if the input changed.
func (filter *FilterModel) HandleRune(character rune) bool {
	filter.Input += string(character)
	return true
}

// HandleBackspace removes the last character from the filter input.
// Returns true if the input changed.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the filter input and deactivates it.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter bar. When active, shows the input with a
// cursor. When inactive with text, shows the filter text. When
// inactive with no text, returns empty string (hidden).
func (filter *FilterModel) View(theme tui.Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(theme.NormalText).
		Width(width)

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return style.Render(" / " + filter.Input + cursor)
	}

	// Inactive but has text: show the filter as a subtle indicator.
	dimStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width)
	return dimStyle.Render(" filter: " + filter.Input)
}
