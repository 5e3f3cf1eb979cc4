// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ljt019/jotview/lib/schema/jotform"
)

// Theme defines the color palette for jotview's terminal UI. Colors
// are truecolor hex values; lipgloss downsamples them automatically on
// terminals without 24-bit support.
//
// The fields cover universal chrome (text, selection, borders) and the
// semantic categories that drive at-a-glance triage on a maintenance
// queue: status, priority, and department.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Status colors.
	StatusOpen       lipgloss.Color
	StatusInProgress lipgloss.Color
	StatusClosed     lipgloss.Color
	StatusUnplanned  lipgloss.Color

	// Priority colors.
	PriorityLow    lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityHigh   lipgloss.Color

	// Department colors.
	DepartmentExhibits   lipgloss.Color
	DepartmentOperations lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// HotAccent is the background tint for rows whose status changed
	// moments ago. Rendered at full strength on ignition, then faded
	// out by the heat tracker.
	HotAccent lipgloss.Color

	// Filter match highlighting.
	MatchHighlightBackground lipgloss.Color
}

// StatusColor returns the color for a jotform status. Unknown values
// render faint, matching how the ordering treats them as unremarkable.
func (theme Theme) StatusColor(status jotform.Status) lipgloss.Color {
	switch status {
	case jotform.StatusOpen:
		return theme.StatusOpen
	case jotform.StatusInProgress:
		return theme.StatusInProgress
	case jotform.StatusClosed:
		return theme.StatusClosed
	case jotform.StatusUnplanned:
		return theme.StatusUnplanned
	default:
		return theme.FaintText
	}
}

// PriorityColor returns the color for a priority level. Unknown values
// fall back to normal text.
func (theme Theme) PriorityColor(priority jotform.Priority) lipgloss.Color {
	switch priority {
	case jotform.PriorityLow:
		return theme.PriorityLow
	case jotform.PriorityMedium:
		return theme.PriorityMedium
	case jotform.PriorityHigh:
		return theme.PriorityHigh
	default:
		return theme.NormalText
	}
}

// DepartmentColor returns the color for a department. The department
// set is open on the wire, so anything beyond the two known ones falls
// back to normal text.
func (theme Theme) DepartmentColor(department jotform.Department) lipgloss.Color {
	switch department {
	case jotform.DepartmentExhibits:
		return theme.DepartmentExhibits
	case jotform.DepartmentOperations:
		return theme.DepartmentOperations
	default:
		return theme.NormalText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. The status
// and priority hues are the ones floor staff already know from the
// submission kiosks: pale green for open, thistle for in progress,
// pink for closed, gray for unplanned.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("#DCDCDC"),
	FaintText:  lipgloss.Color("#8A8A8A"),

	SelectedBackground: lipgloss.Color("#303030"),
	SelectedForeground: lipgloss.Color("#FFFFFF"),

	StatusOpen:       lipgloss.Color("#90EE90"),
	StatusInProgress: lipgloss.Color("#D8BFD8"),
	StatusClosed:     lipgloss.Color("#FFB6C1"),
	StatusUnplanned:  lipgloss.Color("#696969"),

	PriorityLow:    lipgloss.Color("#90EE90"),
	PriorityMedium: lipgloss.Color("#FFFF99"),
	PriorityHigh:   lipgloss.Color("#FFB6C1"),

	DepartmentExhibits:   lipgloss.Color("#FFB752"),
	DepartmentOperations: lipgloss.Color("#ADD8E6"),

	HeaderForeground: lipgloss.Color("#FFFFFF"),
	BorderColor:      lipgloss.Color("#585858"),
	HelpText:         lipgloss.Color("#6C6C6C"),

	HotAccent: lipgloss.Color("#5F5F00"),

	MatchHighlightBackground: lipgloss.Color("#5F5F00"),
}

// LightTheme is the palette for light terminal backgrounds. Same hue
// families as DefaultTheme, darkened for contrast against white.
var LightTheme = Theme{
	NormalText: lipgloss.Color("#1C1C1C"),
	FaintText:  lipgloss.Color("#6C6C6C"),

	SelectedBackground: lipgloss.Color("#D7D7D7"),
	SelectedForeground: lipgloss.Color("#000000"),

	StatusOpen:       lipgloss.Color("#228B22"),
	StatusInProgress: lipgloss.Color("#8B5F8B"),
	StatusClosed:     lipgloss.Color("#B03060"),
	StatusUnplanned:  lipgloss.Color("#696969"),

	PriorityLow:    lipgloss.Color("#228B22"),
	PriorityMedium: lipgloss.Color("#8B7500"),
	PriorityHigh:   lipgloss.Color("#B03060"),

	DepartmentExhibits:   lipgloss.Color("#B5651D"),
	DepartmentOperations: lipgloss.Color("#4682B4"),

	HeaderForeground: lipgloss.Color("#000000"),
	BorderColor:      lipgloss.Color("#A8A8A8"),
	HelpText:         lipgloss.Color("#8A8A8A"),

	HotAccent: lipgloss.Color("#FFE8B0"),

	MatchHighlightBackground: lipgloss.Color("#FFE8B0"),
}
