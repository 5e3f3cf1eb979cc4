// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package jotformui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the jotform review TUI.
type KeyMap struct {
	// Selection movement in the table.
	Up   key.Binding
	Down key.Binding

	// Status mutation on the selected jotform.
	CycleStatus key.Binding

	// Description pane scrolling (one line per press).
	ScrollUp   key.Binding
	ScrollDown key.Binding

	// Data refresh.
	Refresh key.Binding

	// Filter.
	FilterActivate key.Binding // Enter filter mode.
	FilterClear    key.Binding // Clear filter text / exit filter mode.

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓", "down"),
	),
	CycleStatus: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "change status"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "scroll description up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "scroll description down"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear filter"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
