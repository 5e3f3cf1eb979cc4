// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package jotform

import (
	"slices"

	schema "github.com/ljt019/jotview/lib/schema/jotform"
)

// Session is the review session's state: the ordered collection, the
// selected jotform's id, and the detail-pane scroll offset. The zero
// value is an empty session; NewSession loads an initial fetch result.
type Session struct {
	forms        []schema.Jotform
	selectedID   string
	scrollOffset int
}

// NewSession builds a session from an initial fetch result. The slice
// is cloned, sorted, and the first jotform selected.
func NewSession(forms []schema.Jotform) *Session {
	session := &Session{}
	session.Load(forms)
	return session
}

// Load replaces the whole collection: clone, sort, select the first
// jotform (or clear the selection when there are none), scroll to the
// top. This is the full-reset path used at startup and on manual
// refresh.
func (s *Session) Load(forms []schema.Jotform) {
	s.forms = slices.Clone(forms)
	Sort(s.forms)
	if len(s.forms) == 0 {
		s.selectedID = ""
	} else {
		s.selectedID = s.forms[0].ID
	}
	s.scrollOffset = 0
}

// Find returns the jotform with the given id.
func (s *Session) Find(id string) (schema.Jotform, bool) {
	if index := s.indexOf(id); index >= 0 {
		return s.forms[index], true
	}
	return schema.Jotform{}, false
}

// ApplyStatus sets the status of the identified jotform and re-sorts.
// The selection is anchored by id, so it keeps pointing at the same
// jotform even though positions shuffle. Unknown ids are a silent
// no-op: a mutation can only arrive for a jotform the session knows,
// so a miss means a stale message, not an error worth surfacing.
func (s *Session) ApplyStatus(id string, status schema.Status) {
	index := s.indexOf(id)
	if index < 0 {
		return
	}
	s.forms[index].Status = status
	Sort(s.forms)
}

// Move shifts the selection to the visually adjacent jotform: delta -1
// is up, +1 is down. Moving past either end is a no-op, not a wrap.
// A successful move scrolls the detail pane back to the top, because
// the pane now shows a different description.
func (s *Session) Move(delta int) {
	index := s.indexOf(s.selectedID)
	if index < 0 {
		return
	}
	target := index + delta
	if target < 0 || target >= len(s.forms) {
		return
	}
	s.selectedID = s.forms[target].ID
	s.scrollOffset = 0
}

// Reselect anchors the selection to id if the session holds it.
// Identity is all that matters here, not position: after a status
// change re-sorts the table, the mutated jotform stays selected
// wherever it landed, and because the selected id's value did not
// change, the scroll offset is preserved. Selecting a different id
// (the filter jump path) resets scroll like any selection change.
func (s *Session) Reselect(id string) {
	if s.indexOf(id) < 0 {
		return
	}
	if id == s.selectedID {
		return
	}
	s.selectedID = id
	s.scrollOffset = 0
}

// Scroll moves the detail pane offset by delta, floored at zero.
// There is deliberately no upper bound: the pane renders blank lines
// past the end of the description rather than second-guessing the
// offset against content it does not own.
func (s *Session) Scroll(delta int) {
	s.scrollOffset += delta
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}

// ResetScroll returns the detail pane to the top.
func (s *Session) ResetScroll() {
	s.scrollOffset = 0
}

// Forms returns the ordered collection. Callers must treat the slice
// as read-only; all mutation goes through Session methods.
func (s *Session) Forms() []schema.Jotform {
	return s.forms
}

// Len returns the number of jotforms in the session.
func (s *Session) Len() int {
	return len(s.forms)
}

// SelectedID returns the selected jotform's id, or "" for an empty
// session.
func (s *Session) SelectedID() string {
	return s.selectedID
}

// Selected returns the selected jotform.
func (s *Session) Selected() (schema.Jotform, bool) {
	return s.Find(s.selectedID)
}

// SelectedIndex returns the selected jotform's position in the
// current order, or -1 for an empty session.
func (s *Session) SelectedIndex() int {
	return s.indexOf(s.selectedID)
}

// ScrollOffset returns the detail pane's line offset.
func (s *Session) ScrollOffset() int {
	return s.scrollOffset
}

func (s *Session) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.forms, func(form schema.Jotform) bool {
		return form.ID == id
	})
}
