// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package jotformui

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	schema "github.com/ljt019/jotview/lib/schema/jotform"
)

// testForms returns five jotforms covering every status and a spread
// of submission dates. Input order is deliberately shuffled; the
// session sorts them on load:
//
//	jot-005  InProgress  02-10  (in-progress bucket first)
//	jot-002  Open        03-15  (open/closed bucket, newest first)
//	jot-001  Closed      03-01
//	jot-003  Open        01-20
//	jot-004  Unplanned   03-20  (unplanned bucket last despite the date)
func testForms() []schema.Jotform {
	return []schema.Jotform{
		{
			ID:            "jot-001",
			SubmitterName: schema.SubmitterName{First: "Sofia", Last: "Reyes"},
			CreatedAt:     schema.SubmissionDate{Date: "2024-03-01", Time: "10:15 AM"},
			Location:      "East Gallery",
			ExhibitName:   "Tesla Coil",
			Description:   "Spark gap misfires on startup.",
			PriorityLevel: schema.PriorityMedium,
			Department:    schema.DepartmentExhibits,
			Status:        schema.StatusClosed,
		},
		{
			ID:            "jot-002",
			SubmitterName: schema.SubmitterName{First: "Leo", Last: "Grant"},
			CreatedAt:     schema.SubmissionDate{Date: "2024-03-15", Time: "9:42 AM"},
			Location:      "Main Atrium",
			ExhibitName:   "Foucault Pendulum",
			Description:   "Pendulum bob scrapes the pit ring at full swing.",
			PriorityLevel: schema.PriorityHigh,
			Department:    schema.DepartmentExhibits,
			Status:        schema.StatusOpen,
		},
		{
			ID:            "jot-003",
			SubmitterName: schema.SubmitterName{First: "Omar", Last: "Haddad"},
			CreatedAt:     schema.SubmissionDate{Date: "2024-01-20", Time: "3:05 PM"},
			Location:      "Second Floor",
			ExhibitName:   "Space Capsule",
			Description:   "Hatch hinge sticks in cold weather.",
			PriorityLevel: schema.PriorityLow,
			Department:    schema.DepartmentOperations,
			Status:        schema.StatusOpen,
		},
		{
			ID:            "jot-004",
			SubmitterName: schema.SubmitterName{First: "Nina", Last: "Park"},
			CreatedAt:     schema.SubmissionDate{Date: "2024-03-20", Time: "11:58 AM"},
			Location:      "Basement",
			ExhibitName:   "Steam Engine",
			Description:   "Flywheel guard rattles at low speed.",
			PriorityLevel: schema.PriorityLow,
			Department:    schema.DepartmentOperations,
			Status:        schema.StatusUnplanned,
		},
		{
			ID:            "jot-005",
			SubmitterName: schema.SubmitterName{First: "Maya", Last: "Chen"},
			CreatedAt:     schema.SubmissionDate{Date: "2024-02-10", Time: "1:30 PM"},
			Location:      "West Wing",
			ExhibitName:   "Dinosaur Hall",
			Description:   "Motion sensor triggers the roar loop twice.",
			PriorityLevel: schema.PriorityHigh,
			Department:    schema.DepartmentExhibits,
			Status:        schema.StatusInProgress,
		},
	}
}

// statusUpdate records one UpdateStatus call observed by fakeService.
type statusUpdate struct {
	id     string
	status schema.Status
}

// fakeService implements Service in memory. UpdateStatus calls are
// recorded; both operations can be made to fail.
type fakeService struct {
	updates   []statusUpdate
	updateErr error

	fetchForms []schema.Jotform
	fetchErr   error
}

func (service *fakeService) FetchJotforms(ctx context.Context) ([]schema.Jotform, error) {
	if service.fetchErr != nil {
		return nil, service.fetchErr
	}
	return service.fetchForms, nil
}

func (service *fakeService) UpdateStatus(ctx context.Context, id string, status schema.Status) error {
	service.updates = append(service.updates, statusUpdate{id: id, status: status})
	return service.updateErr
}

// visibleIDs returns the ids of the model's visible rows in order.
func visibleIDs(model Model) []string {
	ids := make([]string, len(model.visible))
	for index, form := range model.visible {
		ids[index] = form.ID
	}
	return ids
}

// runForStatusResult executes a command returned from a status cycle
// and returns the POST result message. The command may be a batch
// (POST plus animation tick); the POST comes first, so the batch walk
// stops before executing the tick.
func runForStatusResult(t *testing.T, command tea.Cmd) statusUpdateResultMsg {
	t.Helper()
	if command == nil {
		t.Fatal("expected a command")
	}
	switch message := command().(type) {
	case statusUpdateResultMsg:
		return message
	case tea.BatchMsg:
		for _, sub := range message {
			if result, ok := sub().(statusUpdateResultMsg); ok {
				return result
			}
		}
	}
	t.Fatal("command did not produce a status update result")
	return statusUpdateResultMsg{}
}

// runForRefreshResult executes a command returned from a refresh and
// returns the fetch result message. The fetch is batched with the
// spinner tick; the fetch comes first.
func runForRefreshResult(t *testing.T, command tea.Cmd) refreshResultMsg {
	t.Helper()
	if command == nil {
		t.Fatal("expected a command")
	}
	switch message := command().(type) {
	case refreshResultMsg:
		return message
	case tea.BatchMsg:
		for _, sub := range message {
			if result, ok := sub().(refreshResultMsg); ok {
				return result
			}
		}
	}
	t.Fatal("command did not produce a refresh result")
	return refreshResultMsg{}
}

func TestNewModel(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())

	want := []string{"jot-005", "jot-002", "jot-001", "jot-003", "jot-004"}
	if got := visibleIDs(model); !slices.Equal(got, want) {
		t.Fatalf("initial order = %v, want %v", got, want)
	}
	if model.session.SelectedID() != "jot-005" {
		t.Errorf("initial selection = %q, want jot-005", model.session.SelectedID())
	}
	if model.cursor != 0 {
		t.Errorf("initial cursor = %d, want 0", model.cursor)
	}
	if model.focusRegion != FocusList {
		t.Errorf("initial focus = %d, want FocusList", model.focusRegion)
	}
}

func TestModelNavigation(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	// Move down twice: jot-005 -> jot-002 -> jot-001.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	model = updated.(Model)

	if model.cursor != 2 {
		t.Errorf("cursor after jj = %d, want 2", model.cursor)
	}
	if model.session.SelectedID() != "jot-001" {
		t.Errorf("selection after jj = %q, want jot-001", model.session.SelectedID())
	}

	// Move back up.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	model = updated.(Model)
	if model.session.SelectedID() != "jot-002" {
		t.Errorf("selection after k = %q, want jot-002", model.session.SelectedID())
	}

	// Arrow keys drive the same bindings.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model = updated.(Model)
	if model.cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", model.cursor)
	}

	// Moving past the top is a no-op, not a wraparound.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	model = updated.(Model)
	if model.cursor != 0 {
		t.Errorf("cursor after k at top = %d, want 0", model.cursor)
	}

	// Moving past the bottom is a no-op too.
	for range 10 {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
		model = updated.(Model)
	}
	if model.cursor != 4 {
		t.Errorf("cursor after 10 j = %d, want 4", model.cursor)
	}
	if model.session.SelectedID() != "jot-004" {
		t.Errorf("selection at bottom = %q, want jot-004", model.session.SelectedID())
	}
}

func TestModelNavigationRewindsDescriptionScroll(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	model = updated.(Model)
	if model.session.ScrollOffset() != 2 {
		t.Fatalf("scroll after two pgdown = %d, want 2", model.session.ScrollOffset())
	}

	// A selection change shows a different description, so the pane
	// rewinds to the top.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	model = updated.(Model)
	if model.session.ScrollOffset() != 0 {
		t.Errorf("scroll after move = %d, want 0", model.session.ScrollOffset())
	}

	// A boundary no-op move keeps the offset: same row, same text.
	for range 10 {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
		model = updated.(Model)
	}
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	model = updated.(Model)
	if model.session.ScrollOffset() != 1 {
		t.Errorf("scroll after no-op move = %d, want 1", model.session.ScrollOffset())
	}
}

func TestModelDescriptionScroll(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	// The offset is floored at zero.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	model = updated.(Model)
	if model.session.ScrollOffset() != 0 {
		t.Errorf("scroll after pgup at top = %d, want 0", model.session.ScrollOffset())
	}

	// There is no upper bound: the pane renders blank lines past the
	// end of the text instead of clamping the offset.
	for range 40 {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyPgDown})
		model = updated.(Model)
	}
	if model.session.ScrollOffset() != 40 {
		t.Errorf("scroll after 40 pgdown = %d, want 40", model.session.ScrollOffset())
	}

	// The view still renders.
	view := model.View()
	if view == "" {
		t.Error("view should render with the description scrolled past its end")
	}
}

func TestModelListScrollFollowsCursor(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())

	// Height 12 leaves 7 content rows: 4 for the table body, 3 for
	// the description pane. Five rows don't fit in four.
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 12})
	model = updated.(Model)

	for range 4 {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
		model = updated.(Model)
	}
	if model.cursor != 4 {
		t.Fatalf("cursor = %d, want 4", model.cursor)
	}
	if model.listScroll != 1 {
		t.Errorf("listScroll = %d, want 1", model.listScroll)
	}

	view := model.View()
	if !strings.Contains(view, "[bottom] 5/5") {
		t.Errorf("help bar should show the scrolled position, got:\n%s", view)
	}

	for range 4 {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
		model = updated.(Model)
	}
	if model.listScroll != 0 {
		t.Errorf("listScroll after returning to top = %d, want 0", model.listScroll)
	}
}

func TestModelQuit(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	_, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if command == nil {
		t.Fatal("q key should return a command")
	}

	message := command()
	if _, isQuit := message.(tea.QuitMsg); !isQuit {
		t.Errorf("expected QuitMsg, got %T", message)
	}
}

func TestModelCycleStatusAppliesOptimistically(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	// Scroll the description so the test can prove the offset survives
	// the re-sort.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	model = updated.(Model)

	// jot-005 is selected and in progress. Cycling moves it to Closed,
	// which drops it out of the in-progress bucket into the middle.
	updated, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	model = updated.(Model)

	mutated, _ := model.session.Find("jot-005")
	if mutated.Status != schema.StatusClosed {
		t.Fatalf("jot-005 status = %s, want Closed", mutated.Status)
	}
	want := []string{"jot-002", "jot-001", "jot-005", "jot-003", "jot-004"}
	if got := visibleIDs(model); !slices.Equal(got, want) {
		t.Errorf("order after cycle = %v, want %v", got, want)
	}

	// Selection follows the jotform to its new position and the
	// description offset is untouched (same jotform, same text).
	if model.session.SelectedID() != "jot-005" {
		t.Errorf("selection = %q, want jot-005", model.session.SelectedID())
	}
	if model.cursor != 2 {
		t.Errorf("cursor = %d, want 2", model.cursor)
	}
	if model.session.ScrollOffset() != 2 {
		t.Errorf("scroll offset = %d, want 2", model.session.ScrollOffset())
	}

	// The batched command carries the backend POST.
	result := runForStatusResult(t, command)
	if result.id != "jot-005" || result.status != schema.StatusClosed {
		t.Errorf("posted update = %s/%s, want jot-005/Closed", result.id, result.status)
	}
	if result.err != nil {
		t.Errorf("unexpected POST error: %v", result.err)
	}
	if len(service.updates) != 1 || service.updates[0] != (statusUpdate{id: "jot-005", status: schema.StatusClosed}) {
		t.Errorf("service saw %v, want one jot-005/Closed update", service.updates)
	}

	// Folding the success result back in leaves no notice.
	updated, _ = model.Update(result)
	model = updated.(Model)
	if model.notice != "" {
		t.Errorf("notice after successful update = %q, want empty", model.notice)
	}
}

func TestModelCycleStatusRoundTrip(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	// Four presses walk the full cycle: InProgress -> Closed ->
	// Unplanned -> Open -> InProgress. The local mutation is
	// synchronous; the returned commands are not executed here.
	statuses := []schema.Status{
		schema.StatusClosed,
		schema.StatusUnplanned,
		schema.StatusOpen,
		schema.StatusInProgress,
	}
	for _, wantStatus := range statuses {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
		model = updated.(Model)
		form, _ := model.session.Find("jot-005")
		if form.Status != wantStatus {
			t.Fatalf("jot-005 status = %s, want %s", form.Status, wantStatus)
		}
		if model.session.SelectedID() != "jot-005" {
			t.Fatalf("selection left jot-005 at status %s", wantStatus)
		}
	}

	// Back in the in-progress bucket, back on top.
	if model.cursor != 0 {
		t.Errorf("cursor after round trip = %d, want 0", model.cursor)
	}
}

func TestModelCycleStatusUnknownBecomesOpen(t *testing.T) {
	service := &fakeService{}
	forms := testForms()
	forms[0].Status = schema.Status("Reopened")
	model := NewModel(service, forms)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	// Unknown statuses sort in the middle bucket: jot-001 (03-01,
	// Reopened) sits between jot-002 and jot-003.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	model = updated.(Model)
	if model.session.SelectedID() != "jot-001" {
		t.Fatalf("selection = %q, want jot-001", model.session.SelectedID())
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	model = updated.(Model)

	form, _ := model.session.Find("jot-001")
	if form.Status != schema.StatusOpen {
		t.Errorf("cycled unknown status = %s, want Open", form.Status)
	}
}

func TestModelCycleStatusFailureKeepsLocalChange(t *testing.T) {
	service := &fakeService{updateErr: errors.New("backend down")}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	updated, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	model = updated.(Model)

	result := runForStatusResult(t, command)
	if result.err == nil {
		t.Fatal("expected the POST to fail")
	}

	updated, fade := model.Update(result)
	model = updated.(Model)

	if !strings.Contains(model.notice, "status update failed") {
		t.Errorf("notice = %q, want a status update failure", model.notice)
	}
	if fade == nil {
		t.Error("a notice should schedule its own fade")
	}

	// The optimistic local change stays; there is no rollback.
	form, _ := model.session.Find("jot-005")
	if form.Status != schema.StatusClosed {
		t.Errorf("jot-005 status after failed POST = %s, want Closed", form.Status)
	}

	view := model.View()
	if !strings.Contains(view, "Warning: status update failed") {
		t.Errorf("view should surface the failure notice, got:\n%s", view)
	}

	// The notice fades back to the plain help bar.
	updated, _ = model.Update(noticeFadeMsg{})
	model = updated.(Model)
	if model.notice != "" {
		t.Errorf("notice after fade = %q, want empty", model.notice)
	}
}

func TestModelRefresh(t *testing.T) {
	refreshed := testForms()
	refreshed[1].Status = schema.StatusInProgress // jot-002: Open -> InProgress
	service := &fakeService{fetchForms: refreshed}

	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	updated, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	model = updated.(Model)
	if !model.refreshing {
		t.Fatal("r should mark the model as refreshing")
	}

	// A second r while the fetch is in flight is a no-op.
	updated, second := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	model = updated.(Model)
	if second != nil {
		t.Error("refresh while refreshing should not return a command")
	}

	result := runForRefreshResult(t, command)
	if result.err != nil {
		t.Fatalf("unexpected fetch error: %v", result.err)
	}

	updated, _ = model.Update(result)
	model = updated.(Model)

	if model.refreshing {
		t.Error("refresh result should clear the refreshing flag")
	}

	// jot-002 joined the in-progress bucket with the newer date, so it
	// now sorts ahead of jot-005. The selection re-anchors by id.
	want := []string{"jot-002", "jot-005", "jot-001", "jot-003", "jot-004"}
	if got := visibleIDs(model); !slices.Equal(got, want) {
		t.Errorf("order after refresh = %v, want %v", got, want)
	}
	if model.session.SelectedID() != "jot-005" {
		t.Errorf("selection after refresh = %q, want jot-005", model.session.SelectedID())
	}
	if model.cursor != 1 {
		t.Errorf("cursor after refresh = %d, want 1", model.cursor)
	}

	// The server-side status change glows.
	if model.heatTracker.Heat("jot-002", time.Now()) <= 0 {
		t.Error("jot-002 should be hot after its status changed server-side")
	}
	if model.heatTracker.Heat("jot-001", time.Now()) != 0 {
		t.Error("jot-001 did not change and should not be hot")
	}
}

func TestModelRefreshFailureNotice(t *testing.T) {
	service := &fakeService{fetchErr: errors.New("gateway timeout")}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	updated, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	model = updated.(Model)

	result := runForRefreshResult(t, command)
	if result.err == nil {
		t.Fatal("expected the fetch to fail")
	}

	updated, _ = model.Update(result)
	model = updated.(Model)

	if model.refreshing {
		t.Error("failed refresh should clear the refreshing flag")
	}
	if !strings.Contains(model.notice, "refresh failed") {
		t.Errorf("notice = %q, want a refresh failure", model.notice)
	}

	// The collection is untouched.
	if model.session.Len() != 5 {
		t.Errorf("session len after failed refresh = %d, want 5", model.session.Len())
	}
	form, _ := model.session.Find("jot-002")
	if form.Status != schema.StatusOpen {
		t.Errorf("jot-002 status after failed refresh = %s, want Open", form.Status)
	}
}

func TestModelRefreshNewFormsDoNotGlow(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	refreshed := append(testForms(), schema.Jotform{
		ID:            "jot-006",
		SubmitterName: schema.SubmitterName{First: "Iris", Last: "Wolfe"},
		CreatedAt:     schema.SubmissionDate{Date: "2024-04-01"},
		Location:      "Roof",
		ExhibitName:   "Solar Array",
		Description:   "Panel three reads zero output.",
		PriorityLevel: schema.PriorityMedium,
		Department:    schema.DepartmentOperations,
		Status:        schema.StatusOpen,
	})
	refreshed[0].Status = schema.StatusOpen // jot-001: Closed -> Open

	updated, command := model.Update(refreshResultMsg{forms: refreshed})
	model = updated.(Model)

	if model.session.Len() != 6 {
		t.Fatalf("session len = %d, want 6", model.session.Len())
	}
	if model.heatTracker.Heat("jot-001", time.Now()) <= 0 {
		t.Error("jot-001 changed status and should glow")
	}
	// jot-006 is new; glowing would mark every first sighting as a
	// change.
	if model.heatTracker.Heat("jot-006", time.Now()) != 0 {
		t.Error("jot-006 is new and should not glow")
	}
	if command == nil {
		t.Error("an ignited row should schedule the animation tick")
	}
	if !model.tickRunning {
		t.Error("tickRunning should be set while rows glow")
	}
}

func TestModelHeatTickStopsWhenCool(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	// Nothing is hot: the tick chain ends.
	model.tickRunning = true
	updated, command := model.Update(heatTickMsg{})
	model = updated.(Model)
	if command != nil {
		t.Error("tick with no hot rows should not reschedule")
	}
	if model.tickRunning {
		t.Error("tickRunning should clear when the chain ends")
	}

	// With a hot row the chain continues.
	model.heatTracker.Ignite("jot-001", time.Now())
	model.tickRunning = true
	updated, command = model.Update(heatTickMsg{})
	model = updated.(Model)
	if command == nil {
		t.Error("tick with hot rows should reschedule")
	}
	if !model.tickRunning {
		t.Error("tickRunning should stay set while rows are hot")
	}
}

func TestModelFilter(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	// Activate the filter.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	model = updated.(Model)
	if model.focusRegion != FocusFilter {
		t.Fatalf("after pressing /, focus should be FocusFilter, got %d", model.focusRegion)
	}

	// "pendulum" matches only jot-002 (exhibit and description).
	for _, character := range "pendulum" {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
		model = updated.(Model)
	}

	if got := visibleIDs(model); !slices.Equal(got, []string{"jot-002"}) {
		t.Fatalf("filtered view = %v, want [jot-002]", got)
	}
	// The selection snaps to the best match so the description pane
	// tracks what the operator is narrowing toward.
	if model.session.SelectedID() != "jot-002" {
		t.Errorf("selection while filtering = %q, want jot-002", model.session.SelectedID())
	}
	if model.cursor != 0 {
		t.Errorf("cursor while filtering = %d, want 0", model.cursor)
	}

	// The exhibit column match carries highlight positions.
	if len(model.highlights["jot-002"].Exhibit) == 0 {
		t.Error("exhibit match should record highlight positions")
	}

	// First Esc clears the text but stays in filter mode. The whole
	// collection returns and the selection survives at its sorted
	// position.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model = updated.(Model)
	if model.filter.Input != "" {
		t.Fatalf("first esc should clear the input, got %q", model.filter.Input)
	}
	if model.focusRegion != FocusFilter {
		t.Error("first esc should stay in filter mode")
	}
	if len(model.visible) != 5 {
		t.Errorf("visible after clearing = %d, want 5", len(model.visible))
	}
	if model.session.SelectedID() != "jot-002" {
		t.Errorf("selection after clearing = %q, want jot-002", model.session.SelectedID())
	}
	if model.cursor != 1 {
		t.Errorf("cursor after clearing = %d, want 1 (jot-002's sorted position)", model.cursor)
	}

	// Second Esc leaves filter mode.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model = updated.(Model)
	if model.focusRegion != FocusList {
		t.Error("second esc should return focus to the list")
	}
}

func TestModelFilterEnterKeepsText(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	model = updated.(Model)
	for _, character := range "atrium" {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
		model = updated.(Model)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	if model.focusRegion != FocusList {
		t.Error("enter should hand focus back to the list")
	}
	if model.filter.Input != "atrium" {
		t.Errorf("enter should keep the filter text, got %q", model.filter.Input)
	}
	if got := visibleIDs(model); !slices.Equal(got, []string{"jot-002"}) {
		t.Errorf("filtered view = %v, want [jot-002]", got)
	}

	// Navigation now works within the filtered view; the single row
	// means moves are no-ops.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	model = updated.(Model)
	if model.session.SelectedID() != "jot-002" {
		t.Errorf("selection = %q, want jot-002", model.session.SelectedID())
	}

	// Esc from list focus clears the confirmed filter.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model = updated.(Model)
	if model.filter.Input != "" {
		t.Errorf("esc should clear the confirmed filter, got %q", model.filter.Input)
	}
	if len(model.visible) != 5 {
		t.Errorf("visible after clearing = %d, want 5", len(model.visible))
	}
}

func TestModelFilterBackspace(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	model = updated.(Model)
	for _, character := range "pendulumzz" {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
		model = updated.(Model)
	}
	if len(model.visible) != 0 {
		t.Fatalf("visible with garbage suffix = %d, want 0", len(model.visible))
	}

	// Deleting the garbage restores the match.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	model = updated.(Model)

	if model.filter.Input != "pendulum" {
		t.Errorf("input after backspaces = %q, want pendulum", model.filter.Input)
	}
	if got := visibleIDs(model); !slices.Equal(got, []string{"jot-002"}) {
		t.Errorf("filtered view = %v, want [jot-002]", got)
	}
}

func TestModelFilterNoMatches(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	selectedBefore := model.session.SelectedID()

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	model = updated.(Model)
	for _, character := range "zzzz" {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
		model = updated.(Model)
	}

	if len(model.visible) != 0 {
		t.Fatalf("visible = %d, want 0", len(model.visible))
	}
	// The session keeps its selection anchor even while hidden.
	if model.session.SelectedID() != selectedBefore {
		t.Errorf("hidden selection = %q, want %q", model.session.SelectedID(), selectedBefore)
	}

	// An empty filtered table still renders.
	view := model.View()
	if view == "" {
		t.Error("view should render with no matches")
	}
}

func TestModelFilterQuitKeys(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	model = updated.(Model)

	// q is an ordinary character inside the filter.
	updated, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	model = updated.(Model)
	if command != nil {
		t.Error("q in filter mode should not quit")
	}
	if model.filter.Input != "q" {
		t.Errorf("filter input = %q, want q", model.filter.Input)
	}

	// ctrl+c still quits from anywhere.
	_, command = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if command == nil {
		t.Fatal("ctrl+c should return a command in filter mode")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Error("ctrl+c in filter mode should quit")
	}
}

func TestModelFilterActivateKeepsSelection(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	model = updated.(Model)
	selectedBefore := model.session.SelectedID()

	// Opening and closing the filter without typing must not move the
	// selection; the snap only happens once text narrows the view.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model = updated.(Model)

	if model.focusRegion != FocusList {
		t.Error("esc on an empty filter should return to the list")
	}
	if model.session.SelectedID() != selectedBefore {
		t.Errorf("selection = %q, want %q", model.session.SelectedID(), selectedBefore)
	}
}

func TestModelNoticeFromLogRecord(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	updated, command := model.Update(logRecordMsg{
		Summary: "gateway unreachable (host=jotservice.local)",
		Level:   slog.LevelError,
	})
	model = updated.(Model)

	if command == nil {
		t.Error("a routed log record should schedule a fade")
	}

	view := model.View()
	if !strings.Contains(view, "Error: gateway unreachable") {
		t.Errorf("view should show the error notice, got:\n%s", view)
	}

	updated, _ = model.Update(noticeFadeMsg{})
	model = updated.(Model)
	if strings.Contains(model.View(), "gateway unreachable") {
		t.Error("notice should clear after the fade")
	}
}

func TestModelView(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, testForms())

	// Before the first WindowSizeMsg the model has no dimensions.
	if view := model.View(); view != "Loading..." {
		t.Fatalf("view before resize = %q, want Loading...", view)
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)
	view := model.View()

	// Chrome: title rule with live counts.
	for _, want := range []string{"Jotforms", "5 shown", "1 in progress", "2 open", "1 closed", "1 unplanned"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	// Table: every column header, a first name, a display date.
	for _, want := range tableColumns {
		if !strings.Contains(view, want) {
			t.Errorf("view missing column header %q", want)
		}
	}
	if !strings.Contains(view, "Maya") {
		t.Error("view missing the first row's submitter first name")
	}
	if strings.Contains(view, "Chen") {
		t.Error("view should show first names only")
	}
	if !strings.Contains(view, "03-15-2024") {
		t.Error("view missing the MM-DD-YYYY display date")
	}

	// Description pane: the selected jotform's text under its rule.
	if !strings.Contains(view, "Description") {
		t.Error("view missing the description rule")
	}
	if !strings.Contains(view, "Motion sensor triggers the roar loop") {
		t.Error("view missing the selected description")
	}

	// Help bar.
	for _, want := range []string{"[LIST]", "e change status", "q quit", "1/5"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing help segment %q", want)
		}
	}
}

func TestModelViewUnknownStatusCounts(t *testing.T) {
	service := &fakeService{}
	forms := testForms()
	forms[2].Status = schema.Status("Triaged") // jot-003, was Open
	model := NewModel(service, forms)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	// Unknown statuses count as Open in the header stats, matching
	// how they sort and cycle.
	view := model.View()
	if !strings.Contains(view, "2 open") {
		t.Errorf("unknown status should count as open, got:\n%s", view)
	}
}

func TestModelEmptyState(t *testing.T) {
	service := &fakeService{}
	model := NewModel(service, nil)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	model = updated.(Model)

	view := model.View()
	if !strings.Contains(view, "No jotforms to review.") {
		t.Errorf("empty state missing message, got:\n%s", view)
	}
}
