// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package jotformui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ljt019/jotview/lib/jotform"
	schema "github.com/ljt019/jotview/lib/schema/jotform"
	"github.com/ljt019/jotview/lib/tui"
)

// Service is the backend gateway the model talks to. Implemented by
// jotclient.Client; tests substitute their own.
type Service interface {
	FetchJotforms(ctx context.Context) ([]schema.Jotform, error)
	UpdateStatus(ctx context.Context, id string, status schema.Status) error
}

// FocusRegion identifies which UI region receives keyboard input.
type FocusRegion int

const (
	// FocusList is the default: keys drive the table selection, the
	// description scroll, and the mutation/refresh commands.
	FocusList FocusRegion = iota

	// FocusFilter routes keystrokes into the filter input.
	FocusFilter
)

// statusUpdateResultMsg is sent when a background status POST
// completes. The id and status identify which optimistic local
// mutation the result belongs to.
type statusUpdateResultMsg struct {
	id     string
	status schema.Status
	err    error
}

// refreshResultMsg is sent when a background re-fetch completes.
type refreshResultMsg struct {
	forms []schema.Jotform
	err   error
}

// noticeFadeMsg is sent after a delay to clear the transient notice
// from the help bar.
type noticeFadeMsg struct{}

// heatTickMsg drives the fade-out of recently-changed rows.
type heatTickMsg struct{}

// noticeFadeDelay is how long notices stay visible in the help bar
// before fading back to the plain key hints.
const noticeFadeDelay = 5 * time.Second

// defaultRequestTimeout bounds the background service calls issued
// from the event loop.
const defaultRequestTimeout = 10 * time.Second

// chromeRows is the number of fixed-height rows around the two data
// panes: top chrome line, table header, description rule, bottom
// separator, and help bar.
const chromeRows = 5

// Model is the bubbletea model for the review screen. All state lives
// here and in the embedded session; the event loop is the only writer.
type Model struct {
	service Service
	session *jotform.Session
	theme   tui.Theme
	keys    KeyMap
	logger  *slog.Logger

	// Terminal dimensions from the last WindowSizeMsg.
	width  int
	height int
	ready  bool

	focusRegion FocusRegion

	// visible is the filtered view of the session's collection; the
	// cursor indexes into it and listScroll is its first rendered row.
	// With no filter text, visible mirrors the session order exactly.
	visible    []schema.Jotform
	highlights map[string]CellHighlights

	// cursor tracks where the session's selected id sits in the
	// visible view. Derived state: restoreCursor re-computes it after
	// every data or filter change.
	cursor     int
	listScroll int

	filter FilterModel

	// Refresh state: guard against overlapping fetches plus the
	// in-flight indicator.
	refreshing bool
	spinner    spinner.Model

	// Transient notice shown in the help bar (update failures,
	// refresh failures, routed log records).
	notice      string
	noticeLevel slog.Level

	// Row glow animation for recently-changed jotforms.
	heatTracker *tui.HeatTracker
	tickRunning bool

	requestTimeout time.Duration
}

// NewModel creates a Model over an initial fetch result. The forms
// are loaded into a fresh session, which sorts them and selects the
// first row.
func NewModel(service Service, forms []schema.Jotform) Model {
	model := Model{
		service:        service,
		session:        jotform.NewSession(forms),
		theme:          tui.DefaultTheme,
		keys:           DefaultKeyMap,
		logger:         slog.Default(),
		heatTracker:    tui.NewHeatTracker(),
		requestTimeout: defaultRequestTimeout,
	}
	model.spinner = spinner.New()
	model.spinner.Spinner = spinner.Dot
	model.spinner.Style = lipgloss.NewStyle().Foreground(model.theme.StatusInProgress)

	model.rebuildVisible()
	model.restoreCursor()
	return model
}

// SetTheme overrides the default dark palette. Call before the
// program starts.
func (model *Model) SetTheme(theme tui.Theme) {
	model.theme = theme
	model.spinner.Style = lipgloss.NewStyle().Foreground(theme.StatusInProgress)
}

// SetLogger routes the model's own records (request outcomes, refresh
// traces) to the given logger. Inside a running program this should
// be a handler that does not write to the terminal.
func (model *Model) SetLogger(logger *slog.Logger) {
	if logger != nil {
		model.logger = logger
	}
}

// SetRequestTimeout overrides the per-request deadline for background
// service calls.
func (model *Model) SetRequestTimeout(timeout time.Duration) {
	if timeout > 0 {
		model.requestTimeout = timeout
	}
}

// Init implements tea.Model. The initial fetch happens before the
// program starts, so there is nothing to kick off here.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Routes keyboard events based on the
// current focus region and folds command results back into the state.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		// When the filter input has focus, every key goes to it
		// except ctrl+c.
		if model.focusRegion == FocusFilter {
			return model.handleFilterKeys(message)
		}

		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit

		case key.Matches(message, model.keys.FilterActivate):
			model.focusRegion = FocusFilter
			model.filter.Active = true

		case key.Matches(message, model.keys.FilterClear):
			if model.filter.Input != "" {
				model.filter.Clear()
				model.applyFilter()
			}

		default:
			if cmd := model.handleListKeys(message); cmd != nil {
				return model, cmd
			}
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.ensureCursorVisible()

	case statusUpdateResultMsg:
		if message.err != nil {
			model.logger.Warn("status update failed",
				"jotform", message.id,
				"status", message.status,
				"error", message.err)
			model.notice = fmt.Sprintf("status update failed: %v", message.err)
			model.noticeLevel = slog.LevelWarn
			return model, noticeFadeCmd()
		}
		model.logger.Debug("status update acknowledged",
			"jotform", message.id,
			"status", message.status)

	case refreshResultMsg:
		return model.handleRefreshResult(message)

	case logRecordMsg:
		model.notice = message.Summary
		model.noticeLevel = message.Level
		return model, noticeFadeCmd()

	case noticeFadeMsg:
		model.notice = ""

	case heatTickMsg:
		return model.handleHeatTick()

	case spinner.TickMsg:
		if model.refreshing {
			var cmd tea.Cmd
			model.spinner, cmd = model.spinner.Update(message)
			return model, cmd
		}
	}

	return model, nil
}

// handleFilterKeys processes keystrokes when the filter input has
// focus. Esc clears the text first and exits filter mode second;
// Enter keeps the filter text and hands focus back to the list.
func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		// ctrl+c always quits; 'q' is a regular character here.
		if message.Type == tea.KeyCtrlC {
			return model, tea.Quit
		}
		model.filter.HandleRune('q')
		model.applyFilter()
		return model, nil

	case key.Matches(message, model.keys.FilterClear):
		if model.filter.Input != "" {
			model.filter.Input = ""
			model.applyFilter()
		} else {
			model.filter.Active = false
			model.focusRegion = FocusList
		}
		return model, nil

	case message.Type == tea.KeyEnter:
		model.filter.Active = false
		model.focusRegion = FocusList
		return model, nil

	case message.Type == tea.KeyBackspace:
		if model.filter.HandleBackspace() {
			model.applyFilter()
		}
		return model, nil

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		for _, character := range message.Runes {
			model.filter.HandleRune(character)
		}
		model.applyFilter()
		return model, nil
	}

	return model, nil
}

// handleListKeys processes keys when the list has focus. Returns a
// command for the keys that start background work.
func (model *Model) handleListKeys(message tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(message, model.keys.Up):
		model.moveSelection(-1)

	case key.Matches(message, model.keys.Down):
		model.moveSelection(1)

	case key.Matches(message, model.keys.CycleStatus):
		return model.cycleSelectedStatus()

	case key.Matches(message, model.keys.ScrollUp):
		model.session.Scroll(-1)

	case key.Matches(message, model.keys.ScrollDown):
		model.session.Scroll(1)

	case key.Matches(message, model.keys.Refresh):
		return model.startRefresh()
	}
	return nil
}

// moveSelection shifts the selection to the visually adjacent row.
// Without a filter the visible order is the session order, so this is
// the session's own move operation (boundaries are no-ops, a real
// move rewinds the description scroll). With a filter, adjacency is
// within the filtered view, so the move re-anchors by id instead:
// same boundary behavior, same scroll reset on a selection change.
func (model *Model) moveSelection(delta int) {
	if model.filter.Input == "" {
		model.session.Move(delta)
	} else {
		target := model.cursor + delta
		if target < 0 || target >= len(model.visible) {
			return
		}
		model.session.Reselect(model.visible[target].ID)
	}
	model.restoreCursor()
	model.ensureCursorVisible()
}

// cycleSelectedStatus advances the selected jotform one step through
// the status cycle. The local mutation applies immediately (the table
// re-sorts and the selection follows the jotform to its new position,
// keeping the description scroll), then the backend POST runs in the
// background. Its failure surfaces in the notice line; the local
// change stays.
func (model *Model) cycleSelectedStatus() tea.Cmd {
	selected, ok := model.session.Selected()
	if !ok {
		return nil
	}
	next := selected.Status.Next()

	model.session.ApplyStatus(selected.ID, next)
	model.session.Reselect(selected.ID)
	model.heatTracker.Ignite(selected.ID, time.Now())
	model.syncFromSession()

	commands := []tea.Cmd{model.updateStatusCmd(selected.ID, next)}
	if !model.tickRunning {
		model.tickRunning = true
		commands = append(commands, scheduleHeatTick())
	}
	return tea.Batch(commands...)
}

// updateStatusCmd returns a tea.Cmd that posts the status change to
// the backend and reports the outcome.
func (model *Model) updateStatusCmd(id string, status schema.Status) tea.Cmd {
	service := model.service
	timeout := model.requestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := service.UpdateStatus(ctx, id, status)
		return statusUpdateResultMsg{id: id, status: status, err: err}
	}
}

// startRefresh kicks off a background re-fetch of the full list. A
// refresh already in flight wins; the key is a no-op until it lands.
func (model *Model) startRefresh() tea.Cmd {
	if model.refreshing {
		return nil
	}
	model.refreshing = true

	service := model.service
	timeout := model.requestTimeout
	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		forms, err := service.FetchJotforms(ctx)
		return refreshResultMsg{forms: forms, err: err}
	}
	return tea.Batch(fetch, model.spinner.Tick)
}

// handleRefreshResult folds a completed re-fetch into the session:
// the collection reloads, the previous selection re-anchors by id if
// it survived, and rows whose status changed server-side glow.
func (model Model) handleRefreshResult(message refreshResultMsg) (tea.Model, tea.Cmd) {
	model.refreshing = false

	if message.err != nil {
		model.logger.Warn("refresh failed", "error", message.err)
		model.notice = fmt.Sprintf("refresh failed: %v", message.err)
		model.noticeLevel = slog.LevelWarn
		return model, noticeFadeCmd()
	}

	previousStatus := make(map[string]schema.Status, model.session.Len())
	for _, form := range model.session.Forms() {
		previousStatus[form.ID] = form.Status
	}
	previousSelected := model.session.SelectedID()

	model.session.Load(message.forms)
	model.session.Reselect(previousSelected)

	now := time.Now()
	ignited := false
	for _, form := range message.forms {
		if before, existed := previousStatus[form.ID]; existed && before != form.Status {
			model.heatTracker.Ignite(form.ID, now)
			ignited = true
		}
	}

	model.syncFromSession()
	model.logger.Debug("refreshed jotforms", "count", model.session.Len())

	if ignited && !model.tickRunning {
		model.tickRunning = true
		return model, scheduleHeatTick()
	}
	return model, nil
}

// handleHeatTick processes a glow animation tick. While any rows are
// still hot another tick is scheduled; otherwise the timer stops.
func (model Model) handleHeatTick() (tea.Model, tea.Cmd) {
	now := time.Now()
	if model.heatTracker.HasHot(now) {
		return model, scheduleHeatTick()
	}
	model.tickRunning = false
	return model, nil
}

// scheduleHeatTick returns a tea.Cmd that sends a heatTickMsg after
// the animation tick interval.
func scheduleHeatTick() tea.Cmd {
	return tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg {
		return heatTickMsg{}
	})
}

// noticeFadeCmd returns a tea.Cmd that clears the notice after the
// fade delay.
func noticeFadeCmd() tea.Cmd {
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}

// applyFilter recomputes the visible view after the filter text
// changed. While text is present the view snaps to the top so the
// best-scored match is both visible and selected as the user types;
// clearing the text restores the selection the session still holds.
func (model *Model) applyFilter() {
	model.rebuildVisible()
	if model.filter.Input != "" {
		model.cursor = 0
		model.listScroll = 0
		if len(model.visible) > 0 {
			model.session.Reselect(model.visible[0].ID)
		}
	} else {
		model.restoreCursor()
	}
	model.ensureCursorVisible()
}

// rebuildVisible recomputes the filtered view from the session.
func (model *Model) rebuildVisible() {
	results := model.filter.ApplyFuzzy(model.session.Forms())
	model.visible = make([]schema.Jotform, len(results))

	if model.filter.Input == "" {
		model.highlights = nil
		for index, result := range results {
			model.visible[index] = result.Form
		}
		return
	}

	model.highlights = make(map[string]CellHighlights, len(results))
	for index, result := range results {
		model.visible[index] = result.Form
		model.highlights[result.Form.ID] = result.Highlights
	}
}

// syncFromSession rebuilds the visible view after session data
// changed (status applied, refresh loaded).
func (model *Model) syncFromSession() {
	model.rebuildVisible()
	model.restoreCursor()
	model.ensureCursorVisible()
}

// restoreCursor re-derives the cursor from the session's selected id.
// When the filter hides the selection, the cursor clamps to the
// nearest row and the selection re-anchors there, so the highlighted
// row and the description pane always agree.
func (model *Model) restoreCursor() {
	id := model.session.SelectedID()
	if id != "" {
		for index, form := range model.visible {
			if form.ID == id {
				model.cursor = index
				return
			}
		}
	}

	model.cursor = model.clampedCursor(model.cursor)
	if model.cursor < len(model.visible) {
		model.session.Reselect(model.visible[model.cursor].ID)
	}
}

// clampedCursor returns position clamped to valid visible-row bounds.
func (model *Model) clampedCursor(position int) int {
	if len(model.visible) == 0 {
		return 0
	}
	if position < 0 {
		return 0
	}
	if position >= len(model.visible) {
		return len(model.visible) - 1
	}
	return position
}

// ensureCursorVisible adjusts listScroll so the cursor stays within
// the rendered window.
func (model *Model) ensureCursorVisible() {
	visible := model.tableBodyHeight()
	if visible <= 0 {
		return
	}

	// Clamp listScroll so the window never scrolls past the end of
	// the list. This handles filter changes where the filtered list
	// is shorter than the old offset.
	maxOffset := len(model.visible) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if model.listScroll > maxOffset {
		model.listScroll = maxOffset
	}

	if model.cursor < model.listScroll {
		model.listScroll = model.cursor
	}
	if model.cursor >= model.listScroll+visible {
		model.listScroll = model.cursor - visible + 1
	}
}

// contentHeight returns the rows available to the two data panes.
func (model Model) contentHeight() int {
	content := model.height - chromeRows
	if content < 0 {
		return 0
	}
	return content
}

// tableBodyHeight returns the row count of the table body. The table
// takes roughly 70% of the content area and the description pane the
// rest.
func (model Model) tableBodyHeight() int {
	content := model.contentHeight()
	if content <= 1 {
		return content
	}
	table := content * 7 / 10
	if table < 1 {
		table = 1
	}
	if table >= content {
		table = content - 1
	}
	return table
}

// descriptionHeight returns the row count of the description pane.
func (model Model) descriptionHeight() int {
	return model.contentHeight() - model.tableBodyHeight()
}

// View implements tea.Model. Renders the full frame: chrome line,
// table, description pane, separator, help bar.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	if model.session.Len() == 0 && model.filter.Input == "" {
		return model.renderEmpty()
	}

	var sections []string

	// Top chrome line: either the title rule or the filter bar. The
	// filter bar replaces the rule so the layout doesn't shift.
	filterView := model.filter.View(model.theme, model.width)
	if filterView != "" {
		sections = append(sections, filterView)
	} else {
		sections = append(sections, model.renderTitleRule())
	}

	sections = append(sections, model.renderTableHeader())
	sections = append(sections, model.renderTablePane())
	sections = append(sections, model.renderDescriptionRule())
	sections = append(sections, model.renderDescriptionPane())

	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
	sections = append(sections, separator)

	sections = append(sections, model.renderHelp())

	return strings.Join(sections, "\n")
}

// renderEmpty renders the whole-screen empty state when the session
// holds no jotforms.
func (model Model) renderEmpty() string {
	messageStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)

	return lipgloss.Place(
		model.width, model.height,
		lipgloss.Center, lipgloss.Center,
		messageStyle.Render("No jotforms to review."),
	)
}

// renderTitleRule renders the top chrome line: the app title embedded
// in a horizontal rule with live status counts on the right.
//
// Example: ─── Jotforms ────────── ⣾ 12 shown  2 in progress  8 open ─
func (model Model) renderTitleRule() string {
	separatorStyle := lipgloss.NewStyle().Foreground(model.theme.BorderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	statsStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	title := "Jotforms"
	left := separatorStyle.Render("───") + " " + titleStyle.Render(title) + " "
	leftWidth := 3 + 1 + lipgloss.Width(title) + 1

	counts := make(map[schema.Status]int)
	for _, form := range model.session.Forms() {
		status := form.Status
		if !status.Known() {
			status = schema.StatusOpen
		}
		counts[status]++
	}
	statsText := fmt.Sprintf("%d shown  %d in progress  %d open  %d closed  %d unplanned",
		len(model.visible),
		counts[schema.StatusInProgress],
		counts[schema.StatusOpen],
		counts[schema.StatusClosed],
		counts[schema.StatusUnplanned])
	statsRendered := statsStyle.Render(statsText)
	statsWidth := lipgloss.Width(statsText)

	spinnerSegment := ""
	spinnerWidth := 0
	if model.refreshing {
		view := model.spinner.View()
		spinnerSegment = view + " "
		spinnerWidth = lipgloss.Width(view) + 1
	}

	rightPortion := " " + spinnerSegment + statsRendered + " " + separatorStyle.Render("─")
	rightWidth := 1 + spinnerWidth + statsWidth + 1 + 1

	fillCount := model.width - leftWidth - rightWidth
	if fillCount < 1 {
		fillCount = 1
	}
	fill := separatorStyle.Render(strings.Repeat("─", fillCount))

	return left + fill + rightPortion
}

// renderTableHeader renders the column title row. The trailing blank
// keeps the header aligned with the rows beside the scrollbar column.
func (model Model) renderTableHeader() string {
	renderer := NewTableRenderer(model.theme, model.width-1)
	return renderer.RenderHeader() + " "
}

// renderTablePane renders the visible window of table rows with the
// scrollbar column on the right. The selected row's styling beats the
// heat tint; everything else glows while its recent change decays.
func (model Model) renderTablePane() string {
	rowWidth := model.width - 1
	renderer := NewTableRenderer(model.theme, rowWidth)

	visible := model.tableBodyHeight()
	if visible < 0 {
		visible = 0
	}

	now := time.Now()
	var rows []string
	for index := model.listScroll; index < model.listScroll+visible && index < len(model.visible); index++ {
		form := model.visible[index]
		selected := index == model.cursor
		row := renderer.RenderRow(form, selected, model.highlights[form.ID])
		if !selected {
			if heat := model.heatTracker.Heat(form.ID, now); heat > 0 {
				row = lipgloss.NewStyle().
					Background(model.theme.HotAccent).
					Width(rowWidth).
					MaxWidth(rowWidth).
					Render(row)
			}
		}
		rows = append(rows, row)
	}

	// Pad empty rows.
	rendered := len(rows)
	if rendered < visible {
		emptyStyle := lipgloss.NewStyle().Width(rowWidth)
		for padding := rendered; padding < visible; padding++ {
			rows = append(rows, emptyStyle.Render(""))
		}
	}

	scrollbar := tui.RenderScrollbar(
		model.theme, visible,
		len(model.visible), visible, model.listScroll,
		model.focusRegion == FocusList,
	)

	contentStyle := lipgloss.NewStyle().
		Width(rowWidth).
		Height(visible)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		contentStyle.Render(strings.Join(rows, "\n")),
		scrollbar,
	)
}

// renderDescriptionRule renders the rule separating the table from
// the description pane, with the pane title embedded.
func (model Model) renderDescriptionRule() string {
	separatorStyle := lipgloss.NewStyle().Foreground(model.theme.BorderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)

	title := "Description"
	left := separatorStyle.Render("──") + " " + titleStyle.Render(title) + " "
	leftWidth := 2 + 1 + lipgloss.Width(title) + 1

	fillCount := model.width - leftWidth
	if fillCount < 1 {
		fillCount = 1
	}
	return left + separatorStyle.Render(strings.Repeat("─", fillCount))
}

// renderDescriptionPane renders the selected jotform's description at
// the session's scroll offset.
func (model Model) renderDescriptionPane() string {
	pane := NewDescriptionPane(model.theme)
	height := model.descriptionHeight()

	selected, ok := model.session.Selected()
	if !ok {
		return pane.ViewEmpty(model.width, height)
	}
	return pane.View(selected.Description, model.session.ScrollOffset(), model.width, height)
}

// renderHelp renders the bottom help bar with key hints, the list
// position, and the transient notice.
func (model Model) renderHelp() string {
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	focusIndicator := "LIST"
	if model.focusRegion == FocusFilter {
		focusIndicator = "FILTER"
	}

	help := fmt.Sprintf(" [%s] ↑/↓ navigate  e change status  PgUp/PgDn scroll description  / filter  r refresh  q quit",
		focusIndicator)

	if len(model.visible) > 0 {
		if len(model.visible) > model.tableBodyHeight() {
			position := "top"
			if model.listScroll > 0 {
				if model.listScroll+model.tableBodyHeight() >= len(model.visible) {
					position = "bottom"
				} else {
					percent := float64(model.listScroll) / float64(len(model.visible)-model.tableBodyHeight()) * 100
					position = fmt.Sprintf("%d%%", int(percent))
				}
			}
			help += fmt.Sprintf("  [%s] %d/%d", position, model.cursor+1, len(model.visible))
		} else {
			help += fmt.Sprintf("  %d/%d", model.cursor+1, len(model.visible))
		}
	}

	if model.notice != "" {
		label := "Warning: "
		noticeColor := model.theme.PriorityMedium
		if model.noticeLevel >= slog.LevelError {
			label = "Error: "
			noticeColor = model.theme.PriorityHigh
		}
		noticeStyle := lipgloss.NewStyle().
			Foreground(noticeColor).
			Bold(true)
		help += "  " + noticeStyle.Render(label+model.notice)
	}

	return style.Render(help)
}
