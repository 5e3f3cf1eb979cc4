// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package jotformui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// logRecordMsg delivers a slog record to the bubbletea model for
// display in the notice segment of the help bar. Only records at or
// above the handler's configured level are delivered.
type logRecordMsg struct {
	// Summary is the human-readable one-line message for the notice.
	Summary string

	// Level is the slog level for styling (warn vs error).
	Level slog.Level
}

// TUILogHandler is a slog.Handler that routes log records into a
// bubbletea program as messages. While the alternate screen is up,
// writing to stderr would corrupt the display, so anything other
// packages log at or above the configured level surfaces in the
// notice line instead. Records below the level are silently dropped.
//
// The handler must be created before the program starts. Call
// SetProgram once the tea.Program is created to enable message
// delivery. Records arriving before SetProgram is called are dropped.
//
// All handlers derived via WithAttrs/WithGroup share the same program
// pointer, so a single SetProgram call propagates to every derived
// handler.
type TUILogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
	groups  []string
}

// NewTUILogHandler creates a handler that delivers log records at or
// above the given level to the bubbletea program. Call SetProgram
// after creating the tea.Program.
func NewTUILogHandler(level slog.Level) *TUILogHandler {
	return &TUILogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram sets the bubbletea program that receives log messages.
// Safe to call from any goroutine. Propagates to all handlers derived
// from this one via WithAttrs/WithGroup (they share the same atomic
// pointer).
func (handler *TUILogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled reports whether the handler is interested in records at the
// given level.
func (handler *TUILogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle formats the record as a one-line summary and sends it to the
// bubbletea program. If the program has not been set yet, the record
// is silently dropped.
func (handler *TUILogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}

	// Build the summary line: "message (key=value, ...)"
	summary := record.Message
	var attrParts []string

	// Include handler-level attrs first (from WithAttrs/WithGroup).
	for _, attr := range handler.attrs {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
	}

	// Then record-level attrs.
	record.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
		return true
	})

	if len(attrParts) > 0 {
		summary += " ("
		for index, part := range attrParts {
			if index > 0 {
				summary += ", "
			}
			summary += part
		}
		summary += ")"
	}

	program.Send(logRecordMsg{
		Summary: summary,
		Level:   record.Level,
	})

	return nil
}

// WithAttrs returns a new handler with the given attributes appended.
// The derived handler shares the same atomic program pointer, so
// SetProgram on the root handler propagates automatically.
func (handler *TUILogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TUILogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   append(slices.Clone(handler.attrs), attrs...),
		groups:  slices.Clone(handler.groups),
	}
}

// WithGroup returns a new handler with the given group name appended.
// The derived handler shares the same atomic program pointer, so
// SetProgram on the root handler propagates automatically.
func (handler *TUILogHandler) WithGroup(name string) slog.Handler {
	return &TUILogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   slices.Clone(handler.attrs),
		groups:  append(slices.Clone(handler.groups), name),
	}
}
