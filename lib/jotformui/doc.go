// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

// Package jotformui implements the interactive review screen: a
// bubbletea model that renders the jotform table over a scrollable
// description pane and routes key events into the session core,
// dispatching backend writes as background commands.
//
// The model owns all UI state single-threaded inside the bubbletea
// event loop. Status changes apply locally first and the POST to the
// jotform service runs as a tea.Cmd; a failed write surfaces in the
// notice line without rolling the local change back. TUILogHandler
// routes slog records into the running program so nothing writes to
// stderr while the alternate screen is up.
package jotformui
