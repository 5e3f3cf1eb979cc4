// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared building blocks for jotview's terminal
// interface: the color [Theme] with its dark and light palettes,
// proportional scrollbar rendering, fzf-backed fuzzy matching, and a
// [HeatTracker] for fading row highlights after changes.
package tui
