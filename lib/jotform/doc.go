// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

// Package jotform holds the review session's core state: the ordered
// jotform collection, the selected jotform's identity, and the detail
// pane's scroll offset. Everything here is pure bookkeeping with no
// I/O and no goroutines. The bubbletea model owns exactly one
// Session and is the only mutator, so the package needs no locking.
//
// Two invariants hold after every operation:
//
//   - the collection satisfies the ordering policy (in-progress first
//     and unplanned last, newest first within a bucket);
//   - the selected id references an element of the collection whenever
//     the collection is non-empty, and is empty otherwise.
//
// Selection is tracked by id, not index, so it survives the re-sort
// that follows a status change: the jotform moves, the selection
// follows it.
package jotform
