// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

// Package jotform defines the wire types for the jotform service's
// HTTP API: the Jotform record itself plus the Status, Priority, and
// Department value types. Field names and shapes match the backend's
// JSON contract exactly; this package is the single source of truth
// for that contract on the client side.
package jotform
