// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for
// testability. Production code accepts a Clock parameter instead of
// calling time.Now or time.After directly; Real() gives standard
// library behavior, Fake(start) gives a deterministic clock that
// moves only when Advance is called.
//
// The fake eliminates sleep-based test synchronization: a goroutine
// calling After registers a pending waiter; the test blocks on
// WaitForTimers until the registration happens and then fires it
// with Advance.
package clock
