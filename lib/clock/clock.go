// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the time operations this repo actually uses: Now
// for timestamps and elapsed-time measurement, After for
// interruptible delays. Anything needing time should take a Clock
// (or sit on a struct with a Clock field) rather than call the time
// package directly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives the current time after
	// duration d elapses. Equivalent to time.After. If d <= 0, the
	// channel receives immediately.
	After(d time.Duration) <-chan time.Time
}
