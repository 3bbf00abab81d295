// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the time operations used by the countdown and the
// session controller. Production code injects Real(); tests inject
// Fake() and move time forward explicitly with Advance.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives the current time after
	// duration d elapses. If d <= 0, the channel receives immediately.
	After(d time.Duration) <-chan time.Time

	// NewTimer returns a Timer that sends the current time on its C
	// channel after duration d. If d <= 0, C receives immediately.
	NewTimer(d time.Duration) *Timer
}

// Timer is a one-shot timer whose channel can be selected on
// alongside other events. Call Stop to release it early.
type Timer struct {
	// C delivers the fire time. Buffered with capacity 1.
	C <-chan time.Time

	stopFunc func() bool
}

// Stop prevents the Timer from firing. Returns true if the call stops
// the timer, false if the timer has already fired or been stopped.
// Stop does not drain C.
func (t *Timer) Stop() bool { return t.stopFunc() }
