// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction so that
// countdowns can be tested without sleeping.
//
// Production code holds a Clock and never calls time.Now, time.After,
// or time.NewTimer directly. Real() forwards to the time package.
// Fake() returns a FakeClock whose time stands still until Advance is
// called:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	countdown := countdown.Start(c, 25*time.Minute, onComplete)
//	c.WaitForTimers(1)          // the countdown goroutine armed its timer
//	c.Advance(25 * time.Minute) // fire it deterministically
//
// WaitForTimers closes the race between a goroutine registering a
// timer and the test advancing the clock past it.
package clock
