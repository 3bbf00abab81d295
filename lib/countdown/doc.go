// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package countdown provides a cancellable one-shot countdown that runs
// on its own goroutine.
//
// [Start] arms a timer on the supplied [clock.Clock] and returns
// immediately. The goroutine waits on a single select over two events:
// the timer firing, and a signal arriving on a one-slot cancel channel.
// Whichever the select takes decides the outcome, so "fired" and
// "cancelled" are mutually exclusive by construction:
//
//   - timer first: [Countdown.Active] becomes false, then the
//     completion callback runs exactly once on the countdown goroutine.
//   - cancel first: the timer is stopped and the callback never runs.
//
// [Countdown.Cancel] is synchronous. It returns only after the
// goroutine has exited, so a caller that cancels and then reads the
// clock knows no completion can happen afterward. If the timer and the
// cancel signal race, the callback may already be running when Cancel
// is called; Cancel then waits for it to return.
//
// The callback runs on the countdown goroutine and must not block on
// anything that the canceller might hold (in particular, the session
// controller's mutex). A panic in the callback is not recovered.
package countdown
