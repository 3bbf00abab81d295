// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package countdown

import (
	"sync/atomic"
	"time"

	"github.com/bureau-foundation/pomodoro/lib/clock"
)

// Countdown is a running one-shot timer bound to a fixed duration and
// a completion callback. Create one with Start.
type Countdown struct {
	duration time.Duration

	// cancel is the one-slot signal channel. Cancel performs a
	// non-blocking send so that repeated calls never block on a full
	// slot.
	cancel chan struct{}

	// done is closed when the goroutine returns, after the callback
	// (if any) has completed.
	done chan struct{}

	// active is true until the countdown fires or is cancelled. It is
	// cleared before the callback runs, so no observer sees an expired
	// countdown as active.
	active atomic.Bool
}

// Start launches a countdown of the given duration. onComplete is
// called exactly once on the countdown goroutine if the duration
// elapses before Cancel is called. Start does not block.
func Start(clk clock.Clock, duration time.Duration, onComplete func()) *Countdown {
	countdown := &Countdown{
		duration: duration,
		cancel:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	countdown.active.Store(true)

	// The timer is armed before the goroutine starts so that the
	// countdown's deadline is fixed relative to the Start call.
	timer := clk.NewTimer(duration)
	go countdown.run(timer, onComplete)
	return countdown
}

func (c *Countdown) run(timer *clock.Timer, onComplete func()) {
	defer close(c.done)

	select {
	case <-c.cancel:
		timer.Stop()
		c.active.Store(false)
	case <-timer.C:
		c.active.Store(false)
		if onComplete != nil {
			onComplete()
		}
	}
}

// Cancel stops the countdown and blocks until its goroutine has
// exited. After Cancel returns, the completion callback will not run.
// Calling Cancel on a countdown that already fired or was already
// cancelled returns as soon as the goroutine has exited.
func (c *Countdown) Cancel() {
	select {
	case c.cancel <- struct{}{}:
	default:
	}
	<-c.done
}

// Wait blocks until the countdown goroutine has exited, either by
// firing (and finishing the callback) or by cancellation.
func (c *Countdown) Wait() {
	<-c.done
}

// Done returns a channel that is closed once the countdown goroutine
// has exited.
func (c *Countdown) Done() <-chan struct{} {
	return c.done
}

// Active reports whether the countdown has neither fired nor been
// cancelled.
func (c *Countdown) Active() bool {
	return c.active.Load()
}

// Duration returns the duration the countdown was started with.
func (c *Countdown) Duration() time.Duration {
	return c.duration
}
