// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pomodoro

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bureau-foundation/pomodoro/lib/clock"
	"github.com/bureau-foundation/pomodoro/lib/countdown"
	"github.com/bureau-foundation/pomodoro/lib/notify"
)

// DefaultDuration is the length of a pomodoro when nothing else is
// configured.
const DefaultDuration = 25 * time.Minute

// minimumRemainder is the smallest remainder worth keeping on stop.
// Stopping with less left behaves like reset.
const minimumRemainder = time.Second

// State is the lifecycle state of a Session.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateStopped State = "stopped"
)

// Config holds the fixed parameters of a Session.
type Config struct {
	// Duration is the length of a fresh pomodoro. Zero means
	// DefaultDuration.
	Duration time.Duration

	// Notification is shown when a countdown completes. The zero value
	// means notify.DefaultNotification.
	Notification notify.Notification
}

// Snapshot is the externally visible state of a Session at one
// instant. It is the reply to the show command in both protocols.
type Snapshot struct {
	// End is the Unix time in seconds at which the running countdown
	// completes, or nil when nothing is running.
	End *int64 `json:"end" cbor:"end"`

	// Remaining is the whole number of seconds left. When idle it is
	// the default duration; when stopped it is the stored remainder.
	Remaining int64 `json:"remaining" cbor:"remaining"`

	// Active is true while a countdown is running.
	Active bool `json:"active" cbor:"active"`

	State State `json:"state" cbor:"state"`
}

// Session owns the single pomodoro timer. All methods are safe for
// concurrent use.
type Session struct {
	clock           clock.Clock
	notifier        notify.Notifier
	notification    notify.Notification
	logger          *slog.Logger
	defaultDuration time.Duration

	mu sync.Mutex

	// remaining is the remainder stored by stop. Only meaningful when
	// hasRemaining is set; otherwise the next start uses
	// defaultDuration.
	remaining    time.Duration
	hasRemaining bool

	// startedAt and target describe the running countdown: it was
	// started at startedAt with target duration. Both are zero and
	// countdown is nil when nothing runs.
	startedAt time.Time
	target    time.Duration
	countdown *countdown.Countdown

	completions atomic.Int64
}

// New creates an idle Session. The notifier is called once per
// naturally completed countdown, on the countdown's goroutine.
func New(config Config, clk clock.Clock, notifier notify.Notifier, logger *slog.Logger) *Session {
	duration := config.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	notification := config.Notification
	if notification == (notify.Notification{}) {
		notification = notify.DefaultNotification
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Session{
		clock:           clk,
		notifier:        notifier,
		notification:    notification,
		logger:          logger,
		defaultDuration: duration,
	}
}

// DefaultDuration returns the duration a fresh pomodoro runs for.
func (s *Session) DefaultDuration() time.Duration {
	return s.defaultDuration
}

// Start begins a countdown from the stored remainder, or from the
// default duration when there is none. Starting a running session
// does nothing.
func (s *Session) Start() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reapLocked()

	if s.countdown != nil {
		return s.snapshotLocked()
	}

	duration := s.defaultDuration
	if s.hasRemaining {
		duration = s.remaining
	}
	s.remaining, s.hasRemaining = 0, false

	s.startedAt = s.clock.Now()
	s.target = duration
	s.countdown = countdown.Start(s.clock, duration, s.completionFunc(duration))

	s.logger.Info("pomodoro started", "duration", duration)
	return s.snapshotLocked()
}

// Stop pauses a running countdown and stores what was left of it.
// If less than a second was left the session is reset instead.
// Stopping a session that is not running does nothing.
func (s *Session) Stop() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reapLocked()

	if s.countdown == nil {
		return s.snapshotLocked()
	}

	left := s.leftLocked()
	s.countdown.Cancel()
	s.clearCountdownLocked()

	if left < minimumRemainder {
		s.remaining, s.hasRemaining = 0, false
		s.logger.Info("pomodoro stopped with nothing left, reset", "left", left)
		return s.snapshotLocked()
	}

	s.remaining, s.hasRemaining = left, true
	s.logger.Info("pomodoro stopped", "remaining", left)
	return s.snapshotLocked()
}

// Reset cancels any running countdown and forgets the stored
// remainder. Valid in every state.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.logger.Info("pomodoro reset")
	return s.snapshotLocked()
}

// Remaining returns the time left: live while running, otherwise the
// stored remainder or the default duration.
func (s *Session) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reapLocked()
	return s.remainingLocked()
}

// Show returns a Snapshot of the current state.
func (s *Session) Show() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reapLocked()
	return s.snapshotLocked()
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reapLocked()
	return s.stateLocked()
}

// Completions returns how many countdowns have run to completion
// since the session was created.
func (s *Session) Completions() int64 {
	return s.completions.Load()
}

// Close cancels any running countdown without notifying. The session
// remains usable; Close exists so the daemon can leave no countdown
// goroutine behind on shutdown.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// completionFunc returns the callback run by a countdown of the given
// duration when it fires. It must not take s.mu: Stop and Reset hold
// s.mu while Cancel joins the countdown goroutine.
func (s *Session) completionFunc(duration time.Duration) func() {
	return func() {
		s.completions.Add(1)
		s.logger.Info("pomodoro completed", "duration", duration)
		s.notifier.Notify(s.notification)
	}
}

// reapLocked joins a countdown that has fired since the last command
// and returns the session to idle.
func (s *Session) reapLocked() {
	if s.countdown == nil || s.countdown.Active() {
		return
	}
	s.countdown.Wait()
	s.clearCountdownLocked()
	s.remaining, s.hasRemaining = 0, false
}

func (s *Session) resetLocked() {
	if s.countdown != nil {
		s.countdown.Cancel()
		s.clearCountdownLocked()
	}
	s.remaining, s.hasRemaining = 0, false
}

func (s *Session) clearCountdownLocked() {
	s.countdown = nil
	s.startedAt = time.Time{}
	s.target = 0
}

// leftLocked returns target minus elapsed, floored at zero.
func (s *Session) leftLocked() time.Duration {
	elapsed := s.clock.Now().Sub(s.startedAt)
	if elapsed >= s.target {
		return 0
	}
	return s.target - elapsed
}

func (s *Session) remainingLocked() time.Duration {
	switch {
	case s.countdown != nil:
		return s.leftLocked()
	case s.hasRemaining:
		return s.remaining
	default:
		return s.defaultDuration
	}
}

func (s *Session) stateLocked() State {
	switch {
	case s.countdown != nil:
		return StateRunning
	case s.hasRemaining:
		return StateStopped
	default:
		return StateIdle
	}
}

func (s *Session) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		Remaining: wholeSeconds(s.remainingLocked()),
		Active:    s.countdown != nil,
		State:     s.stateLocked(),
	}
	if s.countdown != nil {
		end := s.startedAt.Add(s.target).Unix()
		snapshot.End = &end
	}
	return snapshot
}
