// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package notify delivers the desktop notification shown when a
// pomodoro completes.
//
// A [Notifier] is called on the countdown goroutine at expiry. Every
// implementation returns without waiting for the notification to be
// shown: [CommandNotifier] starts notify-send and reaps it in the
// background, [DBusNotifier] calls org.freedesktop.Notifications on
// its own goroutine with a bounded timeout. Delivery failures are
// logged and otherwise ignored.
package notify
