// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package pomodoro implements the session controller: the single
// pomodoro timer owned by the daemon and the commands that drive it.
//
// A [Session] is always in one of three states:
//
//   - idle: no countdown, the next start uses the default duration.
//   - running: exactly one countdown is in flight.
//   - stopped: no countdown, the next start resumes the stored
//     remainder.
//
// Every command takes the session mutex for its whole
// read-modify-write, so concurrent clients observe a serial order.
// The mutex is never held across socket I/O: [Register] wires the
// commands into a [service.SocketServer] and encodes replies only
// after the command returns its [Snapshot].
//
// When a countdown runs out, its goroutine sends the completion
// notification and touches nothing else. The session notices the
// expired countdown at the start of the next command, joins it, and
// returns to idle. Because the completion path never takes the
// mutex, a command that cancels a countdown while holding the mutex
// cannot deadlock against a countdown that is firing at the same
// instant.
package pomodoro
