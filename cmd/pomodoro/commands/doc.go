// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands defines the pomodoro client command tree. Every
// command that talks to the daemon opens one connection per request
// on the socket given by --socket (default $POMODORO_SOCKET, then
// ${XDG_RUNTIME_DIR:-/tmp}/pomodoro.sock).
package commands
