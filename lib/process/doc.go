// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process holds the entrypoint helpers shared by the pomodoro
// binaries: reporting a fatal error from run() to stderr before (or
// instead of) the structured logger, and exiting.
package process
