// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for pomodoro packages.
//
// [SocketDir] creates a short-named temporary directory in /tmp for
// Unix domain sockets, whose paths are limited to 108 bytes
// (sun_path). t.TempDir() can exceed that under deeply nested
// TMPDIR settings.
//
// [RequireReceive] and [RequireClosed] wrap the select-with-timeout
// safety valve so tests never hang on a channel that is never
// written. They are the only helpers here that use the wall clock.
//
// All helpers call t.Fatalf on failure.
package testutil
