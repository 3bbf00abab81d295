// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the pomodoro daemon configuration.
//
// Configuration comes from at most one file, named by the --config
// flag (via [LoadFile]) or the POMODORO_CONFIG environment variable
// (via [Load]). There is no automatic discovery. Without a file the
// daemon runs on [Default] values, and command-line flags override
// whatever the file says.
//
// YAML is the native format. Files ending in .json or .jsonc are also
// accepted; comments and trailing commas are stripped before decoding.
//
// ${VAR} and ${VAR:-default} are expanded in the socket path and the
// notification command. No other environment variables override
// config values.
package config
