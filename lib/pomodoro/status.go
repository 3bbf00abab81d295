// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pomodoro

// Status is the reply to the daemon's status action: operational
// data about the daemon rather than the timer.
type Status struct {
	Version                string  `cbor:"version" json:"version"`
	SocketPath             string  `cbor:"socket_path" json:"socket_path"`
	UptimeSeconds          float64 `cbor:"uptime_seconds" json:"uptime_seconds"`
	DefaultDurationSeconds int64   `cbor:"default_duration_seconds" json:"default_duration_seconds"`
	State                  State   `cbor:"state" json:"state"`
	Completions            int64   `cbor:"completions" json:"completions"`
}
