// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration shared by the
// pomodoro daemon and its clients.
//
// The daemon speaks two protocols on one socket. Plain-text commands
// ("start", "show", ...) exist for shell scripts and status bars; their
// structured replies are JSON. The pomodoro CLI uses the CBOR action
// protocol instead, and every CBOR value on that path goes through this
// package so client and server agree on one encoding: Core
// Deterministic Encoding (RFC 8949 §4.2), with unknown fields ignored
// on decode.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
//
// Types that appear on both the JSON and CBOR paths (the session
// snapshot) carry only `json` tags; fxamacker/cbor falls back to them
// when `cbor` tags are absent. Purely internal envelopes carry `cbor`
// tags. A field never has both.
package codec
