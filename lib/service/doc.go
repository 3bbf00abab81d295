// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package service provides the Unix socket transport between the
// pomodoro daemon and its clients.
//
// [SocketServer] accepts one request per connection and speaks two
// protocols on the same socket:
//
//   - Plain text, for shell scripts and status bars: the client writes
//     a command such as "start" or "show" (trailing newline optional).
//     Commands with a reply get one frame back, a 4-byte big-endian
//     length followed by the payload; commands without a reply, and
//     unknown commands, get the connection closed. [SendCommand] and
//     [ReadFrame] implement the client side.
//   - CBOR actions, for the pomodoro CLI: the client writes a CBOR map
//     {action: "...", ...} and receives {ok, error, data}. Unknown
//     actions receive an error response. [ServiceClient] implements the
//     client side.
//
// A request that fails (I/O error, invalid UTF-8, undecodable CBOR)
// only affects its own connection; the accept loop keeps running. The
// server removes a stale socket file before binding and removes its
// own socket on shutdown.
//
// The socket is local-only and callers are not authenticated: file
// permissions on the socket are the only access control.
package service
