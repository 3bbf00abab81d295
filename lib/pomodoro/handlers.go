// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pomodoro

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/bureau-foundation/pomodoro/lib/service"
)

// RemainingResponse is the CBOR reply to the remaining action.
type RemainingResponse struct {
	Remaining int64 `cbor:"remaining" json:"remaining"`
}

// Register installs the session's commands on server, in both the
// plain-text and the CBOR protocol.
//
// Text replies: start, stop, and reset have none; remaining replies
// with the whole seconds left as a decimal string; show replies with
// the JSON encoding of a Snapshot. CBOR actions of the same names
// reply with a Snapshot, except remaining which replies with a
// RemainingResponse.
func (s *Session) Register(server *service.SocketServer) {
	server.HandleCommand("start", func(ctx context.Context) ([]byte, error) {
		s.Start()
		return nil, nil
	})
	server.HandleCommand("stop", func(ctx context.Context) ([]byte, error) {
		s.Stop()
		return nil, nil
	})
	server.HandleCommand("reset", func(ctx context.Context) ([]byte, error) {
		s.Reset()
		return nil, nil
	})
	server.HandleCommand("remaining", func(ctx context.Context) ([]byte, error) {
		return []byte(strconv.FormatInt(wholeSeconds(s.Remaining()), 10)), nil
	})
	server.HandleCommand("show", func(ctx context.Context) ([]byte, error) {
		payload, err := json.Marshal(s.Show())
		if err != nil {
			return nil, fmt.Errorf("encoding snapshot: %w", err)
		}
		return payload, nil
	})

	server.Handle("start", func(ctx context.Context, raw []byte) (any, error) {
		return s.Start(), nil
	})
	server.Handle("stop", func(ctx context.Context, raw []byte) (any, error) {
		return s.Stop(), nil
	})
	server.Handle("reset", func(ctx context.Context, raw []byte) (any, error) {
		return s.Reset(), nil
	})
	server.Handle("remaining", func(ctx context.Context, raw []byte) (any, error) {
		return RemainingResponse{Remaining: wholeSeconds(s.Remaining())}, nil
	})
	server.Handle("show", func(ctx context.Context, raw []byte) (any, error) {
		return s.Show(), nil
	})
}

func wholeSeconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
