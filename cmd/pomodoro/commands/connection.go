// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pomodoro/cmd/pomodoro/cli"
	"github.com/bureau-foundation/pomodoro/lib/pomodoro"
	"github.com/bureau-foundation/pomodoro/lib/service"
)

// requestTimeout bounds one round trip to the daemon.
const requestTimeout = 10 * time.Second

// connection is embedded by every command that talks to the daemon.
type connection struct {
	socket cli.SocketFlag
}

func (c *connection) addFlags(flagSet *pflag.FlagSet) {
	c.socket.AddFlags(flagSet)
}

// call performs one CBOR action against the daemon.
func (c *connection) call(action string, result any) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	client := service.NewServiceClient(c.socket.Path)
	if err := client.Call(ctx, action, nil, result); err != nil {
		return c.explain(err)
	}
	return nil
}

// snapshot performs an action whose reply is a Snapshot.
func (c *connection) snapshot(action string) (pomodoro.Snapshot, error) {
	var snapshot pomodoro.Snapshot
	err := c.call(action, &snapshot)
	return snapshot, err
}

// sendText sends a plain-text command and returns its reply, if any.
func (c *connection) sendText(command string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	reply, err := service.SendCommand(ctx, c.socket.Path, command)
	if err != nil {
		return nil, c.explain(err)
	}
	return reply, nil
}

// explain attaches a hint to connection failures the user can fix.
func (c *connection) explain(err error) error {
	if diagnosed := cli.DiagnoseSocketError(err, c.socket.Path); diagnosed != nil {
		return diagnosed
	}
	var serviceErr *service.ServiceError
	if errors.As(err, &serviceErr) {
		return cli.Internal("daemon rejected %q: %s", serviceErr.Action, serviceErr.Message).
			WithHint("The daemon may be an older version; compare 'pomodoro version' with 'pomodorod --version'.")
	}
	return fmt.Errorf("talking to pomodorod: %w", err)
}
