// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/bureau-foundation/pomodoro/lib/codec"
)

// dialTimeout is the maximum time to wait for a connection to the
// daemon socket.
const dialTimeout = 5 * time.Second

// responseReadTimeout is how long the client waits for a reply after
// writing the request. Matched to the server's write timeout plus
// handler time.
const responseReadTimeout = 15 * time.Second

// maxResponseSize is the maximum size of a single CBOR response.
const maxResponseSize = 64 * 1024

// ServiceError is returned by Call when the server responds with
// ok=false.
type ServiceError struct {
	Action  string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error on %q: %s", e.Action, e.Message)
}

// ServiceClient sends CBOR action requests to the daemon socket. Each
// Call opens a new connection, matching the server's
// one-request-per-connection model.
type ServiceClient struct {
	socketPath string
}

// NewServiceClient returns a client for the socket at socketPath.
func NewServiceClient(socketPath string) *ServiceClient {
	return &ServiceClient{socketPath: socketPath}
}

// SocketPath returns the socket the client connects to.
func (c *ServiceClient) SocketPath() string {
	return c.socketPath
}

// Call sends {action, ...fields} and decodes the response data into
// result (when both are non-nil). The caller must not include an
// "action" key in fields.
//
// On ok=false, returns a *ServiceError. Connection and encoding
// failures are returned as plain errors.
func (c *ServiceClient) Call(ctx context.Context, action string, fields map[string]any, result any) error {
	request := make(map[string]any, len(fields)+1)
	for key, value := range fields {
		request[key] = value
	}
	request["action"] = action

	response, err := c.send(ctx, request)
	if err != nil {
		return fmt.Errorf("calling %q on %s: %w", action, c.socketPath, err)
	}

	if !response.OK {
		return &ServiceError{
			Action:  action,
			Message: response.Error,
		}
	}

	if result != nil && len(response.Data) > 0 {
		if err := codec.Unmarshal(response.Data, result); err != nil {
			return fmt.Errorf("decoding response data for %q: %w", action, err)
		}
	}

	return nil
}

// send connects, writes the request, and reads the response.
func (c *ServiceClient) send(ctx context.Context, request any) (*Response, error) {
	conn, err := dial(ctx, c.socketPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := codec.NewEncoder(conn).Encode(request); err != nil {
		return nil, fmt.Errorf("writing request: %w", err)
	}
	closeWrite(conn)

	conn.SetReadDeadline(time.Now().Add(responseReadTimeout)) //nolint:realclock // kernel I/O deadline
	var response Response
	if err := codec.NewDecoder(io.LimitReader(conn, maxResponseSize)).Decode(&response); err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return &response, nil
}

// SendCommand sends one plain-text command and returns its reply
// payload, or nil for commands that have no reply (and for commands
// the server does not recognize).
func SendCommand(ctx context.Context, socketPath, command string) ([]byte, error) {
	conn, err := dial(ctx, socketPath)
	if err != nil {
		return nil, fmt.Errorf("sending %q to %s: %w", command, socketPath, err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(command + "\n")); err != nil {
		return nil, fmt.Errorf("writing command %q: %w", command, err)
	}
	closeWrite(conn)

	conn.SetReadDeadline(time.Now().Add(responseReadTimeout)) //nolint:realclock // kernel I/O deadline
	payload, err := ReadFrame(conn)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading reply to %q: %w", command, err)
	}
	return payload, nil
}

func dial(ctx context.Context, socketPath string) (net.Conn, error) {
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connecting: %w", err)
	}
	return conn, nil
}

// closeWrite half-closes the connection so the server's read sees EOF
// after the request.
func closeWrite(conn net.Conn) {
	if unixConn, ok := conn.(*net.UnixConn); ok {
		unixConn.CloseWrite()
	}
}
