// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/bureau-foundation/pomodoro/lib/codec"
)

// ActionFunc processes a CBOR socket request for a specific action.
// The raw parameter is the full CBOR request (including the "action"
// field); the handler decodes any action-specific fields from it.
//
// Return a value to include in the success response, or an error for
// a failure response. A nil value produces {ok: true} with no data.
type ActionFunc func(ctx context.Context, raw []byte) (any, error)

// CommandFunc processes a plain-text command. A non-nil payload is
// written back as one length-prefixed frame; a nil payload means the
// command has no reply and the connection is simply closed. A returned
// error is logged and the connection is closed without a reply.
type CommandFunc func(ctx context.Context) ([]byte, error)

// Response is the wire-format envelope for CBOR action responses.
type Response struct {
	OK    bool             `cbor:"ok"`
	Error string           `cbor:"error,omitempty"`
	Data  codec.RawMessage `cbor:"data,omitempty"`
}

// SocketServer serves one request per connection on a Unix socket.
// Two request formats share the socket, distinguished by the first
// byte the client sends:
//
//   - A CBOR map {action: "...", ...}: dispatched to the ActionFunc
//     registered with Handle and answered with a CBOR Response.
//   - Anything else: read once (at most commandBufferSize bytes),
//     trimmed, and dispatched to the CommandFunc registered with
//     HandleCommand. Unknown commands are ignored without a reply.
//
// Connections are handled concurrently. Handlers that share state
// must serialize access themselves.
type SocketServer struct {
	socketPath string
	actions    map[string]ActionFunc
	commands   map[string]CommandFunc
	logger     *slog.Logger

	// activeConnections tracks in-flight handlers. Serve waits for
	// them before returning.
	activeConnections sync.WaitGroup
}

// NewSocketServer creates a server that will listen on socketPath.
// Register handlers before calling Serve.
func NewSocketServer(socketPath string, logger *slog.Logger) *SocketServer {
	return &SocketServer{
		socketPath: socketPath,
		actions:    make(map[string]ActionFunc),
		commands:   make(map[string]CommandFunc),
		logger:     logger,
	}
}

// SocketPath returns the path the server listens on.
func (s *SocketServer) SocketPath() string {
	return s.socketPath
}

// Handle registers a CBOR action handler. Panics if the action is
// already registered.
func (s *SocketServer) Handle(action string, handler ActionFunc) {
	if _, exists := s.actions[action]; exists {
		panic(fmt.Sprintf("service.SocketServer: duplicate handler for action %q", action))
	}
	s.actions[action] = handler
}

// HandleCommand registers a plain-text command handler. Commands are
// matched case-sensitively after trimming surrounding whitespace.
// Panics if the command is already registered.
func (s *SocketServer) HandleCommand(command string, handler CommandFunc) {
	if _, exists := s.commands[command]; exists {
		panic(fmt.Sprintf("service.SocketServer: duplicate handler for command %q", command))
	}
	s.commands[command] = handler
}

// Serve binds the Unix socket and dispatches connections until ctx is
// cancelled, then stops accepting and waits for active handlers.
//
// Any existing file at the socket path is removed before binding; the
// caller is responsible for making sure no other live server owns it
// (see lib/instance). A bind failure is returned immediately. The
// socket file is removed on return.
func (s *SocketServer) Serve(ctx context.Context) error {
	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale socket %s: %w", s.socketPath, err)
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.socketPath, err)
	}
	defer func() {
		listener.Close()
		os.Remove(s.socketPath)
	}()

	// Unblock Accept when the context is cancelled.
	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	s.logger.Info("socket server listening", "path", s.socketPath)

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			if errors.Is(err, net.ErrClosed) {
				break
			}
			s.logger.Error("accept failed", "error", err)
			continue
		}

		s.activeConnections.Add(1)
		go func() {
			defer s.activeConnections.Done()
			s.handleConnection(ctx, conn)
		}()
	}

	s.activeConnections.Wait()
	return nil
}

// readTimeout is how long we wait for the client to send its request.
const readTimeout = 10 * time.Second

// writeTimeout is how long we wait for the response to be written.
const writeTimeout = 10 * time.Second

// commandBufferSize is the most a text command may occupy. The
// longest defined command is "remaining".
const commandBufferSize = 128

// maxRequestSize caps a CBOR request.
const maxRequestSize = 64 * 1024

// handleConnection processes one request-response cycle.
func (s *SocketServer) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(readTimeout)) //nolint:realclock // kernel I/O deadline

	// The first fill reads whatever the client's first write
	// delivered, up to commandBufferSize bytes. Text commands are
	// taken from that single read; CBOR decoding continues from the
	// same buffer.
	reader := bufio.NewReaderSize(io.LimitReader(conn, maxRequestSize), commandBufferSize)
	first, err := reader.Peek(1)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.logger.Debug("reading request failed", "error", err)
		}
		return
	}

	if codec.IsMapHeader(first[0]) {
		s.handleAction(ctx, conn, reader)
		return
	}
	s.handleCommand(ctx, conn, reader)
}

// handleCommand serves the plain-text protocol.
func (s *SocketServer) handleCommand(ctx context.Context, conn net.Conn, reader *bufio.Reader) {
	buffer := make([]byte, commandBufferSize)
	count, err := reader.Read(buffer)
	if err != nil {
		s.logger.Debug("reading command failed", "error", err)
		return
	}
	if !utf8.Valid(buffer[:count]) {
		s.logger.Debug("dropping command with invalid UTF-8", "bytes", count)
		return
	}

	command := strings.TrimSpace(string(buffer[:count]))
	handler, exists := s.commands[command]
	if !exists {
		s.logger.Debug("ignoring unknown command", "command", command)
		return
	}

	payload, err := handler(ctx)
	if err != nil {
		s.logger.Warn("command failed", "command", command, "error", err)
		return
	}
	if payload == nil {
		return
	}

	conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:realclock // kernel I/O deadline
	if err := WriteFrame(conn, payload); err != nil {
		s.logger.Debug("failed to write command reply", "command", command, "error", err)
	}
}

// handleAction serves the CBOR action protocol.
func (s *SocketServer) handleAction(ctx context.Context, conn net.Conn, reader *bufio.Reader) {
	var raw codec.RawMessage
	if err := codec.NewDecoder(reader).Decode(&raw); err != nil {
		s.writeError(conn, fmt.Sprintf("invalid request: %v", err))
		return
	}

	var header struct {
		Action string `cbor:"action"`
	}
	if err := codec.Unmarshal(raw, &header); err != nil {
		s.writeError(conn, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if header.Action == "" {
		s.writeError(conn, "missing required field: action")
		return
	}

	handler, exists := s.actions[header.Action]
	if !exists {
		s.writeError(conn, fmt.Sprintf("unknown action %q", header.Action))
		return
	}

	result, err := handler(ctx, []byte(raw))
	if err != nil {
		s.logger.Debug("action failed",
			"action", header.Action,
			"error", err,
		)
		s.writeError(conn, err.Error())
		return
	}

	s.writeSuccess(conn, result)
}

// writeError sends a failure response: {ok: false, error: "..."}.
// Write failures are logged at debug level: the connection is closing
// regardless.
func (s *SocketServer) writeError(conn net.Conn, message string) {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:realclock // kernel I/O deadline
	if err := codec.NewEncoder(conn).Encode(Response{
		OK:    false,
		Error: message,
	}); err != nil {
		s.logger.Debug("failed to write error response", "error", err)
	}
}

// writeSuccess sends {ok: true} or {ok: true, data: <cbor>}.
func (s *SocketServer) writeSuccess(conn net.Conn, result any) {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:realclock // kernel I/O deadline

	response := Response{OK: true}
	if result != nil {
		data, err := codec.Marshal(result)
		if err != nil {
			s.writeError(conn, fmt.Sprintf("internal: marshaling response: %v", err))
			return
		}
		response.Data = data
	}

	if err := codec.NewEncoder(conn).Encode(response); err != nil {
		s.logger.Debug("failed to write success response", "error", err)
	}
}
