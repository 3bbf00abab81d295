// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Pomodorod is the pomodoro timer daemon. It owns a single countdown
// and serves control commands on a Unix socket until it receives
// SIGINT or SIGTERM.
//
// Shell scripts and status bars can talk to it directly:
//
//	printf start | socat - UNIX-CONNECT:$XDG_RUNTIME_DIR/pomodoro.sock
//
// The pomodoro CLI speaks the CBOR action protocol on the same socket.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/pomodoro/lib/clock"
	"github.com/bureau-foundation/pomodoro/lib/config"
	"github.com/bureau-foundation/pomodoro/lib/instance"
	"github.com/bureau-foundation/pomodoro/lib/notify"
	"github.com/bureau-foundation/pomodoro/lib/pomodoro"
	"github.com/bureau-foundation/pomodoro/lib/process"
	"github.com/bureau-foundation/pomodoro/lib/service"
	"github.com/bureau-foundation/pomodoro/lib/version"
)

// appName identifies the daemon to the desktop notification service.
const appName = "pomodoro"

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	cfg, showVersion, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	if showVersion {
		version.Print(os.Stdout, "pomodorod")
		return nil
	}
	if cfg == nil {
		// --help was printed.
		return nil
	}

	logger, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}

	lock, err := instance.Acquire(instance.LockPath(cfg.SocketPath))
	if err != nil {
		return err
	}
	defer lock.Release()

	notifier, err := notify.New(cfg.Notification.Backend, cfg.Notification.Command, appName, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := clock.Real()
	session := pomodoro.New(pomodoro.Config{
		Duration:     cfg.Duration,
		Notification: cfg.Notification.Content(),
	}, clk, notifier, logger)
	defer session.Close()

	server := service.NewSocketServer(cfg.SocketPath, logger)
	session.Register(server)
	registerStatus(server, session, clk, cfg.SocketPath)

	logger.Info("starting pomodorod",
		"version", version.Info(),
		"socket", cfg.SocketPath,
		"duration", cfg.Duration,
		"notification_backend", cfg.Notification.Backend,
	)

	if err := server.Serve(ctx); err != nil {
		return err
	}

	logger.Info("shutdown complete")
	return nil
}

// registerStatus installs the status action, which reports on the
// daemon itself.
func registerStatus(server *service.SocketServer, session *pomodoro.Session, clk clock.Clock, socketPath string) {
	startedAt := clk.Now()
	server.Handle("status", func(_ context.Context, _ []byte) (any, error) {
		return pomodoro.Status{
			Version:                version.Info(),
			SocketPath:             socketPath,
			UptimeSeconds:          clk.Now().Sub(startedAt).Seconds(),
			DefaultDurationSeconds: int64(session.DefaultDuration() / time.Second),
			State:                  session.State(),
			Completions:            session.Completions(),
		}, nil
	})
}

// loadConfig parses args, loads the config file, and applies flag
// overrides. It returns a nil config (and no error) when --help was
// requested.
func loadConfig(args []string) (*config.Config, bool, error) {
	var (
		configPath    string
		socketPath    string
		duration      time.Duration
		backend       string
		notifyCommand string
		logLevel      string
		logFormat     string
		showVersion   bool
	)

	flagSet := pflag.NewFlagSet("pomodorod", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to config file (YAML, or JSON with comments); default $"+config.EnvironmentVariable)
	flagSet.StringVar(&socketPath, "socket", "", "Unix socket to listen on (default ${XDG_RUNTIME_DIR:-/tmp}/pomodoro.sock)")
	flagSet.DurationVar(&duration, "duration", 0, "length of a fresh pomodoro (default 25m)")
	flagSet.StringVar(&backend, "notify", "", "notification backend: command, dbus, or none")
	flagSet.StringVar(&notifyCommand, "notify-command", "", "executable for the command backend (default notify-send)")
	flagSet.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.StringVar(&logFormat, "log-format", "", "log format: auto, json, text")
	flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")
	flagSet.SetOutput(os.Stderr)

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, false, nil
		}
		return nil, false, err
	}
	if flagSet.NArg() > 0 {
		return nil, false, fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}
	if showVersion {
		return nil, true, nil
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading config: %w", err)
	}

	if flagSet.Changed("socket") {
		cfg.SocketPath = socketPath
	}
	if flagSet.Changed("duration") {
		cfg.Duration = duration
	}
	if flagSet.Changed("notify") {
		cfg.Notification.Backend = notify.Backend(backend)
	}
	if flagSet.Changed("notify-command") {
		cfg.Notification.Command = notifyCommand
	}
	if flagSet.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flagSet.Changed("log-format") {
		cfg.Log.Format = logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, false, nil
}

// newLogger builds the daemon logger. In auto format, output is text
// when w is a terminal and JSON otherwise, so journald and log
// shippers get machine-parseable records.
func newLogger(logConfig config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := logConfig.SlogLevel()
	if err != nil {
		return nil, err
	}
	options := &slog.HandlerOptions{Level: level}

	format := logConfig.Format
	if format == config.LogFormatAuto {
		format = config.LogFormatJSON
		if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			format = config.LogFormatText
		}
	}

	if format == config.LogFormatText {
		return slog.New(slog.NewTextHandler(w, options)), nil
	}
	return slog.New(slog.NewJSONHandler(w, options)), nil
}
