// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/pomodoro/lib/notify"
)

// EnvironmentVariable names the variable Load reads the config file
// path from.
const EnvironmentVariable = "POMODORO_CONFIG"

// DefaultSocketPath is the socket location before variable expansion.
const DefaultSocketPath = "${XDG_RUNTIME_DIR:-/tmp}/pomodoro.sock"

// Config is the daemon configuration.
type Config struct {
	// SocketPath is the Unix socket the daemon listens on.
	// Default: ${XDG_RUNTIME_DIR:-/tmp}/pomodoro.sock
	SocketPath string `yaml:"socket_path"`

	// Duration is the length of a fresh pomodoro, as a Go duration
	// string ("25m", "1h30m").
	// Default: 25m
	Duration time.Duration `yaml:"duration"`

	// Notification configures what happens when a pomodoro completes.
	Notification NotificationConfig `yaml:"notification"`

	// Log configures daemon logging.
	Log LogConfig `yaml:"log"`
}

// NotificationConfig configures completion notifications.
type NotificationConfig struct {
	// Backend selects the delivery mechanism: "command", "dbus", or
	// "none".
	// Default: command
	Backend notify.Backend `yaml:"backend"`

	// Command is the executable run by the command backend. It is
	// invoked as: <command> --icon=<icon> <title> <body>
	// Default: notify-send
	Command string `yaml:"command"`

	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Icon  string `yaml:"icon"`
}

// LogConfig configures the daemon's slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`

	// Format is "json", "text", or "auto". Auto picks text when
	// stderr is a terminal and JSON otherwise.
	// Default: auto
	Format string `yaml:"format"`
}

// Log formats accepted by LogConfig.Format.
const (
	LogFormatAuto = "auto"
	LogFormatJSON = "json"
	LogFormatText = "text"
)

var logFormats = []string{LogFormatAuto, LogFormatJSON, LogFormatText}

// Default returns the configuration used when no file is given, with
// variables in paths already expanded.
func Default() *Config {
	cfg := &Config{
		SocketPath: DefaultSocketPath,
		Duration:   25 * time.Minute,
		Notification: NotificationConfig{
			Backend: notify.BackendCommand,
			Command: "notify-send",
			Title:   notify.DefaultNotification.Title,
			Body:    notify.DefaultNotification.Body,
			Icon:    notify.DefaultNotification.Icon,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatAuto,
		},
	}
	cfg.expandVariables()
	return cfg
}

// Load loads the file named by POMODORO_CONFIG. Unlike LoadFile, the
// file is optional: with the variable unset, Load returns Default().
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path on top of Default(). Files
// ending in .json or .jsonc are read as JSON with comments and
// trailing commas allowed; anything else is YAML. Keys are the same
// in both formats.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		// Plain JSON is a subset of YAML, so after stripping comments
		// the YAML decoder handles it, durations included.
		data = jsonc.ToJSON(data)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.expandVariables()
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in path
// fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME":            os.Getenv("HOME"),
		"XDG_RUNTIME_DIR": os.Getenv("XDG_RUNTIME_DIR"),
	}

	c.SocketPath = expandVars(c.SocketPath, vars)
	c.Notification.Command = expandVars(c.Notification.Command, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns. An empty
// variable counts as unset.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors, reporting all of them.
func (c *Config) Validate() error {
	var errs []error

	if c.SocketPath == "" {
		errs = append(errs, errors.New("socket_path is required"))
	}

	if c.Duration < time.Second {
		errs = append(errs, fmt.Errorf("duration must be at least 1s, got %s", c.Duration))
	}

	if !slices.Contains(notify.Backends, c.Notification.Backend) {
		errs = append(errs, fmt.Errorf("notification.backend must be one of: %v", notify.Backends))
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", logFormats))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Content returns the notification to show, with empty fields taken
// from notify.DefaultNotification.
func (n NotificationConfig) Content() notify.Notification {
	content := notify.Notification{Title: n.Title, Body: n.Body, Icon: n.Icon}
	if content.Title == "" {
		content.Title = notify.DefaultNotification.Title
	}
	if content.Body == "" {
		content.Body = notify.DefaultNotification.Body
	}
	if content.Icon == "" {
		content.Icon = notify.DefaultNotification.Icon
	}
	return content
}
