// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package instance guarantees that at most one daemon serves a given
// socket path.
//
// The guard is an exclusive flock(2) on a lock file next to the
// socket. The kernel drops the lock when the holder exits, however it
// exits, so a crashed daemon never leaves a stale lock behind. Only
// the lock holder may remove and rebind the socket file.
package instance

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ErrAlreadyRunning indicates another process holds the lock.
var ErrAlreadyRunning = errors.New("another pomodoro daemon is already running")

// Lock is a held single-instance lock.
type Lock struct {
	path string
	file *os.File
}

// LockPath returns the lock file used for socketPath.
func LockPath(socketPath string) string {
	return socketPath + ".lock"
}

// Acquire takes the lock at path without blocking. It returns an error
// wrapping ErrAlreadyRunning when another process holds it. The lock
// file is created if needed and is left in place on Release.
func Acquire(path string) (*Lock, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|unix.O_CLOEXEC, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		file.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, fmt.Errorf("%w (lock %s is held)", ErrAlreadyRunning, path)
		}
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}

	return &Lock{path: path, file: file}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock. Safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	file := l.file
	l.file = nil

	if err := unix.Flock(int(file.Fd()), unix.LOCK_UN); err != nil {
		file.Close()
		return fmt.Errorf("unlocking %s: %w", l.path, err)
	}
	return file.Close()
}
