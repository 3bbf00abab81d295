// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsDestination = "org.freedesktop.Notifications"
	notificationsPath        = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod             = "org.freedesktop.Notifications.Notify"

	// dbusCallTimeout bounds a single Notify call. A wedged
	// notification daemon costs one goroutine for this long, never a
	// stuck countdown.
	dbusCallTimeout = 5 * time.Second
)

// DBusNotifier sends notifications to the session bus notification
// service.
type DBusNotifier struct {
	appName string
	logger  *slog.Logger

	// connect returns the bus connection. Defaults to the shared
	// session bus, which must not be closed by callers.
	connect func() (*dbus.Conn, error)
}

// NewDBusNotifier returns a DBusNotifier that identifies itself as
// appName.
func NewDBusNotifier(appName string, logger *slog.Logger) *DBusNotifier {
	return &DBusNotifier{
		appName: appName,
		logger:  logger,
		connect: dbus.SessionBus,
	}
}

// Notify sends the notification on a background goroutine.
func (n *DBusNotifier) Notify(notification Notification) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dbusCallTimeout)
		defer cancel()
		if err := n.send(ctx, notification); err != nil {
			n.logger.Warn("desktop notification failed", "error", err)
		}
	}()
}

func (n *DBusNotifier) send(ctx context.Context, notification Notification) error {
	conn, err := n.connect()
	if err != nil {
		return fmt.Errorf("connecting to session bus: %w", err)
	}

	object := conn.Object(notificationsDestination, notificationsPath)
	// Arguments: app_name, replaces_id (0 = new notification), icon,
	// summary, body, actions, hints, expire_timeout (-1 = server
	// default).
	call := object.CallWithContext(ctx, notifyMethod, 0,
		n.appName,
		uint32(0),
		notification.Icon,
		notification.Title,
		notification.Body,
		[]string{},
		map[string]dbus.Variant{},
		int32(-1),
	)
	if call.Err != nil {
		return fmt.Errorf("calling %s: %w", notifyMethod, call.Err)
	}
	return nil
}
