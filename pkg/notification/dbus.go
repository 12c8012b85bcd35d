package notification

import (
	"fmt"
	"math"

	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// busCaller is the part of dbus.BusObject the notifier uses.
type busCaller interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// DBusNotifier talks to the notification daemon directly over the session
// bus instead of spawning notify-send.
type DBusNotifier struct {
	conn *dbus.Conn
	obj  busCaller
}

// NewDBusNotifier connects to the session bus.
func NewDBusNotifier() (*DBusNotifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &DBusNotifier{
		conn: conn,
		obj:  conn.Object(dbusNotifyDest, dbusNotifyPath),
	}, nil
}

// Ensure DBusNotifier implements Notifier
var _ Notifier = (*DBusNotifier)(nil)

// Send calls org.freedesktop.Notifications.Notify.
func (n *DBusNotifier) Send(notification Notification) error {
	hints := map[string]dbus.Variant{}
	if level, ok := urgencyLevel(notification.Urgency); ok {
		hints["urgency"] = dbus.MakeVariant(level)
	}
	if notification.Transient {
		hints["transient"] = dbus.MakeVariant(true)
	}

	timeout := int32(-1)
	if notification.HasTimeout() {
		timeout = int32(min(notification.Timeout, math.MaxInt32))
	}

	source := notification.Source
	if source == "" {
		source = "-"
	}

	// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		AppName,
		uint32(0),
		notification.Icon,
		source,
		notification.Message,
		[]string{},
		hints,
		timeout,
	)
	if call.Err != nil {
		return call.Err
	}

	var id uint32
	return call.Store(&id)
}

// Close closes the bus connection.
func (n *DBusNotifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}

// urgencyLevel maps urgency names to the freedesktop.org urgency bytes.
func urgencyLevel(urgency string) (byte, bool) {
	switch urgency {
	case "low":
		return 0, true
	case "normal":
		return 1, true
	case "critical":
		return 2, true
	default:
		return 0, false
	}
}
