package notification

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Manager hands prepared notifications to a backend. Backend failures are
// logged and never returned, so a broken notifier cannot take down the
// event loop.
type Manager struct {
	notifier Notifier
	backend  string
	log      zerolog.Logger

	mu sync.Mutex
}

// NewManager creates a new notification manager
func NewManager(notifier Notifier, backend string, log zerolog.Logger) *Manager {
	return &Manager{
		notifier: notifier,
		backend:  backend,
		log:      log,
	}
}

// Send dispatches one notification and reports whether it went out.
func (m *Manager) Send(notification Notification) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.notifier.Send(notification); err != nil {
		m.log.Error().
			Err(err).
			Str("backend", m.backend).
			Str("source", notification.Source).
			Msg(describeError(err))
		return false
	}
	return true
}

// Close releases the backend if it holds resources.
func (m *Manager) Close() error {
	if c, ok := m.notifier.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// describeError renders an error with its concrete type, e.g.
// `*exec.Error: exec: "notify-send": executable file not found in $PATH`.
func describeError(err error) string {
	return fmt.Sprintf("%T: %v", err, err)
}
