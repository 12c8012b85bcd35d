package testutil

import (
	"sync"

	"github.com/Veraticus/weechat-notify-send/pkg/notification"
)

// MockNotifier is a thread-safe mock implementation of notification.Notifier for testing
type MockNotifier struct {
	mu            sync.Mutex
	notifications []notification.Notification
	attempts      []notification.Notification // Track all send attempts
	sendErr       error
	closed        bool
}

// NewMockNotifier creates a new mock notifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{
		notifications: []notification.Notification{},
		attempts:      []notification.Notification{},
	}
}

// Send implements the Notifier interface
func (m *MockNotifier) Send(n notification.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.attempts = append(m.attempts, n)

	if m.sendErr != nil {
		return m.sendErr
	}

	m.notifications = append(m.notifications, n)
	return nil
}

// GetNotifications returns a copy of successfully sent notifications
func (m *MockNotifier) GetNotifications() []notification.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]notification.Notification, len(m.notifications))
	copy(result, m.notifications)
	return result
}

// GetAttempts returns a copy of all attempted sends (including failures)
func (m *MockNotifier) GetAttempts() []notification.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]notification.Notification, len(m.attempts))
	copy(result, m.attempts)
	return result
}

// SetError sets the error to return on Send calls
func (m *MockNotifier) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendErr = err
}

// Close records that the notifier was released
func (m *MockNotifier) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// IsClosed reports whether Close was called
func (m *MockNotifier) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Clear resets the mock state
func (m *MockNotifier) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = []notification.Notification{}
	m.attempts = []notification.Notification{}
	m.sendErr = nil
	m.closed = false
}

// FilterCall records the arguments of one ShouldNotify call.
type FilterCall struct {
	Buffer    string
	Tags      []string
	Nick      string
	Displayed bool
	Highlight bool
	Message   string
}

// MockFilter is a mock filter with a fixed answer
type MockFilter struct {
	mu     sync.Mutex
	result bool
	calls  []FilterCall
}

// NewMockFilter creates a new mock filter
func NewMockFilter(result bool) *MockFilter {
	return &MockFilter{result: result}
}

// ShouldNotify records the call and returns the configured result
func (m *MockFilter) ShouldNotify(buffer string, tags []string, nick string, isDisplayed, isHighlight bool, message string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, FilterCall{buffer, tags, nick, isDisplayed, isHighlight, message})
	return m.result
}

// SetResult sets what ShouldNotify will return
func (m *MockFilter) SetResult(result bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.result = result
}

// GetCalls returns a copy of the recorded calls
func (m *MockFilter) GetCalls() []FilterCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]FilterCall, len(m.calls))
	copy(result, m.calls)
	return result
}
