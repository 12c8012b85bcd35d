package testutil

import (
	"sync"
)

// RunCall records one program invocation.
type RunCall struct {
	Name string
	Args []string
}

// MockRunner is a mock implementation of process.Runner for testing
type MockRunner struct {
	mu     sync.Mutex
	calls  []RunCall
	runErr error
}

// NewMockRunner creates a new mock runner
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

// Run implements the Runner interface
func (m *MockRunner) Run(name string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, RunCall{Name: name, Args: append([]string(nil), args...)})
	return m.runErr
}

// SetError sets the error to return on Run calls
func (m *MockRunner) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runErr = err
}

// GetCalls returns a copy of all recorded invocations
func (m *MockRunner) GetCalls() []RunCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]RunCall, len(m.calls))
	copy(result, m.calls)
	return result
}

// LastCall returns the most recent invocation
func (m *MockRunner) LastCall() (RunCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.calls) == 0 {
		return RunCall{}, false
	}
	return m.calls[len(m.calls)-1], true
}
