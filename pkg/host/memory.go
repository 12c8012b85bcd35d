package host

import "sync"

// MemoryBuffers is an in-memory BufferStore fed by the host adapter.
type MemoryBuffers struct {
	mu      sync.RWMutex
	buffers map[string]map[string]string
	current string
}

// NewMemoryBuffers creates an empty store.
func NewMemoryBuffers() *MemoryBuffers {
	return &MemoryBuffers{
		buffers: make(map[string]map[string]string),
	}
}

// Ensure MemoryBuffers implements BufferStore
var _ BufferStore = (*MemoryBuffers)(nil)

// BufferString returns the attribute or "" when unset.
func (m *MemoryBuffers) BufferString(buffer, property string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.buffers[buffer][property]
}

// SetBufferString sets a single attribute.
func (m *MemoryBuffers) SetBufferString(buffer, property, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	attrs, ok := m.buffers[buffer]
	if !ok {
		attrs = make(map[string]string)
		m.buffers[buffer] = attrs
	}
	attrs[property] = value
}

// Update merges several attributes into a buffer at once.
func (m *MemoryBuffers) Update(buffer string, values map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	attrs, ok := m.buffers[buffer]
	if !ok {
		attrs = make(map[string]string, len(values))
		m.buffers[buffer] = attrs
	}
	for k, v := range values {
		attrs[k] = v
	}
}

// Remove forgets a closed buffer.
func (m *MemoryBuffers) Remove(buffer string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.buffers, buffer)
	if m.current == buffer {
		m.current = ""
	}
}

// CurrentBuffer returns the focused buffer.
func (m *MemoryBuffers) CurrentBuffer() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SetCurrentBuffer records a focus change.
func (m *MemoryBuffers) SetCurrentBuffer(buffer string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = buffer
}
