package config

import (
	"strconv"
	"strings"
	"sync"
)

// Accessor reads option values by name.
type Accessor interface {
	Get(option string) string
}

// Store is the thread-safe Accessor the rest of the program reads from.
// Options that were never set read as their defaults.
type Store struct {
	mu       sync.RWMutex
	defaults map[string]string
	values   map[string]string
}

// NewStore creates a store over the given defaults and values.
func NewStore(defaults, values map[string]string) *Store {
	s := &Store{defaults: copyMap(defaults)}
	s.values = copyMap(values)
	return s
}

// NewDefaultStore creates a store holding only the option table defaults.
func NewDefaultStore() *Store {
	return NewStore(Defaults(), nil)
}

// Ensure Store implements Accessor
var _ Accessor = (*Store)(nil)

// Get returns the value of an option, falling back to its default.
func (s *Store) Get(option string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.values[option]; ok {
		return v
	}
	return s.defaults[option]
}

// Replace swaps all values at once.
func (s *Store) Replace(values map[string]string) {
	next := copyMap(values)

	s.mu.Lock()
	s.values = next
	s.mu.Unlock()
}

// Values returns a snapshot of every known option with defaults applied.
func (s *Store) Values() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := copyMap(s.defaults)
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// On reports whether a boolean option is enabled.
func On(a Accessor, option string) bool {
	return parseBool(a.Get(option))
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "yes", "1":
		return true
	default:
		return false
	}
}

// List splits a comma-separated option into trimmed, non-empty elements.
func List(a Accessor, option string) []string {
	return splitList(a.Get(option))
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Int parses a numeric option, returning fallback when the value is empty or
// not a number.
func Int(a Accessor, option string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(a.Get(option)))
	if err != nil {
		return fallback
	}
	return n
}
