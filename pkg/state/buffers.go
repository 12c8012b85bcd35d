package state

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Veraticus/weechat-notify-send/pkg/host"
)

const opTimeout = 2 * time.Second

// PersistentBuffers wraps a host.BufferStore so the debounce marker
// survives restarts. Markers are keyed by the buffer's full name because
// buffer handles change between sessions. Every other attribute passes
// straight through.
type PersistentBuffers struct {
	host.BufferStore
	store MarkerStore
	log   zerolog.Logger
}

// NewPersistentBuffers decorates buffers with store.
func NewPersistentBuffers(buffers host.BufferStore, store MarkerStore, log zerolog.Logger) *PersistentBuffers {
	return &PersistentBuffers{BufferStore: buffers, store: store, log: log}
}

// Ensure PersistentBuffers implements BufferStore
var _ host.BufferStore = (*PersistentBuffers)(nil)

// BufferString reads an attribute. A marker missing from the wrapped store
// is loaded from the database and cached.
func (p *PersistentBuffers) BufferString(buffer, property string) string {
	value := p.BufferStore.BufferString(buffer, property)
	if value != "" || property != host.LocalvarLastNotificationTime {
		return value
	}

	name := p.BufferStore.BufferString(buffer, host.PropName)
	if name == "" {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	marker, ok, err := p.store.GetMarker(ctx, name)
	if err != nil {
		p.log.Warn().Err(err).Str("buffer", name).Msg("failed to load notification marker")
		return ""
	}
	if !ok {
		return ""
	}

	p.BufferStore.SetBufferString(buffer, property, marker)
	return marker
}

// SetBufferString writes an attribute, writing markers through to the
// database.
func (p *PersistentBuffers) SetBufferString(buffer, property, value string) {
	p.BufferStore.SetBufferString(buffer, property, value)
	if property != host.LocalvarLastNotificationTime {
		return
	}

	name := p.BufferStore.BufferString(buffer, host.PropName)
	if name == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := p.store.PutMarker(ctx, name, value); err != nil {
		p.log.Warn().Err(err).Str("buffer", name).Msg("failed to persist notification marker")
	}
}
