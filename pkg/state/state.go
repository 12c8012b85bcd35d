// Package state persists debounce markers across restarts so a daemon that
// is restarted in the middle of a burst does not notify again right away.
package state

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

// ErrDisabled is returned by a nil store.
var ErrDisabled = errors.New("state disabled")

// DefaultRetention is how long an untouched marker is kept.
const DefaultRetention = 30 * 24 * time.Hour

// Config configures persistence. An empty Path or "none" disables it.
type Config struct {
	Path        string
	BusyTimeout time.Duration // 0 means the driver default
	Retention   time.Duration // markers older than this are pruned on open; 0 keeps all
}

// MarkerStore keeps the last notification marker per buffer name.
type MarkerStore interface {
	GetMarker(ctx context.Context, buffer string) (marker string, ok bool, err error)
	PutMarker(ctx context.Context, buffer, marker string) error
	Close() error
}

// Open initializes the configured store.
// It returns (nil, nil) if persistence is disabled.
func Open(cfg Config, log zerolog.Logger) (*SQLiteStore, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" || strings.EqualFold(path, "none") {
		return nil, nil
	}
	s, err := openSQLite(path, cfg.BusyTimeout, log)
	if err != nil {
		return nil, err
	}
	if cfg.Retention > 0 {
		n, err := s.Prune(context.Background(), s.now().Add(-cfg.Retention))
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to prune state: %w", err)
		}
		if n > 0 {
			log.Debug().Int64("markers", n).Dur("retention", cfg.Retention).Msg("pruned stale markers")
		}
	}
	return s, nil
}

// DefaultPath returns the state database location under XDG_STATE_HOME.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join("weechat-notify-send", "state.db"))
}
