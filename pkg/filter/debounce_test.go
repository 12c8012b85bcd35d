package filter

import (
	"math"
	"testing"
	"time"

	"github.com/Veraticus/weechat-notify-send/pkg/config"
	"github.com/Veraticus/weechat-notify-send/pkg/host"
)

func secondsClock(secs *float64) func() time.Time {
	return func() time.Time { return time.Unix(0, int64(math.Round(*secs*float64(time.Second)))) }
}

func TestIsBelowMinNotificationDelay(t *testing.T) {
	var now float64
	cfg := config.NewStore(config.Defaults(), map[string]string{config.MinNotificationDelay: "500"})
	buffers := host.NewMemoryBuffers()
	e := NewEngine(cfg, buffers, WithClock(secondsClock(&now)))

	buffers.SetBufferString(testBuffer, host.LocalvarLastNotificationTime, "0.7")

	now = 1.0
	if !e.IsBelowMinNotificationDelay(testBuffer) {
		t.Error("expected 300ms after the marker to be below the delay")
	}
	if got := ParseMarker(buffers.BufferString(testBuffer, host.LocalvarLastNotificationTime)); !got.Equal(time.Unix(1, 0)) {
		t.Errorf("expected marker to be updated to 1.0, got %v", got)
	}

	now = 1.6
	if e.IsBelowMinNotificationDelay(testBuffer) {
		t.Error("expected 600ms after the marker not to be below the delay")
	}
}

func TestIsBelowMinNotificationDelay_LastInFuture(t *testing.T) {
	now := 1.0
	cfg := config.NewStore(config.Defaults(), map[string]string{config.MinNotificationDelay: "500"})
	buffers := host.NewMemoryBuffers()
	e := NewEngine(cfg, buffers, WithClock(secondsClock(&now)))

	buffers.SetBufferString(testBuffer, host.LocalvarLastNotificationTime, "1.4")
	if !e.IsBelowMinNotificationDelay(testBuffer) {
		t.Error("expected a marker in the future to count as below the delay")
	}
}

func TestIsBelowMinNotificationDelay_Disabled(t *testing.T) {
	now := 1.0
	cfg := config.NewStore(config.Defaults(), map[string]string{config.MinNotificationDelay: "0"})
	buffers := host.NewMemoryBuffers()
	e := NewEngine(cfg, buffers, WithClock(secondsClock(&now)))

	buffers.SetBufferString(testBuffer, host.LocalvarLastNotificationTime, "0.9")
	if e.IsBelowMinNotificationDelay(testBuffer) {
		t.Error("expected zero delay never to debounce")
	}
	if got := buffers.BufferString(testBuffer, host.LocalvarLastNotificationTime); got != "0.9" {
		t.Errorf("expected marker untouched with zero delay, got %q", got)
	}
}

func TestIsBelowMinNotificationDelay_UnparseableMarker(t *testing.T) {
	now := 1.0
	cfg := config.NewStore(config.Defaults(), map[string]string{config.MinNotificationDelay: "500"})
	buffers := host.NewMemoryBuffers()
	e := NewEngine(cfg, buffers, WithClock(secondsClock(&now)))

	buffers.SetBufferString(testBuffer, host.LocalvarLastNotificationTime, "yesterday")
	if e.IsBelowMinNotificationDelay(testBuffer) {
		t.Error("expected garbage marker to read as the epoch")
	}
}

func TestMarkerRoundTrip(t *testing.T) {
	tests := []struct {
		marker string
		want   time.Time
	}{
		{"", time.Unix(0, 0)},
		{"  ", time.Unix(0, 0)},
		{"NaN", time.Unix(0, 0)},
		{"1", time.Unix(1, 0)},
		{"1.5", time.Unix(1, 500*int64(time.Millisecond))},
		{"1700000000.25", time.Unix(1700000000, 250*int64(time.Millisecond))},
	}
	for _, tt := range tests {
		if got := ParseMarker(tt.marker); !got.Equal(tt.want) {
			t.Errorf("ParseMarker(%q) = %v, want %v", tt.marker, got, tt.want)
		}
	}

	if got := FormatMarker(time.Unix(2, 250*int64(time.Millisecond))); got != "2.25" {
		t.Errorf("FormatMarker = %q, want 2.25", got)
	}
}
