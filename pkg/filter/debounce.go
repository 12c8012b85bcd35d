package filter

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/weechat-notify-send/pkg/config"
	"github.com/Veraticus/weechat-notify-send/pkg/host"
)

// IsBelowMinNotificationDelay reports whether the previous notification
// check for buffer happened less than min_notification_delay ago.
//
// When a delay is configured, every call stamps the buffer with the current
// time, whether or not the check passes. A buffer that keeps receiving
// lines faster than the delay therefore stays quiet until it calms down.
func (e *Engine) IsBelowMinNotificationDelay(buffer string) bool {
	delay := time.Duration(config.Int(e.cfg, config.MinNotificationDelay, 0)) * time.Millisecond
	if delay <= 0 {
		return false
	}

	last := e.lastNotificationTime(buffer)
	now := e.now()
	e.buffers.SetBufferString(buffer, host.LocalvarLastNotificationTime, FormatMarker(now))

	return now.Sub(last) < delay
}

func (e *Engine) lastNotificationTime(buffer string) time.Time {
	return ParseMarker(e.buffers.BufferString(buffer, host.LocalvarLastNotificationTime))
}

// FormatMarker renders t as decimal seconds since the epoch.
func FormatMarker(t time.Time) string {
	return strconv.FormatFloat(float64(t.UnixNano())/float64(time.Second), 'f', -1, 64)
}

// ParseMarker reads a marker written by FormatMarker. Empty or malformed
// markers read as the epoch.
func ParseMarker(s string) time.Time {
	secs, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return time.Unix(0, 0)
	}
	whole, frac := math.Modf(secs)
	return time.Unix(int64(whole), int64(math.Round(frac*float64(time.Second))))
}
