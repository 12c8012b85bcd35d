// Package monitor is the host adapter: it reads the event feed the chat
// client writes, keeps the buffer registry up to date and runs every
// printed line through the notification pipeline.
package monitor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Veraticus/weechat-notify-send/pkg/host"
	"github.com/Veraticus/weechat-notify-send/pkg/identity"
)

// EventMonitor routes host events to the registry and the pipeline.
type EventMonitor struct {
	registry   BufferRegistry
	filter     Filter
	preparer   Preparer
	dispatcher Dispatcher
	log        zerolog.Logger

	mu         sync.Mutex
	lineBuffer bytes.Buffer
	stats      Stats
}

// NewEventMonitor creates a new event monitor
func NewEventMonitor(registry BufferRegistry, filter Filter, preparer Preparer, dispatcher Dispatcher, log zerolog.Logger) *EventMonitor {
	return &EventMonitor{
		registry:   registry,
		filter:     filter,
		preparer:   preparer,
		dispatcher: dispatcher,
		log:        log,
	}
}

// HandlePrint runs one printed line through the pipeline. It always
// returns host.RCOK; delivery failures are logged by the dispatcher.
func (em *EventMonitor) HandlePrint(ev host.PrintEvent) int {
	em.mu.Lock()
	defer em.mu.Unlock()
	return em.handlePrint(ev)
}

func (em *EventMonitor) handlePrint(ev host.PrintEvent) int {
	nick := identity.NickThatSentMessage(ev.Tags, ev.Prefix)
	if !em.filter.ShouldNotify(ev.Buffer, ev.Tags, nick, ev.Displayed, ev.Highlight, ev.Message) {
		em.debugPrint(ev, nick).Msg("line filtered")
		return host.RCOK
	}

	n := em.preparer.Prepare(ev.Buffer, ev.Highlight, nick, ev.Message)
	if em.dispatcher.Send(n) {
		em.stats.Notified++
		em.debugPrint(ev, nick).Msg("notification sent")
	} else {
		em.stats.Failed++
	}
	return host.RCOK
}

// debugPrint starts a debug entry describing a printed line. The host date is
// included when the feed carried one.
func (em *EventMonitor) debugPrint(ev host.PrintEvent, nick string) *zerolog.Event {
	e := em.log.Debug().
		Str("buffer", ev.Buffer).
		Str("nick", nick).
		Bool("highlight", ev.Highlight)
	if !ev.Date.IsZero() {
		e = e.Time("date", ev.Date)
	}
	return e
}

// HandleData processes a chunk of the feed. Incomplete lines are kept until
// the rest arrives.
func (em *EventMonitor) HandleData(data []byte) {
	em.mu.Lock()
	defer em.mu.Unlock()

	em.lineBuffer.Write(data)

	buffer := em.lineBuffer.Bytes()
	start := 0
	var lines []string
	for i := 0; i < len(buffer); i++ {
		if buffer[i] == '\n' {
			lines = append(lines, string(buffer[start:i]))
			start = i + 1
		}
	}
	rest := append([]byte(nil), buffer[start:]...)
	em.lineBuffer.Reset()
	em.lineBuffer.Write(rest)

	for _, line := range lines {
		em.processLine(line)
	}
}

// Flush processes any remaining data in the buffer
func (em *EventMonitor) Flush() {
	em.mu.Lock()
	defer em.mu.Unlock()

	if em.lineBuffer.Len() > 0 {
		line := em.lineBuffer.String()
		em.lineBuffer.Reset()
		em.processLine(line)
	}
}

// HandleLine decodes and applies a single feed line.
func (em *EventMonitor) HandleLine(line string) error {
	em.mu.Lock()
	defer em.mu.Unlock()
	return em.handleLine(line)
}

// Stats returns a snapshot of the counters.
func (em *EventMonitor) Stats() Stats {
	em.mu.Lock()
	defer em.mu.Unlock()
	return em.stats
}

// Run reads the feed from r until EOF or until ctx is cancelled. When r is
// an io.Closer it is closed on cancellation to unblock the pending read.
func (em *EventMonitor) Run(ctx context.Context, r io.Reader) error {
	if c, ok := r.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() { _ = c.Close() })
		defer stop()
	}

	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			em.HandleData(buf[:n])
		}
		if err != nil {
			em.Flush()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to read events: %w", err)
		}
	}
}

// processLine applies a line and logs what cannot be applied. Callers hold
// em.mu.
func (em *EventMonitor) processLine(line string) {
	if err := em.handleLine(line); err != nil {
		em.stats.Invalid++
		em.log.Warn().Err(err).Str("line", line).Msg("skipping event")
	}
}

func (em *EventMonitor) handleLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	em.stats.Lines++

	var ev Event
	if err := json.Unmarshal([]byte(line), &ev); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}
	return em.apply(ev)
}

func (em *EventMonitor) apply(ev Event) error {
	switch ev.Event {
	case EventPrint:
		em.stats.Prints++
		em.handlePrint(ev.printEvent())
	case EventBuffer:
		if ev.Buffer == "" {
			return fmt.Errorf("%s event without buffer", ev.Event)
		}
		em.registry.Update(ev.Buffer, ev.Strings)
	case EventFocus:
		em.registry.SetCurrentBuffer(ev.Buffer)
	case EventClose:
		em.registry.Remove(ev.Buffer)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Event)
	}
	return nil
}

func (ev Event) printEvent() host.PrintEvent {
	displayed := true
	if ev.Displayed != nil {
		displayed = *ev.Displayed
	}
	var date time.Time
	if ev.Date > 0 {
		date = time.Unix(ev.Date, 0)
	}
	return host.PrintEvent{
		Buffer:    ev.Buffer,
		Date:      date,
		Tags:      ev.Tags,
		Displayed: displayed,
		Highlight: ev.Highlight,
		Prefix:    ev.Prefix,
		Message:   ev.Message,
	}
}
