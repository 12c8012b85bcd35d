package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Veraticus/weechat-notify-send/pkg/config"
	"github.com/Veraticus/weechat-notify-send/pkg/filter"
	"github.com/Veraticus/weechat-notify-send/pkg/host"
	"github.com/Veraticus/weechat-notify-send/pkg/logging"
	"github.com/Veraticus/weechat-notify-send/pkg/monitor"
	"github.com/Veraticus/weechat-notify-send/pkg/notification"
	"github.com/Veraticus/weechat-notify-send/pkg/process"
	"github.com/Veraticus/weechat-notify-send/pkg/state"
)

// Notification backends selectable with --backend.
const (
	BackendExec   = "exec"
	BackendDBus   = "dbus"
	BackendStdout = "stdout"
)

// stateAuto selects the XDG state location for --state.
const stateAuto = "auto"

// Options holds the command line settings.
type Options struct {
	ConfigPath string
	InputPath  string
	Backend    string
	StatePath  string
	LogLevel   string
	Watch      bool
}

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Options             Options
	ConfigPath          string
	Config              *config.Store
	Log                 zerolog.Logger
	Buffers             *host.MemoryBuffers
	BufferStore         host.BufferStore
	State               *state.SQLiteStore
	Runner              process.Runner
	Notifier            notification.Notifier
	NotificationManager *notification.Manager
	Filter              *filter.Engine
	Preparer            *notification.Preparer
	EventMonitor        *monitor.EventMonitor
}

// NewDependencies creates all dependencies with the given options. Logs go
// to stderr; the stdout backend prints to stdout.
func NewDependencies(opts Options, runner process.Runner, stdout, stderr io.Writer) (*Dependencies, error) {
	deps := &Dependencies{
		Options: opts,
		Log:     logging.New(stderr, opts.LogLevel),
		Runner:  runner,
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	deps.ConfigPath = opts.ConfigPath
	if deps.ConfigPath == "" {
		deps.ConfigPath = config.DefaultPath()
	}
	deps.Config = cfg

	deps.Buffers = host.NewMemoryBuffers()
	deps.BufferStore = deps.Buffers

	statePath := opts.StatePath
	if statePath == stateAuto {
		if statePath, err = state.DefaultPath(); err != nil {
			return nil, fmt.Errorf("failed to resolve state path: %w", err)
		}
	}
	deps.State, err = state.Open(state.Config{Path: statePath, Retention: state.DefaultRetention}, deps.Log)
	if err != nil {
		return nil, err
	}
	if deps.State != nil {
		deps.BufferStore = state.NewPersistentBuffers(deps.Buffers, deps.State, deps.Log)
	}

	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	if backend == "" {
		backend = BackendExec
	}
	deps.Notifier, backend, err = newNotifier(backend, runner, stdout, deps.Log)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.NotificationManager = notification.NewManager(deps.Notifier, backend, deps.Log)

	deps.Filter = filter.NewEngine(deps.Config, deps.BufferStore, filter.WithLogger(deps.Log))
	deps.Preparer = notification.NewPreparer(deps.Config, deps.BufferStore)
	deps.EventMonitor = monitor.NewEventMonitor(deps.Buffers, deps.Filter, deps.Preparer, deps.NotificationManager, deps.Log)

	deps.Log.Debug().
		Str("config", deps.ConfigPath).
		Str("backend", backend).
		Bool("persistent", deps.State != nil).
		Msg("dependencies ready")

	return deps, nil
}

// newNotifier builds the backend. A D-Bus backend without a session bus
// falls back to notify-send.
func newNotifier(backend string, runner process.Runner, stdout io.Writer, log zerolog.Logger) (notification.Notifier, string, error) {
	switch backend {
	case BackendExec:
		return notification.NewNotifySendNotifier(runner), backend, nil
	case BackendDBus:
		n, err := notification.NewDBusNotifier()
		if err != nil {
			log.Warn().Err(err).Msg("D-Bus unavailable, falling back to notify-send")
			return notification.NewNotifySendNotifier(runner), BackendExec, nil
		}
		return n, backend, nil
	case BackendStdout:
		return notification.NewWriterNotifier(stdout), backend, nil
	default:
		return nil, "", fmt.Errorf("unknown backend %q (want %s, %s or %s)", backend, BackendExec, BackendDBus, BackendStdout)
	}
}

// Close cleans up all dependencies
func (d *Dependencies) Close() {
	if d.NotificationManager != nil {
		if err := d.NotificationManager.Close(); err != nil {
			d.Log.Warn().Err(err).Msg("failed to close notifier")
		}
	}
	if d.State != nil {
		if err := d.State.Close(); err != nil {
			d.Log.Warn().Err(err).Msg("failed to close state database")
		}
	}
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run processes events from input until it ends or ctx is cancelled.
func (a *Application) Run(ctx context.Context, input io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watchDone := make(chan struct{})
	if a.deps.Options.Watch && a.deps.ConfigPath != "" {
		go func() {
			defer close(watchDone)
			if err := config.Watch(ctx, a.deps.ConfigPath, a.deps.Config, a.deps.Log); err != nil {
				a.deps.Log.Warn().Err(err).Msg("config watcher stopped")
			}
		}()
	} else {
		close(watchDone)
	}

	a.deps.Log.Info().Msg("waiting for events")
	err := a.deps.EventMonitor.Run(ctx, input)

	cancel()
	<-watchDone

	stats := a.deps.EventMonitor.Stats()
	a.deps.Log.Info().
		Int("lines", stats.Lines).
		Int("prints", stats.Prints).
		Int("notified", stats.Notified).
		Int("failed", stats.Failed).
		Int("invalid", stats.Invalid).
		Msg("event feed closed")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// openInput opens the event feed. An empty path or "-" reads stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	// #nosec G304 - The input path is supplied by the user on the command line
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}
