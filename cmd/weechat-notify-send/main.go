package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/Veraticus/weechat-notify-send/pkg/config"
	"github.com/Veraticus/weechat-notify-send/pkg/process"
)

func main() {
	var (
		opts        Options
		listOptions bool
		help        bool
	)

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to config file (YAML or WeeChat plugins.conf)")
	flag.StringVar(&opts.InputPath, "input", "-", "Event feed to read, a file or named pipe (- for stdin)")
	flag.StringVar(&opts.Backend, "backend", BackendExec, "Notification backend: exec, dbus or stdout")
	flag.StringVar(&opts.StatePath, "state", "", "SQLite file for debounce markers (auto for the XDG state dir, empty to disable)")
	flag.StringVar(&opts.LogLevel, "log-level", envOr("WEECHAT_NOTIFY_SEND_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	flag.BoolVar(&opts.Watch, "watch", false, "Reload the config file when it changes")
	flag.BoolVar(&listOptions, "list-options", false, "List every option with its default and exit")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.Parse()

	if help {
		printUsage()
		os.Exit(0)
	}
	if listOptions {
		printOptions(os.Stdout)
		os.Exit(0)
	}

	deps, err := NewDependencies(opts, process.NewExecRunner(), os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating dependencies: %v\n", err)
		os.Exit(1)
	}
	defer deps.Close()

	input, err := openInput(opts.InputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		deps.Close()
		os.Exit(1)
	}
	defer input.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewApplication(deps).Run(ctx, input); err != nil {
		deps.Log.Error().Err(err).Msg("event loop failed")
		deps.Close()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("weechat-notify-send - desktop notifications for WeeChat highlights and private messages")
	fmt.Println()
	fmt.Println("Usage: weechat-notify-send [OPTIONS]")
	fmt.Println()
	fmt.Println("Reads one JSON event per line from the input and sends a notification")
	fmt.Println("for every line that passes the configured filters.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Printf("  %-40s Path to config file\n", config.EnvConfigPath)
	fmt.Printf("  %-40s Override a single option, e.g. %sURGENCY=critical\n", config.EnvPrefix+"<OPTION>", config.EnvPrefix)
	fmt.Printf("  %-40s Log level\n", "WEECHAT_NOTIFY_SEND_LOG_LEVEL")
	fmt.Println()
	fmt.Println("Configuration file: ~/.config/weechat-notify-send/config.yaml")
}

// printOptions lists every option with its description and default.
func printOptions(w io.Writer) {
	for _, o := range config.Options {
		fmt.Fprintf(w, "%s\n    %s\n", o.Name, config.DescriptionWithDefault(o.Description, o.Default))
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
