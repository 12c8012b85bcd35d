// Package config holds the notifier's options: the option table with
// defaults, the accessor the filter and preparation read through, and the
// loaders for YAML files, WeeChat's plugins.conf and the environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

const (
	appName = "weechat-notify-send"

	// EnvConfigPath overrides config file discovery.
	EnvConfigPath = "WEECHAT_NOTIFY_SEND_CONFIG"
	// EnvPrefix prefixes per-option environment overrides, e.g.
	// WEECHAT_NOTIFY_SEND_URGENCY=critical.
	EnvPrefix = "WEECHAT_NOTIFY_SEND_"

	// scriptKey is the middle part of plugins.conf keys belonging to this
	// script, e.g. "python.notify_send.icon".
	scriptKey = ".notify_send."
)

var (
	// ErrUnknownOption is returned for option names missing from Options.
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidValue is returned for values an option cannot take.
	ErrInvalidValue = errors.New("invalid value")
)

// Load reads options from path (or the discovered default path when empty)
// and the environment, validates them and returns a Store.
func Load(path string) (*Store, error) {
	values, err := Read(path)
	if err != nil {
		return nil, err
	}
	return NewStore(Defaults(), values), nil
}

// Read returns the validated option values set by the config file and the
// environment. Defaults are not included.
func Read(path string) (map[string]string, error) {
	values := make(map[string]string)

	// Only a discovered file may vanish; a path the user named must exist.
	explicit := path != ""
	if !explicit {
		path, explicit = resolvePath()
	}
	if path != "" {
		if err := loadFromFile(values, path); err != nil && (explicit || !os.IsNotExist(err)) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	loadFromEnv(values)

	if err := validate(values); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return values, nil
}

// DefaultPath returns the config file to use when none is given: the
// WEECHAT_NOTIFY_SEND_CONFIG variable, then config.yaml in the XDG config
// directories, then WeeChat's own plugins.conf.
func DefaultPath() string {
	path, _ := resolvePath()
	return path
}

// resolvePath finds the config file and reports whether the user named it
// through the environment rather than it being discovered.
func resolvePath() (string, bool) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, true
	}

	candidates := []string{
		filepath.Join(appName, "config.yaml"),
		filepath.Join(appName, "config.yml"),
		filepath.Join("weechat", "plugins.conf"),
	}
	for _, rel := range candidates {
		if path, err := xdg.SearchConfigFile(rel); err == nil {
			return path, false
		}
	}

	// WeeChat before 3.2 kept everything in ~/.weechat.
	if home, err := os.UserHomeDir(); err == nil {
		legacy := filepath.Join(home, ".weechat", "plugins.conf")
		if _, err := os.Stat(legacy); err == nil {
			return legacy, false
		}
	}

	return "", false
}

// loadFromFile dispatches on the file extension.
func loadFromFile(values map[string]string, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".conf", ".ini":
		return loadFromPluginsConf(values, path)
	default:
		return loadFromYAML(values, path)
	}
}

// loadFromYAML reads a flat mapping of option names to scalars or lists.
func loadFromYAML(values map[string]string, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (flag, env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	for name, v := range raw {
		if _, ok := Lookup(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownOption, name)
		}
		s, err := scalarString(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		values[name] = s
	}
	return nil
}

// scalarString renders a decoded YAML value the way the host would store it.
func scalarString(v interface{}) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		if x {
			return "on", nil
		}
		return "off", nil
	case int:
		return strconv.Itoa(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case []interface{}:
		items := make([]string, 0, len(x))
		for _, item := range x {
			s, err := scalarString(item)
			if err != nil {
				return "", err
			}
			items = append(items, s)
		}
		return strings.Join(items, ","), nil
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
}

// loadFromPluginsConf reads the [var] section of WeeChat's plugins.conf.
// Keys belonging to other scripts are skipped.
func loadFromPluginsConf(values map[string]string, path string) error {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return err
	}

	for _, key := range f.Section("var").Keys() {
		idx := strings.Index(key.Name(), scriptKey)
		if idx < 0 {
			continue
		}
		name := key.Name()[idx+len(scriptKey):]
		if _, ok := Lookup(name); !ok {
			continue
		}
		values[name] = key.Value()
	}
	return nil
}

// loadFromEnv applies WEECHAT_NOTIFY_SEND_<OPTION> overrides.
func loadFromEnv(values map[string]string) {
	for _, o := range Options {
		if v, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(o.Name)); ok {
			values[o.Name] = v
		}
	}
}

// validate checks the values that would otherwise be silently replaced by
// fallbacks at notification time.
func validate(values map[string]string) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := strings.TrimSpace(values[name])
		switch name {
		case Urgency:
			switch v {
			case "", "low", "normal", "critical":
			default:
				return fmt.Errorf("%w: %s must be low, normal or critical, got %q", ErrInvalidValue, name, v)
			}
		case Timeout, MaxLength, MinNotificationDelay:
			if v == "" {
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s must be a number of milliseconds or characters, got %q", ErrInvalidValue, name, v)
			}
			if n < 0 && name != Timeout {
				return fmt.Errorf("%w: %s must be non-negative", ErrInvalidValue, name)
			}
			if n > math.MaxInt32 {
				return fmt.Errorf("%w: %s must not exceed %d", ErrInvalidValue, name, math.MaxInt32)
			}
		}
	}
	return nil
}
