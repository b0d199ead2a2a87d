package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/toaster/internal/toast"
)

const appName = "toaster"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	// Queue behaviour
	Toasts ToastsConfig `koanf:"toasts"`

	// Terminal rendering
	UI UIConfig `koanf:"ui"`

	// Desktop notification mirror (D-Bus)
	Notify NotifyConfig `koanf:"notify"`

	Log LogConfig `koanf:"log"`
}

// ToastsConfig holds queue settings. Durations are Go duration strings ("1s", "500ms").
type ToastsConfig struct {
	Limit       int    `koanf:"limit"`        // max toasts kept (default: 10000)
	RemoveDelay string `koanf:"remove_delay"` // dismissal to removal (default: 1s)
	Duration    string `koanf:"duration"`     // auto-dismiss, "0s" disables (default: 5s)
	Position    string `koanf:"position"`     // default position (default: bottom-right)
	Variant     string `koanf:"variant"`      // default variant (default: default)
	IDs         string `koanf:"ids"`          // "counter" or "uuid" (default: counter)
}

// UIConfig holds rendering settings.
type UIConfig struct {
	Animation *bool `koanf:"animation"` // enter/exit animation (default: true)
	FPS       int   `koanf:"fps"`       // animation frame rate (1-60, default: 30)
	ShowAge   bool  `koanf:"show_age"`  // "3 seconds ago" line on each toast
	Width     int   `koanf:"width"`     // toast width in columns (default: 40)
}

// NotifyConfig holds desktop mirror settings.
type NotifyConfig struct {
	Desktop bool `koanf:"desktop"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/toaster/toaster.log
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
}

// Load reads the config files in priority order (last wins).
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles reads the given TOML files in order, skipping missing ones.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/toaster/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ToastOptions converts the [toasts] section into queue options.
func (c *Config) ToastOptions() ([]toast.Option, error) {
	tc := c.Toasts

	limit := tc.Limit
	if limit <= 0 {
		limit = toast.DefaultLimit
	}

	removeDelay, err := parseDuration("toasts.remove_delay", tc.RemoveDelay, toast.DefaultRemoveDelay)
	if err != nil {
		return nil, err
	}
	duration, err := parseDuration("toasts.duration", tc.Duration, DefaultToastDuration)
	if err != nil {
		return nil, err
	}

	opts := []toast.Option{
		toast.WithLimit(limit),
		toast.WithRemoveDelay(removeDelay),
		toast.WithDefaultDuration(duration),
	}

	if tc.Position != "" {
		p, err := toast.ParsePosition(tc.Position)
		if err != nil {
			return nil, fmt.Errorf("%w: toasts.position: %w", ErrInvalid, err)
		}
		opts = append(opts, toast.WithDefaultPosition(p))
	}
	if tc.Variant != "" {
		v, err := toast.ParseVariant(tc.Variant)
		if err != nil {
			return nil, fmt.Errorf("%w: toasts.variant: %w", ErrInvalid, err)
		}
		opts = append(opts, toast.WithDefaultVariant(v))
	}

	ids, ok := toast.ParseIDScheme(tc.IDs)
	if !ok {
		return nil, fmt.Errorf("%w: toasts.ids: %q (want counter or uuid)", ErrInvalid, tc.IDs)
	}
	opts = append(opts, toast.WithIDGenerator(ids))

	return opts, nil
}

// DefaultToastDuration is the auto-dismiss delay when none is configured.
const DefaultToastDuration = 5 * time.Second

func parseDuration(key, value string, def time.Duration) (time.Duration, error) {
	if value == "" {
		return def, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", ErrInvalid, key)
	}
	return d, nil
}

// GetUIConfig returns the UI configuration with defaults applied.
func (c *Config) GetUIConfig() UIConfig {
	cfg := c.UI

	if cfg.Animation == nil {
		enabled := true
		cfg.Animation = &enabled
	}
	if cfg.FPS <= 0 || cfg.FPS > 60 {
		cfg.FPS = 30
	}
	if cfg.Width <= 0 {
		cfg.Width = 40
	}

	return cfg
}

// AnimationEnabled reports whether enter/exit animation is on.
func (u UIConfig) AnimationEnabled() bool {
	return u.Animation == nil || *u.Animation
}

// LogPath returns the log file path, defaulting to the XDG state dir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}
