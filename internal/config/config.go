package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config keys, shared by flags, env vars and the config file.
const (
	KeyRoot          = "root"
	KeyPollInterval  = "poll_interval"
	KeyWatch         = "watch"
	KeyWatchDebounce = "watch_debounce"
	KeyLogFile       = "log_file"
	KeyLogLevel      = "log_level"
)

// EnvPrefix is prepended to every key when read from the environment,
// e.g. A2A_DASH_POLL_INTERVAL.
const EnvPrefix = "A2A_DASH"

// Config is the resolved dashboard configuration.
type Config struct {
	Root          string        `json:"root" mapstructure:"root"`
	PollInterval  time.Duration `json:"poll_interval" mapstructure:"poll_interval"`
	Watch         bool          `json:"watch" mapstructure:"watch"`
	WatchDebounce time.Duration `json:"watch_debounce" mapstructure:"watch_debounce"`
	LogFile       string        `json:"log_file" mapstructure:"log_file"`
	LogLevel      string        `json:"log_level" mapstructure:"log_level"`
}

// Defaults used when neither file, env nor flag sets a key.
const (
	DefaultPollInterval  = 100 * time.Millisecond
	DefaultWatchDebounce = 250 * time.Millisecond
	DefaultLogLevel      = "info"
)

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyRoot, "")
	v.SetDefault(KeyPollInterval, DefaultPollInterval)
	v.SetDefault(KeyWatch, false)
	v.SetDefault(KeyWatchDebounce, DefaultWatchDebounce)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}

// Load decodes v into a Config and fills in the project root. An empty
// root is detected from the working directory.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.Root == "" {
		root, err := DetectProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("detecting project root: %w", err)
		}
		cfg.Root = root
	}
	abs, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}
	cfg.Root = abs
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the event loop cannot run with.
func (c *Config) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("%s must be positive, got %s", KeyPollInterval, c.PollInterval)
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("%s must not be negative, got %s", KeyWatchDebounce, c.WatchDebounce)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%s must be one of debug, info, warn, error; got %q", KeyLogLevel, c.LogLevel)
	}
	if c.Watch && c.LogFile != "" && c.Root != "" {
		inside, err := within(NewPaths(c.Root).Logs, c.LogFile)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", KeyLogFile, err)
		}
		// Every write would wake the watcher, which logs the refresh.
		if inside {
			return fmt.Errorf("%s %s is inside the watched log directory", KeyLogFile, c.LogFile)
		}
	}
	return nil
}

// within reports whether path is dir or lies below it.
func within(dir, path string) (bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}
	rel, err := filepath.Rel(dir, abs)
	if err != nil {
		return false, nil
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)), nil
}
