package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BurntSushi/toml"

	"pkg.jsn.cam/syskey/internal/schedule"
)

// Config is everything syskey reads from its TOML file.
type Config struct {
	Key         string          `toml:"key"`
	PasswordEnv string          `toml:"password_env"`
	Window      schedule.Window `toml:"window"`
	Interval    IntervalConfig  `toml:"interval"`
	Prompt      PromptConfig    `toml:"prompt"`
	Log         LogConfig       `toml:"log"`
	Metrics     MetricsConfig   `toml:"metrics"`
}

type IntervalConfig struct {
	MinMinutes int `toml:"min_minutes"`
	MaxMinutes int `toml:"max_minutes"`
}

type PromptConfig struct {
	PollIntervalMS int `toml:"poll_interval_ms"`
}

// PollInterval is PollIntervalMS as a duration.
func (p PromptConfig) PollInterval() time.Duration {
	return time.Duration(p.PollIntervalMS) * time.Millisecond
}

type LogConfig struct {
	Path string `toml:"path"`
}

type MetricsConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig is used for anything the config file leaves out.
func DefaultConfig() *Config {
	return &Config{
		Key:         "shift",
		PasswordEnv: "sim_key",
		Window: schedule.Window{
			Start: schedule.Clock{Hour: 18},
			End:   schedule.Clock{Hour: 6},
		},
		Interval: IntervalConfig{MinMinutes: 1, MaxMinutes: 4},
		Prompt:   PromptConfig{PollIntervalMS: 20},
		Log:      LogConfig{Path: "time.log"},
	}
}

// LoadConfig reads the TOML file at path on top of DefaultConfig.
func LoadConfig(path string, lg *slog.Logger) (*Config, error) {
	config := DefaultConfig()

	md, err := DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("can't decode config %s: %w", path, err)
	}

	for _, key := range md.Undecoded() {
		lg.Warn("unknown config key", "path", path, "key", key.String())
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	lg.Debug("config loaded",
		"path", path,
		"key", config.Key,
		"window", config.Window.String(),
		"interval_min", config.Interval.MinMinutes,
		"interval_max", config.Interval.MaxMinutes,
		"log", config.Log.Path)

	return config, nil
}

// Validate reports every problem with c at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Key == "" {
		errs = append(errs, errors.New("key must not be empty"))
	}
	if c.PasswordEnv == "" {
		errs = append(errs, errors.New("password_env must not be empty"))
	}
	if c.Interval.MinMinutes < 1 {
		errs = append(errs, fmt.Errorf("interval.min_minutes must be at least 1, got %d", c.Interval.MinMinutes))
	}
	if c.Interval.MaxMinutes < c.Interval.MinMinutes {
		errs = append(errs, fmt.Errorf("interval.max_minutes (%d) is less than interval.min_minutes (%d)", c.Interval.MaxMinutes, c.Interval.MinMinutes))
	}
	if c.Prompt.PollIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("prompt.poll_interval_ms must be positive, got %d", c.Prompt.PollIntervalMS))
	}
	if c.Log.Path == "" {
		errs = append(errs, errors.New("log.path must not be empty"))
	}

	return errors.Join(errs...)
}

func DecodeFile(path string, v any) (toml.MetaData, error) {
	fp, err := Open(path)
	if err != nil {
		return toml.MetaData{}, err
	}
	defer fp.Close()
	return toml.NewDecoder(fp).Decode(v)
}
