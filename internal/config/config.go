package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type TimelineConfig struct {
	DefaultZoom string  `mapstructure:"default_zoom"` // "year", "month", "week", "day"
	TrackHeight float64 `mapstructure:"track_height"` // vertical pitch in pixels
}

type ReminderConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Time     string `mapstructure:"time"`     // "20:00"
	Timezone string `mapstructure:"timezone"` // e.g. "Europe/Stockholm" (optional)
}

type Config struct {
	Theme    string         `mapstructure:"theme"`
	Timeline TimelineConfig `mapstructure:"timeline"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

func Default() Config {
	return Config{
		Theme: "default",
		Timeline: TimelineConfig{
			DefaultZoom: "month",
			TrackHeight: 30,
		},
		Reminder: ReminderConfig{
			Enabled:  false,
			Time:     "20:00",
			Timezone: "",
		},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "lifeline")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (Config, error) {
	cfg := Default()

	path, err := xdgConfigPath()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	// defaults
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("timeline.default_zoom", cfg.Timeline.DefaultZoom)
	v.SetDefault("timeline.track_height", cfg.Timeline.TrackHeight)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.timezone", cfg.Reminder.Timezone)

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	if cfg.Timeline.TrackHeight <= 0 {
		cfg.Timeline.TrackHeight = Default().Timeline.TrackHeight
	}
	return cfg, nil
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Reminder.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
