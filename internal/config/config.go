// Package config loads the outcome configuration from defaults, an optional
// YAML file and OUTCOME_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/riordanpawley/outcome/internal/logging"
	"github.com/riordanpawley/outcome/internal/ui/motion"
)

// EnvPrefix namespaces environment overrides, e.g. OUTCOME_ANIMATION_FPS
const EnvPrefix = "OUTCOME"

// Config represents the full outcome configuration
type Config struct {
	Animation AnimationConfig `mapstructure:"animation"`
	Layout    LayoutConfig    `mapstructure:"layout"`
	Demo      DemoConfig      `mapstructure:"demo"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// AnimationConfig contains overlay animation settings
type AnimationConfig struct {
	FPS           int     `mapstructure:"fps" validate:"min=1,max=240"`
	ReducedMotion bool    `mapstructure:"reduced_motion"`
	Speed         float64 `mapstructure:"speed" validate:"gte=0.1,lte=10"`
}

// LayoutConfig contains overlay layout settings
type LayoutConfig struct {
	CardWidth int `mapstructure:"card_width" validate:"min=30,max=120"`
}

// DemoConfig contains settings for the interactive host
type DemoConfig struct {
	// Latency is how long the simulated action runs before its outcome shows
	Latency time.Duration `mapstructure:"latency" validate:"gte=0s,lte=1m"`
	// Scenarios is an optional YAML file replacing the built-in scenarios
	Scenarios string `mapstructure:"scenarios" validate:"omitempty,yaml_file"`
}

// LoggingConfig contains log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
	File   string `mapstructure:"file"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Animation: AnimationConfig{
			FPS:   60,
			Speed: 1,
		},
		Layout: LayoutConfig{
			CardWidth: 56,
		},
		Demo: DemoConfig{
			Latency: 1200 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration. An explicit path must exist; without one the
// default file is used when present.
func Load(path string) (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if dir, err := Dir(); err == nil {
		v.SetConfigName("config")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	normalize(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "OUTCOME_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OUTCOME_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "OUTCOME_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind OUTCOME_LOG_FORMAT: %w", err)
	}

	setDefaults(v, DefaultConfig())
	return v, nil
}

func setDefaults(v *viper.Viper, defaults *Config) {
	v.SetDefault("animation.fps", defaults.Animation.FPS)
	v.SetDefault("animation.reduced_motion", defaults.Animation.ReducedMotion)
	v.SetDefault("animation.speed", defaults.Animation.Speed)

	v.SetDefault("layout.card_width", defaults.Layout.CardWidth)

	v.SetDefault("demo.latency", defaults.Demo.Latency)
	v.SetDefault("demo.scenarios", defaults.Demo.Scenarios)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.file", defaults.Logging.File)
}

func normalize(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if cfg.Logging.Level == "warning" {
		cfg.Logging.Level = "warn"
	}
	cfg.Demo.Scenarios = expandHome(cfg.Demo.Scenarios)
	cfg.Logging.File = expandHome(cfg.Logging.File)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// Dir returns the configuration directory, honouring XDG_CONFIG_HOME
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "outcome"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "outcome"), nil
}

// Motion returns the animation options for the overlay
func (c *Config) Motion() motion.Options {
	return motion.Options{
		FPS:           c.Animation.FPS,
		Speed:         c.Animation.Speed,
		ReducedMotion: c.Animation.ReducedMotion,
	}
}

// LogConfig returns the logger settings
func (c *Config) LogConfig() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Logging.Level
	lc.Format = c.Logging.Format
	lc.File = c.Logging.File
	return lc
}
