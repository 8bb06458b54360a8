package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config directory at an empty temp dir and clears
// overrides from the environment
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{
		"OUTCOME_ANIMATION_FPS",
		"OUTCOME_ANIMATION_REDUCED_MOTION",
		"OUTCOME_LAYOUT_CARD_WIDTH",
		"OUTCOME_LOG_LEVEL",
		"OUTCOME_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 60, cfg.Animation.FPS)
	assert.False(t, cfg.Animation.ReducedMotion)
	assert.Equal(t, 1.0, cfg.Animation.Speed)
	assert.Equal(t, 56, cfg.Layout.CardWidth)
	assert.Equal(t, 1200*time.Millisecond, cfg.Demo.Latency)
	assert.Empty(t, cfg.Demo.Scenarios)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	assert.NoError(t, Validate(cfg))
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_DefaultFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "outcome", "config.yaml"), `
animation:
  fps: 30
  reduced_motion: true
layout:
  card_width: 64
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Animation.FPS)
	assert.True(t, cfg.Animation.ReducedMotion)
	assert.Equal(t, 64, cfg.Layout.CardWidth)
	assert.Equal(t, 1.0, cfg.Animation.Speed, "unset keys keep their defaults")
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
demo:
  latency: 250ms
  scenarios: ./scenarios.yaml
logging:
  level: WARNING
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Demo.Latency)
	assert.Equal(t, "./scenarios.yaml", cfg.Demo.Scenarios)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "animation: [1, 2\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("OUTCOME_ANIMATION_FPS", "120")
	t.Setenv("OUTCOME_LAYOUT_CARD_WIDTH", "80")
	t.Setenv("OUTCOME_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Animation.FPS)
	assert.Equal(t, 80, cfg.Layout.CardWidth)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_ValidationFailure(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	writeFile(t, path, "layout:\n  card_width: 10\n")

	_, err := Load(path)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "layout.card_width", ve.Field)
	assert.Equal(t, "min", ve.Tag)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"fps too low", func(c *Config) { c.Animation.FPS = 0 }, "animation.fps"},
		{"fps too high", func(c *Config) { c.Animation.FPS = 500 }, "animation.fps"},
		{"speed too low", func(c *Config) { c.Animation.Speed = 0.01 }, "animation.speed"},
		{"card too wide", func(c *Config) { c.Layout.CardWidth = 200 }, "layout.card_width"},
		{"negative latency", func(c *Config) { c.Demo.Latency = -time.Second }, "demo.latency"},
		{"scenarios not yaml", func(c *Config) { c.Demo.Scenarios = "scenarios.json" }, "demo.scenarios"},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration is nil")
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "outcome"), dir)
}

func TestConfig_Motion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animation.ReducedMotion = true
	cfg.Animation.Speed = 2

	opts := cfg.Motion()
	assert.Equal(t, 60, opts.FPS)
	assert.Equal(t, 2.0, opts.Speed)
	assert.True(t, opts.ReducedMotion)
}

func TestConfig_LogConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.File = "/tmp/outcome.log"

	lc := cfg.LogConfig()
	assert.Equal(t, "info", lc.Level)
	assert.Equal(t, "console", lc.Format)
	assert.Equal(t, "/tmp/outcome.log", lc.File)
	assert.NotEmpty(t, lc.TimeFormat)
}

func TestSnake(t *testing.T) {
	assert.Equal(t, "card_width", snake("CardWidth"))
	assert.Equal(t, "fps", snake("FPS"))
	assert.Equal(t, "reduced_motion", snake("ReducedMotion"))
}
