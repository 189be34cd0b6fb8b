package config

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/tasksort/internal/adapters/input"
	"github.com/ZanzyTHEbar/tasksort/internal/adapters/output"
	"github.com/ZanzyTHEbar/tasksort/internal/domain"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadFromFile_Missing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"), zerolog.Nop())
	require.NoError(t, err)

	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFile_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasksort.json")
	doc := `{
		"logLevel": "debug",
		"output": {"format": "json", "showPriority": true},
		"watch": {"debounce": "1s"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := LoadFromFile(path, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, output.FormatJSON, cfg.Output.Format)
	assert.True(t, cfg.Output.ShowPriority)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	// Untouched fields keep their defaults.
	assert.Equal(t, input.DefaultSeparator, cfg.Input.Separator)
	assert.Equal(t, 10, cfg.Watch.BufferSize)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadFromFile(path, zerolog.Nop())
	assert.Error(t, err)
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasksort.json")
	want := DefaultConfig()
	want.Input.Format = input.FormatYAML
	want.Watch.Debounce = 2 * time.Second

	require.NoError(t, want.SaveToFile(path))
	got, err := LoadFromFile(path, zerolog.Nop())
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyEnv(map[string]string{
		"TASKSORT_LOG_LEVEL":            "warn",
		"TASKSORT_INPUT_SEPARATOR":      "=>",
		"TASKSORT_OUTPUT_FORMAT":        "dot",
		"TASKSORT_OUTPUT_SHOW_PRIORITY": "true",
		"TASKSORT_WATCH_DEBOUNCE":       "50ms",
		"SEPARATOR":                     "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "=>", cfg.Input.Separator)
	assert.Equal(t, input.FormatText, cfg.Input.Format)
	assert.Equal(t, output.FormatDOT, cfg.Output.Format)
	assert.True(t, cfg.Output.ShowPriority)
	assert.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce)
}

func TestApplyEnv_BadValue(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyEnv(map[string]string{"TASKSORT_WATCH_BUFFER_SIZE": "many"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"input format", func(c *Config) { c.Input.Format = "toml" }},
		{"separator", func(c *Config) { c.Input.Separator = "" }},
		{"output format", func(c *Config) { c.Output.Format = "xml" }},
		{"debounce", func(c *Config) { c.Watch.Debounce = -time.Second }},
		{"buffer size", func(c *Config) { c.Watch.BufferSize = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidArgument)
		})
	}
}

func TestValidate_CollectsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"
	cfg.Output.Format = "xml"
	cfg.Watch.BufferSize = 0

	err := cfg.Validate()
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Equal(t, errbuilder.CodeInvalidArgument, domain.CodeOf(err))

	var eb *errbuilder.ErrBuilder
	require.ErrorAs(t, err, &eb)
	assert.Equal(t, "invalid configuration", eb.Msg)

	want := []string{"logLevel", "output.format", "watch.bufferSize"}
	if diff := cmp.Diff(want, slices.Sorted(maps.Keys(eb.Details.Errors))); diff != "" {
		t.Errorf("invalid fields mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, `unknown format "xml"`, eb.Details.Errors.Get("output.format"))
}
