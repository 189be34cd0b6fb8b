package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/caarlos0/env/v11"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/tasksort/internal/adapters/input"
	"github.com/ZanzyTHEbar/tasksort/internal/adapters/output"
	"github.com/ZanzyTHEbar/tasksort/internal/domain"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "TASKSORT_"

// Config holds all configuration settings for tasksort.
type Config struct {
	LogLevel string       `json:"logLevel" env:"LOG_LEVEL"` // trace, debug, info, warn, error
	Input    InputConfig  `json:"input" envPrefix:"INPUT_"`
	Output   OutputConfig `json:"output" envPrefix:"OUTPUT_"`
	Watch    WatchConfig  `json:"watch" envPrefix:"WATCH_"`
}

// InputConfig controls how pairs are read.
type InputConfig struct {
	Format      input.Format `json:"format" env:"FORMAT"`
	Separator   string       `json:"separator" env:"SEPARATOR"`
	HistoryFile string       `json:"historyFile" env:"HISTORY_FILE"` // Interactive mode only
}

// OutputConfig controls how the plan is written.
type OutputConfig struct {
	Format       output.Format `json:"format" env:"FORMAT"`
	ShowPriority bool          `json:"showPriority" env:"SHOW_PRIORITY"`
	Color        bool          `json:"color" env:"COLOR"`
}

// WatchConfig holds settings for watch mode.
type WatchConfig struct {
	Debounce   time.Duration `json:"debounce,format:units" env:"DEBOUNCE"` // e.g. "250ms"
	BufferSize int           `json:"bufferSize" env:"BUFFER_SIZE"`         // Event bus subscriber buffer
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Input: InputConfig{
			Format:    input.FormatText,
			Separator: input.DefaultSeparator,
		},
		Output: OutputConfig{
			Format: output.FormatText,
		},
		Watch: WatchConfig{
			Debounce:   250 * time.Millisecond,
			BufferSize: 10,
		},
	}
}

// LoadFromFile loads configuration from a JSON file on top of the defaults.
// A missing file is not an error.
func LoadFromFile(filePath string, logger zerolog.Logger) (*Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(filePath)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug().Str("path", filePath).Msg("config file not found, using defaults")
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()

	if err := json.UnmarshalRead(f, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", filePath, err)
	}

	logger.Debug().Str("path", filePath).Msg("loaded configuration")
	return cfg, nil
}

// ApplyEnv overrides fields from TASKSORT_* variables. A nil environ reads
// the process environment.
func (c *Config) ApplyEnv(environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}
	return nil
}

// SaveToFile writes the configuration as indented JSON.
func (c *Config) SaveToFile(filePath string) error {
	data, err := json.Marshal(c, json.Deterministic(true), jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	if err := os.WriteFile(filePath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// Validate checks every field and reports all problems at once. The error
// carries one errbuilder.ErrorMap entry per invalid field and matches
// domain.ErrInvalidArgument.
func (c *Config) Validate() error {
	var errs errbuilder.ErrorMap
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs.Set("logLevel", fmt.Sprintf("unknown level %q", c.LogLevel))
	}
	if !slices.Contains(input.Formats, c.Input.Format) {
		errs.Set("input.format", fmt.Sprintf("unknown format %q", c.Input.Format))
	}
	if c.Input.Separator == "" {
		errs.Set("input.separator", "cannot be empty")
	}
	if !slices.Contains(output.Formats, c.Output.Format) {
		errs.Set("output.format", fmt.Sprintf("unknown format %q", c.Output.Format))
	}
	if c.Watch.Debounce < 0 {
		errs.Set("watch.debounce", "cannot be negative")
	}
	if c.Watch.BufferSize < 1 {
		errs.Set("watch.bufferSize", "must be at least 1")
	}
	if errs == nil {
		return nil
	}

	err := errbuilder.ValidationErr(errs)
	var eb *errbuilder.ErrBuilder
	if errors.As(err, &eb) {
		eb.WithMsg("invalid configuration").WithCause(domain.ErrInvalidArgument)
	}
	return err
}
