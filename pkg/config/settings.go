package config

import (
	"fmt"
	"strings"
)

// Output formats accepted by the inspect command.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Settings is the configuration of the comconfig command itself. It never
// influences how a descriptor is interpreted.
type Settings struct {
	// Log configures the zap logger
	Log     LogSettings     `yaml:"log" json:"log"`
	// Output controls how inspect renders a loaded configuration
	Output  OutputSettings  `yaml:"output" json:"output"`
	// Tracing exports the loader span when enabled
	Tracing TracingSettings `yaml:"tracing" json:"tracing"`
}

// LogSettings mirrors logger.Config.
type LogSettings struct {
	// Level is one of debug, info, warn, error
	Level       string `yaml:"level" json:"level"`
	// Encoding is json or console
	Encoding    string `yaml:"encoding" json:"encoding"`
	Development bool   `yaml:"development" json:"development"`
}

// OutputSettings contains inspect rendering options.
type OutputSettings struct {
	// Format is yaml or json
	Format string `yaml:"format" json:"format"`
}

// TracingSettings contains span export options.
type TracingSettings struct {
	Enabled      bool    `yaml:"enabled" json:"enabled"`
	// Exporter names the span exporter, only stdout is built in
	Exporter     string  `yaml:"exporter" json:"exporter"`
	// SamplingRate is the trace sampling ratio (0.0-1.0)
	SamplingRate float64 `yaml:"sampling_rate" json:"sampling_rate"`
}

// Defaults returns the settings used when no file is given.
func Defaults() *Settings {
	return &Settings{
		Log: LogSettings{
			Level:    "info",
			Encoding: "console",
		},
		Output: OutputSettings{
			Format: FormatYAML,
		},
		Tracing: TracingSettings{
			Enabled:      false,
			Exporter:     "stdout",
			SamplingRate: 1.0,
		},
	}
}

// Validate checks that every enumerated value is known.
func (s *Settings) Validate() error {
	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", s.Log.Level)
	}
	switch s.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("log.encoding %q is not one of json, console", s.Log.Encoding)
	}
	switch s.Output.Format {
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("output.format %q is not one of yaml, json", s.Output.Format)
	}
	if s.Tracing.SamplingRate < 0 || s.Tracing.SamplingRate > 1 {
		return fmt.Errorf("tracing.sampling_rate must be between 0 and 1")
	}
	return nil
}

// LoadSettings reads a settings file on top of Defaults and validates the
// result. Keys missing from the file keep their default.
func LoadSettings(path string) (*Settings, error) {
	s := Defaults()
	if err := Load(path, s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}
