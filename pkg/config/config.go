package config

import (
	"github.com/sdejongh/foldercompare/pkg/compare"
	"github.com/sdejongh/foldercompare/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Compare CompareConfig `yaml:"compare"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds report and console settings
type OutputConfig struct {
	Text     bool `yaml:"text"`     // Write <name>.txt
	CSV      bool `yaml:"csv"`      // Write <name>.csv
	JSON     bool `yaml:"json"`     // Write <name>.json
	Progress bool `yaml:"progress"` // Show the directory counter on a terminal
	Quiet    bool `yaml:"quiet"`    // Suppress non-error output
	Color    bool `yaml:"color"`    // Colour the completion notice
}

// CompareConfig holds tree walk settings
type CompareConfig struct {
	Ignore []string `yaml:"ignore"`
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Format     string `yaml:"format"`      // "json" or "text"
	Level      string `yaml:"level"`       // "debug", "info", "warn", "error"
	File       string `yaml:"file"`        // Log file path (empty = stderr)
	MaxSize    int64  `yaml:"max_size"`    // Rotate after this many bytes (0 = never)
	MaxBackups int    `yaml:"max_backups"` // Rotated files kept
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Text:     true,
			CSV:      true,
			JSON:     false,
			Progress: true,
			Quiet:    false,
			Color:    true,
		},
		Compare: CompareConfig{
			Ignore: append([]string{}, compare.DefaultIgnore...),
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Format:     "text",
			Level:      "info",
			File:       "",
			MaxSize:    10 * 1024 * 1024,
			MaxBackups: 3,
		},
	}
}

// Formats returns the report formats enabled in the output section
func (c *Config) Formats() []models.OutputFormat {
	var formats []models.OutputFormat
	if c.Output.Text {
		formats = append(formats, models.FormatText)
	}
	if c.Output.CSV {
		formats = append(formats, models.FormatCSV)
	}
	if c.Output.JSON {
		formats = append(formats, models.FormatJSON)
	}
	return formats
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Formats()) == 0 {
		return &models.ValidationError{
			Field:   "output",
			Message: "at least one of text, csv or json must be enabled",
		}
	}

	for _, pattern := range c.Compare.Ignore {
		if pattern == "" {
			return &models.ValidationError{
				Field:   "compare.ignore",
				Message: "patterns must not be empty",
			}
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	if c.Logging.MaxSize < 0 || c.Logging.MaxBackups < 0 {
		return &models.ValidationError{
			Field:   "logging.max_size",
			Message: "rotation limits must not be negative",
		}
	}

	return nil
}
