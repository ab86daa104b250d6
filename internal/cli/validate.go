package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sdejongh/foldercompare/internal/platform"
	"github.com/sdejongh/foldercompare/pkg/config"
	"github.com/sdejongh/foldercompare/pkg/logging"
	"github.com/sdejongh/foldercompare/pkg/models"
)

// validateCompareFlags checks the compare request before anything is read or written
func validateCompareFlags(cfg *config.Config) error {
	for _, input := range []struct{ label, path string }{
		{"first folder", compareFlags.Left},
		{"second folder", compareFlags.Right},
	} {
		if err := platform.ValidatePath(input.path); err != nil {
			return fmt.Errorf("%s: %w", input.label, err)
		}
		if _, err := os.Stat(input.path); os.IsNotExist(err) {
			return fmt.Errorf("%s does not exist: %s", input.label, input.path)
		} else if err != nil {
			return fmt.Errorf("failed to access %s: %w", input.label, err)
		}
	}

	info, err := os.Stat(compareFlags.OutputDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("output directory does not exist: %s", compareFlags.OutputDir)
	} else if err != nil {
		return fmt.Errorf("failed to access output directory: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("output path is not a directory: %s", compareFlags.OutputDir)
	}

	if platform.ReportName(compareFlags.Name) == "" {
		return fmt.Errorf("report name is empty: %q", compareFlags.Name)
	}

	if len(cfg.Formats()) == 0 {
		return fmt.Errorf("select at least one output format (--txt, --csv or --json)")
	}

	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	return config.Load(globalFlags.ConfigFile)
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	// Explicit format flags replace the configured set
	if flags.Changed("txt") || flags.Changed("csv") || flags.Changed("json") {
		cfg.Output.Text = compareFlags.Text
		cfg.Output.CSV = compareFlags.CSV
		cfg.Output.JSON = compareFlags.JSON
	}

	if flags.Changed("ignore") {
		cfg.Compare.Ignore = compareFlags.Ignore
	}

	if compareFlags.NoColor {
		cfg.Output.Color = false
		color.NoColor = true
	}

	if compareFlags.LogFile != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.File = compareFlags.LogFile
	}
	if compareFlags.LogFormat != "" {
		cfg.Logging.Format = compareFlags.LogFormat
	}
	if compareFlags.LogLevel != "" {
		cfg.Logging.Level = compareFlags.LogLevel
	}

	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	if globalFlags.Verbose && compareFlags.LogLevel == "" {
		cfg.Logging.Level = "debug"
	}
}

// createOperation builds the engine request from the resolved configuration
func createOperation(cfg *config.Config) (*models.Operation, error) {
	base, err := platform.ReportBase(compareFlags.OutputDir, compareFlags.Name)
	if err != nil {
		return nil, err
	}

	operation := &models.Operation{
		ID:         uuid.New().String(),
		Folder1:    platform.NormalizePath(compareFlags.Left),
		Folder2:    platform.NormalizePath(compareFlags.Right),
		OutputBase: base,
		Formats:    cfg.Formats(),
		Ignore:     append([]string{}, cfg.Compare.Ignore...),
		CreatedAt:  time.Now(),
	}

	if err := operation.Validate(); err != nil {
		return nil, err
	}

	return operation, nil
}

// createLogger returns a null logger unless logging is enabled in config or by --log-file
func createLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NewNullLogger(), nil
	}

	logger, err := logging.New(logging.Config{
		Path:       cfg.Logging.File,
		Format:     logging.ParseFormat(cfg.Logging.Format),
		Level:      logging.ParseLevel(cfg.Logging.Level),
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return nil, err
	}
	return logger, nil
}
