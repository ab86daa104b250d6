package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sdejongh/foldercompare/pkg/engine"
	"github.com/sdejongh/foldercompare/pkg/output"
)

// CompareFlags holds compare command flags
type CompareFlags struct {
	Left      string
	Right     string
	OutputDir string
	Name      string
	Text      bool
	CSV       bool
	JSON      bool
	Ignore    []string
	NoColor   bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var compareFlags CompareFlags

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two folders and write a report",
		Long: `Compare the folders (or zip archives) given by --left and --right and write
<output-dir>/<name>.txt, .csv and/or .json. Existing reports are overwritten.
When no format flag is given the formats enabled in the config file are used.`,
		Args: cobra.NoArgs,
		RunE: runCompare,
	}

	cmd.Flags().StringVarP(&compareFlags.Left, "left", "l", "", "first folder or zip archive (required)")
	cmd.Flags().StringVarP(&compareFlags.Right, "right", "r", "", "second folder or zip archive (required)")
	cmd.MarkFlagRequired("left")
	cmd.MarkFlagRequired("right")

	cmd.Flags().StringVarP(&compareFlags.OutputDir, "output-dir", "o", ".", "existing directory receiving the reports")
	cmd.Flags().StringVarP(&compareFlags.Name, "name", "n", "", "report name, without extension (required)")
	cmd.MarkFlagRequired("name")

	cmd.Flags().BoolVar(&compareFlags.Text, "txt", false, "write a plain-text report")
	cmd.Flags().BoolVar(&compareFlags.CSV, "csv", false, "write a CSV report")
	cmd.Flags().BoolVar(&compareFlags.JSON, "json", false, "write a JSON report")
	cmd.Flags().StringSliceVar(&compareFlags.Ignore, "ignore", nil, "names or glob patterns skipped on both sides (replaces the configured list)")
	cmd.Flags().BoolVar(&compareFlags.NoColor, "no-color", false, "disable coloured output")

	// Logging flags
	cmd.Flags().StringVar(&compareFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&compareFlags.LogFormat, "log-format", "", "log format: text, json")
	cmd.Flags().StringVar(&compareFlags.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyFlagsToConfig(cmd, cfg)

	if err := validateCompareFlags(cfg); err != nil {
		return err
	}

	operation, err := createOperation(cfg)
	if err != nil {
		return err
	}

	logger, err := createLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	opts := []engine.Option{engine.WithLogger(logger)}
	var bar *output.ProgressBar
	if cfg.Output.Progress && !cfg.Output.Quiet && output.IsTerminal(os.Stderr) {
		bar = output.NewProgressBar(os.Stderr)
		opts = append(opts, engine.WithProgress(bar))
	}

	summary, err := engine.New(opts...).Run(ctx, operation)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("folder comparison failed: %w", err)
	}

	if cfg.Output.Quiet {
		return nil
	}

	out := cmd.OutOrStdout()
	success := color.New(color.FgGreen, color.Bold)
	if !cfg.Output.Color {
		success.DisableColor()
	}
	success.Fprintln(out, "Folder comparison complete")

	if globalFlags.Verbose {
		output.PrintSummary(out, summary)
		return nil
	}
	for _, path := range summary.Outputs {
		fmt.Fprintf(out, "  %s\n", path)
	}

	return nil
}
