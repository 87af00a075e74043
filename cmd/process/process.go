// Package process handles the file conversion command
package process

import (
	"os"

	"gsd/a2z-flashing/cmd/root"
	"gsd/a2z-flashing/internal/export"
	"gsd/a2z-flashing/internal/processor"

	"github.com/spf13/cobra"
)

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Convert a CSV or Excel export to the A2Z Flashing format",
	Long: `Convert a CSV or Excel financial export into the five-column
A2Z Flashing CSV. Writes to the output file when -o is given, otherwise
to standard output.`,
	Run: processFunc,
}

func processFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	if root.SharedFlags.Input == "" {
		logger.Fatal("No input file provided, use --input")
	}

	file, err := os.Open(root.SharedFlags.Input)
	if err != nil {
		logger.Fatalf("Error opening input file: %v", err)
	}
	defer func() {
		_ = file.Close()
	}()

	rows, err := processor.ProcessFile(file, root.SharedFlags.Input, logger)
	if err != nil {
		logger.Fatalf("Error processing file: %v", err)
	}

	delimiter := root.Cfg.DelimiterRune()
	if root.SharedFlags.Output == "" {
		if err := export.WriteCSV(rows, os.Stdout, delimiter); err != nil {
			logger.Fatalf("Error writing CSV: %v", err)
		}
		return
	}
	if err := export.SaveCSV(rows, root.SharedFlags.Output, delimiter, logger); err != nil {
		logger.Fatalf("Error writing CSV: %v", err)
	}
	root.Log.Info("A2Z Flashing conversion completed successfully!")
}
