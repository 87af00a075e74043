// Package check handles the column resolution check command
package check

import (
	"errors"
	"os"

	"gsd/a2z-flashing/cmd/root"
	"gsd/a2z-flashing/internal/loader"
	"gsd/a2z-flashing/internal/logging"
	"gsd/a2z-flashing/internal/models"
	"gsd/a2z-flashing/internal/processerror"
	"gsd/a2z-flashing/internal/processor"

	"github.com/spf13/cobra"
)

// Cmd represents the check command
var Cmd = &cobra.Command{
	Use:   "check",
	Short: "Check that an export resolves all required columns",
	Long: `Load a CSV or Excel export and resolve the five required columns
without producing output. Reports the resolved header for each column, or
the full list of missing columns.`,
	Run: checkFunc,
}

func checkFunc(cmd *cobra.Command, args []string) {
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

	table, err := loader.Load(file, root.SharedFlags.Input, logger)
	if err != nil {
		logger.Fatalf("Error loading file: %v", err)
	}

	columns, err := processor.ResolveColumns(table)
	if err != nil {
		var missing *processerror.MissingColumnsError
		if errors.As(err, &missing) {
			logger.Error("Required columns missing",
				logging.Field{Key: "missing", Value: missing.Columns})
			os.Exit(1)
		}
		logger.Fatalf("Error resolving columns: %v", err)
	}

	for _, key := range models.RequiredColumns {
		logger.Info("Resolved column",
			logging.Field{Key: "column", Value: key},
			logging.Field{Key: "header", Value: table.Headers[columns[key]]})
	}
	logger.Info("All required columns resolved",
		logging.Field{Key: "rows", Value: table.RowCount()})
}
