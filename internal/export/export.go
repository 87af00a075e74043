// Package export serializes output rows to the downloadable CSV file.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gsd/a2z-flashing/internal/logging"
	"gsd/a2z-flashing/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultFilename is the download name offered for the processed file.
const DefaultFilename = "a2z_flashing_processed.csv"

// ContentType is the MIME type of the exported file.
const ContentType = "text/csv"

// WriteCSV writes the output rows as UTF-8, delimiter-separated text with
// a header row and no index column. A nil or empty slice still produces
// the header row.
func WriteCSV(rows []models.OutputRow, w io.Writer, delimiter rune) error {
	if rows == nil {
		rows = []models.OutputRow{}
	}
	csvWriter := csv.NewWriter(w)
	if delimiter != 0 {
		csvWriter.Comma = delimiter
	}
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// SaveCSV writes the output rows to a file, creating parent directories
// as needed.
func SaveCSV(rows []models.OutputRow, path string, delimiter rune, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteCSV(rows, file, delimiter); err != nil {
		return err
	}

	logger.Info("Wrote processed CSV file",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: len(rows)})
	return nil
}
