// Package loader parses uploaded file content into a RawTable. The
// parser is selected from the filename extension only; content is never
// sniffed.
package loader

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"gsd/a2z-flashing/internal/logging"
	"gsd/a2z-flashing/internal/models"
	"gsd/a2z-flashing/internal/processerror"

	"github.com/xuri/excelize/v2"
)

// Load reads raw file content into a RawTable, choosing the parser from
// the filename extension (case-insensitive). Returns
// UnsupportedFormatError for unknown extensions and EmptyInputError when
// the parsed table has no data rows.
func Load(r io.Reader, filename string, logger logging.Logger) (*models.RawTable, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	logger.Debug("Loading input file",
		logging.Field{Key: "file", Value: filename},
		logging.Field{Key: "extension", Value: ext})

	var (
		table *models.RawTable
		err   error
	)
	switch ext {
	case ".csv":
		table, err = loadCSV(r, filename, logger)
	case ".xls", ".xlsx":
		table, err = loadExcel(r, filename)
	default:
		return nil, &processerror.UnsupportedFormatError{Filename: filename, Extension: ext}
	}
	if err != nil {
		return nil, err
	}

	if table.RowCount() == 0 {
		return nil, &processerror.EmptyInputError{Filename: filename}
	}

	logger.Info("Loaded input file",
		logging.Field{Key: "file", Value: filename},
		logging.Field{Key: "rows", Value: table.RowCount()},
		logging.Field{Key: "columns", Value: len(table.Headers)})
	return table, nil
}

func loadCSV(r io.Reader, filename string, logger logging.Logger) (*models.RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &processerror.EmptyInputError{Filename: filename}
		}
		return nil, &processerror.ParseError{Filename: filename, Err: err}
	}

	table := &models.RawTable{Headers: header}
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			logger.WithError(err).Warn("Skipping malformed CSV row",
				logging.Field{Key: "file", Value: filename})
			continue
		}
		table.Rows = append(table.Rows, padRecord(record, len(header)))
	}
	return table, nil
}

func loadExcel(r io.Reader, filename string) (*models.RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &processerror.ParseError{Filename: filename, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &processerror.EmptyInputError{Filename: filename}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &processerror.ParseError{Filename: filename, Err: err}
	}
	if len(rows) == 0 {
		return nil, &processerror.EmptyInputError{Filename: filename}
	}

	table := &models.RawTable{Headers: rows[0]}
	for _, record := range rows[1:] {
		table.Rows = append(table.Rows, padRecord(record, len(table.Headers)))
	}
	return table, nil
}

// padRecord pads short records with empty strings and truncates long ones
// so every row matches the header length.
func padRecord(record []string, width int) []string {
	if len(record) == width {
		return record
	}
	if len(record) > width {
		return record[:width]
	}
	padded := make([]string, width)
	copy(padded, record)
	return padded
}
