// Package processerror defines the error types reported by the
// processing pipeline. All of them halt only the current file.
package processerror

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError indicates the uploaded filename has an extension
// the loader does not recognize.
type UnsupportedFormatError struct {
	Filename  string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format '%s' for file '%s': please upload a CSV or Excel file",
		e.Extension, e.Filename)
}

// EmptyInputError indicates the parsed table contains no data rows.
type EmptyInputError struct {
	Filename string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("the uploaded file '%s' is empty", e.Filename)
}

// MissingColumnsError lists every required column that could not be
// resolved from the input headers, not just the first one.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("could not find the following required columns: [%s]",
		strings.Join(e.Columns, ", "))
}

// ParseError reports a failure while reading the raw input into a table.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse '%s': %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
