// Package dateutils normalizes transaction dates into the DD/MM/YYYY
// output convention.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// OutputLayout is the date layout used in the output file.
const OutputLayout = "02/01/2006"

// ExplicitFormats is the ordered list of layouts tried first when parsing
// a date cell. Day-first layouts precede month-first ones, so ambiguous
// numeric dates such as 01/02/2023 resolve day-first.
var ExplicitFormats = []string{
	"02/01/2006",          // DD/MM/YYYY
	"2006-01-02",          // YYYY-MM-DD
	"02-01-2006",          // DD-MM-YYYY
	"01/02/2006",          // MM/DD/YYYY
	"2006/01/02",          // YYYY/MM/DD
	"02-Jan-2006",         // DD-Mon-YYYY
	"02 Jan 2006",         // DD Mon YYYY
	"2006-01-02 15:04:05", // YYYY-MM-DD with time
	"02/01/2006 15:04:05", // DD/MM/YYYY with time
}

// fallbackFormats is the lenient second pass for values the explicit
// layouts reject, mostly non-zero-padded variants. Day-first layouts
// come first here too.
var fallbackFormats = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2/1/2006 15:04:05",
	"2006-1-2",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2 January 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanDateString trims a date string and collapses runs of whitespace.
func CleanDateString(dateStr string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDate attempts to parse a date string using the explicit layouts
// followed by the lenient fallback layouts.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range ExplicitFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}
	for _, format := range fallbackFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// NormalizeDate converts a raw date cell to DD/MM/YYYY. Empty cells
// yield an empty string. Unparsable values pass through unchanged so a
// single malformed cell never fails the file.
func NormalizeDate(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	t, err := ParseDate(raw)
	if err != nil {
		return raw
	}
	return t.Format(OutputLayout)
}
