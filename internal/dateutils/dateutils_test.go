package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		expectOk  bool
		expectedY int
		expectedM time.Month
		expectedD int
	}{
		{"Slash day-first", "15/01/2023", true, 2023, time.January, 15},
		{"ISO", "2023-01-15", true, 2023, time.January, 15},
		{"Dash day-first", "15-01-2023", true, 2023, time.January, 15},
		{"US only when day-first impossible", "01/13/2023", true, 2023, time.January, 13},
		{"Slash ISO order", "2023/01/15", true, 2023, time.January, 15},
		{"Dash month name", "15-Jan-2023", true, 2023, time.January, 15},
		{"Space month name", "15 Jan 2023", true, 2023, time.January, 15},
		{"ISO with time", "2023-01-15 10:30:45", true, 2023, time.January, 15},
		{"Day-first with time", "15/01/2023 10:30:45", true, 2023, time.January, 15},
		{"Ambiguous resolves day-first", "01/02/2023", true, 2023, time.February, 1},
		{"Non-padded falls back day-first", "1/2/2023", true, 2023, time.February, 1},
		{"Dotted day-first", "1.2.2023", true, 2023, time.February, 1},
		{"RFC3339", "2023-01-15T10:30:45Z", true, 2023, time.January, 15},
		{"Whitespace collapsed", " 15  Jan 2023 ", true, 2023, time.January, 15},
		{"Empty", "", false, 0, 0, 0},
		{"Garbage", "not a date", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseDate(tc.dateStr)
			if !tc.expectOk {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedY, date.Year())
			assert.Equal(t, tc.expectedM, date.Month())
			assert.Equal(t, tc.expectedD, date.Day())
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"Already normalized", "01/02/2023", "01/02/2023"},
		{"ISO to output layout", "2023-02-01", "01/02/2023"},
		{"Zero padding applied", "1/2/2023", "01/02/2023"},
		{"Month-first when unambiguous", "01/13/2023", "13/01/2023"},
		{"Timestamp truncated", "2023-12-31 23:59:59", "31/12/2023"},
		{"Month name", "5 Mar 2024", "05/03/2024"},
		{"Empty cell", "", ""},
		{"Whitespace-only cell", "   ", ""},
		{"Unparsable passes through", "Q1-2023", "Q1-2023"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeDate(tc.raw))
		})
	}
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "15 Jan 2023", CleanDateString("  15   Jan\t2023 "))
	assert.Equal(t, "", CleanDateString("   "))
}
