package loader

import (
	"bytes"
	"strings"
	"testing"

	"gsd/a2z-flashing/internal/processerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadCSV(t *testing.T) {
	input := "Customer,Order Nbr.,Reference Nbr.,Date,Amount\n" +
		"Acme,100,R1,01/02/2023,\"$1,200.50\"\n" +
		"Beta,101,R2,02/02/2023,-50\n"

	table, err := Load(strings.NewReader(input), "export.csv", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Customer", "Order Nbr.", "Reference Nbr.", "Date", "Amount"}, table.Headers)
	assert.Equal(t, 2, table.RowCount())
	assert.Equal(t, "Acme", table.Cell(0, 0))
	assert.Equal(t, "$1,200.50", table.Cell(0, 4))
	assert.Equal(t, "-50", table.Cell(1, 4))
}

func TestLoadCSVPadsShortRows(t *testing.T) {
	input := "Customer,Order Nbr.,Reference Nbr.,Date,Amount\n" +
		"Acme,100\n"

	table, err := Load(strings.NewReader(input), "export.csv", nil)
	require.NoError(t, err)
	require.Equal(t, 1, table.RowCount())
	assert.Equal(t, []string{"Acme", "100", "", "", ""}, table.Rows[0])
}

func TestLoadExtensionCaseInsensitive(t *testing.T) {
	input := "Customer,Order Nbr.,Reference Nbr.,Date,Amount\nAcme,1,R1,,10\n"
	table, err := Load(strings.NewReader(input), "EXPORT.CSV", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, table.RowCount())
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load(strings.NewReader("anything"), "export.pdf", nil)
	var unsupported *processerror.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".pdf", unsupported.Extension)
	assert.Equal(t, "export.pdf", unsupported.Filename)
}

func TestLoadEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Header only", "Customer,Order Nbr.,Reference Nbr.,Date,Amount\n"},
		{"Completely empty", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.input), "export.csv", nil)
			var empty *processerror.EmptyInputError
			require.ErrorAs(t, err, &empty)
		})
	}
}

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestLoadExcel(t *testing.T) {
	r := buildWorkbook(t, [][]interface{}{
		{"Customer", "Order Nbr.", "Reference Nbr.", "Date", "Amount"},
		{"Acme", "100", "R1", "01/02/2023", "1200.50"},
	})

	table, err := Load(r, "export.xlsx", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Customer", "Order Nbr.", "Reference Nbr.", "Date", "Amount"}, table.Headers)
	require.Equal(t, 1, table.RowCount())
	assert.Equal(t, "Acme", table.Cell(0, 0))
	assert.Equal(t, "1200.50", table.Cell(0, 4))
}

func TestLoadExcelEmpty(t *testing.T) {
	r := buildWorkbook(t, [][]interface{}{
		{"Customer", "Order Nbr.", "Reference Nbr.", "Date", "Amount"},
	})

	_, err := Load(r, "export.xlsx", nil)
	var empty *processerror.EmptyInputError
	require.ErrorAs(t, err, &empty)
}

func TestLoadExcelGarbage(t *testing.T) {
	_, err := Load(strings.NewReader("this is not a workbook"), "export.xlsx", nil)
	var parse *processerror.ParseError
	require.ErrorAs(t, err, &parse)
}
