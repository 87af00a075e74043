// Package processor implements the A2Z Flashing transformation: resolve
// the five required columns, normalize each field, drop incomplete rows
// and assemble the fixed five-column output.
package processor

import (
	"io"
	"strings"

	"gsd/a2z-flashing/internal/currencyutils"
	"gsd/a2z-flashing/internal/dateutils"
	"gsd/a2z-flashing/internal/loader"
	"gsd/a2z-flashing/internal/logging"
	"gsd/a2z-flashing/internal/models"
	"gsd/a2z-flashing/internal/processerror"
)

// columnAliases maps normalized header text to the semantic column key.
var columnAliases = map[string]string{
	"customer":       models.ColumnCustomer,
	"order nbr.":     models.ColumnOrderNumber,
	"reference nbr.": models.ColumnReference,
	"date":           models.ColumnDate,
	"amount":         models.ColumnAmount,
}

// ResolveColumns scans the table headers (lowercased and trimmed) for the
// five required column aliases. The first header matching an alias wins;
// later duplicates are ignored. When any key stays unresolved it returns
// MissingColumnsError naming every missing key at once.
func ResolveColumns(table *models.RawTable) (models.ColumnMap, error) {
	columns := make(models.ColumnMap, len(models.RequiredColumns))
	for i, header := range table.Headers {
		key, ok := columnAliases[strings.ToLower(strings.TrimSpace(header))]
		if !ok {
			continue
		}
		if _, assigned := columns[key]; assigned {
			continue
		}
		columns[key] = i
	}

	var missing []string
	for _, key := range models.RequiredColumns {
		if _, ok := columns[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &processerror.MissingColumnsError{Columns: missing}
	}
	return columns, nil
}

// DocumentNumber synthesizes the output document number from the order
// and reference cells. The O_ prefix and separator make the result
// non-empty even when both inputs are empty ("O__").
func DocumentNumber(orderNumber, reference string) string {
	return "O_" + orderNumber + "_" + reference
}

// TransactionType classifies an already-normalized balance: INV for
// non-negative or unparsable balances, CRD for strictly negative ones.
func TransactionType(balance string) string {
	if currencyutils.IsNegative(balance) {
		return models.TransactionTypeCredit
	}
	return models.TransactionTypeInvoice
}

// ProcessTable runs the column resolver, field transformers, row filter
// and assembler over a loaded table. Field transformers never fail a
// row; only unresolvable columns abort processing.
func ProcessTable(table *models.RawTable, logger logging.Logger) ([]models.OutputRow, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	columns, err := ResolveColumns(table)
	if err != nil {
		return nil, err
	}

	output := make([]models.OutputRow, 0, table.RowCount())
	dropped := 0
	for i := range table.Rows {
		row := models.OutputRow{
			DebtorReference: table.Cell(i, columns[models.ColumnCustomer]),
			DocumentNumber: DocumentNumber(
				table.Cell(i, columns[models.ColumnOrderNumber]),
				table.Cell(i, columns[models.ColumnReference]),
			),
			DocumentDate:    dateutils.NormalizeDate(table.Cell(i, columns[models.ColumnDate])),
			DocumentBalance: currencyutils.NormalizeBalance(table.Cell(i, columns[models.ColumnAmount])),
		}
		row.TransactionType = TransactionType(row.DocumentBalance)

		if !keepRow(row) {
			dropped++
			continue
		}
		output = append(output, row)
	}

	logger.Info("Processed table",
		logging.Field{Key: "rows_in", Value: table.RowCount()},
		logging.Field{Key: "rows_out", Value: len(output)},
		logging.Field{Key: "rows_dropped", Value: dropped})
	return output, nil
}

// keepRow requires a non-empty debtor reference and document number after
// trimming. The document number check is unreachable given the O_ prefix
// but is kept so the filter states the full row contract.
func keepRow(row models.OutputRow) bool {
	return strings.TrimSpace(row.DebtorReference) != "" &&
		strings.TrimSpace(row.DocumentNumber) != ""
}

// ProcessFile is the single-stage pipeline entry point: load raw content
// by filename extension, then transform it into output rows.
func ProcessFile(r io.Reader, filename string, logger logging.Logger) ([]models.OutputRow, error) {
	table, err := loader.Load(r, filename, logger)
	if err != nil {
		return nil, err
	}
	return ProcessTable(table, logger)
}
