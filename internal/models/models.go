// Package models defines the data structures shared by the loader,
// processor and export layers.
package models

// Transaction type flags written to the output file. INV covers every
// non-negative balance, CRD only strictly negative ones.
const (
	TransactionTypeInvoice = "INV"
	TransactionTypeCredit  = "CRD"
)

// Semantic keys for the five required input columns.
const (
	ColumnCustomer    = "customer"
	ColumnOrderNumber = "order_number"
	ColumnReference   = "reference"
	ColumnDate        = "date"
	ColumnAmount      = "amount"
)

// RequiredColumns lists the semantic keys in reporting order.
var RequiredColumns = []string{
	ColumnCustomer,
	ColumnOrderNumber,
	ColumnReference,
	ColumnDate,
	ColumnAmount,
}

// RawTable holds one parsed input file: the header row and the data rows
// below it. Rows are padded to header length by the loader, so indexing a
// row by a resolved column index is always safe. The table is never
// mutated after loading.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// RowCount returns the number of data rows.
func (t *RawTable) RowCount() int {
	return len(t.Rows)
}

// Cell returns the value at the given row and column index.
func (t *RawTable) Cell(row, col int) string {
	return t.Rows[row][col]
}

// ColumnMap maps a semantic key to the index of the header that resolved
// to it. A key is absent when no header matched its alias.
type ColumnMap map[string]int

// OutputRow is one normalized transaction in A2Z Flashing layout. Field
// order matches the fixed output column order.
type OutputRow struct {
	DebtorReference string `csv:"Debtor Reference"`
	TransactionType string `csv:"Transaction Type"`
	DocumentNumber  string `csv:"Document Number"`
	DocumentDate    string `csv:"Document Date"`
	DocumentBalance string `csv:"Document Balance"`
}

// OutputColumns is the fixed header row of the output file.
var OutputColumns = []string{
	"Debtor Reference",
	"Transaction Type",
	"Document Number",
	"Document Date",
	"Document Balance",
}
