package table

import "fmt"

// Table represents a set of simple tabular data. Tables have a list
// of header cells and a list of rows. Each row must be the same
// length as the list of header cells; AddRow enforces this. Rows are
// rendered in the order they were added. Construct a table with the
// New or FromStructs functions, and then use the AddRow, Render, and
// Print methods.
type Table struct {
	headers []string
	rows    [][]string
}

// Layout constants shared by every rendered table.
const (
	// MinColumnWidth is the narrowest a column's content area gets.
	MinColumnWidth = 16

	// ColumnGutter is added to the widest cell to get the column width.
	ColumnGutter = 4

	// ColumnDivider separates columns and closes each line.
	ColumnDivider = " | "

	// RowSpacer is repeated to draw horizontal rules.
	RowSpacer = "-"
)

// ArityError is returned by AddRow when a row does not have one cell
// per header.
type ArityError struct {
	Got  int
	Want int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf(
		"wrong number of columns in table row (%d != %d)",
		e.Got, e.Want,
	)
}
