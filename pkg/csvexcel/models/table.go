// Package models defines the in-memory table shared by the readers and writers.
package models

// Value is a single cell: nil (empty), int64, float64 or string.
type Value = interface{}

// Table is a rectangular grid of cells with optional row and column labels.
type Table struct {
	// Header holds the column labels, or nil when the source had none.
	Header []Value
	// Index holds one row label per row, or nil when the source had none.
	Index []Value
	// IndexName is the label of the index column itself (the corner cell).
	IndexName Value
	// Rows holds the data block in row-major order.
	Rows [][]Value
}

// Width returns the number of data columns.
func (t *Table) Width() int {
	width := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Normalize pads short rows, header and index with empty values so that
// every row has Width cells.
func (t *Table) Normalize() {
	width := t.Width()
	for i, row := range t.Rows {
		if len(row) < width {
			t.Rows[i] = append(row, make([]Value, width-len(row))...)
		}
	}
	if t.Header != nil && len(t.Header) < width {
		t.Header = append(t.Header, make([]Value, width-len(t.Header))...)
	}
	if t.Index != nil && len(t.Index) < len(t.Rows) {
		t.Index = append(t.Index, make([]Value, len(t.Rows)-len(t.Index))...)
	}
}

// Transpose returns a new table with rows and columns swapped.
// The header becomes the index and the index becomes the header.
func (t *Table) Transpose() *Table {
	width := t.Width()
	out := &Table{
		IndexName: t.IndexName,
		Rows:      make([][]Value, width),
	}
	if t.Header != nil {
		out.Index = append([]Value{}, t.Header...)
	}
	if t.Index != nil {
		out.Header = append([]Value{}, t.Index...)
	}

	for c := 0; c < width; c++ {
		row := make([]Value, len(t.Rows))
		for r, src := range t.Rows {
			if c < len(src) {
				row[r] = src[c]
			}
		}
		out.Rows[c] = row
	}

	if out.Index != nil && len(out.Index) < width {
		out.Index = append(out.Index, make([]Value, width-len(out.Index))...)
	}
	return out
}
