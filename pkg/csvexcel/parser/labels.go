package parser

import "github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"

// ReadOptions carries the formatting hints for reading a table.
type ReadOptions struct {
	// Delimiter separates fields in delimited text.
	Delimiter rune
	// Encoding names the character set of delimited text.
	Encoding string
	// HasHeader sets the first row aside as column labels.
	HasHeader bool
	// IncludeIndex sets the first column aside as row labels.
	IncludeIndex bool
	// Sheet selects the worksheet to read.
	Sheet models.SheetSelector
}

// splitLabels builds a table from raw records, separating the header row
// and the index column when requested. Header labels stay text; data
// cells and index labels go through ParseValue.
func splitLabels(records [][]string, hasHeader, includeIndex bool) *models.Table {
	t := &models.Table{Rows: make([][]models.Value, 0, len(records))}
	if hasHeader && len(records) > 0 {
		t.Header = labelRow(records[0])
		records = records[1:]
	}

	if includeIndex {
		t.Index = make([]models.Value, len(records))
		if len(t.Header) > 0 {
			t.IndexName = t.Header[0]
			t.Header = t.Header[1:]
		}
	}

	for i, record := range records {
		if includeIndex && len(record) > 0 {
			t.Index[i] = ParseValue(record[0])
			record = record[1:]
		}
		t.Rows = append(t.Rows, ParseRow(record))
	}
	return t
}

func labelRow(fields []string) []models.Value {
	row := make([]models.Value, len(fields))
	for i, s := range fields {
		if s != "" {
			row[i] = s
		}
	}
	return row
}
