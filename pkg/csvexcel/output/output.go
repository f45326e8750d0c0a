// Package output writes tables as delimited text or workbook sheets.
package output

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"
)

// WriteOptions carries the formatting hints for writing a table.
type WriteOptions struct {
	// Delimiter separates fields in delimited text.
	Delimiter rune
	// Encoding names the character set of delimited text.
	Encoding string
	// HasHeader emits the header row first.
	HasHeader bool
	// IncludeIndex emits the index value as the first field of every row.
	IncludeIndex bool
}

// layout lays the table out as the grid to emit, re-attaching the header
// row and index column according to opts.
func layout(t *models.Table, opts WriteOptions) [][]models.Value {
	withIndex := opts.IncludeIndex && t.Index != nil
	grid := make([][]models.Value, 0, len(t.Rows)+1)

	if opts.HasHeader && t.Header != nil {
		row := make([]models.Value, 0, len(t.Header)+1)
		if withIndex {
			row = append(row, t.IndexName)
		}
		grid = append(grid, append(row, t.Header...))
	}

	for i, data := range t.Rows {
		row := make([]models.Value, 0, len(data)+1)
		if withIndex {
			var label models.Value
			if i < len(t.Index) {
				label = t.Index[i]
			}
			row = append(row, label)
		}
		grid = append(grid, append(row, data...))
	}
	return grid
}

// writeFile creates or truncates path and writes data to it. The close
// error is returned so a failed flush is never reported as success.
func writeFile(path string, data []byte) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fileError(err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fileError(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fileError(cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fileError(err)
	}
	return nil
}

func fileError(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return models.NewKindError(models.ErrPermission, err)
	}
	return models.NewKindError(models.ErrIO, err)
}
