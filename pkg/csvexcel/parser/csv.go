package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"
	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/textenc"
)

// ReadCSV loads a delimited text file into a table.
// Rows with a field count different from the first row are rejected.
func ReadCSV(path string, opts ReadOptions) (*models.Table, error) {
	charset, err := textenc.Lookup(opts.Encoding)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, openError(err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, models.NewKindError(models.ErrIO, err)
	}

	text, err := charset.Decode(raw)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(text))
	r.Comma = delimiterOrDefault(opts.Delimiter)
	records, err := r.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) && errors.Is(perr.Err, csv.ErrFieldCount) {
			return nil, models.NewKindError(models.ErrMalformedTable, err)
		}
		return nil, models.NewKindError(models.ErrDecode, err)
	}

	return splitLabels(records, opts.HasHeader, opts.IncludeIndex), nil
}

func delimiterOrDefault(d rune) rune {
	if d == 0 {
		return ','
	}
	return d
}

// openError classifies a failure to open a source file.
func openError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return models.NewKindError(models.ErrInputNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return models.NewKindError(models.ErrPermission, err)
	default:
		return models.NewKindError(models.ErrIO, err)
	}
}
