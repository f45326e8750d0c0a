// Package csvexcel converts tables between delimited text files and
// workbook sheets.
package csvexcel

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"
	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/output"
	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/parser"
	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/textenc"
)

// Format is the kind of file on one side of a conversion.
type Format int

const (
	// FormatCSV is delimited text.
	FormatCSV Format = iota
	// FormatExcel is an xlsx workbook sheet.
	FormatExcel
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatExcel:
		return "excel"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// SheetSelector identifies one worksheet by name or zero-based ordinal.
type SheetSelector = models.SheetSelector

// SheetByName selects a worksheet by its exact name.
func SheetByName(name string) SheetSelector { return models.SheetByName(name) }

// SheetByIndex selects a worksheet by its position in the workbook.
func SheetByIndex(index int) SheetSelector { return models.SheetByIndex(index) }

// ParseSheetSelector turns "2" into an ordinal and "Scores" into a name.
func ParseSheetSelector(s string) SheetSelector { return models.ParseSheetSelector(s) }

// Options configures a conversion. It is passed by value and never mutated.
type Options struct {
	// Delimiter separates fields in delimited text.
	Delimiter rune
	// Encoding names the character set of delimited text.
	Encoding string
	// HasHeader treats the first row as column labels.
	HasHeader bool
	// IncludeIndex treats the first column as row labels.
	IncludeIndex bool
	// Transpose swaps rows and columns between reading and writing.
	Transpose bool
	// Sheet selects the worksheet to read, or names the one to write.
	Sheet SheetSelector
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
		Encoding:  "utf-8",
		HasHeader: true,
	}
}

// Validate reports unusable delimiters, encodings and sheet ordinals.
func (o Options) Validate() error {
	switch {
	case o.Delimiter == 0:
		return models.NewKindError(models.ErrInvalidOptions, errors.New("delimiter is empty"))
	case o.Delimiter == '"' || o.Delimiter == '\r' || o.Delimiter == '\n':
		return models.NewKindError(models.ErrInvalidOptions, fmt.Errorf("delimiter %q is not allowed", o.Delimiter))
	case o.Delimiter == utf8.RuneError || !utf8.ValidRune(o.Delimiter):
		return models.NewKindError(models.ErrInvalidOptions, fmt.Errorf("delimiter %q is not a valid character", o.Delimiter))
	}
	if _, err := textenc.Lookup(o.Encoding); err != nil {
		return err
	}
	if i, ok := o.Sheet.Index(); ok && i < 0 {
		return models.NewKindError(models.ErrInvalidOptions, fmt.Errorf("sheet index %d is negative", i))
	}
	return nil
}

// Output returns the options that describe the table after Transform.
// Transposing moves the header row to the index column and the index column
// to the header row, so the two flags trade places.
func (o Options) Output() Options {
	if o.Transpose {
		o.HasHeader, o.IncludeIndex = o.IncludeIndex, o.HasHeader
	}
	return o
}

func (o Options) readOptions() parser.ReadOptions {
	return parser.ReadOptions{
		Delimiter:    o.Delimiter,
		Encoding:     o.Encoding,
		HasHeader:    o.HasHeader,
		IncludeIndex: o.IncludeIndex,
		Sheet:        o.Sheet,
	}
}

func (o Options) writeOptions() output.WriteOptions {
	return output.WriteOptions{
		Delimiter:    o.Delimiter,
		Encoding:     o.Encoding,
		HasHeader:    o.HasHeader,
		IncludeIndex: o.IncludeIndex,
	}
}

var delimiterNames = map[string]rune{
	`\t`:        '\t',
	"tab":       '\t',
	`\s`:        ' ',
	"space":     ' ',
	"comma":     ',',
	"semicolon": ';',
	"pipe":      '|',
}

// ParseDelimiter reads a delimiter given on the command line: a single
// character, or one of \t, tab, \s, space, comma, semicolon, pipe.
func ParseDelimiter(s string) (rune, error) {
	if r, ok := delimiterNames[strings.ToLower(s)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, models.NewKindError(models.ErrInvalidOptions, fmt.Errorf("delimiter must be a single character, got %q", s))
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
