package csvexcel

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"
	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/output"
	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/parser"
)

// CSVToExcel converts a delimited text file into a workbook sheet.
func CSVToExcel(src, dst string, opts Options) error {
	return Convert(src, dst, FormatCSV, FormatExcel, opts)
}

// ExcelToCSV converts a workbook sheet into a delimited text file.
func ExcelToCSV(src, dst string, opts Options) error {
	return Convert(src, dst, FormatExcel, FormatCSV, opts)
}

// Convert reads src, applies the optional transpose and writes dst.
// opts describes the source; the destination is written with opts.Output().
// Any failure aborts the conversion and is returned as a *ConversionError.
func Convert(src, dst string, from, to Format, opts Options) error {
	if err := opts.Validate(); err != nil {
		return NewConversionError(StageOptions, "", err)
	}
	if samePath(src, dst) {
		return NewConversionError(StageOptions, "",
			models.NewKindError(ErrInvalidOptions, fmt.Errorf("source and destination are the same file: %s", dst)))
	}

	logger := slog.Default().With("src", src, "dst", dst)
	logger.Debug("reading table", "format", from, "sheet", opts.Sheet.String())

	t, err := Read(src, from, opts)
	if err != nil {
		return NewConversionError(StageRead, src, err)
	}
	logger.Debug("table loaded", "rows", len(t.Rows), "cols", t.Width(),
		"header", t.Header != nil, "index", t.Index != nil)

	t = Transform(t, opts)
	if opts.Transpose {
		logger.Debug("table transposed", "rows", len(t.Rows), "cols", t.Width())
	}

	if err := Write(t, dst, to, opts.Output()); err != nil {
		return NewConversionError(StageWrite, dst, err)
	}
	logger.Info("conversion finished", "format", to, "rows", len(t.Rows))
	return nil
}

// Read loads a table from path.
func Read(path string, format Format, opts Options) (*models.Table, error) {
	switch format {
	case FormatCSV:
		return parser.ReadCSV(path, opts.readOptions())
	case FormatExcel:
		return parser.ReadSheet(path, opts.readOptions())
	default:
		return nil, models.NewKindError(ErrInvalidOptions, fmt.Errorf("unsupported format %v", format))
	}
}

// Write persists a table to path, creating or truncating it.
func Write(t *models.Table, path string, format Format, opts Options) error {
	switch format {
	case FormatCSV:
		return output.WriteCSV(t, path, opts.writeOptions())
	case FormatExcel:
		return output.WriteSheet(t, path, opts.Sheet.TargetName(), opts.writeOptions())
	default:
		return models.NewKindError(ErrInvalidOptions, fmt.Errorf("unsupported format %v", format))
	}
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	return errA == nil && errB == nil && os.SameFile(infoA, infoB)
}
