package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet loads one worksheet of a workbook into a table.
// Cell values are the formatted text excelize reports, inferred back into
// numbers where they look numeric.
func ReadSheet(path string, opts ReadOptions) (*models.Table, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName, err := ResolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, models.NewKindError(models.ErrDecode, fmt.Errorf("read sheet %q: %w", sheetName, err))
	}

	t := splitLabels(rows, opts.HasHeader, opts.IncludeIndex)
	t.Normalize()
	return t, nil
}

// ResolveSheet returns the worksheet name a selector refers to.
// Names must match exactly; ordinals follow the workbook's sheet order.
func ResolveSheet(f *excelize.File, sel models.SheetSelector) (string, error) {
	sheets := f.GetSheetList()

	if name, ok := sel.Name(); ok {
		for _, sheet := range sheets {
			if sheet == name {
				return sheet, nil
			}
		}
		return "", models.NewKindError(models.ErrSheetNotFound, excelize.ErrSheetNotExist{SheetName: name})
	}

	index, _ := sel.Index()
	if index < 0 || index >= len(sheets) {
		return "", models.NewKindError(models.ErrSheetNotFound,
			fmt.Errorf("sheet index %d out of range (workbook has %d sheets): %w",
				index, len(sheets), excelize.ErrSheetNotExist{SheetName: sel.String()}))
	}
	return sheets[index], nil
}

func openWorkbook(path string) (*excelize.File, error) {
	// excelize reports a missing file as a zip error, so check first
	if _, err := os.Stat(path); err != nil {
		return nil, openError(err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, models.NewKindError(models.ErrPermission, err)
		}
		return nil, models.NewKindError(models.ErrDecode, fmt.Errorf("open workbook %s: %w", path, err))
	}
	return f, nil
}
