package output

import (
	"fmt"

	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"
	"github.com/xuri/excelize/v2"
)

// WriteSheet writes a table into a new workbook holding a single sheet
// named sheetName. An existing file at path is overwritten.
func WriteSheet(t *models.Table, path, sheetName string, opts WriteOptions) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = models.DefaultSheetName
	}
	if sheetName != models.DefaultSheetName {
		if err := f.SetSheetName(models.DefaultSheetName, sheetName); err != nil {
			return models.NewKindError(models.ErrInvalidOptions, fmt.Errorf("sheet name %q: %w", sheetName, err))
		}
	}

	for r, row := range layout(t, opts) {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return models.NewKindError(models.ErrMalformedTable, err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return models.NewKindError(models.ErrMalformedTable, fmt.Errorf("cell %s: %w", cell, err))
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return models.NewKindError(models.ErrIO, err)
	}
	return writeFile(path, buf.Bytes())
}
