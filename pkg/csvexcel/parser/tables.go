package parser

import (
	"fmt"

	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"
	"github.com/xuri/excelize/v2"
)

// SheetSummary describes one worksheet of a workbook.
type SheetSummary struct {
	// Index is the zero-based position used by ordinal sheet selectors.
	Index int
	// Name is the worksheet name.
	Name string
	// UsedRange is the bounding box of non-empty cells (e.g., "A1:D10"),
	// empty for a blank sheet.
	UsedRange string
	// Rows and Cols are the dimensions of the used range.
	Rows, Cols int
	// Filled is the number of non-empty cells.
	Filled int
}

// SummarizeSheets lists every worksheet in sheet order.
func SummarizeSheets(path string) ([]SheetSummary, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	result := make([]SheetSummary, 0, len(sheets))
	for i, sheetName := range sheets {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, models.NewKindError(models.ErrDecode, fmt.Errorf("read sheet %q: %w", sheetName, err))
		}

		summary := SheetSummary{Index: i, Name: sheetName}
		b := scanBounds(rows)
		if b.filled > 0 {
			topLeft, _ := excelize.CoordinatesToCellName(b.left+1, b.top+1)
			bottomRight, _ := excelize.CoordinatesToCellName(b.right+1, b.bottom+1)
			summary.UsedRange = topLeft + ":" + bottomRight
			summary.Rows = b.bottom - b.top + 1
			summary.Cols = b.right - b.left + 1
			summary.Filled = b.filled
		}
		result = append(result, summary)
	}
	return result, nil
}

// bounds is the zero-based box around the non-empty cells of a sheet.
type bounds struct {
	top, bottom, left, right int
	filled                   int
}

func scanBounds(rows [][]string) bounds {
	var b bounds
	for r, row := range rows {
		for c, cell := range row {
			if cell == "" {
				continue
			}
			if b.filled == 0 {
				b = bounds{top: r, bottom: r, left: c, right: c}
			}
			b.top = min(b.top, r)
			b.bottom = max(b.bottom, r)
			b.left = min(b.left, c)
			b.right = max(b.right, c)
			b.filled++
		}
	}
	return b
}
