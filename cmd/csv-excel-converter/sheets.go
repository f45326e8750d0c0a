package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/ukaji3/csvexcel-go/pkg/csvexcel"
	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/parser"
)

func newSheetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <src.xlsx>",
		Short: "List the worksheets of a workbook with their ordinals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := parser.SummarizeSheets(args[0])
			if err != nil {
				return csvexcel.NewConversionError(csvexcel.StageRead, args[0], err)
			}
			return writeSheetTable(cmd.OutOrStdout(), summaries)
		},
	}
}

// writeSheetTable prints one line per sheet, padding columns by display
// width so that wide (CJK) sheet names stay aligned.
func writeSheetTable(w io.Writer, summaries []parser.SheetSummary) error {
	rows := [][]string{{"INDEX", "NAME", "RANGE", "ROWS", "COLS", "FILLED"}}
	for _, s := range summaries {
		usedRange := s.UsedRange
		if usedRange == "" {
			usedRange = "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(s.Index),
			s.Name,
			usedRange,
			strconv.Itoa(s.Rows),
			strconv.Itoa(s.Cols),
			strconv.Itoa(s.Filled),
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, row := range rows {
		line := ""
		for i, cell := range row {
			if i == len(row)-1 {
				line += cell
				break
			}
			line += runewidth.FillRight(cell, widths[i]) + "  "
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
