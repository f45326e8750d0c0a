// Package main provides the CLI entry point for csv-excel-converter.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/csvexcel-go/internal/logging"
	"github.com/ukaji3/csvexcel-go/pkg/csvexcel"
)

var (
	configPath string
	logLevel   string
	logFormat  string
)

const examples = `  csv-excel-converter csv-to-excel data/quarterly.csv reports/q1.xlsx
  csv-excel-converter csv-to-excel data/people.csv reports/wide.xlsx --transpose --sheet-name WideView
  csv-excel-converter excel-to-csv reports/q1.xlsx data/q1.csv --sheet-name Q1 --transpose --encoding latin-1 --delimiter ";"
  csv-excel-converter excel-to-csv matrix.xlsx matrix.csv --no-header --include-index
  csv-excel-converter sheets reports/q1.xlsx`

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		var convErr *csvexcel.ConversionError
		if errors.As(err, &convErr) {
			fmt.Fprintf(stderr, "conversion failed: %v\n", err)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csv-excel-converter",
		Short: "Convert CSV files to Excel workbooks and back again",
		Long: `csv-excel-converter converts delimited text files into a worksheet of an
xlsx workbook and worksheets back into delimited text, optionally
transposing rows and columns.`,
		Example:       examples,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(cmd.ErrOrStderr(), logLevel, logFormat)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML profile with default conversion options")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")

	rootCmd.AddCommand(newCSVToExcelCommand())
	rootCmd.AddCommand(newExcelToCSVCommand())
	rootCmd.AddCommand(newSheetsCommand())
	return rootCmd
}
