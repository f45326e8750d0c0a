package main

import (
	"github.com/spf13/cobra"
	"github.com/ukaji3/csvexcel-go/pkg/csvexcel"
)

// convertFlags holds the flags shared by both conversion commands.
type convertFlags struct {
	sheetName    string
	delimiter    string
	encoding     string
	noHeader     bool
	transpose    bool
	includeIndex bool
}

func newCSVToExcelCommand() *cobra.Command {
	flags := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "csv-to-excel <src.csv> <dst.xlsx>",
		Short: "Convert a CSV file into an Excel workbook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return csvexcel.CSVToExcel(args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&flags.sheetName, "sheet-name", "Sheet1", "Worksheet name to create")
	cmd.Flags().StringVar(&flags.delimiter, "delimiter", ",", "Input CSV delimiter")
	cmd.Flags().StringVar(&flags.encoding, "encoding", "utf-8", "Encoding used to read the CSV")
	cmd.Flags().BoolVar(&flags.noHeader, "no-header", false, "Treat the first row as data instead of column names")
	cmd.Flags().BoolVar(&flags.transpose, "transpose", false, "Swap rows and columns before writing to Excel")
	cmd.Flags().BoolVar(&flags.includeIndex, "include-index", false, "Treat the first column as row labels and keep it in the worksheet")
	return cmd
}

func newExcelToCSVCommand() *cobra.Command {
	flags := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "excel-to-csv <src.xlsx> <dst.csv>",
		Short: "Convert an Excel worksheet into a CSV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return csvexcel.ExcelToCSV(args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&flags.sheetName, "sheet-name", "0", "Worksheet name or zero-based index")
	cmd.Flags().StringVar(&flags.delimiter, "delimiter", ",", "Delimiter to use in the output CSV")
	cmd.Flags().StringVar(&flags.encoding, "encoding", "utf-8", "Encoding to use for the output CSV")
	cmd.Flags().BoolVar(&flags.noHeader, "no-header", false, "Treat the first row as data and write no column names")
	cmd.Flags().BoolVar(&flags.transpose, "transpose", false, "Swap rows and columns before writing to CSV")
	cmd.Flags().BoolVar(&flags.includeIndex, "include-index", false, "Treat the first column as row labels and keep it in the CSV")
	return cmd
}

// options builds conversion options: flag defaults, then the --config
// profile, then every flag given explicitly on the command line.
func (f *convertFlags) options(cmd *cobra.Command) (csvexcel.Options, error) {
	opts := csvexcel.DefaultOptions()
	if err := f.apply(&opts, func(string) bool { return true }); err != nil {
		return opts, err
	}

	if configPath == "" {
		return opts, nil
	}
	profile, err := csvexcel.LoadProfile(configPath)
	if err != nil {
		return opts, csvexcel.NewConversionError(csvexcel.StageOptions, "", err)
	}
	if opts, err = profile.Apply(opts); err != nil {
		return opts, csvexcel.NewConversionError(csvexcel.StageOptions, "", err)
	}
	return opts, f.apply(&opts, cmd.Flags().Changed)
}

// apply copies the flags selected by set into opts.
func (f *convertFlags) apply(opts *csvexcel.Options, set func(name string) bool) error {
	if set("delimiter") {
		d, err := csvexcel.ParseDelimiter(f.delimiter)
		if err != nil {
			return csvexcel.NewConversionError(csvexcel.StageOptions, "", err)
		}
		opts.Delimiter = d
	}
	if set("encoding") {
		opts.Encoding = f.encoding
	}
	if set("sheet-name") {
		opts.Sheet = csvexcel.ParseSheetSelector(f.sheetName)
	}
	if set("no-header") {
		opts.HasHeader = !f.noHeader
	}
	if set("transpose") {
		opts.Transpose = f.transpose
	}
	if set("include-index") {
		opts.IncludeIndex = f.includeIndex
	}
	return nil
}
