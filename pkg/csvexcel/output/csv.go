package output

import (
	"bytes"
	"encoding/csv"

	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"
	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/textenc"
)

// WriteCSV writes a table as delimited text. The whole file is rendered and
// encoded before the destination is touched, so an unrepresentable value
// leaves no partial file behind.
func WriteCSV(t *models.Table, path string, opts WriteOptions) error {
	charset, err := textenc.Lookup(opts.Encoding)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if opts.Delimiter != 0 {
		cw.Comma = opts.Delimiter
	}
	for _, row := range layout(t, opts) {
		record := models.FormatRow(row)
		if len(record) == 1 && record[0] == "" {
			// csv.Writer emits a lone empty field as a blank line, which
			// readers skip. Quote it so the row survives.
			cw.Flush()
			buf.WriteString(`""` + "\n")
			continue
		}
		if err := cw.Write(record); err != nil {
			return models.NewKindError(models.ErrInvalidOptions, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return models.NewKindError(models.ErrInvalidOptions, err)
	}

	data, err := charset.Encode(buf.Bytes())
	if err != nil {
		return err
	}
	return writeFile(path, data)
}
