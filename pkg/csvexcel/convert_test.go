package csvexcel

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func sheetRows(t *testing.T, path, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestRoundTripDefaults(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "scores.csv", []byte("name,score\nA,1\nB,2\n"))
	xlsx := filepath.Join(dir, "scores.xlsx")
	back := filepath.Join(dir, "back.csv")

	require.NoError(t, CSVToExcel(src, xlsx, DefaultOptions()))
	assert.Equal(t, [][]string{{"name", "score"}, {"A", "1"}, {"B", "2"}}, sheetRows(t, xlsx, "Sheet1"))

	require.NoError(t, ExcelToCSV(xlsx, back, DefaultOptions()))
	assert.Equal(t, "name,score\nA,1\nB,2\n", readFile(t, back))
}

func TestRoundTripNamedSheet(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "scores.csv", []byte("name,score\nAlice,10\nBob,12\n"))
	xlsx := filepath.Join(dir, "scores.xlsx")
	back := filepath.Join(dir, "back.csv")

	opts := DefaultOptions()
	opts.Sheet = SheetByName("Scores")
	require.NoError(t, CSVToExcel(src, xlsx, opts))
	require.NoError(t, ExcelToCSV(xlsx, back, opts))

	assert.Equal(t, "name,score\nAlice,10\nBob,12\n", readFile(t, back))
}

func TestSingleColumnGapRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "gap.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "v"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", 1))
	require.NoError(t, f.SetCellValue("Sheet1", "A4", 3))
	require.NoError(t, f.SaveAs(src))
	require.NoError(t, f.Close())

	csvPath := filepath.Join(dir, "gap.csv")
	back := filepath.Join(dir, "back.xlsx")
	require.NoError(t, ExcelToCSV(src, csvPath, DefaultOptions()))
	assert.Equal(t, "v\n1\n\"\"\n3\n", readFile(t, csvPath))

	require.NoError(t, CSVToExcel(csvPath, back, DefaultOptions()))
	assert.Equal(t, [][]string{{"v"}, {"1"}, nil, {"3"}}, sheetRows(t, back, "Sheet1"))
}

func TestNoHeaderTrailingEmptyColumn(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "pairs.csv", []byte("1,\n2,\n"))
	xlsx := filepath.Join(dir, "pairs.xlsx")
	back := filepath.Join(dir, "back.csv")

	opts := DefaultOptions()
	opts.HasHeader = false
	require.NoError(t, CSVToExcel(src, xlsx, opts))
	require.NoError(t, ExcelToCSV(xlsx, back, opts))

	// a sheet keeps no width, so a column empty in every row is dropped
	assert.Equal(t, "1\n2\n", readFile(t, back))

	withHeader := writeFile(t, dir, "labelled.csv", []byte("n,note\n1,\n2,\n"))
	require.NoError(t, CSVToExcel(withHeader, xlsx, DefaultOptions()))
	require.NoError(t, ExcelToCSV(xlsx, back, DefaultOptions()))
	assert.Equal(t, "n,note\n1,\n2,\n", readFile(t, back))
}

func TestTransposeNoHeader(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "matrix.csv", []byte("x,y,z\n1,2,3\n4,5,6\n"))
	xlsx := filepath.Join(dir, "matrix.xlsx")

	opts := DefaultOptions()
	opts.Transpose = true
	opts.HasHeader = false
	require.NoError(t, CSVToExcel(src, xlsx, opts))

	// Without a header the x,y,z row is data, so transposing rotates it
	// into the first column and the sheet is 3x3. Reading it back with an
	// index column yields the 3x2 block [1,4] [2,5] [3,6].
	assert.Equal(t, [][]string{
		{"x", "1", "4"},
		{"y", "2", "5"},
		{"z", "3", "6"},
	}, sheetRows(t, xlsx, "Sheet1"))

	readOpts := DefaultOptions()
	readOpts.HasHeader = false
	readOpts.IncludeIndex = true
	tbl, err := Read(xlsx, FormatExcel, readOpts)
	require.NoError(t, err)
	assert.Equal(t, [][]models.Value{
		{int64(1), int64(4)},
		{int64(2), int64(5)},
		{int64(3), int64(6)},
	}, tbl.Rows)
}

func TestTransposeHeaderBecomesIndex(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "matrix.csv", []byte("x,y,z\n1,2,3\n4,5,6\n"))
	xlsx := filepath.Join(dir, "matrix.xlsx")

	opts := DefaultOptions()
	opts.Transpose = true
	require.NoError(t, CSVToExcel(src, xlsx, opts))

	tbl, err := Read(xlsx, FormatExcel, opts.Output())
	require.NoError(t, err)
	assert.Nil(t, tbl.Header)
	assert.Equal(t, []models.Value{"x", "y", "z"}, tbl.Index)
	assert.Equal(t, [][]models.Value{
		{int64(1), int64(4)},
		{int64(2), int64(5)},
		{int64(3), int64(6)},
	}, tbl.Rows)
}

func TestTransposeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := "metric,Q1,Q2\nA,1,2\nB,3,4\n"
	src := writeFile(t, dir, "matrix.csv", []byte(original))
	xlsx := filepath.Join(dir, "matrix.xlsx")
	back := filepath.Join(dir, "back.csv")

	opts := DefaultOptions()
	opts.Sheet = SheetByName("Matrix")
	opts.Transpose = true
	require.NoError(t, CSVToExcel(src, xlsx, opts))
	assert.Equal(t, [][]string{
		{"metric", "A", "B"},
		{"Q1", "1", "3"},
		{"Q2", "2", "4"},
	}, sheetRows(t, xlsx, "Matrix"))

	require.NoError(t, ExcelToCSV(xlsx, back, opts))
	assert.Equal(t, original, readFile(t, back))
}

func TestTransposeRoundTripWithIndex(t *testing.T) {
	dir := t.TempDir()
	original := "id,a,b\nr1,1,2\nr2,3,4\nr3,5,6\n"
	src := writeFile(t, dir, "table.csv", []byte(original))
	xlsx := filepath.Join(dir, "table.xlsx")
	back := filepath.Join(dir, "back.csv")

	opts := DefaultOptions()
	opts.IncludeIndex = true
	opts.Transpose = true
	require.NoError(t, CSVToExcel(src, xlsx, opts))
	assert.Equal(t, [][]string{
		{"id", "r1", "r2", "r3"},
		{"a", "1", "3", "5"},
		{"b", "2", "4", "6"},
	}, sheetRows(t, xlsx, "Sheet1"))

	require.NoError(t, ExcelToCSV(xlsx, back, opts))
	assert.Equal(t, original, readFile(t, back))
}

func TestIncludeIndexRoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := "id,value\nr1,10\nr2,20\n"
	src := writeFile(t, dir, "table.csv", []byte(original))
	xlsx := filepath.Join(dir, "table.xlsx")
	back := filepath.Join(dir, "back.csv")

	opts := DefaultOptions()
	opts.IncludeIndex = true
	require.NoError(t, CSVToExcel(src, xlsx, opts))
	require.NoError(t, ExcelToCSV(xlsx, back, opts))

	assert.Equal(t, original, readFile(t, back))
}

func TestSheetOrdinalZeroMatchesDefault(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "scores.csv", []byte("name,score\nA,1\n"))
	xlsx := filepath.Join(dir, "scores.xlsx")
	require.NoError(t, CSVToExcel(src, xlsx, DefaultOptions()))

	byDefault, err := Read(xlsx, FormatExcel, DefaultOptions())
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Sheet = SheetByIndex(0)
	byOrdinal, err := Read(xlsx, FormatExcel, opts)
	require.NoError(t, err)

	assert.Equal(t, byDefault, byOrdinal)
}

func TestLatin1SemicolonRoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := []byte("nom;prix\ncaf\xe9;2\nth\xe9 glac\xe9;3,5\n")
	src := writeFile(t, dir, "menu.csv", original)
	xlsx := filepath.Join(dir, "menu.xlsx")
	back := filepath.Join(dir, "back.csv")

	opts := DefaultOptions()
	opts.Delimiter = ';'
	opts.Encoding = "latin-1"
	require.NoError(t, CSVToExcel(src, xlsx, opts))
	assert.Equal(t, [][]string{
		{"nom", "prix"},
		{"café", "2"},
		{"thé glacé", "3,5"},
	}, sheetRows(t, xlsx, "Sheet1"))

	require.NoError(t, ExcelToCSV(xlsx, back, opts))
	assert.Equal(t, string(original), readFile(t, back))
}

func TestMissingSheet(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "scores.csv", []byte("name,score\nA,1\n"))
	xlsx := filepath.Join(dir, "scores.xlsx")
	dst := filepath.Join(dir, "out.csv")
	require.NoError(t, CSVToExcel(src, xlsx, DefaultOptions()))

	opts := DefaultOptions()
	opts.Sheet = SheetByName("Missing")
	err := ExcelToCSV(xlsx, dst, opts)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSheetNotFound), "got %v", err)

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, StageRead, convErr.Stage)
	assert.Equal(t, xlsx, convErr.Path)

	_, statErr := os.Stat(dst)
	assert.True(t, os.IsNotExist(statErr), "output file must not be created")
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()
	ragged := writeFile(t, dir, "ragged.csv", []byte("a,b\n1\n"))
	euro := writeFile(t, dir, "euro.csv", []byte("item,price\ncoffee,3€\n"))
	euroXLSX := filepath.Join(dir, "euro.xlsx")
	require.NoError(t, CSVToExcel(euro, euroXLSX, DefaultOptions()))

	latin1 := DefaultOptions()
	latin1.Encoding = "latin-1"

	badDelimiter := DefaultOptions()
	badDelimiter.Delimiter = '"'

	badEncoding := DefaultOptions()
	badEncoding.Encoding = "ebcdic-klingon"

	tests := []struct {
		name  string
		run   func() error
		kind  error
		stage string
	}{
		{"missing input", func() error {
			return CSVToExcel(filepath.Join(dir, "nope.csv"), filepath.Join(dir, "out.xlsx"), DefaultOptions())
		}, ErrInputNotFound, StageRead},
		{"ragged rows", func() error {
			return CSVToExcel(ragged, filepath.Join(dir, "out.xlsx"), DefaultOptions())
		}, ErrMalformedTable, StageRead},
		{"unencodable value", func() error {
			return ExcelToCSV(euroXLSX, filepath.Join(dir, "euro-latin1.csv"), latin1)
		}, ErrEncoding, StageWrite},
		{"bad delimiter", func() error {
			return CSVToExcel(euro, filepath.Join(dir, "out.xlsx"), badDelimiter)
		}, ErrInvalidOptions, StageOptions},
		{"bad encoding", func() error {
			return CSVToExcel(euro, filepath.Join(dir, "out.xlsx"), badEncoding)
		}, ErrInvalidOptions, StageOptions},
		{"same file", func() error {
			return CSVToExcel(euro, euro, DefaultOptions())
		}, ErrInvalidOptions, StageOptions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)

			var convErr *ConversionError
			require.True(t, errors.As(err, &convErr))
			assert.Equal(t, tt.stage, convErr.Stage)
		})
	}

	assert.Equal(t, "item,price\ncoffee,3€\n", readFile(t, euro))
}

func TestWriteOverwritesDestination(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "a.csv", []byte("v\n1\n"))
	dst := writeFile(t, dir, "b.csv", []byte("stale content that is longer\n"))
	xlsx := filepath.Join(dir, "a.xlsx")

	require.NoError(t, CSVToExcel(src, xlsx, DefaultOptions()))
	require.NoError(t, ExcelToCSV(xlsx, dst, DefaultOptions()))

	assert.Equal(t, "v\n1\n", readFile(t, dst))
}

func TestTransform(t *testing.T) {
	tbl := &models.Table{
		Header: []models.Value{"a", "b"},
		Rows:   [][]models.Value{{int64(1), int64(2)}},
	}

	assert.Same(t, tbl, Transform(tbl, DefaultOptions()))

	opts := DefaultOptions()
	opts.Transpose = true
	out := Transform(tbl, opts)
	assert.Equal(t, []models.Value{"a", "b"}, out.Index)
	assert.Equal(t, [][]models.Value{{int64(1)}, {int64(2)}}, out.Rows)
}
