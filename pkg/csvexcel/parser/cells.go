package parser

import (
	"regexp"
	"strconv"

	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"
)

// numericRegex matches plain decimal numbers. It keeps "NaN", "Inf", hex
// literals and digit separators out of numeric parsing.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseRow converts raw field text into cell values.
func ParseRow(fields []string) []models.Value {
	row := make([]models.Value, len(fields))
	for i, s := range fields {
		row[i] = ParseValue(s)
	}
	return row
}

// ParseValue attempts to parse a string value as a number.
// Returns nil for empty text, int64 for integers, float64 for decimals,
// or the original string.
func ParseValue(s string) models.Value {
	if s == "" {
		return nil
	}
	if !numericRegex.MatchString(s) {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
