package models

import (
	"strconv"
	"strings"
)

// DefaultSheetName is the worksheet name used when writing without a selector.
const DefaultSheetName = "Sheet1"

// SheetSelector identifies one worksheet by name or by zero-based ordinal.
// The zero value selects the default sheet.
type SheetSelector struct {
	name    string
	index   int
	byIndex bool
}

// SheetByName selects a worksheet by its exact name.
func SheetByName(name string) SheetSelector {
	return SheetSelector{name: name}
}

// SheetByIndex selects a worksheet by its position in the workbook.
func SheetByIndex(index int) SheetSelector {
	return SheetSelector{index: index, byIndex: true}
}

// ParseSheetSelector turns command-line text into a selector: all digits
// select an ordinal, anything else a name, and blank text the default.
func ParseSheetSelector(s string) SheetSelector {
	s = strings.TrimSpace(s)
	if s == "" {
		return SheetSelector{}
	}
	if isDigits(s) {
		if i, err := strconv.Atoi(s); err == nil {
			return SheetByIndex(i)
		}
	}
	return SheetByName(s)
}

// IsDefault reports whether no sheet was requested.
func (s SheetSelector) IsDefault() bool {
	return !s.byIndex && s.name == ""
}

// Name returns the selected name and whether the selector is name based.
func (s SheetSelector) Name() (string, bool) {
	return s.name, !s.byIndex && s.name != ""
}

// Index returns the selected ordinal and whether the selector is ordinal based.
func (s SheetSelector) Index() (int, bool) {
	return s.index, s.byIndex
}

// TargetName returns the worksheet name to create when writing.
func (s SheetSelector) TargetName() string {
	switch {
	case s.byIndex:
		return strconv.Itoa(s.index)
	case s.name != "":
		return s.name
	default:
		return DefaultSheetName
	}
}

func (s SheetSelector) String() string {
	switch {
	case s.byIndex:
		return "#" + strconv.Itoa(s.index)
	case s.name != "":
		return strconv.Quote(s.name)
	default:
		return "default"
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
