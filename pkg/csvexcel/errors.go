package csvexcel

import (
	"fmt"

	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"
)

// Error kinds. Match them with errors.Is on any error this package returns.
var (
	// ErrInputNotFound indicates the source file does not exist.
	ErrInputNotFound = models.ErrInputNotFound
	// ErrSheetNotFound indicates the sheet selector matched no worksheet.
	ErrSheetNotFound = models.ErrSheetNotFound
	// ErrDecode indicates bad input encoding, delimiter mismatch or an
	// unreadable workbook.
	ErrDecode = models.ErrDecode
	// ErrEncoding indicates a value not representable in the target encoding.
	ErrEncoding = models.ErrEncoding
	// ErrPermission indicates the destination is not writable.
	ErrPermission = models.ErrPermission
	// ErrIO indicates any other filesystem failure.
	ErrIO = models.ErrIO
	// ErrMalformedTable indicates rows with inconsistent field counts.
	ErrMalformedTable = models.ErrMalformedTable
	// ErrInvalidOptions indicates an unusable option value.
	ErrInvalidOptions = models.ErrInvalidOptions
)

// Conversion stages reported in ConversionError.
const (
	StageOptions = "options"
	StageRead    = "read"
	StageWrite   = "write"
)

// ConversionError represents a failed conversion step.
type ConversionError struct {
	Stage string // "options", "read", "write"
	Path  string
	Err   error
}

func (e *ConversionError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("unable to %s %q: %v", e.Stage, e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(stage, path string, err error) *ConversionError {
	return &ConversionError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
