package models

import "errors"

// Error kinds shared by the readers and writers. Callers match them with
// errors.Is; the underlying library error stays reachable through errors.As.
var (
	// ErrInputNotFound indicates the source file does not exist.
	ErrInputNotFound = errors.New("input not found")
	// ErrSheetNotFound indicates the sheet selector matched no worksheet.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrDecode indicates the source could not be decoded with the given
	// encoding or delimiter.
	ErrDecode = errors.New("decode error")
	// ErrEncoding indicates a value cannot be represented in the target encoding.
	ErrEncoding = errors.New("encoding error")
	// ErrPermission indicates the destination is not writable.
	ErrPermission = errors.New("permission denied")
	// ErrIO indicates any other filesystem failure.
	ErrIO = errors.New("i/o error")
	// ErrMalformedTable indicates rows with inconsistent field counts.
	ErrMalformedTable = errors.New("malformed table")
	// ErrInvalidOptions indicates an unusable delimiter, encoding or sheet name.
	ErrInvalidOptions = errors.New("invalid options")
)

// KindError attaches an error kind to a library error.
type KindError struct {
	Kind error
	Err  error
}

func (e *KindError) Error() string {
	return e.Kind.Error() + ": " + e.Err.Error()
}

// Unwrap exposes both the kind and the cause.
func (e *KindError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NewKindError creates a new KindError.
func NewKindError(kind, err error) *KindError {
	return &KindError{Kind: kind, Err: err}
}
