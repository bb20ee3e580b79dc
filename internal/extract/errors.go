package extract

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtractionFailed  = errors.New("extraction failed")
	ErrEmptyExtraction   = errors.New("no text extracted")
)

// Error describes a failed extraction. Kind is one of the package sentinels.
type Error struct {
	Format Format
	Kind   error
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract %s: %v: %v", e.Format, e.Kind, e.Err)
	}
	return fmt.Sprintf("extract %s: %v", e.Format, e.Kind)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Cause returns the underlying parser error text, or "" when there is none.
func (e *Error) Cause() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func failed(format Format, err error) error {
	return &Error{Format: format, Kind: ErrExtractionFailed, Err: err}
}
