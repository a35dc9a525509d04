package dataset

import "fmt"

// NotFoundError reports a result file that is absent or unreadable.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("dataset %s: %v", e.Path, e.Err) }
func (e *NotFoundError) Unwrap() error { return e.Err }

// FormatError reports structurally malformed CSV input: a missing header
// row, a row whose field count differs from the header, or a header that
// lacks a requested column.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string { return fmt.Sprintf("dataset %s: %v", e.Path, e.Err) }
func (e *FormatError) Unwrap() error { return e.Err }

// ConversionError reports a cell in a projected column that could not be
// parsed as a number. Row is the zero-based data row index (the header does
// not count).
type ConversionError struct {
	Path   string
	Column string
	Row    int
	Value  string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("dataset %s: column %q row %d: value %q is not numeric", e.Path, e.Column, e.Row, e.Value)
}
func (e *ConversionError) Unwrap() error { return e.Err }
