package point

import "fmt"

// ErrMalformedRecord indicates an input record that cannot be turned
// into a node: an unparsable coordinate, an unrecognized type tag or a
// field after the tag.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMalformedRecord struct {
	Line  int
	Field string
	cause error
}

func (e *ErrMalformedRecord) Error() string {
	return fmt.Sprintf("malformed record on line %d: %q", e.Line, e.Field)
}

func (e *ErrMalformedRecord) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates a record whose coordinate count
// differs from the dimension established by the first record.
type ErrDimensionMismatch struct {
	Line     int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch on line %d: expected %d coordinates, got %d", e.Line, e.Expected, e.Actual)
}
