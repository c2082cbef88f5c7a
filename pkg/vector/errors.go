package vector

import "errors"

var (
	// ErrInvalidArgument reports a malformed call: wrong constructor arity or
	// shape, a non-numeric scalar, a negative tolerance or length, or a
	// non-unit reflection normal.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrValueConversion reports a value that does not match any vector-like shape.
	ErrValueConversion = errors.New("value is not vector-like")

	// ErrNotApplicable is returned by the dynamic operators when the other
	// operand cannot be converted. It is a signal for the caller's dispatch
	// logic, which may try the reflected operation before giving up.
	ErrNotApplicable = errors.New("operation not applicable")

	// ErrIndexOutOfRange is returned by Index for anything other than 0 or 1.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrMissingKey is returned by Key for anything other than "x" or "y".
	ErrMissingKey = errors.New("missing key")
)
