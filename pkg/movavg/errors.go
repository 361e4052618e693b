package movavg

import "errors"

var (
	// ErrEmpty is returned when the average is queried before any value
	// has been fed.
	ErrEmpty = errors.New("moving average state is empty")

	// ErrOverflow is returned when the incremental accumulator update
	// exceeds the bounds of its integer kind.
	ErrOverflow = errors.New("accumulator overflow")

	// ErrCast is returned when a value cannot be represented in the
	// target numeric kind. Casts never silently truncate.
	ErrCast = errors.New("numeric cast out of range")

	// ErrWindowSize is returned when a window is created with size < 1.
	ErrWindowSize = errors.New("window size must be at least 1")

	// ErrTooManyValues is returned when more seed values are declared
	// valid than the window can hold.
	ErrTooManyValues = errors.New("valid item count exceeds window size")
)
