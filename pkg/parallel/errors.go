package parallel

import "errors"

var (
	// ErrTimeout is returned when awaiting a future exceeds the given timeout.
	ErrTimeout = errors.New("await timed out")

	// ErrNilValidator is returned when a nil validator is supplied.
	ErrNilValidator = errors.New("validator is nil")

	// ErrNilBatchFunc is returned when batch validation is invoked without a function.
	ErrNilBatchFunc = errors.New("batch function is nil")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("batch size must be positive")

	// ErrBatchSizeMismatch is returned when a batch function does not return
	// exactly one result per input item.
	ErrBatchSizeMismatch = errors.New("batch function returned wrong number of results")

	// errFailFast stops the group after the first observed failure; it never
	// escapes the coordinator.
	errFailFast = errors.New("fail fast")
)
