package structural

import "errors"

var (
	// ErrNoFields is returned when a nested validator is built without fields.
	ErrNoFields = errors.New("no field validators provided")

	// ErrNilValidator is returned when a nil validator is supplied.
	ErrNilValidator = errors.New("validator is nil")
)
