package shape

import "errors"

var (
	// ErrNilDescriptor is returned when a composite descriptor is built
	// around a nil inner descriptor.
	ErrNilDescriptor = errors.New("descriptor is nil")

	// ErrEmptyLiteral is returned when a literal descriptor has no allowed values.
	ErrEmptyLiteral = errors.New("literal requires at least one value")

	// ErrEmptyUnion is returned when a union descriptor has no alternatives.
	ErrEmptyUnion = errors.New("union requires at least one alternative")

	// ErrEmptyTuple is returned when a fixed tuple has no positions.
	ErrEmptyTuple = errors.New("tuple requires at least one position")
)
