package check

import "errors"

var (
	// ErrNoValidators is returned when a combinator is constructed without
	// any validators to run.
	ErrNoValidators = errors.New("no validators provided")

	// ErrNilValidator is returned when a combinator receives a nil validator.
	ErrNilValidator = errors.New("validator is nil")

	// ErrNilPredicate is returned when a conditional is built without a predicate.
	ErrNilPredicate = errors.New("predicate is nil")

	// ErrNilTransform is returned when a transform is built without a projection.
	ErrNilTransform = errors.New("transform function is nil")

	// ErrNilBuilder is returned when a lazy validator is built without a constructor.
	ErrNilBuilder = errors.New("builder function is nil")
)
