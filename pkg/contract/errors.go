package contract

import "errors"

// ErrNilContract is returned when a wrapper is built without a validator or
// an operation.
var ErrNilContract = errors.New("contract requires a validator and an operation")
