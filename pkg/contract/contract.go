package contract

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/shapekit/pkg/check"
)

// Op is an operation whose input and output can be put under contract.
type Op[In, Out any] func(ctx context.Context, in In) (Out, error)

// WithPrecondition validates the input before invoking op. A failing
// precondition short-circuits with the issues as the returned error.
func WithPrecondition[In, Out any](pre check.Validator, op Op[In, Out]) Op[In, Out] {
	if pre == nil || op == nil {
		panic(ErrNilContract)
	}
	return func(ctx context.Context, in In) (Out, error) {
		if res := pre.Validate(in, check.NewContext()); !res.IsValid() {
			var zero Out
			return zero, fmt.Errorf("precondition %q: %w", pre.Name(), res.Err())
		}
		return op(ctx, in)
	}
}

// WithPostcondition validates the output of a successful op. Operation
// errors pass through untouched; a failing postcondition replaces the
// result with the issues as an error.
func WithPostcondition[In, Out any](post check.Validator, op Op[In, Out]) Op[In, Out] {
	if post == nil || op == nil {
		panic(ErrNilContract)
	}
	return func(ctx context.Context, in In) (Out, error) {
		out, err := op(ctx, in)
		if err != nil {
			return out, err
		}
		if res := post.Validate(out, check.NewContext()); !res.IsValid() {
			var zero Out
			return zero, fmt.Errorf("postcondition %q: %w", post.Name(), res.Err())
		}
		return out, nil
	}
}

// WithContract applies both a precondition and a postcondition.
func WithContract[In, Out any](pre, post check.Validator, op Op[In, Out]) Op[In, Out] {
	return WithPrecondition(pre, WithPostcondition(post, op))
}
