package parallel

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/shapekit/pkg/check"
)

// Future is the handle of one in-flight asynchronous validation.
type Future struct {
	result check.Result[any]
	err    error
	done   chan struct{}
}

// Await blocks until the validation completes and returns its result.
func (f *Future) Await() (check.Result[any], error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for completion up to the given timeout; it returns
// ErrTimeout if the validation is still running when the timeout elapses.
func (f *Future) AwaitWithTimeout(timeout time.Duration) (check.Result[any], error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		return check.Result[any]{}, ErrTimeout
	}
}

// IsComplete reports completion without blocking.
func (f *Future) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Validate runs a synchronous validator on a background goroutine and
// returns a Future, so a blocking validator can never stall the scheduling
// line. The wrapping is transparent: the result is exactly what the
// validator would have returned inline. A panicking validator surfaces as a
// task_error issue instead of crashing the process.
func Validate(ctx context.Context, v check.Validator, value any, vctx *check.Context) *Future {
	if v == nil {
		panic(ErrNilValidator)
	}

	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Pre-canceled contexts never start the unit.
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result = runUnit(v, value, vctx)
	}()

	return f
}

// runUnit executes one validation unit with panic containment.
func runUnit(v check.Validator, value any, vctx *check.Context) (res check.Result[any]) {
	defer func() {
		if r := recover(); r != nil {
			res = check.Fail(value, check.Issue{
				Message:  fmt.Sprintf("validator %q panicked: %v", v.Name(), r),
				Code:     check.CodeTaskError,
				Severity: check.SeverityCritical,
				Path:     vctx.Path(),
				Value:    value,
				Context:  map[string]any{"validator": v.Name(), "panic": fmt.Sprintf("%v", r)},
			})
		}
	}()

	return v.Validate(value, vctx)
}
