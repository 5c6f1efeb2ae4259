package parallel

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/shapekit/pkg/check"
)

const defaultLimit = 4

// Coordinator validates independent items or fields in parallel under a
// fixed admission bound. Aggregated output always preserves the original
// input order (index or field name) regardless of completion order.
//
// Every unit runs under a forked validation context with its own cycle set,
// so concurrent units share no mutable state. The coordinator itself is
// stateless between calls and safe for concurrent use.
type Coordinator struct {
	id       uuid.UUID
	limit    int
	failFast bool
	logger   *slog.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLimit bounds how many units may run at once. Must be positive.
func WithLimit(n int) Option {
	return func(c *Coordinator) { c.limit = n }
}

// WithFailFast cancels not-yet-started units on the first observed failure
// and drops results of units that complete afterwards.
func WithFailFast() Option {
	return func(c *Coordinator) { c.failFast = true }
}

// WithLogger attaches a logger for unit-level debug events. The default
// logger discards everything; the engine performs no I/O on its own.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a coordinator. Panics on a non-positive limit.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		id:     uuid.New(),
		limit:  defaultLimit,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.limit <= 0 {
		panic("parallel: concurrency limit must be positive")
	}
	return c
}

// ID returns the coordinator's identifier, stamped into result metadata.
func (c *Coordinator) ID() uuid.UUID { return c.id }

// ValidateSlice validates every item with the same validator, each under an
// index-scoped forked context. With fail-fast off, every item is attempted
// and all issues are merged; the output value holds the valid items
// compacted in index order. With fail-fast on, the first observed failure
// cancels pending units and results of later-completing units are discarded.
func (c *Coordinator) ValidateSlice(ctx context.Context, items []any, v check.Validator, vctx *check.Context) check.Result[any] {
	if v == nil {
		panic(ErrNilValidator)
	}

	units := make([]unit, len(items))
	for i, item := range items {
		units[i] = unit{
			value:     item,
			validator: v,
			vctx:      vctx.Fork(fmt.Sprintf("[%d]", i)),
		}
	}
	results := c.run(ctx, units)

	out := check.OK[any](nil)
	out.SetMeta("run_id", uuid.New().String())
	out.SetMeta("coordinator_id", c.id.String())

	output := make([]any, 0, len(items))
	for _, res := range results {
		if res == nil {
			continue
		}
		out.Warnings = append(out.Warnings, res.Warnings...)
		out.Errors = append(out.Errors, res.Errors...)
		if res.IsValid() {
			output = append(output, res.Value)
		}
	}
	out.Value = output
	return out
}

// ValidateFields validates named fields in parallel, each with its own
// validator under a field-scoped forked context. Field names iterate sorted,
// and the output map holds the valid fields only. Fields without a declared
// validator, and declared validators without a field, are skipped: schema
// enforcement (missing/extra fields) belongs to Composite and Nested.
func (c *Coordinator) ValidateFields(ctx context.Context, fields map[string]any, validators map[string]check.Validator, vctx *check.Context) check.Result[any] {
	names := make([]string, 0, len(validators))
	for name, v := range validators {
		if v == nil {
			panic(fmt.Errorf("%w for field %q", ErrNilValidator, name))
		}
		if _, present := fields[name]; present {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	units := make([]unit, len(names))
	for i, name := range names {
		units[i] = unit{
			value:     fields[name],
			validator: validators[name],
			vctx:      vctx.Fork(name),
		}
	}
	results := c.run(ctx, units)

	out := check.OK[any](nil)
	out.SetMeta("run_id", uuid.New().String())
	out.SetMeta("coordinator_id", c.id.String())

	output := make(map[string]any, len(names))
	for i, res := range results {
		if res == nil {
			continue
		}
		out.Warnings = append(out.Warnings, res.Warnings...)
		out.Errors = append(out.Errors, res.Errors...)
		if res.IsValid() {
			output[names[i]] = res.Value
		}
	}
	out.Value = output
	return out
}

type unit struct {
	value     any
	validator check.Validator
	vctx      *check.Context
}

// run executes units under the admission bound. Each unit writes only its
// own result slot; a nil slot means the unit was cancelled before starting
// or its result was discarded after a fail-fast failure.
func (c *Coordinator) run(ctx context.Context, units []unit) []*check.Result[any] {
	results := make([]*check.Result[any], len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit)

	var failed atomic.Bool

	for i, u := range units {
		g.Go(func() error {
			// Admission gate: cancelled units never start.
			select {
			case <-gctx.Done():
				return nil
			default:
			}

			res := runUnit(u.validator, u.value, u.vctx)

			if c.failFast {
				// Units that finish after the first failure was observed
				// are past their point of no return; discard their results.
				if failed.Load() {
					return nil
				}
				results[i] = &res
				if !res.IsValid() {
					failed.Store(true)
					c.logger.DebugContext(gctx, "fail-fast triggered",
						slog.String("validator", u.validator.Name()),
						slog.String("path", u.vctx.Path()),
					)
					return errFailFast
				}
				return nil
			}

			results[i] = &res
			return nil
		})
	}

	// The only group error is the internal fail-fast sentinel.
	_ = g.Wait()

	return results
}
