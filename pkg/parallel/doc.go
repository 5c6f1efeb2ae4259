// Package parallel coordinates concurrent validation of independent items
// and fields under a fixed admission bound.
//
// The validators of pkg/check are synchronous and reentrant; this package
// layers scheduling on top without changing their semantics. Every unit of
// work runs under a forked validation context with its own cycle-detection
// set, so units never share mutable state.
//
// # Guarantees
//
//   - Aggregated output preserves original input order (index or field
//     name) regardless of completion order.
//   - With fail-fast off, every unit is attempted and all issues merged;
//     failed items are compacted out of the output value.
//   - With fail-fast on, the first observed failure cancels units that have
//     not started, and results of units completing afterwards are discarded
//     rather than merged. Cancellation is best-effort.
//   - A panicking validator becomes a task_error issue, never a crash.
//
// The coordinator imposes no timeouts of its own; wrap calls with a context
// deadline when needed. Validate provides the asynchronous single-value
// counterpart, returning a Future backed by a background goroutine so a
// blocking validator cannot stall the caller.
//
// # Usage
//
//	coord := parallel.New(parallel.WithLimit(4))
//	res := coord.ValidateSlice(ctx, items, itemValidator, check.NewContext())
//
//	f := parallel.Validate(ctx, slowValidator, value, check.NewContext())
//	res, err := f.AwaitWithTimeout(2 * time.Second)
package parallel
