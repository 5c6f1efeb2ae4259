package structural

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/dmitrymomot/shapekit/pkg/check"
)

// DepthPolicy selects what happens when a recursive walk descends past the
// context's maximum depth.
type DepthPolicy int

const (
	// DepthFail turns the boundary into a hard max_depth_exceeded failure.
	DepthFail DepthPolicy = iota
	// DepthTruncate keeps the subtree unvalidated and records one
	// depth_truncated warning at the boundary.
	DepthTruncate
	// DepthWarn records one warning at the boundary and keeps walking.
	DepthWarn
)

// Recursive walks an open-ended tree of mappings and ordered collections
// with no fixed schema, applying a leaf validator to every terminal value.
//
// The cycle set is shared across sibling recursion, so a structurally shared
// (diamond) substructure reached via a second path reports circular_reference
// instead of being validated again, even when the structure is acyclic. This
// over-approximation is deliberate and pinned by tests.
type Recursive struct {
	name   string
	leaf   check.Validator
	policy DepthPolicy
}

// RecursiveOption configures a Recursive validator.
type RecursiveOption func(*Recursive)

// WithDepthPolicy selects the behavior at the maximum-depth boundary.
// The default is DepthFail.
func WithDepthPolicy(p DepthPolicy) RecursiveOption {
	return func(r *Recursive) { r.policy = p }
}

// NewRecursive builds an open-ended tree validator around a leaf validator.
func NewRecursive(name string, leaf check.Validator, opts ...RecursiveOption) *Recursive {
	if leaf == nil {
		panic(ErrNilValidator)
	}
	r := &Recursive{name: name, leaf: leaf}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recursive) Name() string { return r.name }

func (r *Recursive) Validate(value any, ctx *check.Context) check.Result[any] {
	return r.walk(value, ctx)
}

func (r *Recursive) walk(value any, ctx *check.Context) check.Result[any] {
	if ctx.DepthExceeded() {
		switch r.policy {
		case DepthTruncate:
			out := check.OK(value)
			out.AddIssue(check.Issue{
				Message:  fmt.Sprintf("subtree truncated at depth %d", ctx.MaxDepth()),
				Code:     check.CodeDepthTruncated,
				Severity: check.SeverityWarning,
				Path:     ctx.Path(),
				Context:  map[string]any{"max_depth": ctx.MaxDepth()},
			})
			return out
		case DepthWarn:
			// Warn once at the boundary, then keep descending.
			if ctx.Depth() == ctx.MaxDepth()+1 {
				out := r.descend(value, ctx)
				warn := check.Issue{
					Message:  fmt.Sprintf("depth %d exceeds maximum %d", ctx.Depth(), ctx.MaxDepth()),
					Code:     check.CodeMaxDepthExceeded,
					Severity: check.SeverityWarning,
					Path:     ctx.Path(),
					Context:  map[string]any{"max_depth": ctx.MaxDepth(), "depth": ctx.Depth()},
				}
				out.Warnings = append(check.Issues{warn}, out.Warnings...)
				return out
			}
		default:
			return check.Fail(value, check.Issue{
				Message:  fmt.Sprintf("maximum depth %d exceeded", ctx.MaxDepth()),
				Code:     check.CodeMaxDepthExceeded,
				Severity: check.SeverityError,
				Path:     ctx.Path(),
				Context:  map[string]any{"max_depth": ctx.MaxDepth(), "depth": ctx.Depth()},
			})
		}
	}

	return r.descend(value, ctx)
}

func (r *Recursive) descend(value any, ctx *check.Context) check.Result[any] {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Map:
		if ctx.HasSeen(value) {
			return circular(value, ctx)
		}
		out := check.OK[any](nil)
		output := make(map[any]any, rv.Len())
		for _, key := range sortedKeys(rv) {
			k := key.Interface()
			res := r.walk(rv.MapIndex(key).Interface(), ctx.Child(fmt.Sprintf("%v", k)))
			out.Warnings = append(out.Warnings, res.Warnings...)
			out.Errors = append(out.Errors, res.Errors...)
			output[k] = res.Value
			if !res.IsValid() && !ctx.CollectAll() {
				break
			}
		}
		out.Value = output
		return out

	case reflect.Slice, reflect.Array:
		if ctx.HasSeen(value) {
			return circular(value, ctx)
		}
		out := check.OK[any](nil)
		output := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			res := r.walk(rv.Index(i).Interface(), ctx.Child(fmt.Sprintf("[%d]", i)))
			out.Warnings = append(out.Warnings, res.Warnings...)
			out.Errors = append(out.Errors, res.Errors...)
			output[i] = res.Value
			if !res.IsValid() && !ctx.CollectAll() {
				break
			}
		}
		out.Value = output
		return out

	default:
		return r.leaf.Validate(value, ctx)
	}
}

func circular(value any, ctx *check.Context) check.Result[any] {
	return check.Fail(value, check.Issue{
		Message:  "circular reference detected",
		Code:     check.CodeCircularReference,
		Severity: check.SeverityError,
		Path:     ctx.Path(),
	})
}

func sortedKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprintf("%v", keys[i].Interface()) < fmt.Sprintf("%v", keys[j].Interface())
	})
	return keys
}
