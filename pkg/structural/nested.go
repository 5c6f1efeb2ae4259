package structural

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/dmitrymomot/shapekit/pkg/check"
)

// Nested validates arbitrary objects against a fixed field schema. It has
// the same field contract as check.Composite but accepts non-mapping inputs
// by reading them through an attribute-to-mapping adapter, and it guards
// against circular references before iterating fields.
type Nested struct {
	name       string
	fields     map[string]check.Validator
	order      []string
	requireAll bool
	allowExtra bool
}

// NestedOption configures a Nested validator.
type NestedOption func(*Nested)

// WithRequireAll makes every declared field mandatory.
func WithRequireAll() NestedOption {
	return func(n *Nested) { n.requireAll = true }
}

// WithAllowExtra passes unknown fields through with a warning instead of
// rejecting them.
func WithAllowExtra() NestedOption {
	return func(n *Nested) { n.allowExtra = true }
}

// NewNested builds a fixed-schema object validator. Fields iterate in sorted
// name order so issue order is deterministic.
func NewNested(name string, fields map[string]check.Validator, opts ...NestedOption) *Nested {
	if len(fields) == 0 {
		panic(ErrNoFields)
	}
	order := make([]string, 0, len(fields))
	for f, v := range fields {
		if v == nil {
			panic(fmt.Errorf("%w for field %q", ErrNilValidator, f))
		}
		order = append(order, f)
	}
	sort.Strings(order)

	n := &Nested{name: name, fields: fields, order: order}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Nested) Name() string { return n.name }

// Validate checks the object's fields. A value already registered in the
// context's cycle set aborts this branch with a circular_reference issue
// without affecting sibling branches.
func (n *Nested) Validate(value any, ctx *check.Context) check.Result[any] {
	if ctx.HasSeen(value) {
		return check.Fail(value, check.Issue{
			Message:  "circular reference detected",
			Code:     check.CodeCircularReference,
			Severity: check.SeverityError,
			Path:     ctx.Path(),
		})
	}

	if ctx.DepthExceeded() {
		return check.Fail(value, check.Issue{
			Message:  fmt.Sprintf("maximum depth %d exceeded", ctx.MaxDepth()),
			Code:     check.CodeMaxDepthExceeded,
			Severity: check.SeverityError,
			Path:     ctx.Path(),
			Context:  map[string]any{"max_depth": ctx.MaxDepth(), "depth": ctx.Depth()},
		})
	}

	input, ok := fieldMap(value)
	if !ok {
		return check.Fail(value, check.Issue{
			Message:  fmt.Sprintf("expected a mapping or struct, got %T", value),
			Code:     check.CodeTypeError,
			Severity: check.SeverityError,
			Path:     ctx.Path(),
			Value:    value,
		})
	}

	out := check.OK[any](nil)
	output := make(map[string]any, len(input))

	for _, field := range n.order {
		raw, present := input[field]
		if !present {
			if n.requireAll {
				out.AddIssue(check.Issue{
					Message:  fmt.Sprintf("required field %q is missing", field),
					Field:    field,
					Code:     check.CodeMissingField,
					Severity: check.SeverityError,
					Path:     ctx.Path(),
				})
				if !ctx.CollectAll() {
					break
				}
			}
			continue
		}

		res := n.fields[field].Validate(raw, ctx.Child(field))
		out.Warnings = append(out.Warnings, res.Warnings...)
		if res.IsValid() {
			output[field] = res.Value
			continue
		}
		out.Errors = append(out.Errors, res.Errors...)
		if !ctx.CollectAll() {
			break
		}
	}

	// Without collect-all a declared-field failure ends the pass before
	// unknown fields are inspected.
	if ctx.CollectAll() || out.IsValid() {
		extras := make([]string, 0)
		for field := range input {
			if _, declared := n.fields[field]; !declared {
				extras = append(extras, field)
			}
		}
		sort.Strings(extras)
		for _, field := range extras {
			iss := check.Issue{
				Message:  fmt.Sprintf("unknown field %q", field),
				Field:    field,
				Code:     check.CodeExtraField,
				Severity: check.SeverityError,
				Path:     ctx.Path(),
				Value:    input[field],
			}
			if n.allowExtra {
				iss.Severity = check.SeverityWarning
				output[field] = input[field]
			}
			out.AddIssue(iss)
		}
	}

	out.Value = output
	return out
}

// fieldMap adapts the input to a name->value view: string-keyed maps are
// read directly, structs (or pointers to structs) expose their exported
// fields under the json tag name when present, the field name otherwise.
func fieldMap(value any) (map[string]any, bool) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return m, true
	case reflect.Struct:
		rt := rv.Type()
		m := make(map[string]any, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if !f.IsExported() {
				continue
			}
			name := f.Name
			if tag, ok := f.Tag.Lookup("json"); ok {
				tag, _, _ = strings.Cut(tag, ",")
				if tag == "-" {
					continue
				}
				if tag != "" {
					name = tag
				}
			}
			m[name] = rv.Field(i).Interface()
		}
		return m, true
	default:
		return nil, false
	}
}
