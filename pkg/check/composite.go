package check

import (
	"fmt"
	"reflect"
	"sort"
)

// Composite validates a mapping input against a fixed table of named field
// validators. It replaces reflection-discovered schema classes with an
// explicit, data-driven (field name -> validator) table built by the caller.
type Composite struct {
	name       string
	fields     map[string]Validator
	order      []string
	requireAll bool
	allowExtra bool
}

// CompositeOption configures a Composite validator.
type CompositeOption func(*Composite)

// WithRequireAll makes every declared field mandatory; each missing field
// yields a missing_field issue.
func WithRequireAll() CompositeOption {
	return func(c *Composite) { c.requireAll = true }
}

// WithAllowExtra passes unknown fields through to the output with a warning
// instead of rejecting them.
func WithAllowExtra() CompositeOption {
	return func(c *Composite) { c.allowExtra = true }
}

// NewComposite builds a fixed-schema mapping validator. Field iteration is
// name-sorted so issue order is deterministic.
func NewComposite(name string, fields map[string]Validator, opts ...CompositeOption) *Composite {
	if len(fields) == 0 {
		panic(ErrNoValidators)
	}
	order := make([]string, 0, len(fields))
	for f, v := range fields {
		if v == nil {
			panic(fmt.Errorf("%w for field %q", ErrNilValidator, f))
		}
		order = append(order, f)
	}
	sort.Strings(order)

	c := &Composite{name: name, fields: fields, order: order}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Composite) Name() string { return c.name }

// Validate checks a mapping value field by field. Declared fields validate
// under a field-scoped child context; only fields whose sub-result is valid
// populate the output. Unknown fields warn and pass through when extras are
// allowed, otherwise they error and are dropped.
func (c *Composite) Validate(value any, ctx *Context) Result[any] {
	input, ok := asStringMap(value)
	if !ok {
		return Fail(value, Issue{
			Message:  fmt.Sprintf("expected a mapping, got %T", value),
			Code:     CodeTypeError,
			Severity: SeverityError,
			Path:     ctx.Path(),
			Value:    value,
		})
	}

	out := OK[any](nil)
	output := make(map[string]any, len(input))

	for _, field := range c.order {
		raw, present := input[field]
		if !present {
			if c.requireAll {
				out.AddIssue(Issue{
					Message:  fmt.Sprintf("required field %q is missing", field),
					Field:    field,
					Code:     CodeMissingField,
					Severity: SeverityError,
					Path:     ctx.Path(),
				})
				if !ctx.CollectAll() {
					break
				}
			}
			continue
		}

		fieldCtx := ctx.Child(field)
		res := c.fields[field].Validate(raw, fieldCtx)
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
		for _, field := range sortedKeys(input) {
			if _, declared := c.fields[field]; declared {
				continue
			}
			iss := Issue{
				Message:  fmt.Sprintf("unknown field %q", field),
				Field:    field,
				Code:     CodeExtraField,
				Severity: SeverityError,
				Path:     ctx.Path(),
				Value:    input[field],
			}
			if c.allowExtra {
				iss.Severity = SeverityWarning
				output[field] = input[field]
			}
			out.AddIssue(iss)
		}
	}

	out.Value = output
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// asStringMap accepts map[string]any directly and converts any other
// string-keyed map via reflection.
func asStringMap(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}
