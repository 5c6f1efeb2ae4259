package check

import "fmt"

// Validator is a named validation operation over an already-parsed value.
// Implementations must be reentrant: apart from the context's shared cycle
// set they may not mutate state observable by other calls.
type Validator interface {
	Name() string
	Validate(value any, ctx *Context) Result[any]
}

type funcValidator struct {
	name string
	fn   func(value any, ctx *Context) Result[any]
}

// Func wraps a plain function as a named Validator.
func Func(name string, fn func(value any, ctx *Context) Result[any]) Validator {
	if fn == nil {
		panic(ErrNilValidator)
	}
	return funcValidator{name: name, fn: fn}
}

func (v funcValidator) Name() string { return v.name }

func (v funcValidator) Validate(value any, ctx *Context) Result[any] {
	return v.fn(value, ctx)
}

// FromRule bridges a predicate-style rule into a Validator. A failing check
// produces one custom_validation_failed issue for the given field.
func FromRule(field string, checkFn func(value any) bool, message string) Validator {
	return Func("rule:"+field, func(value any, ctx *Context) Result[any] {
		if checkFn(value) {
			return OK(value)
		}
		return Fail(value, Issue{
			Message:  message,
			Field:    field,
			Code:     CodeCustomFailed,
			Severity: SeverityError,
			Path:     ctx.Path(),
			Value:    value,
		})
	})
}

func mustValidators(vs []Validator) {
	if len(vs) == 0 {
		panic(ErrNoValidators)
	}
	for i, v := range vs {
		if v == nil {
			panic(fmt.Errorf("%w at index %d", ErrNilValidator, i))
		}
	}
}
