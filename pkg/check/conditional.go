package check

// Conditional branches between two validators based on a predicate over the
// value and its context.
type Conditional struct {
	name      string
	predicate func(value any, ctx *Context) bool
	whenTrue  Validator
	whenFalse Validator
}

// NewConditional builds a predicate-branching validator. whenFalse may be
// nil, in which case a false predicate succeeds trivially.
func NewConditional(name string, predicate func(value any, ctx *Context) bool, whenTrue, whenFalse Validator) *Conditional {
	if predicate == nil {
		panic(ErrNilPredicate)
	}
	if whenTrue == nil {
		panic(ErrNilValidator)
	}
	return &Conditional{name: name, predicate: predicate, whenTrue: whenTrue, whenFalse: whenFalse}
}

func (c *Conditional) Name() string { return c.name }

func (c *Conditional) Validate(value any, ctx *Context) Result[any] {
	if c.predicate(value, ctx) {
		return c.whenTrue.Validate(value, ctx)
	}
	if c.whenFalse == nil {
		return OK(value)
	}
	return c.whenFalse.Validate(value, ctx)
}
