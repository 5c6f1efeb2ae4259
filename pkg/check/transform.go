package check

// Transform delegates to an inner validator, then projects the value on
// success. The projection may itself fail.
type Transform struct {
	name  string
	inner Validator
	fn    func(value any) (any, error)
}

// NewTransform wraps inner with a post-success projection.
func NewTransform(name string, inner Validator, fn func(value any) (any, error)) *Transform {
	if inner == nil {
		panic(ErrNilValidator)
	}
	if fn == nil {
		panic(ErrNilTransform)
	}
	return &Transform{name: name, inner: inner, fn: fn}
}

func (t *Transform) Name() string { return t.name }

// Validate runs the inner validator; on success the value is projected. A
// failing projection yields one transform_error issue carrying the
// pre-transform value. Warnings pass through either way.
func (t *Transform) Validate(value any, ctx *Context) Result[any] {
	res := t.inner.Validate(value, ctx)
	if !res.IsValid() {
		return res
	}

	projected, err := t.fn(res.Value)
	if err != nil {
		out := Fail(res.Value, Issue{
			Message:  "transformation failed: " + err.Error(),
			Code:     CodeTransformError,
			Severity: SeverityError,
			Path:     ctx.Path(),
			Value:    res.Value,
			Context:  map[string]any{"error": err.Error()},
		})
		out.Warnings = append(out.Warnings, res.Warnings...)
		return out
	}

	res.Value = projected
	return res
}
