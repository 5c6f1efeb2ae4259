package check

// Chained pipes a value through validators in order, each stage receiving
// the previous stage's output.
type Chained struct {
	name   string
	stages []Validator
}

// NewChained builds a sequential pipeline. Panics if no stages are given.
func NewChained(name string, stages ...Validator) *Chained {
	mustValidators(stages)
	return &Chained{name: name, stages: stages}
}

func (c *Chained) Name() string { return c.name }

// Validate runs stages in order. On a stage failure it stops immediately when
// the context is not in collect-all mode; otherwise it keeps going with the
// last valid value, so later stages never see a failed stage's output.
func (c *Chained) Validate(value any, ctx *Context) Result[any] {
	out := OK(value)
	current := value

	for _, stage := range c.stages {
		res := stage.Validate(current, ctx)
		out.Warnings = append(out.Warnings, res.Warnings...)

		if res.IsValid() {
			current = res.Value
			continue
		}

		out.Errors = append(out.Errors, res.Errors...)
		if !ctx.CollectAll() {
			break
		}
	}

	out.Value = current
	return out
}
