package check

import "fmt"

// Union tries alternatives in declared order and returns the first success
// verbatim. First syntactic match wins; there is no best-match heuristic,
// which keeps resolution deterministic across runs.
type Union struct {
	name         string
	alternatives []Validator
}

// NewUnion builds a first-success-wins union. Panics if no alternatives are given.
func NewUnion(name string, alternatives ...Validator) *Union {
	mustValidators(alternatives)
	return &Union{name: name, alternatives: alternatives}
}

func (u *Union) Name() string { return u.name }

// Validate returns the first succeeding alternative's result unchanged; other
// branches' issues are not merged into a success. On total failure the result
// carries one synthetic issue followed by every branch's issues in order.
func (u *Union) Validate(value any, ctx *Context) Result[any] {
	branches := make([]Result[any], 0, len(u.alternatives))

	for _, alt := range u.alternatives {
		res := alt.Validate(value, ctx)
		if res.IsValid() {
			return res
		}
		branches = append(branches, res)
	}

	out := Fail(value, Issue{
		Message:  fmt.Sprintf("value failed all %d alternatives", len(u.alternatives)),
		Code:     CodeUnionError,
		Severity: SeverityError,
		Path:     ctx.Path(),
		Value:    value,
		Context:  map[string]any{"alternatives": len(u.alternatives)},
	})
	for _, br := range branches {
		out.Merge(br)
	}
	return out
}
