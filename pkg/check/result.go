package check

// Result carries the outcome of one validation pass: the (possibly coerced)
// value, ordered error and warning issues, and free-form metadata.
//
// Validity is derived from the error list, so the invariant "invalid iff at
// least one error issue" holds by construction: adding an error-severity
// issue flips validity, warnings never do.
type Result[T any] struct {
	Value    T
	Errors   Issues
	Warnings Issues
	Metadata map[string]any
}

// OK returns a valid result carrying value.
func OK[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

// Fail returns an invalid result carrying value and the given error issues.
func Fail[T any](value T, issues ...Issue) Result[T] {
	r := Result[T]{Value: value}
	for _, iss := range issues {
		r.AddIssue(iss)
	}
	return r
}

func (r Result[T]) IsValid() bool {
	return len(r.Errors) == 0
}

// AddIssue records an issue, routing by severity: warnings go to the warning
// list only, everything else to the error list.
func (r *Result[T]) AddIssue(iss Issue) {
	if iss.Severity == SeverityWarning {
		r.Warnings = append(r.Warnings, iss)
		return
	}
	r.Errors = append(r.Errors, iss)
}

// Merge folds another result's issues and metadata into r, preserving order
// and performing no deduplication. The other result's value is discarded;
// failure propagates through the appended error issues.
func (r *Result[T]) Merge(other Result[T]) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	for k, v := range other.Metadata {
		r.SetMeta(k, v)
	}
}

// SetMeta records a metadata entry, allocating the map on first use.
func (r *Result[T]) SetMeta(key string, value any) {
	if r.Metadata == nil {
		r.Metadata = make(map[string]any)
	}
	r.Metadata[key] = value
}

// Err returns nil for a valid result, or the error issues as an Issues error.
func (r Result[T]) Err() error {
	if r.IsValid() {
		return nil
	}
	return r.Errors
}
