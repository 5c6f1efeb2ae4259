// Package check provides the core building blocks of the structural
// validation engine: per-branch validation contexts, path-qualified issues,
// aggregating results, the Validator abstraction, and a set of composable
// combinators (chain, union, transform, composite, conditional, cached,
// lazy).
//
// The package operates purely in-process on already-parsed values (mappings,
// sequences, scalars). It performs no I/O and emits machine codes plus
// structured parameters instead of localized text; translating issues to a
// user-facing or wire format is entirely the caller's concern.
//
// # Architecture
//
// Core building blocks:
//   - Context   – per-branch state: path, depth, strictness flags, and the
//     cycle-detection set shared across all branches of one call
//   - Issue     – one problem with a machine code, severity, and path
//   - Result    – outcome carrier; validity is derived from its error list
//   - Validator – named operation (value, context) -> Result
//
// Each combinator lives in its own file and composes Validators without
// hidden global state, so every validator is reentrant and safe to share
// across goroutines as long as each top-level call owns its Context.
//
// # Usage
//
//	v := check.NewComposite("user", map[string]check.Validator{
//	    "name": check.FromRule("name", func(v any) bool {
//	        s, ok := v.(string)
//	        return ok && s != ""
//	    }, "must be a non-empty string"),
//	}, check.WithRequireAll())
//
//	res := v.Validate(input, check.NewContext(check.WithMaxDepth(10)))
//	if !res.IsValid() {
//	    for _, iss := range res.Errors {
//	        // iss.Code, iss.Path, iss.Context carry the machine-readable details
//	    }
//	}
//
// # Error Handling
//
// Every validation failure is carried as an Issue inside a Result, never as
// a returned error or panic. The exception is genuine misconfiguration
// (nil validators, non-positive max depth or cache capacity), which panics
// at construction time. Result.Err bridges to the error interface via the
// Issues type for callers that prefer error returns.
package check
