// Package shape declares immutable type descriptors and the recursive
// matcher that interprets them against already-parsed runtime values.
//
// Descriptors compose freely: Optional(Sequence(Union(Int(), String()))) is
// a valid shape. The matcher walks the descriptor and the value in lockstep,
// scoping every element and key under an indexed child context so that each
// issue carries a precise path.
//
// # Matching rules
//
//   - Any always succeeds. Null and Optional accept null values, and a
//     Union accepts null when one of its alternatives does.
//   - Union resolves to the first alternative that matches, in declared
//     order. There is no best-match scoring, so resolution is deterministic.
//   - Structural descriptors (Sequence, Set, Mapping, Tuple, Variadic) match
//     every element when the context collects all errors, and short-circuit
//     otherwise; Variadic always attempts every element.
//   - Primitive checks are exact by family. Outside strict mode integers
//     widen one-way into float, and with coercion opted in the matcher
//     attempts a best-effort conversion and records a value_coerced warning.
//
// # Usage
//
//	d := shape.Sequence(shape.Primitive(shape.PrimitiveInt))
//	res := shape.Match([]any{1, 2, "3"}, d, check.NewContext())
//	// res.IsValid() == false, one type_error at path "[2]"
//
// Use Validator to plug a descriptor into the combinators of pkg/check.
package shape
