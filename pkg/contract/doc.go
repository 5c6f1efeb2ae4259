// Package contract wraps operations with explicit validate-before and
// validate-after checks. It is the plain-function replacement for
// decorator-style parameter and return-value contracts: no code generation,
// no reflection over signatures, just wrappers around an Op.
//
//	createUser := contract.WithPrecondition(userValidator,
//	    func(ctx context.Context, in any) (User, error) { ... })
//
// Contract violations surface as wrapped check.Issues errors, so callers can
// recover the individual issues with errors.As.
package contract
