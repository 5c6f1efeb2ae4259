package shape

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/dmitrymomot/shapekit/pkg/check"
)

// Match interprets a descriptor against a value under the given context and
// returns a result carrying the (possibly coerced) value plus every issue
// found on this branch.
//
// Dispatch follows a fixed priority: Any, null handling, Optional unwrap,
// Literal, Union (first syntactic match wins), structural descriptors with
// index/key-scoped child contexts, then the scalar checks.
func Match(value any, d Descriptor, ctx *check.Context) check.Result[any] {
	mustDescriptor(d)

	if ctx.DepthExceeded() {
		return check.Fail(value, check.Issue{
			Message:  fmt.Sprintf("maximum depth %d exceeded", ctx.MaxDepth()),
			Code:     check.CodeMaxDepthExceeded,
			Severity: check.SeverityError,
			Path:     ctx.Path(),
			Context:  map[string]any{"max_depth": ctx.MaxDepth(), "depth": ctx.Depth()},
		})
	}

	if d.Kind() == KindAny {
		return check.OK(value)
	}

	if isNull(value) {
		switch desc := d.(type) {
		case nullDesc, optionalDesc:
			return check.OK(value)
		case unionDesc:
			// A union admits null when one of its alternatives does.
			return matchUnion(value, desc, ctx)
		default:
			return check.Fail(value, check.Issue{
				Message:  "null is not allowed here, expected " + d.String(),
				Code:     check.CodeNullNotAllowed,
				Severity: check.SeverityError,
				Path:     ctx.Path(),
				Context:  map[string]any{"expected": d.String()},
			})
		}
	}

	switch desc := d.(type) {
	case optionalDesc:
		return Match(value, desc.inner, ctx)
	case literalDesc:
		return matchLiteral(value, desc, ctx)
	case unionDesc:
		return matchUnion(value, desc, ctx)
	case sequenceDesc:
		return matchSequence(value, desc, ctx)
	case setDesc:
		return matchSet(value, desc, ctx)
	case mappingDesc:
		return matchMapping(value, desc, ctx)
	case tupleDesc:
		return matchTuple(value, desc, ctx)
	case variadicDesc:
		return matchVariadic(value, desc, ctx)
	case primitiveDesc:
		return matchPrimitive(value, desc.kind, ctx)
	case callableDesc:
		if reflect.ValueOf(value).Kind() == reflect.Func {
			return check.OK(value)
		}
		return typeError(value, "callable", ctx)
	case typeDesc:
		return matchType(value, desc, ctx)
	default:
		// Raw membership test against the descriptor's declared kind covers
		// external Descriptor implementations.
		if string(d.Kind()) == reflect.ValueOf(value).Kind().String() {
			return check.OK(value)
		}
		return typeError(value, d.String(), ctx)
	}
}

// Validator exposes a descriptor as a named check.Validator.
func Validator(name string, d Descriptor) check.Validator {
	mustDescriptor(d)
	return check.Func(name, func(value any, ctx *check.Context) check.Result[any] {
		return Match(value, d, ctx)
	})
}

func matchLiteral(value any, d literalDesc, ctx *check.Context) check.Result[any] {
	for _, allowed := range d.values {
		if reflect.DeepEqual(value, allowed) {
			return check.OK(value)
		}
	}
	return check.Fail(value, check.Issue{
		Message:  fmt.Sprintf("value %v is not one of the allowed literals", value),
		Code:     check.CodeLiteralError,
		Severity: check.SeverityError,
		Path:     ctx.Path(),
		Value:    value,
		Context:  map[string]any{"allowed": d.values},
	})
}

// matchUnion tries alternatives in declared order and returns the first
// success verbatim. Total failure reports every alternative's expected kind
// in one issue; branch issues are not replayed, the matcher's union is a
// shape-level membership test.
func matchUnion(value any, d unionDesc, ctx *check.Context) check.Result[any] {
	for _, alt := range d.alternatives {
		if res := Match(value, alt, ctx); res.IsValid() {
			return res
		}
	}

	expected := make([]string, len(d.alternatives))
	for i, alt := range d.alternatives {
		expected[i] = alt.String()
	}
	return check.Fail(value, check.Issue{
		Message:  fmt.Sprintf("value matched none of %d union alternatives", len(d.alternatives)),
		Code:     check.CodeUnionError,
		Severity: check.SeverityError,
		Path:     ctx.Path(),
		Value:    value,
		Context:  map[string]any{"expected": expected},
	})
}

func matchSequence(value any, d sequenceDesc, ctx *check.Context) check.Result[any] {
	elems, ok := elementsOf(value)
	if !ok {
		return typeError(value, d.String(), ctx)
	}

	out := check.OK[any](nil)
	output := make([]any, len(elems))

	for i, elem := range elems {
		output[i] = elem
		res := Match(elem, d.item, ctx.Child(fmt.Sprintf("[%d]", i)))
		out.Warnings = append(out.Warnings, res.Warnings...)
		if res.IsValid() {
			output[i] = res.Value
			continue
		}
		out.Errors = append(out.Errors, res.Errors...)
		if !ctx.CollectAll() {
			break
		}
	}

	out.Value = output
	return out
}

func matchSet(value any, d setDesc, ctx *check.Context) check.Result[any] {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map {
		return typeError(value, d.String(), ctx)
	}

	out := check.OK[any](nil)
	output := make(map[any]struct{}, rv.Len())

	for _, key := range sortedMapKeys(rv) {
		member := key.Interface()
		res := Match(member, d.item, ctx.Child(fmt.Sprintf("{%v}", member)))
		out.Warnings = append(out.Warnings, res.Warnings...)
		if res.IsValid() {
			output[res.Value] = struct{}{}
			continue
		}
		out.Errors = append(out.Errors, res.Errors...)
		if !ctx.CollectAll() {
			break
		}
	}

	out.Value = output
	return out
}

// matchMapping checks every key/value pair; a pair appears in the output map
// only when both its key and its value match independently.
func matchMapping(value any, d mappingDesc, ctx *check.Context) check.Result[any] {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map {
		return typeError(value, d.String(), ctx)
	}

	out := check.OK[any](nil)
	output := make(map[any]any, rv.Len())

	for _, key := range sortedMapKeys(rv) {
		k := key.Interface()
		v := rv.MapIndex(key).Interface()

		keyRes := Match(k, d.key, ctx.Child(fmt.Sprintf("key(%v)", k)))
		valRes := Match(v, d.value, ctx.Child(fmt.Sprintf("%v", k)))
		out.Warnings = append(out.Warnings, keyRes.Warnings...)
		out.Warnings = append(out.Warnings, valRes.Warnings...)

		if keyRes.IsValid() && valRes.IsValid() {
			output[keyRes.Value] = valRes.Value
			continue
		}
		out.Errors = append(out.Errors, keyRes.Errors...)
		out.Errors = append(out.Errors, valRes.Errors...)
		if !ctx.CollectAll() {
			break
		}
	}

	out.Value = output
	return out
}

func matchTuple(value any, d tupleDesc, ctx *check.Context) check.Result[any] {
	elems, ok := elementsOf(value)
	if !ok {
		return typeError(value, d.String(), ctx)
	}

	if len(elems) != len(d.items) {
		return check.Fail(value, check.Issue{
			Message:  fmt.Sprintf("expected %d elements, got %d", len(d.items), len(elems)),
			Code:     check.CodeArityError,
			Severity: check.SeverityError,
			Path:     ctx.Path(),
			Value:    value,
			Context:  map[string]any{"expected": len(d.items), "actual": len(elems)},
		})
	}

	out := check.OK[any](nil)
	output := make([]any, len(elems))

	for i, elem := range elems {
		output[i] = elem
		res := Match(elem, d.items[i], ctx.Child(fmt.Sprintf("[%d]", i)))
		out.Warnings = append(out.Warnings, res.Warnings...)
		if res.IsValid() {
			output[i] = res.Value
			continue
		}
		out.Errors = append(out.Errors, res.Errors...)
		if !ctx.CollectAll() {
			break
		}
	}

	out.Value = output
	return out
}

// matchVariadic accepts any arity and always attempts every element; a
// failing index never aborts the remaining ones, collect-all or not.
func matchVariadic(value any, d variadicDesc, ctx *check.Context) check.Result[any] {
	elems, ok := elementsOf(value)
	if !ok {
		return typeError(value, d.String(), ctx)
	}

	out := check.OK[any](nil)
	output := make([]any, len(elems))

	for i, elem := range elems {
		output[i] = elem
		res := Match(elem, d.item, ctx.Child(fmt.Sprintf("[%d]", i)))
		out.Warnings = append(out.Warnings, res.Warnings...)
		if res.IsValid() {
			output[i] = res.Value
			continue
		}
		out.Errors = append(out.Errors, res.Errors...)
	}

	out.Value = output
	return out
}

func matchType(value any, d typeDesc, ctx *check.Context) check.Result[any] {
	t, ok := value.(reflect.Type)
	if !ok {
		return typeError(value, d.String(), ctx)
	}
	if d.bound != nil && !t.AssignableTo(d.bound) {
		return check.Fail(value, check.Issue{
			Message:  fmt.Sprintf("type %s is not assignable to %s", t, d.bound),
			Code:     check.CodeTypeError,
			Severity: check.SeverityError,
			Path:     ctx.Path(),
			Value:    value,
			Context:  map[string]any{"expected": d.bound.String(), "actual": t.String()},
		})
	}
	return check.OK(value)
}

func typeError(value any, expected string, ctx *check.Context) check.Result[any] {
	return check.Fail(value, check.Issue{
		Message:  fmt.Sprintf("expected %s, got %T", expected, value),
		Code:     check.CodeTypeError,
		Severity: check.SeverityError,
		Path:     ctx.Path(),
		Value:    value,
		Context:  map[string]any{"expected": expected, "actual": fmt.Sprintf("%T", value)},
	})
}

// isNull treats untyped nil and nil-valued reference kinds as null.
func isNull(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// elementsOf flattens a slice or array into []any. Strings are scalars, not
// sequences.
func elementsOf(value any) ([]any, bool) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, true
}

// sortedMapKeys orders keys by their printed form so mapping and set issues
// are emitted deterministically.
func sortedMapKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprintf("%v", keys[i].Interface()) < fmt.Sprintf("%v", keys[j].Interface())
	})
	return keys
}
