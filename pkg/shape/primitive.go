package shape

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/dmitrymomot/shapekit/pkg/check"
)

// matchPrimitive implements the scalar check. Exact family match always
// passes. Under strict mode any mismatch is fatal. Otherwise integers widen
// one-way into float without touching the value, and with coercion opted in
// a best-effort conversion is attempted, recorded as a value_coerced warning;
// a failed conversion is a hard failure.
func matchPrimitive(value any, kind PrimitiveKind, ctx *check.Context) check.Result[any] {
	actual, scalar := familyOf(value)
	if scalar && actual == kind {
		return check.OK(value)
	}

	if ctx.Strict() {
		return typeError(value, string(kind), ctx)
	}

	if kind == PrimitiveFloat && scalar && actual == PrimitiveInt {
		return check.OK(value)
	}

	if ctx.Coerce() {
		coerced, ok := coerce(value, kind)
		if !ok {
			return typeError(value, string(kind), ctx)
		}
		out := check.OK(coerced)
		out.AddIssue(check.Issue{
			Message:  fmt.Sprintf("coerced %T to %s", value, kind),
			Code:     check.CodeValueCoerced,
			Severity: check.SeverityWarning,
			Path:     ctx.Path(),
			Value:    value,
			Context:  map[string]any{"from": fmt.Sprintf("%T", value), "to": string(kind)},
		})
		return out
	}

	return typeError(value, string(kind), ctx)
}

// familyOf maps a concrete Go value onto its primitive family. bool is kept
// apart from the numeric kinds even though Go would let it convert.
func familyOf(value any) (PrimitiveKind, bool) {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Bool:
		return PrimitiveBool, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return PrimitiveInt, true
	case reflect.Float32, reflect.Float64:
		return PrimitiveFloat, true
	case reflect.String:
		return PrimitiveString, true
	default:
		return "", false
	}
}

func coerce(value any, kind PrimitiveKind) (any, bool) {
	rv := reflect.ValueOf(value)

	switch kind {
	case PrimitiveInt:
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			f := rv.Float()
			if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
				return nil, false
			}
			return int64(f), true
		case reflect.String:
			n, err := strconv.ParseInt(rv.String(), 10, 64)
			if err != nil {
				return nil, false
			}
			return n, true
		}
	case PrimitiveFloat:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(rv.Int()), true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return float64(rv.Uint()), true
		case reflect.String:
			f, err := strconv.ParseFloat(rv.String(), 64)
			if err != nil {
				return nil, false
			}
			return f, true
		}
	case PrimitiveString:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return strconv.FormatInt(rv.Int(), 10), true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return strconv.FormatUint(rv.Uint(), 10), true
		case reflect.Float32, reflect.Float64:
			return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
		case reflect.Bool:
			return strconv.FormatBool(rv.Bool()), true
		}
	case PrimitiveBool:
		if rv.Kind() == reflect.String {
			b, err := strconv.ParseBool(rv.String())
			if err != nil {
				return nil, false
			}
			return b, true
		}
	}

	return nil, false
}
