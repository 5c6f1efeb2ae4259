package shape

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind identifies a descriptor variant.
type Kind string

const (
	KindAny       Kind = "any"
	KindNull      Kind = "null"
	KindOptional  Kind = "optional"
	KindLiteral   Kind = "literal"
	KindUnion     Kind = "union"
	KindPrimitive Kind = "primitive"
	KindSequence  Kind = "sequence"
	KindSet       Kind = "set"
	KindMapping   Kind = "mapping"
	KindTuple     Kind = "tuple"
	KindVariadic  Kind = "variadic"
	KindCallable  Kind = "callable"
	KindType      Kind = "type"
)

// Descriptor is an immutable, recursively composable specification of an
// expected shape. Descriptors carry no validation state and are safe to
// share and reuse across goroutines.
type Descriptor interface {
	Kind() Kind
	String() string
}

// PrimitiveKind names a scalar type family.
type PrimitiveKind string

const (
	PrimitiveBool   PrimitiveKind = "bool"
	PrimitiveInt    PrimitiveKind = "integer"
	PrimitiveFloat  PrimitiveKind = "float"
	PrimitiveString PrimitiveKind = "string"
)

type anyDesc struct{}

func (anyDesc) Kind() Kind     { return KindAny }
func (anyDesc) String() string { return "any" }

// Any matches every value, including null.
func Any() Descriptor { return anyDesc{} }

type nullDesc struct{}

func (nullDesc) Kind() Kind     { return KindNull }
func (nullDesc) String() string { return "null" }

// Null matches only null values.
func Null() Descriptor { return nullDesc{} }

type optionalDesc struct{ inner Descriptor }

func (optionalDesc) Kind() Kind       { return KindOptional }
func (d optionalDesc) String() string { return "optional(" + d.inner.String() + ")" }

// Optional matches null or whatever the inner descriptor matches.
func Optional(inner Descriptor) Descriptor {
	mustDescriptor(inner)
	return optionalDesc{inner: inner}
}

type literalDesc struct{ values []any }

func (literalDesc) Kind() Kind { return KindLiteral }
func (d literalDesc) String() string {
	parts := make([]string, len(d.values))
	for i, v := range d.values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "literal(" + strings.Join(parts, ", ") + ")"
}

// Literal matches values equal to one of the allowed members.
func Literal(values ...any) Descriptor {
	if len(values) == 0 {
		panic(ErrEmptyLiteral)
	}
	vs := make([]any, len(values))
	copy(vs, values)
	return literalDesc{values: vs}
}

type unionDesc struct{ alternatives []Descriptor }

func (unionDesc) Kind() Kind { return KindUnion }
func (d unionDesc) String() string {
	parts := make([]string, len(d.alternatives))
	for i, a := range d.alternatives {
		parts[i] = a.String()
	}
	return "union(" + strings.Join(parts, " | ") + ")"
}

// Union matches a value against alternatives in declared order; the first
// syntactic match wins.
func Union(alternatives ...Descriptor) Descriptor {
	if len(alternatives) == 0 {
		panic(ErrEmptyUnion)
	}
	for _, a := range alternatives {
		mustDescriptor(a)
	}
	as := make([]Descriptor, len(alternatives))
	copy(as, alternatives)
	return unionDesc{alternatives: as}
}

type primitiveDesc struct{ kind PrimitiveKind }

func (primitiveDesc) Kind() Kind       { return KindPrimitive }
func (d primitiveDesc) String() string { return string(d.kind) }

// Primitive matches a scalar of the given type family.
func Primitive(kind PrimitiveKind) Descriptor { return primitiveDesc{kind: kind} }

// Bool matches boolean scalars.
func Bool() Descriptor { return Primitive(PrimitiveBool) }

// Int matches integer scalars of any width or signedness.
func Int() Descriptor { return Primitive(PrimitiveInt) }

// Float matches floating-point scalars; integers widen one-way unless strict.
func Float() Descriptor { return Primitive(PrimitiveFloat) }

// String matches string scalars.
func String() Descriptor { return Primitive(PrimitiveString) }

type sequenceDesc struct{ item Descriptor }

func (sequenceDesc) Kind() Kind       { return KindSequence }
func (d sequenceDesc) String() string { return "sequence(" + d.item.String() + ")" }

// Sequence matches an ordered collection (slice or array) whose every
// element matches item. Order is preserved in the output.
func Sequence(item Descriptor) Descriptor {
	mustDescriptor(item)
	return sequenceDesc{item: item}
}

type setDesc struct{ item Descriptor }

func (setDesc) Kind() Kind       { return KindSet }
func (d setDesc) String() string { return "set(" + d.item.String() + ")" }

// Set matches an unordered unique collection, represented as a map whose
// keys are the members and whose values are ignored (map[T]struct{} or
// map[T]bool both work).
func Set(item Descriptor) Descriptor {
	mustDescriptor(item)
	return setDesc{item: item}
}

type mappingDesc struct{ key, value Descriptor }

func (mappingDesc) Kind() Kind { return KindMapping }
func (d mappingDesc) String() string {
	return "mapping(" + d.key.String() + " -> " + d.value.String() + ")"
}

// Mapping matches a map whose every key matches key and every value matches
// value; a pair is retained only when both succeed.
func Mapping(key, value Descriptor) Descriptor {
	mustDescriptor(key)
	mustDescriptor(value)
	return mappingDesc{key: key, value: value}
}

type tupleDesc struct{ items []Descriptor }

func (tupleDesc) Kind() Kind { return KindTuple }
func (d tupleDesc) String() string {
	parts := make([]string, len(d.items))
	for i, it := range d.items {
		parts[i] = it.String()
	}
	return "tuple(" + strings.Join(parts, ", ") + ")"
}

// Tuple matches a fixed-arity ordered collection, each position against its
// own descriptor. Arity mismatch is a hard failure.
func Tuple(items ...Descriptor) Descriptor {
	if len(items) == 0 {
		panic(ErrEmptyTuple)
	}
	for _, it := range items {
		mustDescriptor(it)
	}
	is := make([]Descriptor, len(items))
	copy(is, items)
	return tupleDesc{items: is}
}

type variadicDesc struct{ item Descriptor }

func (variadicDesc) Kind() Kind       { return KindVariadic }
func (d variadicDesc) String() string { return "variadic(" + d.item.String() + ")" }

// Variadic matches an ordered collection of any arity, every element against
// one descriptor. A failing index never aborts the remaining elements.
func Variadic(item Descriptor) Descriptor {
	mustDescriptor(item)
	return variadicDesc{item: item}
}

type callableDesc struct{}

func (callableDesc) Kind() Kind     { return KindCallable }
func (callableDesc) String() string { return "callable" }

// Callable matches any invokable value; signatures are not inspected.
func Callable() Descriptor { return callableDesc{} }

type typeDesc struct{ bound reflect.Type }

func (typeDesc) Kind() Kind { return KindType }
func (d typeDesc) String() string {
	if d.bound == nil {
		return "type"
	}
	return "type<" + d.bound.String() + ">"
}

// TypeValue matches a value that is itself a reflect.Type, optionally
// required to be assignable to bound.
func TypeValue(bound reflect.Type) Descriptor { return typeDesc{bound: bound} }

func mustDescriptor(d Descriptor) {
	if d == nil {
		panic(ErrNilDescriptor)
	}
}
