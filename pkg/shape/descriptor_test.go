package shape_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/shapekit/pkg/shape"
)

func TestDescriptor_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		d    shape.Descriptor
		want string
	}{
		{shape.Any(), "any"},
		{shape.Null(), "null"},
		{shape.Optional(shape.Int()), "optional(integer)"},
		{shape.Literal(1, 2), "literal(1, 2)"},
		{shape.Union(shape.Int(), shape.String()), "union(integer | string)"},
		{shape.Sequence(shape.Bool()), "sequence(bool)"},
		{shape.Set(shape.String()), "set(string)"},
		{shape.Mapping(shape.String(), shape.Float()), "mapping(string -> float)"},
		{shape.Tuple(shape.Int(), shape.String()), "tuple(integer, string)"},
		{shape.Variadic(shape.Int()), "variadic(integer)"},
		{shape.Callable(), "callable"},
		{shape.TypeValue(nil), "type"},
		{shape.TypeValue(reflect.TypeOf(1)), "type<int>"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.d.String())
	}
}

func TestDescriptor_ConstructorGuards(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { shape.Optional(nil) })
	assert.Panics(t, func() { shape.Literal() })
	assert.Panics(t, func() { shape.Union() })
	assert.Panics(t, func() { shape.Tuple() })
	assert.Panics(t, func() { shape.Sequence(nil) })
	assert.Panics(t, func() { shape.Mapping(nil, shape.Int()) })
}

func TestDescriptor_Kinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, shape.KindUnion, shape.Union(shape.Int()).Kind())
	assert.Equal(t, shape.KindPrimitive, shape.String().Kind())
	assert.Equal(t, shape.KindTuple, shape.Tuple(shape.Int()).Kind())
}
