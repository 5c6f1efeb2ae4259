package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shapekit/pkg/check"
)

func userSchema(opts ...check.CompositeOption) *check.Composite {
	return check.NewComposite("user", map[string]check.Validator{
		"name": typed[string]("string"),
		"age":  typed[int]("int"),
	}, opts...)
}

func TestComposite(t *testing.T) {
	t.Parallel()

	t.Run("valid fields populate the output", func(t *testing.T) {
		t.Parallel()
		res := userSchema().Validate(map[string]any{"name": "Alice", "age": 30}, check.NewContext())
		require.True(t, res.IsValid())
		assert.Equal(t, map[string]any{"name": "Alice", "age": 30}, res.Value)
	})

	t.Run("missing required field yields exactly one missing_field issue", func(t *testing.T) {
		t.Parallel()
		res := userSchema(check.WithRequireAll()).Validate(map[string]any{"name": "Alice"}, check.NewContext())

		assert.False(t, res.IsValid())
		require.Len(t, res.Errors, 1)
		assert.Equal(t, check.CodeMissingField, res.Errors[0].Code)
		assert.Equal(t, "age", res.Errors[0].Field)
	})

	t.Run("missing field without require-all is fine", func(t *testing.T) {
		t.Parallel()
		res := userSchema().Validate(map[string]any{"name": "Alice"}, check.NewContext())
		require.True(t, res.IsValid())
		assert.Equal(t, map[string]any{"name": "Alice"}, res.Value)
	})

	t.Run("unknown field errors and is dropped by default", func(t *testing.T) {
		t.Parallel()
		res := userSchema().Validate(map[string]any{"name": "Alice", "nickname": "al"}, check.NewContext())

		assert.False(t, res.IsValid())
		require.Len(t, res.Errors, 1)
		assert.Equal(t, check.CodeExtraField, res.Errors[0].Code)
		assert.Equal(t, "nickname", res.Errors[0].Field)
		assert.NotContains(t, res.Value.(map[string]any), "nickname")
	})

	t.Run("unknown field warns and passes through when extras allowed", func(t *testing.T) {
		t.Parallel()
		res := userSchema(check.WithAllowExtra()).Validate(map[string]any{"name": "Alice", "nickname": "al"}, check.NewContext())

		require.True(t, res.IsValid())
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, check.CodeExtraField, res.Warnings[0].Code)
		assert.Equal(t, "al", res.Value.(map[string]any)["nickname"])
	})

	t.Run("failed field is excluded from the output", func(t *testing.T) {
		t.Parallel()
		res := userSchema().Validate(map[string]any{"name": "Alice", "age": "thirty"}, check.NewContext())

		assert.False(t, res.IsValid())
		out := res.Value.(map[string]any)
		assert.Equal(t, "Alice", out["name"])
		assert.NotContains(t, out, "age")
	})

	t.Run("field issues carry field-scoped paths", func(t *testing.T) {
		t.Parallel()
		res := userSchema().Validate(map[string]any{"age": "thirty"}, check.NewContext().Child("user"))

		require.Len(t, res.Errors, 1)
		assert.Equal(t, "user.age", res.Errors[0].Path)
	})

	t.Run("short-circuit stops before unknown fields", func(t *testing.T) {
		t.Parallel()
		res := userSchema().Validate(
			map[string]any{"age": "thirty", "nickname": "al"},
			check.NewContext(check.WithoutCollectAll()),
		)

		assert.False(t, res.IsValid())
		require.Len(t, res.Errors, 1)
		assert.Equal(t, check.CodeTypeError, res.Errors[0].Code)
	})

	t.Run("unknown fields still reported when declared fields pass", func(t *testing.T) {
		t.Parallel()
		res := userSchema().Validate(
			map[string]any{"name": "Alice", "nickname": "al"},
			check.NewContext(check.WithoutCollectAll()),
		)

		assert.False(t, res.IsValid())
		require.Len(t, res.Errors, 1)
		assert.Equal(t, check.CodeExtraField, res.Errors[0].Code)
	})

	t.Run("non-mapping input is a type error", func(t *testing.T) {
		t.Parallel()
		res := userSchema().Validate(42, check.NewContext())

		assert.False(t, res.IsValid())
		require.Len(t, res.Errors, 1)
		assert.Equal(t, check.CodeTypeError, res.Errors[0].Code)
	})

	t.Run("accepts any string-keyed map", func(t *testing.T) {
		t.Parallel()
		schema := check.NewComposite("labels", map[string]check.Validator{
			"env": typed[string]("string"),
		})
		res := schema.Validate(map[string]string{"env": "prod"}, check.NewContext())
		require.True(t, res.IsValid())
	})
}
