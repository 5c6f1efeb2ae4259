package check_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shapekit/pkg/check"
)

func TestTransform(t *testing.T) {
	t.Parallel()

	t.Run("projects the value after success", func(t *testing.T) {
		t.Parallel()
		tr := check.NewTransform("trim", passThrough("ok"), func(v any) (any, error) {
			return strings.TrimSpace(v.(string)), nil
		})

		res := tr.Validate("  hi  ", check.NewContext())
		require.True(t, res.IsValid())
		assert.Equal(t, "hi", res.Value)
	})

	t.Run("skips projection when inner fails", func(t *testing.T) {
		t.Parallel()
		called := false
		tr := check.NewTransform("trim", alwaysFail("inner", "e1"), func(v any) (any, error) {
			called = true
			return v, nil
		})

		res := tr.Validate("x", check.NewContext())
		assert.False(t, res.IsValid())
		assert.False(t, called)
	})

	t.Run("failing projection keeps the pre-transform value", func(t *testing.T) {
		t.Parallel()
		tr := check.NewTransform("explode", passThrough("ok"), func(v any) (any, error) {
			return nil, errors.New("cannot project")
		})

		res := tr.Validate("original", check.NewContext())
		assert.False(t, res.IsValid())
		require.Len(t, res.Errors, 1)
		assert.Equal(t, check.CodeTransformError, res.Errors[0].Code)
		assert.Equal(t, "original", res.Errors[0].Value)
		assert.Equal(t, "original", res.Value)
	})

	t.Run("warnings pass through a failing projection", func(t *testing.T) {
		t.Parallel()
		warner := check.Func("warner", func(v any, ctx *check.Context) check.Result[any] {
			out := check.OK(v)
			out.AddIssue(check.Issue{Code: check.CodeValueCoerced, Severity: check.SeverityWarning})
			return out
		})
		tr := check.NewTransform("explode", warner, func(v any) (any, error) {
			return nil, errors.New("nope")
		})

		res := tr.Validate("x", check.NewContext())
		assert.False(t, res.IsValid())
		assert.Len(t, res.Warnings, 1)
	})
}
