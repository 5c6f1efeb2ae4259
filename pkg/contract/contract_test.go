package contract_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shapekit/pkg/check"
	"github.com/dmitrymomot/shapekit/pkg/contract"
	"github.com/dmitrymomot/shapekit/pkg/shape"
)

func TestWithPrecondition(t *testing.T) {
	t.Parallel()

	op := contract.WithPrecondition(shape.Validator("input", shape.String()),
		func(ctx context.Context, in any) (string, error) {
			return strings.ToUpper(in.(string)), nil
		})

	t.Run("valid input reaches the operation", func(t *testing.T) {
		t.Parallel()
		out, err := op(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "ABC", out)
	})

	t.Run("invalid input short-circuits with issues", func(t *testing.T) {
		t.Parallel()
		_, err := op(context.Background(), 42)
		require.Error(t, err)

		var issues check.Issues
		require.True(t, errors.As(err, &issues))
		assert.Equal(t, check.CodeTypeError, issues[0].Code)
	})
}

func TestWithPostcondition(t *testing.T) {
	t.Parallel()

	t.Run("valid output passes through", func(t *testing.T) {
		t.Parallel()
		op := contract.WithPostcondition(shape.Validator("output", shape.Int()),
			func(ctx context.Context, in int) (any, error) { return in * 2, nil })

		out, err := op(context.Background(), 21)
		require.NoError(t, err)
		assert.Equal(t, 42, out)
	})

	t.Run("invalid output becomes a contract error", func(t *testing.T) {
		t.Parallel()
		op := contract.WithPostcondition(shape.Validator("output", shape.Int()),
			func(ctx context.Context, in int) (any, error) { return "oops", nil })

		_, err := op(context.Background(), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "postcondition")
	})

	t.Run("operation errors pass through untouched", func(t *testing.T) {
		t.Parallel()
		sentinel := errors.New("db down")
		op := contract.WithPostcondition(shape.Validator("output", shape.Int()),
			func(ctx context.Context, in int) (any, error) { return nil, sentinel })

		_, err := op(context.Background(), 1)
		assert.ErrorIs(t, err, sentinel)
	})
}

func TestWithContract(t *testing.T) {
	t.Parallel()

	op := contract.WithContract(
		shape.Validator("input", shape.String()),
		shape.Validator("output", shape.Int()),
		func(ctx context.Context, in any) (any, error) { return len(in.(string)), nil },
	)

	out, err := op(context.Background(), "four")
	require.NoError(t, err)
	assert.Equal(t, 4, out)

	_, err = op(context.Background(), 9)
	assert.Error(t, err)
}
