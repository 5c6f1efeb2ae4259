package parallel_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shapekit/pkg/check"
	"github.com/dmitrymomot/shapekit/pkg/parallel"
)

func TestValidateBatch(t *testing.T) {
	t.Parallel()

	evenBatch := func(ctx context.Context, items []any) ([]check.Result[any], error) {
		results := make([]check.Result[any], len(items))
		for i, item := range items {
			if n, ok := item.(int); ok && n%2 == 0 {
				results[i] = check.OK(item)
			} else {
				results[i] = check.Fail(item, check.Issue{
					Code: check.CodeCustomFailed, Severity: check.SeverityError,
				})
			}
		}
		return results, nil
	}

	t.Run("reassembles one result per item in input order", func(t *testing.T) {
		t.Parallel()
		items := make([]any, 10)
		for i := range items {
			items[i] = i
		}

		coord := parallel.New(parallel.WithLimit(2))
		results, err := coord.ValidateBatch(context.Background(), items, 3, evenBatch)
		require.NoError(t, err)
		require.Len(t, results, 10)

		for i, res := range results {
			assert.Equal(t, i%2 == 0, res.IsValid(), "item %d", i)
		}
	})

	t.Run("chunks have the fixed size with a short tail", func(t *testing.T) {
		t.Parallel()
		var mu sync.Mutex
		var sizes []int
		fn := func(ctx context.Context, items []any) ([]check.Result[any], error) {
			mu.Lock()
			sizes = append(sizes, len(items))
			mu.Unlock()
			results := make([]check.Result[any], len(items))
			for i, item := range items {
				results[i] = check.OK(item)
			}
			return results, nil
		}

		coord := parallel.New()
		_, err := coord.ValidateBatch(context.Background(), make([]any, 7), 3, fn)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{3, 3, 1}, sizes)
	})

	t.Run("batch function errors bubble up", func(t *testing.T) {
		t.Parallel()
		sentinel := errors.New("backend down")
		fn := func(ctx context.Context, items []any) ([]check.Result[any], error) {
			return nil, sentinel
		}

		coord := parallel.New()
		_, err := coord.ValidateBatch(context.Background(), make([]any, 4), 2, fn)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("result count mismatch is rejected", func(t *testing.T) {
		t.Parallel()
		fn := func(ctx context.Context, items []any) ([]check.Result[any], error) {
			return []check.Result[any]{check.OK[any](nil)}, nil
		}

		coord := parallel.New()
		_, err := coord.ValidateBatch(context.Background(), make([]any, 4), 2, fn)
		assert.ErrorIs(t, err, parallel.ErrBatchSizeMismatch)
	})

	t.Run("guards inputs", func(t *testing.T) {
		t.Parallel()
		coord := parallel.New()

		_, err := coord.ValidateBatch(context.Background(), nil, 2, nil)
		assert.ErrorIs(t, err, parallel.ErrNilBatchFunc)

		_, err = coord.ValidateBatch(context.Background(), nil, 0, evenBatch)
		assert.ErrorIs(t, err, parallel.ErrInvalidBatchSize)
	})
}
