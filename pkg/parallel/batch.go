package parallel

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/shapekit/pkg/check"
)

// BatchFunc validates a chunk of items and returns exactly one result per
// item, in input order. How the chunk is validated internally is entirely
// the caller's business; the coordinator adds no intra-chunk concurrency.
type BatchFunc func(ctx context.Context, items []any) ([]check.Result[any], error)

// ValidateBatch splits items into fixed-size chunks, runs the batch function
// on each chunk under the coordinator's admission bound, and reassembles the
// per-item results in original input order.
func (c *Coordinator) ValidateBatch(ctx context.Context, items []any, batchSize int, fn BatchFunc) ([]check.Result[any], error) {
	if fn == nil {
		return nil, ErrNilBatchFunc
	}
	if batchSize <= 0 {
		return nil, ErrInvalidBatchSize
	}

	results := make([]check.Result[any], len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit)

	for start := 0; start < len(items); start += batchSize {
		end := min(start+batchSize, len(items))
		chunk := items[start:end]

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			chunkResults, err := fn(gctx, chunk)
			if err != nil {
				return fmt.Errorf("batch [%d:%d]: %w", start, end, err)
			}
			if len(chunkResults) != len(chunk) {
				return fmt.Errorf("batch [%d:%d]: %w: want %d, got %d",
					start, end, ErrBatchSizeMismatch, len(chunk), len(chunkResults))
			}

			copy(results[start:end], chunkResults)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
