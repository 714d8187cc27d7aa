// Package batch decomposes many requests concurrently.
package batch

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ShayCichocki/tasksplit/internal/decompose"
	"github.com/ShayCichocki/tasksplit/pkg/models"
)

// Result is the decomposition of one request in a batch.
type Result struct {
	// Index is the request's position in the input.
	Index          int
	Request        string
	Classification models.Classification
	Items          []models.TaskItem
	Summary        decompose.Summary
}

// Run decomposes requests with at most concurrency in flight and returns
// results in input order. Cancelling ctx stops work that has not started.
func Run(ctx context.Context, requests []string, concurrency int, logger *zap.Logger) ([]Result, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	d := decompose.New(logger)

	results := make([]Result, len(requests))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	for i, request := range requests {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			c, items := d.Analyze(request)
			summary, err := d.Summarize(c, items)
			if err != nil {
				return fmt.Errorf("request %d: %w", i+1, err)
			}

			// Each goroutine owns its slot.
			results[i] = Result{
				Index:          i,
				Request:        request,
				Classification: c,
				Items:          items,
				Summary:        summary,
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("batch complete",
		zap.Int("requests", len(requests)),
		zap.Int("concurrency", concurrency),
	)
	return results, nil
}
