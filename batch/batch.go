package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/rulekit"
)

// Pool validates many instances of one shape concurrently with a bounded
// number of workers. The validator it wraps is immutable, so a Pool is safe
// for concurrent use and can be shared like the validator itself.
type Pool[T any] struct {
	validator *rulekit.Validator[T]
	workers   int
}

// New creates a pool around v. workers caps concurrent validations; zero or
// a negative count means runtime.NumCPU().
func New[T any](v *rulekit.Validator[T], workers int) (*Pool[T], error) {
	if v == nil {
		return nil, ErrNilValidator
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool[T]{validator: v, workers: workers}, nil
}

// Workers returns the pool's concurrency limit.
func (p *Pool[T]) Workers() int {
	return p.workers
}

// ValidateAll validates every instance and returns results in input order,
// regardless of completion order. Rule failures are not errors; they land in
// each instance's Result. Cancellation aborts the whole batch with
// (nil, error), matching the no-partial-result contract of ValidateContext.
func (p *Pool[T]) ValidateAll(ctx context.Context, instances []T) ([]*rulekit.Result, error) {
	results := make([]*rulekit.Result, len(instances))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, instance := range instances {
		i, instance := i, instance
		g.Go(func() error {
			res, err := p.validator.ValidateContext(gctx, instance)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
