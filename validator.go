package rulekit

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/rulekit/async"
)

// AnyValidator is the type-erased view of a Validator, for callers that
// route instances by shape name at runtime instead of holding the concrete
// generic type.
type AnyValidator interface {
	Shape() string
	ValidateAny(ctx context.Context, instance any) (*Result, error)
}

// Validator evaluates instances of T against the rule set compiled from a
// Schema. A Validator holds no per-call state, is immutable after Build, and
// is safe for concurrent use from any number of goroutines.
type Validator[T any] struct {
	shape      string
	chains     []runner[T]
	objects    []*compiledObject[T]
	concurrent bool
	logger     *slog.Logger
}

// Shape returns the declared name of the validated shape.
func (v *Validator[T]) Shape() string {
	return v.shape
}

// Validate evaluates instance synchronously and returns the complete result.
// Context-aware rules receive context.Background(), so Validate never
// observes cancellation.
func (v *Validator[T]) Validate(instance T) *Result {
	res, _ := v.validate(context.Background(), instance, false)
	return res
}

// ValidateContext evaluates instance under ctx. When ctx ends before every
// rule has run, ValidateContext returns (nil, *CancelledError); a partial
// result is never produced. Validators built with WithConcurrentChains
// evaluate property chains concurrently here, with failures merged back in
// declaration order.
func (v *Validator[T]) ValidateContext(ctx context.Context, instance T) (*Result, error) {
	return v.validate(ctx, instance, v.concurrent)
}

// ValidateAsync starts the validation on its own goroutine and returns a
// future for the result. Awaiting the future is equivalent to calling
// ValidateContext directly.
func (v *Validator[T]) ValidateAsync(ctx context.Context, instance T) *async.Future[*Result] {
	return async.Run(ctx, instance, v.ValidateContext)
}

// ValidateAny is the type-erased entry used by shape registries. It returns
// an error wrapping ErrWrongShape when instance is not a T.
func (v *Validator[T]) ValidateAny(ctx context.Context, instance any) (*Result, error) {
	t, ok := instance.(T)
	if !ok {
		return nil, fmt.Errorf("%w: shape %q expects %T, got %T", ErrWrongShape, v.shape, t, instance)
	}
	return v.ValidateContext(ctx, t)
}

func (v *Validator[T]) validate(ctx context.Context, instance T, concurrent bool) (*Result, error) {
	var (
		failures []Failure
		err      error
	)
	if concurrent && len(v.chains) > 1 {
		failures, err = v.runChainsConcurrent(ctx, instance)
	} else {
		failures, err = v.runChainsSequential(ctx, instance)
	}
	if err != nil {
		return nil, &CancelledError{Shape: v.shape, Err: err}
	}

	for _, o := range v.objects {
		fs, oerr := o.run(ctx, instance, failures)
		if oerr != nil {
			return nil, &CancelledError{Shape: v.shape, Err: oerr}
		}
		failures = append(failures, fs...)
	}

	v.logFaults(ctx, failures)
	return newResult(v.shape, failures), nil
}

func (v *Validator[T]) runChainsSequential(ctx context.Context, instance T) ([]Failure, error) {
	var failures []Failure
	for _, c := range v.chains {
		fs, err := c.run(ctx, instance)
		if err != nil {
			return nil, err
		}
		failures = append(failures, fs...)
	}
	return failures, nil
}

func (v *Validator[T]) runChainsConcurrent(ctx context.Context, instance T) ([]Failure, error) {
	buckets := make([][]Failure, len(v.chains))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range v.chains {
		i, c := i, c
		g.Go(func() error {
			fs, err := c.run(gctx, instance)
			if err != nil {
				return err
			}
			buckets[i] = fs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge in declaration order, not completion order.
	var failures []Failure
	for _, fs := range buckets {
		failures = append(failures, fs...)
	}
	return failures, nil
}

// logFaults surfaces crashed or erroring rules to operators. Ordinary
// validation outcomes are never logged.
func (v *Validator[T]) logFaults(ctx context.Context, failures []Failure) {
	for _, f := range failures {
		if !f.Fault {
			continue
		}
		v.logger.ErrorContext(ctx, "rule fault during validation",
			slog.String("shape", v.shape),
			slog.String("property", f.Property),
			slog.String("code", f.Code),
			slog.String("detail", f.Message),
		)
	}
}
