package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrymomot/rulekit"
)

// Registry maps shape names to validators so callers can route instances by
// name at runtime, typically at a transport boundary where the concrete Go
// type is only known after decoding. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	shapes map[string]rulekit.AnyValidator
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{shapes: make(map[string]rulekit.AnyValidator)}
}

// Register adds v under its shape name. Registering a second validator for
// the same shape is an error; build one validator per shape and share it.
func (r *Registry) Register(v rulekit.AnyValidator) error {
	if v == nil {
		return ErrNilValidator
	}
	shape := v.Shape()
	if shape == "" {
		return ErrEmptyShape
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.shapes[shape]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateShape, shape)
	}
	r.shapes[shape] = v
	return nil
}

// MustRegister is Register that panics on error, for wiring done at package
// init.
func (r *Registry) MustRegister(v rulekit.AnyValidator) {
	if err := r.Register(v); err != nil {
		panic(err)
	}
}

// Resolve returns the validator registered under shape.
func (r *Registry) Resolve(shape string) (rulekit.AnyValidator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.shapes[shape]
	return v, ok
}

// Shapes returns the registered shape names in sorted order.
func (r *Registry) Shapes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate routes instance to the validator registered under shape.
func (r *Registry) Validate(ctx context.Context, shape string, instance any) (*rulekit.Result, error) {
	v, ok := r.Resolve(shape)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}
	return v.ValidateAny(ctx, instance)
}

// Lookup returns the typed validator registered under shape. It fails when
// the shape is unknown or was registered for a different instance type.
func Lookup[T any](r *Registry, shape string) (*rulekit.Validator[T], error) {
	v, ok := r.Resolve(shape)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}

	tv, ok := v.(*rulekit.Validator[T])
	if !ok {
		return nil, fmt.Errorf("%w: shape %q holds %T", ErrShapeMismatch, shape, v)
	}
	return tv, nil
}
