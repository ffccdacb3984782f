package rulekit

import (
	"context"
	"errors"
)

// Schema collects the property chains, object rules, and options declared
// for one validated shape, then compiles them into an immutable Validator.
// A Schema is a single-goroutine builder; the Validator it produces is safe
// for concurrent use.
type Schema[T any] struct {
	shape   string
	opts    options
	chains  []chainBuilder[T]
	objects []*ObjectChain[T]
}

// chainBuilder is the type-erased view of Chain[T, P] a schema stores, so
// chains of different property types share one declaration list.
type chainBuilder[T any] interface {
	propertyName() string
	compile(shape string, defaultCascade CascadeMode) (runner[T], []error)
}

// runner is the built, type-erased form of a chain. The returned error is
// non-nil only when ctx ended before the chain finished.
type runner[T any] interface {
	property() string
	run(ctx context.Context, target T) ([]Failure, error)
}

// NewSchema starts a schema for the named shape. The name identifies the
// shape on results, configuration errors, and registries.
func NewSchema[T any](shape string, opts ...Option) *Schema[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Schema[T]{shape: shape, opts: o}
}

// Shape returns the declared shape name.
func (s *Schema[T]) Shape() string {
	return s.shape
}

// Object declares a chain of whole-instance rules. name labels the emitted
// failures and may be empty. Object rules always run after every property
// chain regardless of declaration position.
func (s *Schema[T]) Object(name string) *ObjectChain[T] {
	oc := &ObjectChain[T]{name: name}
	s.objects = append(s.objects, oc)
	return oc
}

func (s *Schema[T]) addChain(c chainBuilder[T]) {
	s.chains = append(s.chains, c)
}

// Build compiles the schema into an immutable Validator. Every configuration
// problem found is reported at once: the returned error joins one
// *ConfigError per problem and the validator is nil. A misconfigured schema
// never produces a validator that fails at validation time instead.
func (s *Schema[T]) Build() (*Validator[T], error) {
	var errs []error
	if s.shape == "" {
		errs = append(errs, &ConfigError{Reason: "shape name is empty"})
	}

	seen := make(map[string]struct{}, len(s.chains))
	for _, cb := range s.chains {
		name := cb.propertyName()
		if name == "" {
			continue // reported by the chain's own compile
		}
		if _, dup := seen[name]; dup {
			errs = append(errs, &ConfigError{
				Shape:    s.shape,
				Property: name,
				Reason:   "property declared more than once",
			})
			continue
		}
		seen[name] = struct{}{}
	}

	chains := make([]runner[T], 0, len(s.chains))
	for _, cb := range s.chains {
		r, cerrs := cb.compile(s.shape, s.opts.cascade)
		if len(cerrs) > 0 {
			errs = append(errs, cerrs...)
			continue
		}
		chains = append(chains, r)
	}

	objects := make([]*compiledObject[T], 0, len(s.objects))
	for _, oc := range s.objects {
		co, oerrs := oc.compile(s.shape)
		if len(oerrs) > 0 {
			errs = append(errs, oerrs...)
			continue
		}
		objects = append(objects, co)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Validator[T]{
		shape:      s.shape,
		chains:     chains,
		objects:    objects,
		concurrent: s.opts.concurrent,
		logger:     s.opts.logger,
	}, nil
}

// MustBuild is Build that panics on configuration errors, for schemas
// declared as package variables where a bad declaration cannot be handled
// anyway.
func (s *Schema[T]) MustBuild() *Validator[T] {
	v, err := s.Build()
	if err != nil {
		panic(err)
	}
	return v
}
