package rulekit

// Context is the read-only view of a validation run handed to context-aware
// predicates. It exposes the full instance under validation, so rules can
// reach sibling properties, and the failures visible at the point of
// evaluation.
//
// Visibility is scoped for determinism: a property rule sees only the
// earlier failures of its own chain, an object-level rule sees every failure
// recorded so far. The scoping keeps results identical whether chains run
// sequentially or concurrently.
type Context[T any] struct {
	target   T
	property string
	failures []Failure
}

// Target returns the instance under validation.
func (c *Context[T]) Target() T {
	return c.target
}

// Property returns the name of the chain being evaluated, or an empty string
// when the rule is not bound to a named chain.
func (c *Context[T]) Property() string {
	return c.property
}

// Failures returns a copy of the failures visible to the current rule.
func (c *Context[T]) Failures() []Failure {
	out := make([]Failure, len(c.failures))
	copy(out, c.failures)
	return out
}

// HasFailures reports whether any failure is visible to the current rule.
func (c *Context[T]) HasFailures() bool {
	return len(c.failures) > 0
}
