package rulekit

import "context"

// Numeric covers the built-in integer and float types accepted by the
// numeric rule factories.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule is one atomic check against a property value of type P. Rules are
// plain data: the rules package returns preconfigured values and callers may
// construct their own for project-specific checks.
//
// Exactly one of Check or CheckCtx must be set. Check is for pure in-memory
// predicates; CheckCtx is for checks that consult external state and must
// honor cancellation. Schema.Build rejects rules that set both or neither.
type Rule[P any] struct {
	// Code identifies the rule kind on emitted failures, for example
	// "min_length". It also keys localized message catalogs.
	Code string

	// Message is the human-readable failure text. Occurrences of %{name} are
	// replaced from Meta plus the reserved parameters "property" and "value".
	Message string

	// Meta carries the rule parameters (min, max, ...) for message rendering
	// and localization.
	Meta map[string]any

	// Severity of the emitted failure. Defaults to SeverityError when empty.
	Severity Severity

	// Check evaluates the rule synchronously. Returning false records a
	// failure.
	Check func(P) bool

	// CheckCtx evaluates the rule with a context. A non-nil error while the
	// validation context is still live marks the failure as a fault.
	CheckCtx func(context.Context, P) (bool, error)

	// err holds a factory misconfiguration, deferred to Schema.Build.
	err error
}

// Invalid marks the rule as misconfigured. Build reports err as a
// ConfigError instead of ever running the rule. Rule factories use this to
// defer bad-parameter errors to construction time.
func (r Rule[P]) Invalid(err error) Rule[P] {
	r.err = err
	return r
}
