package rulekit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrWrongShape is returned by ValidateAny when the dynamic type of the
// instance does not match the validator's declared shape.
var ErrWrongShape = errors.New("rulekit: instance type does not match validator shape")

// ConfigError reports a single schema misconfiguration detected by Build.
// Build joins all detected problems into one error, so use errors.As or
// IsConfigError to inspect them.
type ConfigError struct {
	Shape    string
	Property string // empty for schema-level problems
	Rule     string // rule code, when the problem is tied to one rule
	Reason   string
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("rulekit: invalid schema")
	if e.Shape != "" {
		fmt.Fprintf(&b, " %q", e.Shape)
	}
	if e.Property != "" {
		fmt.Fprintf(&b, ", property %q", e.Property)
	}
	if e.Rule != "" {
		fmt.Fprintf(&b, ", rule %q", e.Rule)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

// IsConfigError reports whether err contains a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// CancelledError reports that a validation run was abandoned because its
// context ended before every rule could execute. No partial result exists
// when this error is returned.
type CancelledError struct {
	Shape string
	Err   error // the underlying context error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("rulekit: validation of %q cancelled: %v", e.Shape, e.Err)
}

func (e *CancelledError) Unwrap() error {
	return e.Err
}

// IsCancelled reports whether err contains a *CancelledError.
func IsCancelled(err error) bool {
	var ce *CancelledError
	return errors.As(err, &ce)
}

// ValidationError is the error form of an invalid Result, produced by
// Result.Err for callers that propagate validation outcomes as errors.
type ValidationError struct {
	Shape    string
	Failures []Failure
}

func (e *ValidationError) Error() string {
	if len(e.Failures) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, f.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IsValidationError reports whether err contains a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
