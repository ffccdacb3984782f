package rulekit

// Result is the immutable outcome of one validation run. Accessor methods
// return copies, so a Result can be shared between goroutines freely.
type Result struct {
	shape    string
	failures []Failure
}

func newResult(shape string, failures []Failure) *Result {
	return &Result{shape: shape, failures: failures}
}

// Shape returns the declared name of the validated shape.
func (r *Result) Shape() string {
	return r.shape
}

// Valid reports whether the run produced no Error-severity failures.
// Warning-severity failures do not affect validity.
func (r *Result) Valid() bool {
	for _, f := range r.failures {
		if f.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Failures returns every recorded failure in deterministic order: property
// chains in declaration order, rules within a chain in attachment order,
// object-level rules last.
func (r *Result) Failures() []Failure {
	out := make([]Failure, len(r.failures))
	copy(out, r.failures)
	return out
}

// Errors returns the Error-severity failures.
func (r *Result) Errors() []Failure {
	return r.filter(func(f Failure) bool { return f.Severity == SeverityError })
}

// Warnings returns the Warning-severity failures.
func (r *Result) Warnings() []Failure {
	return r.filter(func(f Failure) bool { return f.Severity == SeverityWarning })
}

// Faults returns the failures synthesized from crashed or erroring rules.
func (r *Result) Faults() []Failure {
	return r.filter(func(f Failure) bool { return f.Fault })
}

// ByProperty returns the failures recorded for the named property.
func (r *Result) ByProperty(name string) []Failure {
	return r.filter(func(f Failure) bool { return f.Property == name })
}

// ErrorCount returns the number of Error-severity failures.
func (r *Result) ErrorCount() int {
	n := 0
	for _, f := range r.failures {
		if f.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of Warning-severity failures.
func (r *Result) WarningCount() int {
	n := 0
	for _, f := range r.failures {
		if f.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// Err bridges the result to Go's error idiom: nil when the result is valid,
// otherwise a *ValidationError carrying every recorded failure.
func (r *Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationError{Shape: r.shape, Failures: r.Failures()}
}

func (r *Result) filter(keep func(Failure) bool) []Failure {
	var out []Failure
	for _, f := range r.failures {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}
