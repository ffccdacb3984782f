package rulekit

// Severity classifies how a recorded failure affects the outcome of a
// validation run.
type Severity string

const (
	// SeverityError marks a failure that makes the validated instance invalid.
	SeverityError Severity = "error"

	// SeverityWarning marks an advisory failure. Warnings are reported on the
	// Result but never flip Result.Valid to false.
	SeverityWarning Severity = "warning"
)

func (s Severity) String() string {
	return string(s)
}
