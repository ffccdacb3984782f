package rulekit

import (
	"fmt"
	"regexp"
	"strings"
)

// Reserved failure codes synthesized by the engine itself rather than by a
// rule factory.
const (
	// CodeAccessorPanic reports that a property accessor panicked while
	// extracting the value. The chain contributes this single failure and the
	// rest of the instance still validates.
	CodeAccessorPanic = "accessor_panic"

	// CodeRulePanic reports that a rule predicate panicked.
	CodeRulePanic = "rule_panic"

	// CodeRuleError reports that a context-aware predicate returned an error
	// that was not caused by cancellation.
	CodeRuleError = "rule_error"

	// CodeMust is the default code for anonymous predicates attached through
	// Must, MustWith, or MustCtx.
	CodeMust = "must"
)

// Failure describes one violated rule for one property of a validated
// instance. Failures are recorded in evaluation order and never mutated
// after they are appended to a result.
type Failure struct {
	// Property is the declared name of the property whose rule failed. Object
	// level rules may report an empty or synthetic name.
	Property string

	// Code identifies the rule kind (for example "not_empty" or "between")
	// and keys localized message catalogs.
	Code string

	// Message is the human-readable description, rendered when the failure
	// is recorded.
	Message string

	// AttemptedValue is the value the accessor produced for the failed rule.
	// It is nil for object-level rules and for accessor faults.
	AttemptedValue any

	// Severity classifies the failure. Only SeverityError entries make the
	// result invalid.
	Severity Severity

	// Fault is true when the failure was synthesized from a crashed or
	// erroring rule rather than from invalid data, so operators can tell an
	// engine-side problem apart from a data problem.
	Fault bool

	// Meta carries the rule parameters (min, max, ...) used for message
	// rendering and localization.
	Meta map[string]any
}

func (f Failure) String() string {
	if f.Property == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", f.Property, f.Message)
}

var paramRegex = regexp.MustCompile(`%\{([\w.]+)\}`)

// renderMessage fills %{name} placeholders from the rule parameters plus the
// reserved names "property" and "value". Unknown placeholders are kept
// verbatim so a missing parameter stays visible instead of vanishing.
func renderMessage(tmpl, property string, value any, meta map[string]any) string {
	if !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		switch name {
		case "property":
			return property
		case "value":
			return fmt.Sprint(value)
		}
		if v, ok := meta[name]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
