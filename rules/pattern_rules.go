package rules

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/rulekit"
)

// Matches fails when the value does not match the pattern. The expression is
// compiled once at declaration; a compile failure is a configuration error
// reported by Build, never a validation failure.
func Matches(pattern string) rulekit.Rule[string] {
	r := rulekit.Rule[string]{
		Code:    "pattern",
		Message: "has an invalid format",
		Meta:    map[string]any{"pattern": pattern},
	}

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return r.Invalid(fmt.Errorf("invalid pattern %q: %v", pattern, err))
	}

	r.Check = func(v string) bool {
		return regex.MatchString(v)
	}
	return r
}

// NotMatches fails when the value matches the pattern.
func NotMatches(pattern string) rulekit.Rule[string] {
	r := rulekit.Rule[string]{
		Code:    "not_pattern",
		Message: "has a forbidden format",
		Meta:    map[string]any{"pattern": pattern},
	}

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return r.Invalid(fmt.Errorf("invalid pattern %q: %v", pattern, err))
	}

	r.Check = func(v string) bool {
		return !regex.MatchString(v)
	}
	return r
}
