package rules

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/dmitrymomot/rulekit"
)

// NotEmpty fails when the value is empty or contains only whitespace.
func NotEmpty() rulekit.Rule[string] {
	return rulekit.Rule[string]{
		Code:    "not_empty",
		Message: "must not be empty",
		Check: func(v string) bool {
			return strings.TrimSpace(v) != ""
		},
	}
}

// MinLength fails when the value is shorter than min bytes.
func MinLength(min int) rulekit.Rule[string] {
	r := rulekit.Rule[string]{
		Code:    "min_length",
		Message: fmt.Sprintf("must be at least %d characters long", min),
		Meta:    map[string]any{"min": min},
		Check: func(v string) bool {
			return len(v) >= min
		},
	}
	if min < 0 {
		return r.Invalid(fmt.Errorf("negative minimum length %d", min))
	}
	return r
}

// MaxLength fails when the value is longer than max bytes.
func MaxLength(max int) rulekit.Rule[string] {
	r := rulekit.Rule[string]{
		Code:    "max_length",
		Message: fmt.Sprintf("must be at most %d characters long", max),
		Meta:    map[string]any{"max": max},
		Check: func(v string) bool {
			return len(v) <= max
		},
	}
	if max < 0 {
		return r.Invalid(fmt.Errorf("negative maximum length %d", max))
	}
	return r
}

// Length fails when the value's byte length falls outside [min, max].
func Length(min, max int) rulekit.Rule[string] {
	r := rulekit.Rule[string]{
		Code:    "length",
		Message: fmt.Sprintf("must be between %d and %d characters long", min, max),
		Meta:    map[string]any{"min": min, "max": max},
		Check: func(v string) bool {
			return len(v) >= min && len(v) <= max
		},
	}
	switch {
	case min < 0:
		return r.Invalid(fmt.Errorf("negative minimum length %d", min))
	case min > max:
		return r.Invalid(fmt.Errorf("minimum length %d exceeds maximum %d", min, max))
	}
	return r
}

// ExactLength fails when the value's byte length differs from exact.
func ExactLength(exact int) rulekit.Rule[string] {
	r := rulekit.Rule[string]{
		Code:    "exact_length",
		Message: fmt.Sprintf("must be exactly %d characters long", exact),
		Meta:    map[string]any{"length": exact},
		Check: func(v string) bool {
			return len(v) == exact
		},
	}
	if exact < 0 {
		return r.Invalid(fmt.Errorf("negative length %d", exact))
	}
	return r
}

// OneOf fails when the value is not one of the allowed strings.
func OneOf(allowed ...string) rulekit.Rule[string] {
	r := rulekit.Rule[string]{
		Code:    "one_of",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		Meta:    map[string]any{"allowed": strings.Join(allowed, ", ")},
		Check: func(v string) bool {
			return slices.Contains(allowed, v)
		},
	}
	if len(allowed) == 0 {
		return r.Invalid(fmt.Errorf("no allowed values given"))
	}
	return r
}

// NoWhitespace fails when the value contains any whitespace character.
func NoWhitespace() rulekit.Rule[string] {
	return rulekit.Rule[string]{
		Code:    "no_whitespace",
		Message: "must not contain whitespace",
		Check: func(v string) bool {
			return !strings.ContainsFunc(v, unicode.IsSpace)
		},
	}
}
