package rules

import (
	"fmt"

	"github.com/dmitrymomot/rulekit"
)

// Between fails when the value falls outside the inclusive range [low, high].
// Declaring a range with low greater than high is a configuration error
// reported by Build, never a runtime failure.
func Between[N rulekit.Numeric](low, high N) rulekit.Rule[N] {
	r := rulekit.Rule[N]{
		Code:    "between",
		Message: fmt.Sprintf("must be between %v and %v", low, high),
		Meta:    map[string]any{"min": low, "max": high},
		Check: func(v N) bool {
			return v >= low && v <= high
		},
	}
	if low > high {
		return r.Invalid(fmt.Errorf("lower bound %v exceeds upper bound %v", low, high))
	}
	return r
}

// Min fails when the value is less than min.
func Min[N rulekit.Numeric](min N) rulekit.Rule[N] {
	return rulekit.Rule[N]{
		Code:    "min",
		Message: fmt.Sprintf("must be at least %v", min),
		Meta:    map[string]any{"min": min},
		Check: func(v N) bool {
			return v >= min
		},
	}
}

// Max fails when the value is greater than max.
func Max[N rulekit.Numeric](max N) rulekit.Rule[N] {
	return rulekit.Rule[N]{
		Code:    "max",
		Message: fmt.Sprintf("must be at most %v", max),
		Meta:    map[string]any{"max": max},
		Check: func(v N) bool {
			return v <= max
		},
	}
}

// Positive fails when the value is zero or negative.
func Positive[N rulekit.Numeric]() rulekit.Rule[N] {
	return rulekit.Rule[N]{
		Code:    "positive",
		Message: "must be positive",
		Check: func(v N) bool {
			return v > 0
		},
	}
}

// NonZero fails when the value is the numeric zero.
func NonZero[N rulekit.Numeric]() rulekit.Rule[N] {
	return rulekit.Rule[N]{
		Code:    "non_zero",
		Message: "must not be zero",
		Check: func(v N) bool {
			var zero N
			return v != zero
		},
	}
}
