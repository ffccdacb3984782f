package rules

import (
	"fmt"

	"github.com/dmitrymomot/rulekit"
)

// NotEmptySlice fails when the slice has no elements.
func NotEmptySlice[E any]() rulekit.Rule[[]E] {
	return rulekit.Rule[[]E]{
		Code:    "not_empty",
		Message: "must not be empty",
		Check: func(v []E) bool {
			return len(v) > 0
		},
	}
}

// MinItems fails when the slice has fewer than min elements.
func MinItems[E any](min int) rulekit.Rule[[]E] {
	r := rulekit.Rule[[]E]{
		Code:    "min_items",
		Message: fmt.Sprintf("must have at least %d items", min),
		Meta:    map[string]any{"min": min},
		Check: func(v []E) bool {
			return len(v) >= min
		},
	}
	if min < 0 {
		return r.Invalid(fmt.Errorf("negative minimum %d", min))
	}
	return r
}

// MaxItems fails when the slice has more than max elements.
func MaxItems[E any](max int) rulekit.Rule[[]E] {
	r := rulekit.Rule[[]E]{
		Code:    "max_items",
		Message: fmt.Sprintf("must have at most %d items", max),
		Meta:    map[string]any{"max": max},
		Check: func(v []E) bool {
			return len(v) <= max
		},
	}
	if max < 0 {
		return r.Invalid(fmt.Errorf("negative maximum %d", max))
	}
	return r
}

// ItemsBetween fails when the element count falls outside [min, max].
func ItemsBetween[E any](min, max int) rulekit.Rule[[]E] {
	r := rulekit.Rule[[]E]{
		Code:    "items_between",
		Message: fmt.Sprintf("must have between %d and %d items", min, max),
		Meta:    map[string]any{"min": min, "max": max},
		Check: func(v []E) bool {
			return len(v) >= min && len(v) <= max
		},
	}
	switch {
	case min < 0:
		return r.Invalid(fmt.Errorf("negative minimum %d", min))
	case min > max:
		return r.Invalid(fmt.Errorf("minimum %d exceeds maximum %d", min, max))
	}
	return r
}

// UniqueItems fails when the slice contains duplicate elements.
func UniqueItems[E comparable]() rulekit.Rule[[]E] {
	return rulekit.Rule[[]E]{
		Code:    "unique_items",
		Message: "must not contain duplicates",
		Check: func(v []E) bool {
			seen := make(map[E]struct{}, len(v))
			for _, item := range v {
				if _, dup := seen[item]; dup {
					return false
				}
				seen[item] = struct{}{}
			}
			return true
		},
	}
}
