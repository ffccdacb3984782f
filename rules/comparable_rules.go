package rules

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/rulekit"
)

// NotZero fails when the value is its type's zero value.
func NotZero[P comparable]() rulekit.Rule[P] {
	return rulekit.Rule[P]{
		Code:    "not_zero",
		Message: "is required",
		Check: func(v P) bool {
			var zero P
			return v != zero
		},
	}
}

// In fails when the value is not one of the allowed values.
func In[P comparable](allowed ...P) rulekit.Rule[P] {
	r := rulekit.Rule[P]{
		Code:    "in",
		Message: fmt.Sprintf("must be one of: %v", allowed),
		Meta:    map[string]any{"allowed": fmt.Sprint(allowed)},
		Check: func(v P) bool {
			return slices.Contains(allowed, v)
		},
	}
	if len(allowed) == 0 {
		return r.Invalid(fmt.Errorf("no allowed values given"))
	}
	return r
}

// NotIn fails when the value is one of the forbidden values.
func NotIn[P comparable](forbidden ...P) rulekit.Rule[P] {
	r := rulekit.Rule[P]{
		Code:    "not_in",
		Message: fmt.Sprintf("must not be one of: %v", forbidden),
		Meta:    map[string]any{"forbidden": fmt.Sprint(forbidden)},
		Check: func(v P) bool {
			return !slices.Contains(forbidden, v)
		},
	}
	if len(forbidden) == 0 {
		return r.Invalid(fmt.Errorf("no forbidden values given"))
	}
	return r
}

// Equal fails when the value differs from want.
func Equal[P comparable](want P) rulekit.Rule[P] {
	return rulekit.Rule[P]{
		Code:    "equal",
		Message: fmt.Sprintf("must equal %v", want),
		Meta:    map[string]any{"want": want},
		Check: func(v P) bool {
			return v == want
		},
	}
}

// NotEqual fails when the value equals reject.
func NotEqual[P comparable](reject P) rulekit.Rule[P] {
	return rulekit.Rule[P]{
		Code:    "not_equal",
		Message: fmt.Sprintf("must not equal %v", reject),
		Meta:    map[string]any{"reject": reject},
		Check: func(v P) bool {
			return v != reject
		},
	}
}
