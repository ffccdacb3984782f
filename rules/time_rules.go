package rules

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/rulekit"
)

// Past fails when the value is not strictly before the current time.
func Past() rulekit.Rule[time.Time] {
	return rulekit.Rule[time.Time]{
		Code:    "date_past",
		Message: "date must be in the past",
		Check: func(v time.Time) bool {
			return v.Before(time.Now())
		},
	}
}

// Future fails when the value is not strictly after the current time.
func Future() rulekit.Rule[time.Time] {
	return rulekit.Rule[time.Time]{
		Code:    "date_future",
		Message: "date must be in the future",
		Check: func(v time.Time) bool {
			return v.After(time.Now())
		},
	}
}

// Before fails when the value is not strictly before t.
func Before(t time.Time) rulekit.Rule[time.Time] {
	return rulekit.Rule[time.Time]{
		Code:    "date_before",
		Message: fmt.Sprintf("date must be before %s", t.Format("2006-01-02")),
		Meta:    map[string]any{"before": t.Format(time.RFC3339)},
		Check: func(v time.Time) bool {
			return v.Before(t)
		},
	}
}

// After fails when the value is not strictly after t.
func After(t time.Time) rulekit.Rule[time.Time] {
	return rulekit.Rule[time.Time]{
		Code:    "date_after",
		Message: fmt.Sprintf("date must be after %s", t.Format("2006-01-02")),
		Meta:    map[string]any{"after": t.Format(time.RFC3339)},
		Check: func(v time.Time) bool {
			return v.After(t)
		},
	}
}

// BetweenTime fails when the value falls outside the inclusive range
// [start, end]. A start after end is a configuration error.
func BetweenTime(start, end time.Time) rulekit.Rule[time.Time] {
	r := rulekit.Rule[time.Time]{
		Code:    "date_between",
		Message: fmt.Sprintf("date must be between %s and %s", start.Format("2006-01-02"), end.Format("2006-01-02")),
		Meta: map[string]any{
			"start": start.Format(time.RFC3339),
			"end":   end.Format(time.RFC3339),
		},
		Check: func(v time.Time) bool {
			return !v.Before(start) && !v.After(end)
		},
	}
	if start.After(end) {
		return r.Invalid(fmt.Errorf("start %s is after end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}
	return r
}

// MinAge fails when the birthdate yields an age below years, adjusting for
// birthdays that have not occurred yet this year.
func MinAge(years int) rulekit.Rule[time.Time] {
	r := rulekit.Rule[time.Time]{
		Code:    "min_age",
		Message: fmt.Sprintf("minimum age of %d years required", years),
		Meta:    map[string]any{"min_age": years},
		Check: func(birthdate time.Time) bool {
			now := time.Now()
			age := now.Year() - birthdate.Year()
			if now.Month() < birthdate.Month() ||
				(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
				age--
			}
			return age >= years
		},
	}
	if years < 0 {
		return r.Invalid(fmt.Errorf("negative age %d", years))
	}
	return r
}
