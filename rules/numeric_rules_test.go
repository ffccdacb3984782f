package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit"
	"github.com/dmitrymomot/rulekit/rules"
)

func TestBetween(t *testing.T) {
	t.Run("passes inside the range inclusive", func(t *testing.T) {
		rule := rules.Between(18, 65)
		assert.True(t, rule.Check(18))
		assert.True(t, rule.Check(40))
		assert.True(t, rule.Check(65))
		assert.Equal(t, "between", rule.Code)
		assert.Equal(t, "must be between 18 and 65", rule.Message)
		assert.Equal(t, map[string]any{"min": 18, "max": 65}, rule.Meta)
	})

	t.Run("fails outside the range", func(t *testing.T) {
		rule := rules.Between(18, 65)
		assert.False(t, rule.Check(17))
		assert.False(t, rule.Check(66))
		assert.False(t, rule.Check(-5))
	})

	t.Run("works with floats", func(t *testing.T) {
		rule := rules.Between(0.0, 1.0)
		assert.True(t, rule.Check(0.5))
		assert.False(t, rule.Check(1.01))
	})

	t.Run("single-value range accepts only that value", func(t *testing.T) {
		rule := rules.Between(7, 7)
		assert.True(t, rule.Check(7))
		assert.False(t, rule.Check(8))
	})

	t.Run("inverted bounds are a configuration error", func(t *testing.T) {
		s := rulekit.NewSchema[int]("Probe")
		rulekit.Property(s, "Value", func(v int) int { return v }).
			Rule(rules.Between(65, 18))

		_, err := s.Build()
		require.Error(t, err)
		assert.True(t, rulekit.IsConfigError(err))
		assert.Contains(t, err.Error(), "lower bound 65 exceeds upper bound 18")
	})
}

func TestMin(t *testing.T) {
	rule := rules.Min(18)

	t.Run("passes at and above the minimum", func(t *testing.T) {
		assert.True(t, rule.Check(18))
		assert.True(t, rule.Check(100))
		assert.Equal(t, "min", rule.Code)
		assert.Equal(t, map[string]any{"min": 18}, rule.Meta)
	})

	t.Run("fails below the minimum", func(t *testing.T) {
		assert.False(t, rule.Check(17))
		assert.False(t, rule.Check(-1))
	})
}

func TestMax(t *testing.T) {
	rule := rules.Max(100)

	t.Run("passes at and below the maximum", func(t *testing.T) {
		assert.True(t, rule.Check(100))
		assert.True(t, rule.Check(0))
		assert.Equal(t, "max", rule.Code)
	})

	t.Run("fails above the maximum", func(t *testing.T) {
		assert.False(t, rule.Check(101))
	})
}

func TestPositive(t *testing.T) {
	t.Run("passes strictly positive values", func(t *testing.T) {
		rule := rules.Positive[int]()
		assert.True(t, rule.Check(1))
		assert.False(t, rule.Check(0))
		assert.False(t, rule.Check(-1))
	})

	t.Run("works with floats", func(t *testing.T) {
		rule := rules.Positive[float64]()
		assert.True(t, rule.Check(0.001))
		assert.False(t, rule.Check(0.0))
		assert.False(t, rule.Check(-0.001))
	})
}

func TestNonZero(t *testing.T) {
	t.Run("fails only at zero", func(t *testing.T) {
		rule := rules.NonZero[int]()
		assert.True(t, rule.Check(1))
		assert.True(t, rule.Check(-1))
		assert.False(t, rule.Check(0))
	})

	t.Run("works with unsigned types", func(t *testing.T) {
		rule := rules.NonZero[uint16]()
		assert.True(t, rule.Check(uint16(8080)))
		assert.False(t, rule.Check(uint16(0)))
	})
}
