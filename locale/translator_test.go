package locale_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit"
	"github.com/dmitrymomot/rulekit/locale"
	"github.com/dmitrymomot/rulekit/rules"
)

func newTestTranslator(t *testing.T, opts ...locale.Option) *locale.Translator {
	t.Helper()

	src := locale.MapSource{
		"en": {
			"not_empty": "must not be empty",
			"between":   "must be between %{min} and %{max}",
			"email":     "must be a valid email address",
		},
		"es": {
			"not_empty": "no debe estar vacío",
			"between":   "debe estar entre %{min} y %{max}",
		},
		"de": {
			"not_empty": "darf nicht leer sein",
		},
	}

	tr, err := locale.New(context.Background(), src, opts...)
	require.NoError(t, err)
	return tr
}

func TestNew(t *testing.T) {
	t.Run("builds a translator from a source", func(t *testing.T) {
		tr := newTestTranslator(t)
		assert.Equal(t, []string{"de", "en", "es"}, tr.Languages())
	})

	t.Run("rejects a nil source", func(t *testing.T) {
		_, err := locale.New(context.Background(), nil)
		assert.ErrorIs(t, err, locale.ErrNilSource)
	})

	t.Run("rejects an empty source", func(t *testing.T) {
		_, err := locale.New(context.Background(), locale.MapSource{})
		assert.ErrorIs(t, err, locale.ErrNoCatalogs)
	})

	t.Run("rejects an unparseable language code", func(t *testing.T) {
		src := locale.MapSource{"not a language": {"a": "b"}}

		_, err := locale.New(context.Background(), src)
		require.Error(t, err)
		assert.ErrorIs(t, err, locale.ErrInvalidLanguage)
	})
}

func TestMustNew(t *testing.T) {
	t.Run("panics on error", func(t *testing.T) {
		assert.Panics(t, func() {
			locale.MustNew(context.Background(), nil)
		})
	})
}

func TestTranslatorMatch(t *testing.T) {
	tr := newTestTranslator(t)

	t.Run("exact match wins", func(t *testing.T) {
		assert.Equal(t, "es", tr.Match("es"))
	})

	t.Run("regional variants resolve to the base language", func(t *testing.T) {
		assert.Equal(t, "en", tr.Match("en-US"))
		assert.Equal(t, "es", tr.Match("es-MX"))
		assert.Equal(t, "de", tr.Match("de-AT"))
	})

	t.Run("first requested language that matches wins", func(t *testing.T) {
		assert.Equal(t, "es", tr.Match("es-MX", "en"))
	})

	t.Run("unknown languages fall back to the default", func(t *testing.T) {
		assert.Equal(t, locale.DefaultLanguage, tr.Match("zz"))
	})

	t.Run("no requested languages fall back to the default", func(t *testing.T) {
		assert.Equal(t, locale.DefaultLanguage, tr.Match())
	})

	t.Run("unparseable requests fall back to the default", func(t *testing.T) {
		assert.Equal(t, locale.DefaultLanguage, tr.Match("!!!"))
	})

	t.Run("custom fallback is honored", func(t *testing.T) {
		trES := newTestTranslator(t, locale.WithFallback("es"))
		assert.Equal(t, "es", trES.Match())
	})
}

func TestTranslatorMessage(t *testing.T) {
	tr := newTestTranslator(t)

	t.Run("returns the template for a known code", func(t *testing.T) {
		tmpl, ok := tr.Message("es", "not_empty")
		assert.True(t, ok)
		assert.Equal(t, "no debe estar vacío", tmpl)
	})

	t.Run("consults the fallback catalog for missing codes", func(t *testing.T) {
		tmpl, ok := tr.Message("de", "email")
		assert.True(t, ok)
		assert.Equal(t, "must be a valid email address", tmpl)
	})

	t.Run("reports unknown codes", func(t *testing.T) {
		_, ok := tr.Message("en", "nonexistent")
		assert.False(t, ok)
	})
}

func TestTranslatorLocalize(t *testing.T) {
	type form struct {
		Name string
		Age  int
	}

	s := rulekit.NewSchema[form]("Form")
	rulekit.Property(s, "Name", func(f form) string { return f.Name }).
		Rule(rules.NotEmpty())
	rulekit.Property(s, "Age", func(f form) int { return f.Age }).
		Rule(rules.Between(18, 65))
	v := s.MustBuild()

	tr := newTestTranslator(t)

	t.Run("re-renders messages in the matched language", func(t *testing.T) {
		res := v.Validate(form{Name: "", Age: 10})

		localized := tr.Localize(res, "es-MX")
		require.Len(t, localized, 2)
		assert.Equal(t, "no debe estar vacío", localized[0].Message)
		assert.Equal(t, "debe estar entre 18 y 65", localized[1].Message)
	})

	t.Run("keeps the original message for unknown codes", func(t *testing.T) {
		s2 := rulekit.NewSchema[form]("Form")
		rulekit.Property(s2, "Name", func(f form) string { return f.Name }).
			Must(func(v string) bool { return false }).
			Code("house_rule").
			Message("breaks the house rule")
		res := s2.MustBuild().Validate(form{})

		localized := tr.Localize(res, "es")
		require.Len(t, localized, 1)
		assert.Equal(t, "breaks the house rule", localized[0].Message)
	})

	t.Run("never mutates the result", func(t *testing.T) {
		res := v.Validate(form{Name: "", Age: 10})
		before := res.Failures()[0].Message

		tr.Localize(res, "es")

		assert.Equal(t, before, res.Failures()[0].Message)
	})

	t.Run("nil result localizes to nil", func(t *testing.T) {
		assert.Nil(t, tr.Localize(nil, "es"))
	})

	t.Run("unmatched language falls back to the default catalog", func(t *testing.T) {
		res := v.Validate(form{Name: "", Age: 30})

		localized := tr.Localize(res, "zz")
		require.Len(t, localized, 1)
		assert.Equal(t, "must not be empty", localized[0].Message)
	})
}

func TestDefault(t *testing.T) {
	t.Run("ships english and spanish catalogs", func(t *testing.T) {
		tr := locale.Default()
		assert.Equal(t, []string{"en", "es"}, tr.Languages())
	})

	t.Run("covers the built-in rule codes", func(t *testing.T) {
		tr := locale.Default()

		for _, code := range []string{"not_empty", "email", "between", "uuid", "pattern", "must"} {
			_, ok := tr.Message("en", code)
			assert.True(t, ok, "expected an English message for code %q", code)

			_, ok = tr.Message("es", code)
			assert.True(t, ok, "expected a Spanish message for code %q", code)
		}
	})

	t.Run("returns the same instance every time", func(t *testing.T) {
		assert.Same(t, locale.Default(), locale.Default())
	})
}
