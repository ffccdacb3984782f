package locale_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/locale"
)

func TestYAMLParser(t *testing.T) {
	parser := locale.NewYAMLParser()

	t.Run("parses a catalog with multiple languages", func(t *testing.T) {
		content := []byte(`
en:
  not_empty: "must not be empty"
  between: "must be between %{min} and %{max}"
es:
  not_empty: "no debe estar vacío"
`)

		catalogs, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)
		require.Len(t, catalogs, 2)
		assert.Equal(t, "must not be empty", catalogs["en"]["not_empty"])
		assert.Equal(t, "must be between %{min} and %{max}", catalogs["en"]["between"])
		assert.Equal(t, "no debe estar vacío", catalogs["es"]["not_empty"])
	})

	t.Run("rejects malformed content", func(t *testing.T) {
		_, err := parser.Parse(context.Background(), []byte("\tnot: yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, locale.ErrParseFailed)
	})

	t.Run("rejects a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := parser.Parse(ctx, []byte("en:\n  a: b"))
		require.Error(t, err)
		assert.ErrorIs(t, err, locale.ErrLoadCancelled)
	})

	t.Run("supports yaml and yml extensions", func(t *testing.T) {
		assert.True(t, parser.SupportsExt(".yaml"))
		assert.True(t, parser.SupportsExt(".yml"))
		assert.True(t, parser.SupportsExt("YAML"))
		assert.False(t, parser.SupportsExt(".json"))
	})
}

func TestJSONParser(t *testing.T) {
	parser := locale.NewJSONParser()

	t.Run("parses a catalog", func(t *testing.T) {
		content := []byte(`{"en": {"not_empty": "must not be empty"}}`)

		catalogs, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)
		assert.Equal(t, "must not be empty", catalogs["en"]["not_empty"])
	})

	t.Run("rejects malformed content", func(t *testing.T) {
		_, err := parser.Parse(context.Background(), []byte(`{"en": `))
		require.Error(t, err)
		assert.ErrorIs(t, err, locale.ErrParseFailed)
	})

	t.Run("rejects a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := parser.Parse(ctx, []byte(`{}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, locale.ErrLoadCancelled)
	})

	t.Run("supports only json", func(t *testing.T) {
		assert.True(t, parser.SupportsExt(".json"))
		assert.False(t, parser.SupportsExt(".yaml"))
	})
}
