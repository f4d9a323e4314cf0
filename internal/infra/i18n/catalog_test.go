package i18n

import (
	"testing"

	"saathi/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	// Every shipped locale must belong to the supported set.
	for _, code := range catalog.Languages() {
		assert.True(t, entity.IsSupportedLanguage(code), "unexpected locale %q", code)
	}
}

func TestCatalogLookup(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	t.Run("english hit", func(t *testing.T) {
		value, ok := catalog.Lookup(entity.LanguageEnglish, "login.subtitle")
		require.True(t, ok)
		assert.Equal(t, "Your AI Farming Assistant", value)
	})

	t.Run("hindi hit", func(t *testing.T) {
		value, ok := catalog.Lookup("hi", "dashboard.cropAdvice")
		require.True(t, ok)
		assert.Equal(t, "फसल सलाह", value)
	})

	t.Run("nested path", func(t *testing.T) {
		value, ok := catalog.Lookup(entity.LanguageEnglish, "weather.error.title")
		require.True(t, ok)
		assert.Equal(t, "Could not load weather", value)
	})

	t.Run("missing key is a miss, not an error", func(t *testing.T) {
		_, ok := catalog.Lookup(entity.LanguageEnglish, "nonexistent.key")
		assert.False(t, ok)
	})

	t.Run("partial locale misses untranslated keys", func(t *testing.T) {
		// Marathi ships without the signup section.
		_, ok := catalog.Lookup("mr", "signup.title")
		assert.False(t, ok)

		value, ok := catalog.Lookup("mr", "login.subtitle")
		require.True(t, ok)
		assert.Equal(t, "तुमचा AI शेती सहाय्यक", value)
	})

	t.Run("interior node is not a hit", func(t *testing.T) {
		_, ok := catalog.Lookup(entity.LanguageEnglish, "weather.error")
		assert.False(t, ok)
	})

	t.Run("unknown language", func(t *testing.T) {
		_, ok := catalog.Lookup("fr", "login.title")
		assert.False(t, ok)
	})
}
