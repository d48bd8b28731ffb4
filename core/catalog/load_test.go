package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenlost/locale/core/catalog"
	"github.com/ravenlost/locale/core/pluralexpr"
)

func newCustomLocale(t *testing.T) *catalog.Locale {
	t.Helper()
	loc, err := catalog.New("fr", "messages", nil, catalog.WithCustomPluralForms())
	require.NoError(t, err)
	return loc
}

func TestLoadDomain(t *testing.T) {
	t.Parallel()

	t.Run("installs a valid domain", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		require.NoError(t, loc.LoadDomain("messages", frenchDomain()))
		assert.True(t, loc.HasDomain("messages"))
	})

	t.Run("rejects nil payload", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		err := loc.LoadDomain("messages", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrDomainLoad)
		assert.ErrorIs(t, err, catalog.ErrInvalidCatalogFormat)
	})

	t.Run("rejects empty domain name", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		err := loc.LoadDomain("", frenchDomain())
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrDomainLoad)
	})

	t.Run("rejects unsupported entry values", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		data := frenchDomain()
		data["broken"] = 42
		err := loc.LoadDomain("messages", data)
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrInvalidCatalogFormat)
	})

	t.Run("missing metadata block", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		err := loc.LoadDomain("messages", map[string]any{"Hello": "Bonjour"})
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrInvalidPluralCount)
	})

	t.Run("invalid nplurals declarations", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)

		for _, nplurals := range []any{nil, "", "  ", "two", "-1", -1, 1.5} {
			err := loc.LoadDomain("messages", map[string]any{
				"": map[string]any{"nplurals": nplurals, "plural": "(n > 1)"},
			})
			require.Error(t, err, "nplurals=%v", nplurals)
			assert.ErrorIs(t, err, catalog.ErrInvalidPluralCount)
			assert.False(t, loc.HasDomain("messages"))
		}
	})

	t.Run("missing plural expression", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		err := loc.LoadDomain("messages", map[string]any{
			"": map[string]any{"nplurals": "2"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrMissingPluralExpression)

		err = loc.LoadDomain("messages", map[string]any{
			"": map[string]any{"nplurals": "2", "plural": "   "},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrMissingPluralExpression)
	})

	t.Run("clause count must match nplurals", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		// Three clauses, two declared forms.
		err := loc.LoadDomain("messages", map[string]any{
			"": map[string]any{"nplurals": "2", "plural": "(n==0)?0:(n==1)?1:2"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrPluralArityMismatch)
		assert.False(t, loc.HasDomain("messages"))
	})

	t.Run("invalid plural expression propagates", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		err := loc.LoadDomain("messages", map[string]any{
			"": map[string]any{"nplurals": "1", "plural": "(x > 1)"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrDomainLoad)
		assert.ErrorIs(t, err, pluralexpr.ErrInvalidSyntax)
	})

	t.Run("variant count must match nplurals", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		err := loc.LoadDomain("messages", map[string]any{
			"":        map[string]any{"nplurals": "2", "plural": "(n != 1)?1:0"},
			"%d cats": []any{"%d chat"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrVariantCountMismatch)
		assert.Contains(t, err.Error(), `"%d cats"`)
	})

	t.Run("failed load removes the domain entirely", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		require.NoError(t, loc.LoadDomain("messages", frenchDomain()))
		require.True(t, loc.HasDomain("messages"))

		err := loc.LoadDomain("messages", map[string]any{"Hello": "Bonjour"})
		require.Error(t, err)
		assert.False(t, loc.HasDomain("messages"))
	})

	t.Run("idempotent for a valid payload", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		require.NoError(t, loc.LoadDomain("messages", frenchDomain()))
		first := loc.Tn("You have one mail", "You have %d mails", 5, 5)

		require.NoError(t, loc.LoadDomain("messages", frenchDomain()))
		assert.Equal(t, first, loc.Tn("You have one mail", "You have %d mails", 5, 5))
		assert.Equal(t, "(n > 1)", loc.PluralExpression())
	})

	t.Run("round-trips entries byte-identically", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		require.NoError(t, loc.LoadDomain("messages", frenchDomain()))

		dom, ok := loc.Domain("messages")
		require.True(t, ok)

		entries := dom.Entries()
		require.NotContains(t, entries, "", "metadata key must not leak into entries")
		assert.Equal(t, catalog.Singular("Bonjour"), entries["Hello"])
		assert.Equal(t, catalog.Singular("Vous avez un courriel"), entries["You have one mail"])
		assert.Equal(t, catalog.Plural("Vous avez %d courriels"), entries["You have %d mails"])
	})

	t.Run("last loaded domain wins the active expression", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		require.NoError(t, loc.LoadDomain("messages", frenchDomain()))
		assert.Equal(t, "(n > 1)", loc.PluralExpression())

		require.NoError(t, loc.LoadDomain("errors", map[string]any{
			"": map[string]any{"nplurals": "1", "plural": "(n != 1)"},
		}))
		assert.Equal(t, "(n != 1)", loc.PluralExpression())
	})

	t.Run("without custom forms metadata is not enforced", func(t *testing.T) {
		t.Parallel()
		loc, err := catalog.New("en", "messages", nil)
		require.NoError(t, err)

		// No metadata at all, and a variant list of arbitrary length.
		require.NoError(t, loc.LoadDomain("messages", map[string]any{
			"cat":     "chat",
			"%d cats": []any{"%d chat", "%d chats", "%d chats!"},
		}))
		assert.True(t, loc.HasDomain("messages"))
		assert.Equal(t, catalog.DefaultPluralExpression, loc.PluralExpression())
	})

	t.Run("zero nplurals needs no expression", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		require.NoError(t, loc.LoadDomain("messages", map[string]any{
			"":    map[string]any{"nplurals": "0"},
			"cat": "neko",
		}))

		dom, ok := loc.Domain("messages")
		require.True(t, ok)
		assert.Equal(t, 0, dom.PluralCount())
		assert.Empty(t, dom.PluralExpression())
	})
}

func TestLoadDomainJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes and installs", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		payload := []byte(`{
			"": {"domain": "messages", "language": "fr", "nplurals": "1", "plural": "(n > 1)"},
			"cat": "chat",
			"%d cats": ["%d chats"]
		}`)
		require.NoError(t, loc.LoadDomainJSON("messages", payload))
		assert.Equal(t, "chat", loc.T("cat"))
		assert.Equal(t, "2 chats", loc.Tn("one cat", "%d cats", 2, 2))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		err := loc.LoadDomainJSON("messages", []byte(`{`))
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrInvalidCatalogFormat)
	})

	t.Run("rejects non-object payloads", func(t *testing.T) {
		t.Parallel()
		loc := newCustomLocale(t)
		err := loc.LoadDomainJSON("messages", []byte(`["not", "a", "catalog"]`))
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrInvalidCatalogFormat)
	})
}
