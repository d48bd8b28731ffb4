// Package catalog provides gettext-style message catalogs: named domains of
// key to translation mappings with plural variant selection driven by
// language-supplied plural expressions.
//
// A Locale owns the domains for one working language. Lookups never fail;
// missing domains, missing keys, and broken plural rules all degrade to a
// displayable fallback string, optionally reporting a diagnostic on the
// logging channel. Catalog data, by contrast, is validated strictly at load
// time and rejected as a whole when inconsistent.
//
// # Basic Usage
//
//	loc, err := catalog.New("fr", "messages", map[string]any{
//		"": map[string]any{
//			"nplurals": "1",
//			"plural":   "(n > 1)",
//		},
//		"Hello":              "Bonjour",
//		"You have %d mails":  []any{"Vous avez %d courriels"},
//	}, catalog.WithCustomPluralForms())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	loc.T("Hello")                                        // "Bonjour"
//	loc.Tn("You have one mail", "You have %d mails", 6, 6) // "Vous avez 6 courriels"
//
// # Catalog Format
//
// Each domain payload is a mapping from message key to either a translated
// string or an ordered list of plural variants. The empty key is reserved
// for the metadata block:
//
//	{
//		"":          {"nplurals": "2", "plural": "(n != 1)"},
//		"cat":       "chat",
//		"%d cats":   ["%d chat", "%d chats"]
//	}
//
// With custom plural forms enabled (WithCustomPluralForms), nplurals and
// plural are mandatory and validated: nplurals must be a non-negative
// integer, the expression's ternary clause count must equal nplurals, every
// variant list must have exactly nplurals elements, and the expression must
// compile and evaluate. A domain failing any check is not installed.
//
// # Plural Resolution
//
// Plural expressions are restricted C-style boolean/ternary expressions
// over the quantity n (see pluralexpr). The active expression is shared
// instance-wide state: the last successfully loaded custom domain wins,
// and SetDefaultPluralExpression replaces it explicitly.
//
// # Output Pipeline
//
// Resolved strings optionally pass through HTML escaping and printf-style
// placeholder substitution. By default escaping runs after substitution;
// WithoutPlaceholderEscape switches to escaping the bare template before
// placeholder values are inserted.
package catalog
