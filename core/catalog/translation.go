package catalog

import "slices"

// Translation is one catalog entry: either a single translated string or an
// ordered set of plural variants. The zero value is an empty singular.
type Translation struct {
	variants []string
	plural   bool
}

// Singular returns a single-form translation.
func Singular(text string) Translation {
	return Translation{variants: []string{text}}
}

// Plural returns a translation with ordered plural variants.
func Plural(variants ...string) Translation {
	return Translation{variants: slices.Clone(variants), plural: true}
}

// IsPlural reports whether the entry holds plural variants.
func (t Translation) IsPlural() bool {
	return t.plural
}

// Text returns the singular text, or the first variant for plural entries.
func (t Translation) Text() string {
	if len(t.variants) == 0 {
		return ""
	}
	return t.variants[0]
}

// Variants returns a copy of the ordered plural variants. For singular
// entries it returns a single-element slice.
func (t Translation) Variants() []string {
	return slices.Clone(t.variants)
}

// Variant returns the variant at index i. The second return is false when
// the index is out of range or the stored text is empty.
func (t Translation) Variant(i int) (string, bool) {
	if i < 0 || i >= len(t.variants) || t.variants[i] == "" {
		return "", false
	}
	return t.variants[i], true
}
