package catalog

import (
	"maps"

	"github.com/ravenlost/locale/core/pluralexpr"
)

// Domain is one named, independently loaded message catalog. Domains are
// immutable once installed in a Locale; a reload replaces the whole value.
type Domain struct {
	name        string
	pluralCount int
	pluralSrc   string
	expr        *pluralexpr.Expr
	entries     map[string]Translation
}

// Name returns the domain identifier.
func (d *Domain) Name() string {
	return d.name
}

// PluralCount returns the declared number of plural variants, zero when the
// domain carries no plural metadata.
func (d *Domain) PluralCount() int {
	return d.pluralCount
}

// PluralExpression returns the domain's plural rule source, or the empty
// string when none was declared.
func (d *Domain) PluralExpression() string {
	return d.pluralSrc
}

// Entries returns a copy of the domain's key to translation mapping. The
// reserved metadata key is never present.
func (d *Domain) Entries() map[string]Translation {
	return maps.Clone(d.entries)
}

// Entry returns the translation stored under key.
func (d *Domain) Entry(key string) (Translation, bool) {
	t, ok := d.entries[key]
	return t, ok
}

// Len returns the number of message keys in the domain.
func (d *Domain) Len() int {
	return len(d.entries)
}
