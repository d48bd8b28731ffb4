package catalog

import "errors"

var (
	// ErrDomainLoad wraps every failure surfaced by LoadDomain, so callers
	// can match the whole family with a single errors.Is check.
	ErrDomainLoad = errors.New("failed to load domain")
	// ErrInvalidCatalogFormat is returned when the payload is not a mapping
	// of message keys to strings or variant lists.
	ErrInvalidCatalogFormat = errors.New("catalog data is not a valid message mapping")
	// ErrInvalidPluralCount is returned when the nplurals declaration is
	// missing, blank, non-numeric, or negative.
	ErrInvalidPluralCount = errors.New("missing or invalid nplurals declaration")
	// ErrMissingPluralExpression is returned when nplurals >= 1 but no
	// plural expression was declared.
	ErrMissingPluralExpression = errors.New("missing plural expression")
	// ErrPluralArityMismatch is returned when the number of clauses in the
	// plural expression does not match nplurals.
	ErrPluralArityMismatch = errors.New("plural expression clause count does not match nplurals")
	// ErrVariantCountMismatch is returned when a plural entry does not have
	// exactly nplurals variants.
	ErrVariantCountMismatch = errors.New("plural variant count does not match nplurals")
)
