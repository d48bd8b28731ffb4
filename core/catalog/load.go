package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// metadataKey is the reserved entry key carrying the domain's metadata
// block (nplurals, plural expression, informational fields).
const metadataKey = ""

// LoadDomain validates data and installs it as the named domain. Loading is
// all-or-nothing: on any validation failure the store does not retain the
// domain, an existing domain under the same name included, and the error is
// returned wrapped in ErrDomainLoad.
//
// With custom plural forms enabled the metadata block is mandatory and the
// domain's plural expression becomes the Locale's active expression (last
// successful load wins). Without it the metadata is ignored and entries are
// installed after structural validation only.
func (l *Locale) LoadDomain(name string, data map[string]any) error {
	if name == "" {
		return errors.Join(ErrDomainLoad, fmt.Errorf("domain name cannot be empty"))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	dom, err := l.buildDomain(name, data)
	if err != nil {
		delete(l.domains, name)
		return errors.Join(ErrDomainLoad, err)
	}

	l.domains[name] = dom
	if l.customPlural && dom.expr != nil {
		l.activeExpr = dom.expr
		l.activeSrc = dom.pluralSrc
	}
	return nil
}

// LoadDomainJSON decodes a JSON catalog payload and installs it via
// LoadDomain. The payload must be a JSON object in the documented catalog
// format.
func (l *Locale) LoadDomainJSON(name string, payload []byte) error {
	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		return errors.Join(ErrDomainLoad, ErrInvalidCatalogFormat, err)
	}
	return l.LoadDomain(name, data)
}

// buildDomain runs the full validation pipeline and returns a ready-to-
// install domain. It never touches the store.
func (l *Locale) buildDomain(name string, data map[string]any) (*Domain, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: payload is not a mapping", ErrInvalidCatalogFormat)
	}

	dom := &Domain{name: name, entries: make(map[string]Translation, len(data))}

	if l.customPlural {
		if err := l.applyPluralMetadata(dom, data); err != nil {
			return nil, err
		}
	}

	for key, raw := range data {
		if key == metadataKey {
			continue
		}
		tr, err := parseEntry(key, raw)
		if err != nil {
			return nil, err
		}
		if l.customPlural && tr.IsPlural() && len(tr.variants) != dom.pluralCount {
			return nil, fmt.Errorf("%w: key %q has %d variant(s), domain %q declares nplurals=%d",
				ErrVariantCountMismatch, key, len(tr.variants), name, dom.pluralCount)
		}
		dom.entries[key] = tr
	}

	return dom, nil
}

// applyPluralMetadata parses and validates the reserved metadata block for
// a custom-plural-forms domain.
func (l *Locale) applyPluralMetadata(dom *Domain, data map[string]any) error {
	meta, _ := data[metadataKey].(map[string]any)

	nplurals, err := parsePluralCount(meta["nplurals"])
	if err != nil {
		return fmt.Errorf("%w: domain %q: %v", ErrInvalidPluralCount, dom.name, err)
	}
	dom.pluralCount = nplurals
	if nplurals < 1 {
		// The language makes no plural distinction; no expression needed.
		return nil
	}

	expr, _ := meta["plural"].(string)
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return fmt.Errorf("%w: domain %q declares nplurals=%d", ErrMissingPluralExpression, dom.name, nplurals)
	}

	// Each `?` opens one more clause of the ternary chain; the clause count
	// must match the declared number of plural variants.
	if clauses := strings.Count(expr, "?") + 1; clauses != nplurals {
		return fmt.Errorf("%w: domain %q: expression %q has %d clause(s), nplurals=%d",
			ErrPluralArityMismatch, dom.name, expr, clauses, nplurals)
	}

	compiled, err := compileChecked(expr, dom.name)
	if err != nil {
		return err
	}
	dom.pluralSrc = expr
	dom.expr = compiled
	return nil
}

// parsePluralCount reads the nplurals declaration: canonically a string of
// digits, but decoded JSON numbers are accepted too.
func parsePluralCount(raw any) (int, error) {
	switch v := raw.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, fmt.Errorf("nplurals is blank")
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("nplurals %q is not numeric", v)
		}
		if n < 0 {
			return 0, fmt.Errorf("nplurals %d is negative", n)
		}
		return n, nil
	case json.Number:
		return parsePluralCount(string(v))
	case float64:
		n := int(v)
		if float64(n) != v || n < 0 {
			return 0, fmt.Errorf("nplurals %v is not a non-negative integer", v)
		}
		return n, nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("nplurals %d is negative", v)
		}
		return v, nil
	case nil:
		return 0, fmt.Errorf("nplurals is missing")
	default:
		return 0, fmt.Errorf("nplurals has unsupported type %T", raw)
	}
}

// parseEntry converts one raw catalog value into a Translation.
func parseEntry(key string, raw any) (Translation, error) {
	switch v := raw.(type) {
	case string:
		return Singular(v), nil
	case []string:
		return Plural(v...), nil
	case []any:
		variants := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return Translation{}, fmt.Errorf("%w: key %q variant %d is %T, want string",
					ErrInvalidCatalogFormat, key, i, item)
			}
			variants[i] = s
		}
		return Plural(variants...), nil
	default:
		return Translation{}, fmt.Errorf("%w: key %q has unsupported value type %T",
			ErrInvalidCatalogFormat, key, raw)
	}
}
