package catalog

import (
	"context"
	"log/slog"

	"github.com/ravenlost/locale/core/webtext"
	"github.com/ravenlost/locale/pkg/logger"
	"github.com/ravenlost/locale/pkg/printf"
)

// T resolves key in the default domain. Extra args are substituted into the
// result as printf-style placeholders. Lookups never fail: a missing domain
// or key resolves to the key itself.
func (l *Locale) T(key string, args ...any) string {
	return l.DT(l.defaultDomain, key, args...)
}

// DT resolves key in the named domain.
func (l *Locale) DT(domain, key string, args ...any) string {
	l.mu.RLock()
	escape, escapeAll := l.webEscape, l.escapePlaceholders
	out := l.lookupSingular(domain, key)
	l.mu.RUnlock()

	return l.render(out, args, escape, escapeAll)
}

// Tn resolves a pluralizable message in the default domain, choosing the
// variant the active plural expression selects for count n. Extra args are
// substituted into the result.
func (l *Locale) Tn(singular, plural string, n int, args ...any) string {
	return l.DTn(l.defaultDomain, singular, plural, n, args...)
}

// DTn resolves a pluralizable message in the named domain. It never fails:
// missing data and plural evaluation errors degrade to the documented
// fallback key, with a diagnostic on the logging channel.
func (l *Locale) DTn(domain, singular, plural string, n int, args ...any) string {
	l.mu.RLock()
	escape, escapeAll := l.webEscape, l.escapePlaceholders
	out := l.lookupPlural(domain, singular, plural, n)
	l.mu.RUnlock()

	return l.render(out, args, escape, escapeAll)
}

// lookupSingular implements the singular resolution rules. Caller holds the
// read lock.
func (l *Locale) lookupSingular(domain, key string) string {
	dom, ok := l.domains[domain]
	if !ok {
		l.diag("domain not loaded", logger.Domain(domain), logger.Key(key))
		return key
	}
	return l.singularText(dom, key)
}

// singularText returns the stored singular translation for key, or key
// itself when the entry is absent or blank.
func (l *Locale) singularText(dom *Domain, key string) string {
	if key == "" {
		return key
	}
	tr, ok := dom.entries[key]
	if !ok || tr.Text() == "" {
		l.diag("message key not translated", logger.Domain(dom.name), logger.Key(key))
		return key
	}
	return tr.Text()
}

// lookupPlural implements the plural resolution state machine over domain
// presence, plural mode, and the evaluated variant index. Caller holds the
// read lock.
func (l *Locale) lookupPlural(domain, singular, plural string, n int) string {
	dom, ok := l.domains[domain]
	if !ok {
		l.diag("domain not loaded", logger.Domain(domain), logger.Key(singular))
		return singular
	}

	// A custom-form domain with no plural distinction always resolves the
	// singular form.
	if l.customPlural && dom.pluralCount == 0 {
		return l.singularText(dom, singular)
	}

	idx, err := l.activeExpr.Eval(n)
	if err != nil {
		// Recovered: plural selection failed, the singular key is still a
		// displayable string.
		l.diag("plural evaluation failed",
			logger.Domain(dom.name), logger.Key(plural),
			logger.Expression(l.activeSrc), logger.Count(n), logger.Error(err))
		return singular
	}

	if l.customPlural && dom.pluralCount >= 2 {
		return l.pluralVariant(dom, plural, idx)
	}

	// Two-form resolution: custom domains with nplurals=1 and the default
	// expression both select between the single plural variant and the
	// singular translation.
	if idx == 1 {
		if tr, ok := dom.entries[plural]; ok {
			if v, ok := tr.Variant(0); ok {
				return v
			}
		}
		l.diag("plural variant missing", logger.Domain(dom.name), logger.Key(plural))
		return plural
	}
	return l.singularText(dom, singular)
}

// pluralVariant selects variant idx of the plural set stored under key.
// Once plural resolution was attempted the plural key is the more
// informative fallback, so unlike the two-form path a broken entry falls
// back to it rather than to the singular key.
func (l *Locale) pluralVariant(dom *Domain, key string, idx int) string {
	tr, ok := dom.entries[key]
	if !ok {
		l.diag("message key not translated", logger.Domain(dom.name), logger.Key(key))
		return key
	}
	if !tr.IsPlural() {
		l.diag("plural entry stored as single string", logger.Domain(dom.name), logger.Key(key))
		return key
	}
	v, ok := tr.Variant(idx)
	if !ok {
		l.diag("plural variant missing",
			logger.Domain(dom.name), logger.Key(key), logger.Index(idx))
		return key
	}
	return v
}

// render runs the output pipeline: optional web escaping around optional
// placeholder substitution. With placeholder escaping disabled the template
// is escaped before substitution; otherwise the substituted result is
// escaped as a whole.
func (l *Locale) render(s string, args []any, escape, escapeAll bool) string {
	if escape && !escapeAll {
		s = webtext.EscapeHTML(s, true)
	}
	if len(args) > 0 {
		out, err := printf.Format(s, args...)
		if err != nil {
			// Substitution failures must not reach the caller; keep the
			// unsubstituted string.
			l.diag("placeholder substitution failed", logger.Error(err))
		} else {
			s = out
		}
	}
	if escape && escapeAll {
		s = webtext.EscapeHTML(s, true)
	}
	return s
}

// diag emits a resolve-time diagnostic. Diagnostics are debug-only and
// never turn into errors for resolve callers.
func (l *Locale) diag(msg string, attrs ...slog.Attr) {
	if !l.debug {
		return
	}
	l.log.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
