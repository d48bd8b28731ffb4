package catalog

import (
	"fmt"
	"log/slog"

	"github.com/ravenlost/locale/core/pluralexpr"
)

// Option configures a Locale during construction.
type Option func(*Locale) error

// WithCustomPluralForms enables per-domain plural metadata: loaded domains
// must declare nplurals and a matching plural expression, and the last
// successfully loaded expression drives plural resolution.
func WithCustomPluralForms() Option {
	return func(l *Locale) error {
		l.customPlural = true
		return nil
	}
}

// WithDebug enables resolve-time diagnostics on the logging channel.
// Lookup fallbacks are silent without it.
func WithDebug() Option {
	return func(l *Locale) error {
		l.debug = true
		return nil
	}
}

// WithLogger sets the logger used for diagnostics and load reports.
func WithLogger(log *slog.Logger) Option {
	return func(l *Locale) error {
		if log == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		l.log = log
		return nil
	}
}

// WithWebEscape enables HTML escaping of resolved strings.
func WithWebEscape() Option {
	return func(l *Locale) error {
		l.webEscape = true
		return nil
	}
}

// WithoutPlaceholderEscape restricts web escaping to the translation
// template: escaping runs before placeholder substitution, leaving
// substituted values untouched. By default substituted values are escaped
// along with everything else.
func WithoutPlaceholderEscape() Option {
	return func(l *Locale) error {
		l.escapePlaceholders = false
		return nil
	}
}

// WithDefaultPluralExpression replaces the built-in default plural rule.
// The expression is trial-evaluated; an invalid one aborts construction.
func WithDefaultPluralExpression(expr string) Option {
	return func(l *Locale) error {
		e, err := compileChecked(expr, "")
		if err != nil {
			return err
		}
		l.activeExpr = e
		l.activeSrc = expr
		return nil
	}
}

// compileChecked compiles expr and trial-evaluates it with n=1, annotating
// failures with the domain label.
func compileChecked(expr, domain string) (*pluralexpr.Expr, error) {
	e, err := pluralexpr.Compile(expr)
	if err == nil {
		_, err = e.Eval(1)
	}
	if err != nil {
		if domain != "" {
			return nil, fmt.Errorf("domain %q: %w", domain, err)
		}
		return nil, err
	}
	return e, nil
}
