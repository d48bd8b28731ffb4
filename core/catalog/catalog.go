package catalog

import (
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/ravenlost/locale/core/pluralexpr"
	"github.com/ravenlost/locale/pkg/logger"
)

// DefaultPluralExpression is the plural rule used when no domain supplies
// one: two forms, singular for exactly one (English, German, Dutch, ...).
const DefaultPluralExpression = "(n != 1)"

var defaultPluralExpr = pluralexpr.MustCompile(DefaultPluralExpression)

// Locale owns a set of named message domains for one working language and
// resolves messages against them. All methods are safe for concurrent use:
// loads and setters serialize against resolves through an internal lock.
//
// The active plural expression is shared, mutable, instance-wide state:
// with custom plural forms enabled, the last successfully loaded domain's
// expression wins; otherwise the default expression applies.
type Locale struct {
	mu sync.RWMutex

	language      string
	defaultDomain string
	domains       map[string]*Domain

	activeExpr *pluralexpr.Expr
	activeSrc  string

	customPlural       bool
	webEscape          bool
	escapePlaceholders bool
	debug              bool
	log                *slog.Logger
}

// New creates a Locale for the given language with one mandatory default
// domain. A nil data map installs no catalog data. Option errors abort
// construction; a failure loading the initial catalog data does not. It is
// reported on the logging channel and the Locale stays usable, resolving
// every lookup to its fallback until a valid catalog is loaded.
func New(language, defaultDomain string, data map[string]any, opts ...Option) (*Locale, error) {
	if language == "" {
		return nil, fmt.Errorf("language cannot be empty")
	}
	if defaultDomain == "" {
		return nil, fmt.Errorf("default domain cannot be empty")
	}

	l := &Locale{
		language:           language,
		defaultDomain:      defaultDomain,
		domains:            make(map[string]*Domain),
		activeExpr:         defaultPluralExpr,
		activeSrc:          DefaultPluralExpression,
		escapePlaceholders: true,
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if l.log == nil {
		l.log = slog.Default()
	}

	if data != nil {
		if err := l.LoadDomain(defaultDomain, data); err != nil {
			l.log.Error("failed to load default domain catalog",
				logger.Domain(defaultDomain), logger.Error(err))
		}
	}

	return l, nil
}

// Language returns the configured language tag. The tag is informational;
// the Locale never interprets it.
func (l *Locale) Language() string {
	return l.language
}

// DefaultDomain returns the name of the default domain.
func (l *Locale) DefaultDomain() string {
	return l.defaultDomain
}

// Domains returns a read-only view of all loaded domains.
func (l *Locale) Domains() map[string]*Domain {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return maps.Clone(l.domains)
}

// HasDomain reports whether a domain with the given name is loaded.
func (l *Locale) HasDomain(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.domains[name]
	return ok
}

// Domain returns the loaded domain with the given name.
func (l *Locale) Domain(name string) (*Domain, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	d, ok := l.domains[name]
	return d, ok
}

// PluralExpression returns the currently active plural expression.
func (l *Locale) PluralExpression() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.activeSrc
}

// SetDefaultPluralExpression replaces the active plural expression. The
// expression is validated and trial-evaluated first; on failure the active
// expression is left unchanged and the error returned.
func (l *Locale) SetDefaultPluralExpression(expr string) error {
	e, err := compileChecked(expr, "")
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.activeExpr = e
	l.activeSrc = expr
	return nil
}

// SetWebEscape toggles HTML escaping of resolved strings.
func (l *Locale) SetWebEscape(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.webEscape = enabled
}

// SetEscapePlaceholders controls whether substituted placeholder values are
// escaped too (escape after substitution, the default) or only the
// translation template is (escape before substitution).
func (l *Locale) SetEscapePlaceholders(included bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.escapePlaceholders = included
}
