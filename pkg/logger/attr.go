package logger

import "log/slog"

// Attribute helpers use the empty Attr pattern for nil safety: a nil error
// produces an empty Attr that slog drops, so call sites need no nil checks.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Domain identifies a message domain in catalog diagnostics.
func Domain(name string) slog.Attr {
	return slog.String("domain", name)
}

// Key identifies the message key being resolved.
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// Expression carries a plural expression source string.
func Expression(expr string) slog.Attr {
	return slog.String("expression", expr)
}

// Count carries the quantity a plural lookup was resolved for.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Index carries the plural variant index an expression selected.
func Index(i int) slog.Attr {
	return slog.Int("index", i)
}

// Language carries a language tag.
func Language(tag string) slog.Attr {
	return slog.String("language", tag)
}

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}
