// Package logger provides log/slog attribute helpers for the catalog's
// diagnostic channel, keeping attribute keys consistent across packages.
package logger
