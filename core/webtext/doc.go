// Package webtext prepares translated strings for web output: HTML entity
// escaping with optional conversion of newlines to line-break markers.
package webtext
