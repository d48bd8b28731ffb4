// Package printf formats translated message templates. It extends fmt's
// verbs with POSIX positional reordering ("%2$s", "%1$d") so translations
// can reorder arguments, and reports directive/argument count mismatches as
// an error so callers can fall back to the unsubstituted template.
package printf
