package printf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrBadFormat is returned when substitution could not be applied cleanly,
// for example when the template's directives do not match the supplied
// arguments.
var ErrBadFormat = errors.New("format substitution failed")

// Format substitutes args into a printf-style template. Besides the standard
// fmt directives it supports POSIX positional reordering ("%2$s costs %1$d"),
// which translated strings commonly rely on to change argument order.
//
// It returns ErrBadFormat when the template's directives do not line up with
// the supplied arguments, so callers can fall back to the unsubstituted
// template. The check counts directives rather than inspecting the rendered
// output, so results that legitimately contain "%!" pass through untouched.
func Format(template string, args ...any) (string, error) {
	normalized, order, directives := parseTemplate(template)
	switch {
	case order != nil:
		if len(order) != directives {
			return "", errors.Join(ErrBadFormat, fmt.Errorf("template %q mixes positional and sequential directives", template))
		}
		for _, v := range order {
			if v < 0 || v >= len(args) {
				return "", errors.Join(ErrBadFormat, fmt.Errorf("template %q references argument %d of %d", template, v+1, len(args)))
			}
		}
	case directives != len(args):
		return "", errors.Join(ErrBadFormat, fmt.Errorf("template %q carries %d directive(s) for %d argument(s)", template, directives, len(args)))
	}
	return sprintf(normalized, order, args...), nil
}

// parseTemplate converts a template that relies on reordering to a standard
// one, e.g. "%2$d bytes on %1$s." becomes "%d bytes on %s.". The returned
// indices carry the argument order; nil means no reordering was used. It also
// counts the argument-consuming directives, "%%" and a trailing bare percent
// excluded.
func parseTemplate(template string) (string, []int, int) {
	var idx []int
	var directives int
	var b strings.Builder
	end := len(template)
	for i := 0; i < end; {
		last := i
		for i < end && template[i] != '%' {
			i++
		}
		if i > last {
			b.WriteString(template[last:i])
		}
		if i >= end {
			break
		}
		i++
		if i >= end {
			b.WriteByte('%')
			break
		}
		if template[i] == '%' {
			b.WriteString("%%")
			i++
			continue
		}
		directives++
		b.WriteByte('%')
		last = i
		for i < end && unicode.IsDigit(rune(template[i])) {
			i++
		}
		if i > last {
			if i < end && template[i] == '$' {
				// Positional directive: capture the 1-based index and
				// drop it from the normalized template.
				pos, _ := strconv.Atoi(template[last:i])
				idx = append(idx, pos-1)
				i++
			} else {
				b.WriteString(template[last:i])
			}
		}
	}
	return b.String(), idx, directives
}

// sprintf applies fmt.Sprintf, reordering args when positional indices were
// parsed out of the template.
func sprintf(format string, order []int, args ...any) string {
	if order == nil {
		return fmt.Sprintf(format, args...)
	}
	reordered := make([]any, len(order))
	for k, v := range order {
		if v >= 0 && v < len(args) {
			reordered[k] = args[v]
		}
	}
	return fmt.Sprintf(format, reordered...)
}
