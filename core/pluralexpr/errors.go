package pluralexpr

import "errors"

var (
	// ErrInvalidSyntax is returned when an expression contains a character
	// outside the allowed set or cannot be parsed or evaluated.
	ErrInvalidSyntax = errors.New("invalid plural expression")
	// ErrInvalidQuantity is returned when the quantity is not a usable number.
	ErrInvalidQuantity = errors.New("invalid quantity")
)
