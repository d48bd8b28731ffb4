package pluralexpr

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// allowedChars is the whitelist of characters a plural expression may
// contain. It is the only thing standing between catalog data and the
// interpreter, so it is checked before any parsing on every entry point.
const allowedChars = "0123456789n ()%=&!?|:<>"

// Expr is a compiled plural expression over the quantity variable n.
// It is immutable and safe for concurrent use.
type Expr struct {
	src  string
	root node
}

// Compile validates the character set of expr, parses it, and returns a
// reusable Expr. It fails with ErrInvalidSyntax if expr contains a character
// outside the allowed set or is not a well-formed boolean/ternary expression.
func Compile(expr string) (*Expr, error) {
	if err := checkCharset(expr); err != nil {
		return nil, err
	}
	root, err := parse(expr)
	if err != nil {
		return nil, errors.Join(ErrInvalidSyntax, fmt.Errorf("cannot parse %q: %w", expr, err))
	}
	return &Expr{src: expr, root: root}, nil
}

// MustCompile is like Compile but panics on error. Intended for
// package-level default expressions.
func MustCompile(expr string) *Expr {
	e, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return e
}

// Evaluate compiles and evaluates expr for the given count in one shot.
// The character whitelist runs on every call, so ad-hoc expressions (for
// example a caller-supplied default plural rule under validation) are never
// interpreted unchecked. The domain label, when non-empty, is attached to
// errors for diagnostics.
func Evaluate(expr string, n int, domain string) (int, error) {
	e, err := Compile(expr)
	if err != nil {
		return 0, withDomain(err, domain)
	}
	idx, err := e.Eval(n)
	if err != nil {
		return 0, withDomain(err, domain)
	}
	return idx, nil
}

// Eval evaluates the expression with n bound to the absolute value of the
// given count and returns the selected variant index. Boolean results map
// to 0 and 1; integer results (from ternary chains) are returned directly.
func (e *Expr) Eval(n int) (int, error) {
	if n < 0 {
		n = -n
	}
	v, err := e.root.eval(n)
	if err != nil {
		return 0, errors.Join(ErrInvalidSyntax, fmt.Errorf("cannot evaluate %q with n=%d: %w", e.src, n, err))
	}
	if v.isBool {
		if v.b {
			return 1, nil
		}
		return 0, nil
	}
	if v.i < 0 {
		return 0, errors.Join(ErrInvalidSyntax, fmt.Errorf("expression %q yields negative index %d", e.src, v.i))
	}
	return v.i, nil
}

// EvalNumber evaluates the expression for a quantity that arrived as a
// float (for example from decoded JSON). NaN and infinities fail with
// ErrInvalidQuantity; finite values are truncated toward zero.
func (e *Expr) EvalNumber(x float64) (int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, errors.Join(ErrInvalidQuantity, fmt.Errorf("quantity %v is not a valid number", x))
	}
	return e.Eval(int(x))
}

// String returns the source expression.
func (e *Expr) String() string {
	return e.src
}

func checkCharset(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return errors.Join(ErrInvalidSyntax, errors.New("expression is blank"))
	}
	for _, r := range expr {
		if !strings.ContainsRune(allowedChars, r) {
			return errors.Join(ErrInvalidSyntax, fmt.Errorf("disallowed character %q in expression %q", r, expr))
		}
	}
	return nil
}

func withDomain(err error, domain string) error {
	if domain == "" {
		return err
	}
	return fmt.Errorf("domain %q: %w", domain, err)
}
