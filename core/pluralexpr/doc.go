// Package pluralexpr compiles and evaluates gettext-style plural expressions:
// restricted C-like boolean/ternary expressions over a single quantity
// variable n, used to select a plural variant index.
//
// Expressions are limited to integer literals, the variable n, modulo,
// comparisons, boolean combinators, ternary chains, and parentheses. A
// character whitelist is enforced before any parsing; input that passes it
// is parsed once into a small expression tree and interpreted per call, so
// no general-purpose evaluation primitive is ever involved.
//
// Basic usage:
//
//	expr, err := pluralexpr.Compile("(n > 1)")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	idx, _ := expr.Eval(5) // 1
//	idx, _ = expr.Eval(1)  // 0
//
// Ternary chains select among more than two forms:
//
//	expr, _ := pluralexpr.Compile("n==1 ? 0 : n==2 ? 1 : 2")
//	idx, _ := expr.Eval(2) // 1
//
// Counts are normalized to their absolute value, so negative quantities
// need no special handling by callers.
package pluralexpr
