// Package numeric implements exact decimal arithmetic and a calculator for
// arithmetic expressions over decimals.
//
// A Decimal holds its digits in base ten, so sums of money like 0.10 + 0.20
// come out as 0.30 rather than a nearby binary fraction. Division stops after
// a configurable number of decimal places and truncates; it never rounds.
//
// Expressions support +, -, *, / and parentheses with the usual precedence.
// A sign is allowed only at the start of an (optionally parenthesized)
// expression. Operator characters that touch each other scan as one token, so
// "1 + (2)" is fine but "1+(2)" is not.
//
//	s, err := numeric.Evaluate("(1 + 2) * 3", numeric.DefaultConfig())
//	// s == "9.00"
//
// Separators and precision come from a Config, which is passed explicitly to
// everything that needs one. The zero Config is the default.
package numeric
