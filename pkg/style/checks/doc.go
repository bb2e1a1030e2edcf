// Package checks implements the built-in pep8 rule checkers: the physical
// line rules (indentation characters, trailing whitespace, line length)
// and the logical line rules (operator and bracket spacing, blank lines
// around definitions, compound statements, deprecated syntax).
//
// Checkers are pure functions over the checker contexts defined in the
// style package. Register assembles them into a registry in a fixed
// order, so runs are deterministic.
package checks
