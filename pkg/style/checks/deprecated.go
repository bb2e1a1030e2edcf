package checks

import (
	"regexp"
	"strings"

	"github.com/lumberlabs/pep8/pkg/style"
)

// HasKey flags the dict.has_key() method, removed in Python 3.
type HasKey struct {
	style.BaseChecker
}

// NewHasKey creates the W601 checker.
func NewHasKey() *HasKey {
	return &HasKey{
		BaseChecker: style.NewBaseChecker(
			"has-key",
			"The {}.has_key() method will be removed in a future version of "+
				"Python. Use the 'in' operation instead.",
			"W601",
		),
	}
}

// Check looks for the method call in the normalized text.
func (c *HasKey) Check(ctx *style.LogicalContext) *style.Diagnostic {
	if pos := strings.Index(ctx.Line.Text, ".has_key("); pos > -1 {
		return style.NewDiagnostic("W601", style.Offset(pos))
	}
	return nil
}

// raiseCommaRegex matches the comma of the two-argument raise form,
// anchored at the start of the statement.
var raiseCommaRegex = regexp.MustCompile(`^raise\s+\w+\s*(,)`)

// RaiseComma flags the deprecated two-argument raise statement.
type RaiseComma struct {
	style.BaseChecker
}

// NewRaiseComma creates the W602 checker.
func NewRaiseComma() *RaiseComma {
	return &RaiseComma{
		BaseChecker: style.NewBaseChecker(
			"raise-comma",
			"When raising an exception, use \"raise ValueError('message')\" "+
				"instead of the older form \"raise ValueError, 'message'\". "+
				"The paren-using form means long arguments need no line "+
				"continuation characters; the older form is removed in "+
				"Python 3.",
			"W602",
		),
	}
}

// Check matches the raise form at the start of the statement and reports
// the comma's position.
func (c *RaiseComma) Check(ctx *style.LogicalContext) *style.Diagnostic {
	if idx := raiseCommaRegex.FindStringSubmatchIndex(ctx.Line.Text); idx != nil {
		return style.NewDiagnostic("W602", style.Offset(idx[2]))
	}
	return nil
}

// NotEqual flags the obsolete '<>' spelling of the inequality operator.
type NotEqual struct {
	style.BaseChecker
}

// NewNotEqual creates the W603 checker.
func NewNotEqual() *NotEqual {
	return &NotEqual{
		BaseChecker: style.NewBaseChecker(
			"not-equal",
			"!= can also be written <>, but this is an obsolete usage kept "+
				"for backwards compatibility only. New code should always "+
				"use !=. The older syntax is removed in Python 3.",
			"W603",
		),
	}
}

// Check looks for the operator in the normalized text.
func (c *NotEqual) Check(ctx *style.LogicalContext) *style.Diagnostic {
	if pos := strings.Index(ctx.Line.Text, "<>"); pos > -1 {
		return style.NewDiagnostic("W603", style.Offset(pos))
	}
	return nil
}

// Backticks flags the backtick repr syntax, removed in Python 3.
type Backticks struct {
	style.BaseChecker
}

// NewBackticks creates the W604 checker.
func NewBackticks() *Backticks {
	return &Backticks{
		BaseChecker: style.NewBaseChecker(
			"backticks",
			"Backticks are removed in Python 3. Use repr() instead.",
			"W604",
		),
	}
}

// Check looks for a backtick in the normalized text.
func (c *Backticks) Check(ctx *style.LogicalContext) *style.Diagnostic {
	if pos := strings.IndexByte(ctx.Line.Text, '`'); pos > -1 {
		return style.NewDiagnostic("W604", style.Offset(pos))
	}
	return nil
}
