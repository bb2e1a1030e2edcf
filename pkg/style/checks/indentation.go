package checks

import (
	"strings"

	"github.com/lumberlabs/pep8/pkg/style"
)

// Indentation enforces four spaces per indentation level and matches each
// statement's indentation against what the previous statement promised.
type Indentation struct {
	style.BaseChecker
}

// NewIndentation creates the E111/E112/E113 checker.
func NewIndentation() *Indentation {
	return &Indentation{
		BaseChecker: style.NewBaseChecker(
			"indentation",
			"Use 4 spaces per indentation level. For really old code that "+
				"you don't want to mess up, you can continue to use 8-space "+
				"tabs.",
			"E111", "E112", "E113",
		),
	}
}

// Check compares indent levels across consecutive statements. A statement
// ending in ':' expects the next one to be deeper; anything else forbids
// it. E111 only applies to space-indented files.
func (c *Indentation) Check(ctx *style.LogicalContext) *style.Diagnostic {
	line := ctx.Line
	if ctx.Document.IndentChar == ' ' && line.IndentLevel%4 != 0 {
		return style.NewDiagnostic("E111", style.NoColumn())
	}
	prev := ctx.Previous
	if prev == nil {
		return nil
	}
	indentExpect := strings.HasSuffix(prev.Text, ":")
	if indentExpect && line.IndentLevel <= prev.IndentLevel {
		return style.NewDiagnostic("E112", style.NoColumn())
	}
	if line.IndentLevel > prev.IndentLevel && !indentExpect {
		return style.NewDiagnostic("E113", style.NoColumn())
	}
	return nil
}
