package checks

import (
	"regexp"
	"strings"

	"github.com/lumberlabs/pep8/pkg/style"
)

// docstringRegex matches a logical line that opens a docstring, allowing
// the u/r prefixes.
var docstringRegex = regexp.MustCompile(`^u?r?["']`)

// BlankLines enforces the blank-line conventions around function and
// class definitions: two blank lines at top level, one between methods,
// none after a decorator.
type BlankLines struct {
	style.BaseChecker
}

// NewBlankLines creates the E301/E302/E303/E304 checker.
func NewBlankLines() *BlankLines {
	return &BlankLines{
		BaseChecker: style.NewBaseChecker(
			"blank-lines",
			"Separate top-level function and class definitions with two "+
				"blank lines. Method definitions inside a class are "+
				"separated by a single blank line. Extra blank lines may be "+
				"used (sparingly) to separate groups of related functions.",
			"E301", "E302", "E303", "E304",
		),
	}
}

// Check applies the blank-line rules using the counters carried across
// statements. The first statement of a file is exempt.
func (c *BlankLines) Check(ctx *style.LogicalContext) *style.Diagnostic {
	line := ctx.Line
	prev := ctx.Previous
	if line.Number == 1 || prev == nil {
		return nil
	}

	maxBlank := line.BlankLinesBefore
	if line.BlankLinesBeforeComment > maxBlank {
		maxBlank = line.BlankLinesBeforeComment
	}

	switch {
	case strings.HasPrefix(prev.Dedented, "@"):
		if maxBlank > 0 {
			return style.NewDiagnostic("E304", style.NoColumn())
		}

	case maxBlank > 2 || (line.IndentLevel > 0 && maxBlank == 2):
		return style.NewDiagnostic("E303", style.NoColumn(), maxBlank)

	case strings.HasPrefix(line.Dedented, "def ") ||
		strings.HasPrefix(line.Dedented, "class ") ||
		strings.HasPrefix(line.Dedented, "@"):
		if line.IndentLevel > 0 {
			// First statement in a new block and statements after a
			// docstring opener need no separating blank line.
			if maxBlank == 0 && prev.IndentLevel >= line.IndentLevel &&
				!docstringRegex.MatchString(prev.Text) {
				return style.NewDiagnostic("E301", style.NoColumn())
			}
		} else if maxBlank != 2 {
			return style.NewDiagnostic("E302", style.NoColumn(), maxBlank)
		}
	}

	return nil
}
