package checks

import (
	"regexp"
	"strings"

	"github.com/lumberlabs/pep8/pkg/style"
)

// lambdaRegex matches a lambda keyword, whose colon introduces a body
// rather than a compound statement.
var lambdaRegex = regexp.MustCompile(`\blambda\b`)

// CompoundStatement flags multiple statements folded onto one line,
// either by a colon-introduced suite or by a semicolon.
type CompoundStatement struct {
	style.BaseChecker
}

// NewCompoundStatement creates the E701/E702 checker.
func NewCompoundStatement() *CompoundStatement {
	return &CompoundStatement{
		BaseChecker: style.NewBaseChecker(
			"compound-statement",
			"Compound statements (multiple statements on the same line) are "+
				"generally discouraged. While sometimes it's okay to put an "+
				"if/for/while with a small body on the same line, never do "+
				"this for multi-clause statements.",
			"E701", "E702",
		),
	}
}

// Check fires on a colon followed by more text, unless the colon belongs
// to a dict literal, a slice, or a lambda, and on any semicolon.
func (c *CompoundStatement) Check(ctx *style.LogicalContext) *style.Diagnostic {
	text := ctx.Line.Text
	found := strings.IndexByte(text, ':')
	if found > -1 && found < len(text)-1 {
		before := text[:found]
		if strings.Count(before, "{") <= strings.Count(before, "}") &&
			strings.Count(before, "[") <= strings.Count(before, "]") &&
			!lambdaRegex.MatchString(before) {
			return style.NewDiagnostic("E701", style.Offset(found))
		}
	}
	if found := strings.IndexByte(text, ';'); found > -1 {
		return style.NewDiagnostic("E702", style.Offset(found))
	}
	return nil
}
