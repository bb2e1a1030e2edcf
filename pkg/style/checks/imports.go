package checks

import (
	"strings"

	"github.com/lumberlabs/pep8/pkg/style"
)

// ImportsOnSeparateLines flags several modules imported by one import
// statement.
type ImportsOnSeparateLines struct {
	style.BaseChecker
}

// NewImportsOnSeparateLines creates the E401 checker.
func NewImportsOnSeparateLines() *ImportsOnSeparateLines {
	return &ImportsOnSeparateLines{
		BaseChecker: style.NewBaseChecker(
			"imports-on-separate-lines",
			"Imports should usually be on separate lines. A from-import of "+
				"several names is fine.",
			"E401",
		),
	}
}

// Check fires on a comma inside a plain import statement.
func (c *ImportsOnSeparateLines) Check(ctx *style.LogicalContext) *style.Diagnostic {
	text := ctx.Line.Text
	if strings.HasPrefix(text, "import ") {
		if found := strings.IndexByte(text, ','); found > -1 {
			return style.NewDiagnostic("E401", style.Offset(found))
		}
	}
	return nil
}
