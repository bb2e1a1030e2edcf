package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lumberlabs/pep8/pkg/analysis"
)

// maxSourceWidth bounds the display width of source lines echoed under a
// diagnostic.
const maxSourceWidth = 120

// FormatDiagnostic formats a single diagnostic in the classic
// "path:row:col: CODE message" shape, with the code colored by severity.
func (s *Styles) FormatDiagnostic(entry *analysis.DiagnosticEntry) string {
	code := s.Code.Render(entry.Code)
	if entry.Severity == analysis.SeverityError {
		code = s.Error.Render(entry.Code)
	} else if entry.Severity == analysis.SeverityWarning {
		code = s.Warning.Render(entry.Code)
	}

	return fmt.Sprintf("%s%s %s %s\n",
		s.FilePath.Render(entry.FilePath),
		s.Location.Render(fmt.Sprintf(":%d:%d:", entry.Row, entry.Column)),
		code,
		s.Message.Render(entry.Message),
	)
}

// FormatSourceContext renders the offending physical line with a caret
// under the reported column. The caret line keeps the source line's own
// whitespace so tabs stay aligned; every other character becomes a space.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	line = strings.TrimRight(line, "\r\n")

	display := line
	if runewidth.StringWidth(display) > maxSourceWidth {
		display = runewidth.Truncate(display, maxSourceWidth, "...")
	}
	builder.WriteString(s.SourceLine.Render(display) + "\n")

	if column > 0 {
		prefix := line
		if column-1 <= len(line) {
			prefix = line[:column-1]
		}
		builder.WriteString(caretPadding(prefix) + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// caretPadding blanks out the prefix, preserving whitespace characters so
// the caret lands under the reported column even on tab-indented lines.
func caretPadding(prefix string) string {
	var padding strings.Builder
	for _, r := range prefix {
		switch r {
		case ' ', '\t':
			padding.WriteRune(r)
		default:
			padding.WriteByte(' ')
		}
	}
	return padding.String()
}

// FormatRuleProse renders the rule explanation shown by --show-pep8.
func (s *Styles) FormatRuleProse(prose string) string {
	if prose == "" {
		return ""
	}
	var builder strings.Builder
	for _, line := range strings.Split(strings.TrimRight(prose, "\n"), "\n") {
		builder.WriteString("    " + s.RuleProse.Render(line) + "\n")
	}
	return builder.String()
}

// FormatFileHeader formats a file header for quiet-mode listings.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
