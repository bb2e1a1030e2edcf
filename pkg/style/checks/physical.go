package checks

import (
	"strings"
	"unicode/utf8"

	"github.com/lumberlabs/pep8/pkg/source"
	"github.com/lumberlabs/pep8/pkg/style"
)

// lineTerminators are the characters stripped when isolating a line's
// content: newline, carriage return, and form feed.
const lineTerminators = "\n\r\x0c"

// pythonWhitespace is the character set Python's str.rstrip removes.
const pythonWhitespace = " \t\n\r\x0b\x0c"

// TabsOrSpaces flags indentation that mixes the file's dominant
// indentation character with the other kind.
type TabsOrSpaces struct {
	style.BaseChecker
}

// NewTabsOrSpaces creates the E101 checker.
func NewTabsOrSpaces() *TabsOrSpaces {
	return &TabsOrSpaces{
		BaseChecker: style.NewBaseChecker(
			"tabs-or-spaces",
			"Never mix tabs and spaces. The most popular way of indenting "+
				"Python is with spaces only. The second-most popular way is "+
				"with tabs only. Code indented with a mixture of tabs and "+
				"spaces should be converted to using spaces exclusively.",
			"E101",
		),
	}
}

// Check reports the first leading character that differs from the
// document's dominant indentation character.
func (c *TabsOrSpaces) Check(ctx *style.PhysicalContext) *style.Diagnostic {
	indent := source.LeadingIndentation(ctx.Line.Text)
	for offset := 0; offset < len(indent); offset++ {
		if indent[offset] != ctx.Document.IndentChar {
			return style.NewDiagnostic("E101", style.Offset(offset))
		}
	}
	return nil
}

// TabsObsolete flags any tab in leading indentation.
type TabsObsolete struct {
	style.BaseChecker
}

// NewTabsObsolete creates the W191 checker.
func NewTabsObsolete() *TabsObsolete {
	return &TabsObsolete{
		BaseChecker: style.NewBaseChecker(
			"tabs-obsolete",
			"For new projects, spaces-only are strongly recommended over "+
				"tabs. Most editors have features that make this easy to do.",
			"W191",
		),
	}
}

// Check reports the first tab in the line's leading indentation.
func (c *TabsObsolete) Check(ctx *style.PhysicalContext) *style.Diagnostic {
	indent := source.LeadingIndentation(ctx.Line.Text)
	if column := strings.IndexByte(indent, '\t'); column >= 0 {
		return style.NewDiagnostic("W191", style.Offset(column))
	}
	return nil
}

// TrailingWhitespace flags whitespace at the end of a line: W291 on a
// line with content, W293 on a whitespace-only line.
type TrailingWhitespace struct {
	style.BaseChecker
}

// NewTrailingWhitespace creates the W291/W293 checker.
func NewTrailingWhitespace() *TrailingWhitespace {
	return &TrailingWhitespace{
		BaseChecker: style.NewBaseChecker(
			"trailing-whitespace",
			"Trailing whitespace is superfluous, except when it occurs as "+
				"part of a blank line: matching a blank line to its "+
				"indentation level avoids mistakenly terminating a "+
				"multi-line statement when pasting code into the standard "+
				"Python interpreter. The codes differ so that indented "+
				"blank lines can be filtered separately.",
			"W291", "W293",
		),
	}
}

// Check compares the line with and without trailing whitespace.
func (c *TrailingWhitespace) Check(ctx *style.PhysicalContext) *style.Diagnostic {
	withoutNewlines := strings.TrimRight(ctx.Line.Text, lineTerminators)
	withoutSpaces := strings.TrimRight(withoutNewlines, pythonWhitespace)
	if withoutNewlines != withoutSpaces && withoutSpaces == "" {
		return style.NewDiagnostic("W293", style.NoColumn())
	}
	if withoutNewlines != withoutSpaces {
		return style.NewDiagnostic("W291", style.Offset(len(withoutSpaces)))
	}
	return nil
}

// FixLine strips trailing whitespace, preserving the line's terminator.
func (c *TrailingWhitespace) FixLine(ctx *style.PhysicalContext) string {
	text := ctx.Line.Text
	return strings.TrimRight(text, pythonWhitespace) + source.LineEndingOf(text)
}

// TrailingBlankLines flags a blank line at the end of the file.
type TrailingBlankLines struct {
	style.BaseChecker
}

// NewTrailingBlankLines creates the W391 checker.
func NewTrailingBlankLines() *TrailingBlankLines {
	return &TrailingBlankLines{
		BaseChecker: style.NewBaseChecker(
			"trailing-blank-lines",
			"Trailing blank lines are superfluous.",
			"W391",
		),
	}
}

// Check fires only on the document's last line when it is blank.
func (c *TrailingBlankLines) Check(ctx *style.PhysicalContext) *style.Diagnostic {
	if strings.TrimSpace(ctx.Line.Text) == "" && ctx.Line.Number == ctx.Document.NumLines() {
		return style.NewDiagnostic("W391", style.NoColumn())
	}
	return nil
}

// MissingNewline flags a final line without a terminator.
type MissingNewline struct {
	style.BaseChecker
}

// NewMissingNewline creates the W292 checker.
func NewMissingNewline() *MissingNewline {
	return &MissingNewline{
		BaseChecker: style.NewBaseChecker(
			"missing-newline",
			"The last line should have a newline.",
			"W292",
		),
	}
}

// Check fires when the line carries no trailing whitespace at all, which
// only the unterminated final line can satisfy.
func (c *MissingNewline) Check(ctx *style.PhysicalContext) *style.Diagnostic {
	text := ctx.Line.Text
	if strings.TrimRight(text, pythonWhitespace) == text {
		return style.NewDiagnostic("W292", style.Offset(len(text)))
	}
	return nil
}

// FixLine appends the document's dominant terminator when missing.
func (c *MissingNewline) FixLine(ctx *style.PhysicalContext) string {
	if c.Check(ctx) != nil {
		return ctx.Line.Text + ctx.Document.LineEnding
	}
	return ctx.Line.Text
}

// MaximumLineLength flags physical lines longer than the configured
// maximum.
type MaximumLineLength struct {
	style.BaseChecker
}

// NewMaximumLineLength creates the E501 checker.
func NewMaximumLineLength() *MaximumLineLength {
	return &MaximumLineLength{
		BaseChecker: style.NewBaseChecker(
			"maximum-line-length",
			"Limit all lines to a maximum of 79 characters. There are "+
				"still many devices around that are limited to 80 character "+
				"lines; plus, limiting windows to 80 characters makes it "+
				"possible to have several windows side-by-side.",
			"E501",
		),
	}
}

// Check measures the rendered length of the line: rune count when the
// line is valid UTF-8, byte count otherwise.
func (c *MaximumLineLength) Check(ctx *style.PhysicalContext) *style.Diagnostic {
	maxLength := ctx.Config.MaxLineLength
	stripped := strings.TrimRight(ctx.Line.Text, pythonWhitespace)

	length := len(stripped)
	if length > maxLength && utf8.ValidString(stripped) {
		length = utf8.RuneCountInString(stripped)
	}
	if length > maxLength {
		return style.NewDiagnostic("E501", style.Offset(maxLength), length)
	}
	return nil
}
