package checks

import (
	"regexp"
	"strings"

	"github.com/lumberlabs/pep8/pkg/style"
)

// extraneousWhitespaceRegex matches a space just inside an open bracket or
// just before a closing bracket or separator.
var extraneousWhitespaceRegex = regexp.MustCompile(`[\[({] | [\])},;:]`)

// ExtraneousWhitespace flags whitespace immediately inside brackets and
// immediately before commas, semicolons, and colons.
type ExtraneousWhitespace struct {
	style.BaseChecker
}

// NewExtraneousWhitespace creates the E201/E202/E203 checker.
func NewExtraneousWhitespace() *ExtraneousWhitespace {
	return &ExtraneousWhitespace{
		BaseChecker: style.NewBaseChecker(
			"extraneous-whitespace",
			"Avoid extraneous whitespace immediately inside parentheses, "+
				"brackets or braces, and immediately before a comma, "+
				"semicolon, or colon.",
			"E201", "E202", "E203",
		),
	}
}

// Check scans the normalized text for padded brackets and separators. A
// space following a comma is tolerated.
func (c *ExtraneousWhitespace) Check(ctx *style.LogicalContext) *style.Diagnostic {
	text := ctx.Line.Text
	for _, loc := range extraneousWhitespaceRegex.FindAllStringIndex(text, -1) {
		match := text[loc[0]:loc[1]]
		char := strings.TrimSpace(match)
		found := loc[0]
		if match == char+" " {
			return style.NewDiagnostic("E201", style.Offset(found+1), char)
		}
		if match == " "+char && (found == 0 || text[found-1] != ',') {
			if char == ")" || char == "]" || char == "}" {
				return style.NewDiagnostic("E202", style.Offset(found), char)
			}
			return style.NewDiagnostic("E203", style.Offset(found), char)
		}
	}
	return nil
}

// MissingWhitespaceAfterSeparator flags a comma, semicolon, or colon not
// followed by whitespace.
type MissingWhitespaceAfterSeparator struct {
	style.BaseChecker
}

// NewMissingWhitespaceAfterSeparator creates the E231 checker.
func NewMissingWhitespaceAfterSeparator() *MissingWhitespaceAfterSeparator {
	return &MissingWhitespaceAfterSeparator{
		BaseChecker: style.NewBaseChecker(
			"missing-whitespace-after-separator",
			"Each comma, semicolon or colon should be followed by "+
				"whitespace. Slice colons and the comma of a single-element "+
				"tuple are exempt.",
			"E231",
		),
	}
}

// Check walks the text looking for bare separators, skipping slice colons
// (more unmatched '[' than ']' before the colon) and trailing commas
// closed immediately by a paren.
func (c *MissingWhitespaceAfterSeparator) Check(ctx *style.LogicalContext) *style.Diagnostic {
	text := ctx.Line.Text
	for index := 0; index < len(text)-1; index++ {
		char := text[index]
		if char != ',' && char != ';' && char != ':' {
			continue
		}
		next := text[index+1]
		if next == ' ' || next == '\t' {
			continue
		}
		before := text[:index]
		if char == ':' && strings.Count(before, "[") > strings.Count(before, "]") {
			continue // slice syntax, no space required
		}
		if char == ',' && next == ')' {
			continue // single-element tuple: (3,)
		}
		return style.NewDiagnostic("E231", style.Offset(index), string(char))
	}
	return nil
}

// whitespaceAroundCommaSeparators are checked by E241/E242.
var whitespaceAroundCommaSeparators = []string{",", ";", ":"}

// WhitespaceAroundComma flags alignment whitespace after separators.
// Ignored by default via the E24 prefix in the stock ignore list.
type WhitespaceAroundComma struct {
	style.BaseChecker
}

// NewWhitespaceAroundComma creates the E241/E242 checker.
func NewWhitespaceAroundComma() *WhitespaceAroundComma {
	return &WhitespaceAroundComma{
		BaseChecker: style.NewBaseChecker(
			"whitespace-around-comma",
			"Avoid extraneous whitespace after a comma used to align "+
				"values with another line. These checks are disabled by "+
				"default.",
			"E241", "E242",
		),
	}
}

// Check looks for a double space or a tab following a separator.
func (c *WhitespaceAroundComma) Check(ctx *style.LogicalContext) *style.Diagnostic {
	text := ctx.Line.Text
	for _, separator := range whitespaceAroundCommaSeparators {
		if found := strings.Index(text, separator+"  "); found > -1 {
			return style.NewDiagnostic("E241", style.Offset(found+1), separator)
		}
		if found := strings.Index(text, separator+"\t"); found > -1 {
			return style.NewDiagnostic("E242", style.Offset(found+1), separator)
		}
	}
	return nil
}

// namedParameterRegex finds parens and spaced '=' signs while excluding
// comparison operators that contain '='.
var namedParameterRegex = regexp.MustCompile(`[()]|\s=[^=]|[^=!<>]=\s`)

// WhitespaceAroundNamedParameterEquals flags spaces around '=' when it
// binds a keyword argument or default parameter value.
type WhitespaceAroundNamedParameterEquals struct {
	style.BaseChecker
}

// NewWhitespaceAroundNamedParameterEquals creates the E251 checker.
func NewWhitespaceAroundNamedParameterEquals() *WhitespaceAroundNamedParameterEquals {
	return &WhitespaceAroundNamedParameterEquals{
		BaseChecker: style.NewBaseChecker(
			"named-parameter-equals",
			"Don't use spaces around the '=' sign when used to indicate a "+
				"keyword argument or a default parameter value.",
			"E251",
		),
	}
}

// Check tracks paren nesting through the match stream; a spaced '=' only
// violates inside parens.
func (c *WhitespaceAroundNamedParameterEquals) Check(ctx *style.LogicalContext) *style.Diagnostic {
	text := ctx.Line.Text
	parens := 0
	for _, loc := range namedParameterRegex.FindAllStringIndex(text, -1) {
		match := text[loc[0]:loc[1]]
		if parens > 0 && len(match) == 3 {
			return style.NewDiagnostic("E251", style.Offset(loc[0]))
		}
		switch match {
		case "(":
			parens++
		case ")":
			parens--
		}
	}
	return nil
}
