// Package source holds the raw-text view of an analyzed file: its physical
// lines, the dominant indentation character, and the dominant line ending.
// Everything here is computed once from the file content and never mutated,
// so a Document can be shared freely across checkers.
package source

import "strings"

// Indentation characters recognized in leading whitespace.
const (
	IndentSpace = ' '
	IndentTab   = '\t'
)

// Document is an immutable snapshot of one source file split into physical
// lines. Lines keep their trailing terminators so length and line-ending
// checks see the file exactly as stored.
type Document struct {
	// Lines are the raw physical lines in file order. Index 0 is line 1.
	Lines []string

	// IndentChar is the dominant indentation character, ' ' or '\t'.
	IndentChar byte

	// LineEnding is the dominant line terminator. Empty when the file is
	// empty or its majority line carries no terminator.
	LineEnding string
}

// NewDocument builds a Document from physical lines that include their
// terminators, the way SplitLines produces them.
func NewDocument(lines []string) *Document {
	return &Document{
		Lines:      lines,
		IndentChar: mostCommonIndentChar(lines),
		LineEnding: mostCommonLineEnding(lines),
	}
}

// NewDocumentFromBytes splits raw file content into lines and builds a
// Document from them.
func NewDocumentFromBytes(content []byte) *Document {
	return NewDocument(SplitLines(content))
}

// NumLines returns the number of physical lines.
func (d *Document) NumLines() int {
	return len(d.Lines)
}

// Line returns the 1-based physical line, or "" when n is out of range.
// Out-of-range reads are how the tokenizer learns the file has ended.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.Lines) {
		return ""
	}
	return d.Lines[n-1]
}

// SplitLines splits content into physical lines, each keeping its
// terminator. The final line is kept even when unterminated.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	var lines []string
	start := 0
	for idx := 0; idx < len(content); idx++ {
		if content[idx] == '\n' {
			lines = append(lines, string(content[start:idx+1]))
			start = idx + 1
		}
	}
	if start < len(content) {
		lines = append(lines, string(content[start:]))
	}
	return lines
}

// mostCommonIndentChar counts spaces vs tabs across every line's leading
// indentation run and returns the majority character. Ties resolve to a
// space: candidates compare as (count, char) pairs and ' ' orders above
// '\t'.
func mostCommonIndentChar(lines []string) byte {
	var spaces, tabs int
	for _, line := range lines {
		for _, ch := range []byte(LeadingIndentation(line)) {
			switch ch {
			case IndentSpace:
				spaces++
			case IndentTab:
				tabs++
			}
		}
	}
	if tabs > spaces {
		return IndentTab
	}
	return IndentSpace
}

// mostCommonLineEnding returns the majority terminator across all lines,
// or "" for empty input. Ties resolve to the lexicographically larger
// terminator, so "\r\n" beats "\n" and any terminator beats none.
func mostCommonLineEnding(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	counts := make(map[string]int)
	for _, line := range lines {
		counts[LineEndingOf(line)]++
	}

	var best string
	bestCount := -1
	for ending, count := range counts {
		if count > bestCount || (count == bestCount && ending > best) {
			best = ending
			bestCount = count
		}
	}
	return best
}

// TrimLineEnding returns s without its trailing '\r' and '\n' characters.
func TrimLineEnding(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// LineEndingOf returns the terminator suffix of s, or "" when s is
// unterminated.
func LineEndingOf(s string) string {
	return s[len(TrimLineEnding(s)):]
}

// LeadingIndentation returns the leading run of spaces and tabs in s.
func LeadingIndentation(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != IndentSpace && s[i] != IndentTab {
			return s[:i]
		}
	}
	return s
}

// IndentLevel returns the expanded width of a line's leading indentation.
// Spaces count one column and tabs advance to the next multiple of eight;
// expansion stops at the first character that is neither.
func IndentLevel(line string) int {
	level := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case IndentTab:
			level = level/8*8 + 8
		case IndentSpace:
			level++
		default:
			return level
		}
	}
	return level
}
