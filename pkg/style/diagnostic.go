// Package style provides the logical-line reconstruction engine and the
// checker-dispatch framework for pep8. It consumes the pytokenize token
// stream, rebuilds one normalized line per statement, and runs ordered
// collections of physical- and logical-line checkers over the file,
// producing positioned diagnostics.
package style

import "fmt"

// Column is the location payload a checker attaches to a diagnostic. It is
// one of three shapes: absent, a byte offset into the logical line's
// normalized text, or a pre-resolved source position.
type Column struct {
	kind     columnKind
	offset   int
	row, col int
}

type columnKind uint8

const (
	columnNone columnKind = iota
	columnOffset
	columnAt
)

// NoColumn reports a diagnostic for the line as a whole; it resolves to
// column 0.
func NoColumn() Column {
	return Column{kind: columnNone}
}

// Offset reports a byte offset into the line's text. For logical lines the
// offset is translated back through the token offset mapping.
func Offset(n int) Column {
	return Column{kind: columnOffset, offset: n}
}

// At reports an already-resolved source position, used by checkers that
// work directly with token coordinates.
func At(row, col int) Column {
	return Column{kind: columnAt, row: row, col: col}
}

// LineOrigin resolves a reported column to an absolute source location.
// Implemented by LogicalLine and by the physical-line wrapper the engine
// attaches when a physical checker reports.
type LineOrigin interface {
	ResolveColumn(c Column) (row, col int)
}

// Diagnostic is one reported style issue. The code, location, and rendered
// message are the externally visible contract; consumers filter by code
// prefix, so codes are stable.
type Diagnostic struct {
	// Code is the stable identifier, [EW] followed by three digits. The
	// letter is the severity class, the first digit the category.
	Code string

	// Column locates the issue within the originating line.
	Column Column

	// Args are the substitution values for the message template.
	Args []any

	origin LineOrigin
}

// NewDiagnostic creates a diagnostic with the given code, column, and
// message arguments. The engine attaches the originating line.
func NewDiagnostic(code string, column Column, args ...any) *Diagnostic {
	return &Diagnostic{Code: code, Column: column, Args: args}
}

// IsWarning reports whether the code is warning-class (W prefix).
func (d *Diagnostic) IsWarning() bool {
	return len(d.Code) > 0 && d.Code[0] == 'W'
}

// Message renders the human-readable text for this diagnostic.
func (d *Diagnostic) Message() string {
	tmpl, ok := messageTemplates[d.Code]
	if !ok {
		return d.Code
	}
	if len(d.Args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, d.Args...)
}

// Description returns "CODE message".
func (d *Diagnostic) Description() string {
	return d.Code + " " + d.Message()
}

// Location resolves the diagnostic to its absolute (row, 0-based column)
// in the analyzed file.
func (d *Diagnostic) Location() (row, col int) {
	if d.origin == nil {
		return 0, 0
	}
	return d.origin.ResolveColumn(d.Column)
}

// messageTemplates maps each diagnostic code to its message template.
// Wording is part of the external contract and tracks the classic pep8
// messages exactly.
var messageTemplates = map[string]string{
	"E101": "indentation contains mixed spaces and tabs",
	"E111": "indentation is not a multiple of four",
	"E112": "expected an indented block",
	"E113": "unexpected indentation",
	"E201": "whitespace after '%s'",
	"E202": "whitespace before '%s'",
	"E203": "whitespace before '%s'",
	"E211": "whitespace before '%s'",
	"E221": "multiple spaces before operator",
	"E222": "multiple spaces after operator",
	"E223": "tab before operator",
	"E224": "tab after operator",
	"E225": "missing whitespace around operator",
	"E231": "missing whitespace after '%s'",
	"E241": "multiple spaces after '%s'",
	"E242": "tab after '%s'",
	"E251": "no spaces around keyword / parameter equals",
	"E261": "at least two spaces before inline comment",
	"E262": "inline comment should start with '# '",
	"E301": "expected 1 blank line, found 0",
	"E302": "expected 2 blank lines, found %d",
	"E303": "too many blank lines (%d)",
	"E304": "blank lines found after function decorator",
	"E401": "multiple imports on one line",
	"E501": "line too long (%d characters)",
	"E701": "multiple statements on one line (colon)",
	"E702": "multiple statements on one line (semicolon)",
	"W191": "indentation contains tabs",
	"W291": "trailing whitespace",
	"W292": "no newline at end of file",
	"W293": "blank line contains whitespace",
	"W391": "blank line at end of file",
	"W601": ".has_key() is deprecated, use 'in'",
	"W602": "deprecated form of raising exception",
	"W603": "'<>' is deprecated, use '!='",
	"W604": "backticks are deprecated, use 'repr()'",
}

// KnownCode reports whether a diagnostic code has a message template.
func KnownCode(code string) bool {
	_, ok := messageTemplates[code]
	return ok
}
