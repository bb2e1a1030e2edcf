package style

import (
	"github.com/lumberlabs/pep8/pkg/config"
	"github.com/lumberlabs/pep8/pkg/source"
)

// PhysicalContext is the state handed to a physical-line checker: the raw
// line, the whole document, and the run configuration. Checkers read the
// fields they need and must not mutate any of them.
type PhysicalContext struct {
	Line     source.PhysicalLine
	Document *source.Document
	Config   *config.Config
}

// LogicalContext is the state handed to a logical-line checker. Previous
// is nil for the file's first statement.
type LogicalContext struct {
	Line     *LogicalLine
	Previous *LogicalLine
	Document *source.Document
	Config   *config.Config
}

// PhysicalChecker evaluates one style rule against a raw physical line.
// Check returns nil when the line is clean; it never fails.
type PhysicalChecker interface {
	Name() string
	Description() string
	Codes() []string
	Check(ctx *PhysicalContext) *Diagnostic
}

// LogicalChecker evaluates one style rule against a reconstructed
// statement plus the carried previous-line state.
type LogicalChecker interface {
	Name() string
	Description() string
	Codes() []string
	Check(ctx *LogicalContext) *Diagnostic
}

// PhysicalFixer is implemented by physical checkers that can rewrite their
// line into a clean form. FixLine returns the replacement text, terminator
// included.
type PhysicalFixer interface {
	FixLine(ctx *PhysicalContext) string
}

// BaseChecker carries the identity shared by every checker: a stable
// name, the codes it can report, and the rule prose shown by --show-pep8.
type BaseChecker struct {
	name        string
	description string
	codes       []string
}

// NewBaseChecker creates the common checker metadata.
func NewBaseChecker(name, description string, codes ...string) BaseChecker {
	return BaseChecker{name: name, description: description, codes: codes}
}

// Name returns the checker's stable identity.
func (b BaseChecker) Name() string { return b.name }

// Description returns the rule prose.
func (b BaseChecker) Description() string { return b.description }

// Codes returns the diagnostic codes this checker can report.
func (b BaseChecker) Codes() []string { return b.codes }
