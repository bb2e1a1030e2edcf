package checks

import "github.com/lumberlabs/pep8/pkg/style"

// NewDefaultRegistry assembles every built-in checker in its fixed
// dispatch order.
func NewDefaultRegistry() *style.Registry {
	r := style.NewRegistry()

	r.RegisterPhysical(NewTabsOrSpaces())
	r.RegisterPhysical(NewTabsObsolete())
	r.RegisterPhysical(NewTrailingWhitespace())
	r.RegisterPhysical(NewTrailingBlankLines())
	r.RegisterPhysical(NewMissingNewline())
	r.RegisterPhysical(NewMaximumLineLength())

	r.RegisterLogical(NewBlankLines())
	r.RegisterLogical(NewExtraneousWhitespace())
	r.RegisterLogical(NewMissingWhitespaceAfterSeparator())
	r.RegisterLogical(NewIndentation())
	r.RegisterLogical(NewWhitespaceBeforeParameters())
	r.RegisterLogical(NewWhitespaceAroundOperator())
	r.RegisterLogical(NewMissingWhitespaceAroundOperator())
	r.RegisterLogical(NewWhitespaceAroundComma())
	r.RegisterLogical(NewWhitespaceAroundNamedParameterEquals())
	r.RegisterLogical(NewWhitespaceAroundInlineComment())
	r.RegisterLogical(NewImportsOnSeparateLines())
	r.RegisterLogical(NewCompoundStatement())
	r.RegisterLogical(NewHasKey())
	r.RegisterLogical(NewRaiseComma())
	r.RegisterLogical(NewNotEqual())
	r.RegisterLogical(NewBackticks())

	return r
}
