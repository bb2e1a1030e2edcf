package checks

// pythonKeywords is the Python 2 keyword set, used to exempt keywords
// from the call/subscript and operator spacing rules.
var pythonKeywords = map[string]bool{
	"and": true, "as": true, "assert": true, "break": true,
	"class": true, "continue": true, "def": true, "del": true,
	"elif": true, "else": true, "except": true, "exec": true,
	"finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true,
	"lambda": true, "not": true, "or": true, "pass": true,
	"print": true, "raise": true, "return": true, "try": true,
	"while": true, "with": true, "yield": true,
}

// binaryOperators always take a space on either side.
var binaryOperators = map[string]bool{
	"**=": true, "*=": true, "+=": true, "-=": true, "!=": true,
	"<>": true, "%=": true, "^=": true, "&=": true, "|=": true,
	"==": true, "/=": true, "//=": true, "<=": true, ">=": true,
	"<<=": true, ">>=": true, "%": true, "^": true, "&": true,
	"|": true, "=": true, "/": true, "//": true, "<": true,
	">": true, "<<": true,
}

// unaryOperators may legitimately hug their operand: -1, +x, *args,
// **kwargs. They only need spacing when the context makes them binary.
var unaryOperators = map[string]bool{
	">>": true, "**": true, "*": true, "+": true, "-": true,
}

// isOperator reports membership in either operator set.
func isOperator(text string) bool {
	return binaryOperators[text] || unaryOperators[text]
}
