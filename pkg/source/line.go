package source

// PhysicalLine is one raw line of the file, handed to physical-line
// checkers as it is read. Ephemeral: constructed per line and discarded
// once the physical checks have run.
type PhysicalLine struct {
	// Text is the raw line including its terminator, if any.
	Text string

	// Number is the 1-based line number within the document.
	Number int
}

// Location resolves a reported column against this line. Physical lines
// need no mapping: the column is already relative to the raw text.
// A negative column means "column unknown" and resolves to column 0.
func (l PhysicalLine) Location(column int) (row, col int) {
	if column < 0 {
		return l.Number, 0
	}
	return l.Number, column
}
