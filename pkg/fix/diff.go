package fix

import (
	"bytes"
	"fmt"
	"strings"
)

// The fixers rewrite physical lines in place (and at most append the
// final newline), so original and fixed content pair up line for line.
// That lets the diff walk both sides together instead of running a
// general sequence alignment.

// diffContext is the number of unchanged lines shown around each
// change.
const diffContext = 3

// LineKind classifies a line within a hunk.
type LineKind int

const (
	// LineContext is an unchanged line shown for orientation.
	LineContext LineKind = iota

	// LineRemoved is a line as it was before the fix.
	LineRemoved

	// LineAdded is a line as the fix left it.
	LineAdded
)

func (k LineKind) marker() byte {
	switch k {
	case LineRemoved:
		return '-'
	case LineAdded:
		return '+'
	default:
		return ' '
	}
}

// HunkLine is one rendered line of a hunk. Text carries no terminator;
// NoEOL marks a line that ended the file without one.
type HunkLine struct {
	Kind  LineKind
	Text  string
	NoEOL bool
}

// Hunk is a run of changes plus surrounding context. Starts are
// 1-based line numbers.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []HunkLine
}

// Diff is a unified diff of one file's fix pass.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// GenerateDiff diffs original against modified line by line. It
// returns nil when the content is identical.
func GenerateDiff(path string, original, modified []byte) *Diff {
	if bytes.Equal(original, modified) {
		return nil
	}

	oldLines := splitPhysicalLines(original)
	newLines := splitPhysicalLines(modified)

	total := len(oldLines)
	if len(newLines) > total {
		total = len(newLines)
	}

	changed := make([]bool, total)
	for i := range changed {
		changed[i] = i >= len(oldLines) || i >= len(newLines) || oldLines[i] != newLines[i]
	}

	d := &Diff{Path: strings.TrimPrefix(path, "/")}
	for _, g := range groupChanges(changed) {
		d.appendHunk(oldLines, newLines, changed, g[0], g[1])
	}
	return d
}

// HasChanges reports whether the diff contains any hunks.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders the diff in unified format, headers included.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", d.Path, d.Path)
	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		for _, line := range h.Lines {
			b.WriteByte(line.Kind.marker())
			b.WriteString(line.Text)
			b.WriteByte('\n')
			if line.NoEOL {
				b.WriteString("\\ No newline at end of file\n")
			}
		}
	}
	return b.String()
}

// splitPhysicalLines splits content into lines, keeping terminators so
// a missing final newline still diffs against its terminated version.
func splitPhysicalLines(content []byte) []string {
	var lines []string
	for len(content) > 0 {
		i := bytes.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, string(content))
			break
		}
		lines = append(lines, string(content[:i+1]))
		content = content[i+1:]
	}
	return lines
}

// groupChanges collects the changed indices into [first, last] groups,
// merging neighbors whose context windows would touch.
func groupChanges(changed []bool) [][2]int {
	var groups [][2]int
	for i, c := range changed {
		if !c {
			continue
		}
		if n := len(groups); n > 0 && i-groups[n-1][1] <= diffContext*2 {
			groups[n-1][1] = i
			continue
		}
		groups = append(groups, [2]int{i, i})
	}
	return groups
}

// appendHunk builds the hunk for changed lines in [first, last] and
// adds it to the diff.
func (d *Diff) appendHunk(oldLines, newLines []string, changed []bool, first, last int) {
	start := first - diffContext
	if start < 0 {
		start = 0
	}
	end := last + diffContext
	if end > len(changed)-1 {
		end = len(changed) - 1
	}

	var h Hunk
	for i := start; i <= end; i++ {
		if !changed[i] {
			h.Lines = append(h.Lines, hunkLine(LineContext, oldLines[i]))
			h.OldCount++
			h.NewCount++
			continue
		}

		// A run of changed lines renders as its removals followed by
		// its additions.
		run := i
		for run+1 <= end && changed[run+1] {
			run++
		}
		for j := i; j <= run && j < len(oldLines); j++ {
			h.Lines = append(h.Lines, hunkLine(LineRemoved, oldLines[j]))
			h.OldCount++
			d.Deletions++
		}
		for j := i; j <= run && j < len(newLines); j++ {
			h.Lines = append(h.Lines, hunkLine(LineAdded, newLines[j]))
			h.NewCount++
			d.Additions++
		}
		i = run
	}

	h.OldStart = start + 1
	h.NewStart = start + 1
	if h.OldCount == 0 {
		h.OldStart = start
	}
	if h.NewCount == 0 {
		h.NewStart = start
	}
	d.Hunks = append(d.Hunks, h)
}

// hunkLine strips the terminator for display and remembers when there
// was none.
func hunkLine(kind LineKind, raw string) HunkLine {
	text, hadEOL := strings.CutSuffix(raw, "\n")
	text = strings.TrimSuffix(text, "\r")
	return HunkLine{Kind: kind, Text: text, NoEOL: !hadEOL}
}
