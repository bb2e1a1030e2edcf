package pytokenize

import (
	"strings"
	"testing"
)

const benchSource = `import os
import sys


class Walker(object):
    """Collect file sizes under a root directory."""

    def __init__(self, root):
        self.root = root
        self.sizes = {}

    def visit(self, path):
        for name in os.listdir(path):
            child = os.path.join(path, name)
            if os.path.isdir(child):
                self.visit(child)
            else:
                self.sizes[child] = os.path.getsize(child)


def main(argv):
    walker = Walker(argv[1] if len(argv) > 1 else '.')
    walker.visit(walker.root)
    total = sum(walker.sizes.values())
    print('%d files, %d bytes' % (len(walker.sizes), total))


if __name__ == '__main__':
    main(sys.argv)
`

func drain(b *testing.B, lines []string) {
	b.Helper()
	tok := New(readerFor(lines...))
	for {
		t, err := tok.Next()
		if err != nil {
			b.Fatal(err)
		}
		if t.Kind == KindEndMarker {
			return
		}
	}
}

func BenchmarkTokenize(b *testing.B) {
	lines := strings.SplitAfter(benchSource, "\n")
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		drain(b, lines)
	}
}

func BenchmarkTokenizeOneLiner(b *testing.B) {
	lines := []string{"result = func(a, b=1, *args, **kwargs)\n"}
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		drain(b, lines)
	}
}
