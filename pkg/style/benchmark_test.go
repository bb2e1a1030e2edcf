package style_test

import (
	"context"
	"strings"
	"testing"

	"github.com/lumberlabs/pep8/pkg/config"
	"github.com/lumberlabs/pep8/pkg/style"
	"github.com/lumberlabs/pep8/pkg/style/checks"
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

// benchSourceDirty is benchSource with the whitespace violations a real
// run spends its time reporting.
var benchSourceDirty = strings.ReplaceAll(benchSource, "\n", "  \n")

func benchmarkCheckSource(b *testing.B, src string) {
	b.Helper()
	engine := style.NewEngine(checks.NewDefaultRegistry(), config.NewConfig())
	content := []byte(src)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		if _, err := engine.CheckSource(ctx, content); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEngineCleanSource(b *testing.B) {
	benchmarkCheckSource(b, benchSource)
}

func BenchmarkEngineDirtySource(b *testing.B) {
	benchmarkCheckSource(b, benchSourceDirty)
}
