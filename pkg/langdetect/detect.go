// Package langdetect decides whether file content is Python source.
// Discovery uses it for extensionless scripts, where the filename carries
// no signal and only the shebang or the content itself can tell.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const pythonLanguage = "Python"

// HasPythonShebang reports whether the content starts with a shebang that
// names a Python interpreter, directly or via env.
func HasPythonShebang(content []byte) bool {
	if !bytes.HasPrefix(content, []byte("#!")) {
		return false
	}
	lang, safe := enry.GetLanguageByShebang(content)
	return safe && lang == pythonLanguage
}

// IsPython reports whether content should be analyzed as Python source.
// A shebang is authoritative in either direction; without one the
// classifier decides, and only a confident answer counts.
func IsPython(content []byte) bool {
	if len(bytes.TrimSpace(content)) == 0 {
		return false
	}
	if bytes.HasPrefix(content, []byte("#!")) {
		lang, safe := enry.GetLanguageByShebang(content)
		if safe {
			return lang == pythonLanguage
		}
	}

	candidates := []string{
		"Python", "Go", "Shell", "JavaScript", "Ruby", "Perl", "C",
	}
	lang, safe := enry.GetLanguageByClassifier(content, candidates)
	return safe && lang == pythonLanguage
}

// IsPythonFilename reports whether the file name alone marks Python
// source.
func IsPythonFilename(name string) bool {
	return strings.HasSuffix(name, ".py")
}
