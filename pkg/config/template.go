package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every setting with its default value spelled out.
	// If false, generates a minimal commented template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return generateJSONTemplate()
	}
	if opts.Full {
		return generateFullTemplate(), nil
	}
	return generateMinimalTemplate(), nil
}

func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# pep8 configuration
# See: https://github.com/lumberlabs/pep8

# Physical line length limit for E501
max_line_length: 79

# Diagnostic code prefixes to suppress
# ignore:
#   - E24

# Code prefixes to report even when an ignore prefix matches
# select:
#   - E241

# File and directory patterns skipped during discovery
# exclude:
#   - .svn
#   - CVS
#   - .bzr
#   - .hg
#   - .git
`)

	return buf.Bytes()
}

func generateFullTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# pep8 configuration - Full Template
# See: https://github.com/lumberlabs/pep8
#
# This template spells out every setting with its default value.

# Physical line length limit for E501
max_line_length: 79

# Diagnostic code prefixes to suppress. A code is suppressed when it
# starts with an ignored prefix and does not start with a selected one.
ignore:
  - E24

# Code prefixes to report even when an ignore prefix matches
select: []

# File and directory patterns skipped during discovery
exclude:
  - .svn
  - CVS
  - .bzr
  - .hg
  - .git

# Backup configuration for --fix
backups:
  enabled: true
  mode: sidecar
`)

	return buf.Bytes()
}

func generateJSONTemplate() ([]byte, error) {
	cfg := map[string]any{
		"max_line_length": DefaultMaxLineLength,
		"ignore":          DefaultIgnore,
		"select":          []string{},
		"exclude":         DefaultExclude,
		"backups": map[string]any{
			"enabled": true,
			"mode":    "sidecar",
		},
	}

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# pep8 configuration
# See: https://github.com/lumberlabs/pep8`
}
