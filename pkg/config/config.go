// Package config defines core configuration types for pep8.
// These types are pure data structures; file discovery and merging live in
// the configloader.
package config

// DefaultMaxLineLength is the PEP 8 line length limit.
const DefaultMaxLineLength = 79

// DefaultIgnore lists the code prefixes suppressed unless explicitly
// selected. E24 covers the alignment-whitespace checks that PEP 8 leaves
// to taste.
var DefaultIgnore = []string{"E24"}

// DefaultExclude lists directory names skipped during discovery.
var DefaultExclude = []string{".svn", "CVS", ".bzr", ".hg", ".git"}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Mode    string `mapstructure:"mode" yaml:"mode"` // "sidecar", "xdg", etc.
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config is the root configuration structure for pep8.
type Config struct {
	// MaxLineLength is the physical line length limit for E501.
	MaxLineLength int `mapstructure:"max_line_length" yaml:"max_line_length"`

	// Ignore contains diagnostic code prefixes to suppress.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// Select contains diagnostic code prefixes that override Ignore.
	Select []string `mapstructure:"select" yaml:"select"`

	// Exclude contains file and directory patterns skipped during
	// discovery.
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of whitespace issues.
	Fix bool `mapstructure:"-" yaml:"-"`

	// DryRun shows what would be fixed without making changes.
	DryRun bool `mapstructure:"-" yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// ShowSource prints the offending physical line under each diagnostic.
	ShowSource bool `mapstructure:"-" yaml:"-"`

	// ShowPEP8 prints the rule prose for each reported code.
	ShowPEP8 bool `mapstructure:"-" yaml:"-"`

	// Statistics prints per-code occurrence counts after the report.
	Statistics bool `mapstructure:"-" yaml:"-"`

	// Count prints only the total number of diagnostics.
	Count bool `mapstructure:"-" yaml:"-"`

	// Quiet suppresses per-diagnostic output; 1 reports only file names,
	// 2 reports nothing (exit code only).
	Quiet int `mapstructure:"-" yaml:"-"`

	// First reports only the first occurrence of each code per file.
	First bool `mapstructure:"-" yaml:"-"`

	// Benchmark reports elapsed time and throughput after the run.
	Benchmark bool `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers. 0 means GOMAXPROCS.
	Jobs int `mapstructure:"-" yaml:"-"`

	// NoBackups disables backup creation when fixing.
	NoBackups bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with the stock pep8 defaults.
func NewConfig() *Config {
	return &Config{
		MaxLineLength: DefaultMaxLineLength,
		Ignore:        append([]string(nil), DefaultIgnore...),
		Select:        nil,
		Exclude:       append([]string(nil), DefaultExclude...),
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format: FormatText,
		Jobs:   0,
	}
}
