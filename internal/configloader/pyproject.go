package configloader

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lumberlabs/pep8/pkg/config"
)

// pyprojectFile mirrors the slice of pyproject.toml we care about.
type pyprojectFile struct {
	Tool struct {
		PEP8 *pyprojectTable `toml:"pep8"`
	} `toml:"tool"`
}

// pyprojectTable is the [tool.pep8] table. Pointers distinguish "absent"
// from zero values so the merge step only overrides what the file sets.
type pyprojectTable struct {
	MaxLineLength *int     `toml:"max_line_length"`
	Ignore        []string `toml:"ignore"`
	Select        []string `toml:"select"`
	Exclude       []string `toml:"exclude"`
}

// HasPyprojectSection reports whether the pyproject.toml at path carries a
// [tool.pep8] table. Unreadable or malformed files report false; the error
// surfaces later if the file is actually loaded.
func HasPyprojectSection(path string) bool {
	var file pyprojectFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return false
	}
	return file.Tool.PEP8 != nil
}

// LoadPyproject extracts the [tool.pep8] table from a pyproject.toml into
// a partial config for merging. Returns (nil, nil) when the table is
// absent.
func LoadPyproject(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var file pyprojectFile
	if err := toml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}

	table := file.Tool.PEP8
	if table == nil {
		return nil, nil
	}

	cfg := &config.Config{}
	if table.MaxLineLength != nil {
		cfg.MaxLineLength = *table.MaxLineLength
	}
	cfg.Ignore = table.Ignore
	cfg.Select = table.Select
	cfg.Exclude = table.Exclude

	return cfg, nil
}
