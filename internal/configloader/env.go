package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lumberlabs/pep8/pkg/config"
)

// envVarPrefix is the prefix for all pep8 environment variables.
const envVarPrefix = "PEP8_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"MAX_LINE_LENGTH": {field: "max_line_length", typ: envTypeInt},
	"IGNORE":          {field: "ignore", typ: envTypeSlice},
	"SELECT":          {field: "select", typ: envTypeSlice},
	"EXCLUDE":         {field: "exclude", typ: envTypeSlice},
	"FORMAT":          {field: "format", typ: envTypeString},
	"JOBS":            {field: "jobs", typ: envTypeInt},
	"FIX":             {field: "fix", typ: envTypeBool},
	"DRY_RUN":         {field: "dry_run", typ: envTypeBool},
	"NO_BACKUPS":      {field: "no_backups", typ: envTypeBool},
	"BACKUPS_ENABLED": {field: "backups.enabled", typ: envTypeBool},
	"BACKUPS_MODE":    {field: "backups.mode", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with PEP8_ (e.g., PEP8_MAX_LINE_LENGTH).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "backups.mode":
		cfg.Backups.Mode = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "fix":
		cfg.Fix = value
	case "dry_run":
		cfg.DryRun = value
	case "no_backups":
		cfg.NoBackups = value
	case "backups.enabled":
		cfg.Backups.Enabled = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "max_line_length":
		cfg.MaxLineLength = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = NormalizeCodeList(value)
	case "select":
		cfg.Select = NormalizeCodeList(value)
	case "exclude":
		cfg.Exclude = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their
// descriptions, for help output.
func ListEnvVars() map[string]string {
	return map[string]string{
		"PEP8_MAX_LINE_LENGTH": "Physical line length limit (default 79)",
		"PEP8_IGNORE":          "Comma-separated code prefixes to suppress",
		"PEP8_SELECT":          "Comma-separated code prefixes that override ignore",
		"PEP8_EXCLUDE":         "Comma-separated patterns skipped during discovery",
		"PEP8_FORMAT":          "Output format: text or json",
		"PEP8_JOBS":            "Number of parallel workers (0 = auto)",
		"PEP8_FIX":             "Enable auto-fix: true or false",
		"PEP8_DRY_RUN":         "Dry-run mode: true or false",
		"PEP8_NO_BACKUPS":      "Disable backups: true or false",
		"PEP8_BACKUPS_ENABLED": "Enable backups when fixing: true or false",
		"PEP8_BACKUPS_MODE":    "Backup mode: sidecar or none",
	}
}
