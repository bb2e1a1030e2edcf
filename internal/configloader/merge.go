package configloader

import "github.com/lumberlabs/pep8/pkg/config"

// merge combines two configurations, with override taking precedence over
// base. The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	if override.MaxLineLength != 0 {
		result.MaxLineLength = override.MaxLineLength
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Quiet != 0 {
		result.Quiet = override.Quiet
	}

	// Booleans: false is the zero value, so only true overrides. CLI
	// flags can set these, config files cannot unset them.
	if override.Fix {
		result.Fix = true
	}
	if override.DryRun {
		result.DryRun = true
	}
	if override.NoBackups {
		result.NoBackups = true
	}
	if override.ShowSource {
		result.ShowSource = true
	}
	if override.ShowPEP8 {
		result.ShowPEP8 = true
	}
	if override.Statistics {
		result.Statistics = true
	}
	if override.Count {
		result.Count = true
	}
	if override.First {
		result.First = true
	}
	if override.Benchmark {
		result.Benchmark = true
	}

	// Backups: merge individual fields
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}

	// Slices: override replaces base entirely if non-nil
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.Select != nil {
		result.Select = override.Select
	}
	if override.Exclude != nil {
		result.Exclude = override.Exclude
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs
// taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
