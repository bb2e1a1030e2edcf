package configloader

import (
	"testing"

	"github.com/lumberlabs/pep8/pkg/config"
)

func TestLoadFromEnv_Int(t *testing.T) {
	t.Setenv("PEP8_MAX_LINE_LENGTH", "100")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.MaxLineLength != 100 {
		t.Errorf("expected 100, got %d", cfg.MaxLineLength)
	}
}

func TestLoadFromEnv_InvalidInt(t *testing.T) {
	t.Setenv("PEP8_MAX_LINE_LENGTH", "long")

	if err := LoadFromEnv(config.NewConfig()); err == nil {
		t.Fatal("expected error for non-integer value")
	}
}

func TestLoadFromEnv_Bool(t *testing.T) {
	t.Setenv("PEP8_FIX", "true")
	t.Setenv("PEP8_DRY_RUN", "1")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if !cfg.Fix {
		t.Error("expected Fix=true")
	}
	if !cfg.DryRun {
		t.Error("expected DryRun=true")
	}
}

func TestLoadFromEnv_InvalidBool(t *testing.T) {
	t.Setenv("PEP8_FIX", "maybe")

	if err := LoadFromEnv(config.NewConfig()); err == nil {
		t.Fatal("expected error for invalid boolean")
	}
}

func TestLoadFromEnv_SliceNormalized(t *testing.T) {
	t.Setenv("PEP8_IGNORE", "e501, w291 ,")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if len(cfg.Ignore) != 2 || cfg.Ignore[0] != "E501" || cfg.Ignore[1] != "W291" {
		t.Errorf("expected [E501 W291], got %v", cfg.Ignore)
	}
}

func TestLoadFromEnv_Format(t *testing.T) {
	t.Setenv("PEP8_FORMAT", "json")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Format != config.FormatJSON {
		t.Errorf("expected json format, got %q", cfg.Format)
	}
}

func TestLoadFromEnv_EmptyValuesIgnored(t *testing.T) {
	t.Setenv("PEP8_MAX_LINE_LENGTH", "")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.MaxLineLength != config.DefaultMaxLineLength {
		t.Errorf("empty env var should not override, got %d", cfg.MaxLineLength)
	}
}

func TestLoadFromEnv_NilConfig(t *testing.T) {
	t.Parallel()

	if err := LoadFromEnv(nil); err != nil {
		t.Errorf("LoadFromEnv(nil) error = %v", err)
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	if len(vars) != len(envMappings) {
		t.Errorf("ListEnvVars() returned %d entries, mappings have %d", len(vars), len(envMappings))
	}
	for name := range vars {
		if name[:len(envVarPrefix)] != envVarPrefix {
			t.Errorf("env var %q missing prefix %q", name, envVarPrefix)
		}
	}
}
