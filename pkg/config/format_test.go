package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"text", "text", FormatText, false},
		{"json", "json", FormatJSON, false},
		{"empty defaults to text", "", FormatText, false},
		{"unknown", "sarif", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputFormatIsValid(t *testing.T) {
	assert.True(t, FormatText.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.False(t, OutputFormat("sarif").IsValid())
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DefaultMaxLineLength, cfg.MaxLineLength)
	assert.Equal(t, []string{"E24"}, cfg.Ignore)
	assert.Empty(t, cfg.Select)
	assert.Equal(t, DefaultExclude, cfg.Exclude)
	assert.Equal(t, FormatText, cfg.Format)
	assert.True(t, cfg.Backups.Enabled)
}
