package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/input-output-hk/git-fixme/errors"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{name: "nil", cfg: nil, wantErr: true},
		{name: "no keys", cfg: &Config{}, wantErr: true},
		{name: "valid", cfg: &Config{Keys: []string{"TODO", "FIXME"}}},
		{name: "empty key", cfg: &Config{Keys: []string{"TODO", ""}}, wantErr: true},
		{name: "key with newline", cfg: &Config{Keys: []string{"FIX\nME"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, errors.CodeInvalidConfig, errors.CodeOf(err))
		})
	}
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want []string
	}{
		{name: "nil", raw: nil, want: nil},
		{name: "string", raw: "A:B", want: []string{"A", "B"}},
		{name: "string slice", raw: []string{"A", "", "B"}, want: []string{"A", "B"}},
		{name: "interface slice", raw: []interface{}{"A", "B"}, want: []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseKeys(tt.raw)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseKeys(42)
	assert.Equal(t, errors.CodeInvalidConfig, errors.CodeOf(err))
}
