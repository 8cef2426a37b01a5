package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/git-fixme/errors"
)

func TestModeFromFlags(t *testing.T) {
	tests := []struct {
		name                   string
		file, insertion, stats bool
		want                   Mode
		wantErr                bool
	}{
		{name: "none", want: ModeDefault},
		{name: "file", file: true, want: ModeFileOnly},
		{name: "insertion", insertion: true, want: ModeInsertion},
		{name: "stats", stats: true, want: ModeStats},
		{name: "file and stats", file: true, stats: true, wantErr: true},
		{name: "all", file: true, insertion: true, stats: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModeFromFlags(tt.file, tt.insertion, tt.stats)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidInput, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "default", ModeDefault.String())
	assert.Equal(t, "file", ModeFileOnly.String())
	assert.Equal(t, "insertion", ModeInsertion.String())
	assert.Equal(t, "stats", ModeStats.String())
	assert.Equal(t, "unknown", Mode(42).String())
}
