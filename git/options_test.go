package git

import (
	"testing"

	"github.com/stretchr/testify/assert"

	billyfs "github.com/input-output-hk/git-fixme/fs/billy"
)

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		options Options
		wantErr bool
	}{
		{
			name:    "valid options",
			options: Options{FS: billyfs.NewInMemoryFS()},
		},
		{
			name:    "nil filesystem",
			options: Options{},
			wantErr: true,
		},
		{
			name:    "negative cache size",
			options: Options{FS: billyfs.NewInMemoryFS(), StorerCacheSize: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.options.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestOptions_ApplyDefaults(t *testing.T) {
	opts := Options{FS: billyfs.NewInMemoryFS()}
	opts.applyDefaults()

	assert.Equal(t, DefaultWorkdir, opts.Workdir)
	assert.Equal(t, DefaultStorerCacheSize, opts.StorerCacheSize)

	custom := Options{FS: billyfs.NewInMemoryFS(), Workdir: "repo", StorerCacheSize: 10}
	custom.applyDefaults()
	assert.Equal(t, "repo", custom.Workdir)
	assert.Equal(t, 10, custom.StorerCacheSize)
}

func TestCleanPath(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: ".", want: ""},
		{in: "", want: ""},
		{in: "a.txt", want: "a.txt"},
		{in: "./src//main.go", want: "src/main.go"},
		{in: "src/../a.txt", want: "a.txt"},
		{in: "..", wantErr: true},
		{in: "../other/a.txt", wantErr: true},
		{in: "/etc/passwd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := cleanPath(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPathOutsideRepo)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
