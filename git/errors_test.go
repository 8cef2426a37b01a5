package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{"ErrNotRepository direct", ErrNotRepository, ErrNotRepository, true},
		{"ErrNoHead direct", ErrNoHead, ErrNoHead, true},
		{"ErrPathOutsideRepo wrapped", WrapError(ErrPathOutsideRepo, "context"), ErrPathOutsideRepo, true},
		{"ErrLineOutOfRange wrapped", WrapErrorf(ErrLineOutOfRange, "a.txt:%d", 9), ErrLineOutOfRange, true},

		{"ErrNoHead vs ErrNotRepository", ErrNoHead, ErrNotRepository, false},
		{"ErrBareRepository vs ErrNotRepository", ErrBareRepository, ErrNotRepository, false},

		{"WrapError with nil", WrapError(nil, "context"), ErrNoHead, false},
		{"WrapErrorf with nil", WrapErrorf(nil, "context"), ErrNoHead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.Is(tt.err, tt.target),
				"errors.Is(%v, %v) should be %v", tt.err, tt.target, tt.expected)
		})
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		msg      string
		expected string
	}{
		{"wraps sentinel", ErrNoHead, "blame a.txt", "blame a.txt: HEAD does not point to a commit"},
		{"wraps custom", errors.New("boom"), "read index", "read index: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapError(tt.err, tt.msg)
			assert.EqualError(t, err, tt.expected)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestWrapErrorf(t *testing.T) {
	err := WrapErrorf(ErrLineOutOfRange, "%s:%d", "a.txt", 4)
	assert.EqualError(t, err, "a.txt:4: line out of range")
	assert.ErrorIs(t, err, ErrLineOutOfRange)
}
