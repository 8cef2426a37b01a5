package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMarkers(t *testing.T) {
	tests := []struct {
		name     string
		override string
		want     []string
	}{
		{name: "empty falls back to default", override: "", want: []string{"FIXME"}},
		{name: "single key", override: "TODO", want: []string{"TODO"}},
		{name: "colon separated", override: "TODO:FIXME:XXX", want: []string{"TODO", "FIXME", "XXX"}},
		{name: "empty segments dropped", override: ":TODO::FIXME:", want: []string{"TODO", "FIXME"}},
		{name: "only separators", override: ":::", want: []string{"FIXME"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMarkers(tt.override).Keys())
		})
	}
}

func TestMarkerSet_Match(t *testing.T) {
	m := NewMarkerSet([]string{"TODO", "FIXME"})

	tests := []struct {
		line string
		want bool
	}{
		{line: "// FIXME: later", want: true},
		{line: "TODO", want: true},
		{line: "prefixFIXMEsuffix", want: true},
		{line: "TODO and FIXME", want: true},
		{line: "fixme lowercase", want: false},
		{line: "FIX ME", want: false},
		{line: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.line))
		})
	}
}

func TestMarkerSet_KeysIsACopy(t *testing.T) {
	m := NewMarkerSet([]string{"A"})
	keys := m.Keys()
	keys[0] = "B"

	assert.Equal(t, []string{"A"}, m.Keys())
	assert.True(t, m.Match("A"))
	assert.False(t, m.Match("B"))
}
