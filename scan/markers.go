package scan

import (
	"strings"

	ahocorasick "github.com/BobuSumisu/aho-corasick"
)

// DefaultMarker is used when no marker keys are configured.
const DefaultMarker = "FIXME"

// MarkerSeparator splits a marker override string into keys.
const MarkerSeparator = ":"

// MarkerSet is an immutable set of literal, case-sensitive marker keys.
type MarkerSet struct {
	keys []string
	trie *ahocorasick.Trie
}

// NewMarkerSet builds a set from keys. Empty keys are dropped, since an empty
// key would match every line. With nothing left the set holds DefaultMarker.
func NewMarkerSet(keys []string) *MarkerSet {
	kept := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			kept = append(kept, k)
		}
	}
	if len(kept) == 0 {
		kept = []string{DefaultMarker}
	}

	return &MarkerSet{
		keys: kept,
		trie: ahocorasick.NewTrieBuilder().AddStrings(kept).Build(),
	}
}

// ParseMarkers splits a colon-separated override such as "TODO:FIXME".
func ParseMarkers(override string) *MarkerSet {
	return NewMarkerSet(strings.Split(override, MarkerSeparator))
}

// Keys returns a copy of the marker keys in configuration order.
func (m *MarkerSet) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Match reports whether line contains at least one key.
func (m *MarkerSet) Match(line string) bool {
	return len(m.trie.MatchString(line)) > 0
}
