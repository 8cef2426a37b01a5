package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Add(t *testing.T) {
	var s Stats
	s = s.Add(0)
	assert.Equal(t, Stats{}, s)

	s = s.Add(3)
	s = s.Add(0)
	s = s.Add(1)
	assert.Equal(t, Stats{FilesWithMatches: 2, TotalMatches: 4}, s)
	assert.Equal(t, "2 4", s.String())
}

func TestStats_AddDoesNotMutate(t *testing.T) {
	base := Stats{FilesWithMatches: 1, TotalMatches: 1}
	next := base.Add(2)

	assert.Equal(t, Stats{FilesWithMatches: 1, TotalMatches: 1}, base)
	assert.Equal(t, Stats{FilesWithMatches: 2, TotalMatches: 3}, next)
}

func TestStats_Invariants(t *testing.T) {
	counts := []int{0, 1, 5, 0, 2, 0, 0, 7}

	var s Stats
	for i, c := range counts {
		prev := s
		s = s.Add(c)

		assert.GreaterOrEqual(t, s.FilesWithMatches, prev.FilesWithMatches)
		assert.GreaterOrEqual(t, s.TotalMatches, prev.TotalMatches)
		assert.LessOrEqual(t, s.FilesWithMatches, i+1)
		assert.GreaterOrEqual(t, s.TotalMatches, s.FilesWithMatches)
	}
}

func TestResult_Failed(t *testing.T) {
	assert.False(t, Result{}.Failed())
	assert.True(t, Result{Failures: 1}.Failed())
}
