package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedPhases_ByOrder(t *testing.T) {
	phases := []Phase{
		{Name: "science", Order: 2, Duration: 30},
		{Name: "launch", Order: 0, Duration: 5},
		{Name: "cruise", Order: 1, Duration: 90},
	}
	sorted := SortedPhases(phases)
	assert.Equal(t, []string{"launch", "cruise", "science"}, []string{sorted[0].Name, sorted[1].Name, sorted[2].Name})
	assert.Equal(t, "science", phases[0].Name, "input should not be mutated")
}

func TestSortedPhases_StableForEqualOrder(t *testing.T) {
	phases := []Phase{
		{Name: "a", Order: 1, Duration: 1},
		{Name: "b", Order: 1, Duration: 1},
		{Name: "c", Order: 0, Duration: 1},
	}
	sorted := SortedPhases(phases)
	assert.Equal(t, "c", sorted[0].Name)
	assert.Equal(t, "a", sorted[1].Name)
	assert.Equal(t, "b", sorted[2].Name)
}

func TestPhaseSpans_TilesContiguously(t *testing.T) {
	phases := []Phase{
		{Name: "cruise", Order: 1, Duration: 90},
		{Name: "launch", Order: 0, Duration: 5},
		{Name: "science", Order: 2, Duration: 30},
	}
	spans := PhaseSpans(phases)
	require.Len(t, spans, 3)
	assert.Equal(t, PhaseSpan{Name: "launch", Start: 0, End: 5}, spans[0])
	assert.Equal(t, PhaseSpan{Name: "cruise", Start: 5, End: 95}, spans[1])
	assert.Equal(t, PhaseSpan{Name: "science", Start: 95, End: 125}, spans[2])
}

func TestPhaseSpans_Empty(t *testing.T) {
	assert.Empty(t, PhaseSpans(nil))
}

func TestTotalDuration(t *testing.T) {
	phases := []Phase{
		{Name: "launch", Duration: 5},
		{Name: "cruise", Duration: 90},
	}
	assert.Equal(t, 95.0, TotalDuration(phases))
	assert.Equal(t, 0.0, TotalDuration(nil))
}
