package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shamsu/conops/internal/contract"
)

func TestFormatWindows(t *testing.T) {
	phases := []contract.PhaseSpan{
		{Name: "cruise", Start: 0, End: 4},
		{Name: "ops", Start: 4, End: 10},
	}
	allowed := []contract.Interval{{Start: 1, End: 3}, {Start: 5, End: 8}}

	out := FormatWindows(10, phases, allowed)
	assert.Contains(t, out, "cruise")
	assert.Contains(t, out, "ops")
	assert.Contains(t, out, "T+1 – T+3")
	assert.Contains(t, out, "(2d)")
	assert.Contains(t, out, "ALLOWED")
	assert.Contains(t, out, "10d")
}

func TestFormatWindows_NoAllowedWindows(t *testing.T) {
	phases := []contract.PhaseSpan{{Name: "ops", Start: 0, End: 10}}

	out := FormatWindows(10, phases, nil)
	assert.Contains(t, out, "No allowed windows")
}

func TestFormatWindows_NoPhases(t *testing.T) {
	out := FormatWindows(0, nil, nil)
	assert.Contains(t, out, "No phases")
}
