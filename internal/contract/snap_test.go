package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSnapRequest_SetsDefaultGrid(t *testing.T) {
	req := NewSnapRequest(3.2, 1.5)
	assert.Equal(t, 3.2, req.Desired)
	assert.Equal(t, 1.5, req.Duration)
	assert.Equal(t, DefaultGridStep, req.GridStep)
}

func TestNewSnapRequest_ZeroDurationPreserved(t *testing.T) {
	// Zero is preserved in the DTO — validation happens in the service layer
	req := NewSnapRequest(0, 0)
	assert.Equal(t, 0.0, req.Duration)
}

func TestValidationReport_ViolationCount(t *testing.T) {
	report := ValidationReport{
		Activities: []ActivityReport{
			{OK: true},
			{OK: false, Violations: []Violation{{Code: ViolationOutsideAllowed}, {Code: ViolationRequiresContact}}},
			{OK: false, Violations: []Violation{{Code: ViolationDenyOverlap}}},
		},
	}
	assert.Equal(t, 3, report.ViolationCount())
}

func TestExportResult_FilesInOrder(t *testing.T) {
	res := ExportResult{
		Dir:         "/tmp/exports",
		MissionFile: "mission-1.yaml",
		PatchFile:   "conops-patch-1.yaml",
		SummaryFile: "conops-summary-1.md",
	}
	assert.Equal(t, []string{"mission-1.yaml", "conops-patch-1.yaml", "conops-summary-1.md"}, res.Files())
}
