package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamsu/conops/internal/basespec"
	"github.com/shamsu/conops/internal/contract"
	"github.com/shamsu/conops/internal/domain"
	"github.com/shamsu/conops/internal/export"
	"github.com/shamsu/conops/internal/repository"
	"github.com/shamsu/conops/internal/service"
	"github.com/shamsu/conops/internal/testutil"
)

const validMission = `
intent: Survey the target body
stakeholders: Mission ops
phases:
  - name: cruise
    order: 0
    duration: 4
  - name: ops
    order: 1
    duration: 6
activities:
  - id: a1
    name: Capture
    start: 2
    duration: 1
`

const blockedMission = `
intent: Survey the target body
stakeholders: Mission ops
phases:
  - name: ops
    order: 0
    duration: 10
manual_time_blocks:
  - name: pass
    start: 2
    end: 6
    mode: allow
    source_type: ground_contact
activities:
  - id: a1
    name: Thermal Bake
    start: 7
    duration: 2
`

// testApp wires a full App backed by an in-memory DB and temp dirs for
// CLI integration tests. Wire stays nil so the pre-wired services are
// used as-is.
func testApp(t *testing.T) (*App, string, string) {
	t.Helper()

	db := testutil.NewTestDB(t)
	exportsDir := t.TempDir()
	profilesDir := t.TempDir()
	store := basespec.NewStore(profilesDir)

	app := &App{
		Validation: service.NewValidationService(),
		Projects:   service.NewProjectService(repository.NewSQLiteProjectRepo(db)),
		Export:     service.NewExportService(export.NewWriter(exportsDir), store, domain.DefaultTemplate),
		Templates:  store,
	}
	return app, exportsDir, profilesDir
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeMission(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mission.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// --- validate command ---

func TestValidateCmd_ValidDocument(t *testing.T) {
	app, _, _ := testApp(t)
	path := writeMission(t, validMission)

	out, err := executeCmd(t, app, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Capture")
	assert.Contains(t, out, "All activities placed legally")
}

func TestValidateCmd_ViolationsExitNonZero(t *testing.T) {
	app, _, _ := testApp(t)
	path := writeMission(t, blockedMission)

	out, err := executeCmd(t, app, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, out, "OUTSIDE_ALLOWED_WINDOWS")
}

func TestValidateCmd_StructuralErrors(t *testing.T) {
	app, _, _ := testApp(t)
	path := writeMission(t, "stakeholders: Ops\nphases:\n  - name: ops\n    duration: 5\n")

	out, err := executeCmd(t, app, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid document")
	assert.Contains(t, out, "intent is required")
}

func TestValidateCmd_JSON(t *testing.T) {
	app, _, _ := testApp(t)
	path := writeMission(t, validMission)

	out, err := executeCmd(t, app, "validate", path, "--json")
	require.NoError(t, err)

	var rep contract.ValidationReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.True(t, rep.OK)
	assert.InDelta(t, 10, rep.TotalDuration, 1e-9)
}

func TestValidateCmd_MissingFile(t *testing.T) {
	app, _, _ := testApp(t)

	_, err := executeCmd(t, app, "validate", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

// --- windows command ---

func TestWindowsCmd(t *testing.T) {
	app, _, _ := testApp(t)
	path := writeMission(t, blockedMission)

	out, err := executeCmd(t, app, "windows", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ops")
	assert.Contains(t, out, "T+2 – T+6")
}

func TestWindowsCmd_JSON(t *testing.T) {
	app, _, _ := testApp(t)
	path := writeMission(t, blockedMission)

	out, err := executeCmd(t, app, "windows", path, "--json")
	require.NoError(t, err)

	var resp struct {
		TotalDuration float64             `json:"total_duration"`
		Allowed       []contract.Interval `json:"allowed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.InDelta(t, 10, resp.TotalDuration, 1e-9)
	require.Len(t, resp.Allowed, 1)
	assert.InDelta(t, 2, resp.Allowed[0].Start, 1e-9)
}

// --- explain command ---

func TestExplainCmd_ByName(t *testing.T) {
	app, _, _ := testApp(t)
	path := writeMission(t, blockedMission)

	out, err := executeCmd(t, app, "explain", path, "thermal bake")
	require.NoError(t, err)
	assert.Contains(t, out, "Thermal Bake")
	assert.Contains(t, out, "OUTSIDE_ALLOWED_WINDOWS")
}

func TestExplainCmd_UnknownActivity(t *testing.T) {
	app, _, _ := testApp(t)
	path := writeMission(t, validMission)

	_, err := executeCmd(t, app, "explain", path, "no-such-activity")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// --- snap command ---

func TestSnapCmd(t *testing.T) {
	app, _, _ := testApp(t)
	path := writeMission(t, validMission)

	out, err := executeCmd(t, app, "snap", path, "--desired", "3.3", "--duration", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "T+3.5")
}

func TestSnapCmd_RequiresFlags(t *testing.T) {
	app, _, _ := testApp(t)
	path := writeMission(t, validMission)

	_, err := executeCmd(t, app, "snap", path)
	assert.Error(t, err)
}

func TestSnapCmd_Infeasible(t *testing.T) {
	app, _, _ := testApp(t)
	path := writeMission(t, validMission)

	out, err := executeCmd(t, app, "snap", path, "--desired", "0", "--duration", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "No feasible placement")
}

// --- project commands ---

func TestProjectLifecycle(t *testing.T) {
	app, _, _ := testApp(t)
	path := writeMission(t, validMission)

	out, err := executeCmd(t, app, "project", "save", path, "--name", "lunar-relay")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved")
	assert.Contains(t, out, "lunar-relay")

	out, err = executeCmd(t, app, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "lunar-relay")

	out, err = executeCmd(t, app, "project", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "lunar-relay")
	assert.Contains(t, out, "Survey the target body")

	out, err = executeCmd(t, app, "project", "remove", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed project 1")

	out, err = executeCmd(t, app, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved projects")
}

func TestProjectShowCmd_WritesDocument(t *testing.T) {
	app, _, _ := testApp(t)
	path := writeMission(t, validMission)

	_, err := executeCmd(t, app, "project", "save", path, "--name", "lunar-relay")
	require.NoError(t, err)

	outFile := filepath.Join(t.TempDir(), "doc.json")
	out, err := executeCmd(t, app, "project", "show", "1", "--out", outFile)
	require.NoError(t, err)
	assert.Contains(t, out, outFile)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var doc domain.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Survey the target body", doc.Intent)
}

func TestProjectShowCmd_NotFound(t *testing.T) {
	app, _, _ := testApp(t)

	_, err := executeCmd(t, app, "project", "show", "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project not found")
}

func TestProjectShowCmd_BadID(t *testing.T) {
	app, _, _ := testApp(t)

	_, err := executeCmd(t, app, "project", "show", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid project id")
}

// --- export command ---

func TestExportCmd(t *testing.T) {
	app, exportsDir, _ := testApp(t)
	path := writeMission(t, validMission)

	out, err := executeCmd(t, app, "export", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Export complete")

	entries, err := os.ReadDir(exportsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

// --- templates command ---

func TestTemplatesCmd(t *testing.T) {
	app, _, profilesDir := testApp(t)
	require.NoError(t, os.WriteFile(filepath.Join(profilesDir, "base.yaml"), []byte("mission:\n  orbit: SSO\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(profilesDir, "cubesat.yaml"), []byte("mission:\n  orbit: LEO\n"), 0o644))

	out, err := executeCmd(t, app, "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "base")
	assert.Contains(t, out, "cubesat")
	assert.Contains(t, out, "● default")
}

func TestTemplatesCmd_Empty(t *testing.T) {
	app, _, _ := testApp(t)

	out, err := executeCmd(t, app, "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "No base spec profiles installed")
}
