package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shamsu/conops/internal/basespec"
	"github.com/shamsu/conops/internal/export"
	"github.com/shamsu/conops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.events = append(r.events, event)
}

func newExportFixture(t *testing.T, observers ...UseCaseObserver) (*exportService, string, string) {
	t.Helper()
	exportsDir := t.TempDir()
	profileDir := t.TempDir()
	svc := NewExportService(export.NewWriter(exportsDir), basespec.NewStore(profileDir), "base", observers...).(*exportService)
	svc.now = func() time.Time {
		return time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)
	}
	return svc, exportsDir, profileDir
}

func TestExport_WritesThreeArtifacts(t *testing.T) {
	svc, exportsDir, profileDir := newExportFixture(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(profileDir, "base.yaml"),
		[]byte("study:\n  classification: unclassified\nmission:\n  orbit: SSO\n"), 0o644))

	doc := testutil.NewTestDocument(testutil.WithActivity("capture", 1, 2))
	res, err := svc.Export(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, exportsDir, res.Dir)
	assert.Equal(t, "mission-20260203-103000.yaml", res.MissionFile)
	assert.Equal(t, "conops-patch-20260203-103000.yaml", res.PatchFile)
	assert.Equal(t, "conops-summary-20260203-103000.md", res.SummaryFile)
	for _, name := range res.Files() {
		_, err := os.Stat(filepath.Join(exportsDir, name))
		assert.NoError(t, err, name)
	}
}

func TestExport_MergesBaseProfile(t *testing.T) {
	svc, exportsDir, profileDir := newExportFixture(t)
	base := `
study:
  classification: unclassified
  profile: stale
mission:
  orbit: SSO
`
	require.NoError(t, os.WriteFile(filepath.Join(profileDir, "base.yaml"), []byte(base), 0o644))

	res, err := svc.Export(context.Background(), testutil.NewTestDocument())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(exportsDir, res.MissionFile))
	require.NoError(t, err)
	var full map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &full))

	mission := full["mission"].(map[string]interface{})
	assert.Equal(t, "SSO", mission["orbit"], "base fields survive the merge")
	assert.Equal(t, "Survey the target body", mission["intent"])

	study := full["study"].(map[string]interface{})
	assert.Equal(t, "unclassified", study["classification"])
	assert.Equal(t, "base", study["profile"], "patch fields win over the base")
	assert.Equal(t, "Generated by conops", study["notes"])
}

func TestExport_MissingProfileDegradesToPatch(t *testing.T) {
	svc, exportsDir, _ := newExportFixture(t)

	res, err := svc.Export(context.Background(), testutil.NewTestDocument())
	require.NoError(t, err)

	missionRaw, err := os.ReadFile(filepath.Join(exportsDir, res.MissionFile))
	require.NoError(t, err)
	patchRaw, err := os.ReadFile(filepath.Join(exportsDir, res.PatchFile))
	require.NoError(t, err)

	var mission, patch map[string]interface{}
	require.NoError(t, yaml.Unmarshal(missionRaw, &mission))
	require.NoError(t, yaml.Unmarshal(patchRaw, &patch))
	assert.Equal(t, patch, mission, "without a base the full spec is the bare patch")

	study := mission["study"].(map[string]interface{})
	_, annotated := study["notes"]
	assert.False(t, annotated, "no generator note without a base")
}

func TestExport_EmptyTemplateUsesFallbackProfile(t *testing.T) {
	svc, exportsDir, profileDir := newExportFixture(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(profileDir, "base.yaml"), []byte("mission:\n  orbit: SSO\n"), 0o644))

	doc := testutil.NewTestDocument()
	doc.Template = ""
	res, err := svc.Export(context.Background(), doc)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(exportsDir, res.MissionFile))
	require.NoError(t, err)
	var full map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &full))
	mission := full["mission"].(map[string]interface{})
	assert.Equal(t, "SSO", mission["orbit"])
}

func TestExport_MalformedProfileFails(t *testing.T) {
	svc, _, profileDir := newExportFixture(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(profileDir, "base.yaml"), []byte("mission: [unclosed\n"), 0o644))

	_, err := svc.Export(context.Background(), testutil.NewTestDocument())
	assert.Error(t, err)
}

func TestExport_NotifiesObserver(t *testing.T) {
	obs := &recordingObserver{}
	svc, _, _ := newExportFixture(t, obs)

	_, err := svc.Export(context.Background(), testutil.NewTestDocument())
	require.NoError(t, err)

	require.Len(t, obs.events, 1)
	event := obs.events[0]
	assert.Equal(t, "export", event.Name)
	assert.True(t, event.Success)
	assert.Equal(t, false, event.Fields["base_found"])
	assert.Equal(t, "base", event.Fields["template"])
}
