package service

import (
	"context"
	"testing"

	"github.com/shamsu/conops/internal/repository"
	"github.com/shamsu/conops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectService(t *testing.T) ProjectService {
	t.Helper()
	return NewProjectService(repository.NewSQLiteProjectRepo(testutil.NewTestDB(t)))
}

func TestProjectService_SaveAndGet(t *testing.T) {
	svc := newProjectService(t)
	ctx := context.Background()

	doc := testutil.NewTestDocument(testutil.WithActivity("capture", 1, 2))
	saved, err := svc.Save(ctx, "imaging rev B", doc)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := svc.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "imaging rev B", got.Name)
	assert.Equal(t, doc.Activities, got.Doc.Activities)
}

func TestProjectService_GetMissing(t *testing.T) {
	svc := newProjectService(t)

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectService_ListAndDelete(t *testing.T) {
	svc := newProjectService(t)
	ctx := context.Background()

	first, err := svc.Save(ctx, "first", testutil.NewTestDocument())
	require.NoError(t, err)
	_, err = svc.Save(ctx, "second", testutil.NewTestDocument())
	require.NoError(t, err)

	summaries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "first", summaries[0].Name)

	require.NoError(t, svc.Delete(ctx, first.ID))
	summaries, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "second", summaries[0].Name)
}
