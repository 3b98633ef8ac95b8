package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfauvel/diptrack/internal/domain"
	"github.com/tfauvel/diptrack/internal/repository"
	"github.com/tfauvel/diptrack/internal/testutil"
)

func newTestRegistry(t *testing.T) RegistryService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewRegistryService(
		repository.NewSQLiteProposalRepo(db),
		repository.NewSQLiteSyncRunRepo(db),
		testutil.NewTestUoW(db),
	)
}

func TestRegistry_SyncAndGet(t *testing.T) {
	svc := newTestRegistry(t)
	ctx := context.Background()

	dir := t.TempDir()
	testutil.WriteDoc(t, dir, "1003.md", testutil.DocWithTable(1003, domain.StatusAccepted))
	testutil.WriteDoc(t, dir, "1009.md", testutil.DocWithTable(1009, domain.StatusFormalReview))

	result, err := svc.Sync(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Run.DocumentCount)
	assert.Equal(t, 0, result.Run.ErrorCount)
	assert.Empty(t, result.ParseErrors)
	assert.NotEmpty(t, result.Run.ID)

	p, err := svc.Get(ctx, 1003)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, p.Status)
	assert.Equal(t, "Test Author", p.Author)
}

func TestRegistry_Sync_CollectsParseErrors(t *testing.T) {
	svc := newTestRegistry(t)
	ctx := context.Background()

	dir := t.TempDir()
	testutil.WriteDoc(t, dir, "good.md", testutil.DocWithTable(1, domain.StatusDraft))
	testutil.WriteDoc(t, dir, "bad.md", "no table\n")

	result, err := svc.Sync(ctx, dir)
	require.NoError(t, err)
	require.Len(t, result.ParseErrors, 1)
	assert.Equal(t, "bad.md", result.ParseErrors[0].File)
	assert.Equal(t, 1, result.Run.DocumentCount)
	assert.Equal(t, 1, result.Run.ErrorCount)

	_, err = svc.Get(ctx, 1)
	assert.NoError(t, err)
}

func TestRegistry_Sync_PrunesVanishedDocuments(t *testing.T) {
	svc := newTestRegistry(t)
	ctx := context.Background()

	dir := t.TempDir()
	path := testutil.WriteDoc(t, dir, "2.md", testutil.DocWithTable(2, domain.StatusDraft))
	testutil.WriteDoc(t, dir, "1.md", testutil.DocWithTable(1, domain.StatusDraft))

	_, err := svc.Sync(ctx, dir)
	require.NoError(t, err)

	removeFile(t, path)

	result, err := svc.Sync(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pruned)

	_, err = svc.Get(ctx, 2)
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestRegistry_Sync_RecordsAuditRuns(t *testing.T) {
	svc := newTestRegistry(t)
	ctx := context.Background()

	dir := t.TempDir()
	testutil.WriteDoc(t, dir, "1.md", testutil.DocWithTable(1, domain.StatusDraft))

	_, err := svc.Sync(ctx, dir)
	require.NoError(t, err)
	_, err = svc.Sync(ctx, dir)
	require.NoError(t, err)

	runs, err := svc.RecentSyncs(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, dir, runs[0].Root)
}

func TestRegistry_SetStatus(t *testing.T) {
	svc := newTestRegistry(t)
	ctx := context.Background()

	dir := t.TempDir()
	testutil.WriteDoc(t, dir, "5.md", testutil.DocWithTable(5, domain.StatusFormalReview))
	_, err := svc.Sync(ctx, dir)
	require.NoError(t, err)

	p, err := svc.SetStatus(ctx, 5, "accepted")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, p.Status)
}

func TestRegistry_SetStatus_UnknownStatus(t *testing.T) {
	svc := newTestRegistry(t)
	_, err := svc.SetStatus(context.Background(), 5, "Shipped")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}

func TestRegistry_Summary(t *testing.T) {
	svc := newTestRegistry(t)
	ctx := context.Background()

	dir := t.TempDir()
	testutil.WriteDoc(t, dir, "1.md", testutil.DocWithTable(1, domain.StatusDraft))
	testutil.WriteDoc(t, dir, "2.md", testutil.DocWithTable(2, domain.StatusAccepted))
	testutil.WriteDoc(t, dir, "3.md", testutil.DocWithTable(3, domain.StatusAccepted))
	_, err := svc.Sync(ctx, dir)
	require.NoError(t, err)

	counts, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, domain.StatusDraft, counts[0].Status)
	assert.Equal(t, 1, counts[0].Count)
	assert.Equal(t, domain.StatusAccepted, counts[1].Status)
	assert.Equal(t, 2, counts[1].Count)
}
