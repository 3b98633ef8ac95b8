package service

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfauvel/diptrack/internal/dipdoc"
	"github.com/tfauvel/diptrack/internal/domain"
	"github.com/tfauvel/diptrack/internal/repository"
	"github.com/tfauvel/diptrack/internal/testutil"
)

func newTestDraft(t *testing.T) (DraftService, repository.ProposalRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProposalRepo(db)
	return NewDraftService(repo), repo
}

func TestDraft_NextNumber(t *testing.T) {
	svc, repo := newTestDraft(t)
	ctx := context.Background()

	n, err := svc.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "empty index starts at 1")

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProposal(1044)))
	n, err = svc.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1045, n)
}

func TestDraft_CreateDraft_ProducesParsableDocument(t *testing.T) {
	svc, _ := newTestDraft(t)
	ctx := context.Background()
	dir := t.TempDir()

	path, err := svc.CreateDraft(ctx, dir, 1050, "Scoped enum members", "W. Bright")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	p, err := dipdoc.ParseDocument("1050.md", content)
	require.NoError(t, err)
	assert.Equal(t, 1050, p.DIP)
	assert.Equal(t, "Scoped enum members", p.Title)
	assert.Equal(t, "W. Bright", p.Author)
	assert.Equal(t, domain.StatusDraft, p.Status)
	assert.Equal(t, 0, p.ReviewCount)
	assert.Contains(t, p.Body, "## Abstract")
}

func TestDraft_CreateDraft_RefusesExistingNumber(t *testing.T) {
	svc, repo := newTestDraft(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProposal(7)))

	_, err := svc.CreateDraft(ctx, t.TempDir(), 7, "Dup", "X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestDraft_CreateDraft_RefusesExistingFile(t *testing.T) {
	svc, _ := newTestDraft(t)
	ctx := context.Background()
	dir := t.TempDir()

	testutil.WriteDoc(t, dir, "0009.md", "placeholder")

	_, err := svc.CreateDraft(ctx, dir, 9, "Clash", "X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file already exists")
}
