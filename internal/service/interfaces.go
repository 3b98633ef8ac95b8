package service

import (
	"context"

	"github.com/tfauvel/diptrack/internal/domain"
	"github.com/tfauvel/diptrack/internal/repository"
)

// SyncResult holds the outcome of ingesting a document directory.
type SyncResult struct {
	Run         *domain.SyncRun
	Pruned      int
	ParseErrors []*domain.ParseError
}

type RegistryService interface {
	// Sync loads every document under dir and mirrors it into the index
	// atomically. Malformed documents are reported in the result, not as
	// an error.
	Sync(ctx context.Context, dir string) (*SyncResult, error)
	Get(ctx context.Context, dip int) (*domain.Proposal, error)
	List(ctx context.Context) ([]*domain.Proposal, error)
	ListByStatus(ctx context.Context, status domain.ProposalStatus) ([]*domain.Proposal, error)
	// SetStatus moves a proposal to a new lifecycle stage. Only the index
	// row changes; the document file is historical record and stays as-is.
	SetStatus(ctx context.Context, dip int, rawStatus string) (*domain.Proposal, error)
	Summary(ctx context.Context) ([]repository.StatusCount, error)
	RecentSyncs(ctx context.Context, limit int) ([]*domain.SyncRun, error)
}

// DraftService writes new proposal skeleton files. It never modifies an
// existing document.
type DraftService interface {
	// NextNumber returns the lowest unused proposal number greater than
	// every number currently in the index.
	NextNumber(ctx context.Context) (int, error)
	// CreateDraft writes a skeleton document with a well-formed metadata
	// table into dir and returns its path.
	CreateDraft(ctx context.Context, dir string, dip int, title, author string) (string, error)
}
