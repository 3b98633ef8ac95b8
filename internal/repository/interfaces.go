package repository

import (
	"context"

	"github.com/tfauvel/diptrack/internal/domain"
)

// StatusCount is one row of a per-status summary.
type StatusCount struct {
	Status domain.ProposalStatus
	Count  int
}

type ProposalRepo interface {
	Upsert(ctx context.Context, p *domain.Proposal) error
	GetByDIP(ctx context.Context, dip int) (*domain.Proposal, error)
	List(ctx context.Context) ([]*domain.Proposal, error)
	ListByStatus(ctx context.Context, status domain.ProposalStatus) ([]*domain.Proposal, error)
	SetStatus(ctx context.Context, dip int, status domain.ProposalStatus) error
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	DeleteMissing(ctx context.Context, seenDIPs []int) (int, error)
}

type SyncRunRepo interface {
	Create(ctx context.Context, run *domain.SyncRun) error
	ListRecent(ctx context.Context, limit int) ([]*domain.SyncRun, error)
}
