package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tfauvel/diptrack/internal/db"
	"github.com/tfauvel/diptrack/internal/domain"
	"github.com/tfauvel/diptrack/internal/repository"
	"github.com/tfauvel/diptrack/internal/store"
)

type registryService struct {
	proposals repository.ProposalRepo
	syncRuns  repository.SyncRunRepo
	uow       db.UnitOfWork
}

func NewRegistryService(proposals repository.ProposalRepo, syncRuns repository.SyncRunRepo, uow db.UnitOfWork) RegistryService {
	return &registryService{proposals: proposals, syncRuns: syncRuns, uow: uow}
}

func (s *registryService) Sync(ctx context.Context, dir string) (*SyncResult, error) {
	docs, parseErrs, err := store.Load(dir)
	if err != nil {
		return nil, err
	}

	run := &domain.SyncRun{
		ID:            uuid.New().String(),
		Root:          dir,
		DocumentCount: docs.Len(),
		ErrorCount:    len(parseErrs),
		RanAt:         time.Now().UTC(),
	}

	result := &SyncResult{Run: run, ParseErrors: parseErrs}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		proposals := repository.NewSQLiteProposalRepo(tx)
		syncRuns := repository.NewSQLiteSyncRunRepo(tx)

		var seen []int
		for _, p := range docs.All() {
			if err := proposals.Upsert(ctx, p); err != nil {
				return err
			}
			seen = append(seen, p.DIP)
		}

		pruned, err := proposals.DeleteMissing(ctx, seen)
		if err != nil {
			return err
		}
		result.Pruned = pruned

		return syncRuns.Create(ctx, run)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *registryService) Get(ctx context.Context, dip int) (*domain.Proposal, error) {
	return s.proposals.GetByDIP(ctx, dip)
}

func (s *registryService) List(ctx context.Context) ([]*domain.Proposal, error) {
	return s.proposals.List(ctx)
}

func (s *registryService) ListByStatus(ctx context.Context, status domain.ProposalStatus) ([]*domain.Proposal, error) {
	return s.proposals.ListByStatus(ctx, status)
}

func (s *registryService) SetStatus(ctx context.Context, dip int, rawStatus string) (*domain.Proposal, error) {
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	if err := s.proposals.SetStatus(ctx, dip, status); err != nil {
		return nil, err
	}
	return s.proposals.GetByDIP(ctx, dip)
}

func (s *registryService) Summary(ctx context.Context) ([]repository.StatusCount, error) {
	return s.proposals.CountByStatus(ctx)
}

func (s *registryService) RecentSyncs(ctx context.Context, limit int) ([]*domain.SyncRun, error) {
	return s.syncRuns.ListRecent(ctx, limit)
}
