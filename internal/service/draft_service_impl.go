package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tfauvel/diptrack/internal/dipdoc"
	"github.com/tfauvel/diptrack/internal/domain"
	"github.com/tfauvel/diptrack/internal/repository"
)

type draftService struct {
	proposals repository.ProposalRepo
}

func NewDraftService(proposals repository.ProposalRepo) DraftService {
	return &draftService{proposals: proposals}
}

func (s *draftService) NextNumber(ctx context.Context) (int, error) {
	proposals, err := s.proposals.List(ctx)
	if err != nil {
		return 0, err
	}
	next := 1
	for _, p := range proposals {
		if p.DIP >= next {
			next = p.DIP + 1
		}
	}
	return next, nil
}

func (s *draftService) CreateDraft(ctx context.Context, dir string, dip int, title, author string) (string, error) {
	if dip <= 0 {
		return "", fmt.Errorf("proposal number must be positive, got %d", dip)
	}
	if existing, err := s.proposals.GetByDIP(ctx, dip); err == nil {
		return "", fmt.Errorf("DIP %d already exists (%s)", dip, existing.SourceFile)
	}

	path := filepath.Join(dir, fmt.Sprintf("%04d.md", dip))
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("file already exists: %s", path)
	}

	table := &dipdoc.Table{
		HeaderKey:   "Field",
		HeaderValue: "Value",
		Rows: []dipdoc.TableRow{
			{Key: "DIP:", Value: fmt.Sprintf("%d", dip)},
			{Key: "Author:", Value: author},
			{Key: "Review Count:", Value: "0"},
			{Key: "Status:", Value: string(domain.StatusDraft)},
		},
	}

	content := fmt.Sprintf("# DIP %d: %s\n\n%s\n## Abstract\n\n## Rationale\n\n## Description\n\n## Reviews\n",
		dip, title, table.Serialize())

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating document directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing draft: %w", err)
	}
	return path, nil
}
