package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tfauvel/diptrack/internal/domain"
)

// ProposalOption mutates a test proposal during construction.
type ProposalOption func(*domain.Proposal)

// NewTestProposal builds a proposal with sensible defaults for tests.
func NewTestProposal(dip int, opts ...ProposalOption) *domain.Proposal {
	now := time.Now().UTC()
	p := &domain.Proposal{
		DIP:        dip,
		Title:      fmt.Sprintf("Test proposal %d", dip),
		Author:     "Test Author",
		Status:     domain.StatusDraft,
		SourceFile: fmt.Sprintf("%d.md", dip),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithStatus sets the proposal status.
func WithStatus(status domain.ProposalStatus) ProposalOption {
	return func(p *domain.Proposal) { p.Status = status }
}

// WithTitle sets the proposal title.
func WithTitle(title string) ProposalOption {
	return func(p *domain.Proposal) { p.Title = title }
}

// WithAuthor sets the proposal author.
func WithAuthor(author string) ProposalOption {
	return func(p *domain.Proposal) { p.Author = author }
}

// WithReviewCount sets the review count.
func WithReviewCount(n int) ProposalOption {
	return func(p *domain.Proposal) { p.ReviewCount = n }
}

// WithBody sets the proposal body.
func WithBody(body string) ProposalOption {
	return func(p *domain.Proposal) { p.Body = body }
}

// WriteDoc writes a document file into dir and returns its full path.
func WriteDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

// DocWithTable renders a minimal valid DIP document for the given number
// and status, suitable as a fixture file.
func DocWithTable(dip int, status domain.ProposalStatus) string {
	return fmt.Sprintf(
		"# DIP %d: Test proposal %d\n\n| DIP:    | %d |\n| Author: | Test Author |\n| Status: | %s |\n\nBody of proposal %d.\n",
		dip, dip, dip, status, dip)
}
