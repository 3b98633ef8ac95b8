package formatter

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/tfauvel/diptrack/internal/domain"
	"github.com/tfauvel/diptrack/internal/repository"
	"github.com/tfauvel/diptrack/internal/service"
)

func TestStatusPill(t *testing.T) {
	tests := []struct {
		status   domain.ProposalStatus
		contains string
	}{
		{domain.StatusDraft, "Draft"},
		{domain.StatusCommunityReview, "Community Review"},
		{domain.StatusFormalReview, "Formal Review"},
		{domain.StatusAccepted, "Accepted"},
		{domain.StatusRejected, "Rejected"},
		{domain.StatusFinal, "Final"},
		{domain.StatusPostponed, "Postponed"},
		{domain.StatusSuperseded, "Superseded"},
		{domain.StatusWithdrawn, "Withdrawn"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Contains(t, StatusPill(tt.status), tt.contains)
		})
	}
}

func TestFormatProposalList(t *testing.T) {
	proposals := []*domain.Proposal{
		{DIP: 1003, Title: "Remove with-statement lookup", Author: "A. H.", Status: domain.StatusAccepted, ReviewCount: 1},
		{DIP: 1009, Title: "Add bottom type", Author: "B. C.", Status: domain.StatusFormalReview},
	}
	got := FormatProposalList(proposals)
	assert.Contains(t, got, "1003")
	assert.Contains(t, got, "Remove with-statement lookup")
	assert.Contains(t, got, "Accepted")
	assert.Contains(t, got, "1009")
	assert.Contains(t, got, "Formal Review")
}

func TestFormatProposalInspect(t *testing.T) {
	p := &domain.Proposal{
		DIP:            1003,
		Title:          "Remove with-statement lookup",
		Author:         "A. Hejlsberg",
		ReviewCount:    2,
		Implementation: "https://example.org/pr/42",
		Status:         domain.StatusAccepted,
		Body:           "## Abstract\n\nline 1\nline 2\nline 3\nline 4",
		SourceFile:     "1003.md",
	}

	got := FormatProposalInspect(p, 3)
	assert.Contains(t, got, "DIP 1003")
	assert.Contains(t, got, "A. Hejlsberg")
	assert.Contains(t, got, "https://example.org/pr/42")
	assert.Contains(t, got, "## Abstract")
	assert.Contains(t, got, "more lines")
	assert.NotContains(t, got, "line 4", "preview must cut after the requested lines")
}

func TestFormatSummary(t *testing.T) {
	counts := []repository.StatusCount{
		{Status: domain.StatusDraft, Count: 3},
		{Status: domain.StatusAccepted, Count: 2},
	}
	got := FormatSummary(counts)
	assert.Contains(t, got, "Draft")
	assert.Contains(t, got, "3")
	assert.Contains(t, got, "Total")
	assert.Contains(t, got, "5")
}

func TestFormatSummary_Empty(t *testing.T) {
	got := FormatSummary(nil)
	assert.Contains(t, got, "empty")
}

func TestFormatSyncResult(t *testing.T) {
	result := &service.SyncResult{
		Run: &domain.SyncRun{
			Root:          "/docs/dips",
			DocumentCount: 4,
			ErrorCount:    1,
			RanAt:         time.Now(),
		},
		Pruned: 2,
		ParseErrors: []*domain.ParseError{
			{File: "bad.md", Reason: "no metadata table"},
		},
	}
	got := FormatSyncResult(result)
	assert.Contains(t, got, "4 proposals")
	assert.Contains(t, got, "/docs/dips")
	assert.Contains(t, got, "pruned 2")
	assert.Contains(t, got, "bad.md")
}

func TestTruncTitle(t *testing.T) {
	assert.Equal(t, "--", TruncTitle("", 10))
	assert.Equal(t, "short", TruncTitle("short", 10))
	got := TruncTitle("a very long proposal title indeed", 10)
	assert.Len(t, []rune(got), 10)
	assert.Contains(t, got, "…")
}

func TestTruncTitle_MultiByte(t *testing.T) {
	got := TruncTitle("Überlange Vorschlagstitel müssen gekürzt werden", 10)
	assert.True(t, utf8.ValidString(got), "truncation must not split a rune")
	assert.Len(t, []rune(got), 10)
	assert.Contains(t, got, "…")

	got = TruncTitle("提案のタイトルを短くする", 6)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "提案のタイ…", got)
}

func TestRenderTable(t *testing.T) {
	got := RenderTable([]string{"DIP", "STATUS"}, [][]string{{"1003", "Accepted"}})
	assert.Contains(t, got, "DIP")
	assert.Contains(t, got, "1003")
	assert.Contains(t, got, "─")
}

func TestRenderBox(t *testing.T) {
	got := RenderBox("TEST", "content here")
	assert.Contains(t, got, "TEST")
	assert.Contains(t, got, "content here")
	assert.Contains(t, got, "╭")
	assert.Contains(t, got, "╰")
}
