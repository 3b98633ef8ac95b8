package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposal_Label(t *testing.T) {
	p := &Proposal{DIP: 1003}
	assert.Equal(t, "DIP 1003", p.Label())
}

func TestProposal_Validate(t *testing.T) {
	p := &Proposal{DIP: 1003, Status: StatusAccepted}
	require.NoError(t, p.Validate())

	p.DIP = 0
	assert.Error(t, p.Validate())

	p.DIP = 1003
	p.Status = "Shipped"
	assert.Error(t, p.Validate())

	p.Status = StatusAccepted
	p.ReviewCount = -1
	assert.Error(t, p.Validate())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want ProposalStatus
	}{
		{"Accepted", StatusAccepted},
		{"accepted", StatusAccepted},
		{"FORMAL REVIEW", StatusFormalReview},
		{"formal  review", StatusFormalReview},
		{"  Draft ", StatusDraft},
		{"community review", StatusCommunityReview},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.raw)
		require.NoError(t, err, "raw %q", tt.raw)
		assert.Equal(t, tt.want, got, "raw %q", tt.raw)
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	_, err := ParseStatus("Shipped")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}

func TestParseError_Error(t *testing.T) {
	e := &ParseError{File: "1003.md", Field: "Status", Reason: "missing"}
	assert.Equal(t, "1003.md: field Status: missing", e.Error())

	e = &ParseError{File: "1003.md", Reason: "no metadata table"}
	assert.Equal(t, "1003.md: no metadata table", e.Error())
}

func TestNotFoundError_Error(t *testing.T) {
	e := &NotFoundError{DIP: 9999}
	assert.Equal(t, "DIP 9999 not found", e.Error())
}
