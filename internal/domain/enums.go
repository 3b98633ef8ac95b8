package domain

import (
	"fmt"
	"strings"
)

type ProposalStatus string

const (
	StatusDraft           ProposalStatus = "Draft"
	StatusCommunityReview ProposalStatus = "Community Review"
	StatusFormalReview    ProposalStatus = "Formal Review"
	StatusAccepted        ProposalStatus = "Accepted"
	StatusRejected        ProposalStatus = "Rejected"
	StatusFinal           ProposalStatus = "Final"
	StatusPostponed       ProposalStatus = "Postponed"
	StatusSuperseded      ProposalStatus = "Superseded"
	StatusWithdrawn       ProposalStatus = "Withdrawn"
)

// AllStatuses lists every status in lifecycle order, used for display and
// for cycling the status filter in the browser.
var AllStatuses = []ProposalStatus{
	StatusDraft,
	StatusCommunityReview,
	StatusFormalReview,
	StatusAccepted,
	StatusRejected,
	StatusFinal,
	StatusPostponed,
	StatusSuperseded,
	StatusWithdrawn,
}

var statusByKey = func() map[string]ProposalStatus {
	m := make(map[string]ProposalStatus, len(AllStatuses))
	for _, s := range AllStatuses {
		m[statusKey(string(s))] = s
	}
	return m
}()

// statusKey normalizes a status string for lookup: lowercase with interior
// whitespace collapsed, so "formal  review" and "Formal Review" match.
func statusKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// ParseStatus resolves a raw status string (as found in a metadata table or
// on the command line) to its canonical ProposalStatus. Matching is
// case-insensitive and whitespace-tolerant.
func ParseStatus(raw string) (ProposalStatus, error) {
	if s, ok := statusByKey[statusKey(raw)]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown status %q (valid: %s)", raw, strings.Join(StatusNames(), ", "))
}

// StatusNames returns the canonical status strings in lifecycle order.
func StatusNames() []string {
	names := make([]string, len(AllStatuses))
	for i, s := range AllStatuses {
		names[i] = string(s)
	}
	return names
}
