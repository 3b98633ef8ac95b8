package domain

import (
	"fmt"
	"time"
)

// Proposal is one Design Improvement Proposal document. The metadata fields
// come from the document's leading table; Body is everything after the table,
// stored verbatim and never interpreted.
type Proposal struct {
	DIP            int
	Title          string
	Author         string
	ReviewCount    int
	Implementation string
	Status         ProposalStatus
	Body           string
	SourceFile     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Label returns the display identifier, e.g. "DIP 1003".
func (p *Proposal) Label() string {
	return fmt.Sprintf("DIP %d", p.DIP)
}

// Validate checks the invariants a proposal must satisfy after parsing:
// a positive number and a known status.
func (p *Proposal) Validate() error {
	if p.DIP <= 0 {
		return fmt.Errorf("proposal number must be positive, got %d", p.DIP)
	}
	if _, err := ParseStatus(string(p.Status)); err != nil {
		return err
	}
	if p.ReviewCount < 0 {
		return fmt.Errorf("review count must not be negative, got %d", p.ReviewCount)
	}
	return nil
}
