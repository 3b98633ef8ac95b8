// Package store loads a directory of DIP documents into an immutable
// in-memory collection indexed by proposal number.
package store

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tfauvel/diptrack/internal/dipdoc"
	"github.com/tfauvel/diptrack/internal/domain"
)

// Store is an immutable snapshot of a loaded document directory. All reads
// are side-effect free; FilterByStatus may be re-invoked at will.
type Store struct {
	byDIP map[int]*domain.Proposal
	order []int
}

// Load scans dir for markdown documents and parses each one. A malformed
// document is reported in the returned error slice and never aborts the
// rest of the load; only a directory-level failure returns a non-nil error.
func Load(dir string) (*Store, []*domain.ParseError, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading document directory: %w", err)
	}

	s := &Store{byDIP: make(map[int]*domain.Proposal)}
	var parseErrs []*domain.ParseError

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		content, err := os.ReadFile(path)
		if err != nil {
			parseErrs = append(parseErrs, &domain.ParseError{File: entry.Name(), Reason: err.Error()})
			continue
		}

		p, err := dipdoc.ParseDocument(entry.Name(), content)
		if err != nil {
			if perr, ok := err.(*domain.ParseError); ok {
				parseErrs = append(parseErrs, perr)
			} else {
				parseErrs = append(parseErrs, &domain.ParseError{File: entry.Name(), Reason: err.Error()})
			}
			continue
		}

		if prev, dup := s.byDIP[p.DIP]; dup {
			parseErrs = append(parseErrs, &domain.ParseError{
				File:   entry.Name(),
				Field:  "DIP",
				Reason: fmt.Sprintf("duplicate number %d (already defined in %s)", p.DIP, prev.SourceFile),
			})
			continue
		}
		p.SourceFile = path
		s.byDIP[p.DIP] = p
		s.order = append(s.order, p.DIP)
	}

	sort.Ints(s.order)
	return s, parseErrs, nil
}

// FindByDIP returns the proposal with the given number, or a
// *domain.NotFoundError when absent.
func (s *Store) FindByDIP(n int) (*domain.Proposal, error) {
	p, ok := s.byDIP[n]
	if !ok {
		return nil, &domain.NotFoundError{DIP: n}
	}
	return p, nil
}

// FilterByStatus returns a sequence of proposals with the given status, in
// ascending number order. The sequence is finite and restartable: ranging
// over it twice on the same store yields identical results.
func (s *Store) FilterByStatus(status domain.ProposalStatus) iter.Seq[*domain.Proposal] {
	return func(yield func(*domain.Proposal) bool) {
		for _, n := range s.order {
			p := s.byDIP[n]
			if p.Status != status {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// All returns every proposal in ascending number order.
func (s *Store) All() []*domain.Proposal {
	out := make([]*domain.Proposal, 0, len(s.order))
	for _, n := range s.order {
		out = append(out, s.byDIP[n])
	}
	return out
}

// Len returns the number of loaded proposals.
func (s *Store) Len() int {
	return len(s.order)
}
