// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ranking

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/danielhkuo/votekit/models"
)

// Sorter orders candidate lists for display. Name comparisons are
// locale-aware, so a Sorter is built once per locale and reused.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter creates a Sorter whose name comparisons follow the collation
// rules of the given BCP 47 locale tag (e.g. "en", "vi", "de-AT").
func NewSorter(locale string) (*Sorter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Sorter{collator: collate.New(tag)}, nil
}

// Apply returns a newly ordered copy of candidates according to spec. The
// input slice is never mutated. The underlying sort is stable: candidates
// with equal keys retain their relative input order, which also makes Apply
// idempotent.
func (s *Sorter) Apply(candidates []models.Candidate, spec models.SortSpec) ([]models.Candidate, error) {
	less, err := s.lessFunc(spec.SortBy)
	if err != nil {
		return nil, err
	}

	switch spec.Order {
	case models.OrderAscending, models.OrderDescending:
	default:
		return nil, fmt.Errorf("unknown sort order %q", spec.Order)
	}

	out := make([]models.Candidate, len(candidates))
	copy(out, candidates)

	ascending := spec.Order == models.OrderAscending
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return less(out[i], out[j])
		}
		// Swapping arguments inverts the order for strictly-unequal keys
		// while leaving ties in stable input order.
		return less(out[j], out[i])
	})

	return out, nil
}

// lessFunc returns the ascending comparator for a sort key
func (s *Sorter) lessFunc(sortBy string) (func(a, b models.Candidate) bool, error) {
	switch sortBy {
	case models.SortByVoteCount:
		return func(a, b models.Candidate) bool {
			return a.VoteCount < b.VoteCount
		}, nil
	case models.SortByName:
		return func(a, b models.Candidate) bool {
			return s.collator.CompareString(a.Name, b.Name) < 0
		}, nil
	case models.SortByLatest:
		return func(a, b models.Candidate) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		}, nil
	default:
		return nil, fmt.Errorf("unknown sort key %q", sortBy)
	}
}
