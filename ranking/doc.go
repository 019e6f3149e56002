// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ranking orders candidate lists for display.

# Usage

	sorter, err := ranking.NewSorter("en")
	ranked, err := sorter.Apply(candidates, models.SortSpec{
		SortBy: models.SortByVoteCount,
		Order:  models.OrderDescending,
	})

# Sort Keys

  - SortByVoteCount: numeric on the displayed vote count
  - SortByName: locale-aware collation on the display name (x/text/collate)
  - SortByLatest: numeric on the creation timestamp

# Guarantees

Apply is pure: the input slice is copied, never reordered in place. The sort
is stable, so equal-key candidates keep their relative input order and
applying the same spec twice yields the same result as applying it once.
Descending inverts the comparator for strictly-unequal keys only; ties are
not reversed.
*/
package ranking
