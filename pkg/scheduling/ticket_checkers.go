package scheduling

import (
	"cmp"
	"slices"
)

// Shift is a half-open working interval [Start, End).
type Shift struct {
	Start int
	End   int
}

func NewShift(start, end int) Shift {
	return Shift{Start: start, End: end}
}

/*
HireTicketCheckers returns how many ticket checkers can be hired when no two hired shifts may overlap.
Greedy activity selection: take the shift that ends first, then the next one that starts at or after it ends.
schedule is not modified.

time complexity: O(n log n)
*/
func HireTicketCheckers(schedule []Shift) int {
	if len(schedule) == 0 {
		return 0
	}

	sorted := slices.Clone(schedule)
	slices.SortStableFunc(sorted, func(a, b Shift) int {
		return cmp.Compare(a.End, b.End)
	})

	count := 1
	last := sorted[0]
	for _, s := range sorted[1:] {
		if s.Start >= last.End {
			count++
			last = s
		}
	}
	return count
}
