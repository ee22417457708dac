package accept

import "sort"

// score computes the precedence of a single range: fully specified ranges
// (a/b) outrank type wildcards (a/*) outrank full wildcards (*/*);
// among equally specific ranges, more parameters indicate stricter
// selection. q plays no part here — it is used only at match time to break
// ties among otherwise-equal competing winners.
func score(r *Range) int {
	s := len(r.Parameters)
	if r.Type != "*" {
		s += 1_000
	}
	if r.Subtype != "*" {
		s += 1_000_000
	}
	return s
}

// SortByPrecedence sorts ranges in place, descending by precedence score,
// stable with respect to original parse order (so that, at equal score,
// earlier-appearing ranges in the header retain priority over later ones
// when the matcher later needs a tiebreak of its own).
func SortByPrecedence(ranges []Range) {
	sort.SliceStable(ranges, func(i, j int) bool {
		return score(&ranges[i]) > score(&ranges[j])
	})
}
