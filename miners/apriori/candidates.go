package apriori

import (
	"github.com/timtadh/apriori/itemset"
)

// Candidates joins every pair i < j of the item sets of one level. Single
// items always join. Larger sets join when they agree on everything but
// their last item. There is no subset pruning: the candidates are filtered
// by support alone.
func Candidates(level []itemset.ItemSet) []itemset.ItemSet {
	candidates := make([]itemset.ItemSet, 0, len(level))
	for i, a := range level {
		for _, b := range level[i+1:] {
			if c, ok := join(a, b); ok {
				candidates = append(candidates, c)
			}
		}
	}
	return candidates
}

func join(a, b itemset.ItemSet) (itemset.ItemSet, bool) {
	if len(a) != len(b) || len(a) == 0 {
		return nil, false
	}
	if !a.Prefix().Equals(b.Prefix()) {
		return nil, false
	}
	c := make(itemset.ItemSet, 0, len(a)+1)
	c = append(c, a...)
	c = append(c, b.Last())
	return c.Canonical(), true
}
