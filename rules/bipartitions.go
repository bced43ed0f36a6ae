package rules

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/itemset"
	"github.com/timtadh/apriori/lattice"
)

// MaxItems is the widest item set the bipartition enumeration accepts.
const MaxItems = 62

// Bipartition is an unordered split of Whole into two non empty, disjoint
// halves. X is never larger than Y.
type Bipartition struct {
	Whole itemset.ItemSet
	X, Y  itemset.ItemSet
}

// Bipartitions enumerates the 2^(n-1) - 1 unordered bipartitions of s by
// walking the bit masks of weight at most n/2. When n is even a mask of
// weight n/2 and its complement describe the same split, only the one
// holding the first item is kept.
func Bipartitions(s itemset.ItemSet) ([]Bipartition, error) {
	n := len(s)
	if n > MaxItems {
		return nil, errors.Errorf("item set %v has %v items, at most %v can be split into rules", s, n, MaxItems)
	}
	if n < 2 {
		return nil, nil
	}
	size := 1024
	if n <= 10 {
		size = (1 << uint(n-1)) - 1
	}
	parts := make([]Bipartition, 0, size)
	full := uint64(1)<<uint(n) - 1
	for mask := uint64(1); mask < full; mask++ {
		w := weight(mask)
		if w > n/2 {
			continue
		}
		if 2*w == n && mask&1 == 0 {
			continue
		}
		x := make(itemset.ItemSet, 0, w)
		y := make(itemset.ItemSet, 0, n-w)
		for i, item := range s {
			if mask&(1<<uint(i)) != 0 {
				x = append(x, item)
			} else {
				y = append(y, item)
			}
		}
		parts = append(parts, Bipartition{Whole: s, X: x, Y: y})
	}
	return parts, nil
}

func weight(mask uint64) int {
	w := 0
	for ; mask != 0; mask &= mask - 1 {
		w++
	}
	return w
}

// Generate returns the bipartitions of every frequent item set with more
// than one item, in table order.
func Generate(t *lattice.Table) ([]Bipartition, error) {
	parts := make([]Bipartition, 0, t.Len())
	for _, e := range t.Entries() {
		if len(e.Items) < 2 {
			continue
		}
		ps, err := Bipartitions(e.Items)
		if err != nil {
			return nil, err
		}
		parts = append(parts, ps...)
	}
	return parts, nil
}
