package lattice

import (
	"github.com/timtadh/apriori/itemset"
)

type ClosedItemSet struct {
	Entry
	Parents []Entry
}

type Closure struct {
	Closed  []ClosedItemSet
	Maximal []Entry
}

// Parents are the frequent item sets exactly one item larger than s which
// contain s.
func (t *Table) Parents(s itemset.ItemSet) []Entry {
	parents := make([]Entry, 0, 10)
	for _, p := range t.Level(len(s) + 1) {
		if itemset.IsSubset(s, p.Items) {
			parents = append(parents, p)
		}
	}
	return parents
}

// Closed computes the closed and the maximal item sets. A set is closed when
// none of its parents has the same support and maximal when it has no
// parents at all. Both lists are in table order.
func (t *Table) Closed() *Closure {
	c := &Closure{
		Closed:  make([]ClosedItemSet, 0, len(t.order)),
		Maximal: make([]Entry, 0, 10),
	}
	for _, e := range t.order {
		parents := t.Parents(e.Items)
		if !absorbed(e, parents) {
			c.Closed = append(c.Closed, ClosedItemSet{e, parents})
			if len(parents) == 0 {
				c.Maximal = append(c.Maximal, e)
			}
		}
	}
	return c
}

func absorbed(e Entry, parents []Entry) bool {
	for _, p := range parents {
		if p.Support == e.Support {
			return true
		}
	}
	return false
}
