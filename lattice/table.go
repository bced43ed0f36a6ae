package lattice

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/hashtable"
)

import (
	"github.com/timtadh/apriori/itemset"
)

// MissingItemSet is returned when an item set which must be frequent is not
// in the table. It always means an internal invariant was broken.
type MissingItemSet struct {
	Items itemset.ItemSet
}

func (m *MissingItemSet) Error() string {
	return fmt.Sprintf("item set %v is not in the support table", m.Items)
}

type Entry struct {
	Items   itemset.ItemSet
	Support int
}

// Table is the support table of the frequent item sets. It only grows. It
// remembers the order the sets were added in and groups them by size so the
// sets one item larger than a given set can be found without a full scan.
type Table struct {
	supports *hashtable.LinearHash
	order    []Entry
	levels   [][]Entry
}

func NewTable() *Table {
	return &Table{
		supports: hashtable.NewLinearHash(),
		order:    make([]Entry, 0, 10),
		levels:   make([][]Entry, 0, 4),
	}
}

func (t *Table) Add(s itemset.ItemSet, support int) error {
	if len(s) == 0 {
		return errors.Errorf("the empty item set can not be added to the table")
	}
	if t.Has(s) {
		return errors.Errorf("item set %v was already added to the table", s)
	}
	err := t.supports.Put(s, support)
	if err != nil {
		return err
	}
	e := Entry{Items: s, Support: support}
	t.order = append(t.order, e)
	for len(t.levels) < len(s) {
		t.levels = append(t.levels, make([]Entry, 0, 10))
	}
	t.levels[len(s)-1] = append(t.levels[len(s)-1], e)
	return nil
}

func (t *Table) Has(s itemset.ItemSet) bool {
	return t.supports.Has(s)
}

func (t *Table) Support(s itemset.ItemSet) (int, error) {
	if !t.supports.Has(s) {
		return 0, &MissingItemSet{s}
	}
	v, err := t.supports.Get(s)
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

func (t *Table) Len() int {
	return len(t.order)
}

// Entries are all of the frequent item sets in the order they were added.
func (t *Table) Entries() []Entry {
	return t.order
}

// Level returns the item sets of size k in the order they were added.
func (t *Table) Level(k int) []Entry {
	if k < 1 || k > len(t.levels) {
		return nil
	}
	return t.levels[k-1]
}
