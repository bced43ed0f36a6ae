package transactions

import (
	"sort"
)

import (
	"github.com/RoaringBitmap/roaring"
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/itemset"
	"github.com/timtadh/apriori/stores/postings"
)

type EmptyTransactions struct{}

func (e *EmptyTransactions) Error() string {
	return "there are no transactions, support is undefined"
}

// DB is a read only transaction database. Each transaction is addressed by
// its position in ascending id order. The support of an item set is the
// cardinality of the intersection of the tid-sets of its items.
type DB struct {
	InvertedIndex postings.Index
	count         int
	tids          []*roaring.Bitmap
}

func New(conf *config.Config, dict *itemset.Dictionary, txs map[int]itemset.ItemSet) (db *DB, err error) {
	if len(txs) == 0 {
		return nil, &EmptyTransactions{}
	}
	index, err := conf.PostingIndex("inverted-index")
	if err != nil {
		return nil, err
	}
	db = &DB{
		InvertedIndex: index,
		count:         len(txs),
		tids:          make([]*roaring.Bitmap, dict.Len()),
	}
	ids := make([]int, 0, len(txs))
	for id := range txs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for tx, id := range ids {
		for _, item := range txs[id].Canonical() {
			if int(item) < 0 || int(item) >= dict.Len() {
				db.discard()
				return nil, errors.Errorf("transaction %v has item %v which is not in the dictionary", id, item)
			}
			err := index.Add(postings.Posting{Item: item, Tx: int32(tx)})
			if err != nil {
				db.discard()
				return nil, err
			}
		}
	}
	err = db.loadTidSets()
	if err != nil {
		db.discard()
		return nil, err
	}
	errors.Logf("DEBUG", "loaded %v transactions over %v items", db.count, dict.Len())
	return db, nil
}

// discard drops the index of a database which failed to load.
func (db *DB) discard() {
	if err := db.InvertedIndex.Delete(); err != nil {
		errors.Logf("ERROR", "error deleting the inverted index %v", err)
	}
}

func (db *DB) loadTidSets() error {
	for i := range db.tids {
		item := int32(i)
		db.tids[i] = roaring.New()
		has, err := db.InvertedIndex.Has(item)
		if err != nil {
			return err
		} else if !has {
			continue
		}
		err = postings.Each(
			func() (postings.Iterator, error) { return db.InvertedIndex.Postings(item) },
			func(p postings.Posting) error {
				db.tids[i].Add(uint32(p.Tx))
				return nil
			})
		if err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) Len() int {
	return db.count
}

// TidSet is the set of transaction positions containing every item of s.
func (db *DB) TidSet(s itemset.ItemSet) *roaring.Bitmap {
	if len(s) == 0 {
		all := roaring.New()
		all.AddRange(0, uint64(db.count))
		return all
	}
	bitmaps := make([]*roaring.Bitmap, 0, len(s))
	for _, item := range s {
		if int(item) < 0 || int(item) >= len(db.tids) {
			return roaring.New()
		}
		bitmaps = append(bitmaps, db.tids[item])
	}
	if len(bitmaps) == 1 {
		return bitmaps[0].Clone()
	}
	return roaring.FastAnd(bitmaps...)
}

func (db *DB) Support(s itemset.ItemSet) int {
	if len(s) == 1 && int(s[0]) >= 0 && int(s[0]) < len(db.tids) {
		return int(db.tids[s[0]].GetCardinality())
	}
	return int(db.TidSet(s).GetCardinality())
}

func (db *DB) Close() error {
	return db.InvertedIndex.Delete()
}
