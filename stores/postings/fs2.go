package postings

import (
	"sync"
)

import (
	"github.com/timtadh/fs2/bptree"
	"github.com/timtadh/fs2/fmap"
)

// BpTree is an Index kept in an fs2 B+ tree, either in an anonymous memory
// map or in a file.
type BpTree struct {
	lock sync.Mutex
	bf   *fmap.BlockFile
	tree *bptree.BpTree
}

func Anonymous() (*BpTree, error) {
	bf, err := fmap.Anonymous(fmap.BLOCKSIZE)
	if err != nil {
		return nil, err
	}
	return open(bf)
}

func Create(path string) (*BpTree, error) {
	bf, err := fmap.CreateBlockFile(path)
	if err != nil {
		return nil, err
	}
	return open(bf)
}

func open(bf *fmap.BlockFile) (*BpTree, error) {
	tree, err := bptree.New(bf, 4, 4)
	if err != nil {
		bf.Close()
		return nil, err
	}
	return &BpTree{bf: bf, tree: tree}, nil
}

func (b *BpTree) Add(p Posting) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.tree.Add(encode(p.Item), encode(p.Tx))
}

func (b *BpTree) Has(item int32) (bool, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.tree.Has(encode(item))
}

func (b *BpTree) Postings(item int32) (Iterator, error) {
	b.lock.Lock()
	kvi, err := b.tree.Find(encode(item))
	b.lock.Unlock()
	if err != nil {
		return nil, err
	}
	var next Iterator
	next = func() (Posting, error, Iterator) {
		b.lock.Lock()
		defer b.lock.Unlock()
		var k, v []byte
		var err error
		k, v, err, kvi = kvi()
		if err != nil {
			return Posting{}, err, nil
		} else if kvi == nil {
			return Posting{}, nil, nil
		}
		return Posting{Item: decode(k), Tx: decode(v)}, nil, next
	}
	return next, nil
}

// Delete closes the index and removes its backing file, if there is one.
func (b *BpTree) Delete() error {
	b.lock.Lock()
	err := b.bf.Close()
	b.lock.Unlock()
	if err != nil {
		return err
	}
	if b.bf.Path() == "" {
		return nil
	}
	return b.bf.Remove()
}
