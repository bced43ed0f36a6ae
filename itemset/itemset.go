package itemset

import (
	"encoding/binary"
	"fmt"
	"sort"
)

import (
	"github.com/timtadh/data-structures/types"
)

// ItemSet is the canonical form of a set of items: the item ids sorted
// ascending with no repeats. All the constructors in this package return
// canonical sets.
type ItemSet []int32

func New(items ...int32) ItemSet {
	s := make(ItemSet, len(items))
	copy(s, items)
	return s.canonicalize()
}

// Canonical returns a sorted, deduplicated copy of s. It is idempotent.
func (s ItemSet) Canonical() ItemSet {
	return New(s...)
}

func (s ItemSet) canonicalize() ItemSet {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	if len(s) <= 1 {
		return s
	}
	j := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[j-1] {
			s[j] = s[i]
			j++
		}
	}
	return s[:j]
}

// Prefix is every item but the last one.
func (s ItemSet) Prefix() ItemSet {
	if len(s) == 0 {
		return s
	}
	return s[:len(s)-1]
}

func (s ItemSet) Last() int32 {
	return s[len(s)-1]
}

// IsSubset reports whether every item of child is in parent. Only presence
// matters.
func IsSubset(child, parent ItemSet) bool {
	if len(child) > len(parent) {
		return false
	}
	j := 0
	for _, item := range child {
		for j < len(parent) && parent[j] < item {
			j++
		}
		if j >= len(parent) || parent[j] != item {
			return false
		}
		j++
	}
	return true
}

func (s ItemSet) equals(o ItemSet) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// less is the lexicographic order over the ids, shorter first on a tie.
func (s ItemSet) less(o ItemSet) bool {
	for i := 0; i < len(s) && i < len(o); i++ {
		if s[i] != o[i] {
			return s[i] < o[i]
		}
	}
	return len(s) < len(o)
}

func (s ItemSet) Equals(o types.Equatable) bool {
	switch b := o.(type) {
	case ItemSet:
		return s.equals(b)
	default:
		return false
	}
}

func (s ItemSet) Less(o types.Sortable) bool {
	switch b := o.(type) {
	case ItemSet:
		return s.less(b)
	default:
		return false
	}
}

func (s ItemSet) Hash() int {
	return types.ByteSlice(s.Label()).Hash()
}

// Label is a big endian encoding of the set: the size followed by the ids.
func (s ItemSet) Label() []byte {
	bytes := make([]byte, 4*(len(s)+1))
	binary.BigEndian.PutUint32(bytes[0:4], uint32(len(s)))
	off := 4
	for _, item := range s {
		binary.BigEndian.PutUint32(bytes[off:off+4], uint32(item))
		off += 4
	}
	return bytes
}

func (s ItemSet) String() string {
	return fmt.Sprintf("%v", []int32(s))
}
