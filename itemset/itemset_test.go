package itemset

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

func TestCanonical(x *testing.T) {
	t := assert.New(x)
	s := New(3, 1, 2, 3, 1)
	t.Equal(ItemSet{1, 2, 3}, s)
	t.Equal(s, s.Canonical())
	t.Equal(s, s.Canonical().Canonical())
	t.Equal(ItemSet{}, New())
}

func TestCanonicalDoesNotAlias(x *testing.T) {
	t := assert.New(x)
	raw := []int32{2, 1}
	s := New(raw...)
	t.Equal(ItemSet{1, 2}, s)
	t.Equal([]int32{2, 1}, raw)
}

func TestIsSubset(x *testing.T) {
	t := assert.New(x)
	t.True(IsSubset(New(1, 3), New(1, 2, 3)))
	t.True(IsSubset(New(), New(1)))
	t.True(IsSubset(New(2), New(2)))
	t.False(IsSubset(New(1, 4), New(1, 2, 3)))
	t.False(IsSubset(New(1, 2, 3), New(1, 2)))
	t.False(IsSubset(New(0), New()))
}

func TestPrefixLast(x *testing.T) {
	t := assert.New(x)
	a := New(1, 3, 5)
	t.Equal(ItemSet{1, 3}, a.Prefix())
	t.Equal(int32(5), a.Last())
	t.Equal(ItemSet{}, New().Prefix())
}

func TestLabel(x *testing.T) {
	t := assert.New(x)
	s := New(7, 0, 42)
	t.Equal([]byte{0, 0, 0, 3, 0, 0, 0, 0, 0, 0, 0, 7, 0, 0, 0, 42}, s.Label())
	t.NotEqual(New(1, 2).Label(), New(1).Label())
}

func TestHashable(x *testing.T) {
	t := assert.New(x)
	var _ types.Hashable = ItemSet{}
	t.True(New(1, 2).Equals(New(2, 1)))
	t.False(New(1, 2).Equals(New(1)))
	t.True(New(1).Less(New(1, 2)))
	t.True(New(1, 2).Less(New(2)))
	t.False(New(2).Less(New(1, 2)))
	t.Equal(New(1, 2).Hash(), New(2, 1).Hash())

	table := hashtable.NewLinearHash()
	t.Nil(table.Put(New(1, 2), 5))
	t.True(table.Has(New(2, 1)))
	v, err := table.Get(ItemSet{1, 2})
	t.Nil(err)
	t.Equal(5, v.(int))
}

func TestDictionary(x *testing.T) {
	t := assert.New(x)
	d, err := NewDictionary([]string{"C", "A", "B"})
	t.Nil(err)
	t.True(d.SingleRune())
	t.Equal(3, d.Len())
	a, _ := d.Id("A")
	c, _ := d.Id("C")
	t.Equal(int32(0), a)
	t.Equal(int32(2), c)
	t.Equal([]int32{2, 0, 1}, d.Universe())
	s, err := d.Parse("CA")
	t.Nil(err)
	t.Equal(ItemSet{0, 2}, s)
	t.Equal("AC", d.Key(s))
	t.Equal("A", d.Token(0))
}

func TestDictionaryMultiRune(x *testing.T) {
	t := assert.New(x)
	d, err := NewDictionary([]string{"milk", "bread", "eggs"})
	t.Nil(err)
	t.False(d.SingleRune())
	s, err := d.Parse("milk bread")
	t.Nil(err)
	t.Equal("bread milk", d.Key(s))
	tx, err := d.Transaction("milk  bread milk")
	t.Nil(err)
	t.Equal(ItemSet{0, 2}, tx)
	t.Equal(ItemSet{1}, d.TransactionTokens([]string{"eggs", "jam"}))
}

func TestTransactionRejectsUnknownTokens(x *testing.T) {
	t := assert.New(x)
	d, err := NewDictionary([]string{"A", "B", "CD"})
	t.Nil(err)
	tx, err := d.Transaction("A CD")
	t.Nil(err)
	t.Equal(ItemSet{0, 2}, tx)
	for _, str := range []string{"AB", "ACD", "A B jam"} {
		_, err := d.Transaction(str)
		m, ok := err.(*MalformedItem)
		t.True(ok, "%q gave %v", str, err)
		if ok {
			t.Equal("not in the item universe", m.Reason)
		}
	}
	tx, err = d.Transaction("  ")
	t.Nil(err)
	t.Len(tx, 0)
}

func TestDictionaryMalformed(x *testing.T) {
	t := assert.New(x)
	for _, toks := range [][]string{
		{"A", ""},
		{"A", "B C"},
		{"A", "B", "A"},
	} {
		_, err := NewDictionary(toks)
		_, ok := err.(*MalformedItem)
		t.True(ok, "%v gave %v", toks, err)
	}
	d, err := NewDictionary([]string{"A", "B"})
	t.Nil(err)
	_, err = d.Parse("AZ")
	_, ok := err.(*MalformedItem)
	t.True(ok, "%v", err)
	_, err = d.Parse("")
	_, ok = err.(*MalformedItem)
	t.True(ok, "%v", err)
	_, err = d.Transaction("BZA")
	_, ok = err.(*MalformedItem)
	t.True(ok, "%v", err)
	t.Equal(ItemSet{0, 1}, d.TransactionTokens([]string{"B", "Z", "A"}))
}
