package rules

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/apriori/itemset"
	"github.com/timtadh/apriori/lattice"
)

func TestBipartitionCount(x *testing.T) {
	t := assert.New(x)
	for n := 1; n <= 8; n++ {
		s := make(itemset.ItemSet, 0, n)
		for i := 0; i < n; i++ {
			s = append(s, int32(i*3))
		}
		parts, err := Bipartitions(s)
		t.Nil(err)
		if n == 1 {
			t.Len(parts, 0)
			continue
		}
		t.Len(parts, (1<<uint(n-1))-1, "n = %v", n)
		seen := make(map[string]bool)
		for _, p := range parts {
			t.True(len(p.X) > 0 && len(p.Y) > 0)
			t.True(len(p.X) <= n/2)
			t.Equal(s, p.Whole)
			t.True(itemset.IsSubset(p.X, s) && itemset.IsSubset(p.Y, s))
			t.Equal(n, len(p.X)+len(p.Y))
			a, b := string(p.X.Label()), string(p.Y.Label())
			if b < a {
				a, b = b, a
			}
			t.False(seen[a+"|"+b], "%v %v repeated", p.X, p.Y)
			seen[a+"|"+b] = true
		}
	}
}

func TestBipartitionsOfFour(x *testing.T) {
	t := assert.New(x)
	parts, err := Bipartitions(itemset.New(0, 1, 2, 3))
	t.Nil(err)
	xs := make([]itemset.ItemSet, 0, len(parts))
	for _, p := range parts {
		xs = append(xs, p.X)
	}
	t.ElementsMatch([]itemset.ItemSet{
		{0}, {1}, {2}, {3},
		{0, 1}, {0, 2}, {0, 3},
	}, xs)
}

func TestBipartitionsTooWide(x *testing.T) {
	t := assert.New(x)
	s := make(itemset.ItemSet, 0, MaxItems+1)
	for i := 0; i <= MaxItems; i++ {
		s = append(s, int32(i))
	}
	_, err := Bipartitions(s)
	t.NotNil(err)
}

// A=0 B=1 C=2 for the transactions ABC, AB, AC, A.
func scenario(t *assert.Assertions) (*lattice.Table, *itemset.Dictionary) {
	dict, err := itemset.NewDictionary([]string{"A", "B", "C"})
	t.Nil(err)
	table := lattice.NewTable()
	for _, e := range []struct {
		key string
		sup int
	}{{"A", 4}, {"B", 2}, {"C", 2}, {"AB", 2}, {"AC", 2}} {
		s, err := dict.Parse(e.key)
		t.Nil(err)
		t.Nil(table.Add(s, e.sup))
	}
	return table, dict
}

func TestGenerate(x *testing.T) {
	t := assert.New(x)
	table, _ := scenario(t)
	parts, err := Generate(table)
	t.Nil(err)
	t.Len(parts, 2)
	t.Equal(itemset.New(0, 1), parts[0].Whole)
	t.Equal(itemset.New(0, 2), parts[1].Whole)
}

func TestStrongScenario(x *testing.T) {
	t := assert.New(x)
	table, dict := scenario(t)
	parts, err := Generate(table)
	t.Nil(err)
	strong, err := Strong(table, dict, parts, .5)
	t.Nil(err)
	got := make([]string, 0, len(strong))
	for _, r := range strong {
		got = append(got, r.String())
		t.True(r.Confidence >= .5 && r.Confidence <= 1)
	}
	t.Equal([]string{
		"A -> B (0.5)",
		"A -> C (0.5)",
		"B -> A (1)",
		"C -> A (1)",
	}, got)

	strong, err = Strong(table, dict, parts, .75)
	t.Nil(err)
	t.Len(strong, 2)
	t.Equal("B", strong[0].Antecedent)
	t.Equal(itemset.New(0), strong[0].Y)
}

func TestStrongMissing(x *testing.T) {
	t := assert.New(x)
	table, dict := scenario(t)
	parts, err := Bipartitions(itemset.New(1, 2))
	t.Nil(err)
	_, err = Strong(table, dict, parts, .5)
	_, ok := err.(*lattice.MissingItemSet)
	t.True(ok, "%v", err)
}

func TestSort(x *testing.T) {
	t := assert.New(x)
	rules := []*Rule{
		{Antecedent: "B", Consequent: "A", Confidence: .5},
		{Antecedent: "A", Consequent: "C", Confidence: .2},
		{Antecedent: "A", Consequent: "B", Confidence: .3},
		{Antecedent: "A", Consequent: "B", Confidence: .9},
		{Antecedent: "AB", Consequent: "C", Confidence: 1},
	}
	Sort(rules)
	got := make([]string, 0, len(rules))
	for _, r := range rules {
		got = append(got, r.String())
	}
	t.Equal([]string{
		"A -> B (0.9)",
		"A -> B (0.3)",
		"A -> C (0.2)",
		"AB -> C (1)",
		"B -> A (0.5)",
	}, got)
}
