package rules

import (
	"fmt"
	"sort"
)

import (
	"github.com/timtadh/apriori/itemset"
	"github.com/timtadh/apriori/lattice"
)

// Rule is the association rule X -> Y.
type Rule struct {
	X, Y       itemset.ItemSet
	Antecedent string
	Consequent string
	Confidence float64
}

func (r *Rule) String() string {
	return fmt.Sprintf("%v -> %v (%.5g)", r.Antecedent, r.Consequent, r.Confidence)
}

// Confidence of x -> y is support(whole) / support(x). Both must be in the
// table.
func Confidence(t *lattice.Table, x, whole itemset.ItemSet) (float64, error) {
	sx, err := t.Support(x)
	if err != nil {
		return 0, err
	}
	sw, err := t.Support(whole)
	if err != nil {
		return 0, err
	}
	return float64(sw) / float64(sx), nil
}

// Strong scores every bipartition in both directions and keeps the rules
// with confidence of at least minConfidence. The rules are sorted by
// antecedent, then consequent, then by descending confidence.
func Strong(t *lattice.Table, dict *itemset.Dictionary, parts []Bipartition, minConfidence float64) ([]*Rule, error) {
	strong := make([]*Rule, 0, len(parts))
	add := func(x, y, whole itemset.ItemSet) error {
		c, err := Confidence(t, x, whole)
		if err != nil {
			return err
		}
		if c >= minConfidence {
			strong = append(strong, &Rule{
				X:          x,
				Y:          y,
				Antecedent: dict.Key(x),
				Consequent: dict.Key(y),
				Confidence: c,
			})
		}
		return nil
	}
	for _, p := range parts {
		if err := add(p.X, p.Y, p.Whole); err != nil {
			return nil, err
		}
		if err := add(p.Y, p.X, p.Whole); err != nil {
			return nil, err
		}
	}
	Sort(strong)
	return strong, nil
}

func Sort(rules []*Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		a, b := rules[i], rules[j]
		if a.Antecedent != b.Antecedent {
			return a.Antecedent < b.Antecedent
		}
		if a.Consequent != b.Consequent {
			return a.Consequent < b.Consequent
		}
		return a.Confidence > b.Confidence
	})
}
