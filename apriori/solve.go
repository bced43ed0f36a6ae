package apriori

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/itemset"
	"github.com/timtadh/apriori/lattice"
	miner "github.com/timtadh/apriori/miners/apriori"
	"github.com/timtadh/apriori/rules"
	"github.com/timtadh/apriori/transactions"
)

type Result struct {
	AllFrequentItems map[string]int
	ClosedItemSets   map[string]map[string]int
	MaximalItemSets  []string
	StrongRules      []*rules.Rule

	// Frequent holds the frequent item sets in the order they were found,
	// which AllFrequentItems can not.
	Frequent []lattice.Entry
	Dict     *itemset.Dictionary
}

type Apriori struct {
	Config *config.Config
}

func New(conf *config.Config) *Apriori {
	return &Apriori{
		Config: conf,
	}
}

// Solve mines the frequent item sets, the closed and maximal item sets and
// the strong association rules of the transactions.
func Solve(minSupport, minConfidence float64, items []string, transactions map[int]string) (*Result, error) {
	conf := &config.Config{
		MinSupport:    minSupport,
		MinConfidence: minConfidence,
	}
	return New(conf).Solve(items, transactions)
}

// Solve takes transactions encoded the same way as the keys of the result:
// one rune per item when every item is a single rune, white space separated
// items otherwise. A transaction holding an item outside of the universe is
// rejected with an *itemset.MalformedItem.
func (a *Apriori) Solve(items []string, txs map[int]string) (*Result, error) {
	dict, err := a.dictionary(items)
	if err != nil {
		return nil, err
	}
	encoded := make(map[int]itemset.ItemSet, len(txs))
	for id, str := range txs {
		s, err := dict.Transaction(str)
		if err != nil {
			errors.Logf("DEBUG", "transaction %v (%q) could not be decoded", id, str)
			return nil, err
		}
		encoded[id] = s
	}
	return a.solve(dict, encoded)
}

// SolveTokens takes transactions which are already split into items. Items
// which are not in the universe are ignored.
func (a *Apriori) SolveTokens(items []string, txs map[int][]string) (*Result, error) {
	dict, err := a.dictionary(items)
	if err != nil {
		return nil, err
	}
	encoded := make(map[int]itemset.ItemSet, len(txs))
	for id, toks := range txs {
		encoded[id] = dict.TransactionTokens(toks)
	}
	return a.solve(dict, encoded)
}

func (a *Apriori) dictionary(items []string) (*itemset.Dictionary, error) {
	if err := a.Config.Validate(); err != nil {
		return nil, err
	}
	return itemset.NewDictionary(items)
}

func (a *Apriori) solve(dict *itemset.Dictionary, txs map[int]itemset.ItemSet) (*Result, error) {
	db, err := transactions.New(a.Config, dict, txs)
	if err != nil {
		return nil, err
	}
	table, mineErr := miner.NewMiner(a.Config, dict, db).Mine()
	if err := db.Close(); err != nil {
		errors.Logf("ERROR", "error closing the transaction index %v", err)
	}
	if mineErr != nil {
		return nil, mineErr
	}
	closure := table.Closed()
	parts, err := rules.Generate(table)
	if err != nil {
		return nil, err
	}
	strong, err := rules.Strong(table, dict, parts, a.Config.MinConfidence)
	if err != nil {
		return nil, err
	}
	errors.Logf("INFO", "%v closed, %v maximal, %v strong rules from %v bipartitions",
		len(closure.Closed), len(closure.Maximal), len(strong), len(parts))
	return assemble(dict, table, closure, strong), nil
}

func assemble(dict *itemset.Dictionary, table *lattice.Table, closure *lattice.Closure, strong []*rules.Rule) *Result {
	r := &Result{
		AllFrequentItems: make(map[string]int, table.Len()),
		ClosedItemSets:   make(map[string]map[string]int, len(closure.Closed)),
		MaximalItemSets:  make([]string, 0, len(closure.Maximal)),
		StrongRules:      strong,
		Frequent:         table.Entries(),
		Dict:             dict,
	}
	for _, e := range table.Entries() {
		r.AllFrequentItems[dict.Key(e.Items)] = e.Support
	}
	for _, c := range closure.Closed {
		parents := make(map[string]int, len(c.Parents))
		for _, p := range c.Parents {
			parents[dict.Key(p.Items)] = p.Support
		}
		r.ClosedItemSets[dict.Key(c.Items)] = parents
	}
	for _, m := range closure.Maximal {
		r.MaximalItemSets = append(r.MaximalItemSets, dict.Key(m.Items))
	}
	return r
}
