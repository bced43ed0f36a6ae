package apriori

import (
	"github.com/sourcegraph/conc/iter"
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/itemset"
	"github.com/timtadh/apriori/lattice"
	"github.com/timtadh/apriori/transactions"
)

// Miner is the level-wise frequent item set search.
type Miner struct {
	Config *config.Config
	Dict   *itemset.Dictionary
	Db     *transactions.DB
	Table  *lattice.Table
}

func NewMiner(conf *config.Config, dict *itemset.Dictionary, db *transactions.DB) *Miner {
	return &Miner{
		Config: conf,
		Dict:   dict,
		Db:     db,
	}
}

func (m *Miner) Frequent(support int) bool {
	return float64(support)/float64(m.Db.Len()) >= m.Config.MinSupport
}

// Mine fills a new support table. Level 1 is every item of the universe in
// the order it was given, each following level is made from the candidates
// of the level before. Mining stops after the first round which generates
// no candidates.
func (m *Miner) Mine() (*lattice.Table, error) {
	if err := m.Config.Validate(); err != nil {
		return nil, err
	}
	if m.Db.Len() == 0 {
		return nil, &transactions.EmptyTransactions{}
	}
	m.Table = lattice.NewTable()
	singletons := make([]itemset.ItemSet, 0, m.Dict.Len())
	for _, item := range m.Dict.Universe() {
		singletons = append(singletons, itemset.New(item))
	}
	level, err := m.record(singletons, m.count(singletons))
	if err != nil {
		return nil, err
	}
	errors.Logf("DEBUG", "level 1: %v of %v items frequent", len(level), len(singletons))
	for k := 2; ; k++ {
		candidates := Candidates(level)
		level, err = m.record(candidates, m.count(candidates))
		if err != nil {
			return nil, err
		}
		errors.Logf("DEBUG", "level %v: %v of %v candidates frequent", k, len(level), len(candidates))
		if len(candidates) == 0 {
			break
		}
	}
	errors.Logf("INFO", "found %v frequent item sets", m.Table.Len())
	return m.Table, nil
}

// count computes the supports of the candidates, in parallel when more than
// one worker is configured. The result is in the order of the candidates.
func (m *Miner) count(candidates []itemset.ItemSet) []int {
	if m.Config.Workers() <= 1 || len(candidates) <= 1 {
		supports := make([]int, 0, len(candidates))
		for _, c := range candidates {
			supports = append(supports, m.Db.Support(c))
		}
		return supports
	}
	mapper := iter.Mapper[itemset.ItemSet, int]{
		MaxGoroutines: m.Config.Workers(),
	}
	return mapper.Map(candidates, func(c *itemset.ItemSet) int {
		return m.Db.Support(*c)
	})
}

func (m *Miner) record(candidates []itemset.ItemSet, supports []int) ([]itemset.ItemSet, error) {
	level := make([]itemset.ItemSet, 0, len(candidates))
	for i, c := range candidates {
		if !m.Frequent(supports[i]) {
			continue
		}
		err := m.Table.Add(c, supports[i])
		if err != nil {
			return nil, err
		}
		level = append(level, c)
	}
	return level, nil
}
