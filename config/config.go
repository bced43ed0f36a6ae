package config

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"runtime"
)

import (
	"github.com/timtadh/apriori/stores/postings"
)

// InvalidThreshold is returned by Validate when a threshold is outside of
// (0, 1].
type InvalidThreshold struct {
	Name  string
	Value float64
}

func (e *InvalidThreshold) Error() string {
	return fmt.Sprintf("%v must be in (0, 1], got %v", e.Name, e.Value)
}

type Config struct {
	Cache         string
	MinSupport    float64
	MinConfidence float64
	Parallelism   int
}

func (c *Config) Validate() error {
	if !(c.MinSupport > 0 && c.MinSupport <= 1) {
		return &InvalidThreshold{"minimum support", c.MinSupport}
	}
	if !(c.MinConfidence > 0 && c.MinConfidence <= 1) {
		return &InvalidThreshold{"minimum confidence", c.MinConfidence}
	}
	return nil
}

func (c *Config) Workers() int {
	if c.Parallelism == 0 {
		return 1
	} else if c.Parallelism < 0 {
		return runtime.NumCPU()
	} else {
		return c.Parallelism
	}
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

// PostingIndex makes an inverted index. Without a cache directory it lives
// in an anonymous memory map.
func (c *Config) PostingIndex(name string) (postings.Index, error) {
	if c.Cache == "" {
		return postings.Anonymous()
	} else {
		return postings.Create(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}
