package solver

import (
	"hash/fnv"
	"math"
	"sync"

	"github.com/charmbracelet/log"
)

// rankCache keeps full rankings for recently seen candidate sets, evicting
// the least recently used set when full. The opening ranking over the whole
// dictionary is the expensive one and is hit on every reset.
type rankCache struct {
	entries     map[uint64][]Suggestion
	accessTime  map[uint64]int64
	accessCount int64
	hits        int64
	maxEntries  int
	mu          sync.Mutex
}

func newRankCache(maxEntries int) *rankCache {
	if maxEntries <= 0 {
		return nil
	}
	return &rankCache{
		entries:    make(map[uint64][]Suggestion, maxEntries),
		accessTime: make(map[uint64]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// candidateKey fingerprints an ordered candidate set.
func candidateKey(candidates []string) uint64 {
	h := fnv.New64a()
	for _, w := range candidates {
		h.Write([]byte(w))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

func (c *rankCache) get(key uint64) ([]Suggestion, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	ranked, ok := c.entries[key]
	if ok {
		c.hits++
		c.accessTime[key] = c.nextAccessTime()
	}
	return ranked, ok
}

func (c *rankCache) put(key uint64, ranked []Suggestion) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxEntries {
		c.evictLRU()
	}
	c.entries[key] = ranked
	c.accessTime[key] = c.nextAccessTime()
}

func (c *rankCache) len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *rankCache) nextAccessTime() int64 {
	c.accessCount++
	return c.accessCount
}

func (c *rankCache) evictLRU() {
	var oldestKey uint64
	var oldestTime int64 = math.MaxInt64

	for key, t := range c.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldestKey = key
		}
	}
	if oldestTime != math.MaxInt64 {
		delete(c.entries, oldestKey)
		delete(c.accessTime, oldestKey)
		log.Debugf("Evicted ranking %x from cache", oldestKey)
	}
}
