package analogy

import (
	"sync"

	"github.com/bastiangx/wordfourth/pkg/model"
	"github.com/charmbracelet/log"
)

type pairKey struct {
	left  string
	right string
}

// resultCache is a bounded cache of FindFourth results keyed by the query
// pair. Eviction is least-recently-used, tracked with a monotonic access
// counter rather than wall-clock time.
type resultCache struct {
	results    map[pairKey]model.TokenSet
	accessTime map[pairKey]int64
	accessSeq  int64
	hits       int64
	maxEntries int
	mu         sync.Mutex
}

func newResultCache(maxEntries int) *resultCache {
	return &resultCache{
		results:    make(map[pairKey]model.TokenSet, maxEntries),
		accessTime: make(map[pairKey]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

func (rc *resultCache) get(left, right string) (model.TokenSet, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	key := pairKey{left: left, right: right}
	result, ok := rc.results[key]
	if !ok {
		return nil, false
	}
	rc.hits++
	rc.accessSeq++
	rc.accessTime[key] = rc.accessSeq
	return result, true
}

func (rc *resultCache) put(left, right string, result model.TokenSet) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if len(rc.results) >= rc.maxEntries {
		rc.evictLRU()
	}

	key := pairKey{left: left, right: right}
	rc.accessSeq++
	rc.results[key] = result
	rc.accessTime[key] = rc.accessSeq
}

// evictLRU drops the entry with the oldest access sequence.
// Callers must hold rc.mu.
func (rc *resultCache) evictLRU() {
	var oldestKey pairKey
	var oldestSeq int64 = 9223372036854775807

	for key, seq := range rc.accessTime {
		if seq < oldestSeq {
			oldestSeq = seq
			oldestKey = key
		}
	}

	if _, ok := rc.results[oldestKey]; ok {
		delete(rc.results, oldestKey)
		delete(rc.accessTime, oldestKey)
		log.Debugf("Evicted pair (%s, %s) from result cache", oldestKey.left, oldestKey.right)
	}
}

// Stats returns cache counters.
func (rc *resultCache) Stats() map[string]int {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	return map[string]int{
		"cachedPairs": len(rc.results),
		"maxPairs":    rc.maxEntries,
		"cacheHits":   int(rc.hits),
	}
}
