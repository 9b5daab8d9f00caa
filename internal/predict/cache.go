package predict

import (
	"fmt"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/matchcast/internal/models"
)

// CacheKey identifies a cached prediction. Results are deterministic per
// (fixture, backend) pair, so nothing else participates in the key.
type CacheKey struct {
	HomeTeam string
	AwayTeam string
	Backend  string
}

// String returns the string representation of the cache key.
func (k CacheKey) String() string {
	return fmt.Sprintf("%s|%s|%s", k.HomeTeam, k.AwayTeam, k.Backend)
}

// ResultCache provides in-memory caching for prediction results.
type ResultCache struct {
	cache     *cache.Cache
	ttl       time.Duration
	maxSize   int
	mu        sync.RWMutex
	hitCount  uint64
	missCount uint64
}

// NewResultCache creates a new prediction result cache. cleanupInterval is
// the background janitor sweep period; maxSize bounds the entry count, with
// zero meaning unbounded.
func NewResultCache(ttl, cleanupInterval time.Duration, maxSize int) *ResultCache {
	return &ResultCache{
		cache:   cache.New(ttl, cleanupInterval),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get retrieves a cached result, or nil on miss.
func (rc *ResultCache) Get(key CacheKey) *models.PredictionResult {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, found := rc.cache.Get(key.String()); found {
		if result, ok := cached.(*models.PredictionResult); ok {
			rc.hitCount++
			rc.updateMetrics()
			return result
		}
	}

	rc.missCount++
	rc.updateMetrics()
	return nil
}

// Set stores a result in the cache.
func (rc *ResultCache) Set(key CacheKey, result *models.PredictionResult) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.maxSize > 0 && rc.cache.ItemCount() >= rc.maxSize {
		rc.cache.DeleteExpired()
	}

	rc.cache.Set(key.String(), result, rc.ttl)
}

// Clear flushes the entire cache. Called after a data refresh swaps the
// stats snapshot, since cached results were derived from the old one.
func (rc *ResultCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.cache.Flush()
	rc.hitCount = 0
	rc.missCount = 0
}

// Stats returns cache hit statistics.
func (rc *ResultCache) Stats() (hits, misses uint64, ratio float64) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	hits = rc.hitCount
	misses = rc.missCount
	total := hits + misses
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

// ItemCount returns the number of cached results.
func (rc *ResultCache) ItemCount() int {
	return rc.cache.ItemCount()
}

func (rc *ResultCache) updateMetrics() {
	total := rc.hitCount + rc.missCount
	if total > 0 {
		CacheHitRatio.Set(float64(rc.hitCount) / float64(total))
	}
}
