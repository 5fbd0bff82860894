package metadata

import (
	"sync"

	"go.uber.org/zap"
)

// Cache lazily loads and memoizes RegionMetadata by region code, process-
// wide (spec.md §3 Lifecycle, §5). It owns every RegionMetadata it
// produces; callers only ever borrow pointers into it for the duration of
// a call.
//
// Safe for concurrent use: a miss holds the write lock while it loads and
// inserts the region, using check-lock-recheck so concurrent misses on the
// same region don't race the parse (spec.md §5's "single writer per region-code miss").
type Cache struct {
	source Source
	log    logger

	mu      sync.RWMutex
	regions map[string]*RegionMetadata
}

// NewCache builds a Cache over source. A nil log defaults to zap.NewNop()
// so the library stays silent unless a caller opts in, matching the
// teacher's "never logs from inside the library" posture (only its
// example/ daemon calls log.Printf).
func NewCache(source Source, log *zap.Logger) *Cache {
	return &Cache{
		source:  source,
		log:     newLogger(log),
		regions: make(map[string]*RegionMetadata),
	}
}

// Region returns the metadata for regionCode, loading and caching it on
// first access. regionCode is never validated against a "supported
// regions" set (spec.md §9: _isValidRegionCode accepts any non-null
// region) — an unknown region simply fails to load.
func (c *Cache) Region(regionCode string) (*RegionMetadata, error) {
	c.mu.RLock()
	m, ok := c.regions[regionCode]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.regions[regionCode]; ok {
		return m, nil
	}

	doc, err := c.source.Document()
	if err != nil {
		return nil, &LoadError{Region: regionCode, Reason: "source: " + err.Error()}
	}
	m, err = Load(doc, regionCode, c.log)
	if err != nil {
		return nil, err
	}
	c.regions[regionCode] = m
	return m, nil
}

// CountryCallingCodes exposes the underlying Source's static table.
func (c *Cache) CountryCallingCodes() map[int][]string {
	return c.source.CountryCallingCodes()
}
