package phonenumber

import (
	"sync"

	"go.uber.org/zap"

	"github.com/xlab/phonenumber/metadata"
)

var (
	defaultCacheOnce sync.Once
	defaultCache     *metadata.Cache
)

// cache returns the package-wide metadata cache, built lazily over
// metadata.DefaultSource() on first use — so Parse("...", "US") works with
// no setup, the way the teacher's DeviceE173() gives a zero-config default
// profile.
func cache() *metadata.Cache {
	defaultCacheOnce.Do(func() {
		defaultCache = metadata.NewCache(metadata.DefaultSource(), zap.NewNop())
	})
	return defaultCache
}

// SetLogger replaces the package-wide cache's diagnostic sink. Intended to
// be called once at program start, before any Parse/Format call, if a
// caller wants to observe metadata-loader diagnostics (spec.md §7's silent
// regex coercion).
func SetLogger(log *zap.Logger) {
	defaultCacheOnce.Do(func() {})
	defaultCache = metadata.NewCache(metadata.DefaultSource(), log)
}
