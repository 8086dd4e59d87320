package js

import "sync"

// sourceCache is what the parser needs from a function-body cache,
// satisfied by both *SourceCache and *LockedSourceCache. The parser
// holds this interface rather than a concrete *SourceCache so that a
// cache shared across goroutines (vm.Cache) keeps going through its
// lock instead of being unwrapped to the bare map underneath.
type sourceCache interface {
	Get(offset int) (*CacheEntry, bool)
	Put(offset int, entry *CacheEntry)
}

// CacheEntry is the skip-reparse record for one function body
// (spec.md §3, "CacheEntry"). It is keyed by the function's start
// offset within its source.
type CacheEntry struct {
	EndOffset      int
	EndLine        int
	EndLineStart   int
	EndToken       TokenType
	ParamCount     int
	Strict         bool
	Captured       []Name
	IsArrowExpr    bool
}

// SourceCache maps a function's start offset to its CacheEntry
// (spec.md §2 component 4, §4.8). Its lifetime is explicit and owned by
// whoever constructs it (typically one per VM, see spec.md §13 Open
// Question "cache scope" as resolved in SPEC_FULL.md §13): entries are
// never invalidated within the cache's own lifetime, only added.
//
// SourceCache itself is not safe for concurrent use; LockedSourceCache
// below adds the external synchronization spec.md §5 says a shared
// cache needs.
type SourceCache struct {
	entries map[int]*CacheEntry
}

// NewSourceCache returns an empty SourceCache.
func NewSourceCache() *SourceCache {
	return &SourceCache{entries: make(map[int]*CacheEntry)}
}

// Get returns the cache entry for a function starting at offset, if any.
func (c *SourceCache) Get(offset int) (*CacheEntry, bool) {
	e, ok := c.entries[offset]
	return e, ok
}

// Put records a new cache entry for a function starting at offset. A
// re-entrant Put at the same offset is a no-op: spec.md §8 requires that
// "re-parsing the same source with the same cache ... emits no new cache
// entry at that offset".
func (c *SourceCache) Put(offset int, entry *CacheEntry) {
	if _, ok := c.entries[offset]; ok {
		return
	}
	c.entries[offset] = entry
}

// blockBodyCacheThreshold and arrowExprCacheThreshold are the minimum
// body lengths (in source bytes) spec.md §4.8 requires before a function
// body is cached at all — caching a trivial body would cost more in
// map upkeep than it saves in skipped parsing. Only block bodies of
// function declarations and expressions are cached; the length checked
// runs from the '(' of the parameter list to the closing '}'. Arrow
// function bodies are never cached, so arrowExprCacheThreshold is not
// consulted.
const (
	blockBodyCacheThreshold = 16
	arrowExprCacheThreshold = 8
)

// LockedSourceCache wraps a SourceCache with a mutex for callers sharing
// one cache instance across goroutines each parsing a different source
// against the same VM (spec.md §5: "the source-provider cache is
// per-provider and must be externally synchronized if shared"). The
// plain sync.RWMutex-guarded map is written directly rather than
// adapted from a pack example; see DESIGN.md for why no retrieved
// cache implementation could be confirmed to fit.
type LockedSourceCache struct {
	mu    sync.RWMutex
	cache *SourceCache
}

// NewLockedSourceCache returns a LockedSourceCache wrapping a fresh
// SourceCache.
func NewLockedSourceCache() *LockedSourceCache {
	return &LockedSourceCache{cache: NewSourceCache()}
}

// Get returns the cache entry for offset, if any.
func (c *LockedSourceCache) Get(offset int) (*CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Get(offset)
}

// Put records a new cache entry for offset.
func (c *LockedSourceCache) Put(offset int, entry *CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Put(offset, entry)
}
