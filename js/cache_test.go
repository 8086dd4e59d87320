package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestSourceCacheGetPut(t *testing.T) {
	c := NewSourceCache()
	_, ok := c.Get(10)
	test.That(t, !ok, "expected no entry for an unused offset")

	entry := &CacheEntry{EndOffset: 42, ParamCount: 2}
	c.Put(10, entry)

	got, ok := c.Get(10)
	test.That(t, ok, "expected an entry after Put")
	test.T(t, got.EndOffset, 42)
	test.T(t, got.ParamCount, 2)
}

func TestSourceCachePutIsNotReentrant(t *testing.T) {
	c := NewSourceCache()
	c.Put(10, &CacheEntry{EndOffset: 1})
	c.Put(10, &CacheEntry{EndOffset: 999})

	got, ok := c.Get(10)
	test.That(t, ok, "expected an entry")
	test.T(t, got.EndOffset, 1, "a second Put at the same offset must be a no-op")
}

func TestLockedSourceCacheDelegates(t *testing.T) {
	c := NewLockedSourceCache()
	_, ok := c.Get(5)
	test.That(t, !ok, "expected no entry yet")

	c.Put(5, &CacheEntry{EndOffset: 7})
	got, ok := c.Get(5)
	test.That(t, ok, "expected an entry after Put")
	test.T(t, got.EndOffset, 7)
}
