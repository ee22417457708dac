// Package cache implements the bounded, recency-ordered mapping from raw
// Accept header string to a matcher's answer.
package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/trpc-ecosystem/negotiate/log"
)

// entry distinguishes "header not yet seen" (absent from the underlying
// LRU) from "header seen, matcher found no acceptable type" (present, hit
// false, value ""). A bare *string cannot carry that distinction once we
// also want to store the empty string as a legitimate, different answer.
type entry struct {
	value string
	hit   bool // true if the matcher found an acceptable type
}

// Cache is a per-matcher bounded LRU cache. The zero value is not usable;
// construct with New. It is safe for concurrent use: each of Get, Put and
// Len holds the cache's mutex for that one call only. A caller doing
// "lookup, parse-on-miss, insert" parses outside the lock, so two
// goroutines missing on the same header may both parse it; the result is
// deterministic, so the second Put simply overwrites the first.
type Cache struct {
	mu  sync.Mutex
	lru *lru.Cache
}

// DefaultSize is the matcher cache's default bound.
const DefaultSize = 50

// New constructs a Cache bounded to size entries. A size <= 0 is replaced
// with DefaultSize. logger may be nil, in which case eviction events are
// not logged.
func New(size int, logger log.Logger) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	if logger == nil {
		logger = log.Nop()
	}
	// OnEvicted fires synchronously inside Add, under the lru package's own
	// lock, so it only logs — it must not call back into c.
	l, _ := lru.NewWithEvict(size, func(key interface{}, _ interface{}) {
		logger.Debugf("negotiate: evicted cache entry key=%s", key)
	})
	return &Cache{lru: l}
}

// Get looks up header, returning (result, matched, found). found is false
// if header has never been cached. matched mirrors the matcher's own
// "acceptable representation found" bit so that a cached "no match" (an
// intentional, cacheable answer) is distinguishable from a cache miss.
func (c *Cache) Get(header string) (result string, matched bool, found bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.lru.Get(header)
	if !ok {
		return "", false, false
	}
	e := v.(entry)
	return e.value, e.hit, true
}

// Put inserts header's result into the cache, evicting the least-recently
// used entry if the cache is at capacity.
func (c *Cache) Put(header string, result string, matched bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(header, entry{value: result, hit: matched})
}

// Len reports the number of entries currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
