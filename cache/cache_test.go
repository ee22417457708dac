package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheMissThenHit(t *testing.T) {
	c := New(2, nil)

	_, _, found := c.Get("text/html")
	require.False(t, found)

	c.Put("text/html", "text/html", true)
	value, matched, found := c.Get("text/html")
	require.True(t, found)
	require.True(t, matched)
	require.Equal(t, "text/html", value)
}

func TestCacheStoresNullResult(t *testing.T) {
	c := New(2, nil)
	c.Put("application/xml", "", false)

	value, matched, found := c.Get("application/xml")
	require.True(t, found, "a cached null answer is still found")
	require.False(t, matched)
	require.Equal(t, "", value)
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2, nil)
	c.Put("a", "a", true)
	c.Put("b", "b", true)

	// Touch "a" so "b" becomes least-recently-used.
	_, _, _ = c.Get("a")
	c.Put("c", "c", true)

	_, _, found := c.Get("b")
	require.False(t, found, "b should have been evicted")

	_, _, found = c.Get("a")
	require.True(t, found)
	_, _, found = c.Get("c")
	require.True(t, found)
}

func TestCacheDefaultSize(t *testing.T) {
	c := New(0, nil)
	for i := 0; i < DefaultSize+10; i++ {
		c.Put(fmt.Sprintf("h%d", i), "x", true)
	}
	require.Equal(t, DefaultSize, c.Len())
}
