package cache_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uabench/pkg/cache"
)

func TestLRUCache(t *testing.T) {
	t.Parallel()

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRUCache[string, int](2)
		assert.False(t, c.Put("a", 1))
		assert.False(t, c.Put("b", 2))

		v, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, v)

		_, ok = c.Get("missing")
		assert.False(t, ok)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRUCache[string, int](2)
		c.Put("a", 1)
		c.Put("b", 2)
		c.Get("a")
		assert.True(t, c.Put("c", 3))

		_, ok := c.Get("b")
		assert.False(t, ok)
		_, ok = c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("update does not evict", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRUCache[string, int](1)
		c.Put("a", 1)
		assert.False(t, c.Put("a", 2))
		v, _ := c.Get("a")
		assert.Equal(t, 2, v)
	})

	t.Run("purge", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRUCache[int, int](4)
		c.Put(1, 1)
		c.Put(2, 2)
		c.Purge()
		assert.Zero(t, c.Len())
	})

	t.Run("invalid capacity", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { cache.NewLRUCache[int, int](0) })
	})
}

func TestLRUCacheGetOrLoad(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, int](8)
	calls := 0
	load := func(k string) (int, error) {
		calls++
		return len(k), nil
	}

	v, err := c.GetOrLoad("abc", load)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = c.GetOrLoad("abc", load)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	_, err = c.GetOrLoad("fail", func(string) (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	_, ok := c.Get("fail")
	assert.False(t, ok)
}

func TestLRUCacheConcurrent(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[int, int](16)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				c.Put(i*100+j, j)
				c.Get(j)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, c.Len())
}
