package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := New[string, int](time.Minute, time.Minute)
	defer c.Close()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", 42)
	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 42, got)

	// Üzerine yazma
	c.Set("a", 7)
	got, _ = c.Get("a")
	assert.Equal(t, 7, got)
}

func TestCacheTTLExpiry(t *testing.T) {
	c := New[string, string](30*time.Millisecond, time.Minute)
	defer c.Close()

	c.Set("k", "v")
	_, ok := c.Get("k")
	assert.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New[string, int](time.Minute, time.Minute)
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)
	assert.Equal(t, 2, c.Len())

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCacheBackgroundEviction(t *testing.T) {
	c := New[string, int](10*time.Millisecond, 20*time.Millisecond)
	defer c.Close()

	c.Set("k", 1)
	time.Sleep(60 * time.Millisecond)
	// Temizlik goroutine'i süresi geçen kaydı map'ten fiziksel olarak atmalı
	assert.Equal(t, 0, c.Len())
}
