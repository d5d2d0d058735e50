package cache

import (
	"fmt"
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, expr string) *regexp2.Regexp {
	t.Helper()
	re, err := regexp2.Compile(expr, regexp2.IgnoreCase)
	require.NoError(t, err)
	return re
}

func TestPatterns_GetAdd(t *testing.T) {
	c, err := New(true, 8)
	require.NoError(t, err)

	key := BuildKey([]string{"ruim", "feio"}, "timeout=0")

	_, ok := c.Get(key)
	assert.False(t, ok, "expected miss before add")

	re := mustCompile(t, `\b(?:ruim|feio)\b`)
	c.Add(key, re)

	got, ok := c.Get(key)
	require.True(t, ok, "expected hit after add")
	assert.Same(t, re, got)

	stats := c.GetStats()
	assert.Equal(t, 1, stats.Entries)
	assert.EqualValues(t, 1, stats.Hits)
	assert.EqualValues(t, 1, stats.Misses)
	assert.Equal(t, 8, stats.Size)
}

func TestPatterns_Eviction(t *testing.T) {
	c, err := New(true, 2)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		c.Add(fmt.Sprintf("k%d", i), mustCompile(t, fmt.Sprintf("w%d", i)))
	}

	_, ok := c.Get("k0")
	assert.False(t, ok, "oldest entry should have been evicted")
	_, ok = c.Get("k2")
	assert.True(t, ok)
	assert.Equal(t, 2, c.GetStats().Entries)
}

func TestPatterns_DefaultSize(t *testing.T) {
	c, err := New(true, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, c.GetStats().Size)
}

func TestPatterns_Disabled(t *testing.T) {
	c, err := New(false, 10)
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	c.Add("key", mustCompile(t, "x"))
	_, ok := c.Get("key")
	assert.False(t, ok, "Get on disabled cache should always miss")
	c.Clear()

	stats := c.GetStats()
	assert.False(t, stats.Enabled)
	assert.Zero(t, stats.Entries)
}

func TestPatterns_Clear(t *testing.T) {
	c, err := New(true, 8)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		c.Add(string(rune('a'+i)), mustCompile(t, "x"))
	}
	c.Get("a")
	require.Equal(t, 5, c.GetStats().Entries)

	c.Clear()
	stats := c.GetStats()
	assert.Zero(t, stats.Entries)
	assert.Zero(t, stats.Hits)
}

func TestHashKey(t *testing.T) {
	h1 := HashKey("test")
	h2 := HashKey("test")
	h3 := HashKey("other")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64)
}

func TestBuildKey(t *testing.T) {
	k1 := BuildKey([]string{"a", "b"}, "opts")
	k2 := BuildKey([]string{"a", "b"}, "opts")
	k3 := BuildKey([]string{"b", "a"}, "opts")
	k4 := BuildKey([]string{"a", "b"}, "other")
	k5 := BuildKey([]string{"ab"}, "opts")

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3, "word order is part of the key")
	assert.NotEqual(t, k1, k4, "options are part of the key")
	assert.NotEqual(t, k1, k5, "joined words must not collide")
}
