package cache

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the number of compiled patterns kept when no size is configured.
const DefaultSize = 128

// Patterns caches compiled patterns by key.
type Patterns struct {
	lru     *lru.Cache[string, *regexp2.Regexp]
	size    int
	enabled bool

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a new Patterns cache. A size of zero or less uses DefaultSize.
func New(enabled bool, size int) (*Patterns, error) {
	if !enabled {
		return &Patterns{enabled: false}, nil
	}
	if size <= 0 {
		size = DefaultSize
	}
	l, err := lru.New[string, *regexp2.Regexp](size)
	if err != nil {
		return nil, fmt.Errorf("creating pattern cache: %w", err)
	}
	return &Patterns{
		lru:     l,
		size:    size,
		enabled: true,
	}, nil
}

// Get retrieves a compiled pattern by key. Returns (nil, false) on miss.
func (c *Patterns) Get(key string) (*regexp2.Regexp, bool) {
	if !c.enabled {
		return nil, false
	}
	re, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return re, true
}

// Add stores a compiled pattern, evicting the least recently used entry when full.
func (c *Patterns) Add(key string, re *regexp2.Regexp) {
	if !c.enabled || re == nil {
		return
	}
	c.lru.Add(key, re)
}

// Clear removes all entries and resets the counters.
func (c *Patterns) Clear() {
	if !c.enabled {
		return
	}
	c.lru.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Stats returns cache statistics.
type Stats struct {
	Enabled bool  `json:"enabled"`
	Size    int   `json:"size"`
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// GetStats returns information about the cache.
func (c *Patterns) GetStats() Stats {
	stats := Stats{Enabled: c.enabled, Size: c.size}
	if !c.enabled {
		return stats
	}
	stats.Entries = c.lru.Len()
	stats.Hits = c.hits.Load()
	stats.Misses = c.misses.Load()
	return stats
}

// Enabled returns whether caching is enabled.
func (c *Patterns) Enabled() bool {
	return c.enabled
}

// HashKey creates a SHA-256 hash of the given key material.
func HashKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%x", h)
}

// BuildKey creates a cache key from an ordered word list and a description of
// the matching options. Words are joined with NUL, which cannot appear in a
// word read from a flag or word file.
func BuildKey(words []string, options string) string {
	return HashKey(options + "\x00" + strings.Join(words, "\x00"))
}
