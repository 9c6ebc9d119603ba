package ai

import "sync"

const (
	// cache key is a fixed-length prefix of the prompt
	cacheKeyLength = 100
	// oldest entry is evicted beyond this size (insertion order, not LRU)
	cacheMaxEntries = 100
)

// responseCache is a bounded prompt-to-response cache. It is a pure
// performance optimization: concurrent misses for the same key may both
// reach the provider, the second write simply overwrites the first.
type responseCache struct {
	mu      sync.RWMutex
	entries map[string]string
	order   []string // insertion order of keys for eviction
}

func newResponseCache() *responseCache {
	return &responseCache{
		entries: make(map[string]string),
	}
}

func cacheKey(prompt string) string {
	if len(prompt) > cacheKeyLength {
		return prompt[:cacheKeyLength]
	}
	return prompt
}

func (c *responseCache) get(prompt string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	text, ok := c.entries[cacheKey(prompt)]
	return text, ok
}

func (c *responseCache) put(prompt string, text string) {
	key := cacheKey(prompt)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = text

	for len(c.order) > cacheMaxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

func (c *responseCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
