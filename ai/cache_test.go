package ai

import (
	"fmt"
	"strings"
	"testing"
)

func TestCacheKeyUsesFixedPrefix(t *testing.T) {
	c := newResponseCache()

	long := strings.Repeat("a", cacheKeyLength) + "tail one"
	c.put(long, "answer")

	// a different prompt with the same prefix hits the same entry
	other := strings.Repeat("a", cacheKeyLength) + "tail two"
	text, ok := c.get(other)
	if !ok {
		t.Fatal("expected a cache hit for a shared prefix")
	}
	if text != "answer" {
		t.Fatalf("unexpected cached text: %s", text)
	}
}

func TestCacheMissOnDifferentPrompt(t *testing.T) {
	c := newResponseCache()
	c.put("what is go", "a language")

	if _, ok := c.get("what is rust"); ok {
		t.Fatal("expected a cache miss")
	}
}

func TestCacheEvictsOldestBeyondLimit(t *testing.T) {
	c := newResponseCache()

	for i := 0; i <= cacheMaxEntries; i++ {
		c.put(fmt.Sprintf("prompt-%03d", i), "text")
	}

	if c.len() != cacheMaxEntries {
		t.Fatalf("cache size = %d, want %d", c.len(), cacheMaxEntries)
	}

	// insertion-order eviction: the first entry is gone, the second is not
	if _, ok := c.get("prompt-000"); ok {
		t.Fatal("oldest entry should have been evicted")
	}
	if _, ok := c.get("prompt-001"); !ok {
		t.Fatal("second entry should still be cached")
	}
}

func TestCacheOverwriteDoesNotGrowOrder(t *testing.T) {
	c := newResponseCache()

	c.put("prompt", "first")
	c.put("prompt", "second")

	if c.len() != 1 {
		t.Fatalf("cache size = %d, want 1", c.len())
	}

	text, _ := c.get("prompt")
	if text != "second" {
		t.Fatalf("expected the overwritten value, got %s", text)
	}
}
