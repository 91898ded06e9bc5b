package websearch

import (
	"fmt"
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCache(time.Minute, 10)
	want := []Result{{Title: "t", Link: "l", Snippet: "s"}}
	c.Set("bearing", want)

	got, ok := c.Get("bearing")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].Title != "t" {
		t.Errorf("unexpected cached results: %+v", got)
	}
	if _, ok := c.Get("unknown"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	c := NewCache(10*time.Millisecond, 10)
	c.Set("bearing", []Result{{Title: "t"}})

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("bearing"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestCache_ReplacementDoesNotEvict(t *testing.T) {
	c := NewCache(time.Minute, 3)
	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("key-%d", i), []Result{{Title: "t"}})
	}

	// Overwriting an existing key at capacity is a replacement, not growth.
	c.Set("key-1", []Result{{Title: "updated"}})

	for _, key := range []string{"key-0", "key-1", "key-2"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("expected %s to survive a replacement at capacity", key)
		}
	}
	got, _ := c.Get("key-1")
	if len(got) != 1 || got[0].Title != "updated" {
		t.Errorf("expected replacement to take effect, got %+v", got)
	}
}

func TestCache_EvictsLeastAccessed(t *testing.T) {
	c := NewCache(time.Minute, 3)
	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("key-%d", i), []Result{{Title: "t"}})
	}
	// Touch everything except key-1 so it becomes the eviction victim.
	c.Get("key-0")
	c.Get("key-2")

	c.Set("key-3", []Result{{Title: "t"}})

	if _, ok := c.Get("key-1"); ok {
		t.Error("expected least-accessed entry to be evicted")
	}
	for _, key := range []string{"key-0", "key-2", "key-3"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("expected %s to survive eviction", key)
		}
	}
}
