package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if _, ok, _ := c.Get(ctx, "missing"); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	if err := c.Set(ctx, "k", []byte("v1"), time.Minute); err != nil {
		t.Fatal(err)
	}
	v, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(v) != "v1" {
		t.Fatalf("got %q ok=%v err=%v", v, ok, err)
	}

	// Set replaces, never merges.
	_ = c.Set(ctx, "k", []byte("v2"), time.Minute)
	v, _, _ = c.Get(ctx, "k")
	if string(v) != "v2" {
		t.Errorf("expected replacement, got %q", v)
	}
	if c.Len() != 1 {
		t.Errorf("expected one entry per key, got %d", c.Len())
	}
}

func TestMemoryCacheTTLExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	current := base
	c.now = func() time.Time { return current }

	_ = c.Set(ctx, "k", []byte("v"), 5*time.Minute)

	current = base.Add(4 * time.Minute)
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Fatal("entry should be fresh within TTL")
	}

	current = base.Add(5*time.Minute + time.Second)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatal("entry should be stale after TTL")
	}

	// Reads never mutate: the stale entry is still present until replaced.
	if c.Len() != 1 {
		t.Errorf("stale entry should remain until overwritten, len=%d", c.Len())
	}
}

func TestMemoryCacheNoTTL(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	_ = c.Set(ctx, "k", []byte("v"), 0)
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Fatal("zero TTL means no expiration")
	}
}

func TestMemoryCacheDeletePrefix(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	_ = c.Set(ctx, "countries:a", []byte("1"), 0)
	_ = c.Set(ctx, "countries:b", []byte("2"), 0)
	_ = c.Set(ctx, "regions:a", []byte("3"), 0)

	if err := c.DeletePrefix(ctx, "countries:"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "countries:a"); ok {
		t.Error("prefixed key should be gone")
	}
	if _, ok, _ := c.Get(ctx, "regions:a"); !ok {
		t.Error("other prefixes must survive")
	}
}

func TestMemoryCacheClear(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)
	if err := c.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 0 {
		t.Errorf("clear should flush everything, len=%d", c.Len())
	}
}
