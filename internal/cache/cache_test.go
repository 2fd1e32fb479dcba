package cache

import (
	"testing"
	"time"
)

func TestListingKey_Distinguishes(t *testing.T) {
	base := ListingKey("golang", "hot", 100)

	others := []string{
		ListingKey("golang", "top", 100),
		ListingKey("golang", "hot", 25),
		ListingKey("rust", "hot", 100),
	}
	for i, key := range others {
		if key == base {
			t.Errorf("key %d collides with base", i)
		}
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)
	key := ListingKey("golang", "hot", 100)

	if _, found := c.Get(key); found {
		t.Fatal("unexpected hit on empty cache")
	}

	if err := c.Set(key, []byte("payload"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, found := c.Get(key)
	if !found {
		t.Fatal("expected hit after set")
	}
	if string(got) != "payload" {
		t.Errorf("got %q, want payload", got)
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("hit after delete")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)
	key := ListingKey("golang", "hot", 100)

	if err := c.Set(key, []byte("stale"), -time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("expired entry served")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	key := ListingKey("golang", "hot", 100)

	// Seed only the disk layer.
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set(key, []byte("from-disk"), time.Minute); err != nil {
		t.Fatalf("seed disk: %v", err)
	}

	layered := NewLayeredCache(time.Minute, dir, time.Minute)
	got, found := layered.Get(key)
	if !found {
		t.Fatal("expected disk hit through the layered cache")
	}
	if string(got) != "from-disk" {
		t.Errorf("got %q", got)
	}

	// Now the memory layer should serve it too.
	if _, found := layered.memory.Get(key); !found {
		t.Error("disk hit was not promoted to memory")
	}
}
