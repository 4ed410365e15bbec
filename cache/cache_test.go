package cache

import (
	"fmt"
	"testing"

	"github.com/sowtrack/seedscrape/models"
)

func TestCacheGetSet(t *testing.T) {
	c := New(10)
	key := Key("https://www.johnnyseeds.com/provider-bean-seed-10.html")

	if _, ok := c.Get(key, 60000); ok {
		t.Fatal("hit on empty cache")
	}

	out := &models.ScrapeOutcome{PlantName: "Bush Beans", ScrapeStatus: models.StatusSuccess}
	c.Set(key, out)

	got, ok := c.Get(key, 60000)
	if !ok {
		t.Fatal("miss after Set")
	}
	if got.PlantName != "Bush Beans" {
		t.Errorf("plant = %q", got.PlantName)
	}
}

func TestCacheMaxAgeZeroSkipsLookup(t *testing.T) {
	c := New(10)
	key := Key("https://example.com/page")
	c.Set(key, &models.ScrapeOutcome{})

	if _, ok := c.Get(key, 0); ok {
		t.Error("maxAge 0 should bypass the cache")
	}
}

func TestCacheEvictsAtCapacity(t *testing.T) {
	c := New(2)
	for i := 0; i < 5; i++ {
		c.Set(Key(fmt.Sprintf("https://example.com/%d", i)), &models.ScrapeOutcome{})
	}
	c.mu.RLock()
	n := len(c.store)
	c.mu.RUnlock()
	if n > 2 {
		t.Errorf("store holds %d entries, capacity 2", n)
	}
}

func TestKeyIsStable(t *testing.T) {
	a := Key("https://example.com/x")
	b := Key("https://example.com/x")
	if a != b {
		t.Error("same URL produced different keys")
	}
	if a == Key("https://example.com/y") {
		t.Error("different URLs produced the same key")
	}
}
