package vrex

import "testing"

func TestPackageLevelMatchUsesCache(t *testing.T) {
	SetCacheOptions(DefaultCacheOptions())
	m, err := Match(`a+b`, "aaab")
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if m == nil || m.Text() != "aaab" {
		t.Fatalf("Match = %v, want \"aaab\"", m)
	}

	// Second call with the same pattern string should hit the cache and
	// return a functionally identical result.
	m2, err := Match(`a+b`, "aaab")
	if err != nil {
		t.Fatalf("Match error on second call: %v", err)
	}
	if m2 == nil || m2.Text() != m.Text() {
		t.Fatalf("second Match = %v, want %v", m2, m)
	}
}

func TestPackageLevelSearchAndFindAll(t *testing.T) {
	SetCacheOptions(DefaultCacheOptions())
	m, err := Search(`\d+`, "x42y")
	if err != nil || m == nil || m.Text() != "42" {
		t.Fatalf("Search = %v, %v, want \"42\"", m, err)
	}

	all, err := FindAll(`\d+`, "1 22 333")
	if err != nil {
		t.Fatalf("FindAll error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("FindAll returned %d matches, want 3", len(all))
	}
}

func TestCacheDoesNotMemoizeErrors(t *testing.T) {
	SetCacheOptions(DefaultCacheOptions())
	if _, err := Match(`a(b`, "ab"); err == nil {
		t.Fatal("expected a compile error")
	}
	if _, err := Match(`a(b`, "ab"); err == nil {
		t.Fatal("expected the same compile error on a repeated call")
	}
}

func TestCacheEvictsOldestBeyondMaxEntries(t *testing.T) {
	SetCacheOptions(CacheOptions{MaxEntries: 1})
	defer SetCacheOptions(DefaultCacheOptions())

	if _, err := Match(`a`, "a"); err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if _, err := Match(`b`, "b"); err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if len(patternCache.entries) != 1 {
		t.Fatalf("cache has %d entries, want 1", len(patternCache.entries))
	}
	if _, ok := patternCache.entries["b"]; !ok {
		t.Fatal("expected the most recently compiled pattern to remain cached")
	}
}
