package dataset

import (
	"os"
	"testing"
)

func TestLoadCacheHitOnUnchangedFile(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	c := NewLoadCache()
	first, err := c.Load(path)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := c.Load(path)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if first != second {
		t.Fatal("unchanged file should return the cached dataset")
	}
}

func TestLoadCacheReloadsOnContentChange(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	c := NewLoadCache()
	first, err := c.Load(path)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	extra := sampleCSV + "Belgium,2013,Developed,80.9,78,39000.0\n"
	if err := os.WriteFile(path, []byte(extra), 0o644); err != nil {
		t.Fatalf("rewrite csv: %v", err)
	}
	second, err := c.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if first == second {
		t.Fatal("changed file served from cache")
	}
	if second.Rows() != first.Rows()+1 {
		t.Fatalf("reloaded rows = %d, want %d", second.Rows(), first.Rows()+1)
	}
}

func TestLoadCacheInvalidate(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	c := NewLoadCache()
	first, err := c.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	c.Invalidate(path)
	second, err := c.Load(path)
	if err != nil {
		t.Fatalf("load after invalidate: %v", err)
	}
	if first == second {
		t.Fatal("invalidated entry still served")
	}
}
