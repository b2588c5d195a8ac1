package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindDataFileInDataDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := filepath.Join(root, "data", "LifeExpectancyData.csv")
	if err := os.WriteFile(want, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := FindDataFile("LifeExpectancyData.csv", root)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != want {
		t.Fatalf("found %q, want %q", got, want)
	}
}

func TestFindDataFileDeepWalk(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := filepath.Join(deep, "stats.csv")
	if err := os.WriteFile(want, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := FindDataFile("stats.csv", root)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != want {
		t.Fatalf("found %q, want %q", got, want)
	}
}

func TestFindDataFileMissing(t *testing.T) {
	if _, err := FindDataFile("nope.csv", t.TempDir()); err == nil {
		t.Fatal("expected error for absent file")
	}
}
