package examples

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFetchWithoutRemoteReturnsErrNoRemote(t *testing.T) {
	s := &Store{CacheDir: t.TempDir()}
	if err := s.Fetch(); err != ErrNoRemote {
		t.Fatalf("expected ErrNoRemote, got %v", err)
	}
}

func TestListAndReadFromCache(t *testing.T) {
	cacheDir := t.TempDir()
	s := &Store{CacheDir: cacheDir}

	repoDir := s.repoDir()
	if err := os.MkdirAll(repoDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(repoDir, "b.lox"), []byte("2 + 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(repoDir, "a.lox"), []byte("1 + 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(repoDir, "readme.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 2 || names[0] != "a.lox" || names[1] != "b.lox" {
		t.Fatalf("unexpected names: %v", names)
	}

	source, err := s.Read("a.lox")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if source != "1 + 1" {
		t.Fatalf("unexpected source: %q", source)
	}
}

func TestReadRejectsPathTraversal(t *testing.T) {
	s := &Store{CacheDir: t.TempDir()}
	if _, err := s.Read("../secret"); err == nil {
		t.Fatal("expected error for path traversal attempt")
	}
}

func TestListWithoutFetchIsAnError(t *testing.T) {
	s := &Store{CacheDir: t.TempDir()}
	if _, err := s.List(); err == nil {
		t.Fatal("expected error when cache directory is empty")
	}
}
