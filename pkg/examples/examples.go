// Package examples maintains a local cache of example expression
// snippets fetched from a git remote, for the `clox examples` CLI
// subcommand. This is ambient CLI sugar, not part of the language core;
// it is grounded on the teacher's git-backed dependency fetcher
// (cmd/able/deps_fetchers.go's ensureGitCheckout / registryFetcher).
package examples

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// ErrNoRemote is returned by Fetch when no remote has been configured.
// Fetching an example pack is optional sugar, so this is reported back
// to the caller to print rather than treated as a host error.
var ErrNoRemote = errors.New("examples: no remote configured")

// Store manages a single local clone of a git repository of *.lox
// snippet files.
type Store struct {
	CacheDir  string
	RemoteURL string
}

func (s *Store) repoDir() string {
	return filepath.Join(s.CacheDir, "repo")
}

// Fetch clones RemoteURL into the cache directory if absent, or pulls
// the latest commit on the checked-out branch if already cloned.
func (s *Store) Fetch() error {
	if strings.TrimSpace(s.RemoteURL) == "" {
		return ErrNoRemote
	}
	if err := os.MkdirAll(s.CacheDir, 0o755); err != nil {
		return err
	}

	dir := s.repoDir()
	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		_, cloneErr := git.PlainClone(dir, false, &git.CloneOptions{
			URL: s.RemoteURL,
		})
		if cloneErr != nil {
			return fmt.Errorf("examples: clone %s: %w", s.RemoteURL, cloneErr)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("examples: open cache %s: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("examples: worktree: %w", err)
	}
	if err := worktree.Pull(&git.PullOptions{RemoteName: "origin"}); err != nil &&
		!errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("examples: pull: %w", err)
	}
	return nil
}

// List returns the names of every cached *.lox snippet, sorted.
func (s *Store) List() ([]string, error) {
	dir := s.repoDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("examples: cache empty, run `clox examples fetch` first")
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".lox") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the source text of one cached snippet by file name.
func (s *Store) Read(name string) (string, error) {
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return "", fmt.Errorf("examples: invalid snippet name %q", name)
	}
	data, err := os.ReadFile(filepath.Join(s.repoDir(), name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
