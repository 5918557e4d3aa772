package main

import "testing"

func TestExamplesNoSubcommandIsUsageError(t *testing.T) {
	withTempDir(t)
	code, _, stderr := captureCLI(t, []string{"examples"})
	if code != exitUsage {
		t.Fatalf("expected exit 64, got %d", code)
	}
	if stderr == "" {
		t.Fatal("expected usage message on stderr")
	}
}

func TestExamplesFetchWithoutRemoteIsNotFatal(t *testing.T) {
	withTempDir(t)
	code, _, stderr := captureCLI(t, []string{"examples", "fetch"})
	if code != exitOK {
		t.Fatalf("expected exit 0 when no remote is configured, got %d (stderr=%q)", code, stderr)
	}
}

func TestExamplesRunMissingNameIsUsageError(t *testing.T) {
	withTempDir(t)
	code, _, _ := captureCLI(t, []string{"examples", "run"})
	if code != exitUsage {
		t.Fatalf("expected exit 64, got %d", code)
	}
}
