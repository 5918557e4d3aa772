package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultHasStandardPrompt(t *testing.T) {
	cfg := Default()
	if cfg.Prompt != "> " {
		t.Fatalf("unexpected default prompt: %q", cfg.Prompt)
	}
	if cfg.Trace {
		t.Fatal("trace should default to off")
	}
}

func TestLoadFromCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	yaml := "trace: true\nprompt: \"clox> \"\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Trace {
		t.Fatal("expected trace: true to be read")
	}
	if cfg.Prompt != "clox> " {
		t.Fatalf("unexpected prompt: %q", cfg.Prompt)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load should not fail on missing file: %v", err)
	}
	if cfg.Prompt != "> " {
		t.Fatalf("expected default prompt, got %q", cfg.Prompt)
	}
}

func TestLoadMalformedFileIsError(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("trace: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error on malformed YAML")
	}
}
