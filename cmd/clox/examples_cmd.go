package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/able-lang/clox-go/pkg/examples"
)

func runExamples(args []string) int {
	cfg, err := loadConfig(false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIOError
	}

	cacheDir, err := examplesCacheDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIOError
	}
	store := &examples.Store{CacheDir: cacheDir, RemoteURL: cfg.ExamplesRepo}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: clox examples fetch|list|run <name>")
		return exitUsage
	}

	switch args[0] {
	case "fetch":
		if err := store.Fetch(); err != nil {
			if errors.Is(err, examples.ErrNoRemote) {
				fmt.Fprintln(os.Stderr, "no examplesRepo configured in .cloxrc.yaml")
				return exitOK
			}
			fmt.Fprintln(os.Stderr, err)
			return exitIOError
		}
		return exitOK
	case "list":
		names, err := store.List()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitIOError
		}
		for _, n := range names {
			fmt.Fprintln(os.Stdout, n)
		}
		return exitOK
	case "run":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: clox examples run <name>")
			return exitUsage
		}
		source, err := store.Read(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitIOError
		}
		v := newVM(cfg)
		return interpretAndReport(v, source)
	default:
		fmt.Fprintln(os.Stderr, "Usage: clox examples fetch|list|run <name>")
		return exitUsage
	}
}

func examplesCacheDir() (string, error) {
	cacheRoot, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheRoot, "clox", "examples"), nil
}
