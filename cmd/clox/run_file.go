package main

import (
	"fmt"
	"os"

	"github.com/able-lang/clox-go/pkg/config"
)

func runFile(path string, cfg *config.Config) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIOError
	}

	v := newVM(cfg)
	return interpretAndReport(v, string(source))
}
