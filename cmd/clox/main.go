// Command clox is the driver spec.md §4.5 describes: it chooses between
// REPL and file mode, owns file I/O and the exit-code mapping, and hands
// source text to pkg/vm's Interpret.
package main

import (
	"flag"
	"fmt"
	"os"
)

// Exit codes are part of the external contract, spec.md §6.
const (
	exitOK           = 0
	exitUsage        = 64
	exitCompileError = 65
	exitRuntimeError = 70
	exitIOError      = 74
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("clox", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	trace := fs.Bool("trace", false, "force-enable bytecode disassembly and stack tracing")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	rest := fs.Args()

	if len(rest) > 0 {
		switch rest[0] {
		case "examples":
			return runExamples(rest[1:])
		case "--help", "-h":
			printUsage()
			return exitOK
		}
	}

	cfg, err := loadConfig(*trace)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIOError
	}

	switch len(rest) {
	case 0:
		return runRepl(cfg)
	case 1:
		return runFile(rest[0], cfg)
	default:
		printUsage()
		return exitUsage
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: clox [--trace] [path]")
	fmt.Fprintln(os.Stderr, "       clox examples fetch")
	fmt.Fprintln(os.Stderr, "       clox examples list")
	fmt.Fprintln(os.Stderr, "       clox examples run <name>")
}
