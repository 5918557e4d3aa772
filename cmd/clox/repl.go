package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/able-lang/clox-go/pkg/config"
)

// replLineMax matches the reference's 1024-byte stack buffer (spec.md
// §4.5, §6); a line longer than this is truncated rather than causing an
// allocation failure, since Go has no analogous fixed-buffer hazard.
const replLineMax = 1023

// runRepl reads lines from stdin, printing the given prompt before each,
// until EOF (Ctrl-D). Each line is interpreted independently: the VM
// instance persists across lines (spec.md §3's VM lifecycle), but a
// diagnostic on one line never terminates the REPL.
func runRepl(cfg *config.Config) int {
	v := newVM(cfg)

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprint(os.Stdout, cfg.Prompt)

		line, err := readLine(reader)
		if err == io.EOF {
			fmt.Fprintln(os.Stdout)
			return exitOK
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitIOError
		}

		interpretAndReport(v, line)
	}
}

// readLine reads one newline-terminated line, capped at replLineMax
// bytes. It returns io.EOF only when nothing at all was read.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	if len(line) > replLineMax {
		line = line[:replLineMax]
	}
	return line, nil
}
