// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"nickandperla.net/skippy/internal/ast"
	"nickandperla.net/skippy/pkg/skippy"
)

const version = "0.0.0.0.7"

type repl struct {
	rt     *skippy.Runtime
	out    io.Writer
	prompt string
	stats  bool
}

func (r *repl) banner() {
	fmt.Fprintf(r.out, "Skippy Version %s\n", version)
	fmt.Fprintln(r.out, "Press Ctrl+c to Exit")
	fmt.Fprintln(r.out)
}

// evalLine prints the result of one line, or its syntax diagnostic. The
// diagnostic is also returned.
func (r *repl) evalLine(line string) error {
	if r.stats {
		if root, err := r.rt.Parse(line); err == nil {
			printStats(r.out, root)
		}
	}
	result, err := r.rt.Eval(line)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return err
	}
	fmt.Fprintln(r.out, result)
	return nil
}

func printStats(w io.Writer, root *ast.Node) {
	ast.Fprint(w, root)
	fmt.Fprintf(w, "Number of children: %d\n", len(root.Children))
	fmt.Fprintf(w, "Number of nodes: %d\n", ast.CountNodes(root))
	fmt.Fprintf(w, "Number of leaves: %d\n", ast.CountLeaves(root))
}

// runBasic handles non-TTY input (piped input)
func (r *repl) runBasic(in io.Reader) error {
	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(r.out, r.prompt)
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			fmt.Fprintln(r.out)
			return err
		}
		if line == "" && err == io.EOF {
			fmt.Fprintln(r.out)
			return nil
		}
		r.evalLine(strings.TrimRight(line, "\r\n"))
		if err == io.EOF {
			fmt.Fprint(r.out, r.prompt)
			fmt.Fprintln(r.out)
			return nil
		}
	}
}

// runLiner handles TTY input with line editing and history.
func (r *repl) runLiner(historyFile string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyFile); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(r.prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			return nil
		}
		if err != nil {
			return err
		}
		if line != "" {
			ln.AppendHistory(line)
		}
		r.evalLine(line)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
