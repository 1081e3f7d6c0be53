// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Command skippy is the skippy interpreter CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"nickandperla.net/skippy/internal/config"
	"nickandperla.net/skippy/pkg/skippy"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("skippy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		evalStr     = fs.String("e", "", "Evaluate one line of skippy")
		file        = fs.String("f", "", "Evaluate a skippy file line by line")
		configPath  = fs.String("config", "", "YAML config file (default $"+config.EnvVar+")")
		dbPath      = fs.String("db", "", "SQLite database path")
		persistMode = fs.String("persist-mode", "never", "Persistence mode: never or always")
		history     = fs.String("history", "", "Line editor history file")
		stdlibFlag  = fs.Bool("stdlib", false, "Load the standard prelude (nil, true, false, pi, e)")
		stats       = fs.Bool("stats", false, "Print the syntax tree and its counts before each result")
		debug       = fs.Bool("debug", false, "Debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *evalStr != "" && *file != "" {
		fmt.Fprintln(stderr, "Error: -e and -f cannot be used together")
		return 1
	}

	cfg, err := config.Load(config.Path(*configPath))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Flags given on the command line win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "db":
			cfg.DB = *dbPath
		case "persist-mode":
			cfg.PersistMode = *persistMode
		case "history":
			cfg.HistoryFile = *history
		case "stdlib":
			cfg.Stdlib = *stdlibFlag
		case "stats":
			cfg.Stats = *stats
		case "debug":
			cfg.Debug = *debug
		}
	})

	opts, err := runtimeOptions(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	rt, err := skippy.New(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer rt.Close()

	r := &repl{rt: rt, out: stdout, prompt: cfg.Prompt, stats: cfg.Stats}

	switch {
	case *file != "":
		if err := rt.LoadFile(*file, stdout); err != nil {
			fmt.Fprintf(stderr, "Error loading file: %v\n", err)
			return 1
		}
	case *evalStr != "":
		if err := r.evalLine(*evalStr); err != nil {
			return 1
		}
	default:
		r.banner()
		if f, ok := stdin.(*os.File); ok && isTerminal(f) {
			if err := r.runLiner(cfg.HistoryFile); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 1
			}
			return 0
		}
		if err := r.runBasic(stdin); err != nil {
			fmt.Fprintf(stderr, "Error reading input: %v\n", err)
			return 1
		}
	}
	return 0
}

func runtimeOptions(cfg config.Config, stderr io.Writer) ([]skippy.Option, error) {
	mode, ok := skippy.ParsePersistMode(cfg.PersistMode)
	if !ok {
		return nil, fmt.Errorf("unknown persist mode: %s (use never or always)", cfg.PersistMode)
	}

	opts := []skippy.Option{skippy.WithPersistMode(mode)}
	if cfg.Debug {
		opts = append(opts, skippy.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	if cfg.DB != "" {
		opts = append(opts, skippy.WithSQLiteStore(cfg.DB))
	} else if mode == skippy.PersistAlways {
		return nil, fmt.Errorf("persist mode always needs a database (-db)")
	}
	// A prelude file replaces the standard prelude.
	switch {
	case cfg.PreludeFile != "":
		src, err := os.ReadFile(cfg.PreludeFile)
		if err != nil {
			return nil, fmt.Errorf("read prelude: %w", err)
		}
		opts = append(opts, skippy.WithPrelude(string(src)))
	case cfg.Stdlib:
		opts = append(opts, skippy.WithStdlib())
	}
	return opts, nil
}
