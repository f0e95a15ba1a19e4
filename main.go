package main

import (
	"context"
	"flag"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/jcorbin/goforth/internal/logio"
)

func main() {
	ctx := context.Background()

	var (
		configPath string
		timeout    time.Duration
		trace      bool
		noPrelude  bool
	)
	flag.StringVar(&configPath, "config", "", "load configuration from this file instead of searching for "+ConfigFileName)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&noPrelude, "no-prelude", false, "skip the builtin prelude")
	flag.Parse()

	log := logio.NewLogger(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	var cfg Config
	var err error
	if configPath != "" {
		cfg, err = LoadConfig(configPath)
	} else {
		cfg, err = FindConfig(".")
	}
	if err != nil {
		log.ErrorIf(err)
		return
	}

	opts := []EngineOption{
		WithOutput(os.Stdout),
		WithConfig(cfg),
		WithErrorReporter(func(message string) { log.Errorf("%s", message) }),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	e := New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var srcs []source
	if !noPrelude && !cfg.Prelude.NoBuiltin {
		prelude, err := preludeSources()
		if err != nil {
			log.ErrorIf(err)
			return
		}
		srcs = append(srcs, prelude...)
	}
	files, err := readSources(ctx, append(cfg.Prelude.Files, flag.Args()...))
	if err != nil {
		log.ErrorIf(err)
		return
	}
	srcs = append(srcs, files...)
	for _, err := range e.load(ctx, srcs) {
		log.ErrorIf(err)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		err = runREPL(ctx, e, cfg.REPL, os.Stdout)
	} else {
		err = runBatch(ctx, e, os.Stdin, log.Errorf)
	}
	log.ErrorIf(err)
}
