package main

import (
	"context"
	"io"

	"github.com/jcorbin/goforth/internal/logio"
	"github.com/jcorbin/goforth/internal/mem"
	"github.com/jcorbin/goforth/internal/panicerr"
	"github.com/jcorbin/goforth/internal/parse"
)

// New creates an Engine in decimal mode with an empty stack, dictionary,
// object table and arena.
func New(opts ...EngineOption) *Engine {
	var e Engine
	EngineOptions(defaultOptions, EngineOptions(opts...)).apply(&e)
	e.arena = mem.New(e.memCells)
	return &e
}

// Process runs src to completion, returning false after handing any failure
// to the error reporter.
func (e *Engine) Process(src string) bool {
	return e.ProcessContext(context.Background(), src)
}

// ProcessContext is like Process, but stops between commands once ctx is
// done.
func (e *Engine) ProcessContext(ctx context.Context, src string) bool {
	err := e.Exec(ctx, src)
	if err == nil {
		return true
	}
	if e.reportError != nil {
		e.reportError(err.Error())
	}
	return false
}

// Exec tokenizes, parses and evaluates src, returning the first failure.
// Effects applied before a failure are kept; output is flushed either way.
func (e *Engine) Exec(ctx context.Context, src string) error {
	err := panicerr.Recover("exec", func() error {
		cmds, err := parse.Source(src)
		if err != nil {
			return err
		}
		return e.evaluate(ctx, cmds, 0)
	})
	if ferr := e.out.Flush(); err == nil {
		err = ferr
	}
	if err != nil && e.logfn != nil {
		e.logf("!", "%v", err)
		lw := &logio.Writer{Logf: e.logfn}
		engineDumper{e: e, out: lw}.dump()
		lw.Close()
	}
	return err
}

func WithOutput(w io.Writer) EngineOption                        { return withOutput(w) }
func WithTee(w io.Writer) EngineOption                           { return withTee(w) }
func WithStackLimit(n int) EngineOption                          { return withStackLimit(n) }
func WithMemoryCells(n int) EngineOption                         { return withMemoryCells(n) }
func WithRecursionLimit(depth int) EngineOption                  { return withRecursionLimit(depth) }
func WithConfig(cfg Config) EngineOption                         { return configOption(cfg) }
func WithErrorReporter(report func(message string)) EngineOption { return withErrorReporter(report) }

func WithLogf(logfn func(mess string, args ...interface{})) EngineOption { return withLogfn(logfn) }
