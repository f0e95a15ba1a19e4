package main

import (
	"io"

	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/jcorbin/goforth/internal/mem"
	"github.com/jcorbin/goforth/internal/stack"
)

// EngineOption configures an Engine under New.
type EngineOption interface{ apply(e *Engine) }

var defaultOptions = EngineOptions(
	withOutput(io.Discard),
	withStackLimit(stack.DefaultLimit),
	withMemoryCells(mem.DefaultCells),
	withRecursionLimit(DefaultRecursionLimit),
)

// EngineOptions combines any number of options into one, skipping nils.
func EngineOptions(opts ...EngineOption) EngineOption {
	var res engineOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case engineOptions:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type engineOptions []EngineOption

func (opts engineOptions) apply(e *Engine) {
	for _, opt := range opts {
		opt.apply(e)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(e *Engine) {
	e.logfn = logfn
}

type withErrorReporter func(message string)

func (report withErrorReporter) apply(e *Engine) {
	e.reportError = report
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type stackLimitOption int
type memoryCellsOption int
type recursionLimitOption int

func withOutput(w io.Writer) outputOption                { return outputOption{w} }
func withTee(w io.Writer) teeOption                      { return teeOption{w} }
func withStackLimit(n int) stackLimitOption              { return stackLimitOption(n) }
func withMemoryCells(n int) memoryCellsOption            { return memoryCellsOption(n) }
func withRecursionLimit(depth int) recursionLimitOption { return recursionLimitOption(depth) }

func (o outputOption) apply(e *Engine) {
	if e.out != nil {
		e.out.Flush()
	}
	e.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(e *Engine) {
	e.out = flushio.Tee(e.out, flushio.NewWriteFlusher(o.Writer))
}

func (n stackLimitOption) apply(e *Engine) {
	if n > 0 {
		e.stack.Limit = int(n)
	}
}

// memoryCellsOption only takes effect before the arena is created by New.
func (n memoryCellsOption) apply(e *Engine) {
	if n > 0 {
		e.memCells = int(n)
	}
}

func (depth recursionLimitOption) apply(e *Engine) {
	if depth > 0 {
		e.maxDepth = int(depth)
	}
}

type configOption Config

func (cfg configOption) apply(e *Engine) {
	EngineOptions(
		withStackLimit(cfg.Limits.Stack),
		withMemoryCells(cfg.Limits.Memory),
		withRecursionLimit(cfg.Limits.Recursion),
	).apply(e)
}
