package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jcorbin/goforth/internal/fileinput"
)

const (
	defaultPrompt   = "> "
	continuePrompt  = "... "
	acknowledgement = " OK"
	historyFileName = ".goforth_history"
	byeWord         = "bye"
)

// prompter is the part of *liner.State used by the read loop.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type repl struct {
	e      *Engine
	in     prompter
	out    io.Writer
	prompt string
}

// runREPL reads submissions until EOF or "bye", acknowledging each one that
// succeeds; failures reach the engine's error reporter.
func runREPL(ctx context.Context, e *Engine, cfg REPLConfig, out io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.History
	if histPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			histPath = filepath.Join(home, historyFileName)
		}
	}
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	r := repl{e: e, in: ln, out: out, prompt: cfg.Prompt}
	return r.run(ctx)
}

func (r repl) run(ctx context.Context) error {
	prompt := r.prompt
	if prompt == "" {
		prompt = defaultPrompt
	}
	for {
		src, err := r.read(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(r.out)
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(src) {
		case "":
			continue
		case byeWord:
			return nil
		}
		r.in.AppendHistory(src)

		if r.e.ProcessContext(ctx, src) {
			fmt.Fprintln(r.out, acknowledgement)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// read accumulates lines while each ends in a "\" token.
func (r repl) read(prompt string) (string, error) {
	var sb strings.Builder
	for {
		line, err := r.in.Prompt(prompt)
		if err != nil {
			return "", err
		}
		body, more := fileinput.Continued(line)
		sb.WriteString(body)
		if !more {
			return sb.String(), nil
		}
		sb.WriteByte(' ')
		prompt = continuePrompt
	}
}

// runBatch processes each logical line of in, reporting failures with their
// location; it stops early only if ctx is done.
func runBatch(ctx context.Context, e *Engine, in io.Reader, reportf func(mess string, args ...interface{})) error {
	input := fileinput.Input{Queue: []io.Reader{in}}
	for {
		line, err := input.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := e.Exec(ctx, line.Text); err != nil {
			if ctx.Err() != nil {
				return err
			}
			reportf("%v: %v", line.Location, err)
		}
	}
}
