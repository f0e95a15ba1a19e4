package main

import (
	"fmt"
	"strings"

	"github.com/jcorbin/goforth/internal/cell"
	"github.com/jcorbin/goforth/internal/parse"
	"github.com/jcorbin/goforth/internal/stack"
)

// Words with syntax of their own, handled directly by plain evaluation.
const (
	wordDefine   = ":"
	wordRedefine = "::"
	wordEnd      = ";"
	wordVariable = "variable"
	wordValue    = "value"
	wordConstant = "constant"
	wordTo       = "to"
)

type wordFunc func(e *Engine) error

// builtins maps reserved words to their implementation; math words are
// dispatched separately by mode.
var builtins map[string]wordFunc

// reservedWords lists every word that can not be declared or defined, in the
// order shown by help.
var reservedWords []string

func init() {
	type entry struct {
		name string
		word wordFunc
	}
	noop := func(e *Engine) error { return nil }
	mode := func(m numMode) wordFunc {
		return func(e *Engine) error {
			e.mode = m
			return nil
		}
	}
	stackWord := func(op func(s *stack.Stack) error) wordFunc {
		return func(e *Engine) error { return op(&e.stack) }
	}

	entries := []entry{
		{"viewdefinitions", (*Engine).viewDefinitions},
		{"viewobjects", (*Engine).viewObjects},
		{"help", (*Engine).help},

		{wordVariable, nil},
		{wordValue, nil},
		{wordConstant, nil},
		{wordTo, nil},
		{"!", (*Engine).store},
		{"@", (*Engine).fetch},
		{"cell", (*Engine).pushCellWidth},
		{"here", (*Engine).here},
		{"allot", (*Engine).allot},

		{"decimal", mode(modeDecimal)},
		{"hex", mode(modeHex)},
		{"fractional", mode(modeFraction)},
		{"char", mode(modeChar)},

		{"dup", stackWord((*stack.Stack).Dup)},
		{"drop", stackWord((*stack.Stack).Drop)},
		{"swap", stackWord((*stack.Stack).Swap)},
		{"over", stackWord((*stack.Stack).Over)},
		{"rot", stackWord((*stack.Stack).Rot)},
		{"tuck", stackWord((*stack.Stack).Tuck)},
		{"pick", stackWord((*stack.Stack).Pick)},
		{"roll", stackWord((*stack.Stack).Roll)},

		{".", (*Engine).dot},
		{"cr", (*Engine).cr},
	}
	for _, kw := range parse.Keywords {
		// structured constructs arrive as parsed nodes; only their stray
		// terminators reach plain evaluation
		entries = append(entries, entry{kw, noop})
	}

	builtins = make(map[string]wordFunc, len(entries))
	reservedWords = make([]string, 0, len(entries)+len(stack.Ops)+3)
	reservedWords = append(reservedWords, wordDefine, wordRedefine, wordEnd)
	for _, ent := range entries {
		if ent.word != nil {
			builtins[ent.name] = ent.word
		}
		reservedWords = append(reservedWords, ent.name)
	}
	for _, op := range stack.Ops {
		reservedWords = append(reservedWords, string(op))
	}
}

// isWord reports whether name is usable as a reserved word inside a
// definition body.
func isWord(name string) bool {
	switch name {
	case wordDefine, wordRedefine, wordEnd:
		return false
	case wordVariable, wordValue, wordConstant, wordTo:
		return true
	}
	_, ok := builtins[name]
	return ok || stack.IsOp(name)
}

// isReserved reports whether name may not be declared or defined.
func isReserved(name string) bool {
	switch name {
	case wordDefine, wordRedefine, wordEnd:
		return true
	}
	return isWord(name)
}

func (e *Engine) store() error {
	addr, err := e.stack.PopInt()
	if err != nil {
		return err
	}
	content, err := e.stack.Pop()
	if err != nil {
		return err
	}
	return e.arena.Stor(int(addr), content)
}

func (e *Engine) fetch() error {
	addr, err := e.stack.PopInt()
	if err != nil {
		return err
	}
	content, err := e.arena.Load(int(addr))
	if err != nil {
		return err
	}
	return e.stack.Push(content)
}

func (e *Engine) pushCellWidth() error { return e.stack.PushInt(cell.Width) }

func (e *Engine) here() error { return e.stack.PushInt(int32(e.arena.Here())) }

func (e *Engine) allot() error {
	n, err := e.stack.PopInt()
	if err != nil {
		return err
	}
	return e.arena.Allot(int(n))
}

func (e *Engine) dot() error {
	c, err := e.stack.Pop()
	if err != nil {
		return err
	}
	if err := writeCell(e.out, e.mode, c); err != nil {
		return err
	}
	return e.writeString(" ")
}

func (e *Engine) cr() error { return e.writeString("\n") }

func (e *Engine) viewDefinitions() error {
	return engineDumper{e: e, out: e.out}.dumpDefinitions()
}

func (e *Engine) viewObjects() error {
	return engineDumper{e: e, out: e.out}.dumpObjects()
}

func (e *Engine) help() error {
	var sb strings.Builder
	sb.WriteByte('\n')
	for _, name := range reservedWords {
		sb.WriteString(name)
		sb.WriteByte('\n')
	}
	return e.writeString(sb.String())
}

func (e *Engine) stackString() string {
	cells := e.stack.Cells()
	parts := make([]string, len(cells))
	for i, c := range cells {
		var sb strings.Builder
		writeCell(&sb, e.mode, c)
		parts[i] = sb.String()
	}
	return fmt.Sprintf("[%v]", strings.Join(parts, " "))
}
