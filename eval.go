package main

import (
	"context"
	"fmt"

	"github.com/jcorbin/goforth/internal/cell"
	"github.com/jcorbin/goforth/internal/command"
	"github.com/jcorbin/goforth/internal/stack"
)

// evaluate runs cmds in order at the given nesting depth.
func (e *Engine) evaluate(ctx context.Context, cmds []command.Command, depth int) error {
	if depth > e.maxDepth {
		return errRecursionLimit
	}
	if depth > 0 && e.logfn != nil {
		defer e.withLogPrefix("\t")()
	}

	for i := 0; i < len(cmds); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if e.logfn != nil {
			e.logf(">", "%v -- %v", cmds[i], e.stackString())
		}

		var err error
		switch cmd := cmds[i].(type) {
		case command.Plain:
			i, err = e.plain(ctx, cmds, i, depth)
		case command.Conditional:
			err = e.conditional(ctx, cmd, depth)
		case command.RepeatUntil:
			err = e.repeat(ctx, cmd, depth)
		case command.CountedLoop:
			err = e.loop(ctx, cmd, depth)
		default:
			err = fmt.Errorf("unsupported command %T", cmd)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// plain evaluates the token at cmds[i], returning the index of the last
// command it consumed.
func (e *Engine) plain(ctx context.Context, cmds []command.Command, i, depth int) (int, error) {
	name := cmds[i].(command.Plain).Name

	switch name {
	case wordDefine:
		return e.define(cmds, i, false)
	case wordRedefine:
		return e.define(cmds, i, true)
	case wordVariable:
		return e.declare(cmds, i, variableObject)
	case wordValue:
		return e.declare(cmds, i, valueObject)
	case wordConstant:
		return e.declare(cmds, i, constantObject)
	case wordTo:
		return e.assign(cmds, i)
	}

	if ok, err := e.literal(name); ok {
		return i, err
	}
	if body, ok := e.dict.lookup(name); ok {
		return i, e.evaluate(ctx, body, depth+1)
	}
	if obj, ok := e.objects.lookup(name); ok {
		return i, e.pushObject(obj)
	}
	if word, ok := builtins[name]; ok {
		return i, word(e)
	}
	if stack.IsOp(name) {
		return i, e.math(stack.Op(name))
	}
	return i, unknownItemError(name)
}

func (e *Engine) conditional(ctx context.Context, cond command.Conditional, depth int) error {
	flag, err := e.stack.PopInt()
	if err != nil {
		return err
	}
	if flag == cell.True {
		return e.evaluate(ctx, cond.Then, depth+1)
	}
	return e.evaluate(ctx, cond.Else, depth+1)
}

// repeat runs the body at least once, again for as long as it leaves False.
func (e *Engine) repeat(ctx context.Context, rep command.RepeatUntil, depth int) error {
	for {
		if err := e.evaluate(ctx, rep.Body, depth+1); err != nil {
			return err
		}
		flag, err := e.stack.PopInt()
		if err != nil {
			return err
		}
		if flag != cell.False {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// loop runs a counted loop over ( current target step ): while current
// differs from target, the body sees ( target current step ), which it pops
// back afterwards before current advances by step.
func (e *Engine) loop(ctx context.Context, loop command.CountedLoop, depth int) error {
	step, err := e.stack.PopInt()
	if err != nil {
		return err
	}
	target, err := e.stack.PopInt()
	if err != nil {
		return err
	}
	current, err := e.stack.PopInt()
	if err != nil {
		return err
	}
	for current != target {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, v := range [3]int32{target, current, step} {
			if err := e.stack.PushInt(v); err != nil {
				return err
			}
		}
		if err := e.evaluate(ctx, loop.Body, depth+1); err != nil {
			return err
		}
		if target, current, step, err = e.popLoopControl(); err != nil {
			return err
		}
		current += step
	}
	return nil
}

// popLoopControl pops the ( target current step ) cells left by a loop body.
func (e *Engine) popLoopControl() (target, current, step int32, err error) {
	if step, err = e.stack.PopInt(); err == nil {
		if current, err = e.stack.PopInt(); err == nil {
			target, err = e.stack.PopInt()
		}
	}
	return target, current, step, err
}

// nextName returns the name token following cmds[i].
func nextName(cmds []command.Command, i int) (string, error) {
	if i+1 < len(cmds) {
		if p, ok := cmds[i+1].(command.Plain); ok {
			return p.Name, nil
		}
	}
	return "", errExpectedName
}

// define handles ": name body ;" and "::", which may also replace an existing
// word or shadow a reserved word or object. The name is visible inside its own
// body, but only committed once the whole body is known to resolve.
func (e *Engine) define(cmds []command.Command, i int, redefine bool) (int, error) {
	name, err := nextName(cmds, i)
	if err != nil {
		return i, err
	}
	if !redefine && (isReserved(name) || e.objects.has(name) || e.dict.has(name)) {
		return i, alreadyDefinedError(name)
	}

	start, end := i+2, -1
	for j := start; j < len(cmds); j++ {
		if p, ok := cmds[j].(command.Plain); ok && p.Name == wordEnd {
			end = j
			break
		}
	}
	if end < 0 {
		return len(cmds), errExpectedTerminator
	}

	body := append([]command.Command(nil), cmds[start:end]...)
	if err := command.Walk(body, func(cmd command.Command) error {
		if p, ok := cmd.(command.Plain); ok && !e.resolvable(p.Name, name) {
			return unknownItemError(p.Name)
		}
		return nil
	}); err != nil {
		return end, err
	}

	e.dict.define(name, body)
	e.logf("+", ": %v %v ;", name, command.Format(body))
	return end, nil
}

// resolvable reports whether token may appear in the body of the word self.
func (e *Engine) resolvable(token, self string) bool {
	return token == self ||
		isWord(token) ||
		e.objects.has(token) ||
		e.dict.has(token) ||
		e.isLiteral(token)
}

// declare handles "variable name", "value name" and "constant name"; value
// and constant take their initial content from the stack.
func (e *Engine) declare(cmds []command.Command, i int, kind objectKind) (int, error) {
	name, err := nextName(cmds, i)
	if err != nil {
		return i, err
	}
	i++
	if isReserved(name) || e.objects.has(name) || e.dict.has(name) {
		return i, alreadyDefinedError(name)
	}

	var content cell.Cell
	if kind != variableObject {
		if content, err = e.stack.Pop(); err != nil {
			return i, err
		}
	}
	addr, err := e.arena.Alloc(content)
	if err != nil {
		return i, err
	}

	e.objects.add(object{name: name, kind: kind, addr: addr})
	e.logf("+", "%v %v @%v", kind, name, addr)
	return i, nil
}

// assign handles "to name", storing the popped cell into a value.
func (e *Engine) assign(cmds []command.Command, i int) (int, error) {
	name, err := nextName(cmds, i)
	if err != nil {
		return i, err
	}
	i++
	obj, ok := e.objects.lookup(name)
	if !ok || obj.kind != valueObject {
		return i, notAValueError(name)
	}
	content, err := e.stack.Pop()
	if err != nil {
		return i, err
	}
	return i, e.arena.Stor(obj.addr, content)
}

func (e *Engine) pushObject(obj object) error {
	if obj.kind == variableObject {
		return e.stack.PushInt(int32(obj.addr))
	}
	content, err := e.arena.Load(obj.addr)
	if err != nil {
		return err
	}
	return e.stack.Push(content)
}

func (e *Engine) math(op stack.Op) error {
	if e.mode == modeFraction {
		return e.stack.FloatMath(op)
	}
	return e.stack.IntMath(op)
}
