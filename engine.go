package main

import (
	"github.com/jcorbin/goforth/internal/command"
	"github.com/jcorbin/goforth/internal/mem"
	"github.com/jcorbin/goforth/internal/stack"
)

// DefaultRecursionLimit bounds nested evaluation: definitions, branches and
// loop bodies each descend one level.
const DefaultRecursionLimit = 100

// Engine holds all interpreter state; it persists across Exec calls.
type Engine struct {
	core

	stack    stack.Stack
	arena    *mem.Arena
	memCells int
	maxDepth int
	mode     numMode
	dict     dictionary
	objects  objectTable
}

type numMode uint8

const (
	modeDecimal numMode = iota
	modeHex
	modeFraction
	modeChar
)

var numModeNames = [...]string{
	modeDecimal:  "decimal",
	modeHex:      "hex",
	modeFraction: "fractional",
	modeChar:     "char",
}

func (m numMode) String() string {
	if int(m) < len(numModeNames) {
		return numModeNames[m]
	}
	return "invalid"
}

// dictionary maps word names to bodies, remembering definition order.
type dictionary struct {
	names  []string
	bodies map[string][]command.Command
}

func (d *dictionary) has(name string) bool {
	_, defined := d.bodies[name]
	return defined
}

func (d *dictionary) lookup(name string) ([]command.Command, bool) {
	body, defined := d.bodies[name]
	return body, defined
}

// define adds or replaces name; a replaced word keeps its listing position.
func (d *dictionary) define(name string, body []command.Command) {
	if d.bodies == nil {
		d.bodies = make(map[string][]command.Command)
	}
	if _, defined := d.bodies[name]; !defined {
		d.names = append(d.names, name)
	}
	d.bodies[name] = body
}

type objectKind uint8

const (
	variableObject objectKind = iota
	valueObject
	constantObject
)

func (kind objectKind) String() string {
	switch kind {
	case variableObject:
		return "variable"
	case valueObject:
		return "value"
	case constantObject:
		return "constant"
	}
	return "invalid"
}

type object struct {
	name string
	kind objectKind
	addr int
}

// objectTable holds named arena cells in declaration order.
type objectTable struct {
	list  []object
	index map[string]int
}

func (ot *objectTable) has(name string) bool {
	_, defined := ot.index[name]
	return defined
}

func (ot *objectTable) lookup(name string) (object, bool) {
	if i, defined := ot.index[name]; defined {
		return ot.list[i], true
	}
	return object{}, false
}

func (ot *objectTable) add(obj object) {
	if ot.index == nil {
		ot.index = make(map[string]int)
	}
	ot.index[obj.name] = len(ot.list)
	ot.list = append(ot.list, obj)
}
