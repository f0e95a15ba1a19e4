// Package command defines the parsed program tree: a sequence of commands,
// each either a plain token or a structured construct holding nested bodies.
package command

import "strings"

// Command is one of Plain, Conditional, CountedLoop or RepeatUntil.
type Command interface {
	command()
	String() string
}

// Plain is a single unstructured token.
type Plain struct{ Name string }

// Conditional is an if construct. Then ends with its "else" or "endif"
// terminator; Else, when present, ends with "endif".
type Conditional struct {
	Then []Command
	Else []Command
}

// CountedLoop is a loop ... endloop construct; Body ends with "endloop".
type CountedLoop struct{ Body []Command }

// RepeatUntil is a repeat ... until construct; Body ends with "until".
type RepeatUntil struct{ Body []Command }

func (Plain) command()       {}
func (Conditional) command() {}
func (CountedLoop) command() {}
func (RepeatUntil) command() {}

func (p Plain) String() string { return p.Name }

func (c Conditional) String() string {
	var sb strings.Builder
	sb.WriteString("if")
	write(&sb, c.Then)
	write(&sb, c.Else)
	return sb.String()
}

func (l CountedLoop) String() string {
	var sb strings.Builder
	sb.WriteString("loop")
	write(&sb, l.Body)
	return sb.String()
}

func (r RepeatUntil) String() string {
	var sb strings.Builder
	sb.WriteString("repeat")
	write(&sb, r.Body)
	return sb.String()
}

// Format renders cmds back into space separated source text.
func Format(cmds []Command) string {
	var sb strings.Builder
	write(&sb, cmds)
	return strings.TrimPrefix(sb.String(), " ")
}

func write(sb *strings.Builder, cmds []Command) {
	for _, cmd := range cmds {
		sb.WriteByte(' ')
		sb.WriteString(cmd.String())
	}
}

// Walk calls f for every command in cmds, descending into structured bodies,
// stopping at the first error.
func Walk(cmds []Command, f func(Command) error) error {
	for _, cmd := range cmds {
		if err := f(cmd); err != nil {
			return err
		}
		var err error
		switch c := cmd.(type) {
		case Conditional:
			if err = Walk(c.Then, f); err == nil {
				err = Walk(c.Else, f)
			}
		case CountedLoop:
			err = Walk(c.Body, f)
		case RepeatUntil:
			err = Walk(c.Body, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
