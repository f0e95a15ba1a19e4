// Package stack implements the bounded operand stack of cells together with
// its derived manipulation words and arithmetic.
package stack

import (
	"errors"

	"github.com/jcorbin/goforth/internal/cell"
)

// DefaultLimit is the stack capacity used when Stack.Limit is zero.
const DefaultLimit = 1000

// Stack errors.
var (
	ErrOverflow  = errors.New("stack overflow")
	ErrUnderflow = errors.New("stack underflow")
)

// Stack is a LIFO of cells with a fixed capacity. The zero value is ready to
// use with DefaultLimit.
type Stack struct {
	Limit int

	cells []cell.Cell
}

func (s *Stack) limit() int {
	if s.Limit > 0 {
		return s.Limit
	}
	return DefaultLimit
}

// Len returns the number of cells on the stack.
func (s *Stack) Len() int { return len(s.cells) }

// CanPop reports whether Pop would succeed.
func (s *Stack) CanPop() bool { return len(s.cells) > 0 }

// Cells returns a copy of the stack contents, bottom first.
func (s *Stack) Cells() []cell.Cell {
	return append([]cell.Cell(nil), s.cells...)
}

// Reset empties the stack.
func (s *Stack) Reset() { s.cells = s.cells[:0] }

// Push places c on top, failing with ErrOverflow once Limit cells are held.
func (s *Stack) Push(c cell.Cell) error {
	if len(s.cells) >= s.limit() {
		return ErrOverflow
	}
	s.cells = append(s.cells, c)
	return nil
}

// Pop removes and returns the top cell.
func (s *Stack) Pop() (cell.Cell, error) {
	i := len(s.cells) - 1
	if i < 0 {
		return cell.Cell{}, ErrUnderflow
	}
	c := s.cells[i]
	s.cells = s.cells[:i]
	return c, nil
}

// PushInt pushes an integer encoded cell.
func (s *Stack) PushInt(v int32) error { return s.Push(cell.FromInt(v)) }

// PushFloat pushes a float encoded cell.
func (s *Stack) PushFloat(v float32) error { return s.Push(cell.FromFloat(v)) }

// PopInt pops a cell and interprets it as an integer.
func (s *Stack) PopInt() (int32, error) {
	c, err := s.Pop()
	return c.Int(), err
}

// PopFloat pops a cell and interprets it as a float.
func (s *Stack) PopFloat() (float32, error) {
	c, err := s.Pop()
	return c.Float(), err
}

// need fails with ErrUnderflow unless at least n cells are held, so that fixed
// arity words leave the stack untouched on failure.
func (s *Stack) need(n int) error {
	if len(s.cells) < n {
		return ErrUnderflow
	}
	return nil
}

func (s *Stack) pop2() (a, b cell.Cell) {
	b, _ = s.Pop()
	a, _ = s.Pop()
	return a, b
}
