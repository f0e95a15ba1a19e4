// Package mem implements the flat byte arena backing named objects and ad hoc
// allocations.
package mem

import (
	"errors"
	"fmt"
)

// Arena errors, wrapped by LimitError.
var (
	ErrOverflow  = errors.New("memory overflow")
	ErrUnderflow = errors.New("memory underflow")
)

// LimitError indicates that a memory operation, like load or store, fell
// outside the arena.
type LimitError struct {
	Addr  int
	Op    string
	Under bool
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("%v by %v @%v", lim.Unwrap(), lim.Op, lim.Addr)
}

// Unwrap returns ErrUnderflow or ErrOverflow.
func (lim LimitError) Unwrap() error {
	if lim.Under {
		return ErrUnderflow
	}
	return ErrOverflow
}

func checkRange(op string, addr, width, size int) error {
	if addr < 0 {
		return LimitError{Addr: addr, Op: op, Under: true}
	}
	if addr+width > size {
		return LimitError{Addr: addr, Op: op}
	}
	return nil
}
