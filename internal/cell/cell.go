// Package cell implements the 4-byte storage unit shared by the operand stack
// and the memory arena.
package cell

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Width is the size of a Cell in bytes.
const Width = 4

// Truth values: zero is true, minus one is false.
const (
	True  int32 = 0
	False int32 = -1
)

// ErrWrongWidth is returned when constructing a Cell from a byte slice whose
// length is not Width.
var ErrWrongWidth = errors.New("incorrect cell size")

// Cell is an untyped 4-byte value; Int and Float reinterpret the same bytes.
// Bytes are stored little-endian.
type Cell [Width]byte

// FromBytes copies b into a new Cell.
func FromBytes(b []byte) (c Cell, err error) {
	if len(b) != Width {
		return c, fmt.Errorf("%w: got %v bytes", ErrWrongWidth, len(b))
	}
	copy(c[:], b)
	return c, nil
}

// FromInt encodes v as a Cell.
func FromInt(v int32) (c Cell) {
	binary.LittleEndian.PutUint32(c[:], uint32(v))
	return c
}

// FromFloat encodes v as a Cell.
func FromFloat(v float32) (c Cell) {
	binary.LittleEndian.PutUint32(c[:], math.Float32bits(v))
	return c
}

// FromBool encodes b using the True and False integer values.
func FromBool(b bool) Cell {
	if b {
		return FromInt(True)
	}
	return FromInt(False)
}

// FloatBool encodes b as a float truth value (0.0 or -1.0).
func FloatBool(b bool) Cell {
	if b {
		return FromFloat(float32(True))
	}
	return FromFloat(float32(False))
}

// Int interprets the cell as a signed 32-bit integer.
func (c Cell) Int() int32 { return int32(binary.LittleEndian.Uint32(c[:])) }

// Uint interprets the cell as an unsigned 32-bit integer.
func (c Cell) Uint() uint32 { return binary.LittleEndian.Uint32(c[:]) }

// Float interprets the cell as an IEEE-754 single.
func (c Cell) Float() float32 { return math.Float32frombits(binary.LittleEndian.Uint32(c[:])) }

// Bytes returns a copy of the raw cell bytes.
func (c Cell) Bytes() []byte {
	b := make([]byte, Width)
	copy(b, c[:])
	return b
}

func (c Cell) String() string { return fmt.Sprintf("%d", c.Int()) }
