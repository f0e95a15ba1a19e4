package mem

import "github.com/jcorbin/goforth/internal/cell"

// DefaultCells is the arena capacity, in cells, used by New when given a
// non-positive size.
const DefaultCells = 1000

// Arena is a fixed size zero initialized byte buffer with a free pointer
// ("here") that only moves by Alloc and Allot.
type Arena struct {
	buf  []byte
	here int
}

// New creates an arena holding cells cells.
func New(cells int) *Arena {
	if cells <= 0 {
		cells = DefaultCells
	}
	return &Arena{buf: make([]byte, cells*cell.Width)}
}

// Size returns the arena size in bytes.
func (a *Arena) Size() int { return len(a.buf) }

// Here returns the free pointer.
func (a *Arena) Here() int { return a.here }

// Load reads the cell at addr.
func (a *Arena) Load(addr int) (c cell.Cell, err error) {
	if err := checkRange("load", addr, cell.Width, len(a.buf)); err != nil {
		return c, err
	}
	copy(c[:], a.buf[addr:])
	return c, nil
}

// LoadInto reads len(buf) consecutive cells starting at addr.
func (a *Arena) LoadInto(addr int, buf []cell.Cell) error {
	if err := checkRange("load", addr, len(buf)*cell.Width, len(a.buf)); err != nil {
		return err
	}
	for i := range buf {
		copy(buf[i][:], a.buf[addr+i*cell.Width:])
	}
	return nil
}

// Stor writes the given cells starting at addr.
func (a *Arena) Stor(addr int, cells ...cell.Cell) error {
	if err := checkRange("stor", addr, len(cells)*cell.Width, len(a.buf)); err != nil {
		return err
	}
	for i, c := range cells {
		copy(a.buf[addr+i*cell.Width:], c[:])
	}
	return nil
}

// Alloc stores c at the free pointer, advances it by one cell, and returns
// the cell's address.
func (a *Arena) Alloc(c cell.Cell) (addr int, err error) {
	addr = a.here
	if err := checkRange("alloc", addr, cell.Width, len(a.buf)); err != nil {
		return 0, err
	}
	copy(a.buf[addr:], c[:])
	a.here += cell.Width
	return addr, nil
}

// Allot moves the free pointer by n bytes, which may be negative; the result
// must stay within [0, Size].
func (a *Arena) Allot(n int) error {
	to := a.here + n
	if err := checkRange("allot", to, 0, len(a.buf)); err != nil {
		return err
	}
	a.here = to
	return nil
}
