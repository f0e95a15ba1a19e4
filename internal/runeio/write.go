package runeio

import (
	"io"
	"unicode/utf8"
)

// WriteChar writes the code point held by a cell:
// - ASCII is written directly as a byte
// - C1 controls are written in their classic 7-bit escape form,
//   e.g. "\x9b" as "\x1b\x5b" for CSI
// - invalid code points are written as U+FFFD
// - all other runes are written in utf8 form
func WriteChar(w io.Writer, code int32) error {
	r := rune(code)
	var buf [utf8.UTFMax]byte
	switch {
	case r >= 0 && r < 0x80:
		buf[0] = byte(r)
		return writeAll(w, buf[:1])
	case r >= 0x80 && r <= 0x9f:
		buf[0], buf[1] = 0x1b, byte(r^0xc0)
		return writeAll(w, buf[:2])
	case !utf8.ValidRune(r):
		r = utf8.RuneError
	}
	n := utf8.EncodeRune(buf[:], r)
	return writeAll(w, buf[:n])
}

// WriteString writes s through WriteChar, rune by rune.
func WriteString(w io.Writer, s string) error {
	for _, r := range s {
		if err := WriteChar(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeAll(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return err
}
