package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/goforth/internal/cell"
	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/jcorbin/goforth/internal/runeio"
)

type core struct {
	logging
	out         flushio.WriteFlusher
	reportError func(message string)
}

func (c *core) writeString(s string) error {
	_, err := io.WriteString(c.out, s)
	return err
}

// writeCell formats a cell per the numeric mode, as shown by "." and
// viewobjects.
func writeCell(w io.Writer, m numMode, c cell.Cell) (err error) {
	switch m {
	case modeChar:
		return runeio.WriteChar(w, c.Int())
	case modeHex:
		_, err = fmt.Fprintf(w, "%02X", c.Uint())
	case modeFraction:
		_, err = io.WriteString(w, formatFloat(c.Float()))
	default:
		_, err = fmt.Fprintf(w, "%d", c.Int())
	}
	return err
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

// logf writes mess under mark, padding marks to the widest one seen so far.
func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(mark[:1], n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
