package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/goforth/internal/cell"
	"github.com/jcorbin/goforth/internal/command"
)

type engineDumper struct {
	e   *Engine
	out io.Writer

	// rawMem lists every arena cell below here instead of only the non-zero
	// ones
	rawMem bool
}

func (dump engineDumper) dump() {
	fmt.Fprintf(dump.out, "# Engine Dump\n")
	fmt.Fprintf(dump.out, "  mode: %v\n", dump.e.mode)
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.e.stackString())
	fmt.Fprintf(dump.out, "  here: %v\n", dump.e.arena.Here())

	fmt.Fprintf(dump.out, "# Dictionary")
	dump.dumpDefinitions()
	fmt.Fprintf(dump.out, "# Objects")
	dump.dumpObjects()
	fmt.Fprintf(dump.out, "# Memory\n")
	dump.dumpMem()
}

// dumpDefinitions writes one ": name body ;" line per word, after a leading
// line break.
func (dump engineDumper) dumpDefinitions() error {
	if _, err := io.WriteString(dump.out, "\n"); err != nil {
		return err
	}
	for _, name := range dump.e.dict.names {
		body, _ := dump.e.dict.lookup(name)
		if _, err := fmt.Fprintf(dump.out, ": %-18s %v ;\n", name, command.Format(body)); err != nil {
			return err
		}
	}
	return nil
}

// dumpObjects writes one "name kind offset value" line per object, after a
// leading line break; values are formatted per the current mode.
func (dump engineDumper) dumpObjects() error {
	if _, err := io.WriteString(dump.out, "\n"); err != nil {
		return err
	}
	for _, obj := range dump.e.objects.list {
		if _, err := fmt.Fprintf(dump.out, "%-20s%v\t%v\t", obj.name, obj.kind, obj.addr); err != nil {
			return err
		}
		content, err := dump.e.arena.Load(obj.addr)
		if err == nil {
			err = writeCell(dump.out, dump.e.mode, content)
		}
		if err != nil {
			return err
		}
		if _, err := io.WriteString(dump.out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (dump engineDumper) dumpMem() {
	here := dump.e.arena.Here()
	for addr := 0; addr+cell.Width <= dump.e.arena.Size(); addr += cell.Width {
		if addr >= here {
			break
		}
		content, err := dump.e.arena.Load(addr)
		if err != nil {
			fmt.Fprintf(dump.out, "  @%v %v\n", addr, err)
			return
		}
		if content == (cell.Cell{}) && !dump.rawMem {
			continue
		}
		fmt.Fprintf(dump.out, "  @%v %v % x\n", addr, content.Int(), content[:])
	}
}
