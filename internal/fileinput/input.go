// Package fileinput reads logical source lines from a queue of named inputs.
package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line is one logical line along with the Location of its first physical
// line.
type Line struct {
	Location
	Text string
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams. Physical lines ending in a "\" token are joined with the
// line after them.
type Input struct {
	Queue []io.Reader

	r    io.Reader
	br   *bufio.Reader
	scan Location
}

// ReadLine returns the next logical line, or io.EOF once every queued input
// is exhausted. A continuation left pending at the end of one input does not
// carry over into the next.
func (in *Input) ReadLine() (line Line, err error) {
	var sb strings.Builder
	for {
		if in.br == nil && !in.nextIn() {
			return line, io.EOF
		}

		text, rerr := in.br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return line, rerr
		}
		if rerr == io.EOF && text == "" && sb.Len() == 0 {
			in.closeIn()
			continue
		}

		in.scan.Line++
		if sb.Len() == 0 {
			line.Location = in.scan
		}

		body, more := Continued(text)
		sb.WriteString(body)
		if rerr == io.EOF {
			in.closeIn()
			more = false
		}
		if !more {
			line.Text = sb.String()
			return line, nil
		}
		sb.WriteByte(' ')
	}
}

// Continued strips a trailing line break, then reports whether the last token
// of text is a lone "\", returning text without it.
func Continued(text string) (string, bool) {
	text = strings.TrimRight(text, "\r\n")
	trimmed := strings.TrimRight(text, " \t")
	if !strings.HasSuffix(trimmed, `\`) {
		return text, false
	}
	head := trimmed[:len(trimmed)-1]
	if head != "" && !strings.ContainsAny(head[len(head)-1:], " \t") {
		return text, false
	}
	return head, true
}

func (in *Input) closeIn() {
	if cl, ok := in.r.(io.Closer); ok {
		cl.Close()
	}
	in.r, in.br = nil, nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	in.r = in.Queue[0]
	in.Queue = in.Queue[1:]
	in.br = bufio.NewReader(in.r)
	in.scan = Location{Name: NameOf(in.r)}
	return true
}

// NameOf returns obj.Name() when available, as for *os.File.
func NameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// NamedReader attaches a name to r.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
