// Package parse builds a command tree from a token sequence.
package parse

import (
	"fmt"
	"strings"

	"github.com/jcorbin/goforth/internal/command"
	"github.com/jcorbin/goforth/internal/token"
)

// Structured construct keywords.
const (
	If      = "if"
	Else    = "else"
	EndIf   = "endif"
	Loop    = "loop"
	EndLoop = "endloop"
	Repeat  = "repeat"
	Until   = "until"
)

// Keywords lists every structured construct keyword.
var Keywords = []string{If, Else, EndIf, Loop, EndLoop, Repeat, Until}

// UnterminatedError is returned when input runs out before a terminator of an
// open construct was found.
type UnterminatedError struct {
	Expected string
}

func (err UnterminatedError) Error() string {
	return fmt.Sprintf("expected %v", err.Expected)
}

func unterminated(stops []string) UnterminatedError {
	quoted := make([]string, len(stops))
	for i, stop := range stops {
		quoted[i] = fmt.Sprintf("%q", stop)
	}
	return UnterminatedError{strings.Join(quoted, "/")}
}

// Source tokenizes and parses src.
func Source(src string) ([]command.Command, error) {
	var cursor int
	return Parse(token.Tokenize(src), &cursor)
}

// Parse consumes tokens from *cursor, building commands until one of stops is
// seen or tokens run out. A stop token is kept as the trailing Plain command of
// the returned sequence. Running out of tokens while stops are pending is an
// UnterminatedError.
func Parse(tokens []string, cursor *int, stops ...string) (cmds []command.Command, err error) {
	for *cursor < len(tokens) {
		tok := tokens[*cursor]
		*cursor++

		if isStop(tok, stops) {
			return append(cmds, command.Plain{Name: tok}), nil
		}

		switch tok {
		case If:
			var cond command.Conditional
			if cond.Then, err = Parse(tokens, cursor, Else, EndIf); err != nil {
				return cmds, err
			}
			if !endsWith(cond.Then, EndIf) {
				if cond.Else, err = Parse(tokens, cursor, EndIf); err != nil {
					return cmds, err
				}
			}
			cmds = append(cmds, cond)

		case Loop:
			var loop command.CountedLoop
			if loop.Body, err = Parse(tokens, cursor, EndLoop); err != nil {
				return cmds, err
			}
			cmds = append(cmds, loop)

		case Repeat:
			var rep command.RepeatUntil
			if rep.Body, err = Parse(tokens, cursor, Until); err != nil {
				return cmds, err
			}
			cmds = append(cmds, rep)

		default:
			cmds = append(cmds, command.Plain{Name: tok})
		}
	}

	if len(stops) > 0 {
		return cmds, unterminated(stops)
	}
	return cmds, nil
}

func isStop(tok string, stops []string) bool {
	for _, stop := range stops {
		if tok == stop {
			return true
		}
	}
	return false
}

func endsWith(cmds []command.Command, name string) bool {
	if i := len(cmds) - 1; i >= 0 {
		p, ok := cmds[i].(command.Plain)
		return ok && p.Name == name
	}
	return false
}
