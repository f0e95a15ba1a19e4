package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/goforth/internal/fileinput"
)

// scriptedPrompter answers prompts from a fixed list of lines, then io.EOF.
type scriptedPrompter struct {
	lines   []string
	prompts []string
	history []string
}

func (sp *scriptedPrompter) Prompt(prompt string) (string, error) {
	sp.prompts = append(sp.prompts, prompt)
	if len(sp.lines) == 0 {
		return "", io.EOF
	}
	line := sp.lines[0]
	sp.lines = sp.lines[1:]
	if line == "^C" {
		return "", liner.ErrPromptAborted
	}
	return line, nil
}

func (sp *scriptedPrompter) AppendHistory(item string) {
	sp.history = append(sp.history, item)
}

func TestREPL(t *testing.T) {
	for _, tc := range []struct {
		name    string
		prompt  string
		lines   []string
		out     string
		prompts []string
		history []string
		reports []string
		left    []string
	}{
		{
			name:    "acknowledges success",
			lines:   []string{"1 2 +", ". cr"},
			out:     " OK\n3 \n OK\n\n",
			prompts: []string{"> ", "> ", "> "},
			history: []string{"1 2 +", ". cr"},
		},
		{
			name:    "reports failure",
			prompt:  "forth> ",
			lines:   []string{"1 +", "nope"},
			out:     "\n",
			prompts: []string{"forth> ", "forth> ", "forth> "},
			history: []string{"1 +", "nope"},
			reports: []string{"stack underflow", `unknown item "nope"`},
		},
		{
			name:    "continued lines",
			lines:   []string{`1 2 \`, `+ .`, "bye"},
			out:     "3  OK\n",
			prompts: []string{"> ", "... ", "> "},
			history: []string{"1 2  + ."},
		},
		{
			name:    "bye stops reading",
			lines:   []string{"", "  ", "^C", "bye", "1"},
			out:     "",
			prompts: []string{"> ", "> ", "> ", "> "},
			left:    []string{"1"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			var reports []string
			e := New(
				WithOutput(&out),
				WithErrorReporter(func(message string) { reports = append(reports, message) }),
			)
			sp := &scriptedPrompter{lines: tc.lines}
			r := repl{e: e, in: sp, out: &out, prompt: tc.prompt}

			require.NoError(t, r.run(context.Background()))
			assert.Equal(t, tc.out, out.String(), "expected output")
			assert.Equal(t, tc.prompts, sp.prompts, "expected prompts")
			assert.Equal(t, tc.history, sp.history, "expected history")
			assert.Equal(t, tc.reports, reports, "expected reported errors")
			if len(tc.left) == 0 {
				assert.Empty(t, sp.lines, "expected every line read")
			} else {
				assert.Equal(t, tc.left, sp.lines, "expected unread lines")
			}
		})
	}
}

func TestRunBatch(t *testing.T) {
	var out strings.Builder
	e := New(WithOutput(&out))

	var reports []string
	reportf := func(mess string, args ...interface{}) {
		reports = append(reports, fmt.Sprintf(mess, args...))
	}

	in := fileinput.NamedReader("script.fs", strings.NewReader(lines(
		`1 2 +`,
		`nope`,
		`3 \`,
		`4 + .`,
		`: half 2 / ;`,
		`8 half .`,
	)))
	require.NoError(t, runBatch(context.Background(), e, in, reportf))
	assert.Equal(t, []string{`script.fs:2: unknown item "nope"`}, reports)
	assert.Equal(t, "7 4 ", out.String())
	assert.Equal(t, 1, e.stack.Len())
}

func TestRunBatch_canceled(t *testing.T) {
	e := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var reports []string
	reportf := func(mess string, args ...interface{}) {
		reports = append(reports, fmt.Sprintf(mess, args...))
	}
	err := runBatch(ctx, e, strings.NewReader("1\n2\n"), reportf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, reports)
}
