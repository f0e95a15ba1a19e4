package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/goforth/internal/panicerr"
	"github.com/jcorbin/goforth/internal/stack"
)

func TestEngine_Process(t *testing.T) {
	var reported []string
	var out strings.Builder
	e := New(
		WithOutput(&out),
		WithErrorReporter(func(message string) { reported = append(reported, message) }),
		WithLogf(t.Logf),
	)

	assert.True(t, e.Process(`1 2 + .`), "expected success")
	assert.Equal(t, "3 ", out.String())
	assert.Empty(t, reported)

	assert.False(t, e.Process(`1 +`), "expected failure")
	assert.Equal(t, []string{stack.ErrUnderflow.Error()}, reported, "expected one report")

	// state persists across calls, including what a failed call left behind
	out.Reset()
	assert.True(t, e.Process(`2 * .`))
	assert.Equal(t, "2 ", out.String())
}

func TestEngine_ProcessContext(t *testing.T) {
	var reported []string
	e := New(WithErrorReporter(func(message string) { reported = append(reported, message) }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, e.ProcessContext(ctx, `1 2 3`))
	assert.Equal(t, []string{context.Canceled.Error()}, reported)
	assert.Equal(t, 0, e.stack.Len(), "expected nothing evaluated")
}

func TestEngine_Exec_panic(t *testing.T) {
	e := New()
	e.arena = nil
	err := e.Exec(context.Background(), `here`)
	require.Error(t, err, "expected recovered panic")
	assert.True(t, panicerr.IsPanic(err), "expected a panic error, got %v", err)
	assert.NotEmpty(t, panicerr.PanicStack(err), "expected a panic stack")
}

func TestEngine_options(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limits = LimitsConfig{Stack: 3, Memory: 2, Recursion: 7}
	e := New(WithConfig(cfg))
	assert.Equal(t, 3, e.stack.Limit)
	assert.Equal(t, 8, e.arena.Size())
	assert.Equal(t, 7, e.maxDepth)

	e = New(WithStackLimit(0), WithMemoryCells(-1), WithRecursionLimit(0))
	assert.Equal(t, stack.DefaultLimit, e.stack.Limit, "expected default stack limit")
	assert.Equal(t, 4000, e.arena.Size(), "expected default arena")
	assert.Equal(t, DefaultRecursionLimit, e.maxDepth, "expected default recursion limit")
	assert.Equal(t, modeDecimal, e.mode)
}

func TestEngine_tee(t *testing.T) {
	var out, tee strings.Builder
	e := New(WithOutput(&out), WithTee(&tee))
	require.NoError(t, e.Exec(context.Background(), `42 . cr`))
	assert.Equal(t, "42 \n", out.String())
	assert.Equal(t, "42 \n", tee.String())
}

func TestEngine_help(t *testing.T) {
	var out strings.Builder
	e := New(WithOutput(&out))
	require.NoError(t, e.Exec(context.Background(), `help`))

	words := strings.Split(out.String(), "\n")
	require.True(t, len(words) > 2, "expected a word listing")
	assert.Equal(t, "", words[0], "expected leading line break")
	assert.Equal(t, []string{":", "::", ";"}, words[1:4])
	for _, name := range []string{"viewdefinitions", "variable", "allot", "fractional", "tuck", "cr", "if", "endloop", "mod", "not"} {
		assert.Contains(t, words, name)
	}
	assert.Equal(t, 0, e.stack.Len())
}
