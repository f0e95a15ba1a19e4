package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/goforth/internal/cell"
	"github.com/jcorbin/goforth/internal/command"
	"github.com/jcorbin/goforth/internal/logio"
)

type engineTestCases []engineTestCase

func (ets engineTestCases) run(t *testing.T) {
	{
		var exclusive []engineTestCase
		for _, et := range ets {
			if et.exclusive {
				exclusive = append(exclusive, et)
			}
		}
		if len(exclusive) > 0 {
			ets = exclusive
		}
	}
	for _, et := range ets {
		if !t.Run(et.name, et.run) {
			return
		}
	}
}

func engineTest(name string) (et engineTestCase) {
	et.name = name
	return et
}

type optFunc func(e *Engine)

func (f optFunc) apply(e *Engine) { f(e) }

type engineTestCase struct {
	name    string
	opts    []interface{}
	setup   []func(e *Engine) error
	inputs  []string
	expect  []func(t *testing.T, e *Engine)
	timeout time.Duration
	wantErr error

	exclusive bool
}

func (et engineTestCase) apply(wraps ...func(engineTestCase) engineTestCase) engineTestCase {
	for _, wrap := range wraps {
		et = wrap(et)
	}
	return et
}

func (et engineTestCase) exclusiveTest() engineTestCase {
	et.exclusive = true
	return et
}

func (et engineTestCase) withOptions(opts ...EngineOption) engineTestCase {
	for _, opt := range opts {
		et.opts = append(et.opts, opt)
	}
	return et
}

func (et engineTestCase) withStack(values ...int32) engineTestCase {
	et.opts = append(et.opts, optFunc(func(e *Engine) {
		for _, value := range values {
			e.stack.PushInt(value)
		}
	}))
	return et
}

func (et engineTestCase) withFloatStack(values ...float32) engineTestCase {
	et.opts = append(et.opts, optFunc(func(e *Engine) {
		for _, value := range values {
			e.stack.PushFloat(value)
		}
	}))
	return et
}

func (et engineTestCase) withMode(mode numMode) engineTestCase {
	et.opts = append(et.opts, optFunc(func(e *Engine) {
		e.mode = mode
	}))
	return et
}

func (et engineTestCase) withMemAt(addr int, values ...int32) engineTestCase {
	et.setup = append(et.setup, func(e *Engine) error {
		for i, value := range values {
			if err := e.arena.Stor(addr+i*cell.Width, cell.FromInt(value)); err != nil {
				return err
			}
		}
		return nil
	})
	return et
}

func (et engineTestCase) withPrelude(prelude bool) engineTestCase {
	if prelude {
		et.setup = append(et.setup, func(e *Engine) error {
			srcs, err := preludeSources()
			if err == nil {
				err = errors.Join(e.load(context.Background(), srcs)...)
			}
			return err
		})
	}
	return et
}

func (et engineTestCase) withInput(input string) engineTestCase {
	et.inputs = append(et.inputs, input)
	return et
}

func (et engineTestCase) withTimeout(timeout time.Duration) engineTestCase {
	et.timeout = timeout
	return et
}

func (et engineTestCase) expectError(err error) engineTestCase {
	et.wantErr = err
	return et
}

func (et engineTestCase) expectStack(values ...int32) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, e *Engine) {
		if values == nil {
			values = []int32{}
		}
		cells := e.stack.Cells()
		got := make([]int32, len(cells))
		for i, c := range cells {
			got[i] = c.Int()
		}
		assert.Equal(t, values, got, "expected stack values")
	})
	return et
}

func (et engineTestCase) expectFloatStack(values ...float32) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, e *Engine) {
		cells := e.stack.Cells()
		if !assert.Equal(t, len(values), len(cells), "expected stack depth") {
			return
		}
		for i, c := range cells {
			assert.InDelta(t, values[i], c.Float(), 1e-6, "expected float stack[%v]", i)
		}
	})
	return et
}

func (et engineTestCase) expectMode(mode numMode) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, e *Engine) {
		assert.Equal(t, mode, e.mode, "expected numeric mode")
	})
	return et
}

func (et engineTestCase) expectDefinition(name string, body string) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, e *Engine) {
		cmds, defined := e.dict.lookup(name)
		if assert.True(t, defined, "expected %q to be defined", name) {
			assert.Equal(t, body, command.Format(cmds), "expected %q body", name)
		}
	})
	return et
}

func (et engineTestCase) expectUndefined(name string) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, e *Engine) {
		assert.False(t, e.dict.has(name), "expected %q to be undefined", name)
		assert.False(t, e.objects.has(name), "expected no %q object", name)
	})
	return et
}

func (et engineTestCase) expectObject(name string, kind objectKind, addr int) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, e *Engine) {
		obj, defined := e.objects.lookup(name)
		if assert.True(t, defined, "expected object %q", name) {
			assert.Equal(t, kind, obj.kind, "expected %q kind", name)
			assert.Equal(t, addr, obj.addr, "expected %q offset", name)
		}
	})
	return et
}

func (et engineTestCase) expectMemAt(addr int, values ...int32) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, e *Engine) {
		buf := make([]cell.Cell, len(values))
		if !assert.NoError(t, e.arena.LoadInto(addr, buf), "must load @%v", addr) {
			return
		}
		got := make([]int32, len(buf))
		for i, c := range buf {
			got[i] = c.Int()
		}
		assert.Equal(t, values, got, "expected memory values @%v", addr)
	})
	return et
}

func (et engineTestCase) expectHere(here int) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, e *Engine) {
		assert.Equal(t, here, e.arena.Here(), "expected free pointer")
	})
	return et
}

func (et engineTestCase) expectOutput(output string) engineTestCase {
	out := new(strings.Builder)
	et.opts = append(et.opts, func(et *engineTestCase, t *testing.T) EngineOption {
		out.Reset()
		return WithOutput(out)
	})
	et.expect = append(et.expect, func(t *testing.T, e *Engine) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return et
}

func (et engineTestCase) expectDump(dump string) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, e *Engine) {
		var out strings.Builder
		engineDumper{e: e, out: &out}.dump()
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return et
}

func (et engineTestCase) withTestOutput() engineTestCase {
	et.opts = append(et.opts, func(et *engineTestCase, t *testing.T) EngineOption {
		return WithTee(&logio.Writer{Logf: t.Logf, Prefix: "out: "})
	})
	return et
}

func (et engineTestCase) run(t *testing.T) {
	defer func(then time.Time) {
		label := "PASS"
		if t.Failed() {
			label = "FAIL"
		}
		t.Logf("%v\t%v\t%v", label, t.Name(), time.Since(then))
	}(time.Now())

	if testFails(func(t *testing.T) {
		et.runEngineTest(context.Background(), t, et.buildEngine(t, nil))
	}) {
		et.runEngineTest(context.Background(), t, et.buildEngine(t, WithLogf(t.Logf)))
	}
}

func (et engineTestCase) runEngineTest(ctx context.Context, t *testing.T, e *Engine) {
	const defaultTimeout = time.Second
	timeout := et.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if t.Failed() {
			et.dumpToTest(t, e)
		}
	}()

	for _, setup := range et.setup {
		if !assert.NoError(t, setup(e), "unexpected setup error") {
			return
		}
	}

	if err := et.runInputs(ctx, e); et.wantErr != nil {
		assert.True(t, errors.Is(err, et.wantErr), "expected error: %v\ngot: %+v", et.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected engine error")
	}

	if !t.Failed() {
		for _, expect := range et.expect {
			expect(t, e)
		}
	}
}

// runInputs executes each input in order, stopping at the first failure.
func (et engineTestCase) runInputs(ctx context.Context, e *Engine) error {
	for _, input := range et.inputs {
		if err := e.Exec(ctx, input); err != nil {
			return err
		}
	}
	return nil
}

func (et engineTestCase) buildEngine(t *testing.T, extra EngineOption) *Engine {
	var opt EngineOption
	for _, o := range et.opts {
		switch impl := o.(type) {
		case func(et *engineTestCase, t *testing.T) EngineOption:
			opt = EngineOptions(opt, impl(&et, t))
		case EngineOption:
			opt = EngineOptions(opt, impl)
		default:
			t.Logf("unsupported engineTestCase opt type %T", o)
			t.FailNow()
		}
	}
	return New(opt, extra)
}

func (et engineTestCase) dumpToTest(t *testing.T, e *Engine) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	engineDumper{e: e, out: &lw, rawMem: true}.dump()
}

//// utilities

func testFails(fn func(t *testing.T)) bool {
	var fakeT testing.T
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(&fakeT)
	}()
	<-done
	return fakeT.Failed()
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
