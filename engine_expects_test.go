package main

// @generated from engine_test.go

//go:generate go run scripts/gen_engine_expects.go -- engine_test.go engine_expects_test.go

import "time"

func withEngineOptions(opts ...EngineOption) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withOptions(opts...)
	}
}

func withEngineStack(values ...int32) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withStack(values...)
	}
}

func withEngineFloatStack(values ...float32) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withFloatStack(values...)
	}
}

func withEngineMode(mode numMode) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withMode(mode)
	}
}

func withEngineMemAt(addr int, values ...int32) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withMemAt(addr, values...)
	}
}

func withEnginePrelude(prelude bool) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withPrelude(prelude)
	}
}

func withEngineInput(input string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withInput(input)
	}
}

func withEngineTimeout(timeout time.Duration) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withTimeout(timeout)
	}
}

func expectEngineError(err error) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectError(err)
	}
}

func expectEngineStack(values ...int32) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectStack(values...)
	}
}

func expectEngineFloatStack(values ...float32) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectFloatStack(values...)
	}
}

func expectEngineMode(mode numMode) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectMode(mode)
	}
}

func expectEngineDefinition(name string, body string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectDefinition(name, body)
	}
}

func expectEngineUndefined(name string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectUndefined(name)
	}
}

func expectEngineObject(name string, kind objectKind, addr int) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectObject(name, kind, addr)
	}
}

func expectEngineMemAt(addr int, values ...int32) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectMemAt(addr, values...)
	}
}

func expectEngineHere(here int) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectHere(here)
	}
}

func expectEngineOutput(output string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectOutput(output)
	}
}

func expectEngineDump(dump string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectDump(dump)
	}
}
