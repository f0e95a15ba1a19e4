package main

import (
	"errors"
	"fmt"
)

// Failure kinds raised by the engine itself; the stack, mem, parse and cell
// packages define the rest.
var (
	errRecursionLimit     = errors.New("recursion limit exceeded")
	errExpectedName       = errors.New("expected a name")
	errExpectedTerminator = errors.New(`expected ";" at end of definition`)
)

type unknownItemError string

func (name unknownItemError) Error() string { return fmt.Sprintf("unknown item %q", string(name)) }

type alreadyDefinedError string

func (name alreadyDefinedError) Error() string {
	return fmt.Sprintf("%q is already defined", string(name))
}

type notAValueError string

func (name notAValueError) Error() string { return fmt.Sprintf("%q is not a value", string(name)) }

type literalKind string

const (
	integerLiteral literalKind = "integer"
	hexLiteral     literalKind = "hex integer"
	floatLiteral   literalKind = "float"
	charLiteral    literalKind = "character"
)

type literalError struct {
	kind  literalKind
	token string
}

func (err literalError) Error() string {
	return fmt.Sprintf("%q is not a valid %v", err.token, err.kind)
}
