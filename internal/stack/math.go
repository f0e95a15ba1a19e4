package stack

import (
	"errors"
	"fmt"
	"math"

	"github.com/jcorbin/goforth/internal/cell"
)

// Op names an arithmetic, comparison or logical word.
type Op string

// Math words; binary ops apply infix to the second and top cells, so
// "a b -" computes a-b and "a b <" tests a<b.
const (
	Add Op = "+"
	Sub Op = "-"
	Mul Op = "*"
	Div Op = "/"
	Mod Op = "mod"
	Gt  Op = ">"
	Lt  Op = "<"
	Ge  Op = ">="
	Le  Op = "<="
	Eq  Op = "="
	Ne  Op = "!="
	And Op = "and"
	Or  Op = "or"
	Not Op = "not"
)

// Ops lists every math word.
var Ops = []Op{Add, Sub, Mul, Div, Mod, Gt, Lt, Ge, Le, Eq, Ne, And, Or, Not}

// Epsilon is the tolerance used by float equality.
const Epsilon = 0.0001

// Math errors.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrUnknownOp      = errors.New("unknown math operation")
)

// IsOp reports whether name is a math word.
func IsOp(name string) bool {
	for _, op := range Ops {
		if string(op) == name {
			return true
		}
	}
	return false
}

// IntMath applies op to integer interpretations of the top cell(s), replacing
// them with the result. Comparisons and logic produce True or False.
func (s *Stack) IntMath(op Op) error {
	if op == Not {
		if err := s.need(1); err != nil {
			return err
		}
		i := len(s.cells) - 1
		s.cells[i] = cell.FromBool(s.cells[i].Int() != cell.True)
		return nil
	}
	return s.binary(op, intOp)
}

// FloatMath is like IntMath over float interpretations; truth values are
// float encoded.
func (s *Stack) FloatMath(op Op) error {
	if op == Not {
		if err := s.need(1); err != nil {
			return err
		}
		i := len(s.cells) - 1
		s.cells[i] = cell.FloatBool(s.cells[i].Float() != float32(cell.True))
		return nil
	}
	return s.binary(op, floatOp)
}

func (s *Stack) binary(op Op, f func(op Op, a, b cell.Cell) (cell.Cell, error)) error {
	if err := s.need(2); err != nil {
		return err
	}
	n := len(s.cells)
	r, err := f(op, s.cells[n-2], s.cells[n-1])
	if err != nil {
		return err
	}
	s.cells = append(s.cells[:n-2], r)
	return nil
}

func intOp(op Op, ac, bc cell.Cell) (cell.Cell, error) {
	a, b := ac.Int(), bc.Int()
	switch op {
	case Add:
		return cell.FromInt(a + b), nil
	case Sub:
		return cell.FromInt(a - b), nil
	case Mul:
		return cell.FromInt(a * b), nil
	case Div:
		if b == 0 {
			return ac, ErrDivisionByZero
		}
		return cell.FromInt(a / b), nil
	case Mod:
		if b == 0 {
			return ac, ErrDivisionByZero
		}
		return cell.FromInt(a % b), nil
	case Gt:
		return cell.FromBool(a > b), nil
	case Lt:
		return cell.FromBool(a < b), nil
	case Ge:
		return cell.FromBool(a >= b), nil
	case Le:
		return cell.FromBool(a <= b), nil
	case Eq:
		return cell.FromBool(a == b), nil
	case Ne:
		return cell.FromBool(a != b), nil
	case And:
		return cell.FromBool(a == cell.True && b == cell.True), nil
	case Or:
		return cell.FromBool(a == cell.True || b == cell.True), nil
	}
	return ac, fmt.Errorf("%w %q", ErrUnknownOp, op)
}

func floatOp(op Op, ac, bc cell.Cell) (cell.Cell, error) {
	a, b := ac.Float(), bc.Float()
	const truth = float32(cell.True)
	switch op {
	case Add:
		return cell.FromFloat(a + b), nil
	case Sub:
		return cell.FromFloat(a - b), nil
	case Mul:
		return cell.FromFloat(a * b), nil
	case Div:
		return cell.FromFloat(a / b), nil
	case Mod:
		return cell.FromFloat(float32(math.Mod(float64(a), float64(b)))), nil
	case Gt:
		return cell.FloatBool(a > b), nil
	case Lt:
		return cell.FloatBool(a < b), nil
	case Ge:
		return cell.FloatBool(a >= b), nil
	case Le:
		return cell.FloatBool(a <= b), nil
	case Eq:
		return cell.FloatBool(floatEqual(a, b)), nil
	case Ne:
		return cell.FloatBool(!floatEqual(a, b)), nil
	case And:
		return cell.FloatBool(a == truth && b == truth), nil
	case Or:
		return cell.FloatBool(a == truth || b == truth), nil
	}
	return ac, fmt.Errorf("%w %q", ErrUnknownOp, op)
}

func floatEqual(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) < Epsilon
}
