package internal

import (
	"errors"
	"math"
	"strings"
)

// initMath installs arithmetic, comparison, and boolean procedures.
func (vm *VM) initMath() {
	vm.Install(Procs{
		"ADD": MathAdd,
		"AND": MathAnd,
		"DIV": MathDiv,
		"EQ":  MathEq,
		"GT":  MathGt,
		"LT":  MathLt,
		"MOD": MathMod,
		"MUL": MathMul,
		"NOT": MathNot,
		"OR":  MathOr,
		"SUB": MathSub,
	})
}

// operands holds arithmetic arguments coerced to a common kind. If every
// argument is an integer, ints holds them; otherwise floats does.
type operands struct {
	ints   []int64
	floats []float64
}

// numbers coerces arithmetic arguments. It is a type error if any argument
// is not a number.
func numbers(args []Value) (operands, error) {
	ints := make([]int64, len(args))
	for i, arg := range args {
		n, err := ToInt(arg)
		if err != nil {
			break
		}
		ints[i] = n
		if i == len(args)-1 {
			return operands{ints: ints}, nil
		}
	}
	floats := make([]float64, len(args))
	for i, arg := range args {
		f, err := ToFloat(arg)
		if err != nil {
			return operands{}, err
		}
		floats[i] = f
	}
	return operands{floats: floats}, nil
}

// fold applies an arithmetic operation left to right across at least two
// arguments. If the integer operation overflows, the whole fold is redone in
// floating point.
func fold(name string, args []Value, fi func(a, b int64) (int64, error), ff func(a, b float64) (float64, error)) (Value, error) {
	if err := AssertArgRange(name, args, 2, -1); err != nil {
		return nil, err
	}
	ops, err := numbers(args)
	if err != nil {
		return nil, err
	}
	if ops.ints != nil {
		r := ops.ints[0]
		for _, n := range ops.ints[1:] {
			if r, err = fi(r, n); err != nil {
				break
			}
		}
		if err == nil {
			return Int{V: r}, nil
		}
		if err != errOverflow {
			return nil, err
		}
		ops.floats = make([]float64, len(ops.ints))
		for i, n := range ops.ints {
			ops.floats[i] = float64(n)
		}
	}
	r := ops.floats[0]
	for _, f := range ops.floats[1:] {
		if r, err = ff(r, f); err != nil {
			return nil, err
		}
	}
	return Float{V: r}, nil
}

// errOverflow is returned by integer operations whose results do not fit in
// an int64. It never escapes fold.
var errOverflow = errors.New("integer overflow")

// errDivZero creates the error for division or remainder by zero.
func errDivZero() error {
	return NewError(TypeError, "division by zero")
}

// MathAdd is a math procedure.
//
// ADD returns the sum of its arguments.
func MathAdd(vm *VM, ctx *Context, args []Value) (Value, error) {
	return fold("ADD", args,
		func(a, b int64) (int64, error) {
			if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
				return 0, errOverflow
			}
			return a + b, nil
		},
		func(a, b float64) (float64, error) { return a + b, nil },
	)
}

// MathSub is a math procedure.
//
// SUB subtracts each argument after the first from the first.
func MathSub(vm *VM, ctx *Context, args []Value) (Value, error) {
	return fold("SUB", args,
		func(a, b int64) (int64, error) {
			if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
				return 0, errOverflow
			}
			return a - b, nil
		},
		func(a, b float64) (float64, error) { return a - b, nil },
	)
}

// MathMul is a math procedure.
//
// MUL returns the product of its arguments.
func MathMul(vm *VM, ctx *Context, args []Value) (Value, error) {
	return fold("MUL", args,
		func(a, b int64) (int64, error) {
			if a == 0 || b == 0 {
				return 0, nil
			}
			c := a * b
			if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
				return 0, errOverflow
			}
			return c, nil
		},
		func(a, b float64) (float64, error) { return a * b, nil },
	)
}

// MathDiv is a math procedure.
//
// DIV divides its first argument by its second. Integer division truncates.
func MathDiv(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("DIV", args, 2); err != nil {
		return nil, err
	}
	return fold("DIV", args,
		func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errDivZero()
			}
			if a == math.MinInt64 && b == -1 {
				return 0, errOverflow
			}
			return a / b, nil
		},
		func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, errDivZero()
			}
			return a / b, nil
		},
	)
}

// MathMod is a math procedure.
//
// MOD returns the remainder of dividing its first argument by its second,
// with the sign of the first.
func MathMod(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("MOD", args, 2); err != nil {
		return nil, err
	}
	return fold("MOD", args,
		func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errDivZero()
			}
			return a % b, nil
		},
		func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, errDivZero()
			}
			return math.Mod(a, b), nil
		},
	)
}

// compare orders two values: numerically if both are numbers, otherwise by
// their literal forms. ok is false if the values are unordered, which is the
// case when either is NaN.
func compare(a, b Value) (c int, ok bool) {
	x, err := ToFloat(a)
	if err == nil {
		y, err := ToFloat(b)
		if err == nil {
			switch {
			case x < y:
				return -1, true
			case x > y:
				return 1, true
			case x == y:
				return 0, true
			}
			return 0, false
		}
	}
	return strings.Compare(a.Literal(), b.Literal()), true
}

// MathEq is a math procedure.
//
// EQ returns TRUE if its two arguments are equal numbers or have equal
// literal forms. NaN is equal to nothing.
func MathEq(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("EQ", args, 2); err != nil {
		return nil, err
	}
	c, ok := compare(args[0], args[1])
	return Bool(ok && c == 0), nil
}

// MathLt is a math procedure.
//
// LT returns TRUE if its first argument orders before its second.
func MathLt(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("LT", args, 2); err != nil {
		return nil, err
	}
	c, ok := compare(args[0], args[1])
	return Bool(ok && c < 0), nil
}

// MathGt is a math procedure.
//
// GT returns TRUE if its first argument orders after its second.
func MathGt(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("GT", args, 2); err != nil {
		return nil, err
	}
	c, ok := compare(args[0], args[1])
	return Bool(ok && c > 0), nil
}

// MathNot is a math procedure.
//
// NOT negates a boolean.
func MathNot(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("NOT", args, 1); err != nil {
		return nil, err
	}
	c, err := ToBool(args[0])
	if err != nil {
		return nil, err
	}
	return Bool(!c), nil
}

// MathAnd is a math procedure.
//
// AND returns TRUE if all of its arguments are true.
func MathAnd(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgRange("AND", args, 1, -1); err != nil {
		return nil, err
	}
	for _, arg := range args {
		c, err := ToBool(arg)
		if err != nil {
			return nil, err
		}
		if !c {
			return False, nil
		}
	}
	return True, nil
}

// MathOr is a math procedure.
//
// OR returns TRUE if any of its arguments is true.
func MathOr(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgRange("OR", args, 1, -1); err != nil {
		return nil, err
	}
	for _, arg := range args {
		c, err := ToBool(arg)
		if err != nil {
			return nil, err
		}
		if c {
			return True, nil
		}
	}
	return False, nil
}
