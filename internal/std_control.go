package internal

import "math"

// initControl installs control flow procedures.
func (vm *VM) initControl() {
	vm.Install(Procs{
		"EACH":  ControlEach,
		"IF":    ControlIf,
		"RANGE": ControlRange,
		"RUN":   ControlRun,
		"WHILE": ControlWhile,
	})
}

// ControlIf is a control procedure.
//
// IF runs its second argument, a deferred block, if its first argument is
// true. Otherwise it runs the optional third. The block runs in a child of
// the current context, which is poured back afterward. With a false
// condition and no else block, the context is unchanged and the result is
// Void.
func ControlIf(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgRange("IF", args, 2, 3); err != nil {
		return nil, err
	}
	c, err := ToBool(args[0])
	if err != nil {
		return nil, err
	}
	then, err := ToBlock(args[1])
	if err != nil {
		return nil, err
	}
	if c {
		return RunChild(then, ctx)
	}
	if len(args) == 3 {
		els, err := ToBlock(args[2])
		if err != nil {
			return nil, err
		}
		return RunChild(els, ctx)
	}
	return Void{}, nil
}

// ControlRun is a control procedure.
//
// RUN runs a deferred block in a child of the current context, pours the
// child back, and returns the block's value.
func ControlRun(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("RUN", args, 1); err != nil {
		return nil, err
	}
	b, err := ToBlock(args[0])
	if err != nil {
		return nil, err
	}
	return RunChild(b, ctx)
}

// ControlWhile is a control procedure.
//
// WHILE runs its first argument, a deferred block, and then its second as
// long as the first produces a true value. Each run uses a child context
// poured back afterward. The result is the last value of the body, or Void
// if it never ran.
func ControlWhile(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("WHILE", args, 2); err != nil {
		return nil, err
	}
	cond, err := ToBlock(args[0])
	if err != nil {
		return nil, err
	}
	body, err := ToBlock(args[1])
	if err != nil {
		return nil, err
	}
	var r Value = Void{}
	for ctx.Running {
		v, err := RunChild(cond, ctx)
		if err != nil {
			return nil, err
		}
		c, err := ToBool(v)
		if err != nil {
			return nil, err
		}
		if !c || !ctx.Running {
			break
		}
		if r, err = RunChild(body, ctx); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ControlEach is a control procedure.
//
// EACH produces one result per element of its argument, so that a block
// using it runs once per element.
func ControlEach(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("EACH", args, 1); err != nil {
		return nil, err
	}
	l := ToList(args[0])
	f := Fan{Tuples: make([]Tuple, len(l))}
	for i, v := range l {
		f.Tuples[i] = Tuple{v}
	}
	return f, nil
}

// ControlRange is a control procedure.
//
// RANGE produces one result per integer from its first argument up to but
// not including its second, separated by the optional step, which defaults
// to 1. A negative step counts down.
func ControlRange(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgRange("RANGE", args, 2, 3); err != nil {
		return nil, err
	}
	start, err := ToInt(args[0])
	if err != nil {
		return nil, err
	}
	stop, err := ToInt(args[1])
	if err != nil {
		return nil, err
	}
	step := int64(1)
	if len(args) == 3 {
		if step, err = ToInt(args[2]); err != nil {
			return nil, err
		}
		if step == 0 {
			return nil, NewError(TypeError, "RANGE step must not be zero")
		}
	}
	var f Fan
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		f.Tuples = append(f.Tuples, Tuple{Int{V: i}})
		if (step > 0 && i > math.MaxInt64-step) || (step < 0 && i < math.MinInt64-step) {
			// The next step would wrap around.
			break
		}
	}
	return f, nil
}
