package internal

import (
	"fmt"
	"strings"
)

// initCore installs the core procedures.
func (vm *VM) initCore() {
	vm.Install(Procs{
		"ALIAS":   CoreAlias,
		"ARG":     CoreArg,
		"CALL":    CoreCall,
		"CONCAT":  CoreConcat,
		"DISPLAY": CoreDisplay,
		"GET":     CoreGet,
		"REF":     CoreRef,
		"RETURN":  CoreReturn,
		"SET":     CoreSet,
		"STOP":    CoreStop,
	})
}

// CoreDisplay is a core procedure.
//
// DISPLAY writes the literal form of its argument and a newline to the VM's
// standard output.
func CoreDisplay(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("DISPLAY", args, 1); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(vm.Stdout, args[0].Literal()); err != nil {
		return nil, fmt.Errorf("efecta: DISPLAY: %w", err)
	}
	return Void{}, nil
}

// CoreReturn is a core procedure.
//
// RETURN sets the return register of the current context. It does not stop
// execution; use STOP for that.
func CoreReturn(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("RETURN", args, 1); err != nil {
		return nil, err
	}
	ctx.Ret = args[0]
	return Void{}, nil
}

// CoreStop is a core procedure.
//
// STOP skips the remaining statements of the current procedure.
func CoreStop(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("STOP", args, 0); err != nil {
		return nil, err
	}
	ctx.Running = false
	return Void{}, nil
}

// CoreArg is a core procedure.
//
// ARG returns the nth argument of the current procedure, counting from 0.
func CoreArg(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("ARG", args, 1); err != nil {
		return nil, err
	}
	n, err := ToInt(args[0])
	if err != nil {
		return nil, err
	}
	a := ctx.Args()
	if n < 0 || n >= int64(len(a)) {
		return nil, NewErrorf(NotFoundError, "argument %d out of range, have %d", n, len(a))
	}
	return a[n], nil
}

// CoreSet is a core procedure.
//
// SET binds a variable in the current context and returns the value.
func CoreSet(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("SET", args, 2); err != nil {
		return nil, err
	}
	ctx.Set(ToString(args[0]), args[1])
	return args[1], nil
}

// CoreGet is a core procedure.
//
// GET returns the value of a variable.
func CoreGet(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("GET", args, 1); err != nil {
		return nil, err
	}
	return ctx.Lookup(ToString(args[0]))
}

// CoreRef is a core procedure.
//
// REF returns a first-class reference to a statically resolved procedure.
func CoreRef(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("REF", args, 1); err != nil {
		return nil, err
	}
	p, err := vm.Resolve(ctx, false, ToString(args[0]))
	if err != nil {
		return nil, err
	}
	return ProcValue{P: p}, nil
}

// CoreAlias is a core procedure.
//
// ALIAS returns a value that looks like its first argument but invokes the
// procedure named by its second.
func CoreAlias(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("ALIAS", args, 2); err != nil {
		return nil, err
	}
	p, err := vm.Resolve(ctx, false, ToString(args[1]))
	if err != nil {
		return nil, err
	}
	return Alias{Value: args[0], Callee: ProcValue{P: p}}, nil
}

// CoreCall is a core procedure.
//
// CALL invokes an invocable value with the remaining arguments. Unlike dynamic
// dispatch, no receiver is passed.
func CoreCall(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgRange("CALL", args, 1, -1); err != nil {
		return nil, err
	}
	p, err := ToProc(args[0])
	if err != nil {
		return nil, err
	}
	return vm.Invoke(ctx, p, args[1:])
}

// CoreConcat is a core procedure.
//
// CONCAT joins the literal forms of its arguments.
func CoreConcat(vm *VM, ctx *Context, args []Value) (Value, error) {
	var b strings.Builder
	for _, arg := range args {
		b.WriteString(arg.Literal())
	}
	return String{S: b.String()}, nil
}
