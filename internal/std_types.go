package internal

// initTypes installs the explicit coercion procedures.
func (vm *VM) initTypes() {
	vm.Install(Procs{
		"BOOL":  TypesBool,
		"CHAR":  TypesChar,
		"FLOAT": TypesFloat,
		"INT":   TypesInt,
		"LIT":   TypesLit,
		"LST":   TypesLst,
		"TYPE":  TypesType,
	})
}

// TypesInt is a type procedure.
//
// INT coerces its argument to an integer.
func TypesInt(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("INT", args, 1); err != nil {
		return nil, err
	}
	n, err := ToInt(args[0])
	if err != nil {
		return nil, err
	}
	return Int{V: n}, nil
}

// TypesFloat is a type procedure.
//
// FLOAT coerces its argument to a float.
func TypesFloat(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("FLOAT", args, 1); err != nil {
		return nil, err
	}
	f, err := ToFloat(args[0])
	if err != nil {
		return nil, err
	}
	return Float{V: f}, nil
}

// TypesLit is a type procedure.
//
// LIT returns the literal form of its argument as a resolved string.
func TypesLit(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("LIT", args, 1); err != nil {
		return nil, err
	}
	return String{S: args[0].Literal()}, nil
}

// TypesLst is a type procedure.
//
// LST coerces its argument to a list. A value that is not a list becomes a
// list holding only that value.
func TypesLst(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("LST", args, 1); err != nil {
		return nil, err
	}
	return List{Items: append([]Value(nil), ToList(args[0])...)}, nil
}

// TypesChar is a type procedure.
//
// CHAR checks that its argument is a single character and returns it as a
// string.
func TypesChar(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("CHAR", args, 1); err != nil {
		return nil, err
	}
	r, err := ToChar(args[0])
	if err != nil {
		return nil, err
	}
	return String{S: string(r)}, nil
}

// TypesBool is a type procedure.
//
// BOOL coerces its argument to the canonical TRUE or FALSE.
func TypesBool(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("BOOL", args, 1); err != nil {
		return nil, err
	}
	c, err := ToBool(args[0])
	if err != nil {
		return nil, err
	}
	return Bool(c), nil
}

// TypesType is a type procedure.
//
// TYPE returns the name of its argument's kind.
func TypesType(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("TYPE", args, 1); err != nil {
		return nil, err
	}
	return String{S: TypeName(args[0])}, nil
}
