package internal

// initComposite installs the procedures for user-defined composite types.
func (vm *VM) initComposite() {
	vm.Install(Procs{
		"FIELD":   CompositeField,
		"INVOKE":  CompositeInvoke,
		"METHOD":  CompositeMethod,
		"METHODS": CompositeMethods,
		"NEW":     CompositeNew,
	})
}

// CompositeNew is a composite procedure.
//
// NEW creates a composite instance with the optional type name. The
// instance's state starts as a copy of the current variables.
func CompositeNew(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgRange("NEW", args, 0, 1); err != nil {
		return nil, err
	}
	name := ""
	if len(args) == 1 {
		name = ToString(args[0])
	}
	return NewComposite(ctx, name), nil
}

// CompositeMethod is a composite procedure.
//
// METHOD defines each deferred block after the first argument as a method of
// the instance, named by the block's label. Methods capture the current
// context. The result is the instance.
func CompositeMethod(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgRange("METHOD", args, 2, -1); err != nil {
		return nil, err
	}
	c, err := ToComposite(args[0])
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		b, err := ToBlock(arg)
		if err != nil {
			return nil, err
		}
		c.Define(b, ctx)
	}
	return c, nil
}

// CompositeField is a composite procedure.
//
// FIELD declares a state variable of an instance with an initial value.
// Methods can only durably change declared state. The result is the
// instance.
func CompositeField(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("FIELD", args, 3); err != nil {
		return nil, err
	}
	c, err := ToComposite(args[0])
	if err != nil {
		return nil, err
	}
	c.DefineField(ToString(args[1]), args[2])
	return c, nil
}

// CompositeInvoke is a composite procedure.
//
// INVOKE calls a method of an instance with the remaining arguments.
func CompositeInvoke(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgRange("INVOKE", args, 2, -1); err != nil {
		return nil, err
	}
	c, err := ToComposite(args[0])
	if err != nil {
		return nil, err
	}
	return c.Invoke(ToString(args[1]), args[2:], ctx)
}

// CompositeMethods is a composite procedure.
//
// METHODS returns a map from each method name of an instance to that method
// bound to the instance, suitable for CALL.
func CompositeMethods(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("METHODS", args, 1); err != nil {
		return nil, err
	}
	c, err := ToComposite(args[0])
	if err != nil {
		return nil, err
	}
	m := make(map[string]Value)
	for _, name := range c.MethodNames() {
		p, _ := c.Method(name)
		m[name] = ProcValue{P: p}
	}
	return Map{Items: m}, nil
}
