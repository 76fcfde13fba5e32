package internal

// Proc is anything that can be invoked by name with a tuple of arguments:
// standard procedures, user procedures, and composite instances.
//
// Procs are immutable. Storing or passing one as a value is done through a
// ProcValue, which copies the reference.
type Proc interface {
	// Name returns the name by which the procedure is resolved.
	Name() string
	// Run invokes the procedure. The context is the caller's, and Run may
	// read and modify it, e.g. to set its return register or push to its
	// queue.
	Run(ctx *Context, args []Value) (Value, error)
}

// An Fn is a statically compiled procedure body.
type Fn func(vm *VM, ctx *Context, args []Value) (Value, error)

// A CProc is a Proc implemented by a Go function.
type CProc struct {
	name string
	fn   Fn
}

// NewCProc creates a procedure wrapping f.
func NewCProc(name string, f Fn) *CProc {
	return &CProc{name: name, fn: f}
}

// Name returns the procedure's name.
func (p *CProc) Name() string {
	return p.name
}

// Run calls the wrapped function.
func (p *CProc) Run(ctx *Context, args []Value) (Value, error) {
	return p.fn(ctx.VM, ctx, args)
}

// A UserProc is a procedure declared by a program with the PROC directive.
type UserProc struct {
	name string
	// Body holds the statements of the procedure.
	Body []Block
}

// NewUserProc creates a user procedure with the given body.
func NewUserProc(name string, body []Block) *UserProc {
	return &UserProc{name: name, Body: body}
}

// Name returns the procedure's name.
func (p *UserProc) Name() string {
	return p.name
}

// Run executes the procedure body in a fresh context whose arguments variable
// holds args. Execution stops early once the body clears the continuation
// flag. The result is the context's return register.
func (p *UserProc) Run(ctx *Context, args []Value) (Value, error) {
	c := ctx.VM.NewContext(args)
	c.Depth = ctx.Depth + 1
	for _, b := range p.Body {
		if _, err := Evaluate(b, c, true); err != nil {
			return nil, withFrame(err, "PROC "+p.name)
		}
		if !c.Running {
			break
		}
	}
	return c.Ret, nil
}

// Resolve finds the invocable to which name refers. A static name is looked
// up among the VM's procedures. A dynamic name is looked up as a variable
// whose value must be invocable.
func (vm *VM) Resolve(ctx *Context, dynamic bool, name string) (Proc, error) {
	if !dynamic {
		if p := vm.Lookup(name); p != nil {
			return p, nil
		}
		return nil, NewErrorf(NotFoundError, "%s proc not found", name)
	}
	v, ok := ctx.Get(name)
	if !ok {
		return nil, NewErrorf(NotFoundError, "%s variable not found", name)
	}
	p, ok := v.AsProc()
	if !ok {
		return nil, NewErrorf(NotFoundError, "%s is %s, not invocable", name, TypeName(v))
	}
	return p, nil
}

// Lookup returns the procedure registered under name, or nil if there is
// none. Later registrations shadow earlier ones, so user procedures shadow
// standard procedures of the same name.
func (vm *VM) Lookup(name string) Proc {
	for i := len(vm.procs) - 1; i >= 0; i-- {
		if vm.procs[i].Name() == name {
			return vm.procs[i]
		}
	}
	return nil
}

// Procs returns the VM's procedures in registration order.
func (vm *VM) Procs() []Proc {
	return append([]Proc(nil), vm.procs...)
}

// Invoke runs p with args on behalf of ctx, enforcing the depth limit and
// writing a trace line if tracing is enabled.
func (vm *VM) Invoke(ctx *Context, p Proc, args []Value) (Value, error) {
	if max := vm.Config.MaxDepth; max > 0 && ctx.Depth >= max {
		return nil, NewErrorf(LimitError, "invocation depth limit %d exceeded in %s", max, p.Name())
	}
	vm.traceCall(ctx, p.Name(), args)
	r, err := p.Run(ctx, args)
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = Void{}
	}
	return r, nil
}
