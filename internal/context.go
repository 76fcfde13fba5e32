package internal

// ArgumentsVar is the name of the variable holding a procedure's arguments.
const ArgumentsVar = "arguments"

// SelfVar is the name of the variable holding a composite instance within its
// own methods.
const SelfVar = "self"

// Context is the mutable state of one procedure invocation.
//
// Nested constructs such as conditional bodies run in a child Context created
// by Clone and merged back with Pour. That is the only scoping rule: nested
// blocks read the whole parent environment but only durably change bindings
// that already existed in the parent.
type Context struct {
	// VM is the interpreter running this context. It provides the set of
	// invocable procedures.
	VM *VM
	// Vars maps variable names to values.
	Vars map[string]Value
	// Queue is the explicit FIFO used to hand values between blocks.
	Queue []Value
	// Ret is the return register.
	Ret Value
	// Running is the continuation flag. Once it is false, the remaining
	// statements of the procedure body are skipped.
	Running bool
	// Depth is the invocation nesting depth.
	Depth int
}

// NewContext creates a context for an invocation with the given arguments.
func (vm *VM) NewContext(args []Value) *Context {
	return &Context{
		VM:      vm,
		Vars:    map[string]Value{ArgumentsVar: List{Items: append([]Value(nil), args...)}},
		Ret:     Void{},
		Running: true,
	}
}

// Clone creates a child context that is a full logical copy of c. The VM is
// shared.
func (c *Context) Clone() *Context {
	vars := make(map[string]Value, len(c.Vars))
	for k, v := range c.Vars {
		vars[k] = CopyValue(v)
	}
	var q []Value
	if len(c.Queue) > 0 {
		q = make([]Value, len(c.Queue))
		for i, v := range c.Queue {
			q[i] = CopyValue(v)
		}
	}
	return &Context{
		VM:      c.VM,
		Vars:    vars,
		Queue:   q,
		Ret:     c.Ret,
		Running: c.Running,
		Depth:   c.Depth,
	}
}

// Pour merges child into c. The return register, continuation flag, and queue
// of c are replaced by the child's. Variables of the child overwrite those of
// c only when c already has a variable with the same name; new variables
// introduced in the child are dropped.
func (c *Context) Pour(child *Context) {
	c.Ret = child.Ret
	c.Running = child.Running
	c.Queue = child.Queue
	for k := range c.Vars {
		if v, ok := child.Vars[k]; ok {
			c.Vars[k] = v
		}
	}
}

// Get returns the value of a variable and whether it exists.
func (c *Context) Get(name string) (Value, bool) {
	v, ok := c.Vars[name]
	return v, ok
}

// Lookup returns the value of a variable or a not-found error.
func (c *Context) Lookup(name string) (Value, error) {
	if v, ok := c.Vars[name]; ok {
		return v, nil
	}
	return nil, NewErrorf(NotFoundError, "variable %s not found", name)
}

// Has returns whether a variable exists.
func (c *Context) Has(name string) bool {
	_, ok := c.Vars[name]
	return ok
}

// Set binds a variable.
func (c *Context) Set(name string, v Value) {
	if c.Vars == nil {
		c.Vars = make(map[string]Value)
	}
	c.Vars[name] = v
}

// Push appends values to the end of the queue.
func (c *Context) Push(vs ...Value) {
	c.Queue = append(c.Queue, vs...)
}

// Receive removes and returns the oldest value in the queue. It is a
// not-found error if the queue is empty.
func (c *Context) Receive() (Value, error) {
	if len(c.Queue) == 0 {
		return nil, NewError(NotFoundError, "receive from empty queue")
	}
	v := c.Queue[0]
	c.Queue = c.Queue[1:]
	return v, nil
}

// Args returns the elements of the arguments variable.
func (c *Context) Args() []Value {
	v, ok := c.Vars[ArgumentsVar]
	if !ok {
		return nil
	}
	return ToList(v)
}
