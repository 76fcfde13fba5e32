package internal

import (
	"sort"
	"sync/atomic"

	"github.com/zephyrtronium/contains"
)

// Method names through which composite instances supply capabilities.
const (
	IntMethod   = "INT"
	FloatMethod = "FLOAT"
	ListMethod  = "LST"
	MapMethod   = "MAP"
	LitMethod   = "LIT"
	BlockMethod = "BLOCK"
)

// A Composite is an instance of a user-defined type: a set of methods sharing
// one mutable state context. Composites are shared by pointer; every holder
// sees the same state.
type Composite struct {
	id      uintptr
	name    string
	methods map[string]method
	// self holds the instance's state variables.
	self *Context
	// coercing is set while a capability method runs, so that a method which
	// coerces its own instance sees the capability as absent instead of
	// recursing forever.
	coercing bool
}

// method is a composite method: its deferred block and the context captured
// when it was defined.
type method struct {
	body     Block
	captured *Context
}

// compositeCounter is the global counter for composite IDs. All accesses to
// this must be atomic.
var compositeCounter uintptr

// nextComposite increments the composite counter and returns its value as a
// unique ID for a new composite.
func nextComposite() uintptr {
	return atomic.AddUintptr(&compositeCounter, 1)
}

// NewComposite creates an instance with no methods whose state is a snapshot
// of the variables of ctx.
func NewComposite(ctx *Context, name string) *Composite {
	self := ctx.Clone()
	delete(self.Vars, ArgumentsVar)
	delete(self.Vars, SelfVar)
	self.Queue = nil
	self.Ret = Void{}
	self.Running = true
	return &Composite{
		id:      nextComposite(),
		name:    name,
		methods: make(map[string]method),
		self:    self,
	}
}

// UniqueID returns the instance's unique ID.
func (c *Composite) UniqueID() uintptr {
	return c.id
}

// TypeName returns the instance's type name.
func (c *Composite) TypeName() string {
	if c.name == "" {
		return "Composite"
	}
	return c.name
}

// Define adds or replaces a method. The method is named by the deferred
// block's label, and its body runs over a copy of captured.
func (c *Composite) Define(body Block, captured *Context) {
	c.methods[body.Head()] = method{body: body, captured: captured.Clone()}
}

// DefineField declares a state variable. Only variables the instance already
// has survive method invocations.
func (c *Composite) DefineField(name string, v Value) {
	c.self.Set(name, CopyValue(v))
}

// Field returns the value of a state variable.
func (c *Composite) Field(name string) (Value, bool) {
	return c.self.Get(name)
}

// HasMethod returns whether the instance has a method with the given name.
func (c *Composite) HasMethod(name string) bool {
	_, ok := c.methods[name]
	return ok
}

// MethodNames returns the names of the instance's methods in sorted order.
func (c *Composite) MethodNames() []string {
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs a method on behalf of caller.
//
// The method body runs in a working copy of its captured context, overlaid
// with the instance's state, the instance's queue, the arguments, and self
// bound to the instance. Afterward, the working context is poured into the
// instance's state, so only state variables that already existed change. The
// result is the working return register if it was set, or otherwise the
// body's last value.
func (c *Composite) Invoke(name string, args []Value, caller *Context) (Value, error) {
	m, ok := c.methods[name]
	if !ok {
		return nil, NewErrorf(NotFoundError, "%s method not found in %s", name, c.TypeName())
	}
	working := m.captured.Clone()
	for k, v := range c.self.Vars {
		working.Set(k, CopyValue(v))
	}
	working.Queue = append([]Value(nil), c.self.Queue...)
	working.Ret = Void{}
	working.Running = true
	working.Depth = caller.Depth + 1
	working.Set(ArgumentsVar, List{Items: append([]Value(nil), args...)})
	working.Set(SelfVar, c)
	r, err := RunNamed(m.body, working)
	if err != nil {
		return nil, withFrame(err, "METHOD "+c.TypeName()+" "+name)
	}
	c.self.Pour(working)
	if !IsVoid(working.Ret) {
		return working.Ret, nil
	}
	return r, nil
}

// Name returns the instance's type name so that composites can be used as
// procedures.
func (c *Composite) Name() string {
	return c.TypeName()
}

// Run dispatches a method call. args[0] is the receiver, args[1] names the
// method, and the remaining arguments are passed to it.
func (c *Composite) Run(ctx *Context, args []Value) (Value, error) {
	if len(args) < 2 {
		return nil, NewErrorf(ArityError, "%s expects a receiver and a method name, got %d arguments", c.TypeName(), len(args))
	}
	return c.Invoke(ToString(args[1]), args[2:], ctx)
}

// Method returns a method bound to the instance.
func (c *Composite) Method(name string) (Proc, bool) {
	if !c.HasMethod(name) {
		return nil, false
	}
	return methodProc{c: c, name: name}, true
}

// methodProc is a composite method bound to its instance. Its arguments are
// passed to the method unchanged.
type methodProc struct {
	c    *Composite
	name string
}

func (m methodProc) Name() string {
	return m.c.TypeName() + "." + m.name
}

func (m methodProc) Run(ctx *Context, args []Value) (Value, error) {
	return m.c.Invoke(m.name, args, ctx)
}

// capability runs the named capability method and returns its result,
// following chains of composites returned by the same method. The capability
// is absent if any instance on the chain lacks the method, the method fails,
// or the chain revisits an instance.
func (c *Composite) capability(name string) (Value, bool) {
	var seen contains.Set
	cur := c
	for {
		if !seen.Add(cur.id) || cur.coercing || !cur.HasMethod(name) {
			return nil, false
		}
		cur.coercing = true
		r, err := cur.Invoke(name, nil, cur.self)
		cur.coercing = false
		if err != nil {
			return nil, false
		}
		next, ok := r.(*Composite)
		if !ok {
			return r, true
		}
		cur = next
	}
}

// Literal returns the result of the LIT method, or the type name in angle
// brackets if there is none.
func (c *Composite) Literal() string {
	if s, ok := c.AsString(); ok {
		return s
	}
	return "<" + c.TypeName() + ">"
}

func (c *Composite) AsInt() (int64, bool) {
	v, ok := c.capability(IntMethod)
	if !ok {
		return 0, false
	}
	n, err := ToInt(v)
	return n, err == nil
}

func (c *Composite) AsFloat() (float64, bool) {
	v, ok := c.capability(FloatMethod)
	if !ok {
		return 0, false
	}
	f, err := ToFloat(v)
	return f, err == nil
}

func (c *Composite) AsString() (string, bool) {
	v, ok := c.capability(LitMethod)
	if !ok {
		return "", false
	}
	return ToString(v), true
}

func (c *Composite) AsList() ([]Value, bool) {
	v, ok := c.capability(ListMethod)
	if !ok {
		return nil, false
	}
	return ToList(v), true
}

func (c *Composite) AsMap() (map[string]Value, bool) {
	v, ok := c.capability(MapMethod)
	if !ok {
		return nil, false
	}
	return v.AsMap()
}

func (c *Composite) AsBlock() (Block, bool) {
	v, ok := c.capability(BlockMethod)
	if !ok {
		return Block{}, false
	}
	return v.AsBlock()
}

func (c *Composite) AsProc() (Proc, bool)            { return c, true }
func (c *Composite) AsComposite() (*Composite, bool) { return c, true }
func (c *Composite) IsRaw() bool                     { return false }
func (c *Composite) Target() Value                   { return nil }
