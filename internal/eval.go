package internal

// Evaluate evaluates a block in a context, producing zero or more argument
// tuples.
//
// In statement position, or when the block's head is the force or dynamic
// marker, the block is a call: its head names a procedure, which is invoked
// once per combination of its children's tuples with the block's remaining
// tokens as the argument prefix. Otherwise the block is a plain tuple of its
// own tokens, again joined with every combination of its children's tuples.
// A block headed by the defer marker evaluates to a single Deferred value and
// is not executed.
//
// Combinations are formed as a cartesian product in nested-loop order: the
// first child varies slowest, and each child's tuples are taken in the order
// it produced them.
func Evaluate(b Block, ctx *Context, statement bool) ([]Tuple, error) {
	if len(b.Data) == 0 {
		return nil, NewErrorf(StructureError, "empty block at line %d", b.Line)
	}
	head := b.Data[0]
	if head == DeferMarker {
		if len(b.Data) != 2 {
			return nil, NewErrorf(StructureError, "%s must be followed just by one argument (line %d)", DeferMarker, b.Line)
		}
		body := Block{Data: []string{b.Data[1]}, Subs: b.Clone().Subs, Line: b.Line}
		return []Tuple{{Deferred{Body: body}}}, nil
	}
	x := 0
	if head == ForceMarker || head == DynamicMarker {
		x = 1
		if head == ForceMarker && statement {
			return nil, NewErrorf(StructureError, "not necessary execution specifier (line %d)", b.Line)
		}
		if len(b.Data) < 2 {
			return nil, NewErrorf(StructureError, "%s must be followed by a name (line %d)", head, b.Line)
		}
	}
	if statement || x == 1 {
		return call(b, ctx, x)
	}
	own := Literals(b.Data)
	if len(b.Subs) == 0 {
		return []Tuple{own}, nil
	}
	sets, err := evalSubs(b.Subs, ctx)
	if err != nil {
		return nil, err
	}
	var total []Tuple
	err = cartesian(sets, func(t Tuple) error {
		total = append(total, join(own, t))
		return nil
	})
	return total, err
}

// call evaluates a block in call form. x is the index of the procedure name.
func call(b Block, ctx *Context, x int) ([]Tuple, error) {
	vm := ctx.VM
	dynamic := x == 1 && b.Data[0] == DynamicMarker
	p, err := vm.Resolve(ctx, dynamic, b.Data[x])
	if err != nil {
		return nil, err
	}
	prefix := Literals(b.Data[x+1:])
	if dynamic {
		// The receiver convention: the variable's target precedes the
		// literal arguments.
		recv, _ := ctx.Get(b.Data[x])
		prefix = join(Tuple{Target(recv)}, prefix)
	}
	var result []Tuple
	invoke := func(args Tuple) error {
		args, err := resolveParams(ctx, args)
		if err != nil {
			return err
		}
		r, err := vm.Invoke(ctx, p, args)
		if err != nil {
			return err
		}
		result = appendResult(result, r)
		return nil
	}
	if len(b.Subs) == 0 {
		if err := invoke(prefix); err != nil {
			return nil, err
		}
		return result, nil
	}
	sets, err := evalSubs(b.Subs, ctx)
	if err != nil {
		return nil, err
	}
	err = cartesian(sets, func(t Tuple) error {
		return invoke(join(prefix, t))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// evalSubs evaluates each child block in expression position, in order.
func evalSubs(subs []Block, ctx *Context) ([][]Tuple, error) {
	sets := make([][]Tuple, len(subs))
	for i, sub := range subs {
		ts, err := Evaluate(sub, ctx, false)
		if err != nil {
			return nil, err
		}
		sets[i] = ts
	}
	return sets, nil
}

// cartesian calls emit with the concatenation of every combination of one
// tuple from each set, with the first set varying slowest.
func cartesian(sets [][]Tuple, emit func(Tuple) error) error {
	var rec func(i int, acc Tuple) error
	rec = func(i int, acc Tuple) error {
		if i == len(sets) {
			return emit(acc)
		}
		for _, t := range sets[i] {
			if err := rec(i+1, join(acc, t)); err != nil {
				return err
			}
		}
		return nil
	}
	return rec(0, nil)
}

// join returns a new tuple holding the elements of a followed by those of b.
func join(a, b Tuple) Tuple {
	r := make(Tuple, 0, len(a)+len(b))
	r = append(r, a...)
	return append(r, b...)
}

// appendResult adds the tuples contributed by one invocation result: each
// tuple of a non-empty Fan, or a single one-element tuple otherwise. An
// invocation always contributes at least one tuple, so an empty Fan becomes
// a single Void.
func appendResult(result []Tuple, r Value) []Tuple {
	if f, ok := r.(Fan); ok {
		if len(f.Tuples) == 0 {
			return append(result, Tuple{Void{}})
		}
		for _, t := range f.Tuples {
			result = append(result, join(nil, t))
		}
		return result
	}
	return append(result, Tuple{r})
}

// resolveParams substitutes variable references in an argument tuple. A raw
// token equal to the dynamic or reference marker makes the following element
// a variable name; the variable's value replaces both. If there is no such
// variable, the name is invoked as a procedure with no arguments and its
// result is used instead. All other elements pass through unchanged.
func resolveParams(ctx *Context, args Tuple) (Tuple, error) {
	r := make(Tuple, 0, len(args))
	for i := 0; i < len(args); i++ {
		v := args[i]
		if !v.IsRaw() || (v.Literal() != DynamicMarker && v.Literal() != RefMarker) {
			r = append(r, v)
			continue
		}
		i++
		if i >= len(args) {
			return nil, NewErrorf(StructureError, "%s must be followed by a variable name", v.Literal())
		}
		name := args[i].Literal()
		if val, ok := ctx.Get(name); ok {
			r = append(r, val)
			continue
		}
		p, err := ctx.VM.Resolve(ctx, false, name)
		if err != nil {
			return nil, NewErrorf(NotFoundError, "%s is neither a variable nor a proc", name)
		}
		val, err := ctx.VM.Invoke(ctx, p, nil)
		if err != nil {
			return nil, err
		}
		r = append(r, val)
	}
	return r, nil
}

// RunNamed runs each child of b as a statement in ctx, stopping early if the
// continuation flag is cleared. The result is the last tuple produced by the
// last statement run, collapsed to a single value.
func RunNamed(b Block, ctx *Context) (Value, error) {
	var last Tuple
	for _, sub := range b.Subs {
		ts, err := Evaluate(sub, ctx, true)
		if err != nil {
			return nil, err
		}
		last = nil
		if len(ts) > 0 {
			last = ts[len(ts)-1]
		}
		if !ctx.Running {
			break
		}
	}
	return collapse(last), nil
}

// RunChild runs a deferred block in a child of ctx and pours the child back
// into ctx. It is the scoping primitive used by control-flow procedures.
func RunChild(b Block, ctx *Context) (Value, error) {
	child := ctx.Clone()
	r, err := RunNamed(b, child)
	if err != nil {
		return nil, err
	}
	ctx.Pour(child)
	return r, nil
}
