package internal

// initList installs list procedures. Lists are never modified in place;
// procedures that change a list return a new one.
func (vm *VM) initList() {
	vm.Install(Procs{
		"APPEND": ListAppend,
		"AT":     ListAt,
		"LEN":    ListLen,
		"LIST":   ListNew,
	})
}

// ListNew is a list procedure.
//
// LIST returns a list of its arguments.
func ListNew(vm *VM, ctx *Context, args []Value) (Value, error) {
	return List{Items: append([]Value(nil), args...)}, nil
}

// ListLen is a list procedure.
//
// LEN returns the number of elements of a list, the number of entries of a
// map, or the number of characters of anything else.
func ListLen(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("LEN", args, 1); err != nil {
		return nil, err
	}
	if l, ok := args[0].AsList(); ok {
		return Int{V: int64(len(l))}, nil
	}
	if m, ok := args[0].AsMap(); ok {
		return Int{V: int64(len(m))}, nil
	}
	return Int{V: int64(len([]rune(ToString(args[0]))))}, nil
}

// ListAt is a list procedure.
//
// AT returns the element of a list at an index counting from 0. Negative
// indices count from the end.
func ListAt(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("AT", args, 2); err != nil {
		return nil, err
	}
	l := ToList(args[0])
	n, err := ToInt(args[1])
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n += int64(len(l))
	}
	if n < 0 || n >= int64(len(l)) {
		return nil, NewErrorf(NotFoundError, "index %s out of range, have %d elements", args[1].Literal(), len(l))
	}
	return l[n], nil
}

// ListAppend is a list procedure.
//
// APPEND returns a new list holding the elements of its first argument
// followed by the remaining arguments.
func ListAppend(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgRange("APPEND", args, 1, -1); err != nil {
		return nil, err
	}
	l := ToList(args[0])
	r := make([]Value, 0, len(l)+len(args)-1)
	r = append(r, l...)
	r = append(r, args[1:]...)
	return List{Items: r}, nil
}
