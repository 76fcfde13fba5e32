package internal

// initMap installs map procedures. Like lists, maps are never modified in
// place.
func (vm *VM) initMap() {
	vm.Install(Procs{
		"KEY":  MapKey,
		"KEYS": MapKeys,
		"MAP":  MapNew,
		"PUT":  MapPut,
	})
}

// MapNew is a map procedure.
//
// MAP returns a map of alternating key and value arguments.
func MapNew(vm *VM, ctx *Context, args []Value) (Value, error) {
	if len(args)%2 != 0 {
		return nil, NewErrorf(ArityError, "MAP expects pairs of arguments, got %d", len(args))
	}
	m := make(map[string]Value, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		m[ToString(args[i])] = args[i+1]
	}
	return Map{Items: m}, nil
}

// MapPut is a map procedure.
//
// PUT returns a copy of a map with a key set to a value.
func MapPut(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("PUT", args, 3); err != nil {
		return nil, err
	}
	m, err := ToMap(args[0])
	if err != nil {
		return nil, err
	}
	r := make(map[string]Value, len(m)+1)
	for k, v := range m {
		r[k] = v
	}
	r[ToString(args[1])] = args[2]
	return Map{Items: r}, nil
}

// MapKey is a map procedure.
//
// KEY returns the value of a map at a key.
func MapKey(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("KEY", args, 2); err != nil {
		return nil, err
	}
	m, err := ToMap(args[0])
	if err != nil {
		return nil, err
	}
	k := ToString(args[1])
	v, ok := m[k]
	if !ok {
		return nil, NewErrorf(NotFoundError, "key %s not found", k)
	}
	return v, nil
}

// MapKeys is a map procedure.
//
// KEYS returns the keys of a map as a sorted list.
func MapKeys(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("KEYS", args, 1); err != nil {
		return nil, err
	}
	m, err := ToMap(args[0])
	if err != nil {
		return nil, err
	}
	keys := Map{Items: m}.Keys()
	r := make([]Value, len(keys))
	for i, k := range keys {
		r[i] = String{S: k}
	}
	return List{Items: r}, nil
}
