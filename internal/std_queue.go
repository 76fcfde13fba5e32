package internal

// initQueue installs the queue procedures.
func (vm *VM) initQueue() {
	vm.Install(Procs{
		"PUSH":    QueuePush,
		"RECEIVE": QueueReceive,
	})
}

// QueuePush is a queue procedure.
//
// PUSH adds its arguments to the back of the context's queue.
func QueuePush(vm *VM, ctx *Context, args []Value) (Value, error) {
	ctx.Push(args...)
	return Void{}, nil
}

// QueueReceive is a queue procedure.
//
// RECEIVE removes and returns the value at the front of the context's queue.
func QueueReceive(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("RECEIVE", args, 0); err != nil {
		return nil, err
	}
	return ctx.Receive()
}
