package internal

import (
	"fmt"
	"strings"
)

// traceCall does nothing if tracing is disabled for the VM; otherwise, it
// writes the invocation to the trace writer, indented by depth.
func (vm *VM) traceCall(ctx *Context, name string, args []Value) {
	if vm.Trace != nil {
		vm.traceCallSlow(ctx, name, args)
	}
}

// traceCallSlow is an outlined path of traceCall.
func (vm *VM) traceCallSlow(ctx *Context, name string, args []Value) {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", ctx.Depth))
	b.WriteString(name)
	for _, arg := range args {
		b.WriteByte(' ')
		b.WriteString(arg.Literal())
	}
	// Trace output is best effort.
	fmt.Fprintln(vm.Trace, b.String())
}
