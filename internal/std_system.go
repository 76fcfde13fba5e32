package internal

import (
	"runtime"
	"time"
)

// initSystem installs procedures describing the interpreter and platform.
func (vm *VM) initSystem() {
	vm.Install(Procs{
		"SYSTEM": SystemInfo,
		"UPTIME": SystemUptime,
	})
}

// SystemInfo is a system procedure.
//
// SYSTEM returns a map describing the interpreter and the platform it runs
// on, with keys arch, os, platform, and version.
func SystemInfo(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("SYSTEM", args, 0); err != nil {
		return nil, err
	}
	return Map{Items: map[string]Value{
		"arch":     String{S: runtime.GOARCH},
		"os":       String{S: runtime.GOOS},
		"platform": String{S: platformVersion()},
		"version":  String{S: Version},
	}}, nil
}

// SystemUptime is a system procedure.
//
// UPTIME returns the number of seconds since the VM was created.
func SystemUptime(vm *VM, ctx *Context, args []Value) (Value, error) {
	if err := AssertArgCount("UPTIME", args, 0); err != nil {
		return nil, err
	}
	return Float{V: time.Since(vm.StartTime).Seconds()}, nil
}
