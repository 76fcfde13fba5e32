package internal

import (
	"io"
	"os"
	"sort"
	"time"
)

// Version is the interpreter version reported by SYSTEM.
const Version = "1"

// VM is an object for running Efecta programs.
type VM struct {
	// procs is the ordered set of invocables. Standard procedures come
	// first, followed by core extensions and then user procedures.
	procs []Proc

	// Stdout receives the output of DISPLAY.
	Stdout io.Writer
	// Stdin is the source of operator input.
	Stdin io.Reader
	// Trace, if not nil, receives a line for each invocation.
	Trace io.Writer

	// Config holds the VM's settings.
	Config Config

	// StartTime is the time at which VM initialization began.
	StartTime time.Time
}

// NewVM prepares a new VM to run Efecta programs using the given settings.
func NewVM(cfg Config) *VM {
	haveVM = true

	vm := VM{
		Stdout:    os.Stdout,
		Stdin:     os.Stdin,
		Config:    cfg,
		StartTime: time.Now(),
	}
	if cfg.Trace {
		vm.Trace = os.Stderr
	}

	// Registration order only matters for shadowing, and standard
	// procedures have distinct names, so the groups may come in any order.
	// Extensions follow so that they can replace standard procedures.
	vm.initCore()
	vm.initMath()
	vm.initTypes()
	vm.initList()
	vm.initMap()
	vm.initQueue()
	vm.initControl()
	vm.initComposite()
	vm.initSystem()

	for _, ext := range coreExt {
		ext(&vm)
	}

	return &vm
}

// Procs is a table of procedure bodies by name.
type Procs map[string]Fn

// Install registers procedures in name order. Procedures named in the VM's
// Disable setting are skipped. Installed procedures shadow any earlier ones
// with the same names.
func (vm *VM) Install(procs Procs) {
	names := make([]string, 0, len(procs))
	for name := range procs {
		if !vm.Config.disabled(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		vm.procs = append(vm.procs, NewCProc(name, procs[name]))
	}
}

// Load registers a program's user procedures after all procedures already
// known to the VM.
func (vm *VM) Load(prog *Program) {
	for _, p := range prog.Procs {
		vm.procs = append(vm.procs, p)
	}
}

// Run invokes a program's entry procedure with args as raw literals. The
// program should already be loaded so that its procedures can call each
// other. The returned error is nil exactly when the entry procedure completes
// without error.
func (vm *VM) Run(prog *Program, args []string) error {
	_, err := vm.Call(prog, args)
	return err
}

// Call is like Run, but it also returns the entry procedure's result.
func (vm *VM) Call(prog *Program, args []string) (Value, error) {
	var entry Proc
	for _, p := range prog.Procs {
		if p.Name() == prog.Entry {
			entry = p
		}
	}
	if entry == nil {
		return nil, NewErrorf(NotFoundError, "%s proc not found", prog.Entry)
	}
	tup := Literals(args)
	ctx := vm.NewContext(tup)
	return vm.Invoke(ctx, entry, tup)
}

// Exec parses, loads, and runs a program in one step.
func (vm *VM) Exec(src io.Reader, args []string) error {
	prog, err := vm.Parse(src)
	if err != nil {
		return err
	}
	vm.Load(prog)
	return vm.Run(prog, args)
}

// Register registers a core extension. Each function is called in the order it
// is registered; extensions that depend on other extensions need only import
// them. Register should be called from within init funcs. Panics if NewVM has
// been called.
func Register(f func(*VM)) {
	if haveVM {
		panic("efecta/internal: Register must be called before any VM is created")
	}
	coreExt = append(coreExt, f)
}

// coreExt is a list of core extensions that have been registered.
var coreExt = make([]func(*VM), 0, 4)

// haveVM becomes true once NewVM has been called.
var haveVM = false
