/*
Package efecta implements an interpreter for Efecta, a small
indentation-structured scripting language whose only primitive is invoking a
named procedure with a tuple of arguments.

Everything else, including conditionals, iteration, and user-defined types, is
built from that one mechanism plus deferred blocks, which are pieces of code
frozen as values until a procedure chooses to run them.

To run a program, create a VM with NewVM and call its Exec method with the
program source:

	vm := efecta.NewVM(efecta.DefaultConfig())
	err := vm.Exec(strings.NewReader(src), os.Args[1:])

The VM's Stdout and Stdin fields can be replaced before running to redirect
program input and output.

Efecta Primer

A program is a sequence of lines. Leading tabs give a line's depth; a line is
a child of the closest preceding line one level shallower. Tokens on a line
are separated by spaces. A semicolon starts a comment, and # makes the rest of
the line a single token.

	PROGRAM-ID HELLO
	ENTER-IN MAIN
	PROC MAIN
		DISPLAY #Hello, world!

The first two lines name the program and its entry procedure. Every following
top-level line declares a procedure, and that line's children are the
procedure's statements.

Each statement names a procedure to invoke, followed by arguments. Child lines
of a statement supply more arguments. A child line is not executed unless it
begins with the force marker *; otherwise its tokens are passed as they are:

	DISPLAY
		* ADD 2 3

prints 5. When children produce several values, the statement runs once for
every combination of them. EACH and RANGE produce several values, so

	DISPLAY
		* RANGE 0 3

prints 0, 1, and 2 on separate lines.

Inside an argument list, & NAME is replaced by the value of the variable NAME.
A statement beginning with $ NAME invokes the value of the variable NAME, with
that value as the first argument, which is how methods of composite values are
called. A line beginning with @ LABEL is a deferred block: its children are not
run until a procedure such as IF, RUN, WHILE, or METHOD uses it.

	PROC MAIN
		SET n 0
		IF
			* LT & n 1
			@ THEN
				SET n 1
		DISPLAY & n

Nested blocks run in a copy of their surroundings which is merged back
afterward. Variables that existed before the block keep changes made inside
it, but variables first created inside it disappear.

Composite values are created with NEW and given methods with METHOD and state
with FIELD. A composite is shared by everything that holds it.

Extensions

Additional procedures can be registered with Register, typically from an init
function in a package imported for its side effects. The coreext package
imports all extensions that ship with the interpreter.
*/
package efecta

import (
	"github.com/zephyrtronium/efecta/internal"
)

// VM is an object for running Efecta programs.
type VM = internal.VM

// Context is the mutable state of one procedure invocation.
type Context = internal.Context

// Config holds the settings of a VM.
type Config = internal.Config

// A Block is the structural unit of Efecta source: tokens and child blocks.
type Block = internal.Block

// Program is an assembled Efecta program.
type Program = internal.Program

// Value is any Efecta datum.
type Value = internal.Value

// A Tuple is the sequence of values produced by evaluating one block.
type Tuple = internal.Tuple

// Proc is anything that can be invoked by name with a tuple of arguments.
type Proc = internal.Proc

// An Fn is a statically compiled procedure body.
type Fn = internal.Fn

// Procs is a table of procedure bodies by name, for VM.Install.
type Procs = internal.Procs

// A Composite is an instance of a user-defined type.
type Composite = internal.Composite

// Error is an error raised while assembling or running an Efecta program.
type Error = internal.Error

// ErrorKind classifies an Error.
type ErrorKind = internal.ErrorKind

// Value kinds.
type (
	Void      = internal.Void
	Int       = internal.Int
	Float     = internal.Float
	String    = internal.String
	Literal   = internal.Literal
	List      = internal.List
	Map       = internal.Map
	Deferred  = internal.Deferred
	ProcValue = internal.ProcValue
	Alias     = internal.Alias
	Fan       = internal.Fan
)

// Error kinds.
const (
	StructureError = internal.StructureError
	NotFoundError  = internal.NotFoundError
	TypeError      = internal.TypeError
	ArityError     = internal.ArityError
	LimitError     = internal.LimitError
	ConfigError    = internal.ConfigError
)

// Canonical boolean values.
var (
	True  = internal.True
	False = internal.False
)

// NewVM prepares a new VM to run Efecta programs using the given settings.
func NewVM(cfg Config) *VM {
	return internal.NewVM(cfg)
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// LoadConfig reads settings from a YAML file. If the file does not exist and
// optional is true, the defaults are returned.
func LoadConfig(path string, optional bool) (Config, error) {
	return internal.LoadConfig(path, optional)
}

// Register registers a core extension. Each function is called in the order it
// is registered when a VM is created. Register should be called from within
// init funcs. Panics if NewVM has been called.
func Register(f func(*VM)) {
	internal.Register(f)
}

// AssertArgCount returns an arity error if args does not have exactly n
// elements.
func AssertArgCount(name string, args []Value, n int) error {
	return internal.AssertArgCount(name, args, n)
}

// AssertArgRange returns an arity error if args has fewer than min or more
// than max elements. A negative max means no upper bound.
func AssertArgRange(name string, args []Value, min, max int) error {
	return internal.AssertArgRange(name, args, min, max)
}

// ToString returns a value's string capability, or its literal form.
func ToString(v Value) string {
	return internal.ToString(v)
}

// TypeName returns a name for the kind of a value.
func TypeName(v Value) string {
	return internal.TypeName(v)
}
