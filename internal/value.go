package internal

import (
	"sort"
	"strconv"
	"strings"
)

// Value is any Efecta datum. Every value has a canonical literal form; all
// other capabilities are optional, and a value reports their absence rather
// than failing. Coercion helpers such as ToInt use a capability when it is
// present and otherwise parse the literal form.
type Value interface {
	// Literal returns the value's canonical textual form.
	Literal() string

	AsInt() (int64, bool)
	AsFloat() (float64, bool)
	AsString() (string, bool)
	AsList() ([]Value, bool)
	AsMap() (map[string]Value, bool)
	AsBlock() (Block, bool)
	AsProc() (Proc, bool)
	AsComposite() (*Composite, bool)

	// IsRaw returns whether the value is an unresolved source token.
	IsRaw() bool
	// Target returns the value this one is really bound to, or nil if that
	// is the value itself. Use the package-level Target to resolve it.
	Target() Value
}

// A Tuple is the sequence of values produced by evaluating one block
// instance.
type Tuple []Value

// absent supplies the default, absent capabilities. Concrete value kinds
// embed it and override what they support.
type absent struct{}

func (absent) AsInt() (int64, bool)            { return 0, false }
func (absent) AsFloat() (float64, bool)        { return 0, false }
func (absent) AsString() (string, bool)        { return "", false }
func (absent) AsList() ([]Value, bool)         { return nil, false }
func (absent) AsMap() (map[string]Value, bool) { return nil, false }
func (absent) AsBlock() (Block, bool)          { return Block{}, false }
func (absent) AsProc() (Proc, bool)            { return nil, false }
func (absent) AsComposite() (*Composite, bool) { return nil, false }
func (absent) IsRaw() bool                     { return false }
func (absent) Target() Value                   { return nil }

// Target returns the value v is really bound to: v itself, or the value it
// redirects to, as for an Alias.
func Target(v Value) Value {
	if t := v.Target(); t != nil {
		return t
	}
	return v
}

// Void is the value of nothing in particular. It is the default return value
// of every procedure.
type Void struct{ absent }

// Literal returns the empty string.
func (Void) Literal() string { return "" }

// Int is an integer value.
type Int struct {
	absent
	V int64
}

func (i Int) Literal() string          { return strconv.FormatInt(i.V, 10) }
func (i Int) AsInt() (int64, bool)     { return i.V, true }
func (i Int) AsFloat() (float64, bool) { return float64(i.V), true }

// Float is a floating-point value.
type Float struct {
	absent
	V float64
}

func (f Float) Literal() string          { return strconv.FormatFloat(f.V, 'g', -1, 64) }
func (f Float) AsFloat() (float64, bool) { return f.V, true }

// String is a resolved string value.
type String struct {
	absent
	S string
}

func (s String) Literal() string          { return s.S }
func (s String) AsString() (string, bool) { return s.S, true }

// Literal is a token taken directly from source text that has not been
// interpreted. Parameter resolution only substitutes variable references for
// raw literals.
type Literal struct {
	absent
	S string
}

func (l Literal) Literal() string          { return l.S }
func (l Literal) AsString() (string, bool) { return l.S, true }
func (l Literal) IsRaw() bool              { return true }

// Literals wraps each token as a raw Literal.
func Literals(tokens []string) Tuple {
	r := make(Tuple, len(tokens))
	for i, tok := range tokens {
		r[i] = Literal{S: tok}
	}
	return r
}

// List is an ordered list of values. Procedures never modify a List in
// place.
type List struct {
	absent
	Items []Value
}

// Literal returns the literals of the list's items, separated by spaces and
// surrounded by brackets.
func (l List) Literal() string {
	s := make([]string, len(l.Items))
	for i, v := range l.Items {
		s[i] = v.Literal()
	}
	return "[" + strings.Join(s, " ") + "]"
}

func (l List) AsList() ([]Value, bool) { return l.Items, true }

// Map is a string-keyed map of values. Procedures never modify a Map in
// place.
type Map struct {
	absent
	Items map[string]Value
}

// Literal returns the map's key:value pairs in key order, surrounded by
// braces.
func (m Map) Literal() string {
	keys := m.Keys()
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = k + ":" + m.Items[k].Literal()
	}
	return "{" + strings.Join(s, " ") + "}"
}

func (m Map) AsMap() (map[string]Value, bool) { return m.Items, true }

// Keys returns the map's keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m.Items))
	for k := range m.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Deferred is a block frozen from execution. Deferred blocks are only run
// when a procedure explicitly unwraps and runs them.
type Deferred struct {
	absent
	// Body holds the block's label as its only token and the deferred
	// statements as its children.
	Body Block
}

// Literal returns the defer marker followed by the block's label.
func (d Deferred) Literal() string { return DeferMarker + " " + d.Body.Head() }

func (d Deferred) AsBlock() (Block, bool) { return d.Body, true }

// ProcValue is a first-class reference to an invocable.
type ProcValue struct {
	absent
	P Proc
}

// Literal returns "PROC" followed by the procedure's name.
func (p ProcValue) Literal() string { return "PROC " + p.P.Name() }

func (p ProcValue) AsProc() (Proc, bool) { return p.P, true }

// Alias presents the capabilities of one value while being invocable through
// another. It realizes references to bound procedures that keep the apparent
// type of the underlying datum.
type Alias struct {
	// Value supplies every capability except invocability.
	Value Value
	// Callee supplies invocability and is the alias's target.
	Callee Value
}

func (a Alias) Literal() string                 { return a.Value.Literal() }
func (a Alias) AsInt() (int64, bool)            { return a.Value.AsInt() }
func (a Alias) AsFloat() (float64, bool)        { return a.Value.AsFloat() }
func (a Alias) AsString() (string, bool)        { return a.Value.AsString() }
func (a Alias) AsList() ([]Value, bool)         { return a.Value.AsList() }
func (a Alias) AsMap() (map[string]Value, bool) { return a.Value.AsMap() }
func (a Alias) AsBlock() (Block, bool)          { return a.Value.AsBlock() }
func (a Alias) AsProc() (Proc, bool)            { return a.Callee.AsProc() }
func (a Alias) AsComposite() (*Composite, bool) { return a.Value.AsComposite() }
func (a Alias) IsRaw() bool                     { return a.Value.IsRaw() }
func (a Alias) Target() Value                   { return a.Callee }

// Fan is a set of tuples returned from a procedure. When an invocation
// produces a Fan, the evaluator contributes each of its tuples separately
// instead of a single one-element tuple, which is what makes nested blocks
// iterate.
type Fan struct {
	absent
	Tuples []Tuple
}

// Literal returns the fan's tuples rendered as lists.
func (f Fan) Literal() string {
	return List{Items: f.values()}.Literal()
}

// AsList returns the fan's tuples, each collapsed to a single value.
func (f Fan) AsList() ([]Value, bool) { return f.values(), true }

func (f Fan) values() []Value {
	r := make([]Value, len(f.Tuples))
	for i, t := range f.Tuples {
		r[i] = collapse(t)
	}
	return r
}

// collapse turns a tuple into one value: Void if it is empty, its element if
// it has one, or a List of its elements otherwise.
func collapse(t Tuple) Value {
	switch len(t) {
	case 0:
		return Void{}
	case 1:
		return t[0]
	default:
		return List{Items: append([]Value(nil), t...)}
	}
}

// CopyValue returns an independent copy of v. Lists and maps are copied
// deeply; composite instances are shared, as are all immutable kinds.
func CopyValue(v Value) Value {
	switch x := v.(type) {
	case List:
		items := make([]Value, len(x.Items))
		for i, item := range x.Items {
			items[i] = CopyValue(item)
		}
		return List{Items: items}
	case Map:
		items := make(map[string]Value, len(x.Items))
		for k, item := range x.Items {
			items[k] = CopyValue(item)
		}
		return Map{Items: items}
	case Alias:
		return Alias{Value: CopyValue(x.Value), Callee: x.Callee}
	default:
		return v
	}
}

// TypeName returns a name for the kind of v, used in error messages.
func TypeName(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case Void:
		return "Void"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case Literal:
		return "Literal"
	case List:
		return "List"
	case Map:
		return "Map"
	case Deferred:
		return "Block"
	case ProcValue:
		return "Proc"
	case *Composite:
		return x.TypeName()
	case Alias:
		return TypeName(x.Value)
	case Fan:
		return "Fan"
	default:
		return "Value"
	}
}
