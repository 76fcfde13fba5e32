package internal

import (
	"strconv"
	"unicode/utf8"
)

// trueTokens and falseTokens are the literal forms accepted as booleans.
var (
	trueTokens  = map[string]bool{"T": true, "TRUE": true, "t": true, "true": true, "True": true}
	falseTokens = map[string]bool{"F": true, "FALSE": true, "f": true, "false": true, "False": true}
)

// Canonical boolean values returned by comparison procedures.
var (
	True  = String{S: "TRUE"}
	False = String{S: "FALSE"}
)

// Bool converts a Go bool to the canonical boolean value.
func Bool(c bool) Value {
	if c {
		return True
	}
	return False
}

// typeMismatch creates a type error describing a failed coercion.
func typeMismatch(want string, v Value) error {
	return NewErrorf(TypeError, "%s type expected, have %s %q", want, TypeName(v), v.Literal())
}

// ToInt coerces v to an integer, parsing its literal form if it lacks the
// integer capability.
func ToInt(v Value) (int64, error) {
	if n, ok := v.AsInt(); ok {
		return n, nil
	}
	n, err := strconv.ParseInt(v.Literal(), 10, 64)
	if err != nil {
		return 0, typeMismatch("Integer", v)
	}
	return n, nil
}

// ToFloat coerces v to a float, parsing its literal form if it lacks the
// float capability.
func ToFloat(v Value) (float64, error) {
	if f, ok := v.AsFloat(); ok {
		return f, nil
	}
	f, err := strconv.ParseFloat(v.Literal(), 64)
	if err != nil {
		return 0, typeMismatch("Float", v)
	}
	return f, nil
}

// ToString returns v's string capability, or its literal form.
func ToString(v Value) string {
	if s, ok := v.AsString(); ok {
		return s
	}
	return v.Literal()
}

// ToChar coerces v to a single character.
func ToChar(v Value) (rune, error) {
	s := ToString(v)
	if utf8.RuneCountInString(s) != 1 {
		return 0, typeMismatch("Char", v)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// ToBool coerces v to a boolean using the accepted true and false token sets.
func ToBool(v Value) (bool, error) {
	s := v.Literal()
	switch {
	case trueTokens[s]:
		return true, nil
	case falseTokens[s]:
		return false, nil
	}
	return false, typeMismatch("Boolean", v)
}

// ToList coerces v to a list. A value without the list capability becomes a
// list holding only itself.
func ToList(v Value) []Value {
	if l, ok := v.AsList(); ok {
		return l
	}
	return []Value{v}
}

// ToMap returns v's map capability or a type error.
func ToMap(v Value) (map[string]Value, error) {
	if m, ok := v.AsMap(); ok {
		return m, nil
	}
	return nil, typeMismatch("Map", v)
}

// ToBlock returns v's deferred block capability or a type error.
func ToBlock(v Value) (Block, error) {
	if b, ok := v.AsBlock(); ok {
		return b, nil
	}
	return Block{}, typeMismatch("Block", v)
}

// ToProc returns v's invocable capability or a type error.
func ToProc(v Value) (Proc, error) {
	if p, ok := v.AsProc(); ok {
		return p, nil
	}
	return nil, typeMismatch("Proc", v)
}

// ToComposite returns v's composite capability or a type error.
func ToComposite(v Value) (*Composite, error) {
	if c, ok := v.AsComposite(); ok {
		return c, nil
	}
	return nil, typeMismatch("Composite", v)
}

// IsVoid returns whether v is Void.
func IsVoid(v Value) bool {
	_, ok := v.(Void)
	return ok || v == nil
}
