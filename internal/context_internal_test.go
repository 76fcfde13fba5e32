package internal

import (
	"errors"
	"testing"
)

func TestContextPour(t *testing.T) {
	vm := NewVM(DefaultConfig()) // Not testutils; that would cause an import cycle.
	parent := vm.NewContext(nil)
	parent.Set("kept", Literal{S: "old"})
	parent.Set("list", List{Items: []Value{Literal{S: "a"}}})
	child := parent.Clone()
	child.Set("kept", Literal{S: "new"})
	child.Set("fresh", Literal{S: "x"})
	child.Push(Literal{S: "q"})
	child.Ret = Literal{S: "r"}
	child.Running = false
	// Modifying the child's copy of a list must not affect the parent until
	// the child is poured.
	l := child.Vars["list"].(List)
	l.Items[0] = Literal{S: "b"}
	if v, _ := parent.Get("list"); v.Literal() != "[a]" {
		t.Errorf("clone shares list storage: parent has %s", v.Literal())
	}

	parent.Pour(child)
	if v, _ := parent.Get("kept"); v.Literal() != "new" {
		t.Errorf("existing variable not updated: have %q", v.Literal())
	}
	if parent.Has("fresh") {
		t.Error("new variable survived pour")
	}
	if v, _ := parent.Get("list"); v.Literal() != "[b]" {
		t.Errorf("list not updated: have %s", v.Literal())
	}
	if parent.Ret.Literal() != "r" {
		t.Errorf("return register not poured: have %q", parent.Ret.Literal())
	}
	if parent.Running {
		t.Error("continuation flag not poured")
	}
	v, err := parent.Receive()
	if err != nil {
		t.Fatal(err)
	}
	if v.Literal() != "q" {
		t.Errorf("queue not poured: received %q", v.Literal())
	}
}

func TestContextReceive(t *testing.T) {
	vm := NewVM(DefaultConfig())
	ctx := vm.NewContext(nil)
	ctx.Push(Literal{S: "a"}, Literal{S: "b"})
	ctx.Push(Literal{S: "c"})
	for _, want := range []string{"a", "b", "c"} {
		v, err := ctx.Receive()
		if err != nil {
			t.Fatal(err)
		}
		if v.Literal() != want {
			t.Errorf("wrong value: want %q, have %q", want, v.Literal())
		}
	}
	if _, err := ctx.Receive(); !errors.Is(err, NotFoundError) {
		t.Errorf("wrong error from empty queue: %v", err)
	}
}

func TestContextArgs(t *testing.T) {
	vm := NewVM(DefaultConfig())
	ctx := vm.NewContext([]Value{Literal{S: "x"}, Int{V: 2}})
	args := ctx.Args()
	if len(args) != 2 || args[0].Literal() != "x" || args[1].Literal() != "2" {
		t.Errorf("wrong args: %v", args)
	}
	if _, err := ctx.Lookup("nothing"); !errors.Is(err, NotFoundError) {
		t.Errorf("wrong error for missing variable: %v", err)
	}
}
