package internal_test

import (
	"io/ioutil"
	"strings"
	"testing"

	"github.com/zephyrtronium/efecta"
	"github.com/zephyrtronium/efecta/testutils"
)

func TestBlockClone(t *testing.T) {
	b := efecta.Block{
		Data: []string{"a", "b"},
		Subs: []efecta.Block{{Data: []string{"c"}, Subs: []efecta.Block{{Data: []string{"d"}}}}},
		Line: 3,
	}
	c := b.Clone()
	c.Data[0] = "x"
	c.Subs[0].Data[0] = "y"
	c.Subs[0].Subs[0].Data[0] = "z"
	if b.Data[0] != "a" || b.Subs[0].Data[0] != "c" || b.Subs[0].Subs[0].Data[0] != "d" {
		t.Errorf("clone shares storage with original: %v", b)
	}
	if c.Line != 3 {
		t.Errorf("clone lost line number: %d", c.Line)
	}
}

func TestBlockHead(t *testing.T) {
	b := efecta.Block{Data: []string{"PROC", "MAIN"}}
	if !b.HeadIs("PROC") || b.HeadIs("MAIN") {
		t.Errorf("wrong HeadIs for %v", b.Data)
	}
	r, rest, ok := b.CutHead()
	if !ok || rest != 1 || r.Head() != "MAIN" {
		t.Errorf("wrong CutHead: %v %d %t", r.Data, rest, ok)
	}
	if b.Head() != "PROC" {
		t.Errorf("CutHead modified the block: %v", b.Data)
	}
	var empty efecta.Block
	if empty.Head() != "" || empty.HeadIs("") {
		t.Error("empty block has a head")
	}
	if _, _, ok := empty.CutHead(); ok {
		t.Error("cut head of empty block")
	}
}

func TestBlockString(t *testing.T) {
	b := efecta.Block{
		Data: []string{"IF", "TRUE"},
		Subs: []efecta.Block{{Data: []string{"@", "THEN"}, Subs: []efecta.Block{{Data: []string{"DISPLAY", "x"}}}}},
	}
	want := "IF TRUE\n\t@ THEN\n\t\tDISPLAY x"
	if b.String() != want {
		t.Errorf("wrong string: want %q, have %q", want, b.String())
	}
}

func BenchmarkLoop(b *testing.B) {
	vm := efecta.NewVM(efecta.DefaultConfig())
	vm.Stdout = ioutil.Discard
	src := testutils.Program(testutils.Lines(
		"SET n 0",
		"WHILE",
		"\t@ COND",
		"\t\tLT & n 100",
		"\t@ BODY",
		"\t\tSET n",
		"\t\t\t* ADD & n 1",
	))
	prog, err := vm.Parse(strings.NewReader(src))
	if err != nil {
		b.Fatal(err)
	}
	vm.Load(prog)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vm.Call(prog, nil); err != nil {
			b.Fatal(err)
		}
	}
}
