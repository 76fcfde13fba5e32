package accept

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/zephyrtronium/efecta"
	"github.com/zephyrtronium/efecta/testutils"
)

func TestRegister(t *testing.T) {
	testutils.CheckProcs(t, testutils.TestingVM(), []string{"ACCEPT"})
}

func TestPromptReader(t *testing.T) {
	r := strings.NewReader("abc\ndef\r\nghi")
	var w bytes.Buffer
	for _, want := range []string{"abc", "def", "ghi"} {
		line, err := promptReader(&w, r, "> ")
		if err != nil {
			t.Fatal(err)
		}
		if line != want {
			t.Errorf("wrong line: want %q, have %q", want, line)
		}
	}
	if w.String() != "> > > " {
		t.Errorf("wrong prompts: %q", w.String())
	}
	if _, err := promptReader(&w, r, ""); err != io.EOF {
		t.Errorf("wrong error at end of input: %v", err)
	}
}

func TestAccept(t *testing.T) {
	src := testutils.Lines(
		"PROGRAM-ID X",
		"ENTER-IN MAIN",
		"PROC MAIN",
		"\tSET a",
		"\t\t* ACCEPT",
		"\tSET b",
		"\t\t* ACCEPT #> ",
		"\tDISPLAY",
		"\t\t* CONCAT & a , & b",
		"\tRETURN",
		"\t\t* ACCEPT",
	)
	vm := efecta.NewVM(efecta.DefaultConfig())
	var out bytes.Buffer
	vm.Stdout = &out
	vm.Stdin = strings.NewReader("alice\nbob\n")
	prog, err := vm.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	vm.Load(prog)
	r, err := vm.Call(prog, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(efecta.Void); !ok {
		t.Errorf("wrong result at end of input: %s %q", efecta.TypeName(r), r.Literal())
	}
	want := "? > alice,bob\n? "
	if out.String() != want {
		t.Errorf("wrong output: want %q, have %q", want, out.String())
	}
}
