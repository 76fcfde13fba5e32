// Package testutils provides utilities for testing Efecta code in Go.
package testutils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/zephyrtronium/efecta"
)

// testVM is the VM used for tests that do not run programs.
var testVM *efecta.VM

var testVMInit sync.Once

// TestingVM returns a VM for testing Efecta. The VM is shared by all tests
// that use this package, so programs should not be loaded into it.
func TestingVM() *efecta.VM {
	testVMInit.Do(ResetTestingVM)
	return testVM
}

// ResetTestingVM reinitializes the VM returned by TestingVM. It is not safe to
// call this in parallel tests.
func ResetTestingVM() {
	testVM = efecta.NewVM(efecta.DefaultConfig())
}

// Lines joins lines of source with newlines.
func Lines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// Program returns a complete program whose MAIN procedure consists of the
// given statements.
func Program(body string) string {
	var b strings.Builder
	b.WriteString("PROGRAM-ID TEST\nENTER-IN MAIN\nPROC MAIN\n")
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		b.WriteString("\t")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// A SourceTestCase is a test case containing the statements of a MAIN
// procedure and predicates to check the result.
type SourceTestCase struct {
	// Source is the body of the MAIN procedure, without indentation.
	Source string
	// Args are the program arguments.
	Args []string
	// Output, if not empty, is the exact output the program must display.
	Output string
	// Pass is a predicate taking the return value of MAIN and the error
	// from running it. If Pass returns false, then the test fails. If Pass
	// is nil, then the test fails if any error occurs.
	Pass func(result efecta.Value, err error) bool
}

// TestFunc returns a test function for the test case. Each case runs in its
// own VM.
func (c SourceTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		vm := efecta.NewVM(efecta.DefaultConfig())
		var out bytes.Buffer
		vm.Stdout = &out
		vm.Stdin = strings.NewReader("")
		src := Program(c.Source)
		prog, err := vm.Parse(strings.NewReader(src))
		if err != nil {
			t.Fatalf("could not parse %q: %v", src, err)
		}
		vm.Load(prog)
		r, err := vm.Call(prog, c.Args)
		for _, msg := range c.check(r, err, out.String()) {
			t.Error(msg)
		}
	}
}

// check returns the reasons a run of the test case failed. Without a Pass
// predicate, any error fails the case.
func (c SourceTestCase) check(r efecta.Value, err error, out string) []string {
	var msgs []string
	if (c.Pass == nil && err != nil) || (c.Pass != nil && !c.Pass(r, err)) {
		if err != nil {
			msg := fmt.Sprintf("%q produced wrong result; an error occurred: %v", c.Source, err)
			var e *efecta.Error
			if errors.As(err, &e) {
				msg += "\ntrace:\n" + e.TraceString()
			}
			msgs = append(msgs, msg)
		} else {
			msgs = append(msgs, fmt.Sprintf("%q produced wrong result; got %s %q", c.Source, efecta.TypeName(r), r.Literal()))
		}
	}
	if c.Output != "" && out != c.Output {
		msgs = append(msgs, fmt.Sprintf("%q produced wrong output: want %q, have %q", c.Source, c.Output, out))
	}
	return msgs
}

// PassLiteral returns a Pass function for a SourceTestCase that predicates on
// the literal form of the result. If an error occurred, the predicate returns
// false.
func PassLiteral(want string) func(efecta.Value, error) bool {
	return func(result efecta.Value, err error) bool {
		return err == nil && result.Literal() == want
	}
}

// PassVoid returns a Pass function for a SourceTestCase that returns true iff
// the result is Void and no error occurred.
func PassVoid() func(efecta.Value, error) bool {
	return func(result efecta.Value, err error) bool {
		if err != nil {
			return false
		}
		_, ok := result.(efecta.Void)
		return ok
	}
}

// PassFailure returns a Pass function for a SourceTestCase that returns true
// iff an error of the given kind occurred.
func PassFailure(kind efecta.ErrorKind) func(efecta.Value, error) bool {
	return func(result efecta.Value, err error) bool {
		return errors.Is(err, kind)
	}
}

// PassSuccess returns a Pass function for a SourceTestCase that returns true
// iff no error occurred.
func PassSuccess() func(efecta.Value, error) bool {
	return func(result efecta.Value, err error) bool {
		return err == nil
	}
}

// CheckProcs is a testing helper to check that a VM has procedures with the
// given names.
func CheckProcs(t *testing.T, vm *efecta.VM, names []string) {
	t.Helper()
	for _, name := range names {
		t.Run("Have_"+name, func(t *testing.T) {
			if vm.Lookup(name) == nil {
				t.Fatal("no proc", name)
			}
		})
	}
}
