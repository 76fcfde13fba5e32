package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zephyrtronium/efecta"
	"github.com/zephyrtronium/efecta/testutils"
)

// TestRun tests the exit status and output of running program files.
func TestRun(t *testing.T) {
	dir, err := ioutil.TempDir("", "efecta")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	cases := map[string]struct {
		src    string
		args   []string
		status int
		out    string
		errout string
	}{
		"Success": {
			src:    testutils.Program("DISPLAY 5"),
			status: 0,
			out:    "5\n",
		},
		"Args": {
			src:    testutils.Program(testutils.Lines("DISPLAY", "\t* ARG 1")),
			args:   []string{"a", "b"},
			status: 0,
			out:    "b\n",
		},
		"Failure": {
			src:    testutils.Program("NOPE"),
			status: 1,
			errout: "Error:",
		},
		"Malformed": {
			src:    "ENTER-IN MAIN\n",
			status: 1,
			errout: "Error:",
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			file := filepath.Join(dir, name+".esf")
			if err := ioutil.WriteFile(file, []byte(c.src), 0644); err != nil {
				t.Fatal(err)
			}
			var stdout, stderr bytes.Buffer
			status := run(efecta.DefaultConfig(), file, c.args, &stdout, &stderr)
			if status != c.status {
				t.Errorf("wrong status: want %d, have %d (stderr %q)", c.status, status, stderr.String())
			}
			if stdout.String() != c.out {
				t.Errorf("wrong output: want %q, have %q", c.out, stdout.String())
			}
			if !strings.HasPrefix(stderr.String(), c.errout) {
				t.Errorf("wrong error output: want prefix %q, have %q", c.errout, stderr.String())
			}
			if c.errout == "" && stderr.Len() != 0 {
				t.Errorf("unexpected error output: %q", stderr.String())
			}
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "efecta")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	var stdout, stderr bytes.Buffer
	if status := run(efecta.DefaultConfig(), filepath.Join(dir, "missing.esf"), nil, &stdout, &stderr); status != 1 {
		t.Errorf("wrong status: want 1, have %d", status)
	}
	if !strings.HasPrefix(stderr.String(), "Error:") {
		t.Errorf("wrong error output: %q", stderr.String())
	}
}
