// Package accept provides the ACCEPT procedure, which reads a line of input
// from the operator.
package accept

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/zephyrtronium/efecta"
	"github.com/zephyrtronium/efecta/internal"
)

func init() {
	internal.Register(initAccept)
}

func initAccept(vm *efecta.VM) {
	vm.Install(efecta.Procs{"ACCEPT": accept})
}

// accept is an accept procedure.
//
// ACCEPT prompts for and returns one line of input, without its line
// terminator. The prompt defaults to the VM's configured prompt. When the VM
// reads from a terminal, the line can be edited. At the end of input, the
// result is Void.
func accept(vm *efecta.VM, ctx *efecta.Context, args []efecta.Value) (efecta.Value, error) {
	if err := efecta.AssertArgRange("ACCEPT", args, 0, 1); err != nil {
		return nil, err
	}
	prompt := vm.Config.Prompt
	if len(args) == 1 {
		prompt = efecta.ToString(args[0])
	}
	var line string
	var err error
	if vm.Stdin == os.Stdin && liner.TerminalSupported() {
		line, err = promptTerminal(prompt)
	} else {
		line, err = promptReader(vm.Stdout, vm.Stdin, prompt)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return efecta.Void{}, nil
		}
		return nil, fmt.Errorf("efecta: ACCEPT: %w", err)
	}
	return efecta.String{S: line}, nil
}

// promptTerminal reads a line with editing from the terminal.
func promptTerminal(prompt string) (string, error) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	line, err := ln.Prompt(prompt)
	if err == liner.ErrPromptAborted {
		return "", io.EOF
	}
	return line, err
}

// promptReader writes the prompt to w and reads a line from r one byte at a
// time, so that no input past the line is consumed.
func promptReader(w io.Writer, r io.Reader, prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(w, prompt); err != nil {
			return "", err
		}
	}
	var b strings.Builder
	var c [1]byte
	for {
		n, err := r.Read(c[:])
		if n > 0 {
			if c[0] == '\n' {
				return strings.TrimSuffix(b.String(), "\r"), nil
			}
			b.WriteByte(c[0])
		}
		if err != nil {
			if err == io.EOF && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}
	}
}
