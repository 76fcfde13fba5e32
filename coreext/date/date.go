// Package date provides procedures for formatting the current time.
package date

import (
	"time"

	"github.com/zephyrtronium/efecta"
	"github.com/zephyrtronium/efecta/internal"

	"gitlab.com/variadico/lctime"
)

// DefaultFormat is the strftime format used when none is given.
const DefaultFormat = "%Y-%m-%d %H:%M:%S"

// now is the time source, replaced in tests.
var now = time.Now

func init() {
	internal.Register(initDate)
}

func initDate(vm *efecta.VM) {
	vm.Install(efecta.Procs{
		"DATE": date,
		"NOW":  nowProc,
	})
}

// nowProc is a date procedure.
//
// NOW returns the current local time formatted with strftime directives. See
// https://godoc.org/github.com/variadico/lctime for the full list of
// supported directives.
func nowProc(vm *efecta.VM, ctx *efecta.Context, args []efecta.Value) (efecta.Value, error) {
	if err := efecta.AssertArgRange("NOW", args, 0, 1); err != nil {
		return nil, err
	}
	format := DefaultFormat
	if len(args) == 1 {
		format = efecta.ToString(args[0])
	}
	return efecta.String{S: lctime.Strftime(format, now())}, nil
}

// date is a date procedure.
//
// DATE formats a count of seconds since the Unix epoch, in UTC, with strftime
// directives.
func date(vm *efecta.VM, ctx *efecta.Context, args []efecta.Value) (efecta.Value, error) {
	if err := efecta.AssertArgRange("DATE", args, 1, 2); err != nil {
		return nil, err
	}
	secs, err := internal.ToInt(args[0])
	if err != nil {
		return nil, err
	}
	format := DefaultFormat
	if len(args) == 2 {
		format = efecta.ToString(args[1])
	}
	return efecta.String{S: lctime.Strftime(format, time.Unix(secs, 0).UTC())}, nil
}
