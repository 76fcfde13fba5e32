package testutils

import (
	"errors"
	"strings"
	"testing"

	"github.com/zephyrtronium/efecta"
)

func TestCheck(t *testing.T) {
	fail := &efecta.Error{Kind: efecta.NotFoundError, Msg: "no proc NOPE", Trace: []string{"PROC MAIN"}}
	cases := map[string]struct {
		c    SourceTestCase
		r    efecta.Value
		err  error
		out  string
		msgs int
	}{
		"OutputOnly":        {SourceTestCase{Output: "5\n"}, efecta.Void{}, nil, "5\n", 0},
		"OutputOnlyError":   {SourceTestCase{Output: "5\n"}, nil, fail, "5\n", 1},
		"NoPredicateError":  {SourceTestCase{}, nil, errors.New("oops"), "", 1},
		"WrongOutput":       {SourceTestCase{Output: "5\n"}, efecta.Void{}, nil, "6\n", 1},
		"WrongBoth":         {SourceTestCase{Output: "5\n"}, nil, fail, "", 2},
		"PredicateAccepts":  {SourceTestCase{Pass: PassFailure(efecta.NotFoundError)}, nil, fail, "", 0},
		"PredicateRejects":  {SourceTestCase{Pass: PassLiteral("1")}, efecta.Int{V: 2}, nil, "", 1},
		"PredicateNoOutput": {SourceTestCase{Pass: PassSuccess()}, efecta.Void{}, nil, "anything", 0},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			msgs := c.c.check(c.r, c.err, c.out)
			if len(msgs) != c.msgs {
				t.Errorf("wrong number of failures: want %d, have %d: %q", c.msgs, len(msgs), msgs)
			}
		})
	}
}

func TestCheckTrace(t *testing.T) {
	fail := &efecta.Error{Kind: efecta.NotFoundError, Msg: "no proc NOPE", Trace: []string{"PROC MAIN"}}
	msgs := SourceTestCase{Source: "NOPE"}.check(nil, fail, "")
	if len(msgs) != 1 {
		t.Fatalf("wrong failures: %q", msgs)
	}
	if !strings.Contains(msgs[0], "PROC MAIN") {
		t.Errorf("failure does not include trace: %q", msgs[0])
	}
}
