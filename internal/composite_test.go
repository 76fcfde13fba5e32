package internal_test

import (
	"testing"

	"github.com/zephyrtronium/efecta"
	"github.com/zephyrtronium/efecta/testutils"
)

// counter returns statements creating a COUNTER instance in the variable v
// with a field n and methods INC and GET.
func counter(v string) []string {
	return []string{
		"SET " + v,
		"\t* NEW COUNTER",
		"FIELD & " + v + " n 0",
		"METHOD & " + v,
		"\t@ INC",
		"\t\tSET n",
		"\t\t\t* ADD & n 1",
		"\t\tRETURN & n",
		"\t@ GET",
		"\t\tRETURN & n",
	}
}

// withCounter returns source creating a counter in c followed by the given
// statements.
func withCounter(stmts ...string) string {
	return testutils.Lines(append(counter("c"), stmts...)...)
}

// TestComposite tests composite instances through programs.
func TestComposite(t *testing.T) {
	cases := map[string]testutils.SourceTestCase{
		"State": {
			Source: withCounter("$ c INC", "$ c INC", "RETURN", "\t* INVOKE & c INC"),
			Pass:   testutils.PassLiteral("3"),
		},
		"Independent": {
			Source: testutils.Lines(append(append(counter("a"), counter("b")...),
				"$ a INC",
				"$ a INC",
				"$ b INC",
				"RETURN",
				"\t* CONCAT",
				"\t\t* INVOKE & a GET",
				"\t\t* INVOKE & b GET",
			)...),
			Pass: testutils.PassLiteral("21"),
		},
		"Shared": {
			Source: withCounter("SET h & c", "$ h INC", "RETURN", "\t* INVOKE & c GET"),
			Pass:   testutils.PassLiteral("1"),
		},
		"Arguments": {
			Source: withCounter(
				"METHOD & c",
				"\t@ ADDN",
				"\t\tSET n",
				"\t\t\t* ADD & n",
				"\t\t\t\t* ARG 0",
				"INVOKE & c ADDN 5",
				"$ c ADDN 2",
				"RETURN",
				"\t* INVOKE & c GET",
			),
			Pass: testutils.PassLiteral("7"),
		},
		"UndeclaredDropped": {
			Source: withCounter(
				"METHOD & c",
				"\t@ PUT",
				"\t\tSET tmp 1",
				"\t@ TAKE",
				"\t\tGET tmp",
				"$ c PUT",
				"$ c TAKE",
			),
			Pass: testutils.PassFailure(efecta.NotFoundError),
		},
		"Captured": {
			Source: withCounter(
				"SET k 10",
				"METHOD & c",
				"\t@ K",
				"\t\tRETURN & k",
				"RETURN",
				"\t$ c K",
			),
			Pass: testutils.PassLiteral("10"),
		},
		"CallerUnchanged": {
			Source: withCounter("SET n 5", "$ c INC", "RETURN & n"),
			Pass:   testutils.PassLiteral("5"),
		},
		"UnknownMethod": {
			Source: withCounter("$ c NOPE"),
			Pass:   testutils.PassFailure(efecta.NotFoundError),
		},
		"UnknownInvoke": {
			Source: withCounter("INVOKE & c NOPE"),
			Pass:   testutils.PassFailure(efecta.NotFoundError),
		},
		"NotComposite": {
			Source: "INVOKE x GET",
			Pass:   testutils.PassFailure(efecta.TypeError),
		},
		"TypeName": {
			Source: withCounter("RETURN", "\t* TYPE & c"),
			Pass:   testutils.PassLiteral("COUNTER"),
		},
		"Unnamed": {
			Source: testutils.Lines("SET c", "\t* NEW", "RETURN", "\t* TYPE & c"),
			Pass:   testutils.PassLiteral("Composite"),
		},
		"DefaultLiteral": {
			Source: withCounter("DISPLAY & c"),
			Output: "<COUNTER>\n",
			Pass:   testutils.PassSuccess(),
		},
		"Methods": {
			Source: withCounter(
				"SET ms",
				"\t* METHODS & c",
				"SET inc",
				"\t* KEY & ms INC",
				"CALL & inc",
				"RETURN",
				"\t* INVOKE & c GET",
			),
			Pass: testutils.PassLiteral("1"),
		},
		"MethodNames": {
			Source: withCounter("RETURN", "\t* KEYS", "\t\t* METHODS & c"),
			Pass:   testutils.PassLiteral("[GET INC]"),
		},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(name))
	}
}

// TestCompositeCapabilities tests coercion of composites through their
// capability methods.
func TestCompositeCapabilities(t *testing.T) {
	cases := map[string]testutils.SourceTestCase{
		"Literal": {
			Source: withCounter(
				"METHOD & c",
				"\t@ LIT",
				"\t\tCONCAT n= & n",
				"DISPLAY & c",
			),
			Output: "n=0\n",
			Pass:   testutils.PassSuccess(),
		},
		"Int": {
			Source: withCounter(
				"FIELD & c n 5",
				"METHOD & c",
				"\t@ INT",
				"\t\tRETURN & n",
				"RETURN",
				"\t* ADD & c 1",
			),
			Pass: testutils.PassLiteral("6"),
		},
		"Float": {
			Source: withCounter(
				"METHOD & c",
				"\t@ FLOAT",
				"\t\tRETURN 0.5",
				"RETURN",
				"\t* ADD & c 1",
			),
			Pass: testutils.PassLiteral("1.5"),
		},
		"List": {
			Source: withCounter(
				"METHOD & c",
				"\t@ LST",
				"\t\tLIST x y",
				"RETURN",
				"\t* LEN & c",
			),
			Pass: testutils.PassLiteral("2"),
		},
		"Missing": {
			Source: withCounter("RETURN", "\t* ADD & c 1"),
			Pass:   testutils.PassFailure(efecta.TypeError),
		},
		"SelfLiteral": {
			Source: withCounter(
				"METHOD & c",
				"\t@ LIT",
				"\t\tLIT & self",
				"DISPLAY & c",
			),
			Output: "<COUNTER>\n",
			Pass:   testutils.PassSuccess(),
		},
		"Cycle": {
			Source: withCounter(
				"METHOD & c",
				"\t@ INT",
				"\t\tRETURN & self",
				"RETURN",
				"\t* ADD & c 1",
			),
			Pass: testutils.PassFailure(efecta.TypeError),
		},
		"Chain": {
			Source: testutils.Lines(append(append(counter("a"), counter("b")...),
				"FIELD & b n 4",
				"METHOD & b",
				"\t@ INT",
				"\t\tRETURN & n",
				"SET target & b",
				"METHOD & a",
				"\t@ INT",
				"\t\tRETURN & target",
				"RETURN",
				"\t* ADD & a 1",
			)...),
			Pass: testutils.PassLiteral("5"),
		},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(name))
	}
}
