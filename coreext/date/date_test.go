package date

import (
	"testing"
	"time"

	"github.com/zephyrtronium/efecta"
	"github.com/zephyrtronium/efecta/testutils"
)

func TestRegister(t *testing.T) {
	testutils.CheckProcs(t, testutils.TestingVM(), []string{"DATE", "NOW"})
}

func TestDate(t *testing.T) {
	cases := map[string]testutils.SourceTestCase{
		"Epoch":  {Source: testutils.Lines("RETURN", "\t* DATE 0"), Pass: testutils.PassLiteral("1970-01-01 00:00:00")},
		"Format": {Source: testutils.Lines("RETURN", "\t* DATE 86400 %Y/%m/%d"), Pass: testutils.PassLiteral("1970/01/02")},
		"Spaces": {Source: testutils.Lines("RETURN", "\t* DATE 3723 #%H h %M m %S s"), Pass: testutils.PassLiteral("01 h 02 m 03 s")},
		"Text":   {Source: testutils.Lines("RETURN", "\t* DATE yesterday"), Pass: testutils.PassFailure(efecta.TypeError)},
		"Arity":  {Source: testutils.Lines("RETURN", "\t* DATE"), Pass: testutils.PassFailure(efecta.ArityError)},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(name))
	}
}

func TestNow(t *testing.T) {
	defer func(f func() time.Time) { now = f }(now)
	now = func() time.Time { return time.Date(2001, time.February, 3, 4, 5, 6, 0, time.UTC) }
	cases := map[string]testutils.SourceTestCase{
		"Default": {Source: testutils.Lines("RETURN", "\t* NOW"), Pass: testutils.PassLiteral("2001-02-03 04:05:06")},
		"Format":  {Source: testutils.Lines("RETURN", "\t* NOW %Y"), Pass: testutils.PassLiteral("2001")},
		"Arity":   {Source: testutils.Lines("RETURN", "\t* NOW %Y %m"), Pass: testutils.PassFailure(efecta.ArityError)},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(name))
	}
}
