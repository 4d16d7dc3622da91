// printer_test.go
package pyrust

import "testing"

func Test_FormatValue(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Int(0), "0"},
		{Int(-42), "-42"},
		{Int(1000000), "1000000"},
		{Float(2.5), "2.5"},
		{Float(0.25), "0.25"},
		{Float(-1.5), "-1.5"},
		// Whole floats keep a fractional digit.
		{Float(5), "5.0"},
		{Float(-3), "-3.0"},
		// Shortest round-trip, not fixed precision.
		{Float(0.1), "0.1"},
		{Float(1.0 / 3.0), "0.3333333333333333"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Str("plain"), "plain"},
		// No surrounding quotes on strings.
		{Str(`with "quotes"`), `with "quotes"`},
		{Str(""), ""},
	}
	for _, c := range cases {
		if got := FormatValue(c.v); got != c.want {
			t.Errorf("FormatValue(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func Test_FormatValue_Function(t *testing.T) {
	f := &Fun{Name: "fib"}
	if got := FormatValue(FunVal(f)); got != "<fn fib>" {
		t.Fatalf("function rendering: %q", got)
	}
}
