package numeric_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/zephyrtronium/numeric"
)

var std = numeric.DefaultConfig()

func dec(t *testing.T, s string) numeric.Decimal {
	t.Helper()
	x, err := numeric.ParseDecimal(s, std)
	if err != nil {
		t.Fatalf("couldn't parse %q: %v", s, err)
	}
	return x
}

func TestZero(t *testing.T) {
	var z numeric.Decimal
	if !z.IsZero() {
		t.Error("zero Decimal is not zero")
	}
	if n := z.DigitsBefore(); n != 1 {
		t.Errorf("zero has %d digits before the point", n)
	}
	if n := z.DigitsAfter(); n != numeric.DefaultDecimalPlaces {
		t.Errorf("zero has %d digits after the point", n)
	}
	if !z.Equals(numeric.Zero(std)) {
		t.Error("zero Decimal is not Zero")
	}
	if s := z.Format(); s != "0.00" {
		t.Errorf("zero formats as %q", s)
	}
}

func TestPadNormalize(t *testing.T) {
	z := numeric.Zero(std)
	if n := z.Pad(2, 0).DigitsBefore(); n != 2 {
		t.Errorf("padded leading zero: want 2 digits before, got %d", n)
	}
	if n := z.Pad(0, 3).DigitsAfter(); n != numeric.DefaultDecimalPlaces+1 {
		t.Errorf("padded trailing zero: want %d digits after, got %d", numeric.DefaultDecimalPlaces+1, n)
	}
	x := z.Pad(2, 4).Normalize()
	if n := x.DigitsBefore(); n != 1 {
		t.Errorf("normalized: want 1 digit before, got %d", n)
	}
	if n := x.DigitsAfter(); n != numeric.DefaultDecimalPlaces {
		t.Errorf("normalized: want %d digits after, got %d", numeric.DefaultDecimalPlaces, n)
	}
	if n := z.Pad(0, 0).DigitsAfter(); n != numeric.DefaultDecimalPlaces {
		t.Errorf("Pad removed digits: %d left", n)
	}
}

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		name string
		src  string
		str  string
		err  string
	}{
		{"integer", "2", "2", ""},
		{"fraction", "0.5", "0.50", ""},
		{"long", "123.456", "123.456", ""},
		{"leading-zeros", "007", "007", ""},
		{"no-int", ".5", "0.50", ""},
		{"no-frac", "5.", "5", ""},
		{"neg", "-0.5", "-0.50", ""},
		{"plus", "+3", "3", ""},
		{"radix", "1,234.56", "1234.56", ""},
		{"spaces", " 1 2 ", "12", ""},
		{"empty", "", "0", ""},
		{"blank", " \t", "0", ""},
		{"neg-zero", "-0", "0", ""},
		{"multiple", "123.45.6", "", numeric.ReasonMultipleSeparators},
		{"nondigits", "12z3.45", "", numeric.ReasonNonDigits},
		{"sign-only", "-", "", numeric.ReasonNonDigits},
		{"sep-only", ".", "0", ""},
		{"double-sign", "--1", "", numeric.ReasonNonDigits},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, err := numeric.ParseDecimal(c.src, std)
			if c.err != "" {
				var ferr *numeric.FormatError
				if !errors.As(err, &ferr) {
					t.Fatalf("expected *FormatError, got %#v", err)
				}
				if ferr.Reason != c.err {
					t.Errorf("wrong reason: want %q, got %q", c.err, ferr.Reason)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if s := x.String(); s != c.str {
				t.Errorf("want %q, got %q", c.str, s)
			}
		})
	}
}

func TestParseDecimalSeparators(t *testing.T) {
	cfg, err := numeric.NewConfig(numeric.DecimalSeparator(','), numeric.RadixSeparator('.'))
	if err != nil {
		t.Fatal(err)
	}
	x, err := numeric.ParseDecimal("1.234,5", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if s := x.String(); s != "1234,50" {
		t.Errorf("want 1234,50, got %q", s)
	}
	if s := x.Format(); s != "1234,50" {
		t.Errorf("want 1234,50, got %q", s)
	}
}

func TestNew(t *testing.T) {
	cases := []struct {
		name string
		v    any
		str  string
	}{
		{"int", 1, "1"},
		{"int8", int8(-8), "-8"},
		{"uint64", uint64(math.MaxUint64), "18446744073709551615"},
		{"float", 0.5, "0.50"},
		{"float32", float32(0.25), "0.25"},
		{"string", "12.3", "12.30"},
		{"decimal", numeric.FromInt(4, std), "4"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, err := numeric.New(c.v, std)
			if err != nil {
				t.Fatal(err)
			}
			if s := x.String(); s != c.str {
				t.Errorf("want %q, got %q", c.str, s)
			}
		})
	}
	neg := numeric.Must(numeric.New(-0.5, std))
	if neg.Sign() >= 0 {
		t.Errorf("-0.5 has sign %d", neg.Sign())
	}
}

func TestNewInvalid(t *testing.T) {
	cases := []struct {
		name string
		v    any
	}{
		{"nil", nil},
		{"bool", true},
		{"slice", []int{1}},
		{"nan", math.NaN()},
		{"inf", math.Inf(-1)},
		{"nil-decimal", (*numeric.Decimal)(nil)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := numeric.New(c.v, std)
			var aerr *numeric.ArgumentError
			if !errors.As(err, &aerr) {
				t.Errorf("expected *ArgumentError, got %#v", err)
			}
		})
	}
}

func TestNegativeZero(t *testing.T) {
	z := numeric.Zero(std).Neg()
	if !z.IsZero() {
		t.Error("negated zero is not zero")
	}
	if z.Sign() != 0 {
		t.Errorf("negated zero has sign %d", z.Sign())
	}
	if s := z.Format(); s != "0.00" {
		t.Errorf("negated zero formats as %q", s)
	}
	if s := dec(t, "-0.001").Format(); s != "0.00" {
		t.Errorf("-0.001 formats as %q", s)
	}
	if s := dec(t, "1.5").Minus(dec(t, "1.5")).String(); s != "0" {
		t.Errorf("1.5 - 1.5 is %q", s)
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"0", "-0", 0},
		{"100", "12.3", 1},
		{"-100", "12.3", -1},
		{"100", "-12.3", 1},
		{"-100", "-12.3", -1},
		{"1.10", "1.1", 0},
		{"001", "1", 0},
		{"0.001", "0.01", -1},
	}
	for _, c := range cases {
		x, y := dec(t, c.x), dec(t, c.y)
		if got := x.Compare(y); got != c.want {
			t.Errorf("compare %s with %s: want %d, got %d", c.x, c.y, c.want, got)
		}
		if got := y.Compare(x); got != -c.want {
			t.Errorf("compare %s with %s: want %d, got %d", c.y, c.x, -c.want, got)
		}
	}
}

func TestCompareValue(t *testing.T) {
	x := dec(t, "2.5")
	for _, v := range []any{2.5, "2.50", x} {
		c, err := x.CompareValue(v)
		if err != nil {
			t.Errorf("comparing with %v: %v", v, err)
		}
		if c != 0 {
			t.Errorf("comparing with %v: got %d", v, c)
		}
	}
	if c, _ := x.CompareValue(3); c != -1 {
		t.Errorf("2.5 compared with 3 is %d", c)
	}
	if _, err := x.CompareValue(struct{}{}); err == nil {
		t.Error("comparing with struct{}{} succeeded")
	}
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		name string
		x, y string
		op   func(x, y numeric.Decimal) numeric.Decimal
		want string
	}{
		{"one-plus-one", "1", "1", numeric.Decimal.Plus, "2"},
		{"commutative", "1.7", "1.3", numeric.Decimal.Plus, "3"},
		{"carry", "9.9", "0.1", numeric.Decimal.Plus, "10"},
		{"sub", "9.9", "0.1", numeric.Decimal.Minus, "9.80"},
		{"borrow", "9.4", "0.6", numeric.Decimal.Minus, "8.80"},
		{"neg-plus-neg", "-100", "-12.3", numeric.Decimal.Plus, "-112.30"},
		{"pos-plus-neg", "100", "-12.3", numeric.Decimal.Plus, "87.70"},
		{"neg-plus-pos", "-100", "12.3", numeric.Decimal.Plus, "-87.70"},
		{"small-neg-plus-pos", "-1", "5", numeric.Decimal.Plus, "4"},
		{"sub-larger", "1", "5", numeric.Decimal.Minus, "-4"},
		{"sub-neg", "-19.1", "-4.7", numeric.Decimal.Minus, "-14.40"},
		{"mul", "3.14", "1.414", numeric.Decimal.MultipliedBy, "4.43996"},
		{"mul-neg", "-7", "-8", numeric.Decimal.MultipliedBy, "56"},
		{"mul-mixed", "-2.5", "4", numeric.Decimal.MultipliedBy, "-10"},
		{"mul-fraction", "0.1", "0.1", numeric.Decimal.MultipliedBy, "0.01"},
		{"mul-zero", "-19.1", "0", numeric.Decimal.MultipliedBy, "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := c.op(dec(t, c.x), dec(t, c.y))
			if s := r.String(); s != c.want {
				t.Errorf("want %s, got %s", c.want, s)
			}
		})
	}
}

func TestArithmeticIdentities(t *testing.T) {
	vals := []string{"0", "1", "-1", "19.1", "-19.1", "4.7", "0.001", "1234567.89"}
	for _, a := range vals {
		x := dec(t, a)
		if r := x.Plus(numeric.Zero(std)); !r.Equals(x) {
			t.Errorf("%s + 0 = %s", a, r)
		}
		if r := x.MultipliedBy(numeric.FromInt(1, std)); !r.Equals(x) {
			t.Errorf("%s * 1 = %s", a, r)
		}
		if r, err := x.DividedBy(numeric.FromInt(1, std)); err != nil || !r.Equals(x) {
			t.Errorf("%s / 1 = %s, %v", a, r, err)
		}
		if r := x.MultipliedBy(numeric.Zero(std)); !r.IsZero() {
			t.Errorf("%s * 0 = %s", a, r)
		}
		for _, b := range vals {
			y := dec(t, b)
			if l, r := x.Plus(y), y.Plus(x); !l.Equals(r) {
				t.Errorf("%s + %s = %s but %s + %s = %s", a, b, l, b, a, r)
			}
			if l, r := x.MultipliedBy(y), y.MultipliedBy(x); !l.Equals(r) {
				t.Errorf("%s * %s = %s but %s * %s = %s", a, b, l, b, a, r)
			}
			if l, r := x.Minus(y), x.Plus(y.Neg()); !l.Equals(r) {
				t.Errorf("%s - %s = %s but %s + -%s = %s", a, b, l, a, b, r)
			}
			if r := x.Minus(y).Plus(y); !r.Equals(x) {
				t.Errorf("%s - %s + %s = %s", a, b, b, r)
			}
		}
		if x.IsZero() {
			continue
		}
		if r, err := x.DividedBy(x); err != nil || !r.Equals(numeric.FromInt(1, std)) {
			t.Errorf("%s / %s = %s, %v", a, a, r, err)
		}
	}
}

func TestSubtractionOrdering(t *testing.T) {
	x, y := dec(t, "-19.1"), dec(t, "4.7")
	if r := x.Minus(y); r.Compare(x) != -1 {
		t.Errorf("%s - %s = %s is not smaller", x, y, r)
	}
	if r := x.Minus(y.Neg()); r.Compare(x) != 1 {
		t.Errorf("%s - %s = %s is not bigger", x, y.Neg(), r)
	}
}

func TestDivision(t *testing.T) {
	cases := []struct {
		x, y   string
		prefix string
	}{
		{"10", "4", "2.50"},
		{"1", "3", "0.3333"},
		{"10", "3", "3.3333"},
		{"22", "7", "3.14285714"},
		{"-1", "8", "-0.125"},
		{"1", "-0.25", "-4"},
		{"0.5", "0.25", "2"},
		{"1", "1024", "0.00097656"},
		{"0", "3", "0"},
		{"123456789", "0.001", "123456789000"},
	}
	for _, c := range cases {
		r, err := dec(t, c.x).DividedBy(dec(t, c.y))
		if err != nil {
			t.Errorf("%s / %s: %v", c.x, c.y, err)
			continue
		}
		if s := r.String(); !strings.HasPrefix(s, c.prefix) {
			t.Errorf("%s / %s: want %s..., got %s", c.x, c.y, c.prefix, s)
		}
		if n := r.DigitsAfter(); n > numeric.DefaultMaxDecimalPlaces {
			t.Errorf("%s / %s: %d fractional digits in %s", c.x, c.y, n, r)
		}
	}
}

func TestDivisionTruncates(t *testing.T) {
	r, err := dec(t, "2").DividedBy(dec(t, "3"))
	if err != nil {
		t.Fatal(err)
	}
	if s := r.String(); s != "0.66666666" {
		t.Errorf("2/3: want 0.66666666, got %s", s)
	}
	if s := r.Format(); s != "0.66" {
		t.Errorf("2/3: want 0.66, got %s", s)
	}
	r, err = dec(t, "-2").DividedBy(dec(t, "3"))
	if err != nil {
		t.Fatal(err)
	}
	if s := r.Format(); s != "-0.66" {
		t.Errorf("-2/3: want -0.66, got %s", s)
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, y := range []string{"0", "-0", "0.000", ""} {
		_, err := dec(t, "1995").DividedBy(dec(t, y))
		if !errors.Is(err, numeric.ErrDivisionByZero) {
			t.Errorf("1995 / %q: want division by zero, got %v", y, err)
		}
	}
}

func TestImmutable(t *testing.T) {
	x, y := dec(t, "12.5"), dec(t, "-3.25")
	before := x.String() + " " + y.String()
	x.Plus(y)
	x.Minus(y)
	x.MultipliedBy(y)
	x.DividedBy(y)
	x.Neg()
	x.Abs()
	x.Times10(3)
	x.By10(3)
	x.Pad(5, 5)
	x.Normalize()
	if after := x.String() + " " + y.String(); after != before {
		t.Errorf("operands changed: %s became %s", before, after)
	}
}

func TestShift(t *testing.T) {
	cases := []struct {
		x    string
		n    int
		want string
	}{
		{"3.14159", 2, "314.159"},
		{"3.14159", -2, "0.0314159"},
		{"1", 3, "1000"},
		{"1", -3, "0.001"},
		{"-12.5", 1, "-125"},
	}
	for _, c := range cases {
		if r := dec(t, c.x).Times10(c.n); r.Compare(dec(t, c.want)) != 0 {
			t.Errorf("%s * 10^%d: want %s, got %s", c.x, c.n, c.want, r)
		}
		if r := dec(t, c.x).By10(-c.n); r.Compare(dec(t, c.want)) != 0 {
			t.Errorf("%s / 10^%d: want %s, got %s", c.x, -c.n, c.want, r)
		}
	}
	if r := dec(t, "-12.99").Trunc(); r.String() != "-12" {
		t.Errorf("trunc -12.99: got %s", r)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		x      string
		places int
		want   string
	}{
		{"2", 2, "2.00"},
		{"3.14159", 2, "3.14"},
		{"3.149", 2, "3.14"},
		{"-3.149", 2, "-3.14"},
		{"0.001", 2, "0.00"},
		{"12.5", 0, "12"},
		{"12.5", 4, "12.5000"},
		{"0012.50", 2, "12.50"},
	}
	for _, c := range cases {
		cfg, err := numeric.NewConfig(numeric.DecimalPlaces(c.places), numeric.MaxDecimalPlaces(8))
		if err != nil {
			t.Fatal(err)
		}
		x, err := numeric.ParseDecimal(c.x, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if s := x.Format(); s != c.want {
			t.Errorf("%s with %d places: want %q, got %q", c.x, c.places, c.want, s)
		}
	}
}

func TestTextMarshal(t *testing.T) {
	x := dec(t, "-1234.5")
	b, err := x.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "-1234.50" {
		t.Errorf("marshaled as %q", b)
	}
	var y numeric.Decimal
	if err := y.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if !x.Equals(y) {
		t.Errorf("unmarshaled as %s", y)
	}
	if err := y.UnmarshalText([]byte("1.2.3")); err == nil {
		t.Error("unmarshaled 1.2.3")
	}
}
