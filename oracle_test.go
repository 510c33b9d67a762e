package numeric_test

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"

	"github.com/zephyrtronium/numeric"
)

// randDecimal returns a random decimal literal with up to 12 integer digits
// and up to 6 fractional digits.
func randDecimal(rng *rand.Rand) string {
	var b strings.Builder
	if rng.Intn(2) == 0 {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(rng.Int63n(1e12), 10))
	if n := rng.Intn(7); n > 0 {
		b.WriteByte('.')
		for i := 0; i < n; i++ {
			b.WriteByte(byte('0' + rng.Intn(10)))
		}
	}
	return b.String()
}

func apdParse(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	if err != nil {
		t.Fatalf("apd couldn't parse %q: %v", s, err)
	}
	return d
}

// TestOracle checks arithmetic against apd, which is exact for sums,
// differences, and products at this precision. Quotients are compared after
// truncating apd's result to the maximum number of decimal places.
func TestOracle(t *testing.T) {
	ctx := apd.BaseContext.WithPrecision(100)
	ctx.Rounding = apd.RoundDown
	cfg := numeric.DefaultConfig()
	rng := rand.New(rand.NewSource(1))
	ops := []struct {
		name   string
		ours   func(x, y numeric.Decimal) (numeric.Decimal, error)
		oracle func(d, x, y *apd.Decimal) (apd.Condition, error)
	}{
		{"+", func(x, y numeric.Decimal) (numeric.Decimal, error) { return x.Plus(y), nil }, ctx.Add},
		{"-", func(x, y numeric.Decimal) (numeric.Decimal, error) { return x.Minus(y), nil }, ctx.Sub},
		{"*", func(x, y numeric.Decimal) (numeric.Decimal, error) { return x.MultipliedBy(y), nil }, ctx.Mul},
		{"/", numeric.Decimal.DividedBy, func(d, x, y *apd.Decimal) (apd.Condition, error) {
			if _, err := ctx.Quo(d, x, y); err != nil {
				return 0, err
			}
			return ctx.Quantize(d, d, -int32(cfg.MaxPlaces()))
		}},
	}
	for i := 0; i < 500; i++ {
		a, b := randDecimal(rng), randDecimal(rng)
		x, err := numeric.ParseDecimal(a, cfg)
		if err != nil {
			t.Fatal(err)
		}
		y, err := numeric.ParseDecimal(b, cfg)
		if err != nil {
			t.Fatal(err)
		}
		for _, op := range ops {
			if op.name == "/" && y.IsZero() {
				continue
			}
			r, err := op.ours(x, y)
			if err != nil {
				t.Errorf("%s %s %s: %v", a, op.name, b, err)
				continue
			}
			var want apd.Decimal
			if _, err := op.oracle(&want, apdParse(t, a), apdParse(t, b)); err != nil {
				t.Fatalf("apd %s %s %s: %v", a, op.name, b, err)
			}
			if got := apdParse(t, r.String()); got.Cmp(&want) != 0 {
				t.Errorf("%s %s %s: want %s, got %s", a, op.name, b, want.Text('f'), r)
			}
		}
	}
}
