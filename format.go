package numeric

import "strings"

// String returns the stored digits of x without rounding, omitting the
// fractional part if it is zero. Leading and trailing zeros that x carries
// are included.
func (x Decimal) String() string {
	return x.Text(false)
}

// Format returns x truncated to exactly the configured number of decimal
// places, e.g. "3.14" for 22/7 with two decimal places.
func (x Decimal) Format() string {
	return x.Text(true)
}

// Text formats x. If formatted is false, the result is the same as String;
// otherwise it is the same as Format.
func (x Decimal) Text(formatted bool) string {
	x = x.fix()
	var b strings.Builder
	b.Grow(len(x.digits) + 2)
	if formatted {
		p := x.cfg.places
		x = x.Times10(p).Trunc().By10(p).Normalize()
		if x.neg {
			b.WriteByte('-')
		}
		b.Write(x.digits[:x.point])
		if p > 0 {
			b.WriteRune(x.cfg.dsep)
			b.Write(x.digits[x.point : x.point+p])
		}
		return b.String()
	}
	if x.neg {
		b.WriteByte('-')
	}
	b.Write(x.digits[:x.point])
	if !x.IsInteger() {
		b.WriteRune(x.cfg.dsep)
		b.Write(x.digits[x.point:])
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using String.
func (x Decimal) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The configuration of x
// is kept; the zero Decimal parses with the default configuration.
func (x *Decimal) UnmarshalText(text []byte) error {
	y, err := ParseDecimal(string(text), x.cfg)
	if err != nil {
		return err
	}
	*x = y
	return nil
}
