package numeric

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Decimal is a signed arbitrary-precision decimal number. Decimals are values:
// every operation returns a new Decimal and never modifies its operands.
//
// The zero value is zero under the default configuration.
type Decimal struct {
	// neg is the sign. Zero is never negative.
	neg bool
	// digits holds ASCII decimal digits, most significant first.
	digits []byte
	// point is the number of digits before the decimal point, at least 1.
	point int
	// cfg controls formatting and division precision.
	cfg Config
}

// Zero returns zero with the given configuration.
func Zero(cfg Config) Decimal {
	cfg = cfg.std()
	return Decimal{digits: zeros(cfg.places + 1), point: 1, cfg: cfg}
}

// fix returns x, or zero if x is the zero Decimal.
func (x Decimal) fix() Decimal {
	if len(x.digits) == 0 {
		return Zero(x.cfg)
	}
	x.cfg = x.cfg.std()
	return x
}

// clone returns a copy of x that shares no memory with it.
func (x Decimal) clone() Decimal {
	x = x.fix()
	x.digits = append(make([]byte, 0, len(x.digits)), x.digits...)
	return x
}

// ParseDecimal parses text as a decimal number using the separators in cfg.
// All whitespace and radix separators are ignored. The text may have a
// leading sign, and either the integer or the fractional part may be omitted.
// Empty text is zero.
func ParseDecimal(text string, cfg Config) (Decimal, error) {
	cfg = cfg.std()
	var b strings.Builder
	for _, r := range text {
		if unicode.IsSpace(r) || r == cfg.rsep {
			continue
		}
		b.WriteRune(r)
	}
	src := b.String()
	if src == "" {
		return Zero(cfg), nil
	}
	s := src
	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	sep := string(cfg.dsep)
	if strings.HasPrefix(s, sep) {
		s = "0" + s
	}
	if strings.HasSuffix(s, sep) {
		s += "0"
	}
	if !strings.Contains(s, sep) {
		s += sep + "0"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return Decimal{}, &FormatError{Text: src, Reason: ReasonMultipleSeparators}
	}
	if !isDigits(parts[0]) || !isDigits(parts[1]) {
		return Decimal{}, &FormatError{Text: src, Reason: ReasonNonDigits}
	}
	digits := make([]byte, 0, len(parts[0])+len(parts[1])+cfg.places)
	digits = append(digits, parts[0]...)
	digits = append(digits, parts[1]...)
	if n := cfg.places - len(parts[1]); n > 0 {
		digits = append(digits, zeros(n)...)
	}
	x := Decimal{neg: neg, digits: digits, point: len(parts[0]), cfg: cfg}
	if x.IsZero() {
		x.neg = false
	}
	return x, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// zeros returns n ASCII zeros.
func zeros(n int) []byte {
	if n <= 0 {
		return nil
	}
	return bytes.Repeat([]byte{'0'}, n)
}

// FromInt returns the decimal value of n.
func FromInt(n int64, cfg Config) Decimal {
	return mustParse(strconv.FormatInt(n, 10), cfg)
}

// FromUint returns the decimal value of n.
func FromUint(n uint64, cfg Config) Decimal {
	return mustParse(strconv.FormatUint(n, 10), cfg)
}

// FromFloat returns the decimal value of the shortest decimal representation
// of f that converts back to f. NaN and infinities are an *ArgumentError.
func FromFloat(f float64, cfg Config) (Decimal, error) {
	return fromFloat(f, 64, cfg)
}

func fromFloat(f float64, bits int, cfg Config) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if bits == 32 {
			return Decimal{}, &ArgumentError{Value: float32(f)}
		}
		return Decimal{}, &ArgumentError{Value: f}
	}
	cfg = cfg.std()
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if cfg.dsep != '.' {
		s = strings.Replace(s, ".", string(cfg.dsep), 1)
	}
	return ParseDecimal(s, cfg)
}

func mustParse(s string, cfg Config) Decimal {
	x, err := ParseDecimal(s, cfg)
	if err != nil {
		panic("numeric: " + err.Error())
	}
	return x
}

// New converts v to a Decimal. v may be a string, any integer or float type,
// or a Decimal, which is copied and given the configuration cfg. Any other
// type is an *ArgumentError.
func New(v any, cfg Config) (Decimal, error) {
	switch v := v.(type) {
	case Decimal:
		return v.withConfig(cfg), nil
	case *Decimal:
		if v == nil {
			return Decimal{}, &ArgumentError{Value: v}
		}
		return v.withConfig(cfg), nil
	case string:
		return ParseDecimal(v, cfg)
	case int:
		return FromInt(int64(v), cfg), nil
	case int8:
		return FromInt(int64(v), cfg), nil
	case int16:
		return FromInt(int64(v), cfg), nil
	case int32:
		return FromInt(int64(v), cfg), nil
	case int64:
		return FromInt(v, cfg), nil
	case uint:
		return FromUint(uint64(v), cfg), nil
	case uint8:
		return FromUint(uint64(v), cfg), nil
	case uint16:
		return FromUint(uint64(v), cfg), nil
	case uint32:
		return FromUint(uint64(v), cfg), nil
	case uint64:
		return FromUint(v, cfg), nil
	case float32:
		return fromFloat(float64(v), 32, cfg)
	case float64:
		return fromFloat(v, 64, cfg)
	default:
		return Decimal{}, &ArgumentError{Value: v}
	}
}

// Must returns x, or panics if err is not nil.
func Must(x Decimal, err error) Decimal {
	if err != nil {
		panic(err)
	}
	return x
}

// withConfig returns a copy of x using cfg, padded to cfg's decimal places.
func (x Decimal) withConfig(cfg Config) Decimal {
	x = x.clone()
	x.cfg = cfg.std()
	return x.Pad(0, x.cfg.places)
}

// Config returns the configuration of x.
func (x Decimal) Config() Config {
	return x.cfg.std()
}

// DigitsBefore returns the number of stored digits before the decimal point,
// including leading zeros.
func (x Decimal) DigitsBefore() int {
	return x.fix().point
}

// DigitsAfter returns the number of stored digits after the decimal point,
// including trailing zeros.
func (x Decimal) DigitsAfter() int {
	x = x.fix()
	return len(x.digits) - x.point
}

// IsZero returns whether x is zero.
func (x Decimal) IsZero() bool {
	for _, c := range x.digits {
		if c != '0' {
			return false
		}
	}
	return true
}

// IsInteger returns whether x has no nonzero fractional digits.
func (x Decimal) IsInteger() bool {
	x = x.fix()
	for _, c := range x.digits[x.point:] {
		if c != '0' {
			return false
		}
	}
	return true
}

// Sign returns -1, 0, or 1 according to the sign of x.
func (x Decimal) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Normalize removes leading zeros from the integer part, keeping at least one
// digit, and trailing zeros from the fractional part, keeping at least the
// configured number of decimal places.
func (x Decimal) Normalize() Decimal {
	x = x.fix()
	i := 0
	for x.point-i > 1 && x.digits[i] == '0' {
		i++
	}
	j := len(x.digits)
	for j-x.point > x.cfg.places && x.digits[j-1] == '0' {
		j--
	}
	d := make([]byte, j-i, j-i+x.cfg.places)
	copy(d, x.digits[i:j])
	x.point -= i
	if n := x.cfg.places - (len(d) - x.point); n > 0 {
		d = append(d, zeros(n)...)
	}
	x.digits = d
	if x.IsZero() {
		x.neg = false
	}
	return x
}

// Pad returns x with leading and trailing zeros added until there are at
// least leading digits before the decimal point and trailing digits after it.
// Pad never removes digits.
func (x Decimal) Pad(leading, trailing int) Decimal {
	x = x.fix()
	lead := leading - x.point
	if lead < 0 {
		lead = 0
	}
	trail := trailing - (len(x.digits) - x.point)
	if trail < 0 {
		trail = 0
	}
	d := make([]byte, 0, lead+len(x.digits)+trail)
	d = append(d, zeros(lead)...)
	d = append(d, x.digits...)
	d = append(d, zeros(trail)...)
	x.digits = d
	x.point += lead
	return x
}

// normalizeBoth returns copies of x and y padded to the same number of digits
// before and after the decimal point.
func normalizeBoth(x, y Decimal) (Decimal, Decimal) {
	x, y = x.fix(), y.fix()
	lead := max(x.DigitsBefore(), y.DigitsBefore())
	trail := max(x.DigitsAfter(), y.DigitsAfter())
	return x.Pad(lead, trail), y.Pad(lead, trail)
}

// Neg returns -x.
func (x Decimal) Neg() Decimal {
	x = x.clone()
	x.neg = !x.neg && !x.IsZero()
	return x
}

// Abs returns |x|.
func (x Decimal) Abs() Decimal {
	x = x.clone()
	x.neg = false
	return x
}

// Times10 returns x multiplied by 10^n by moving the decimal point.
func (x Decimal) Times10(n int) Decimal {
	if n < 0 {
		return x.By10(-n)
	}
	x = x.clone()
	for i := 0; i < n; i++ {
		if len(x.digits)-x.point <= x.cfg.places {
			x.digits = append(x.digits, '0')
		}
		x.point++
	}
	return x
}

// By10 returns x divided by 10^n by moving the decimal point.
func (x Decimal) By10(n int) Decimal {
	if n < 0 {
		return x.Times10(-n)
	}
	x = x.fix()
	lead := n - (x.point - 1)
	if lead < 0 {
		lead = 0
	}
	d := make([]byte, 0, lead+len(x.digits))
	d = append(d, zeros(lead)...)
	x.digits = append(d, x.digits...)
	x.point += lead - n
	return x
}

// Trunc returns the integer part of x.
func (x Decimal) Trunc() Decimal {
	x = x.fix()
	d := make([]byte, x.point, x.point+x.cfg.places)
	copy(d, x.digits[:x.point])
	d = append(d, zeros(x.cfg.places)...)
	y := Decimal{neg: x.neg, digits: d, point: x.point, cfg: x.cfg}
	if y.IsZero() {
		y.neg = false
	}
	return y
}

// Compare returns -1 if x < y, 0 if x == y, and 1 if x > y.
func (x Decimal) Compare(y Decimal) int {
	x, y = x.fix(), y.fix()
	switch {
	case x.IsZero() && y.IsZero():
		return 0
	case !x.neg && y.neg:
		return 1
	case x.neg && !y.neg:
		return -1
	}
	c := cmpMag(x, y)
	if x.neg {
		c = -c
	}
	return c
}

// CompareValue compares x with v after converting v with New using the
// configuration of x.
func (x Decimal) CompareValue(v any) (int, error) {
	y, err := New(v, x.Config())
	if err != nil {
		return 0, err
	}
	return x.Compare(y), nil
}

// Equals returns whether x == y.
func (x Decimal) Equals(y Decimal) bool {
	return x.Compare(y) == 0
}

// LessThan returns whether x < y.
func (x Decimal) LessThan(y Decimal) bool {
	return x.Compare(y) < 0
}

// cmpMag compares |x| and |y|.
func cmpMag(x, y Decimal) int {
	a, b := normalizeBoth(x, y)
	return bytes.Compare(a.digits, b.digits)
}
