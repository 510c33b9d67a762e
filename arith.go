package numeric

import "bytes"

// Plus returns x + y with the configuration of x.
func (x Decimal) Plus(y Decimal) Decimal {
	x, y = x.fix(), y.fix()
	if y.IsZero() {
		return x.clone()
	}
	if x.neg == y.neg {
		r := addMag(x, y, x.cfg)
		r.neg = x.neg && !r.IsZero()
		return r
	}
	// Mixed signs: subtract the smaller magnitude from the larger and take
	// the sign of the larger.
	switch cmpMag(x, y) {
	case 0:
		return Zero(x.cfg)
	case 1:
		r := subMag(x, y, x.cfg)
		r.neg = x.neg && !r.IsZero()
		return r
	default:
		r := subMag(y, x, x.cfg)
		r.neg = y.neg && !r.IsZero()
		return r
	}
}

// Minus returns x - y with the configuration of x.
func (x Decimal) Minus(y Decimal) Decimal {
	x, y = x.fix(), y.fix()
	if y.IsZero() {
		return x.clone()
	}
	return x.Plus(y.Neg())
}

// addMag returns |x| + |y|.
func addMag(x, y Decimal, cfg Config) Decimal {
	a, b := normalizeBoth(x, y)
	d := make([]byte, len(a.digits), len(a.digits)+1)
	var carry byte
	for i := len(d) - 1; i >= 0; i-- {
		s := a.digits[i] - '0' + b.digits[i] - '0' + carry
		d[i] = s%10 + '0'
		carry = s / 10
	}
	point := a.point
	if carry > 0 {
		d = append([]byte{carry + '0'}, d...)
		point++
	}
	return Decimal{digits: d, point: point, cfg: cfg}.Normalize()
}

// subMag returns |x| - |y|. Panics if |x| < |y|.
func subMag(x, y Decimal, cfg Config) Decimal {
	a, b := normalizeBoth(x, y)
	d := make([]byte, len(a.digits))
	borrow := 0
	for i := len(d) - 1; i >= 0; i-- {
		v := int(a.digits[i]-'0') - int(b.digits[i]-'0') - borrow
		borrow = 0
		if v < 0 {
			v += 10
			borrow = 1
		}
		d[i] = byte(v) + '0'
	}
	if borrow != 0 {
		panic("numeric: subtraction of a larger magnitude")
	}
	return Decimal{digits: d, point: a.point, cfg: cfg}.Normalize()
}

// isOne returns whether x == 1.
func (x Decimal) isOne() bool {
	return x.Equals(FromInt(1, x.cfg))
}

// MultipliedBy returns x * y with the configuration of x.
func (x Decimal) MultipliedBy(y Decimal) Decimal {
	x, y = x.fix(), y.fix()
	if y.IsZero() {
		return Zero(x.cfg)
	}
	if y.isOne() {
		return x.clone()
	}
	// Schoolbook multiplication, one row per digit of y. Row i contributes
	// to positions i through i+len(x.digits) of the product.
	prod := make([]int, len(x.digits)+len(y.digits))
	for i := len(y.digits) - 1; i >= 0; i-- {
		dy := int(y.digits[i] - '0')
		if dy == 0 {
			continue
		}
		carry := 0
		for j := len(x.digits) - 1; j >= 0; j-- {
			k := i + j + 1
			p := prod[k] + dy*int(x.digits[j]-'0') + carry
			prod[k] = p % 10
			carry = p / 10
		}
		prod[i] += carry
	}
	d := make([]byte, len(prod))
	for i, v := range prod {
		d[i] = byte(v) + '0'
	}
	r := Decimal{
		neg:    x.neg != y.neg,
		digits: d,
		point:  len(d) - x.DigitsAfter() - y.DigitsAfter(),
		cfg:    x.cfg,
	}
	return r.Normalize()
}

// DividedBy returns x / y with the configuration of x. Inexact quotients are
// truncated toward zero after the configured maximum number of decimal
// places; they are never rounded. If y is zero, the error is
// ErrDivisionByZero.
func (x Decimal) DividedBy(y Decimal) (Decimal, error) {
	x, y = x.fix(), y.fix()
	if y.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	if y.isOne() {
		return x.clone(), nil
	}
	if x.Equals(y) {
		return FromInt(1, x.cfg), nil
	}
	// With X and Y the digits of x and y read as integers,
	// x/y = (X * 10^fy) / (Y * 10^fx).
	num := make([]byte, 0, len(x.digits)+y.DigitsAfter())
	num = append(num, x.digits...)
	num = append(num, zeros(y.DigitsAfter())...)
	den := make([]byte, 0, len(y.digits)+x.DigitsAfter())
	den = append(den, trimZeros(y.digits)...)
	den = append(den, zeros(x.DigitsAfter())...)

	// Long division. Each digit of num yields one integer digit of the
	// quotient; after that, implicit zeros yield fractional digits until the
	// remainder vanishes or the precision limit is reached.
	q := make([]byte, 0, len(num)+x.cfg.maxPlaces)
	var rem []byte
	frac := 0
	for i := 0; ; i++ {
		c := byte('0')
		if i < len(num) {
			c = num[i]
		} else {
			if len(rem) == 0 || frac >= x.cfg.maxPlaces {
				break
			}
			frac++
		}
		if len(rem) > 0 || c != '0' {
			rem = append(rem, c)
		}
		dig := byte(0)
		for dig < 9 && magCmp(mulDigit(den, dig+1), rem) <= 0 {
			dig++
		}
		if dig > 0 {
			rem = magSub(rem, mulDigit(den, dig))
		}
		q = append(q, dig+'0')
	}
	r := Decimal{
		neg:    x.neg != y.neg,
		digits: q,
		point:  len(num),
		cfg:    x.cfg,
	}
	return r.Normalize(), nil
}

// The following operate on unsigned integers stored as ASCII digits, most
// significant first. Results carry no leading zeros; zero is empty.

// trimZeros removes leading zeros.
func trimZeros(a []byte) []byte {
	for len(a) > 0 && a[0] == '0' {
		a = a[1:]
	}
	return a
}

func magCmp(a, b []byte) int {
	a, b = trimZeros(a), trimZeros(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return bytes.Compare(a, b)
}

// mulDigit returns a * d for a single digit d.
func mulDigit(a []byte, d byte) []byte {
	if d == 0 {
		return nil
	}
	r := make([]byte, len(a)+1)
	var carry byte
	for i := len(a) - 1; i >= 0; i-- {
		p := (a[i]-'0')*d + carry
		r[i+1] = p%10 + '0'
		carry = p / 10
	}
	r[0] = carry + '0'
	return trimZeros(r)
}

// magSub returns a - b. Panics if a < b.
func magSub(a, b []byte) []byte {
	r := make([]byte, len(a))
	borrow := 0
	for i, j := len(a)-1, len(b)-1; i >= 0; i, j = i-1, j-1 {
		v := int(a[i]-'0') - borrow
		if j >= 0 {
			v -= int(b[j] - '0')
		}
		borrow = 0
		if v < 0 {
			v += 10
			borrow = 1
		}
		r[i] = byte(v) + '0'
	}
	if borrow != 0 {
		panic("numeric: magnitude underflow")
	}
	return trimZeros(r)
}
