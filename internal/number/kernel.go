package number

import (
	"math"
	"math/big"
	"strconv"

	"github.com/govalues/decimal"
)

// RoundingMode selects how a value exactly halfway between two candidates
// is rounded, and how truncation is biased for non-halfway values. The set
// mirrors the modes named in java.math.RoundingMode, which is the widest
// common vocabulary for this across the ecosystem.
type RoundingMode int

const (
	// HalfEven rounds ties to the nearest even neighbor (banker's rounding).
	// This is the default: it is the rounding CLDR itself specifies for
	// currency and decimal formatting absent an explicit override.
	HalfEven RoundingMode = iota
	// HalfUp rounds ties away from zero.
	HalfUp
	// HalfDown rounds ties towards zero.
	HalfDown
	// Up rounds away from zero.
	Up
	// Down truncates towards zero.
	Down
	// Ceiling rounds towards positive infinity.
	Ceiling
	// Floor rounds towards negative infinity.
	Floor
)

// numKind tags the representation backing a Number value.
type numKind int

const (
	kindInt numKind = iota
	kindFloat
	kindDecimal
)

// Number is a tagged union over the three numeric representations the
// formatter accepts: a 64-bit integer, an IEEE-754 float, or an
// arbitrary-precision decimal. It is the pipeline's entry-point value.
type Number struct {
	kind numKind
	i    int64
	f    float64
	d    decimal.Decimal
}

// FromInt wraps an integer.
func FromInt(i int64) Number { return Number{kind: kindInt, i: i} }

// FromFloat wraps a float64, including NaN and ±Inf.
func FromFloat(f float64) Number { return Number{kind: kindFloat, f: f} }

// FromDecimal wraps an arbitrary-precision decimal.
func FromDecimal(d decimal.Decimal) Number { return Number{kind: kindDecimal, d: d} }

// IsNaN reports whether n is a floating-point NaN. Int and Decimal values
// are never NaN.
func (n Number) IsNaN() bool {
	return n.kind == kindFloat && math.IsNaN(n.f)
}

// IsInf reports whether n is a floating-point infinity, and if so, its
// sign. Int and Decimal values are never infinite.
func (n Number) IsInf() (neg bool, ok bool) {
	if n.kind != kindFloat || !math.IsInf(n.f, 0) {
		return false, false
	}
	return n.f < 0, true
}

// IsIntegral reports whether n has no fractional part. Formatter.Format
// does not call it.
func (n Number) IsIntegral() bool {
	switch n.kind {
	case kindInt:
		return true
	case kindFloat:
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			return true // treated as integer: nothing to widen
		}
		return n.f == math.Trunc(n.f)
	case kindDecimal:
		return n.d.Trim(0).Scale() == 0
	}
	return true
}

// Sign returns -1, 0, or 1. NaN reports 0.
func (n Number) Sign() int {
	switch n.kind {
	case kindInt:
		switch {
		case n.i < 0:
			return -1
		case n.i > 0:
			return 1
		}
		return 0
	case kindFloat:
		switch {
		case math.IsNaN(n.f):
			return 0
		case n.f < 0:
			return -1
		case n.f > 0:
			return 1
		}
		return 0
	case kindDecimal:
		if n.d.IsNeg() {
			return -1
		}
		if n.d.IsPos() {
			return 1
		}
		return 0
	}
	return 0
}

// Float64 returns n's value as a float64, for callers (the plural-rule
// engine) that only need an approximate magnitude, not exact arithmetic.
func (n Number) Float64() float64 {
	switch n.kind {
	case kindInt:
		return float64(n.i)
	case kindFloat:
		return n.f
	case kindDecimal:
		f, _ := strconv.ParseFloat(n.d.String(), 64)
		return f
	}
	return 0
}

// Abs returns the absolute value of n.
func (n Number) Abs() Number {
	switch n.kind {
	case kindInt:
		if n.i < 0 {
			n.i = -n.i
		}
	case kindFloat:
		n.f = math.Abs(n.f)
	case kindDecimal:
		n.d = n.d.Abs()
	}
	return n
}

// MultiplyInt multiplies n by an integer factor (used for the percent/
// permille multiplier, which is always 1, 100, or 1000). A factor of 1 is a
// no-op, matching spec §4.1's "skipped when factor==1". For Decimal, the
// multiplication is exact; for Int and Float, it uses native
// multiplication, matching spec's explicit per-kind semantics.
func (n Number) MultiplyInt(factor int64) Number {
	if factor == 1 {
		return n
	}
	switch n.kind {
	case kindInt:
		n.i *= factor
	case kindFloat:
		n.f *= float64(factor)
	case kindDecimal:
		f, err := decimal.New(factor, 0)
		if err != nil {
			return n
		}
		if r, err := n.d.Mul(f); err == nil {
			n.d = r
		}
	}
	return n
}

// coeff is the arbitrary-precision "coefficient x 10^exp" form spec §3
// specifies for the Decimal variant of Number, generalized here as the
// common working representation for every kind once a value enters the
// rounding kernel. digits holds ASCII '0'-'9', most-significant first, with
// no leading zeros except the single digit "0" representing zero.
type coeff struct {
	neg    bool
	digits []byte
	exp    int
}

// zeroCoeff is the additive identity, used as the "no rounding" sentinel
// for RoundToNearest (spec invariant 7: incr 0 is the skip sentinel).
var zeroCoeff = coeff{digits: []byte{'0'}}

func (c coeff) isZero() bool { return isAllZero(c.digits) }

// toCoeff decomposes a finite Number into its exact coefficient/exponent
// form. Callers must check IsNaN/IsInf first; toCoeff panics on a
// non-finite float, since the caller invariant guarantees it is never
// called in that case.
func toCoeff(n Number) coeff {
	switch n.kind {
	case kindInt:
		neg := n.i < 0
		u := n.i
		if neg {
			u = -u
		}
		return coeff{neg: neg, digits: trimLeadingZeros([]byte(strconv.FormatInt(u, 10)))}
	case kindFloat:
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			panic("number: toCoeff called on non-finite float")
		}
		return floatToCoeff(n.f)
	case kindDecimal:
		return decimalToCoeff(n.d)
	}
	panic("number: invalid Number kind")
}

// floatToCoeff produces the exact decimal digits of the shortest
// round-tripping decimal representation of f, which is what every
// consumer of a float64 (fmt, encoding/json, ...) treats as "the" decimal
// value of f.
func floatToCoeff(f float64) coeff {
	neg := math.Signbit(f)
	if neg {
		f = -f
	}
	// 'e' with precision -1 asks strconv for the shortest decimal that
	// round-trips back to f, e.g. "1.23456e+05".
	s := strconv.AppendFloat(nil, f, 'e', -1, 64)
	mantissa, exp := splitSci(s)
	digits, dot := stripDot(mantissa)
	digits = trimLeadingZeros(digits)
	// dot is the position of the decimal point within the (undotted)
	// mantissa digits; exp shifts that further.
	e := exp - (len(digits) - dot)
	digits = trimTrailingZeros(digits)
	if len(digits) == 0 {
		digits = []byte{'0'}
		e = 0
	}
	return coeff{neg: neg, digits: digits, exp: e}
}

// splitSci splits strconv's 'e'-formatted output ("1.2345e+05") into the
// mantissa ("1.2345") and the base-10 exponent (5).
func splitSci(s []byte) (mantissa []byte, exp int) {
	i := len(s) - 1
	for i >= 0 && s[i] != 'e' {
		i--
	}
	exp10, _ := strconv.Atoi(string(s[i+1:]))
	return s[:i], exp10
}

// stripDot removes the decimal point from mantissa digits and reports its
// original index (i.e. the count of digits before the point).
func stripDot(s []byte) (digits []byte, dotPos int) {
	out := make([]byte, 0, len(s))
	pos := len(s)
	for i, b := range s {
		if b == '.' {
			pos = i
			continue
		}
		out = append(out, b)
	}
	return out, pos
}

// decimalToCoeff reads the coefficient and scale directly off a
// govalues/decimal value: value = coef / 10^scale, i.e. exp = -scale.
func decimalToCoeff(d decimal.Decimal) coeff {
	neg := d.IsNeg()
	d = d.Abs()
	s := strconv.FormatUint(d.Coef(), 10)
	digits := trimLeadingZeros([]byte(s))
	return coeff{neg: neg, digits: digits, exp: -d.Scale()}
}

// roundDigits rounds off the trailing cut digits of digits (a non-negative
// integer represented as ASCII bytes, no leading zeros) according to mode,
// returning the resulting (possibly shorter, possibly one digit longer on
// carry) digit slice with no leading zeros. cut may exceed len(digits), in
// which case digits is conceptually zero-padded on the left first.
func roundDigits(digitsIn []byte, cut int, neg bool, mode RoundingMode) []byte {
	if cut <= 0 {
		return digitsIn
	}
	d := digitsIn
	if cut >= len(d) {
		pad := make([]byte, cut-len(d)+1)
		for i := range pad {
			pad[i] = '0'
		}
		d = append(pad, d...)
	}
	kept := d[:len(d)-cut]
	dropped := d[len(d)-cut:]

	roundUp := shouldRoundUp(kept, dropped, neg, mode)
	if !roundUp {
		return trimLeadingZeros(append([]byte{}, kept...))
	}
	return trimLeadingZeros(incrementDigits(kept))
}

func shouldRoundUp(kept, dropped []byte, neg bool, mode RoundingMode) bool {
	if isAllZero(dropped) {
		return false
	}
	half := make([]byte, len(dropped))
	half[0] = '5'
	for i := 1; i < len(half); i++ {
		half[i] = '0'
	}
	cmp := compareDigits(dropped, half)

	switch mode {
	case Up:
		return true
	case Down:
		return false
	case Ceiling:
		return !neg
	case Floor:
		return neg
	case HalfUp:
		return cmp >= 0
	case HalfDown:
		return cmp > 0
	case HalfEven:
		if cmp != 0 {
			return cmp > 0
		}
		last := kept[len(kept)-1]
		return (last-'0')%2 == 1
	}
	return false
}

// compareDigits compares two equal-length ASCII digit slices numerically.
func compareDigits(a, b []byte) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// incrementDigits adds 1 to the non-negative integer represented by digits,
// growing the slice by one byte on overflow (e.g. "99" -> "100").
func incrementDigits(digits []byte) []byte {
	out := append([]byte{}, digits...)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] < '9' {
			out[i]++
			return out
		}
		out[i] = '0'
	}
	return append([]byte{'1'}, out...)
}

// roundSignificant rounds c to k significant digits.
func roundSignificant(c coeff, k int, mode RoundingMode) coeff {
	if k <= 0 || c.isZero() || len(c.digits) <= k {
		return c
	}
	cut := len(c.digits) - k
	digits := roundDigits(c.digits, cut, c.neg, mode)
	return normalizeCoeff(coeff{neg: c.neg, digits: digits, exp: c.exp + cut})
}

// roundFractional rounds c so that it has at most maxFrac digits after the
// decimal point. It is a no-op if c already has fewer fractional digits.
func roundFractional(c coeff, maxFrac int, mode RoundingMode) coeff {
	fracLen := 0
	if c.exp < 0 {
		fracLen = -c.exp
	}
	if fracLen <= maxFrac || c.isZero() {
		return c
	}
	cut := fracLen - maxFrac
	digits := roundDigits(c.digits, cut, c.neg, mode)
	return normalizeCoeff(coeff{neg: c.neg, digits: digits, exp: c.exp + cut})
}

// normalizeCoeff collapses a zero-valued coefficient to the canonical
// {false, "0", 0} form so downstream sign suppression (spec invariant 3)
// works uniformly.
func normalizeCoeff(c coeff) coeff {
	if c.isZero() {
		return coeff{digits: []byte{'0'}}
	}
	return c
}

// mantissaExponent decomposes c into a mantissa m with 1 <= |m| < 10 (or
// m == 0) and a base-10 exponent e such that c == m * 10^e.
func mantissaExponent(c coeff) (mantissa coeff, exp int) {
	if c.isZero() {
		return coeff{digits: []byte{'0'}}, 0
	}
	exp = c.exp + len(c.digits) - 1
	mantissa = coeff{neg: c.neg, digits: c.digits, exp: -(len(c.digits) - 1)}
	return mantissa, exp
}

// alignExponent rounds exp down to the nearest multiple of step (used for
// engineering notation, where step == 3), shifting the mantissa's decimal
// point right to compensate.
func alignExponent(mantissa coeff, exp, step int) (coeff, int) {
	rem := ((exp % step) + step) % step
	if rem == 0 {
		return mantissa, exp
	}
	// Shift the mantissa left by rem digits (i.e. move the decimal point
	// right), which requires rem additional leading digits.
	newExp := exp - rem
	digits := mantissa.digits
	needed := rem + 1 - len(digits)
	if needed > 0 {
		pad := make([]byte, needed)
		for i := range pad {
			pad[i] = '0'
		}
		digits = append(digits, pad...)
	}
	m := coeff{neg: mantissa.neg, digits: digits, exp: mantissa.exp + rem}
	return m, newExp
}

// roundToNearest rounds c to the nearest multiple of incr. incr == zeroCoeff
// (value 0) is the skip sentinel (spec invariant 7).
func roundToNearest(c, incr coeff, mode RoundingMode) coeff {
	if incr.isZero() {
		return c
	}
	common := c.exp
	if incr.exp < common {
		common = incr.exp
	}
	cVal := scaleToBigInt(c, common)
	incrVal := scaleToBigInt(incr, common)
	if incrVal.Sign() == 0 {
		return c
	}

	q, r := new(big.Int).QuoRem(cVal, incrVal, new(big.Int))
	if r.Sign() != 0 {
		twiceR := new(big.Int).Lsh(r, 1)
		cmp := twiceR.CmpAbs(incrVal)
		roundUp := false
		switch mode {
		case Up:
			roundUp = true
		case Down:
			roundUp = false
		case Ceiling:
			roundUp = !c.neg
		case Floor:
			roundUp = c.neg
		case HalfUp:
			roundUp = cmp >= 0
		case HalfDown:
			roundUp = cmp > 0
		case HalfEven:
			if cmp != 0 {
				roundUp = cmp > 0
			} else {
				odd := new(big.Int).And(q, big.NewInt(1)).Sign() != 0
				roundUp = odd
			}
		}
		if roundUp {
			q.Add(q, big.NewInt(1))
		}
	}
	result := new(big.Int).Mul(q, incrVal)
	digits := trimLeadingZeros([]byte(result.String()))
	return normalizeCoeff(coeff{neg: c.neg, digits: digits, exp: common})
}

// scaleToBigInt returns the magnitude of c as an exact integer scaled to
// exponent target (target must be <= c.exp for this to be exact, which is
// always true given how roundToNearest picks common).
func scaleToBigInt(c coeff, target int) *big.Int {
	v := new(big.Int)
	v.SetString(string(c.digits), 10)
	if shift := c.exp - target; shift > 0 {
		v.Mul(v, pow10(shift))
	}
	return v
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
