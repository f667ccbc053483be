package number

import (
	"math"
	"testing"

	"github.com/govalues/decimal"
)

func TestNumberSignAndAbs(t *testing.T) {
	testCases := []struct {
		name string
		n    Number
		sign int
	}{
		{"int-neg", FromInt(-5), -1},
		{"int-zero", FromInt(0), 0},
		{"int-pos", FromInt(5), 1},
		{"float-neg", FromFloat(-1.5), -1},
		{"float-nan", FromFloat(math.NaN()), 0},
		{"decimal-neg", FromDecimal(decimal.MustParse("-1.20")), -1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.n.Sign(); got != tc.sign {
				t.Errorf("Sign() = %d, want %d", got, tc.sign)
			}
		})
	}
	if got := FromInt(-5).Abs().Sign(); got != 1 {
		t.Errorf("Abs().Sign() = %d, want 1", got)
	}
}

func TestNumberIsIntegral(t *testing.T) {
	if !FromInt(4).IsIntegral() {
		t.Error("FromInt(4).IsIntegral() = false, want true")
	}
	if FromFloat(1.5).IsIntegral() {
		t.Error("FromFloat(1.5).IsIntegral() = true, want false")
	}
	if !FromFloat(2.0).IsIntegral() {
		t.Error("FromFloat(2.0).IsIntegral() = false, want true")
	}
	if !FromDecimal(decimal.MustParse("3")).IsIntegral() {
		t.Error("FromDecimal(3).IsIntegral() = false, want true")
	}
	if FromDecimal(decimal.MustParse("3.10")).IsIntegral() {
		t.Error("FromDecimal(3.10).IsIntegral() = true, want false")
	}
}

func TestRoundDigitsHalfEven(t *testing.T) {
	testCases := []struct {
		digits string
		cut    int
		want   string
	}{
		{"125", 1, "12"},  // 12.5 -> 12 (even)
		{"135", 1, "14"},  // 13.5 -> 14 (even)
		{"120", 1, "12"},  // below half, always down
		{"128", 1, "13"},  // above half, always up
		{"995", 1, "100"}, // carry grows the digit count
	}
	for _, tc := range testCases {
		t.Run(tc.digits, func(t *testing.T) {
			got := string(roundDigits([]byte(tc.digits), tc.cut, false, HalfEven))
			if got != tc.want {
				t.Errorf("roundDigits(%q, %d, HalfEven) = %q, want %q", tc.digits, tc.cut, got, tc.want)
			}
		})
	}
}

func TestRoundDigitsModes(t *testing.T) {
	testCases := []struct {
		mode RoundingMode
		neg  bool
		want string
	}{
		{HalfUp, false, "13"},
		{HalfDown, false, "12"},
		{Up, false, "13"},
		{Down, false, "12"},
		{Ceiling, false, "13"},
		{Ceiling, true, "12"},
		{Floor, false, "12"},
		{Floor, true, "13"},
	}
	for _, tc := range testCases {
		got := string(roundDigits([]byte("125"), 1, tc.neg, tc.mode))
		if got != tc.want {
			t.Errorf("roundDigits(125, cut=1, neg=%v, mode=%v) = %q, want %q", tc.neg, tc.mode, got, tc.want)
		}
	}
}

func TestRoundSignificant(t *testing.T) {
	c := coeff{digits: []byte("12345"), exp: -2} // 123.45
	got := roundSignificant(c, 3, HalfEven)
	intPart, frac := coeffToParts(got)
	if string(intPart) != "123" || len(frac) != 0 {
		t.Errorf("roundSignificant(123.45, 3) = %s.%s, want 123", intPart, frac)
	}
}

func TestRoundFractional(t *testing.T) {
	// 12.345 half-even to 2 decimals: dropped run is "5" (cut=1), kept
	// digits end in 4 (even), so it rounds down to 12.34.
	c := coeff{digits: []byte("12345"), exp: -3}
	got := roundFractional(c, 2, HalfEven)
	intPart, frac := coeffToParts(got)
	if string(intPart) != "12" || string(frac) != "34" {
		t.Errorf("roundFractional(12.345, 2) = %s.%s, want 12.34", intPart, frac)
	}
}

func TestMantissaExponent(t *testing.T) {
	c := coeff{digits: []byte("12345"), exp: 0} // 12345
	mant, exp := mantissaExponent(c)
	if exp != 4 {
		t.Errorf("exp = %d, want 4", exp)
	}
	intPart, frac := coeffToParts(mant)
	if string(intPart) != "1" || string(frac) != "2345" {
		t.Errorf("mantissa = %s.%s, want 1.2345", intPart, frac)
	}
}

func TestAlignExponentEngineering(t *testing.T) {
	c := coeff{digits: []byte("12345"), exp: 0} // 12345
	mant, exp := mantissaExponent(c)
	aligned, chosenExp := alignExponent(mant, exp, 3)
	if chosenExp != 3 {
		t.Errorf("chosenExp = %d, want 3", chosenExp)
	}
	intPart, frac := coeffToParts(aligned)
	if string(intPart) != "12" || string(frac) != "345" {
		t.Errorf("aligned mantissa = %s.%s, want 12.345", intPart, frac)
	}
}

func TestRoundToNearestIncrement(t *testing.T) {
	c := coeff{digits: []byte("17")} // 17
	incr := coeff{digits: []byte("6")}
	got := roundToNearest(c, incr, HalfEven)
	if string(got.digits) != "18" || got.exp != 0 {
		t.Errorf("roundToNearest(17, 6) = %s (exp %d), want 18", got.digits, got.exp)
	}
}

func TestRoundToNearestSkipSentinel(t *testing.T) {
	c := coeff{digits: []byte("17")}
	got := roundToNearest(c, zeroCoeff, HalfEven)
	if string(got.digits) != "17" {
		t.Errorf("roundToNearest(17, 0) = %s, want 17 (no-op)", got.digits)
	}
}
