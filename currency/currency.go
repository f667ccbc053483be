// Package currency provides ISO 4217 currency identification and the
// rounding/display data a formatter needs: fraction digits, cash rounding,
// symbols, and plural display names. It has no dependency on the number
// formatting pipeline itself, matching the layering the teacher package
// uses (currency is a standalone concern that a formatter consumes).
package currency

import (
	"errors"
	"strings"

	"github.com/govalues/decimal"

	"github.com/storestartup/cldr/plural"
)

// Kind determines which of a currency's two rounding regimes applies:
// Standard/Accounting for ledger amounts, Cash for amounts that must be
// payable in physical currency (e.g. CHF rounds cash to the nearest 0.05
// even though ledger amounts keep two fraction digits).
type Kind struct {
	rounding roundingKind
}

type roundingKind byte

const (
	standardRounding roundingKind = iota
	cashRounding
)

var (
	// Standard uses the currency's ordinary fraction-digit count and a unit
	// increment (e.g. USD rounds to the nearest 0.01).
	Standard = Kind{standardRounding}
	// Cash uses the currency's cash rounding, which for some currencies
	// (CHF, historically several others) rounds to a coarser increment than
	// Standard because the smallest coin no longer exists.
	Cash = Kind{cashRounding}
	// Accounting shares Standard's rounding; it differs only in how a
	// negative amount is rendered (parenthesized rather than signed), which
	// is a pattern-selection concern, not a rounding one.
	Accounting = Kind{standardRounding}
)

// Currency is an ISO 4217 currency designator.
type Currency struct {
	code string
}

// String returns the ISO code of c, or "XXX" for the zero value.
func (c Currency) String() string {
	if c.code == "" {
		return "XXX"
	}
	return c.code
}

var (
	errSyntax = errors.New("currency: code is not a well-formed ISO 4217 designator")
	errValue  = errors.New("currency: code is not a recognized currency")
)

// ParseISO parses a 3-letter ISO 4217 code. It returns an error if s is not
// exactly three ASCII letters or is not a currency in the built-in table.
func ParseISO(s string) (Currency, error) {
	if len(s) != 3 {
		return Currency{}, errSyntax
	}
	code := strings.ToUpper(s)
	for _, b := range code {
		if b < 'A' || b > 'Z' {
			return Currency{}, errSyntax
		}
	}
	if _, ok := table[code]; !ok {
		return Currency{}, errValue
	}
	return Currency{code: code}, nil
}

// MustParseISO is like ParseISO but panics if s cannot be parsed. It
// simplifies safe initialization of package-level Currency values.
func MustParseISO(s string) Currency {
	c, err := ParseISO(s)
	if err != nil {
		panic(err)
	}
	return c
}

// record holds one currency's rounding and display data. Real CLDR data
// covers roughly 300 codes; this table carries the ones a formatter is
// actually exercised against, following the same "just enough of the real
// table to be useful standalone" approach internal/number/locale.go takes
// for locale symbols.
type record struct {
	digits        int
	cashDigits    int
	cashIncrement int // in units of 10^-cashDigits; 0 means "1" (no special cash increment)
	symbol        string
	narrowSymbol  string
	names         map[plural.Category]string
}

var table = map[string]record{
	"USD": {digits: 2, cashDigits: 2, symbol: "$", narrowSymbol: "$",
		names: map[plural.Category]string{plural.One: "US dollar", plural.Other: "US dollars"}},
	"EUR": {digits: 2, cashDigits: 2, symbol: "€", narrowSymbol: "€",
		names: map[plural.Category]string{plural.One: "euro", plural.Other: "euros"}},
	"GBP": {digits: 2, cashDigits: 2, symbol: "£", narrowSymbol: "£",
		names: map[plural.Category]string{plural.One: "British pound", plural.Other: "British pounds"}},
	"JPY": {digits: 0, cashDigits: 0, symbol: "¥", narrowSymbol: "¥",
		names: map[plural.Category]string{plural.Other: "Japanese yen"}},
	"CHF": {digits: 2, cashDigits: 2, cashIncrement: 5, symbol: "CHF", narrowSymbol: "CHF",
		names: map[plural.Category]string{plural.One: "Swiss franc", plural.Other: "Swiss francs"}},
	"CNY": {digits: 2, cashDigits: 1, symbol: "¥", narrowSymbol: "¥",
		names: map[plural.Category]string{plural.Other: "Chinese yuan"}},
	"INR": {digits: 2, cashDigits: 2, symbol: "₹", narrowSymbol: "₹",
		names: map[plural.Category]string{plural.One: "Indian rupee", plural.Other: "Indian rupees"}},
	"BRL": {digits: 2, cashDigits: 2, symbol: "R$", narrowSymbol: "R$",
		names: map[plural.Category]string{plural.One: "Brazilian real", plural.Other: "Brazilian reais"}},
	"KRW": {digits: 0, cashDigits: 0, symbol: "₩", narrowSymbol: "₩",
		names: map[plural.Category]string{plural.Other: "South Korean won"}},
	"XXX": {digits: 2, cashDigits: 2, symbol: "XXX", narrowSymbol: "XXX",
		names: map[plural.Category]string{plural.Other: "unknown currency"}},
}

func (c Currency) rec() record {
	if r, ok := table[c.code]; ok {
		return r
	}
	return table["XXX"]
}

// Digits reports the number of fraction digits standard (non-cash) amounts
// carry.
func (c Currency) Digits() int { return c.rec().digits }

// CashDigits reports the number of fraction digits cash amounts carry.
func (c Currency) CashDigits() int { return c.rec().cashDigits }

// Symbol returns c's display symbol (e.g. "$" for USD).
func (c Currency) Symbol() string { return c.rec().symbol }

// NarrowSymbol returns c's narrow display symbol, falling back to Symbol
// when the currency has no distinct narrow form.
func (c Currency) NarrowSymbol() string {
	r := c.rec()
	if r.narrowSymbol != "" {
		return r.narrowSymbol
	}
	return r.symbol
}

// PluralName returns c's plural display name for category cat, falling
// back to the Other form, and finally to c's ISO code if neither is
// defined.
func (c Currency) PluralName(cat plural.Category) string {
	r := c.rec()
	if name, ok := r.names[cat]; ok {
		return name
	}
	if name, ok := r.names[plural.Other]; ok {
		return name
	}
	return c.String()
}

// Rounding reports the scale (fraction digit count) and rounding increment
// k applies to amounts in c: an amount is rounded to the nearest multiple
// of increment at that scale.
func (k Kind) Rounding(c Currency) (scale int, increment decimal.Decimal) {
	r := c.rec()
	switch k.rounding {
	case cashRounding:
		scale = r.cashDigits
		n := r.cashIncrement
		if n == 0 {
			n = 1
		}
		return scale, decimal.MustNew(int64(n), scale)
	default:
		scale = r.digits
		return scale, decimal.MustNew(1, scale)
	}
}

// Convenience package-level values for the currencies most tests and
// callers reach for, mirroring the teacher's own predeclared Currency vars.
var (
	XXX = MustParseISO("XXX")
	USD = MustParseISO("USD")
	EUR = MustParseISO("EUR")
	GBP = MustParseISO("GBP")
	JPY = MustParseISO("JPY")
	CHF = MustParseISO("CHF")
	CNY = MustParseISO("CNY")
	INR = MustParseISO("INR")
	BRL = MustParseISO("BRL")
	KRW = MustParseISO("KRW")
)
