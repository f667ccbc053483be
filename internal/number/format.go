package number

import (
	"unicode/utf8"

	"golang.org/x/text/language"
)

const (
	sentinelGroup   byte = 0x1D // ASCII Group Separator
	sentinelDecimal byte = 0x1E // ASCII Record Separator
	sentinelExp     byte = 0x1F // ASCII Unit Separator
	sentinelInf     byte = 0x02 // ASCII Start of Text: stands in for the locale's infinity symbol

	// digitMarker prefixes every digit placeholder byte written into an
	// assembled body. Without it, a literal pattern affix that happens to
	// contain an ASCII digit (a quoted '5', a currency code with a digit)
	// would be mistaken for a digit placeholder during transliteration; a
	// NUL byte never appears in valid UTF-8 literal text, so the marker is
	// unambiguous.
	digitMarker byte = 0x00
)

// CurrencyInfo carries the resolved display forms of a currency unit for a
// single Format call, supplied by the caller (the cldrfmt layer, which owns
// currency-table and plural-rule lookups). internal/number stays currency-
// and plural-rule-agnostic, exactly as spec's layering intends.
type CurrencyInfo struct {
	Symbol       string
	NarrowSymbol string
	ISOCode      string
	PluralName   string
}

func (c *CurrencyInfo) display(width int) string {
	if c == nil {
		return ""
	}
	switch width {
	case 1:
		if c.Symbol != "" {
			return c.Symbol
		}
		return c.ISOCode
	case 2:
		return c.ISOCode
	case 3:
		if c.PluralName != "" {
			return c.PluralName
		}
		return c.ISOCode
	case 4:
		if c.NarrowSymbol != "" {
			return c.NarrowSymbol
		}
		return c.display(1)
	}
	return c.ISOCode
}

// SignMode overrides which of a Pattern's sub-patterns Format selects,
// independent of the value's own arithmetic sign.
type SignMode int

const (
	// SignAuto derives the sub-pattern from the value's own sign (the
	// default): non-negative values render the positive sub-pattern,
	// negative values the negative one.
	SignAuto SignMode = iota
	// SignForcePositive always renders the positive sub-pattern.
	SignForcePositive
	// SignForceNegative always renders the negative sub-pattern (or, absent
	// an explicit one, the synthesized leading minus), regardless of the
	// value's actual sign.
	SignForceNegative
)

// Formatter binds a compiled Pattern to a locale's symbols and numbering
// system. It is not safe for concurrent Format calls that mutate Currency
// between calls from different goroutines; callers needing that should use
// separate Formatter values.
type Formatter struct {
	Pattern      Pattern
	Symbols      Symbols
	System       DigitSystem
	MinGrouping  int
	RoundingMode RoundingMode
	Currency     *CurrencyInfo

	// SignMode overrides sub-pattern selection; the zero value, SignAuto,
	// keeps the default sign-derived behavior.
	SignMode SignMode
}

// InitPattern sets f up to format with pat, using locale's symbols and
// digit system.
func (f *Formatter) InitPattern(t language.Tag, pat *Pattern) {
	f.Pattern = *pat
	sym, dig, minGroup := lookupLocale(t)
	f.Symbols = sym
	f.System = dig
	f.MinGrouping = minGroup
	f.RoundingMode = HalfEven
	f.Currency = nil
}

func standardPattern() Pattern {
	return Pattern{
		MinIntegerDigits: 1,
		MaxFractionDigits: 3,
		GroupingFirst:    3,
		GroupingRest:     3,
		Multiplier:       1,
		PosTokens:        []token{{kind: tokFormat}},
	}
}

// InitDecimal configures f for standard decimal formatting in the given
// locale: grouped integer part, up to three fraction digits.
func (f *Formatter) InitDecimal(t language.Tag) {
	p := standardPattern()
	f.InitPattern(t, &p)
}

// InitScientific configures f for scientific notation: a single leading
// mantissa digit, minimum one exponent digit.
func (f *Formatter) InitScientific(t language.Tag) {
	p := Pattern{
		MinIntegerDigits: 1,
		MaxIntegerDigits: 1,
		MaxFractionDigits: 6,
		ExponentDigits:   1,
		Multiplier:       1,
		PosTokens:        []token{{kind: tokFormat}},
	}
	f.InitPattern(t, &p)
}

// InitEngineering configures f for engineering notation: the mantissa's
// exponent is always a multiple of three.
func (f *Formatter) InitEngineering(t language.Tag) {
	p := Pattern{
		MinIntegerDigits: 1,
		MaxIntegerDigits: 3,
		MaxFractionDigits: 6,
		ExponentDigits:   1,
		Multiplier:       1,
		PosTokens:        []token{{kind: tokFormat}},
	}
	f.InitPattern(t, &p)
}

// InitPercent configures f to multiply by 100 and append a percent sign.
func (f *Formatter) InitPercent(t language.Tag) {
	p := standardPattern()
	p.Multiplier = 100
	p.MaxFractionDigits = 0
	p.PosTokens = []token{{kind: tokFormat}, {kind: tokPercent}}
	f.InitPattern(t, &p)
}

// InitPerMille configures f to multiply by 1000 and append a per-mille
// sign.
func (f *Formatter) InitPerMille(t language.Tag) {
	p := standardPattern()
	p.Multiplier = 1000
	p.MaxFractionDigits = 0
	p.PosTokens = []token{{kind: tokFormat}, {kind: tokPermille}}
	f.InitPattern(t, &p)
}

// Format appends the formatted representation of n to dst, returning the
// extended slice. It implements the full pipeline: arithmetic and rounding,
// digit-shape, reassembly, format assembly, and transliteration.
func (f *Formatter) Format(dst []byte, n Number) []byte {
	p := &f.Pattern

	if n.IsNaN() {
		return append(dst, f.Symbols[SymNan]...)
	}

	sign := n.Sign()
	negInput := sign < 0

	if isInfNeg, isInf := n.IsInf(); isInf {
		tup := digits{neg: isInfNeg, special: specialInf}
		return f.assemble(dst, tup)
	}

	mult := p.Multiplier
	if mult == 0 {
		mult = 1
	}
	m := n.Abs().MultiplyInt(int64(mult))
	c := toCoeff(m)
	c.neg = negInput
	c = roundToNearest(c, patternIncrement(p), f.RoundingMode)

	var tup digits
	if p.ExponentDigits > 0 {
		tup = f.shapeScientific(c)
	} else {
		if p.MaxSignificantDigits > 0 {
			c = roundSignificant(c, p.MaxSignificantDigits, f.RoundingMode)
		} else {
			c = roundFractional(c, p.MaxFractionDigits, f.RoundingMode)
		}
		tup = f.shapeStandard(c)
	}
	tup.neg = negInput
	switch f.SignMode {
	case SignForcePositive:
		tup.neg = false
	case SignForceNegative:
		tup.neg = true
	}
	return f.assemble(dst, tup)
}

// patternIncrement returns the pattern's rounding-increment coefficient, or
// zeroCoeff (the skip sentinel) if none is set.
func patternIncrement(p *Pattern) coeff {
	if p.RoundIncrement.IsZero() {
		return zeroCoeff
	}
	return decimalToCoeff(p.RoundIncrement)
}

// coeffToParts splits c's magnitude into ASCII integer and fraction digit
// slices at c's decimal point.
func coeffToParts(c coeff) (intPart, frac []byte) {
	if c.exp >= 0 {
		intPart = append(append([]byte{}, c.digits...), zeros(c.exp)...)
		return intPart, nil
	}
	fracLen := -c.exp
	if fracLen >= len(c.digits) {
		frac = append(zeros(fracLen-len(c.digits)), c.digits...)
		return []byte{'0'}, frac
	}
	split := len(c.digits) - fracLen
	return c.digits[:split], c.digits[split:]
}

func zeros(n int) []byte {
	if n <= 0 {
		return nil
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return b
}

// shapeStandard turns a rounded coefficient into a digit tuple, applying
// leading-zero integer padding, maximum-integer-digit truncation, and
// trailing-zero fraction padding.
func (f *Formatter) shapeStandard(c coeff) digits {
	p := &f.Pattern
	intPart, frac := coeffToParts(c)

	if p.MaxIntegerDigits > 0 && len(intPart) > p.MaxIntegerDigits {
		intPart = intPart[len(intPart)-p.MaxIntegerDigits:]
		intPart = trimLeadingZeros(intPart)
	}
	for len(intPart) < p.MinIntegerDigits {
		intPart = append([]byte{'0'}, intPart...)
	}
	for len(frac) < p.MinFractionDigits {
		frac = append(frac, '0')
	}
	return digits{intPart: intPart, frac: frac}
}

// shapeScientific implements the scientific/engineering mantissa-exponent
// algorithm: the exponent is snapped down to the nearest multiple of
// MaxIntegerDigits (1 for plain scientific, 3 for engineering, or whatever
// a compiled pattern's integer digit-run specifies), and the mantissa is
// rounded to a fixed significant-digit budget so that every representable
// magnitude produces a consistently-sized mantissa.
func (f *Formatter) shapeScientific(c coeff) digits {
	p := &f.Pattern
	mant, exp := mantissaExponent(c)

	step := p.MaxIntegerDigits
	if step < 1 {
		step = 1
	}
	mant, chosenExp := alignExponent(mant, exp, step)

	budget := p.MaxSignificantDigits
	if budget <= 0 {
		effMinInt := p.MinIntegerDigits
		if effMinInt < 1 {
			effMinInt = 1
		}
		budget = effMinInt + p.MaxFractionDigits
	}
	if budget < 1 {
		budget = 1
	}
	mant = roundSignificant(mant, budget, f.RoundingMode)

	intPart, frac := coeffToParts(mant)
	if p.MaxSignificantDigits > 0 {
		// A mantissa that collapsed to a bare zero still owes the pattern
		// its full significant-digit count (e.g. "@@E0" on 0 -> "0.0E0").
		for len(intPart)+len(frac) < budget {
			frac = append(frac, '0')
		}
	}

	expNeg := chosenExp < 0
	expDigits := trimLeadingZeros([]byte(itoa(abs(chosenExp))))
	for len(expDigits) < p.ExponentDigits {
		expDigits = append([]byte{'0'}, expDigits...)
	}
	return digits{intPart: intPart, frac: frac, expNeg: expNeg, exp: expDigits}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// groupInteger inserts sentinelGroup bytes into an ASCII integer digit
// slice at CLDR group boundaries, counted from the right. When first !=
// rest (a CLDR "Indic" pattern), the rightmost `first` digits are peeled
// off and the remainder is grouped uniformly by `rest`.
func groupInteger(digs []byte, first, rest, minGrouping int) []byte {
	n := len(digs)
	if first <= 0 || n < minGrouping || n <= first {
		return digs
	}
	if first != rest && rest > 0 {
		head := groupInteger(digs[:n-first], rest, rest, 0)
		out := append(append([]byte{}, head...), sentinelGroup)
		return append(out, digs[n-first:]...)
	}
	size := first
	rem := n % size
	var out []byte
	if rem > 0 {
		out = append(out, digs[:rem]...)
	}
	for i := rem; i < n; i += size {
		if len(out) > 0 {
			out = append(out, sentinelGroup)
		}
		out = append(out, digs[i:i+size]...)
	}
	return out
}

// groupFraction inserts sentinelGroup bytes into an ASCII fraction digit
// slice every `size` digits, counted from the left. Fraction grouping only
// supports a uniform group size; CLDR patterns never define an Indic-style
// fraction grouping.
func groupFraction(digs []byte, size int) []byte {
	if size <= 0 {
		return digs
	}
	n := len(digs)
	var out []byte
	for i := 0; i < n; i += size {
		if i > 0 {
			out = append(out, sentinelGroup)
		}
		end := i + size
		if end > n {
			end = n
		}
		out = append(out, digs[i:end]...)
	}
	return out
}

// bodyIsZero reports whether tup's numeric body is exactly zero, which
// suppresses the minus sign (spec invariant: no output ever reads "-0").
func bodyIsZero(tup digits) bool {
	return tup.special == specialNone && isAllZero(tup.intPart) && isAllZero(tup.frac)
}

// tokensFor selects the token sequence to render for tup's sign, applying
// the default synthesized-minus rule when the pattern has no explicit
// negative subpattern and no explicit sign token of its own.
func (p *Pattern) tokensFor(neg bool) (toks []token, explicitNegative bool) {
	if !neg {
		return p.PosTokens, false
	}
	if p.HasExplicitNegative {
		return p.NegTokens, true
	}
	if p.PosHasSignToken {
		return p.PosTokens, false
	}
	out := make([]token, 0, len(p.PosTokens)+1)
	out = append(out, token{kind: tokMinus})
	out = append(out, p.PosTokens...)
	return out, false
}

// assemble walks the selected token sequence, producing the final
// (transliterated) byte output. Padding, when the pattern defines it, is
// inserted at the Pad token's position once the sequence's rendered length
// is known.
func (f *Formatter) assemble(dst []byte, tup digits) []byte {
	p := &f.Pattern
	toks, explicitNeg := p.tokensFor(tup.neg)
	zero := bodyIsZero(tup)

	var body []byte
	padAt := -1
	for _, t := range toks {
		switch t.kind {
		case tokFormat:
			body = append(body, f.reassemble(tup)...)
		case tokPad:
			padAt = len(body)
		case tokPlus:
			body = append(body, f.renderSign(true, tup.neg, explicitNeg, zero)...)
		case tokMinus:
			body = append(body, f.renderSign(false, tup.neg, explicitNeg, zero)...)
		case tokCurrency:
			body = append(body, f.Currency.display(t.width)...)
		case tokPercent:
			body = append(body, f.Symbols[SymPercentSign]...)
		case tokPermille:
			body = append(body, f.Symbols[SymPerMille]...)
		case tokLiteral:
			body = append(body, t.text...)
		case tokQuotedChar:
			body = append(body, string(t.ch)...)
		}
	}

	if p.PaddingWidth > 0 && padAt >= 0 {
		body = f.applyPadding(body, padAt)
	}
	return f.transliterate(dst, body)
}

// renderSign resolves a Plus or Minus token to a locale glyph. Outside an
// explicit negative subpattern, the token is sign-adaptive: it renders the
// plus glyph for a non-negative value and the minus glyph (subject to
// zero-suppression) for a negative one, regardless of which of '+'/'-' the
// pattern originally wrote at that position.
func (f *Formatter) renderSign(isPlusToken, neg, explicitNegative, zero bool) string {
	if explicitNegative {
		if isPlusToken {
			return f.Symbols[SymPlusSign]
		}
		if zero {
			return ""
		}
		return f.Symbols[SymMinusSign]
	}
	if !neg {
		return f.Symbols[SymPlusSign]
	}
	if zero {
		return ""
	}
	return f.Symbols[SymMinusSign]
}

// applyPadding inserts copies of the pattern's pad character at byte offset
// at until body reaches PaddingWidth runes. Padding only ever adds; a body
// already at or beyond the target width is left untouched.
func (f *Formatter) applyPadding(body []byte, at int) []byte {
	width := runeCount(body)
	need := f.Pattern.PaddingWidth - width
	if need <= 0 {
		return body
	}
	pad := make([]byte, 0, need*utf8Len(f.Pattern.PaddingChar))
	for i := 0; i < need; i++ {
		pad = append(pad, []byte(string(f.Pattern.PaddingChar))...)
	}
	out := make([]byte, 0, len(body)+len(pad))
	out = append(out, body[:at]...)
	out = append(out, pad...)
	out = append(out, body[at:]...)
	return out
}

// runeCount counts the number of final glyphs body will render as, treating
// a digitMarker byte and the digit byte that follows it as a single glyph.
func runeCount(b []byte) int {
	n := 0
	for i := 0; i < len(b); {
		if b[i] == digitMarker && i+1 < len(b) {
			n++
			i += 2
			continue
		}
		_, size := utf8.DecodeRune(b[i:])
		if size == 0 {
			size = 1
		}
		n++
		i += size
	}
	return n
}

func utf8Len(r rune) int {
	return len(string(r))
}

// reassemble builds the placeholder byte sequence for a tuple's numeric
// body: grouped integer digits, decimal separator and fraction digits (if
// any), and exponent separator/sign/digits (if any). Separators are
// written as sentinel bytes, resolved later by transliterate.
func (f *Formatter) reassemble(tup digits) []byte {
	p := &f.Pattern
	if tup.special == specialInf {
		return []byte{sentinelInf}
	}

	var out []byte
	minGroup := f.MinGrouping + p.GroupingFirst
	intPart := groupInteger(tup.intPart, p.GroupingFirst, p.GroupingRest, minGroup)
	out = appendMarkedDigits(out, intPart)

	if len(tup.frac) > 0 {
		out = append(out, sentinelDecimal)
		frac := tup.frac
		if p.FractionGroupingFirst > 0 {
			frac = groupFraction(frac, p.FractionGroupingFirst)
		}
		out = appendMarkedDigits(out, frac)
	}

	if p.ExponentDigits > 0 {
		out = append(out, sentinelExp)
		if tup.expNeg {
			out = append(out, []byte(f.Symbols[SymMinusSign])...)
		} else if p.ExponentSignAlways {
			out = append(out, []byte(f.Symbols[SymPlusSign])...)
		}
		out = appendMarkedDigits(out, tup.exp)
	}
	return out
}

// appendMarkedDigits appends each byte of digs to dst, preceded by
// digitMarker when the byte is an ASCII digit placeholder and left
// unmarked (a plain pass-through, e.g. an already-inserted sentinelGroup)
// otherwise.
func appendMarkedDigits(dst, digs []byte) []byte {
	for _, b := range digs {
		if b == sentinelGroup {
			dst = append(dst, b)
			continue
		}
		dst = append(dst, digitMarker, b)
	}
	return dst
}

// transliterate performs the pipeline's single substitution pass: ASCII
// digits become the locale numbering system's glyphs, and sentinel bytes
// become the locale's group/decimal/exponent symbols.
func (f *Formatter) transliterate(dst, body []byte) []byte {
	var buf [4]byte
	for i := 0; i < len(body); i++ {
		b := body[i]
		switch {
		case b == digitMarker && i+1 < len(body):
			i++
			n := f.System.WriteDigit(buf[:], body[i])
			dst = append(dst, buf[:n]...)
		case b == sentinelGroup:
			dst = append(dst, f.Symbols[SymGroup]...)
		case b == sentinelDecimal:
			dst = append(dst, f.Symbols[SymDecimal]...)
		case b == sentinelExp:
			dst = append(dst, f.Symbols[SymExponential]...)
		case b == sentinelInf:
			dst = append(dst, f.Symbols[SymInfinity]...)
		default:
			dst = append(dst, b)
		}
	}
	return dst
}
