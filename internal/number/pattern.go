package number

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// tokenKind identifies one element of a compiled format-assembly token
// sequence (spec §6's token alphabet).
type tokenKind int

const (
	tokFormat tokenKind = iota
	tokPad
	tokPlus
	tokMinus
	tokCurrency
	tokPercent
	tokPermille
	tokLiteral
	tokQuotedChar
)

// token is one element of a Pattern's positive or negative token sequence.
type token struct {
	kind tokenKind
	text string // tokLiteral
	ch   rune   // tokQuotedChar
	width int   // tokCurrency: 1-4
}

// Pattern is a compiled CLDR number pattern: the meta record consulted by
// every stage of Formatter.Format. The zero value is not usable; obtain one
// from ParsePattern or one of Formatter's InitXxx convenience constructors.
type Pattern struct {
	MinIntegerDigits int
	MaxIntegerDigits int

	MinFractionDigits int
	MaxFractionDigits int

	MinSignificantDigits int
	MaxSignificantDigits int

	// ExponentDigits is the minimum digit count of a scientific exponent;
	// zero means the pattern is not scientific.
	ExponentDigits     int
	ExponentSignAlways bool

	// GroupingFirst is the size of the rightmost integer digit group;
	// GroupingRest is the size of every group to its left. They differ only
	// for CLDR "Indic" patterns such as "##,##,##0". Zero disables grouping.
	GroupingFirst int
	GroupingRest  int

	FractionGroupingFirst int
	FractionGroupingRest  int

	// Multiplier is applied to the input magnitude before rounding: 1 for
	// plain patterns, 100 for a percent pattern, 1000 for a permille one.
	Multiplier int

	// RoundIncrement is a CLDR rounding-increment pattern's target
	// increment (e.g. "#,##6.00" rounds to the nearest 6). The zero
	// decimal.Decimal is the "no increment" sentinel.
	RoundIncrement decimal.Decimal

	PaddingChar  rune
	PaddingWidth int

	PosTokens []token

	HasExplicitNegative bool
	NegTokens           []token

	// PosHasSignToken records whether PosTokens itself contains a Plus or
	// Minus token; when true and HasExplicitNegative is false, that token
	// is sign-adaptive rather than the default synthesized leading minus.
	PosHasSignToken bool
}

// ParsePattern compiles a CLDR number pattern string, such as "#,##0.00" or
// "¤#,##0.00;(¤#,##0.00)", into a Pattern.
func ParsePattern(s string) (*Pattern, error) {
	pos, neg, hasNeg, err := splitSubpatterns(s)
	if err != nil {
		return nil, err
	}
	p := &Pattern{Multiplier: 1}

	posSub, err := parseSubpattern(pos)
	if err != nil {
		return nil, fmt.Errorf("number: parsing pattern %q: %w", s, err)
	}
	applyShape(p, posSub)
	// A digit run's length before the decimal point doubles as a maximum:
	// "0000" caps the rendered integer part at 4 digits, dropping any more
	// significant digits, the same way CLDR truncates rather than grows a
	// pattern's fixed integer width. That only holds for an ungrouped run;
	// a grouped pattern ("#,##0", "##,##,##0") is open-ended by
	// construction; the placeholder count there sets the group widths, not
	// a ceiling on how many digits can appear. Scientific patterns reuse
	// the same field as the engineering exponent step instead.
	if p.GroupingRest != 0 && p.ExponentDigits == 0 {
		p.MaxIntegerDigits = 0
	}
	p.PosTokens = posSub.tokens
	p.PosHasSignToken = posSub.hasSign
	p.PaddingChar = posSub.padChar
	p.PaddingWidth = posSub.padWidth

	if hasNeg {
		negSub, err := parseSubpattern(neg)
		if err != nil {
			return nil, fmt.Errorf("number: parsing pattern %q: %w", s, err)
		}
		p.HasExplicitNegative = true
		p.NegTokens = negSub.tokens
	}
	return p, nil
}

// splitSubpatterns splits s on the first unquoted ';'.
func splitSubpatterns(s string) (pos, neg string, hasNeg bool, err error) {
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			inQuote = !inQuote
		case ';':
			if !inQuote {
				return s[:i], s[i+1:], true, nil
			}
		}
	}
	if inQuote {
		return "", "", false, fmt.Errorf("number: unterminated quote in pattern %q", s)
	}
	return s, "", false, nil
}

// subpattern is the parser's working state for one polarity's half of a
// pattern string.
type subpattern struct {
	tokens  []token
	hasSign bool
	padChar rune
	padWidth int // measured in runes, excluding the "*X" marker itself

	minInt, maxInt         int
	minFrac, maxFrac       int
	minSig, maxSig         int
	expDigits              int
	expSignAlways          bool
	groupFirst, groupRest  int
	fracGroupFirst, fracGroupRest int
	multiplier             int
	roundIncInt, roundIncFrac []byte
}

func applyShape(p *Pattern, s *subpattern) {
	p.MinIntegerDigits = s.minInt
	p.MaxIntegerDigits = s.maxInt
	p.MinFractionDigits = s.minFrac
	p.MaxFractionDigits = s.maxFrac
	p.MinSignificantDigits = s.minSig
	p.MaxSignificantDigits = s.maxSig
	p.ExponentDigits = s.expDigits
	p.ExponentSignAlways = s.expSignAlways
	p.GroupingFirst = s.groupFirst
	p.GroupingRest = s.groupRest
	p.FractionGroupingFirst = s.fracGroupFirst
	p.FractionGroupingRest = s.fracGroupRest
	if s.multiplier != 0 {
		p.Multiplier = s.multiplier
	}
	hasIncr := len(s.roundIncInt) > 0 && !isAllZero(s.roundIncInt) || len(s.roundIncFrac) > 0 && !isAllZero(s.roundIncFrac)
	if hasIncr {
		intPart := s.roundIncInt
		if len(intPart) == 0 {
			intPart = []byte{'0'}
		}
		str := string(intPart)
		if len(s.roundIncFrac) > 0 {
			str += "." + string(s.roundIncFrac)
		}
		if inc, err := decimal.ParseExact(str, len(s.roundIncFrac)); err == nil {
			p.RoundIncrement = inc
		}
	}
}

// parseSubpattern scans one polarity's pattern text into a subpattern,
// walking a small rune-at-a-time state loop (the idiom used throughout the
// pack's other tokenizers): a run of digit-run characters ('0', '#', '@',
// ',', '.', and once a run has started, the rounding-increment digits
// '1'-'9') is accumulated into shape counters and closed into a single
// tokFormat token; everything else becomes an affix token in sequence.
func parseSubpattern(s string) (*subpattern, error) {
	sp := &subpattern{}
	runes := []rune(s)
	i := 0
	emittedFormat := false
	rawLen := 0 // rune count of s, minus the "*X" marker, for padding width

	for i < len(runes) {
		r := runes[i]
		switch {
		case r == '\'':
			// Quoted literal run: everything up to the next apostrophe is
			// literal text; "''" is a literal apostrophe.
			j := i + 1
			var buf strings.Builder
			closed := false
			for j < len(runes) {
				if runes[j] == '\'' {
					if j+1 < len(runes) && runes[j+1] == '\'' {
						buf.WriteRune('\'')
						j += 2
						continue
					}
					closed = true
					j++
					break
				}
				buf.WriteRune(runes[j])
				j++
			}
			if !closed {
				return nil, fmt.Errorf("unterminated quoted literal at %d", i)
			}
			sp.tokens = append(sp.tokens, token{kind: tokLiteral, text: buf.String()})
			rawLen += len([]rune(buf.String()))
			i = j

		case r == '*':
			if i+1 >= len(runes) {
				return nil, fmt.Errorf("dangling pad marker at %d", i)
			}
			sp.padChar = runes[i+1]
			sp.tokens = append(sp.tokens, token{kind: tokPad})
			i += 2

		case r == '0' || r == '#' || r == '@' || r == ',' || r == '.':
			j := i
			for j < len(runes) && isDigitRunRune(runes[j]) {
				j++
			}
			run := runes[i:j]
			consumeDigitRun(sp, run)
			if !emittedFormat {
				sp.tokens = append(sp.tokens, token{kind: tokFormat})
				emittedFormat = true
			}
			rawLen += len(run)
			i = j

		case r == 'E':
			j := i + 1
			signAlways := false
			if j < len(runes) && runes[j] == '+' {
				signAlways = true
				j++
			}
			k := j
			for k < len(runes) && runes[k] == '0' {
				k++
			}
			if k == j {
				return nil, fmt.Errorf("malformed exponent marker at %d", i)
			}
			sp.expDigits = k - j
			sp.expSignAlways = signAlways
			rawLen += k - i
			i = k

		case r == '+':
			sp.tokens = append(sp.tokens, token{kind: tokPlus})
			sp.hasSign = true
			rawLen++
			i++

		case r == '-':
			sp.tokens = append(sp.tokens, token{kind: tokMinus})
			sp.hasSign = true
			rawLen++
			i++

		case r == '%':
			sp.tokens = append(sp.tokens, token{kind: tokPercent})
			sp.multiplier = 100
			rawLen++
			i++

		case r == '‰':
			sp.tokens = append(sp.tokens, token{kind: tokPermille})
			sp.multiplier = 1000
			rawLen++
			i++

		case r == '¤':
			j := i
			for j < len(runes) && runes[j] == '¤' {
				j++
			}
			w := j - i
			if w > 4 {
				w = 4
			}
			sp.tokens = append(sp.tokens, token{kind: tokCurrency, width: w})
			rawLen += j - i
			i = j

		default:
			// Any other rune is an ordinary literal, coalesced with its
			// neighbors.
			j := i
			for j < len(runes) && !isSpecialPatternRune(runes[j]) {
				j++
			}
			text := string(runes[i:j])
			sp.tokens = append(sp.tokens, token{kind: tokLiteral, text: text})
			rawLen += len([]rune(text))
			i = j
		}
	}

	if !emittedFormat {
		return nil, fmt.Errorf("pattern has no digit placeholders")
	}
	finalizeShape(sp)
	if sp.padChar != 0 {
		sp.padWidth = rawLen // rawLen never counted the two-rune "*X" marker
		if sp.padWidth < 0 {
			sp.padWidth = 0
		}
	}
	return sp, nil
}

func isDigitRunRune(r rune) bool {
	return r >= '0' && r <= '9' || r == '#' || r == '@' || r == ',' || r == '.'
}

func isSpecialPatternRune(r rune) bool {
	switch r {
	case '\'', '*', '0', '#', '@', ',', '.', 'E', '+', '-', '%', '‰', '¤':
		return true
	}
	return false
}

// consumeDigitRun folds one run of digit-run characters into the
// subpattern's shape counters. It supports both the standard '0'/'#'
// integer.fraction vocabulary and the '@' significant-digit vocabulary, and
// detects an embedded rounding-increment (a nonzero literal digit amid the
// '0'/'#' placeholders, e.g. "#,##6.00").
func consumeDigitRun(sp *subpattern, run []rune) {
	dot := -1
	for i, r := range run {
		if r == '.' {
			dot = i
			break
		}
	}
	var intPart, fracPart []rune
	if dot < 0 {
		intPart = run
	} else {
		intPart = run[:dot]
		fracPart = run[dot+1:]
	}

	sawAt := false
	for _, r := range intPart {
		switch r {
		case ',':
			// Group boundaries are derived separately, below.
		case '@':
			sawAt = true
			sp.minSig++
			sp.maxSig++
		case '#':
			if sawAt {
				// '#' following '@' widens MaxSignificantDigits without
				// requiring the extra digits (spec: "@@##" -> min=2, max=4).
				sp.maxSig++
				continue
			}
			sp.maxInt++
			sp.roundIncInt = append(sp.roundIncInt, '0')
		case '0':
			sp.minInt++
			sp.maxInt++
			sp.roundIncInt = append(sp.roundIncInt, '0')
		default:
			if r >= '1' && r <= '9' {
				sp.minInt++
				sp.maxInt++
				sp.roundIncInt = append(sp.roundIncInt, byte(r))
			}
		}
	}
	sp.groupFirst, sp.groupRest = groupSizes(intPart)

	for _, r := range fracPart {
		switch r {
		case ',':
		case '@':
			sawAt = true
			sp.maxSig++
		case '#':
			if sawAt {
				sp.maxSig++
				continue
			}
			sp.maxFrac++
			sp.roundIncFrac = append(sp.roundIncFrac, '0')
		case '0':
			sp.minFrac++
			sp.maxFrac++
			sp.roundIncFrac = append(sp.roundIncFrac, '0')
		default:
			if r >= '1' && r <= '9' {
				sp.minFrac++
				sp.maxFrac++
				sp.roundIncFrac = append(sp.roundIncFrac, byte(r))
			}
		}
	}
	first, rest := groupSizes(fracPart)
	if first != 0 {
		sp.fracGroupFirst, sp.fracGroupRest = first, rest
	}
}

// groupSizes returns the size of the rightmost digit group (first) and the
// size of every group to its left (rest), from a comma-delimited digit run
// such as "#,##,##0". rest is read from the second-to-last segment only when
// the run has three or more segments; otherwise it equals first. Returns
// (0, 0) if there is no comma.
func groupSizes(run []rune) (first, rest int) {
	var groups [][]rune
	cur := []rune{}
	for _, r := range run {
		if r == ',' {
			groups = append(groups, cur)
			cur = nil
			continue
		}
		cur = append(cur, r)
	}
	groups = append(groups, cur)
	if len(groups) < 2 {
		return 0, 0
	}
	last := groups[len(groups)-1]
	first = len(last)
	rest = first
	if len(groups) >= 3 {
		// A third (or further) comma-delimited segment fixes the size of
		// every group left of the primary one; standard two-segment
		// patterns like "#,##0" repeat the primary size uniformly, and the
		// decorative leading "#" is not itself a group-size declaration.
		rest = len(groups[len(groups)-2])
	}
	return first, rest
}

func finalizeShape(sp *subpattern) {
	if sp.maxInt == 0 && sp.minSig == 0 && sp.maxSig == 0 {
		sp.maxInt = 1
	}
	if sp.minInt == 0 && sp.minSig == 0 && sp.maxSig == 0 {
		sp.minInt = 1
	}
}
