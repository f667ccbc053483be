// Package cldrfmt is the public entry point: it wires together a locale
// bundle, the ISO 4217 currency table, and a CLDR plural-rule engine on top
// of the internal/number pipeline, exposing the single Format operation
// described by the CLDR number-formatting model.
package cldrfmt

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/storestartup/cldr/bundle"
	"github.com/storestartup/cldr/currency"
	"github.com/storestartup/cldr/internal/number"
	"github.com/storestartup/cldr/plural"
)

// PatternSign selects which of a resolved pattern's sub-patterns Format
// uses, overriding the default that derives sub-pattern selection from the
// number's own sign.
type PatternSign int

const (
	// PatternAuto derives the sub-pattern from the value's own sign (the
	// default): non-negative values use the positive sub-pattern, negative
	// values use the negative one.
	PatternAuto PatternSign = iota
	// PatternPositive forces the positive sub-pattern regardless of sign.
	PatternPositive
	// PatternNegative forces the negative sub-pattern (or, absent an
	// explicit one, the synthesized leading minus) regardless of sign.
	PatternNegative
)

// Options is the per-call option bag. Every field has a documented default.
type Options struct {
	// Locale selects which of the context's bundle entries to format with.
	// The zero Tag selects the context's default locale.
	Locale language.Tag
	// NumberSystem selects the numbering system's digit glyphs, e.g.
	// "latn" or "beng". The empty string selects "latn".
	NumberSystem string
	// Currency, if non-empty, is a 3-letter ISO 4217 code consulted for
	// ¤-width currency tokens in the resolved pattern.
	Currency string
	// Cash selects a currency's cash-rounding increment instead of its
	// standard rounding when Currency is set.
	Cash bool
	// RoundingMode overrides the pattern's rounding mode. The zero value
	// is number.HalfEven, CLDR's own default.
	RoundingMode number.RoundingMode
	// FractionalDigits overrides both the minimum and maximum fraction
	// digit count the resolved pattern would otherwise use.
	FractionalDigits *int
	// Pattern selects the sub-pattern to render. The zero value, PatternAuto,
	// derives it from the number's own sign.
	Pattern PatternSign
}

// CldrContext owns everything a Format call needs to resolve locale data,
// currencies, and plural rules, and nothing else is consulted: no
// process-wide singleton locale table or default locale exists outside of
// a context value, so multiple contexts (e.g. per-tenant configuration)
// can coexist in one process without interfering.
type CldrContext struct {
	bundle        *bundle.Bundle
	defaultLocale language.Tag
	pluralizer    plural.Pluralizer
	patterns      *patternCache
}

// NewContext builds a CldrContext backed by b, falling back to
// defaultLocale when a Format call's Options.Locale is the zero Tag. It
// uses plural.Default for currency plural-name resolution; use
// NewContextWithPluralizer to override that.
func NewContext(b *bundle.Bundle, defaultLocale language.Tag) *CldrContext {
	return &CldrContext{
		bundle:        b,
		defaultLocale: defaultLocale,
		pluralizer:    plural.Default,
		patterns:      newPatternCache(),
	}
}

// NewContextWithPluralizer is like NewContext but lets a caller supply a
// custom Pluralizer, e.g. one backed by full CLDR plural.xml data instead
// of the built-in approximation.
func NewContextWithPluralizer(b *bundle.Bundle, defaultLocale language.Tag, p plural.Pluralizer) *CldrContext {
	ctx := NewContext(b, defaultLocale)
	ctx.pluralizer = p
	return ctx
}

// Format renders n according to patternOrName (either a named style —
// "standard", "currency", "percent", "permille", "scientific",
// "accounting" — or a literal CLDR pattern string) and opts. It performs
// every validation before touching the arithmetic kernel: on any error the
// call has no observable side effects, per spec's error-propagation rule.
func (ctx *CldrContext) Format(n number.Number, patternOrName string, opts Options) (string, error) {
	tag := opts.Locale
	if isZeroTag(tag) {
		tag = ctx.defaultLocale
	}

	data, ok := ctx.bundle.Lookup(tag)
	if !ok {
		return "", wrapErr("resolve locale", fmt.Errorf("%w: %s", ErrUnknownLocale, tag))
	}

	numSystem := opts.NumberSystem
	if numSystem == "" {
		numSystem = "latn"
	}
	digitSystem, err := numberSystemFor(numSystem, data)
	if err != nil {
		return "", wrapErr("resolve number system", err)
	}

	var cur currency.Currency
	haveCurrency := opts.Currency != ""
	if haveCurrency {
		cur, err = currency.ParseISO(opts.Currency)
		if err != nil {
			return "", wrapErr("resolve currency", fmt.Errorf("%w: %s", ErrUnknownCurrency, opts.Currency))
		}
	}

	pat, fastPath, err := ctx.resolvePattern(tag, data, patternOrName)
	if err != nil {
		return "", wrapErr("compile pattern", err)
	}

	var f number.Formatter
	switch fastPath {
	case "standard":
		f.InitDecimal(tag)
	case "scientific":
		f.InitScientific(tag)
	case "percent":
		f.InitPercent(tag)
	case "permille":
		f.InitPerMille(tag)
	default:
		f.InitPattern(tag, pat)
	}
	f.Symbols = data.Symbols
	f.System = digitSystem
	f.MinGrouping = data.MinGrouping
	f.RoundingMode = opts.RoundingMode
	switch opts.Pattern {
	case PatternPositive:
		f.SignMode = number.SignForcePositive
	case PatternNegative:
		f.SignMode = number.SignForceNegative
	}

	if opts.FractionalDigits != nil {
		f.Pattern.MinFractionDigits = *opts.FractionalDigits
		f.Pattern.MaxFractionDigits = *opts.FractionalDigits
	}

	if haveCurrency {
		kind := currency.Standard
		if opts.Cash {
			kind = currency.Cash
		}
		scale, increment := kind.Rounding(cur)
		if opts.FractionalDigits == nil {
			f.Pattern.MinFractionDigits = scale
			f.Pattern.MaxFractionDigits = scale
		}
		f.Pattern.RoundIncrement = increment

		ops := plural.OperandsOf(n.Float64(), scale)
		cat := ctx.pluralizer.Select(ops, tag)
		f.Currency = &number.CurrencyInfo{
			Symbol:       cur.Symbol(),
			NarrowSymbol: cur.NarrowSymbol(),
			ISOCode:      cur.String(),
			PluralName:   cur.PluralName(cat),
		}
	}

	return string(f.Format(nil, n)), nil
}

func isZeroTag(t language.Tag) bool {
	return t == language.Tag{}
}

// numberSystemFor resolves system's digit table. "latn" (the identity
// system) is always available; any other name must match the locale's own
// configured NumberSystem exactly, matching spec's non-goal of arbitrary
// numbering-system support beyond what a locale bundle actually carries.
func numberSystemFor(system string, data bundle.LocaleData) (number.DigitSystem, error) {
	if system == "latn" {
		return number.Latn, nil
	}
	if data.NumberSystem == system && data.Digits.IsDecimal() {
		return data.Digits, nil
	}
	return number.DigitSystem{}, fmt.Errorf("%w: %s", ErrUnknownNumberSystem, system)
}
