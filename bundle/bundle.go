// Package bundle holds a loaded set of per-locale formatting data: symbols,
// minimum grouping digits, a numbering system, and named-style pattern
// strings ("standard", "currency", "percent", "scientific", "accounting").
// It is the thing cldrfmt.CldrContext consults instead of the tiny built-in
// table in internal/number/locale.go, which exists only so that package is
// independently usable.
package bundle

import (
	"golang.org/x/text/language"

	"github.com/storestartup/cldr/internal/number"
)

// LocaleData is one locale's complete formatting data.
type LocaleData struct {
	Symbols     number.Symbols
	Digits      number.DigitSystem
	MinGrouping int

	// NumberSystem names the CLDR numbering system Digits' glyphs belong
	// to (e.g. "latn", "beng"), so a caller's requested number_system
	// option can be checked against what this locale actually has rather
	// than accepted on faith. Load sets it to "latn" when a locale file
	// leaves it unset.
	NumberSystem string

	// Patterns maps a named style ("standard", "currency", "percent",
	// "permille", "scientific", "accounting") to its CLDR pattern string.
	Patterns map[string]string
}

// Bundle is an immutable, read-only collection of LocaleData, safe for
// concurrent use by any number of callers: nothing in cldrfmt's hot path
// mutates it once loaded.
type Bundle struct {
	locales map[string]LocaleData
}

// New returns an empty Bundle. Callers typically populate one via Load
// rather than Add, but Add is exported for programmatic construction (e.g.
// in tests).
func New() *Bundle {
	return &Bundle{locales: make(map[string]LocaleData)}
}

// Add installs data for tag, overwriting any existing entry.
func (b *Bundle) Add(tag language.Tag, data LocaleData) {
	b.locales[tag.String()] = data
}

// Lookup finds the LocaleData for t, falling back through t's
// locale-inheritance chain via Tag.Parent() ("de-CH-1996" -> "de-CH" ->
// "de" -> Und) the same way internal/number's built-in table does. ok is
// false if no ancestor has an entry.
func (b *Bundle) Lookup(t language.Tag) (data LocaleData, ok bool) {
	for t != language.Und {
		if d, found := b.locales[t.String()]; found {
			return d, true
		}
		t = t.Parent()
	}
	return LocaleData{}, false
}

// Pattern resolves style ("standard", "currency", ...) to a pattern string
// for t, per Lookup's fallback rule.
func (b *Bundle) Pattern(t language.Tag, style string) (string, bool) {
	data, ok := b.Lookup(t)
	if !ok {
		return "", false
	}
	p, ok := data.Patterns[style]
	return p, ok
}

// Locales returns the BCP-47 tags this Bundle has direct (non-fallback)
// entries for.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for k := range b.locales {
		out = append(out, k)
	}
	return out
}
