package number

import (
	"golang.org/x/text/language"
)

// localeEntry is one row of the package's small built-in locale table. Real
// production locale data (the full CLDR symbol and pattern set) is supplied
// externally by a bundle; this table exists only so InitDecimal and its
// siblings are usable standalone, exactly as golang.org/x/text/internal/
// number bakes its own generated symbol tables directly into the package.
type localeEntry struct {
	symbols     Symbols
	digits      DigitSystem
	minGrouping int
}

func rootSymbols() Symbols {
	var s Symbols
	s[SymDecimal] = "."
	s[SymGroup] = ","
	s[SymList] = ";"
	s[SymPercentSign] = "%"
	s[SymPlusSign] = "+"
	s[SymMinusSign] = "-"
	s[SymExponential] = "E"
	s[SymSuperscriptingExponent] = "×"
	s[SymPerMille] = "‰"
	s[SymInfinity] = "∞"
	s[SymNan] = "NaN"
	s[SymTimeSeparator] = ":"
	return s
}

var beng = NewDigitSystem("০১২৩৪৫৬৭৮৯")

var localeTable = map[string]localeEntry{
	"en": {symbols: rootSymbols(), digits: Latn, minGrouping: 1},
	"de": {symbols: func() Symbols {
		s := rootSymbols()
		s[SymDecimal] = ","
		s[SymGroup] = "."
		return s
	}(), digits: Latn, minGrouping: 1},
	"de-CH": {symbols: func() Symbols {
		s := rootSymbols()
		s[SymDecimal] = "."
		s[SymGroup] = "’"
		return s
	}(), digits: Latn, minGrouping: 1},
	"fr": {symbols: func() Symbols {
		s := rootSymbols()
		s[SymDecimal] = ","
		s[SymGroup] = " "
		return s
	}(), digits: Latn, minGrouping: 1},
	"bn": {symbols: func() Symbols {
		s := rootSymbols()
		s[SymDecimal] = "."
		s[SymGroup] = ","
		return s
	}(), digits: beng, minGrouping: 1},
}

// lookupLocale walks t's locale-inheritance chain via Tag.Parent()
// (e.g. "de-CH-1996" -> "de-CH" -> "de" -> Und) looking for a table entry,
// falling back to root (plain ASCII, "." decimal, "," group) if nothing
// matches, the same walk golang.org/x/text/internal/number does.
func lookupLocale(t language.Tag) (Symbols, DigitSystem, int) {
	for t != language.Und {
		if e, ok := localeTable[t.String()]; ok {
			return e.symbols, e.digits, e.minGrouping
		}
		t = t.Parent()
	}
	return rootSymbols(), Latn, 1
}
