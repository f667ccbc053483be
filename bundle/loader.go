package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/storestartup/cldr/internal/number"
)

// rawLocaleFile is the YAML shape one locale data file decodes into. Every
// field but Locale is optional; unset symbol fields keep defaultSymbols'
// value and an unset Digits keeps plain ASCII digits.
type rawLocaleFile struct {
	Locale      string            `yaml:"locale"`
	Decimal     string            `yaml:"decimal"`
	Group       string            `yaml:"group"`
	PercentSign string            `yaml:"percent_sign"`
	PlusSign    string            `yaml:"plus_sign"`
	MinusSign   string            `yaml:"minus_sign"`
	Exponential string            `yaml:"exponential"`
	PerMille    string            `yaml:"per_mille"`
	Infinity    string            `yaml:"infinity"`
	Nan         string            `yaml:"nan"`
	MinGrouping  int               `yaml:"min_grouping"`
	NumberSystem string            `yaml:"number_system"`
	Digits       string            `yaml:"digits"` // ten glyphs, "0".."9" in order
	Patterns     map[string]string `yaml:"patterns"`
}

// defaultSymbols is the ASCII/root fallback used for any symbol a locale
// file doesn't override.
func defaultSymbols() number.Symbols {
	var s number.Symbols
	s[number.SymDecimal] = "."
	s[number.SymGroup] = ","
	s[number.SymList] = ";"
	s[number.SymPercentSign] = "%"
	s[number.SymPlusSign] = "+"
	s[number.SymMinusSign] = "-"
	s[number.SymExponential] = "E"
	s[number.SymSuperscriptingExponent] = "×"
	s[number.SymPerMille] = "‰"
	s[number.SymInfinity] = "∞"
	s[number.SymNan] = "NaN"
	s[number.SymTimeSeparator] = ":"
	return s
}

// Load reads and merges one or more locale YAML files into a new Bundle. A
// later file's locale entry overwrites an earlier one's in full (no
// per-field merge across files); within a single file, unset fields fall
// back to defaultSymbols/plain ASCII digits.
func Load(paths ...string) (*Bundle, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("bundle: no paths given")
	}
	b := New()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("bundle: read %s: %w", path, err)
		}
		if err := loadFile(b, path, data); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func loadFile(b *Bundle, path string, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var raw rawLocaleFile
		err := dec.Decode(&raw)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("bundle: parse %s: %w", path, err)
		}
		if raw.Locale == "" {
			return fmt.Errorf("bundle: %s: missing locale field", path)
		}
		tag, err := language.Parse(raw.Locale)
		if err != nil {
			return fmt.Errorf("bundle: %s: invalid locale %q: %w", path, raw.Locale, err)
		}
		b.Add(tag, rawToLocaleData(raw))
	}
	return nil
}

func rawToLocaleData(raw rawLocaleFile) LocaleData {
	sym := defaultSymbols()
	overrides := []struct {
		field string
		typ   number.SymbolType
	}{
		{raw.Decimal, number.SymDecimal},
		{raw.Group, number.SymGroup},
		{raw.PercentSign, number.SymPercentSign},
		{raw.PlusSign, number.SymPlusSign},
		{raw.MinusSign, number.SymMinusSign},
		{raw.Exponential, number.SymExponential},
		{raw.PerMille, number.SymPerMille},
		{raw.Infinity, number.SymInfinity},
		{raw.Nan, number.SymNan},
	}
	for _, o := range overrides {
		if o.field != "" {
			sym[o.typ] = o.field
		}
	}

	digits := number.Latn
	if raw.Digits != "" {
		digits = number.NewDigitSystem(raw.Digits)
	}

	minGroup := raw.MinGrouping
	if minGroup == 0 {
		minGroup = 1
	}

	numSystem := raw.NumberSystem
	if numSystem == "" {
		numSystem = "latn"
	}

	return LocaleData{
		Symbols:      sym,
		Digits:       digits,
		MinGrouping:  minGroup,
		NumberSystem: numSystem,
		Patterns:     raw.Patterns,
	}
}
