package bundle

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/storestartup/cldr/internal/number"
)

func TestLoadMultiDocumentFile(t *testing.T) {
	b, err := Load("testdata/en.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := b.Locales()
	if len(got) != 2 {
		t.Fatalf("Locales() = %v, want 2 entries", got)
	}
}

func TestLoadPatternLookup(t *testing.T) {
	b, err := Load("testdata/en.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p, ok := b.Pattern(language.English, "currency")
	if !ok {
		t.Fatal("Pattern(en, currency) not found")
	}
	if want := "¤#,##0.00"; p != want {
		t.Errorf("Pattern(en, currency) = %q, want %q", p, want)
	}
}

func TestLoadGermanSymbolsSwapDecimalAndGroup(t *testing.T) {
	b, err := Load("testdata/en.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	data, ok := b.Lookup(language.German)
	if !ok {
		t.Fatal("Lookup(de) not found")
	}
	if got, want := data.Symbols[number.SymDecimal], ","; got != want {
		t.Errorf("de decimal symbol = %q, want %q", got, want)
	}
	if got, want := data.Symbols[number.SymGroup], "."; got != want {
		t.Errorf("de group symbol = %q, want %q", got, want)
	}
}

func TestLoadMergesAcrossFiles(t *testing.T) {
	b, err := Load("testdata/en.yaml", "testdata/bn.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	data, ok := b.Lookup(language.MustParse("bn"))
	if !ok {
		t.Fatal("Lookup(bn) not found")
	}
	if got, want := data.Digits.Digit('5'), '৫'; got != want {
		t.Errorf("bn digit for '5' = %q, want %q", got, want)
	}
	if got, want := data.MinGrouping, 1; got != want {
		t.Errorf("bn MinGrouping = %d, want %d", got, want)
	}
	if got, want := data.NumberSystem, "beng"; got != want {
		t.Errorf("bn NumberSystem = %q, want %q", got, want)
	}
}

func TestLoadDefaultsNumberSystemToLatn(t *testing.T) {
	b, err := Load("testdata/en.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	data, ok := b.Lookup(language.English)
	if !ok {
		t.Fatal("Lookup(en) not found")
	}
	if got, want := data.NumberSystem, "latn"; got != want {
		t.Errorf("en NumberSystem = %q, want %q", got, want)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load("testdata/no-such-file.yaml")
	if err == nil {
		t.Error("Load(missing file) succeeded, want error")
	}
}
