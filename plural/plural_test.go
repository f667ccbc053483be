package plural

import (
	"testing"

	"golang.org/x/text/language"
)

func TestSelectGermanic(t *testing.T) {
	testCases := []struct {
		n    int64
		want Category
	}{
		{0, Other},
		{1, One},
		{2, Other},
		{100, Other},
	}
	for _, tc := range testCases {
		got := Default.Select(OperandsOf(float64(tc.n), 0), language.English)
		if got != tc.want {
			t.Errorf("Select(%d, en) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestSelectOtherOnly(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 100} {
		if got := Default.Select(OperandsOf(float64(n), 0), language.Japanese); got != Other {
			t.Errorf("Select(%d, ja) = %v, want Other", n, got)
		}
	}
}

func TestSelectSlavic(t *testing.T) {
	testCases := []struct {
		n    int64
		want Category
	}{
		{1, One},
		{21, One},
		{2, Few},
		{3, Few},
		{4, Few},
		{24, Few},
		{5, Many},
		{11, Many},
		{12, Many},
		{100, Many},
	}
	for _, tc := range testCases {
		got := Default.Select(OperandsOf(float64(tc.n), 0), language.Russian)
		if got != tc.want {
			t.Errorf("Select(%d, ru) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestSelectSlavicFractionalIsOther(t *testing.T) {
	if got := Default.Select(OperandsOf(1.5, 1), language.Russian); got != Other {
		t.Errorf("Select(1.5, ru) = %v, want Other", got)
	}
}

func TestSelectFallsBackToBaseLanguage(t *testing.T) {
	if got := Default.Select(OperandsOf(1, 0), language.AmericanEnglish); got != One {
		t.Errorf("Select(1, en-US) = %v, want One (falls back to en)", got)
	}
}

func TestSelectUnknownLanguageFallsBackToRomance(t *testing.T) {
	got := Default.Select(OperandsOf(0, 0), language.MustParse("zu"))
	if got != One {
		t.Errorf("Select(0, zu) = %v, want One (romance-shaped default)", got)
	}
}

func TestPluralize(t *testing.T) {
	forms := map[Category]string{
		One:   "1 dollar",
		Other: "dollars",
	}
	if got := Pluralize(OperandsOf(1, 0), language.English, forms); got != "1 dollar" {
		t.Errorf("Pluralize(1, en) = %q, want %q", got, "1 dollar")
	}
	if got := Pluralize(OperandsOf(5, 0), language.English, forms); got != "dollars" {
		t.Errorf("Pluralize(5, en) = %q, want %q", got, "dollars")
	}
}

func TestPluralizeMissingCategoryFallsBackToOther(t *testing.T) {
	forms := map[Category]string{Other: "roubles"}
	if got := Pluralize(OperandsOf(1, 0), language.Russian, forms); got != "roubles" {
		t.Errorf("Pluralize(1, ru) = %q, want %q (One has no entry)", got, "roubles")
	}
}
