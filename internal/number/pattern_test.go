package number

import "testing"

func TestParsePatternShape(t *testing.T) {
	testCases := []struct {
		pattern string
		want    Pattern
	}{
		{"0", Pattern{MinIntegerDigits: 1, Multiplier: 1}},
		{"0000", Pattern{MinIntegerDigits: 4, Multiplier: 1}},
		{".0", Pattern{MinIntegerDigits: 1, MinFractionDigits: 1, MaxFractionDigits: 1, Multiplier: 1}},
		{"#,##0.00", Pattern{
			MinIntegerDigits: 1, MinFractionDigits: 2, MaxFractionDigits: 2,
			GroupingFirst: 3, GroupingRest: 3, Multiplier: 1,
		}},
		{"#,##,##0", Pattern{
			MinIntegerDigits: 1, GroupingFirst: 3, GroupingRest: 2, Multiplier: 1,
		}},
		{"%#,##0", Pattern{
			MinIntegerDigits: 1, GroupingFirst: 3, GroupingRest: 3, Multiplier: 100,
		}},
		{"@@##", Pattern{MinSignificantDigits: 2, MaxSignificantDigits: 4, Multiplier: 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			p, err := ParsePattern(tc.pattern)
			if err != nil {
				t.Fatalf("ParsePattern(%q): %v", tc.pattern, err)
			}
			switch {
			case p.MinIntegerDigits != tc.want.MinIntegerDigits:
				t.Errorf("MinIntegerDigits = %d, want %d", p.MinIntegerDigits, tc.want.MinIntegerDigits)
			case p.MinFractionDigits != tc.want.MinFractionDigits:
				t.Errorf("MinFractionDigits = %d, want %d", p.MinFractionDigits, tc.want.MinFractionDigits)
			case p.MaxFractionDigits != tc.want.MaxFractionDigits:
				t.Errorf("MaxFractionDigits = %d, want %d", p.MaxFractionDigits, tc.want.MaxFractionDigits)
			case p.MinSignificantDigits != tc.want.MinSignificantDigits:
				t.Errorf("MinSignificantDigits = %d, want %d", p.MinSignificantDigits, tc.want.MinSignificantDigits)
			case p.MaxSignificantDigits != tc.want.MaxSignificantDigits:
				t.Errorf("MaxSignificantDigits = %d, want %d", p.MaxSignificantDigits, tc.want.MaxSignificantDigits)
			case p.GroupingFirst != tc.want.GroupingFirst:
				t.Errorf("GroupingFirst = %d, want %d", p.GroupingFirst, tc.want.GroupingFirst)
			case p.GroupingRest != tc.want.GroupingRest:
				t.Errorf("GroupingRest = %d, want %d", p.GroupingRest, tc.want.GroupingRest)
			case p.Multiplier != tc.want.Multiplier:
				t.Errorf("Multiplier = %d, want %d", p.Multiplier, tc.want.Multiplier)
			}
		})
	}
}

// TestParsePatternIntegerDigitsCap verifies that a fixed-width digit run
// before the decimal point also caps the rendered integer part at that
// width, dropping more significant digits: "0000" on 12345 renders "2345".
// A grouped/open-ended run ("#,##0") has no fixed width and stays uncapped.
func TestParsePatternIntegerDigitsCap(t *testing.T) {
	p, err := ParsePattern("0000")
	if err != nil {
		t.Fatal(err)
	}
	if p.MaxIntegerDigits != 4 {
		t.Errorf(`ParsePattern("0000").MaxIntegerDigits = %d, want 4`, p.MaxIntegerDigits)
	}

	for _, pat := range []string{"0", "#,##0", "#,##0.00"} {
		p, err := ParsePattern(pat)
		if err != nil {
			t.Fatalf("ParsePattern(%q): %v", pat, err)
		}
		if pat == "0" {
			if p.MaxIntegerDigits != 1 {
				t.Errorf("ParsePattern(%q).MaxIntegerDigits = %d, want 1", pat, p.MaxIntegerDigits)
			}
			continue
		}
		if p.MaxIntegerDigits != 0 {
			t.Errorf("ParsePattern(%q).MaxIntegerDigits = %d, want 0 (uncapped)", pat, p.MaxIntegerDigits)
		}
	}
}

func TestParsePatternScientificKeepsIntegerCap(t *testing.T) {
	p, err := ParsePattern("##0.###E00")
	if err != nil {
		t.Fatal(err)
	}
	if p.MaxIntegerDigits != 3 {
		t.Errorf("MaxIntegerDigits = %d, want 3", p.MaxIntegerDigits)
	}
	if p.ExponentDigits != 2 {
		t.Errorf("ExponentDigits = %d, want 2", p.ExponentDigits)
	}
	if p.MaxFractionDigits != 3 {
		t.Errorf("MaxFractionDigits = %d, want 3", p.MaxFractionDigits)
	}
}

func TestParsePatternNegativeSubpattern(t *testing.T) {
	p, err := ParsePattern("#,##0.00;(#,##0.00)")
	if err != nil {
		t.Fatal(err)
	}
	if !p.HasExplicitNegative {
		t.Fatal("HasExplicitNegative = false, want true")
	}
	if len(p.NegTokens) != 3 {
		t.Fatalf("NegTokens = %v, want 3 tokens (literal '(', format, literal ')')", p.NegTokens)
	}
	if p.NegTokens[0].kind != tokLiteral || p.NegTokens[0].text != "(" {
		t.Errorf("NegTokens[0] = %+v, want literal \"(\"", p.NegTokens[0])
	}
	if p.NegTokens[1].kind != tokFormat {
		t.Errorf("NegTokens[1] = %+v, want tokFormat", p.NegTokens[1])
	}
	if p.NegTokens[2].kind != tokLiteral || p.NegTokens[2].text != ")" {
		t.Errorf("NegTokens[2] = %+v, want literal \")\"", p.NegTokens[2])
	}
}

func TestParsePatternRoundingIncrement(t *testing.T) {
	p, err := ParsePattern("#,##6.00")
	if err != nil {
		t.Fatal(err)
	}
	if p.RoundIncrement.IsZero() {
		t.Fatal("RoundIncrement is zero, want 6.00")
	}
	if got, want := p.RoundIncrement.String(), "6.00"; got != want {
		t.Errorf("RoundIncrement = %s, want %s", got, want)
	}
}

func TestParsePatternPadding(t *testing.T) {
	p, err := ParsePattern("*x#,##0")
	if err != nil {
		t.Fatal(err)
	}
	if p.PaddingChar != 'x' {
		t.Errorf("PaddingChar = %q, want 'x'", p.PaddingChar)
	}
	// rawLen counts every rune of the subpattern except the two-rune "*x"
	// marker: "#,##0" is 5 runes.
	if p.PaddingWidth != 5 {
		t.Errorf("PaddingWidth = %d, want 5", p.PaddingWidth)
	}
}

func TestParsePatternQuotedLiteral(t *testing.T) {
	p, err := ParsePattern("'#'0")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.PosTokens) != 2 {
		t.Fatalf("PosTokens = %v, want 2 tokens", p.PosTokens)
	}
	if p.PosTokens[0].kind != tokLiteral || p.PosTokens[0].text != "#" {
		t.Errorf("PosTokens[0] = %+v, want literal \"#\"", p.PosTokens[0])
	}
}

func TestParsePatternSignToken(t *testing.T) {
	p, err := ParsePattern("0 +")
	if err != nil {
		t.Fatal(err)
	}
	if !p.PosHasSignToken {
		t.Error("PosHasSignToken = false, want true")
	}
	if p.HasExplicitNegative {
		t.Error("HasExplicitNegative = true, want false")
	}
}

func TestParsePatternRejectsMissingDigits(t *testing.T) {
	if _, err := ParsePattern("¤"); err == nil {
		t.Error("ParsePattern(\"¤\") succeeded, want error (no digit placeholder)")
	}
}

func TestParsePatternRejectsUnterminatedQuote(t *testing.T) {
	if _, err := ParsePattern("0'abc"); err == nil {
		t.Error("ParsePattern(\"0'abc\") succeeded, want error (unterminated quote)")
	}
}
