package numeral

import "testing"

func TestDecodeHan(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{"一", 1},
		{"十", 10},
		{"二十", 20},
		{"一百零一", 101},
		{"三千二百", 3200},
	}
	for _, c := range cases {
		got, ok := decodeHan(c.raw)
		if !ok {
			t.Fatalf("decodeHan(%q): no match", c.raw)
		}
		if got != c.want {
			t.Errorf("decodeHan(%q) = %d, want %d", c.raw, got, c.want)
		}
	}
}

func TestDecodeHan_Invalid(t *testing.T) {
	if _, ok := decodeHan(""); ok {
		t.Error("decodeHan(\"\") should not match")
	}
	if _, ok := decodeHan("abc"); ok {
		t.Error("decodeHan(\"abc\") should not match")
	}
}

func TestDecodeRoman(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{"I", 1},
		{"IV", 4},
		{"IX", 9},
		{"XL", 40},
		{"XC", 90},
		{"CD", 400},
		{"CM", 900},
		{"III", 3},
		{"MCMLXXXIV", 1984},
		{"mcmxcix", 1999},
	}
	for _, c := range cases {
		got, ok := decodeRoman(c.raw)
		if !ok {
			t.Fatalf("decodeRoman(%q): no match", c.raw)
		}
		if got != c.want {
			t.Errorf("decodeRoman(%q) = %d, want %d", c.raw, got, c.want)
		}
	}
}

func TestDecodeRoman_UnicodeCompat(t *testing.T) {
	// U+2163 ROMAN NUMERAL FOUR NFKC-decomposes to "IV".
	got, ok := decodeRoman("Ⅳ")
	if !ok || got != 4 {
		t.Errorf("decodeRoman(U+2163) = %d, %v, want 4, true", got, ok)
	}
}

func TestDecodeArabic(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"1999", 1999},
		{"１２３", 123}, // full-width "123"
	}
	for _, c := range cases {
		got, ok := decodeArabic(c.raw)
		if !ok {
			t.Fatalf("decodeArabic(%q): no match", c.raw)
		}
		if got != c.want {
			t.Errorf("decodeArabic(%q) = %d, want %d", c.raw, got, c.want)
		}
	}
}

func TestParser_Extract(t *testing.T) {
	var arabic, hanCommon, romanMixed *Parser
	for _, p := range Registry {
		switch p.Name {
		case "arabic":
			arabic = p
		case "han-common":
			hanCommon = p
		case "ascii-roman-mixed":
			romanMixed = p
		}
	}
	if arabic == nil || hanCommon == nil || romanMixed == nil {
		t.Fatal("registry missing expected parsers")
	}

	t.Run("arabic prefix and suffix", func(t *testing.T) {
		m := arabic.Extract("Chapter 12: The Beginning")
		if m == nil {
			t.Fatal("expected a match")
		}
		if m.Number != 12 || m.Prefix != "Chapter " || m.Suffix != ": The Beginning" {
			t.Errorf("unexpected match: %+v", m)
		}
	})

	t.Run("han common", func(t *testing.T) {
		m := hanCommon.Extract("第二十章 起源")
		if m == nil || m.Number != 20 {
			t.Fatalf("expected 20, got %+v", m)
		}
	})

	t.Run("mixed-case roman requires both cases", func(t *testing.T) {
		if m := romanMixed.Extract("Section IV"); m != nil {
			t.Errorf("all-uppercase run should not satisfy requireBoth: %+v", m)
		}
		m := romanMixed.Extract("Section Iv")
		if m == nil || m.Number != 4 {
			t.Fatalf("expected 4 from mixed-case run, got %+v", m)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if m := arabic.Extract("no numbers here"); m != nil {
			t.Errorf("expected nil, got %+v", m)
		}
	})
}
