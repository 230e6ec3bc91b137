package numeral

import "regexp"

const (
	asciiRomanUpper = "IVXLCDM"
	asciiRomanLower = "ivxlcdm"
	// unicodeRomanNumerals covers the Roman numeral compatibility block;
	// NFKC folds each code point to its ASCII letter sequence before decode.
	unicodeRomanNumerals = "Ⅰ-ↂ"
	fullWidthDigits      = "０-９"
)

func newParser(name string, group Group, priority int, pattern string, primary, optional []rune, requireBoth bool, decode decodeFunc) *Parser {
	primarySet := newRuneSet(primary...)
	optionalSet := newRuneSet(optional...)
	charset := newRuneSet(primary...)
	for r := range optionalSet {
		charset.add(r)
	}
	return &Parser{
		Name:        name,
		Group:       group,
		Priority:    priority,
		re:          regexp.MustCompile(pattern),
		decode:      decode,
		primary:     primarySet,
		optional:    optionalSet,
		requireBoth: requireBoth,
		charset:     charset,
	}
}

// Registry is the fixed, ordered set of numeral parsers an article is
// scanned with, grouped Roman, Han, then Arabic. Priority 1 marks parsers
// where a single homogeneous charset suffices; priority 2 marks the mixed
// parsers whose matches strictly require both sub-charsets present. Within
// the Roman group the mixed parser precedes the Unicode one.
var Registry = []*Parser{
	newParser("ascii-roman-upper", GroupRoman, 1,
		`\b[`+asciiRomanUpper+`]+\b`,
		[]rune(asciiRomanUpper), nil, false, decodeRoman),

	newParser("ascii-roman-lower", GroupRoman, 1,
		`\b[`+asciiRomanLower+`]+\b`,
		[]rune(asciiRomanLower), nil, false, decodeRoman),

	newParser("ascii-roman-mixed", GroupRoman, 2,
		`\b[`+asciiRomanUpper+asciiRomanLower+`]+\b`,
		[]rune(asciiRomanUpper), []rune(asciiRomanLower), true, decodeRoman),

	newParser("unicode-roman", GroupRoman, 1,
		`[`+unicodeRomanNumerals+`]+`,
		runRange(0x2160, 0x2182), nil, false, decodeRoman),

	newParser("han-common", GroupHan, 1,
		hanAlternation(hanCommonRunes),
		hanCommonRunes, nil, false, decodeHan),

	newParser("han-formal", GroupHan, 1,
		hanAlternation(hanFormalRunes),
		hanFormalRunes, nil, false, decodeHan),

	newParser("han-mixed", GroupHan, 2,
		hanAlternation(append(append([]rune{}, hanCommonRunes...), hanFormalRunes...)),
		hanCommonRunes, hanFormalRunes, true, decodeHan),

	newParser("arabic", GroupNumeric, 1,
		`\b[0-9]+\b`,
		[]rune("0123456789"), nil, false, decodeArabic),

	newParser("arabic-fullwidth", GroupNumeric, 1,
		`[`+fullWidthDigits+`]+`,
		runRange(0xff10, 0xff19), nil, false, decodeArabic),
}

func runRange(lo, hi rune) []rune {
	out := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}

// hanAlternation builds a character class over the given runes, escaping
// the regexp-meaningful '-' that "两/兩" style aliasing never actually
// introduces but a future rune addition might.
func hanAlternation(runes []rune) string {
	out := []rune{'['}
	for _, r := range runes {
		if r == '-' || r == ']' || r == '^' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	out = append(out, ']', '+')
	return string(out)
}
