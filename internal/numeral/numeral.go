// Package numeral implements pluggable extractors that find a number
// embedded in a line of text, one per numeral system (Han, Roman, Arabic,
// and their script variants).
package numeral

import (
	"regexp"
	"slices"
)

// Group tags the numeral system a Parser recognizes.
type Group string

const (
	GroupHan     Group = "han"
	GroupRoman   Group = "roman"
	GroupNumeric Group = "numeric"
)

// Match is produced by a Parser against a line.
type Match struct {
	Prefix string // text before the numeral run
	Infix  string // the numeral run itself
	Suffix string // text after the numeral run
	Number int64  // the decoded integer
}

// decodeFunc turns a matched numeral run into an integer. It returns ok=false
// when the run does not decode to a finite, in-range integer.
type decodeFunc func(raw string) (value int64, ok bool)

// Parser is an immutable numeral-system extractor. The nine parsers
// configured in registry.go are instances of this single type: a regex over
// a primary/optional charset, a required-presence rule, and a decoder.
type Parser struct {
	Name     string
	Group    Group
	Priority int

	re          *regexp.Regexp
	decode      decodeFunc
	primary     runeSet // must contribute at least one rune to any match
	optional    runeSet // may appear in a match but never required alone
	requireBoth bool    // match must draw from both primary and optional
	charset     runeSet // primary ∪ optional, cached for EffectiveCharset
}

// maxSafeNumber bounds decoded values: chapter numbers above 2^62 indicate
// garbage input and are treated as "no number found".
const maxSafeNumber = int64(1) << 62

// Extract scans line for numeral runs in order and returns the first one
// that satisfies the parser's primary/optional presence rule and decodes to
// a finite in-range integer. It returns nil when none qualifies.
func (p *Parser) Extract(line string) *Match {
	for _, loc := range p.re.FindAllStringIndex(line, -1) {
		infix := line[loc[0]:loc[1]]
		if !p.satisfiesCharsetRule(infix) {
			continue
		}
		value, ok := p.decode(infix)
		if !ok || value < 0 || value > maxSafeNumber {
			continue
		}
		return &Match{
			Prefix: line[:loc[0]],
			Infix:  infix,
			Suffix: line[loc[1]:],
			Number: value,
		}
	}
	return nil
}

func (p *Parser) satisfiesCharsetRule(infix string) bool {
	sawPrimary, sawOptional := false, false
	for _, r := range infix {
		switch {
		case p.primary.contains(r):
			sawPrimary = true
		case p.optional.contains(r):
			sawOptional = true
		}
	}
	if !sawPrimary {
		return false
	}
	if p.requireBoth && !sawOptional {
		return false
	}
	return true
}

// EffectiveCharset returns the compacted range form (e.g. "0-9") of the
// primary+optional runes observed in infixes, used when synthesizing a
// regex-form template for a candidate pattern.
func (p *Parser) EffectiveCharset(observed []string) string {
	used := make(runeSet)
	for _, infix := range observed {
		for _, r := range infix {
			if p.charset.contains(r) {
				used.add(r)
			}
		}
	}
	if len(used) == 0 {
		used = p.charset
	}
	return used.compactRanges()
}

// runeSet is a small set of runes with a compaction helper for building
// regex character-class ranges.
type runeSet map[rune]struct{}

func newRuneSet(runes ...rune) runeSet {
	s := make(runeSet, len(runes))
	for _, r := range runes {
		s[r] = struct{}{}
	}
	return s
}

func (s runeSet) add(r rune)           { s[r] = struct{}{} }
func (s runeSet) contains(r rune) bool { _, ok := s[r]; return ok }

// compactRanges returns the sorted runes of s fused into ranges, consecutive
// code points joined with '-', e.g. {0,1,2,3} -> "0-3".
func (s runeSet) compactRanges() string {
	if len(s) == 0 {
		return ""
	}
	runes := make([]rune, 0, len(s))
	for r := range s {
		runes = append(runes, r)
	}
	slices.Sort(runes)

	var out []rune
	i := 0
	for i < len(runes) {
		j := i
		for j+1 < len(runes) && runes[j+1] == runes[j]+1 {
			j++
		}
		if j == i {
			out = append(out, runes[i])
		} else if j == i+1 {
			out = append(out, runes[i], runes[j])
		} else {
			out = append(out, runes[i], '-', runes[j])
		}
		i = j + 1
	}
	return string(out)
}
