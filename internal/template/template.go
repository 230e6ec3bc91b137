// Package template compiles a heading template — either glob-like or an
// explicit regex literal — into a matcher, and provides the escaping
// helpers candidate generation uses to build template strings.
package template

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher is satisfied by *regexp.Regexp and by the never-match sentinel
// returned for a template whose regex-literal body fails to compile.
type Matcher interface {
	MatchString(s string) bool
}

type neverMatch struct{}

func (neverMatch) MatchString(string) bool { return false }

// NeverMatch is the sentinel returned when a regex-literal template's body
// fails to compile. The caller keeps going; this candidate just never
// matches anything.
var NeverMatch Matcher = neverMatch{}

// Compile parses template and returns its matcher. ok is false when
// template was a regex literal with an invalid body; in that case the
// returned Matcher is NeverMatch and the caller should log and move on
// rather than abort.
func Compile(tmpl string) (m Matcher, ok bool) {
	if body, flags, isLiteral := splitRegexLiteral(tmpl); isLiteral {
		pattern := applyFlags(body, flags)
		re, err := regexp.Compile(pattern)
		if err != nil {
			return NeverMatch, false
		}
		return re, true
	}

	pattern := `^\s*(?:` + globBody(tmpl) + `)`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return NeverMatch, false
	}
	return re, true
}

// splitRegexLiteral recognizes a template of the form "/body/flags": a
// leading slash followed by a closing slash anywhere later.
func splitRegexLiteral(tmpl string) (body, flags string, ok bool) {
	if !strings.HasPrefix(tmpl, "/") {
		return "", "", false
	}
	last := strings.LastIndex(tmpl, "/")
	if last <= 0 {
		return "", "", false
	}
	return tmpl[1:last], tmpl[last+1:], true
}

func applyFlags(body, flags string) string {
	var inline strings.Builder
	for _, f := range flags {
		switch f {
		case 'i':
			inline.WriteByte('i')
		case 'm':
			inline.WriteByte('m')
		case 's':
			inline.WriteByte('s')
		case 'u':
			// Go's regexp already operates over runes; nothing to add.
		}
	}
	if inline.Len() == 0 {
		return body
	}
	return "(?" + inline.String() + ")" + body
}

// globBody translates a glob-like template character-by-character: a space
// becomes a whitespace run, '*' becomes "match anything", '?' becomes "match
// one", and any other regex metacharacter is escaped as a code-point
// literal so it can never be misread as syntax.
func globBody(tmpl string) string {
	var b strings.Builder
	for _, r := range tmpl {
		switch {
		case r == ' ':
			b.WriteString(`\s+`)
		case r == '*':
			b.WriteString(`.*`)
		case r == '?':
			b.WriteString(`.`)
		case isRegexMeta(r):
			fmt.Fprintf(&b, `\x{%04x}`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isRegexMeta(r rune) bool {
	switch r {
	case '.', '*', '?', '+', '(', ')', '|', '[', ']', '{', '}', '^', '$', '\\':
		return true
	}
	return false
}

// EscapeLiteral renders s as a literal match: every regex metacharacter
// escaped as a code-point literal, nothing else special-cased. Candidate
// generation uses this for the prefix/suffix/lcp pieces of a template.
func EscapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isRegexMeta(r) {
			fmt.Fprintf(&b, `\x{%04x}`, r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ContainsSpecial reports whether s contains '/' or '*', the two
// characters that force a glob-form template into its regex-literal
// fallback.
func ContainsSpecial(s string) bool {
	return strings.ContainsAny(s, "/*")
}
