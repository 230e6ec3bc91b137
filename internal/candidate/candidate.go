// Package candidate generates heading patterns from an article context:
// numeric patterns grouped by numeral parser and literal prefix/suffix, and
// prefix patterns grown from common line-leading token sequences.
package candidate

import (
	"math"
	"regexp"
	"strings"

	"github.com/jackzampolin/tocscan/internal/article"
	"github.com/jackzampolin/tocscan/internal/constants"
	"github.com/jackzampolin/tocscan/internal/heading"
)

// Generate runs both candidate-generation paths over ctx and returns every
// pattern that cleared its beauty threshold. An error is only ever an
// *engineerr.InvariantError: a defect serious enough to abort the run.
func Generate(ctx *article.Context) ([]*heading.Pattern, error) {
	var patterns []*heading.Pattern

	numeric, err := generateNumeric(ctx)
	if err != nil {
		return nil, err
	}
	patterns = append(patterns, numeric...)

	prefix, err := generatePrefix(ctx)
	if err != nil {
		return nil, err
	}
	patterns = append(patterns, prefix...)

	return patterns, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func collapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(s, " ")
}

// commonPrefix returns the longest common leading substring of strs,
// character by character.
func commonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	prefix := []rune(strs[0])
	for _, s := range strs[1:] {
		r := []rune(s)
		i := 0
		for i < len(prefix) && i < len(r) && prefix[i] == r[i] {
			i++
		}
		prefix = prefix[:i]
		if len(prefix) == 0 {
			break
		}
	}
	return string(prefix)
}

// commonTokenPrefix returns the longest common leading run of tokens
// shared by every entry in seqs, concatenated back into a string.
func commonTokenPrefix(seqs [][]string) string {
	if len(seqs) == 0 {
		return ""
	}
	n := len(seqs[0])
	for _, s := range seqs[1:] {
		if len(s) < n {
			n = len(s)
		}
	}
	matched := 0
	for i := 0; i < n; i++ {
		tok := seqs[0][i]
		ok := true
		for _, s := range seqs[1:] {
			if s[i] != tok {
				ok = false
				break
			}
		}
		if !ok {
			break
		}
		matched++
	}
	var b strings.Builder
	for i := 0; i < matched; i++ {
		b.WriteString(seqs[0][i])
	}
	return b.String()
}

func startsWithLetter(tok string) bool {
	for _, r := range tok {
		return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r > 127
	}
	return false
}

const maxGenericPrefixMatches = float64(constants.MaxContentsLength) / constants.PrefixMinRatio

func powFrac(base, exp float64) float64 {
	if base <= 0 {
		return 0
	}
	return math.Pow(base, exp)
}
