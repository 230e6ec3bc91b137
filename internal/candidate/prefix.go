package candidate

import (
	"strings"

	"github.com/jackzampolin/tocscan/internal/article"
	"github.com/jackzampolin/tocscan/internal/beauty"
	"github.com/jackzampolin/tocscan/internal/constants"
	"github.com/jackzampolin/tocscan/internal/engineerr"
	"github.com/jackzampolin/tocscan/internal/heading"
	"github.com/jackzampolin/tocscan/internal/template"
)

func generatePrefix(ctx *article.Context) ([]*heading.Pattern, error) {
	var out []*heading.Pattern

	byFirstToken := make(map[string][]int)
	var order []string
	for li, line := range ctx.Lines {
		if len(line.Tokens) == 0 {
			continue
		}
		t0 := line.Tokens[0]
		if _, ok := byFirstToken[t0]; !ok {
			order = append(order, t0)
		}
		byFirstToken[t0] = append(byFirstToken[t0], li)
	}

	for _, t0 := range order {
		lines := byFirstToken[t0]
		if float64(len(lines)) > maxGenericPrefixMatches {
			continue
		}
		if len(lines) < constants.MinContents {
			continue
		}
		d := float64(ctx.TokenFrequency[t0])
		if startsWithLetter(t0) {
			d *= constants.FactorTextPrefix
		}
		if d == 0 || float64(len(lines))/d < constants.PrefixMinRatio {
			continue
		}
		found, err := findPrefix(ctx, []string{t0}, lines, d)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

func findPrefix(ctx *article.Context, prefixTokens []string, lines []int, d float64) ([]*heading.Pattern, error) {
	depth := len(prefixTokens)
	byNext := make(map[string][]int)
	var order []string
	for _, li := range lines {
		tokens := ctx.Lines[li].Tokens
		if len(tokens) <= depth {
			continue
		}
		next := tokens[depth]
		if _, ok := byNext[next]; !ok {
			order = append(order, next)
		}
		byNext[next] = append(byNext[next], li)
	}

	var extended bool
	var out []*heading.Pattern
	for _, next := range order {
		group := byNext[next]
		if len(group) < constants.MinContents {
			continue
		}
		if float64(len(group))/d < constants.PrefixMinRatio {
			continue
		}
		extended = true
		deeper, err := findPrefix(ctx, append(append([]string{}, prefixTokens...), next), group, d)
		if err != nil {
			return nil, err
		}
		out = append(out, deeper...)
	}

	if !extended {
		terminal, err := searchKeyword(ctx, prefixTokens, lines, d)
		if err != nil {
			return nil, err
		}
		out = append(out, terminal...)
	}
	return out, nil
}

// searchKeyword looks for a shared token in the suffix (past the fixed
// prefix) of a terminal prefix node's lines, and emits a pattern for each
// bucket selective enough to matter.
func searchKeyword(ctx *article.Context, prefixTokens []string, lines []int, d float64) ([]*heading.Pattern, error) {
	depth := len(prefixTokens)

	type occurrence struct {
		lineIdx int
		rest    []string // tokens following the keyword token, this line
	}
	byToken := make(map[string][]occurrence)
	var order []string
	for _, li := range lines {
		tokens := ctx.Lines[li].Tokens
		if len(tokens) <= depth {
			continue
		}
		suffixTokens := tokens[depth:]
		seen := make(map[string]struct{}, len(suffixTokens))
		for i, tok := range suffixTokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			if _, ok := byToken[tok]; !ok {
				order = append(order, tok)
			}
			byToken[tok] = append(byToken[tok], occurrence{lineIdx: li, rest: suffixTokens[i+1:]})
		}
	}

	var out []*heading.Pattern
	for _, tok := range order {
		bucket := byToken[tok]
		if len(bucket) < constants.MinContents {
			continue
		}
		if float64(len(bucket))/d < constants.PrefixMinRatio {
			continue
		}

		rests := make([][]string, len(bucket))
		for i, occ := range bucket {
			rests[i] = occ.rest
		}
		lcp := commonTokenPrefix(rests)

		prefixStr := strings.Join(prefixTokens, "")
		suffixStr := tok + lcp

		var subset []heading.Entry
		for _, occ := range bucket {
			line := ctx.Lines[occ.lineIdx]
			if strings.Contains(line.Title, suffixStr) {
				subset = append(subset, heading.Entry{Title: line.Title, Cursor: line.Cursor})
			}
		}
		if len(subset) < len(bucket) {
			return nil, engineerr.Invariant("candidate.searchKeyword",
				"prefix-path subset smaller than its generating bucket")
		}

		beta1Base := float64(len(bucket)) / d
		beta1 := powFrac(beta1Base, constants.KeywordUniqueFactor/10.0)
		beta2 := beauty.Title(subset) * beauty.Size(subset, ctx.Chars)
		if beta1*beta2 < constants.BeautyMin1 {
			continue
		}

		text := collapseWhitespace(prefixStr) + "*" + collapseWhitespace(suffixStr)
		if template.ContainsSpecial(prefixStr) || template.ContainsSpecial(suffixStr) {
			text = "/" + template.EscapeLiteral(prefixStr) + ".*" + template.EscapeLiteral(suffixStr) + "/u"
		}

		out = append(out, &heading.Pattern{
			Kind:        heading.KindPrefix,
			Template:    text,
			Key:         heading.Key{ParserIndex: -1, Prefix: prefixStr, Suffix: suffixStr},
			Priority:    10,
			Beauty:      beta1 * beta2,
			PrefixScore: beta1,
		})
	}
	return out, nil
}
