package candidate

import (
	"strings"

	"github.com/jackzampolin/tocscan/internal/article"
	"github.com/jackzampolin/tocscan/internal/beauty"
	"github.com/jackzampolin/tocscan/internal/constants"
	"github.com/jackzampolin/tocscan/internal/heading"
	"github.com/jackzampolin/tocscan/internal/numeral"
	"github.com/jackzampolin/tocscan/internal/template"
	"github.com/jackzampolin/tocscan/internal/tokenize"
)

type numericHit struct {
	lineIdx int
	match   *numeral.Match
}

func generateNumeric(ctx *article.Context) ([]*heading.Pattern, error) {
	var out []*heading.Pattern

	for pi, parser := range numeral.Registry {
		byPrefix := make(map[string][]numericHit)
		var order []string
		for li, line := range ctx.Lines {
			m := line.Numbers[pi]
			if m == nil {
				continue
			}
			prefix := strings.TrimLeft(m.Prefix, " \t")
			if _, ok := byPrefix[prefix]; !ok {
				order = append(order, prefix)
			}
			byPrefix[prefix] = append(byPrefix[prefix], numericHit{lineIdx: li, match: m})
		}

		for _, prefix := range order {
			hits := byPrefix[prefix]
			if len(hits) >= constants.MinContents {
				if p1, p2 := commitNumberPattern(ctx, pi, parser, prefix, "", hits); p1 != nil {
					out = append(out, p1, p2)
				}
			}

			bySuffix := make(map[string][]numericHit)
			var suffixOrder []string
			for _, hit := range hits {
				tokens := tokenize.Line(hit.match.Suffix)
				var growing strings.Builder
				for _, tok := range tokens {
					if tok == "" {
						continue
					}
					growing.WriteString(tok)
					key := growing.String()
					if _, ok := bySuffix[key]; !ok {
						suffixOrder = append(suffixOrder, key)
					}
					bySuffix[key] = append(bySuffix[key], hit)
				}
			}
			for _, suffix := range suffixOrder {
				group := bySuffix[suffix]
				if len(group) < constants.MinContents {
					continue
				}
				if p1, p2 := commitNumberPattern(ctx, pi, parser, prefix, suffix, group); p1 != nil {
					out = append(out, p1, p2)
				}
			}
		}
	}
	return out, nil
}

// commitNumberPattern scores a candidate group of numeral matches sharing a
// prefix (and optionally a suffix bucket) and, if it clears both beauty
// thresholds, emits its glob and regex template twins.
func commitNumberPattern(ctx *article.Context, parserIdx int, parser *numeral.Parser, prefix, suffixKey string, hits []numericHit) (*heading.Pattern, *heading.Pattern) {
	entries := make([]heading.Entry, len(hits))
	infixes := make([]string, len(hits))
	suffixes := make([]string, len(hits))
	for i, h := range hits {
		line := ctx.Lines[h.lineIdx]
		n := h.match.Number
		entries[i] = heading.Entry{Title: line.Title, Cursor: line.Cursor, Number: &n}
		infixes[i] = h.match.Infix
		suffixes[i] = h.match.Suffix
	}

	beta1 := beauty.Num(entries)
	if beta1 < constants.BeautyMin1 {
		return nil, nil
	}
	beta2 := beauty.Size(entries, ctx.Chars) * beauty.Title(entries)
	if beta1*beta2 < constants.BeautyMin1 {
		return nil, nil
	}

	lcp := commonPrefix(suffixes)
	charsetRange := parser.EffectiveCharset(infixes)

	key := heading.Key{ParserIndex: parserIdx, Prefix: prefix, Suffix: lcp}
	overallBeauty := beta1 * beta2

	globText := collapseWhitespace(prefix) + "*" + collapseWhitespace(lcp)
	if template.ContainsSpecial(prefix) || template.ContainsSpecial(lcp) {
		globText = "/" + template.EscapeLiteral(prefix) + ".*" + template.EscapeLiteral(lcp) + "/u"
	}
	globPattern := &heading.Pattern{
		Kind:        heading.KindNumber,
		Template:    globText,
		Key:         key,
		Priority:    10 * parser.Priority,
		Beauty:      overallBeauty,
		ParserIndex: parserIdx,
	}

	regexText := "/^\\s*" + template.EscapeLiteral(prefix) + "[" + charsetRange + "]+" + template.EscapeLiteral(lcp) + "/"
	regexPattern := &heading.Pattern{
		Kind:        heading.KindNumber,
		Template:    regexText,
		Key:         key,
		Priority:    10*parser.Priority + 1,
		Beauty:      overallBeauty,
		ParserIndex: parserIdx,
	}

	return globPattern, regexPattern
}
