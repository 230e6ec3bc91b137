package toc

import (
	"math"
	"sort"

	"github.com/jackzampolin/tocscan/internal/article"
	"github.com/jackzampolin/tocscan/internal/beauty"
	"github.com/jackzampolin/tocscan/internal/constants"
	"github.com/jackzampolin/tocscan/internal/engineerr"
	"github.com/jackzampolin/tocscan/internal/heading"
	"github.com/jackzampolin/tocscan/internal/numeral"
	"github.com/jackzampolin/tocscan/internal/template"
)

// Select deduplicates, ranks, re-applies the surviving templates to the
// article, re-scores them, and returns the best. It returns
// engineerr.ErrNoHeadingsFound (not a real error) when nothing clears
// BeautyMin2.
func Select(ctx *article.Context, patterns []*heading.Pattern) (*Result, error) {
	deduped := dedupeByTemplate(patterns)

	var numeric, prefix []*heading.Pattern
	for _, p := range deduped {
		if p.Kind == heading.KindNumber {
			numeric = append(numeric, p)
		} else {
			prefix = append(prefix, p)
		}
	}
	numeric = rankAndTruncate(numeric)
	prefix = rankAndTruncate(prefix)

	candidates := make([]*heading.Pattern, 0, len(numeric)+len(prefix))
	candidates = append(candidates, numeric...)
	candidates = append(candidates, prefix...)

	for _, p := range candidates {
		if err := rescore(ctx, p); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Beauty != candidates[j].Beauty {
			return candidates[i].Beauty > candidates[j].Beauty
		}
		return candidates[i].Priority < candidates[j].Priority
	})

	if len(candidates) == 0 || candidates[0].Beauty < constants.BeautyMin2 {
		return nil, engineerr.ErrNoHeadingsFound
	}

	best := candidates[0]
	return &Result{
		Content:  best.Contents,
		Template: best.Template,
		Beauty:   best.Beauty,
	}, nil
}

func dedupeByTemplate(patterns []*heading.Pattern) []*heading.Pattern {
	seen := make(map[string]struct{}, len(patterns))
	out := make([]*heading.Pattern, 0, len(patterns))
	for _, p := range patterns {
		if _, ok := seen[p.Template]; ok {
			continue
		}
		seen[p.Template] = struct{}{}
		out = append(out, p)
	}
	return out
}

func rankAndTruncate(patterns []*heading.Pattern) []*heading.Pattern {
	sort.SliceStable(patterns, func(i, j int) bool { return patterns[i].Beauty > patterns[j].Beauty })
	if len(patterns) > constants.TemplateCount1 {
		patterns = patterns[:constants.TemplateCount1]
	}
	return patterns
}

// rescore re-scans the article against p's compiled template, rebuilds its
// contents, and recomputes its beauty. A compile failure is recoverable:
// the pattern degrades to a never-match and scores 0, per the
// recoverable-regex-syntax error kind.
func rescore(ctx *article.Context, p *heading.Pattern) error {
	matcher, _ := template.Compile(p.Template)

	var parser *numeral.Parser
	if p.Kind == heading.KindNumber {
		parser = numeral.Registry[p.ParserIndex]
	}

	var contents []heading.Entry
	for _, line := range ctx.Lines {
		if len(line.Raw) > constants.MaxTitleLength {
			continue
		}
		if !matcher.MatchString(line.Title) {
			continue
		}
		entry := heading.Entry{Title: line.Title, Cursor: line.Cursor}
		if parser != nil {
			if m := parser.Extract(line.Title); m != nil {
				n := m.Number
				entry.Number = &n
			}
		}
		contents = append(contents, entry)
	}
	p.Contents = contents

	beta1 := beauty.Size(contents, ctx.Chars) * beauty.Title(contents)
	var beta2 float64
	if p.Kind == heading.KindNumber {
		beta2 = beauty.Num(contents)
	} else {
		beta2 = p.PrefixScore
	}
	overall := beta1 * beta2
	if math.IsNaN(overall) || math.IsInf(overall, 0) || overall < 0 || overall > 1 {
		return engineerr.Invariant("toc.rescore", "beauty factor out of [0,1]")
	}
	p.Beauty = overall
	return nil
}
