// Package toc ties the engine together: build an article context, generate
// candidate patterns, re-score and select the best one.
package toc

import (
	"github.com/jackzampolin/tocscan/internal/article"
	"github.com/jackzampolin/tocscan/internal/candidate"
	"github.com/jackzampolin/tocscan/internal/heading"
)

// Result is the engine's output: the inferred table of contents, the
// template that produced it, and its final beauty score.
type Result struct {
	Content  []heading.Entry
	Template string
	Beauty   float64
}

// Infer normalizes nothing — the caller is expected to have already
// normalized CRLF/CR to LF — and runs the full pipeline over text. When no
// heading pattern clears the threshold it returns a nil Result and
// engineerr.ErrNoHeadingsFound.
func Infer(text string) (*Result, error) {
	ctx := article.Build(text)

	patterns, err := candidate.Generate(ctx)
	if err != nil {
		return nil, err
	}

	return Select(ctx, patterns)
}
