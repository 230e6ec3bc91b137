// Package article builds a single-pass context over a normalized article:
// line records with byte cursors, per-line tokens, a token-to-line-count
// frequency map, and per-line numeral extractions.
package article

import (
	"strings"

	"github.com/jackzampolin/tocscan/internal/constants"
	"github.com/jackzampolin/tocscan/internal/numeral"
	"github.com/jackzampolin/tocscan/internal/tokenize"
)

// LineRecord is one line of the article.
type LineRecord struct {
	Raw    string // the untrimmed source line
	Title  string // Raw with leading/trailing whitespace stripped
	Cursor int    // byte offset of Raw's first byte within the article
	Tokens []string

	// Numbers is parallel to numeral.Registry: Numbers[i] holds the first
	// match numeral.Registry[i] found on this line, or nil.
	Numbers []*numeral.Match
}

// Context is the result of one pass over an article.
type Context struct {
	Chars int // total consumed cursor, including the trailing newline slot
	Lines []LineRecord

	// TokenFrequency maps a token to the number of distinct lines it
	// appears on (a line contributes at most 1 per distinct token).
	TokenFrequency map[string]int
}

// Build scans article (already newline-normalized to LF by the caller) and
// produces its Context in one pass.
func Build(text string) *Context {
	lines := strings.Split(text, "\n")
	ctx := &Context{
		Lines:          make([]LineRecord, 0, len(lines)),
		TokenFrequency: make(map[string]int),
	}

	cursor := 0
	for _, raw := range lines {
		title := strings.TrimSpace(raw)
		tokens := tokenize.Line(title)

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			ctx.TokenFrequency[tok]++
		}

		var numbers []*numeral.Match
		if len(raw) < constants.MaxTitleLength {
			numbers = make([]*numeral.Match, len(numeral.Registry))
			for i, p := range numeral.Registry {
				numbers[i] = p.Extract(title)
			}
		} else {
			numbers = make([]*numeral.Match, len(numeral.Registry))
		}

		ctx.Lines = append(ctx.Lines, LineRecord{
			Raw:     raw,
			Title:   title,
			Cursor:  cursor,
			Tokens:  tokens,
			Numbers: numbers,
		})
		cursor += len(raw) + 1
	}
	ctx.Chars = cursor
	return ctx
}
