// Package heading defines the domain types shared by the scoring,
// candidate-generation, template, and selection stages: the entries that
// make up a candidate table of contents, and the patterns that produce them.
package heading

// Entry is one line of a candidate table of contents.
type Entry struct {
	Title  string // trimmed
	Cursor int    // byte offset of the untrimmed line start
	Number *int64 // the number this line decoded to under the owning pattern's parser, nil if absent
}

// Kind distinguishes the two candidate-generation paths.
type Kind string

const (
	KindNumber Kind = "number"
	KindPrefix Kind = "prefix"
)

// Key is the canonical dedup identifier for a Pattern.
type Key struct {
	ParserIndex int // index into numeral.Registry, -1 for a prefix pattern
	Prefix      string
	Suffix      string
}

// Pattern is a discovered heading family, not yet (or freshly) re-applied
// to the article.
type Pattern struct {
	Kind     Kind
	Template string
	Key      Key
	Priority int
	Beauty   float64

	// ParserIndex is valid when Kind == KindNumber: which numeral.Registry
	// parser produced the matches this pattern was committed from.
	ParserIndex int

	// PrefixScore is valid when Kind == KindPrefix: the prefix-uniqueness
	// sub-score the pattern was born with, reused during final re-scoring
	// in place of B_num.
	PrefixScore float64

	Contents []Entry
}
