package api

import "github.com/jackzampolin/tocscan/internal/toc"

// EntryView is the wire representation of one toc/heading.Entry: the
// shape internal/schema.ValidateResult checks and the CLI/HTTP layers
// marshal.
type EntryView struct {
	Title  string `json:"title" yaml:"title"`
	Cursor int    `json:"cursor" yaml:"cursor"`
	Number *int64 `json:"number,omitempty" yaml:"number,omitempty"`
}

// ResultView is the wire representation of a *toc.Result, or null when no
// pattern cleared BeautyMin2.
type ResultView struct {
	Content  []EntryView `json:"content" yaml:"content"`
	Template string      `json:"template" yaml:"template"`
	Beauty   float64     `json:"beauty" yaml:"beauty"`
}

// NewResultView converts an engine result to its wire form. A nil result
// produces a nil view, which marshals as JSON/YAML null.
func NewResultView(r *toc.Result) *ResultView {
	if r == nil {
		return nil
	}
	content := make([]EntryView, len(r.Content))
	for i, e := range r.Content {
		content[i] = EntryView{Title: e.Title, Cursor: e.Cursor, Number: e.Number}
	}
	return &ResultView{Content: content, Template: r.Template, Beauty: r.Beauty}
}
