package api

import (
	"testing"

	"github.com/jackzampolin/tocscan/internal/heading"
	"github.com/jackzampolin/tocscan/internal/toc"
)

func TestNewResultView_Nil(t *testing.T) {
	if v := NewResultView(nil); v != nil {
		t.Errorf("NewResultView(nil) = %+v, want nil", v)
	}
}

func TestNewResultView_Content(t *testing.T) {
	n := int64(3)
	r := &toc.Result{
		Content: []heading.Entry{
			{Title: "Chapter 1", Cursor: 0},
			{Title: "Chapter 3", Cursor: 42, Number: &n},
		},
		Template: "Chapter *",
		Beauty:   0.75,
	}

	v := NewResultView(r)
	if v == nil {
		t.Fatal("NewResultView() returned nil for a non-nil result")
	}
	if v.Template != "Chapter *" || v.Beauty != 0.75 {
		t.Errorf("Template/Beauty = %q/%v, want %q/%v", v.Template, v.Beauty, "Chapter *", 0.75)
	}
	if len(v.Content) != 2 {
		t.Fatalf("len(Content) = %d, want 2", len(v.Content))
	}
	if v.Content[0].Number != nil {
		t.Error("Content[0].Number should be nil")
	}
	if v.Content[1].Number == nil || *v.Content[1].Number != 3 {
		t.Error("Content[1].Number should be 3")
	}
}
