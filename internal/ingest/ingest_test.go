package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a\r\nb\r\nc", "a\nb\nc"},
		{"a\rb\rc", "a\nb\nc"},
		{"a\nb\n", "a\nb\n"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRead_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.txt")
	if err := os.WriteFile(path, []byte("Chapter 1\r\nbody\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	result, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if result.Text != "Chapter 1\nbody\n" {
		t.Errorf("Text = %q, want normalized LF text", result.Text)
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read("/nonexistent/path/book.txt"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
