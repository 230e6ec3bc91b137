package toc

import (
	"errors"
	"strings"
	"testing"

	"github.com/jackzampolin/tocscan/internal/engineerr"
)

func buildArticle(n int, heading func(i int) string, bodyLen int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		b.WriteString(heading(i))
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("x", bodyLen))
		b.WriteByte('\n')
	}
	return b.String()
}

func hanDigitsUpTo(n int) []string {
	digits := []string{"一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if i <= 10 {
			out = append(out, digits[i-1])
			continue
		}
		tens, ones := i/10, i%10
		s := ""
		if tens > 1 {
			s += digits[tens-1]
		}
		s += "十"
		if ones > 0 {
			s += digits[ones-1]
		}
		out = append(out, s)
	}
	return out
}

func TestInfer_EmptyArticle(t *testing.T) {
	_, err := Infer("")
	if !errors.Is(err, engineerr.ErrNoHeadingsFound) {
		t.Fatalf("Infer(\"\") error = %v, want ErrNoHeadingsFound", err)
	}
}

func TestInfer_HanChapterScenario(t *testing.T) {
	nums := hanDigitsUpTo(20)
	text := buildArticle(20, func(i int) string { return "第" + nums[i-1] + "章 Title" }, 500)
	result, err := Infer(text)
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}
	if result == nil {
		t.Fatal("expected a result")
	}
	if len(result.Content) != 20 {
		t.Errorf("len(Content) = %d, want 20", len(result.Content))
	}
	if result.Beauty < 0 || result.Beauty > 1 {
		t.Errorf("Beauty = %v, out of [0,1]", result.Beauty)
	}
	for i := 1; i < len(result.Content); i++ {
		if result.Content[i].Cursor <= result.Content[i-1].Cursor {
			t.Fatalf("cursors not strictly increasing at %d", i)
		}
	}
}

func romanUpTo(n int) []string {
	vals := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syms := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		v := i
		var b strings.Builder
		for k, val := range vals {
			for v >= val {
				b.WriteString(syms[k])
				v -= val
			}
		}
		out = append(out, b.String())
	}
	return out
}

func TestInfer_RomanChapterScenario(t *testing.T) {
	numerals := romanUpTo(20)
	text := buildArticle(20, func(i int) string { return "Chapter " + numerals[i-1] + "." }, 500)
	result, err := Infer(text)
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}
	if result == nil {
		t.Fatal("expected a result")
	}
	if len(result.Content) != 20 {
		t.Errorf("len(Content) = %d, want 20", len(result.Content))
	}
}

func TestInfer_LowSignalPrefixRejected(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 1000; i++ {
		b.WriteString("Note: just some body text that repeats with no real structure at all\n")
	}
	// No error: either nothing is found, or a low-confidence match is
	// returned, but PREFIX_MIN_RATIO must reject the "Note:" prefix itself
	// since nearly every line shares it with no heading/body distinction.
	result, err := Infer(b.String())
	if err != nil && !errors.Is(err, engineerr.ErrNoHeadingsFound) {
		t.Fatalf("Infer() error = %v", err)
	}
	if result != nil {
		for _, e := range result.Content {
			if e.Title == "" {
				t.Errorf("unexpected empty title in result")
			}
		}
	}
}

func TestInfer_BelowBeautyMin2(t *testing.T) {
	// A handful of barely-structured headings shouldn't produce a
	// confident result.
	text := "Preface\nbody\nChapter 1\nb\nChapter 2\nb"
	_, err := Infer(text)
	if err != nil && !errors.Is(err, engineerr.ErrNoHeadingsFound) {
		t.Fatalf("Infer() error = %v", err)
	}
}
