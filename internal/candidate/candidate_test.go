package candidate

import (
	"strings"
	"testing"

	"github.com/jackzampolin/tocscan/internal/article"
)

func buildHanArticle(n int) string {
	hanDigits := []string{"一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}
	var b strings.Builder
	for i := 1; i <= n; i++ {
		b.WriteString("第")
		b.WriteString(hanNumeral(i, hanDigits))
		b.WriteString("章 起源\n")
		b.WriteString(strings.Repeat("x", 500))
		b.WriteString("\n")
	}
	return b.String()
}

// hanNumeral renders small integers 1..99 in simplified Han for test data.
func hanNumeral(n int, digits []string) string {
	if n <= 10 {
		return digits[n-1]
	}
	tens, ones := n/10, n%10
	s := ""
	if tens > 1 {
		s += digits[tens-1]
	}
	s += "十"
	if ones > 0 {
		s += digits[ones-1]
	}
	return s
}

func TestGenerate_NumericHanPattern(t *testing.T) {
	ctx := article.Build(buildHanArticle(20))
	patterns, err := Generate(ctx)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(patterns) == 0 {
		t.Fatal("expected at least one candidate pattern")
	}
	found := false
	for _, p := range patterns {
		if strings.Contains(p.Template, "第") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a pattern referencing the Han prefix '第', got %+v", patterns)
	}
}

func TestGenerate_NoCandidatesOnPlainText(t *testing.T) {
	ctx := article.Build("just some plain prose\nwith no structure\nat all")
	patterns, err := Generate(ctx)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(patterns) != 0 {
		t.Errorf("expected no candidates, got %d", len(patterns))
	}
}
