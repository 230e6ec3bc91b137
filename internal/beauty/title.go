package beauty

import (
	"math"

	"github.com/jackzampolin/tocscan/internal/constants"
	"github.com/jackzampolin/tocscan/internal/heading"
)

// Title scores how many of the candidate's titles are well-formed: short
// enough, and not repeated beyond TOCDuplicateTolerate times.
func Title(contents []heading.Entry) float64 {
	n := len(contents)
	if n < constants.MinContents || n > constants.MaxContentsLength {
		return 0
	}

	seen := make(map[string]int, n)
	valid := 0
	for _, e := range contents {
		seen[e.Title]++
		dupCount := seen[e.Title] - 1
		if len(e.Title) <= constants.MaxTitleLength && dupCount <= constants.TOCDuplicateTolerate {
			valid++
		}
	}
	if valid == 0 {
		return 0
	}

	result := math.Pow(1.0/constants.FactorTitleInvalid, math.Sqrt(float64(n)/float64(valid)-1))
	return clamp01(result)
}
