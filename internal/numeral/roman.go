package numeral

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var romanValues = map[rune]int64{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

type romanRun struct {
	value  int64
	length int64
}

// decodeRoman normalizes to NFKC and uppercases, groups the result into
// runs of identical letters, and folds subtractive notation by cancelling
// the previously-added piece whenever a run's value exceeds the prior
// run's.
func decodeRoman(raw string) (int64, bool) {
	upper := strings.ToUpper(norm.NFKC.String(raw))
	if upper == "" {
		return 0, false
	}

	runes := []rune(upper)
	runs := make([]romanRun, 0, len(runes))
	i := 0
	for i < len(runes) {
		v, ok := romanValues[runes[i]]
		if !ok {
			return 0, false
		}
		j := i
		for j+1 < len(runes) && runes[j+1] == runes[i] {
			j++
		}
		runs = append(runs, romanRun{value: v, length: int64(j - i + 1)})
		i = j + 1
	}
	if len(runs) == 0 {
		return 0, false
	}

	var acc int64
	var prev romanRun
	for _, run := range runs {
		if prev.value != 0 && run.value > prev.value {
			acc -= 2 * prev.value * prev.length
		}
		acc += run.value * run.length
		prev = run
	}
	return acc, true
}
