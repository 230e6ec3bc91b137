package numeral

import (
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// decodeArabic folds full-width digits to ASCII via NFKC and parses the
// result as a base-10 integer.
func decodeArabic(raw string) (int64, bool) {
	normalized := norm.NFKC.String(raw)
	if normalized == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(normalized, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
