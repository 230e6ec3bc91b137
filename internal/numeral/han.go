package numeral

// hanDigits maps a Han numeral character to its digit value (< 10).
// Includes simplified, the 两/兩 alternate for 2, and formal (大写) forms.
var hanDigits = map[rune]int64{
	'〇': 0, '零': 0, '０': 0,
	'一': 1, '壹': 1,
	'二': 2, '贰': 2, '貳': 2, '两': 2, '兩': 2,
	'三': 3, '叁': 3, '參': 3, '参': 3,
	'四': 4, '肆': 4,
	'五': 5, '伍': 5,
	'六': 6, '陆': 6, '陸': 6,
	'七': 7, '柒': 7,
	'八': 8, '捌': 8,
	'九': 9, '玖': 9,
}

// hanUnits maps a Han numeral character to its unit multiplier (>= 10).
var hanUnits = map[rune]int64{
	'十': 10, '拾': 10,
	'百': 100, '佰': 100,
	'千': 1000, '仟': 1000,
	'万': 10000, '萬': 10000,
}

// hanCommonRunes / hanFormalRunes partition the character sets used by the
// "common", "formal", and "mixed" Han parsers.
var hanCommonRunes = []rune{'〇', '零', '０', '一', '二', '两', '兩', '三', '四', '五', '六', '七', '八', '九', '十', '百', '千', '万'}
var hanFormalRunes = []rune{'零', '壹', '贰', '貳', '叁', '參', '参', '肆', '伍', '陆', '陸', '柒', '捌', '玖', '拾', '佰', '仟', '萬'}

// decodeHan walks the matched run left to right, accumulating a digit
// cluster into current and folding it into result on each unit character:
//
//	current, result := 0, 0
//	for each rune:
//	  if digit d:  current = current*10 + d
//	  if unit u:   result += max(current, 1) * u; current = 0
//	return result + current
func decodeHan(raw string) (int64, bool) {
	var result, current int64
	seen := false
	for _, r := range raw {
		if d, ok := hanDigits[r]; ok {
			current = current*10 + d
			seen = true
			continue
		}
		if u, ok := hanUnits[r]; ok {
			mult := current
			if mult < 1 {
				mult = 1
			}
			result += mult * u
			current = 0
			seen = true
			continue
		}
		// Unrecognized rune inside what the regex matched: bail out rather
		// than silently mis-decode.
		return 0, false
	}
	if !seen {
		return 0, false
	}
	return result + current, true
}
