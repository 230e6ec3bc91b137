package beauty

import (
	"math"

	"github.com/jackzampolin/tocscan/internal/constants"
	"github.com/jackzampolin/tocscan/internal/heading"
)

// Num scores how well the candidate's numbers cover a dense, monotone run.
// Entries with no number are treated as absent rather than zero: they
// simply cannot land on the longest non-decreasing subsequence.
func Num(contents []heading.Entry) float64 {
	n := len(contents)
	if n < constants.MinContents {
		return 0
	}

	values := make([]int64, 0, n)
	for _, e := range contents {
		if e.Number != nil {
			values = append(values, *e.Number)
		}
	}
	seq := longestNonDecreasing(values)
	if len(seq) == 0 {
		return 0
	}

	max := seq[len(seq)-1]
	min := seq[0]
	if min > 1 {
		min = 1
	}
	if max <= 0 {
		return 0
	}

	distinct := make(map[int64]struct{}, len(seq))
	for _, v := range seq {
		distinct[v] = struct{}{}
	}
	holes := max - min + 1 - int64(len(distinct))

	factor1 := math.Pow(1.0/constants.FactorNumberMax, 1/float64(max))
	factor2 := math.Pow(1.0/constants.FactorNumberInvalid, float64(n)/float64(len(seq))-1)

	denom := max - holes
	if denom <= 0 {
		return 0
	}
	factor3 := math.Pow(1.0/constants.FactorNumberHoles, float64(max)/float64(denom)-1)

	return clamp01(factor1 * factor2 * factor3)
}

// longestNonDecreasing returns the values on a longest non-decreasing
// subsequence of values, found via patience-sort binary search. The scan
// runs right to left (a longest non-increasing run of the reversed input),
// so 1,2,3,2,3,4,5 yields 1,2,3,3,4,5 rather than 1,2,2,3,4,5.
func longestNonDecreasing(values []int64) []int64 {
	n := len(values)
	if n == 0 {
		return nil
	}
	tails := make([]int, 0, n) // indices into values
	prev := make([]int, n)

	for i := n - 1; i >= 0; i-- {
		v := values[i]
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if values[tails[mid]] >= v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo > 0 {
			prev[i] = tails[lo-1]
		} else {
			prev[i] = -1
		}
		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}

	length := len(tails)
	seq := make([]int64, length)
	k := tails[length-1]
	for i := 0; i < length; i++ {
		seq[i] = values[k]
		k = prev[k]
	}
	return seq
}
