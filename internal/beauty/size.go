// Package beauty implements the three independent scoring functions over a
// candidate table of contents: size regularity, title validity, and
// numeric quality. Every function returns a value in [0, 1]; 0 disqualifies
// the candidate.
package beauty

import (
	"math"
	"sort"

	"github.com/jackzampolin/tocscan/internal/constants"
	"github.com/jackzampolin/tocscan/internal/heading"
)

// Size scores the regularity of the gaps between consecutive headings.
func Size(contents []heading.Entry, chars int) float64 {
	n := len(contents)
	if n == 0 || n > constants.MaxContentsLength {
		return 0
	}

	gaps := make([]float64, 0, n+1)
	gaps = append(gaps, float64(contents[0].Cursor)) // preamble, excluded from V below
	for i := 1; i < n; i++ {
		g := contents[i].Cursor - contents[i-1].Cursor - len(contents[i-1].Title)
		if g < 0 {
			g = 0
		}
		gaps = append(gaps, float64(g))
	}
	trailing := chars - contents[n-1].Cursor - len(contents[n-1].Title)
	if trailing < 0 {
		trailing = 0
	}

	priorMax := 0.0
	for _, g := range gaps { // preamble + inter-heading gaps, trailing not yet appended
		if g > priorMax {
			priorMax = g
		}
	}
	dropTrailing := float64(constants.OutlinerDistance)*priorMax < float64(trailing)

	v := append([]float64{}, gaps[1:]...) // excludes the preamble gap
	if !dropTrailing {
		v = append(v, float64(trailing))
	}
	if len(v) < 3 {
		return 0
	}

	sorted := append([]float64{}, v...)
	sort.Float64s(sorted)
	acc := make([]float64, len(sorted)+1)
	for i, x := range sorted {
		acc[i+1] = acc[i] + x
	}

	at := func(pos float64) float64 {
		if pos <= 0 {
			return sorted[0]
		}
		last := float64(len(sorted) - 1)
		if pos >= last {
			return sorted[len(sorted)-1]
		}
		lo := int(math.Floor(pos))
		hi := int(math.Ceil(pos))
		if lo == hi {
			return sorted[lo]
		}
		frac := pos - float64(lo)
		return sorted[lo]*(1-frac) + sorted[hi]*frac
	}

	bound := func(x float64) int {
		return sort.Search(len(sorted), func(i int) bool { return sorted[i] >= x })
	}

	sumRange := func(i, j int) float64 {
		if i < 0 {
			i = 0
		}
		if j > len(sorted) {
			j = len(sorted)
		}
		if i >= j {
			return 0
		}
		return acc[j] - acc[i]
	}

	m := float64(len(sorted) - 1)
	vLeft := at(0.25 * m)
	vRight := at(0.75 * m)
	pow := math.Pow(2, constants.OutlinerDistance)
	low := math.Max(math.Floor(vLeft/pow)-1, 1)
	high := math.Ceil(vRight*pow) + 1

	leftIndex := bound(low)
	rightIndex := bound(high)
	if rightIndex <= leftIndex {
		return 0
	}
	mid := math.Ceil((low + high) / 2)
	centerIndex := bound(mid)
	if centerIndex < leftIndex {
		centerIndex = leftIndex
	}
	if centerIndex > rightIndex {
		centerIndex = rightIndex
	}

	for step := 0; step < 10; step++ {
		if centerIndex <= leftIndex || centerIndex >= rightIndex {
			break
		}
		leftMean := mean(sorted[leftIndex:centerIndex])
		rightMean := mean(sorted[centerIndex:rightIndex])
		newMid := math.Ceil((leftMean+rightMean)/2) / 2
		newCenter := bound(newMid)
		if newCenter < leftIndex {
			newCenter = leftIndex
		}
		if newCenter > rightIndex {
			newCenter = rightIndex
		}
		if newCenter == centerIndex {
			break
		}
		centerIndex = newCenter
	}

	rate := func(i, j int) float64 {
		if i >= j {
			return 0
		}
		total := sumRange(i, j)
		if total == 0 {
			return 0 // guards the sum==0 division the original leaves unguarded
		}
		meanV := total / float64(j-i)
		c := bound(meanV)
		if c < i {
			c = i
		}
		if c > j {
			c = j
		}
		left := float64(c-i)*meanV - sumRange(i, c)
		right := sumRange(c, j) - float64(j-c)*meanV
		r := (left + right) / total
		return r * r
	}

	nf := float64(n)
	factor1 := math.Pow(1.0/constants.FactorContentsSize, 1/nf)
	factor2 := math.Pow(1.0/constants.FactorOutliner, nf/float64(rightIndex-leftIndex)-1)

	span := sumRange(leftIndex, rightIndex)
	if span <= 0 {
		return 0
	}
	factor3 := math.Pow(1.0/constants.FactorOutliner, float64(chars)/span-1)

	factor4 := math.Pow(1.0/constants.FactorVarianceSize, rate(leftIndex, centerIndex))
	factor5 := math.Pow(1.0/constants.FactorVarianceSize, rate(centerIndex, rightIndex))

	result := factor1 * factor2 * factor3 * factor4 * factor5
	return clamp01(result)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
