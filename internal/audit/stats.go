package audit

import (
	"math"
	"sort"
)

// computeLineStats computes min, max, mean, and p95 from line counts.
func computeLineStats(lineCounts []int) LineStats {
	if len(lineCounts) == 0 {
		return LineStats{}
	}

	sorted := make([]int, len(lineCounts))
	copy(sorted, lineCounts)
	sort.Ints(sorted)

	min := sorted[0]
	max := sorted[len(sorted)-1]

	sum := 0
	for _, count := range lineCounts {
		sum += count
	}
	mean := float64(sum) / float64(len(lineCounts))

	p95Index := int(math.Ceil(float64(len(sorted)) * 0.95))
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}
	p95 := sorted[p95Index]

	return LineStats{
		Min:  min,
		Max:  max,
		Mean: math.Round(mean*100) / 100,
		P95:  p95,
	}
}
