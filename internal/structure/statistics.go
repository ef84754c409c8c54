package structure

import (
	"sort"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// Fallback multiples of the dominant size used when too few distinct sizes exist.
const (
	h1DominantMultiple = 1.5
	h1MaxSizeMultiple  = 0.9
	h2DominantMultiple = 1.3
	h3DominantMultiple = 1.1
)

// ComputeStatistics derives the font-size distribution and heading thresholds
// of a document from its full element list.
func ComputeStatistics(elements []domain.TextElement) domain.DocumentStatistics {
	if len(elements) == 0 {
		return domain.DefaultStatistics()
	}

	sizes := make([]float64, len(elements))
	for i := range elements {
		sizes[i] = elements[i].MaxSize
	}

	dominant, dist := dominantSize(sizes)

	distinct := make([]float64, 0, len(dist))
	for size := range dist {
		distinct = append(distinct, size)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	var th domain.SizeThresholds
	if len(distinct) >= 3 {
		th = domain.SizeThresholds{H1: distinct[0], H2: distinct[1], H3: distinct[2]}
	} else {
		th = domain.SizeThresholds{
			H1: max(dominant*h1DominantMultiple, distinct[0]*h1MaxSizeMultiple),
			H2: dominant * h2DominantMultiple,
			H3: dominant * h3DominantMultiple,
		}
	}

	return domain.DocumentStatistics{
		DominantSize: dominant,
		Distribution: dist,
		Thresholds:   th,
	}
}

// dominantSize returns the most frequent value and the full histogram.
// Ties resolve to the value seen first.
func dominantSize(values []float64) (float64, map[float64]int) {
	dist := make(map[float64]int)
	var order []float64
	for _, v := range values {
		if _, seen := dist[v]; !seen {
			order = append(order, v)
		}
		dist[v]++
	}

	best := order[0]
	for _, v := range order[1:] {
		if dist[v] > dist[best] {
			best = v
		}
	}
	return best, dist
}

// sizeRatio is an element's max size relative to the dominant size.
func sizeRatio(elem domain.TextElement, stats domain.DocumentStatistics) float64 {
	dominant := stats.DominantSize
	if dominant <= 0 {
		dominant = domain.DefaultFontSize
	}
	return elem.MaxSize / dominant
}
