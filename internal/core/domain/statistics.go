package domain

// Default thresholds used when a document has no elements.
const (
	DefaultH1Threshold = 18.0
	DefaultH2Threshold = 15.0
	DefaultH3Threshold = 13.0
)

// SizeThresholds are the minimum max-font-sizes for each heading level.
type SizeThresholds struct {
	H1 float64
	H2 float64
	H3 float64
}

// DocumentStatistics summarises a document's font sizes.
// Computed once per document and read-only afterwards.
type DocumentStatistics struct {
	// DominantSize is the most frequent max font size.
	DominantSize float64

	// Distribution maps each max font size to its line count.
	Distribution map[float64]int

	// Thresholds are the adaptive heading size thresholds.
	Thresholds SizeThresholds
}

// DefaultStatistics returns the statistics of an empty document.
func DefaultStatistics() DocumentStatistics {
	return DocumentStatistics{
		DominantSize: DefaultFontSize,
		Distribution: map[float64]int{},
		Thresholds: SizeThresholds{
			H1: DefaultH1Threshold,
			H2: DefaultH2Threshold,
			H3: DefaultH3Threshold,
		},
	}
}
