package stats

import (
	"math"

	"lotogen/domain/game"
)

// ============================================================================
// FEATURE EXTRACTION
// ============================================================================

// FeatureVector holds the structural measurements of one combination.
// All counts are over the fifteen selected numerals.
type FeatureVector struct {
	Sum         float64 `json:"sum"`
	EvenCount   float64 `json:"even_count"`
	OddCount    float64 `json:"odd_count"`
	PrimeCount  float64 `json:"prime_count"`
	FibCount    float64 `json:"fib_count"`
	Mult3Count  float64 `json:"mult3_count"`
	FrameCount  float64 `json:"frame_count"`
	CenterCount float64 `json:"center_count"`
	BlockCount  float64 `json:"block_count"`
	MaxRun      float64 `json:"max_run"`
	Density     float64 `json:"density"`
	Entropy     float64 `json:"entropy"`
}

// FeatureName identifies one dimension of a FeatureVector.
type FeatureName string

const (
	FeatureSum     FeatureName = "sum"
	FeatureEven    FeatureName = "even_count"
	FeatureOdd     FeatureName = "odd_count"
	FeaturePrime   FeatureName = "prime_count"
	FeatureFib     FeatureName = "fib_count"
	FeatureMult3   FeatureName = "mult3_count"
	FeatureFrame   FeatureName = "frame_count"
	FeatureCenter  FeatureName = "center_count"
	FeatureBlocks  FeatureName = "block_count"
	FeatureMaxRun  FeatureName = "max_run"
	FeatureDensity FeatureName = "density"
	FeatureEntropy FeatureName = "entropy"
)

// FeatureNames lists the dimensions that carry baseline moments and
// feed deviation scoring. Odd, center and entropy are excluded: the
// first two are complements of even and frame, and entropy is
// degenerate for duplicate-free selections.
func FeatureNames() []FeatureName {
	return []FeatureName{
		FeatureSum, FeatureEven, FeaturePrime, FeatureFib, FeatureMult3,
		FeatureFrame, FeatureBlocks, FeatureMaxRun, FeatureDensity,
	}
}

// Get returns the named dimension's value.
func (f FeatureVector) Get(name FeatureName) float64 {
	switch name {
	case FeatureSum:
		return f.Sum
	case FeatureEven:
		return f.EvenCount
	case FeaturePrime:
		return f.PrimeCount
	case FeatureFib:
		return f.FibCount
	case FeatureMult3:
		return f.Mult3Count
	case FeatureFrame:
		return f.FrameCount
	case FeatureBlocks:
		return f.BlockCount
	case FeatureMaxRun:
		return f.MaxRun
	case FeatureDensity:
		return f.Density
	case FeatureOdd:
		return f.OddCount
	case FeatureCenter:
		return f.CenterCount
	case FeatureEntropy:
		return f.Entropy
	}
	return 0
}

// Extract computes the feature vector for a combination.
func Extract(c game.Combination) FeatureVector {
	return FeatureVector{
		Sum:         float64(c.Sum()),
		EvenCount:   float64(c.EvenCount()),
		OddCount:    float64(c.OddCount()),
		PrimeCount:  float64(c.PrimeCount()),
		FibCount:    float64(c.FibonacciCount()),
		Mult3Count:  float64(c.MultipleOf3Count()),
		FrameCount:  float64(c.FrameCount()),
		CenterCount: float64(c.CenterCount()),
		BlockCount:  float64(c.BlockCount()),
		MaxRun:      float64(c.MaxRun()),
		Density:     Density(c),
		Entropy:     Entropy(c),
	}
}

// Entropy is the Shannon entropy of the multiplicity distribution of
// the members. Every numeral appears at most once in a valid
// combination, so this collapses to zero; the value is kept because
// anomaly metadata records it alongside density.
func Entropy(c game.Combination) float64 {
	mult := make(map[int]int)
	for _, n := range c {
		mult[n]++
	}
	byCount := make(map[int]int)
	for _, m := range mult {
		byCount[m]++
	}
	total := float64(len(mult))
	if total == 0 {
		return 0
	}
	h := 0.0
	for _, freq := range byCount {
		p := float64(freq) / total
		h -= p * math.Log2(p)
	}
	return h
}

// Density maps the mean gap between adjacent numerals onto [0, 1].
// A fully packed selection (mean gap 1.0) scores 1; the sparsest
// plausible spread (mean gap 2.5 or worse) scores 0.
func Density(c game.Combination) float64 {
	if len(c) < 2 {
		return 0
	}
	totalGap := 0
	for i := 1; i < len(c); i++ {
		totalGap += c[i] - c[i-1]
	}
	meanGap := float64(totalGap) / float64(len(c)-1)

	d := 1.0 - (meanGap-1.0)/(2.5-1.0)
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}
