package stats

import (
	mstats "github.com/montanaflynn/stats"

	"lotogen/domain/game"
)

// ============================================================================
// STATISTICAL BASELINE
// ============================================================================

// Moments holds the mean and standard deviation of one feature over
// the observed history.
type Moments struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// Baseline summarizes the historical distribution of every feature.
// Deviation scoring and anomaly classification both read from it.
type Baseline struct {
	Features   map[FeatureName]Moments `json:"features"`
	SampleSize int                     `json:"sample_size"`
}

// defaultMoments covers the empty-history case with long-run priors
// for the 15-of-25 game.
var defaultMoments = map[FeatureName]Moments{
	FeatureSum:     {Mean: 205, StdDev: 30},
	FeatureEven:    {Mean: 7.5, StdDev: 1.5},
	FeaturePrime:   {Mean: 5.5, StdDev: 1.5},
	FeatureFib:     {Mean: 4, StdDev: 1},
	FeatureMult3:   {Mean: 5, StdDev: 1},
	FeatureFrame:   {Mean: 11, StdDev: 1},
	FeatureBlocks:  {Mean: 5.5, StdDev: 1.5},
	FeatureMaxRun:  {Mean: 3, StdDev: 2},
	FeatureDensity: {Mean: 0.5, StdDev: 0.2},
}

// DefaultBaseline returns the prior baseline used when no history is
// available yet.
func DefaultBaseline() Baseline {
	features := make(map[FeatureName]Moments, len(defaultMoments))
	for name, m := range defaultMoments {
		features[name] = m
	}
	return Baseline{Features: features, SampleSize: 0}
}

// ComputeBaseline derives per-feature moments from a draw history.
// An empty history falls back to the default priors. A feature whose
// observed deviation collapses to zero keeps its prior spread so that
// deviation scores stay finite.
func ComputeBaseline(history game.History) Baseline {
	if len(history) == 0 {
		return DefaultBaseline()
	}

	samples := make(map[FeatureName][]float64, len(defaultMoments))
	for _, name := range FeatureNames() {
		samples[name] = make([]float64, 0, len(history))
	}
	for _, draw := range history {
		fv := Extract(draw.Numerals)
		for _, name := range FeatureNames() {
			samples[name] = append(samples[name], fv.Get(name))
		}
	}

	features := make(map[FeatureName]Moments, len(samples))
	for name, values := range samples {
		mean, err := mstats.Mean(values)
		if err != nil {
			features[name] = defaultMoments[name]
			continue
		}
		std, err := mstats.StandardDeviation(values)
		if err != nil || std == 0 {
			std = defaultMoments[name].StdDev
		}
		features[name] = Moments{Mean: mean, StdDev: std}
	}
	return Baseline{Features: features, SampleSize: len(history)}
}

// Moments returns the moments for a feature, falling back to priors
// for unknown names.
func (b Baseline) Moments(name FeatureName) Moments {
	if m, ok := b.Features[name]; ok {
		return m
	}
	return defaultMoments[name]
}

// Deviation returns |x - mean| / std for the named feature.
func (b Baseline) Deviation(name FeatureName, value float64) float64 {
	m := b.Moments(name)
	if m.StdDev == 0 {
		return 1.0
	}
	d := (value - m.Mean) / m.StdDev
	if d < 0 {
		return -d
	}
	return d
}

// DeviationScore averages the per-feature deviations of a vector,
// giving a single distance-from-normal measure.
func (b Baseline) DeviationScore(fv FeatureVector) float64 {
	names := FeatureNames()
	total := 0.0
	for _, name := range names {
		total += b.Deviation(name, fv.Get(name))
	}
	return total / float64(len(names))
}
