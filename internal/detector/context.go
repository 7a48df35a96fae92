package detector

import (
	"gonum.org/v1/gonum/stat/distuv"

	"lotogen/domain/game"
	"lotogen/domain/stats"
)

// Snapshot summarizes the current regime for weight adaptation and
// reporting.
type Snapshot struct {
	Temperature    float64 `json:"temperature"`    // hot-set share of the latest draw, [0,1]
	PrecursorAlert bool    `json:"precursor_alert"`
	MeanHits       float64 `json:"mean_hits"`      // recent settled-game average
	Recurrence     float64 `json:"recurrence"`     // overlap of the last two draws, [0,1]
	SumPercentile  float64 `json:"sum_percentile"` // latest sum under the baseline normal
}

// Analyze builds a snapshot from history plus recent settlement
// results. meanHits comes from the caller since settled games live
// behind a store the detector does not touch.
func Analyze(history game.History, freq *stats.FrequencyTable, baseline *stats.Baseline, meanHits float64) Snapshot {
	snap := Snapshot{MeanHits: meanHits}

	if len(history) == 0 {
		return snap
	}
	last := history[len(history)-1].Numerals

	if freq != nil {
		snap.Temperature = freq.Temperature(last)
	}

	if len(history) >= 2 {
		prev := history[len(history)-2].Numerals
		snap.Recurrence = float64(last.Matches(prev)) / float64(game.DrawSize)
	}

	recent := make([]game.Combination, 0, 3)
	for _, d := range history.Window(3) {
		recent = append(recent, d.Numerals)
	}
	snap.PrecursorAlert = DetectPrecursor(recent)

	if baseline != nil {
		m := baseline.Moments(stats.FeatureSum)
		dist := distuv.Normal{Mu: m.Mean, Sigma: m.StdDev}
		snap.SumPercentile = dist.CDF(float64(last.Sum()))
	}

	return snap
}
