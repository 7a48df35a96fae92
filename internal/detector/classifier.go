package detector

import (
	"context"

	"lotogen/domain/anomaly"
	"lotogen/domain/game"
	"lotogen/domain/stats"
	"lotogen/internal"
	"lotogen/ports"
)

// ============================================================================
// ANOMALY CLASSIFIER
// ============================================================================

// minOccurrences is how many similar ledger entries make a pattern
// count as recurrent.
const minOccurrences = 3

// Result is one classification outcome. The record is always
// populated; it is only appended to the ledger when Anomalous.
type Result struct {
	Anomalous bool             `json:"anomalous"`
	Category  anomaly.Category `json:"category"`
	Record    anomaly.Record   `json:"record"`
}

// Classifier labels combinations as normal or anomalous against a
// baseline, and keeps the append-only ledger that recurrence
// adjustment reads.
type Classifier struct {
	ledger    ports.AnomalyLedger
	logger    *internal.Logger
	threshold float64
}

// NewClassifier wires a classifier. Threshold zero falls back to the
// tuned default.
func NewClassifier(ledger ports.AnomalyLedger, logger *internal.Logger, threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = 0.95
	}
	return &Classifier{ledger: ledger, logger: logger, threshold: threshold}
}

// Signals derives the context-dependent rule inputs for one
// combination. Missing context leaves the corresponding signal
// unavailable rather than guessing.
func Signals(c game.Combination, prev game.Combination, freq *stats.FrequencyTable) anomaly.Signals {
	sig := anomaly.NoSignals()

	if len(prev) == game.DrawSize {
		sig.Repeats = c.Matches(prev)
		delta := c.Sum() - prev.Sum()
		if delta < 0 {
			delta = -delta
		}
		sig.SumDelta = delta
	}

	if freq != nil {
		coldCount, totalGap := 0, 0
		for _, n := range c {
			if gap := freq.Gap(n); gap >= 15 {
				coldCount++
				totalGap += gap
			}
		}
		sig.ColdCount = coldCount
		if coldCount > 0 {
			sig.MeanColdGap = float64(totalGap) / float64(coldCount)
		} else {
			sig.MeanColdGap = 0
		}
	}

	return sig
}

// Classify scores a combination against the baseline and, when the
// deviation crosses the threshold, names the matching category and
// appends a ledger record. Precursor reflects the structural warning
// computed by the caller over the recent draw window.
func (cl *Classifier) Classify(ctx context.Context, c game.Combination, contest int, baseline *stats.Baseline, sig anomaly.Signals, precursor bool) (Result, error) {
	fv := stats.Extract(c)
	score := baseline.DeviationScore(fv)
	anomalous := score > cl.threshold

	category := anomaly.CategoryNormal
	metadata := map[string]interface{}{}
	if anomalous {
		category, metadata = anomaly.Classify(c, fv, sig)
	}
	metadata["deviation_score"] = score

	profile := anomaly.ProfileFor(category)
	probability, err := cl.probability(ctx, category, c, score)
	if err != nil {
		return Result{}, err
	}

	record := anomaly.NewRecord(category, contest, c, metadata, probability, profile.Impact, precursor)

	if anomalous {
		cl.logger.Info("anomaly detected: category=%s contest=%d score=%.3f probability=%.3f",
			category, contest, score, probability)
		if err := cl.ledger.Append(ctx, record); err != nil {
			return Result{}, err
		}
	}

	return Result{Anomalous: anomalous, Category: category, Record: record}, nil
}

// probability combines the category base rate, a recurrence boost
// from similar ledger entries, and the anomaly intensity above the
// threshold. Capped at 1.0.
func (cl *Classifier) probability(ctx context.Context, category anomaly.Category, c game.Combination, score float64) (float64, error) {
	profile := anomaly.ProfileFor(category)
	if category == anomaly.CategoryNormal {
		return profile.BaseProbability, nil
	}

	prob := profile.BaseProbability

	records, err := cl.ledger.ListByCategory(ctx, category)
	if err != nil {
		return 0, err
	}
	similar := 0
	for _, r := range records {
		if r.SimilarTo(c) {
			similar++
		}
	}
	if similar >= minOccurrences {
		boost := float64(similar) * 0.05
		if boost > 0.3 {
			boost = 0.3
		}
		prob += boost
	}

	prob += (score - cl.threshold) * 0.5

	if prob > 1.0 {
		prob = 1.0
	}
	if prob < 0 {
		prob = 0
	}
	return prob, nil
}
