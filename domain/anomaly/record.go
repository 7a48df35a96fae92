package anomaly

import (
	"lotogen/domain/core"
	"lotogen/domain/game"
)

// Record is one appended entry in the anomaly ledger. Entries are
// never updated or deleted; recurrence counting walks the full log.
type Record struct {
	ID          core.RecordID          `json:"id" db:"id"`
	Category    Category               `json:"category" db:"category"`
	Contest     int                    `json:"contest,omitempty" db:"contest"`
	Numerals    game.Combination       `json:"numerals"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Probability float64                `json:"probability" db:"probability"`
	Impact      float64                `json:"impact" db:"impact"`
	Precursor   bool                   `json:"precursor" db:"precursor"`
	DetectedAt  core.Timestamp         `json:"detected_at" db:"detected_at"`
}

// NewRecord creates a ledger entry for a classified combination.
func NewRecord(category Category, contest int, numerals game.Combination, metadata map[string]interface{}, probability, impact float64, precursor bool) Record {
	return Record{
		ID:          core.NewRecordID(),
		Category:    category,
		Contest:     contest,
		Numerals:    numerals.Clone(),
		Metadata:    metadata,
		Probability: probability,
		Impact:      impact,
		Precursor:   precursor,
		DetectedAt:  core.Now(),
	}
}

// SimilarTo reports whether the recorded combination resembles
// another one. Similarity is a relative sum difference under 10%,
// which is deliberately loose: it feeds recurrence counting, not
// matching.
func (r Record) SimilarTo(other game.Combination) bool {
	if len(r.Numerals) == 0 || len(other) == 0 {
		return false
	}
	s1 := float64(r.Numerals.Sum())
	s2 := float64(other.Sum())
	if s1 == 0 {
		return false
	}
	diff := (s1 - s2) / s1
	if diff < 0 {
		diff = -diff
	}
	return diff < 0.1
}
