package scoring

// Band is an inclusive integer range.
type Band struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v falls inside the band.
func (b Band) Contains(v int) bool { return v >= b.Min && v <= b.Max }

// Mid returns the band midpoint.
func (b Band) Mid() float64 { return float64(b.Min+b.Max) / 2.0 }

// Width returns the band span.
func (b Band) Width() float64 { return float64(b.Max - b.Min) }

// Config holds the per-criterion target bands. All values are
// empirically tuned; callers override them through configuration
// rather than editing code.
type Config struct {
	RepeatBand Band `json:"repeat_band"` // Repeats from the previous draw

	AbsentFull    Band `json:"absent_full"`    // Absent numerals, full score
	AbsentPartial Band `json:"absent_partial"` // Absent numerals, partial score

	ColdFull    Band `json:"cold_full"` // Cold set members, full score
	HotFull     Band `json:"hot_full"`  // Hot set members, full score
	ColdPartial Band `json:"cold_partial"`
	HotPartial  Band `json:"hot_partial"`

	SumCore       Band `json:"sum_core"`       // Full-score sum sub-range
	SumAcceptable Band `json:"sum_acceptable"` // Partial-score sum range

	ParityBand Band `json:"parity_band"` // Even-count acceptable range

	StrongPairFull    Band `json:"strong_pair_full"`
	StrongPairPartial Band `json:"strong_pair_partial"`

	PrimeIdeal Band `json:"prime_ideal"`
	PrimeWide  Band `json:"prime_wide"`
	FibIdeal   Band `json:"fib_ideal"`
	FibWide    Band `json:"fib_wide"`
	Mult3Ideal Band `json:"mult3_ideal"`
	Mult3Wide  Band `json:"mult3_wide"`

	FrameFull    Band `json:"frame_full"`
	FramePartial Band `json:"frame_partial"`

	MaxRunFull    int `json:"max_run_full"`    // Longest run still scoring 1.0
	MaxRunPartial int `json:"max_run_partial"` // Longest run still scoring 0.5

	// QualityFloor is the minimum normalized fitness a candidate needs
	// to survive generation filtering.
	QualityFloor float64 `json:"quality_floor"`

	// AnomalyThreshold gates the anomaly criterion and the classifier.
	AnomalyThreshold float64 `json:"anomaly_threshold"`
}

// DefaultConfig returns the tuned defaults for the 15-of-25 game.
func DefaultConfig() Config {
	return Config{
		RepeatBand: Band{Min: 7, Max: 12},

		AbsentFull:    Band{Min: 3, Max: 5},
		AbsentPartial: Band{Min: 2, Max: 6},

		ColdFull:    Band{Min: 3, Max: 5},
		HotFull:     Band{Min: 2, Max: 4},
		ColdPartial: Band{Min: 2, Max: 6},
		HotPartial:  Band{Min: 1, Max: 5},

		SumCore:       Band{Min: 190, Max: 215},
		SumAcceptable: Band{Min: 180, Max: 235},

		ParityBand: Band{Min: 6, Max: 9},

		StrongPairFull:    Band{Min: 2, Max: 3},
		StrongPairPartial: Band{Min: 1, Max: 4},

		PrimeIdeal: Band{Min: 5, Max: 7},
		PrimeWide:  Band{Min: 4, Max: 8},
		FibIdeal:   Band{Min: 3, Max: 4},
		FibWide:    Band{Min: 2, Max: 5},
		Mult3Ideal: Band{Min: 4, Max: 6},
		Mult3Wide:  Band{Min: 3, Max: 7},

		FrameFull:    Band{Min: 10, Max: 12},
		FramePartial: Band{Min: 9, Max: 13},

		MaxRunFull:    3,
		MaxRunPartial: 5,

		QualityFloor:     0.70,
		AnomalyThreshold: 0.95,
	}
}
