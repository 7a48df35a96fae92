package anomaly

// ============================================================================
// ANOMALY CATEGORIES
// ============================================================================

// Category names a rare draw pattern. Categories form a closed set;
// classification picks exactly one in fixed priority order.
type Category string

const (
	CategoryClusteredJump    Category = "clustered_jump"    // Several blocks with short jumps between them
	CategoryMassiveBlock     Category = "massive_block"     // A single run of six or more numerals
	CategoryExtremeBreak     Category = "extreme_break"     // Near-total break from the previous draw
	CategorySumFrontier      Category = "sum_frontier"      // Sum far outside the normal band
	CategoryColdStreak       Category = "cold_streak"       // Many long-absent numerals at once
	CategoryAnomalousDensity Category = "anomalous_density" // Atypical spatial distribution, no specific rule
	CategoryNormal           Category = "normal"
)

// Profile carries the empirical base probability and signed impact of
// a category. Negative impact correlates with weight reduction needs,
// positive with opportunity.
type Profile struct {
	Category        Category `json:"category"`
	Description     string   `json:"description"`
	BaseProbability float64  `json:"base_probability"`
	Impact          float64  `json:"impact"`
}

// profiles holds the tuned per-category constants. Order here is not
// significant; rule priority lives in the classifier's rule table.
var profiles = map[Category]Profile{
	CategoryClusteredJump: {
		Category:        CategoryClusteredJump,
		Description:     "long runs separated by short jumps",
		BaseProbability: 0.008,
		Impact:          -0.25,
	},
	CategoryMassiveBlock: {
		Category:        CategoryMassiveBlock,
		Description:     "consecutive block of 6+ numerals",
		BaseProbability: 0.015,
		Impact:          -0.15,
	},
	CategoryExtremeBreak: {
		Category:        CategoryExtremeBreak,
		Description:     "fewer than 6 repeats with a large sum swing",
		BaseProbability: 0.012,
		Impact:          -0.30,
	},
	CategorySumFrontier: {
		Category:        CategorySumFrontier,
		Description:     "sum outside the normal interval",
		BaseProbability: 0.020,
		Impact:          -0.10,
	},
	CategoryColdStreak: {
		Category:        CategoryColdStreak,
		Description:     "several numerals with very long absence",
		BaseProbability: 0.018,
		Impact:          0.20,
	},
	CategoryAnomalousDensity: {
		Category:        CategoryAnomalousDensity,
		Description:     "atypical spatial distribution",
		BaseProbability: 0.010,
		Impact:          -0.05,
	},
	CategoryNormal: {
		Category:        CategoryNormal,
		BaseProbability: 1.0,
	},
}

// ProfileFor returns the tuned constants for a category.
func ProfileFor(c Category) Profile {
	if p, ok := profiles[c]; ok {
		return p
	}
	return Profile{Category: c}
}
