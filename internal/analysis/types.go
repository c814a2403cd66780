package analysis

// Band is a three-way per-topic performance classification.
type Band string

const (
	BandWeak       Band = "weak"
	BandBorderline Band = "borderline"
	BandStrong     Band = "strong"
)

// bandRank orders bands weakest-first for sorting.
func bandRank(b Band) int {
	switch b {
	case BandWeak:
		return 0
	case BandBorderline:
		return 1
	default:
		return 2
	}
}

// TopicStats summarizes all outcomes for one topic.
type TopicStats struct {
	Topic          string
	TotalItems     int
	CorrectCount   int
	PercentCorrect float64 // 0-100, rounded to 2 decimals
	AvgScorePct    float64 // 0-100, rounded to 2 decimals
}

// TopicAnalysis is the per-topic result of an analysis run. Computed once
// per attempt per topic and never mutated; a fresh analysis recomputes it.
type TopicAnalysis struct {
	Topic          string  `json:"topic"`
	TotalItems     int     `json:"total_items"`
	PercentCorrect float64 `json:"percent_correct"`
	AvgScorePct    float64 `json:"avg_score_pct"`
	Classification Band    `json:"classification"`
	Confidence     float64 `json:"confidence"`
}
