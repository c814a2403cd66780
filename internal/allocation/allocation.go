// Package allocation converts per-topic classifications into a normalized
// practice-time distribution.
package allocation

import (
	"github.com/qazprep/qazprep/internal/analysis"
)

// Item is one topic's share of recommended practice time.
type Item struct {
	Topic      string  `json:"topic"`
	Proportion float64 `json:"proportion"`
}

// Config holds the planner's weights and share constraints.
type Config struct {
	// Per-band base weights.
	WeightWeak       float64
	WeightBorderline float64
	WeightStrong     float64

	// Aggregate share of weak topics is forced into [WeakShareMin,
	// WeakShareMax] when weak and non-weak topics are both present.
	WeakShareMin float64
	WeakShareMax float64

	// StrongShareMax caps the aggregate share of strong topics.
	// Zero or negative disables the cap.
	StrongShareMax float64
}

// DefaultConfig returns the standard allocation settings.
func DefaultConfig() Config {
	return Config{
		WeightWeak:       3,
		WeightBorderline: 1.5,
		WeightStrong:     0.5,
		WeakShareMin:     0.5,
		WeakShareMax:     0.7,
		StrongShareMax:   0.25,
	}
}

// Plan builds the practice distribution for the given topics. The returned
// proportions sum to exactly 1, with any floating residual folded into the
// first entry. Weak-share enforcement runs before the strong-share cap; both
// operate sequentially on the same proportion vector.
func Plan(topics []analysis.TopicAnalysis, cfg Config) []Item {
	if len(topics) == 0 {
		return nil
	}

	items := make([]Item, len(topics))
	for i, t := range topics {
		items[i] = Item{Topic: t.Topic}
	}

	// A single topic gets everything regardless of weights.
	if len(topics) == 1 {
		items[0].Proportion = 1
		return items
	}

	for i, t := range topics {
		// Low-confidence topics are damped toward half their nominal
		// weight, never below it.
		items[i].Proportion = bandWeight(t.Classification, cfg) * (0.5 + 0.5*t.Confidence)
	}
	normalize(items)

	weak := bandMask(topics, analysis.BandWeak)
	strong := bandMask(topics, analysis.BandStrong)

	enforceWeakShare(items, weak, cfg.WeakShareMin, cfg.WeakShareMax)
	if cfg.StrongShareMax > 0 {
		capGroupShare(items, strong, cfg.StrongShareMax)
	}

	return items
}

func bandWeight(b analysis.Band, cfg Config) float64 {
	switch b {
	case analysis.BandWeak:
		return cfg.WeightWeak
	case analysis.BandBorderline:
		return cfg.WeightBorderline
	default:
		return cfg.WeightStrong
	}
}

func bandMask(topics []analysis.TopicAnalysis, b analysis.Band) []bool {
	mask := make([]bool, len(topics))
	for i, t := range topics {
		mask[i] = t.Classification == b
	}
	return mask
}

// enforceWeakShare rescales so the aggregate weak share lands on the
// nearest bound of [min, max] when it falls outside.
func enforceWeakShare(items []Item, weak []bool, min, max float64) {
	sum, n := groupSum(items, weak)
	if n == 0 || n == len(items) {
		// Nothing to rebalance against.
		return
	}
	switch {
	case sum < min:
		rescaleGroup(items, weak, min)
	case sum > max:
		rescaleGroup(items, weak, max)
	}
}

// capGroupShare rescales so the group's aggregate share does not exceed cap.
func capGroupShare(items []Item, group []bool, cap float64) {
	sum, n := groupSum(items, group)
	if n == 0 || n == len(items) || sum <= cap {
		return
	}
	rescaleGroup(items, group, cap)
}

// rescaleGroup scales the group's proportions so their sum hits target and
// redistributes the delta proportionally across the complement, then
// re-normalizes. Proportions never go below 0.
func rescaleGroup(items []Item, group []bool, target float64) {
	sum, _ := groupSum(items, group)
	if sum <= 0 || sum >= 1 {
		return
	}
	groupScale := target / sum
	restScale := (1 - target) / (1 - sum)
	for i := range items {
		if group[i] {
			items[i].Proportion *= groupScale
		} else {
			items[i].Proportion *= restScale
		}
		if items[i].Proportion < 0 {
			items[i].Proportion = 0
		}
	}
	normalize(items)
}

func groupSum(items []Item, group []bool) (sum float64, count int) {
	for i, it := range items {
		if group[i] {
			sum += it.Proportion
			count++
		}
	}
	return sum, count
}

// normalize scales proportions to sum to 1 and folds the floating residual
// into the first entry so the invariant holds exactly.
func normalize(items []Item) {
	var sum float64
	for _, it := range items {
		sum += it.Proportion
	}
	if sum <= 0 {
		// Degenerate weights: fall back to a uniform split.
		for i := range items {
			items[i].Proportion = 1 / float64(len(items))
		}
	} else {
		for i := range items {
			items[i].Proportion /= sum
		}
	}
	var total float64
	for _, it := range items {
		total += it.Proportion
	}
	items[0].Proportion += 1 - total
}
