package analysis

import (
	"math"
	"sort"

	"github.com/qazprep/qazprep/internal/attempt"
)

// Aggregate groups outcomes by topic and computes per-topic statistics plus
// the overall score percentage. The overall figure is total score over total
// max score across every question, not an average of per-topic percentages.
// Outcomes with an empty topic must be filtered out by the caller; zero
// denominators yield 0 rather than NaN.
func Aggregate(questions []attempt.QuestionOutcome) ([]TopicStats, float64) {
	type acc struct {
		items    int
		correct  int
		score    float64
		maxScore float64
	}

	byTopic := make(map[string]*acc)
	var order []string
	var totalScore, totalMax float64

	for _, q := range questions {
		if q.Topic == "" {
			continue
		}
		a, seen := byTopic[q.Topic]
		if !seen {
			a = &acc{}
			byTopic[q.Topic] = a
			order = append(order, q.Topic)
		}
		a.items++
		if q.Correct {
			a.correct++
		}
		a.score += q.Score
		a.maxScore += q.MaxScore
		totalScore += q.Score
		totalMax += q.MaxScore
	}

	sort.Strings(order)

	stats := make([]TopicStats, 0, len(order))
	for _, topic := range order {
		a := byTopic[topic]
		stats = append(stats, TopicStats{
			Topic:          topic,
			TotalItems:     a.items,
			CorrectCount:   a.correct,
			PercentCorrect: round2(100 * float64(a.correct) / float64(a.items)),
			AvgScorePct:    round2(100 * safeRatio(a.score, a.maxScore)),
		})
	}

	return stats, round2(100 * safeRatio(totalScore, totalMax))
}

// safeRatio divides guarding the zero denominator to 0.
func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
