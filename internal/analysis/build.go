package analysis

import "sort"

// BuildTopics classifies aggregated topic stats into TopicAnalysis values,
// sorted weakest-first.
func BuildTopics(stats []TopicStats, th Thresholds) []TopicAnalysis {
	topics := make([]TopicAnalysis, 0, len(stats))
	for _, s := range stats {
		topics = append(topics, TopicAnalysis{
			Topic:          s.Topic,
			TotalItems:     s.TotalItems,
			PercentCorrect: s.PercentCorrect,
			AvgScorePct:    s.AvgScorePct,
			Classification: ClassifyBand(s.PercentCorrect, s.AvgScorePct, th),
			Confidence:     Confidence(s.TotalItems, s.PercentCorrect, th.MinItems),
		})
	}
	SortWeakestFirst(topics)
	return topics
}

// SortWeakestFirst orders topics by band (weak, borderline, strong), then
// ascending confidence, then topic name.
func SortWeakestFirst(topics []TopicAnalysis) {
	sort.SliceStable(topics, func(i, j int) bool {
		ri, rj := bandRank(topics[i].Classification), bandRank(topics[j].Classification)
		if ri != rj {
			return ri < rj
		}
		if topics[i].Confidence != topics[j].Confidence {
			return topics[i].Confidence < topics[j].Confidence
		}
		return topics[i].Topic < topics[j].Topic
	})
}
