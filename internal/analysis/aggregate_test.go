package analysis

import (
	"math"
	"testing"

	"github.com/qazprep/qazprep/internal/attempt"
)

func q(topic string, correct bool, score, maxScore float64) attempt.QuestionOutcome {
	return attempt.QuestionOutcome{Topic: topic, Correct: correct, Score: score, MaxScore: maxScore}
}

func TestAggregate_BasicScenario(t *testing.T) {
	stats, overall := Aggregate([]attempt.QuestionOutcome{
		q("fractions", false, 0, 1),
		q("fractions", true, 1, 1),
		q("decimals", false, 0, 1),
	})

	if len(stats) != 2 {
		t.Fatalf("got %d topics, want 2", len(stats))
	}

	byTopic := map[string]TopicStats{}
	for _, s := range stats {
		byTopic[s.Topic] = s
	}

	fr := byTopic["fractions"]
	if fr.TotalItems != 2 || fr.PercentCorrect != 50 || fr.AvgScorePct != 50 {
		t.Errorf("fractions = %+v, want 2 items, 50%% correct, 50%% score", fr)
	}
	de := byTopic["decimals"]
	if de.TotalItems != 1 || de.PercentCorrect != 0 {
		t.Errorf("decimals = %+v, want 1 item, 0%% correct", de)
	}

	if overall != 33.33 {
		t.Errorf("overall = %v, want 33.33", overall)
	}
}

func TestAggregate_OverallIsNotTopicAverage(t *testing.T) {
	// One topic with 4 questions at 100%, one with 1 question at 0%:
	// a naive average of topic percentages would give 50, the real
	// overall is 80.
	stats, overall := Aggregate([]attempt.QuestionOutcome{
		q("a", true, 1, 1), q("a", true, 1, 1), q("a", true, 1, 1), q("a", true, 1, 1),
		q("b", false, 0, 1),
	})
	if len(stats) != 2 {
		t.Fatalf("got %d topics, want 2", len(stats))
	}
	if overall != 80 {
		t.Errorf("overall = %v, want 80", overall)
	}
}

func TestAggregate_ZeroMaxScoreYieldsZero(t *testing.T) {
	stats, overall := Aggregate([]attempt.QuestionOutcome{
		q("weird", true, 0, 0),
	})
	if stats[0].AvgScorePct != 0 {
		t.Errorf("avg score pct = %v, want 0", stats[0].AvgScorePct)
	}
	if overall != 0 {
		t.Errorf("overall = %v, want 0", overall)
	}
}

func TestAggregate_SkipsEmptyTopics(t *testing.T) {
	stats, _ := Aggregate([]attempt.QuestionOutcome{
		q("", true, 1, 1),
		q("real", true, 1, 1),
	})
	if len(stats) != 1 || stats[0].Topic != "real" {
		t.Errorf("got %+v, want only topic %q", stats, "real")
	}
}

func TestAggregate_Empty(t *testing.T) {
	stats, overall := Aggregate(nil)
	if len(stats) != 0 || overall != 0 {
		t.Errorf("got %d topics, overall %v; want none", len(stats), overall)
	}
}

func TestRound2(t *testing.T) {
	if got := round2(100.0 / 3); math.Abs(got-33.33) > 1e-9 {
		t.Errorf("round2(33.333...) = %v, want 33.33", got)
	}
}
