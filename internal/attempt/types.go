package attempt

import "time"

// QuestionOutcome is the graded result of a single answered question.
// Produced by the grading layer; immutable once created.
type QuestionOutcome struct {
	QuestionID       string   `json:"question_id"`
	Topic            string   `json:"topic"`
	MaxScore         float64  `json:"max_score"`
	Score            float64  `json:"score"`
	Correct          bool     `json:"correct"`
	Response         *string  `json:"response"`
	TimeSpentSeconds *float64 `json:"time_spent_seconds"`
}

// Metadata carries optional context supplied with a submission.
type Metadata struct {
	GradeLevel        int    `json:"grade_level,omitempty"`
	PreferredLanguage string `json:"preferred_language,omitempty"`
}

// TestAttempt is one completed test submission.
type TestAttempt struct {
	StudentID string            `json:"student_id"`
	TestID    string            `json:"test_id"`
	Timestamp time.Time         `json:"timestamp"`
	Questions []QuestionOutcome `json:"questions"`
	Metadata  Metadata          `json:"metadata"`
}

// SplitUntopiced separates outcomes that carry a non-empty topic from those
// that don't. Untopiced outcomes cannot be aggregated and are excluded from
// analysis; the count lets callers surface the omission.
func SplitUntopiced(questions []QuestionOutcome) (kept []QuestionOutcome, dropped int) {
	kept = make([]QuestionOutcome, 0, len(questions))
	for _, q := range questions {
		if q.Topic == "" {
			dropped++
			continue
		}
		kept = append(kept, q)
	}
	return kept, dropped
}
