package content

// Difficulty is the declared difficulty of a generated task or video.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// HomeworkTask is one generated practice assignment. Tasks are generated
// fresh each run; IDs are unique per generation but not stable across
// re-analysis.
type HomeworkTask struct {
	Topic                string     `json:"topic"`
	TaskID               string     `json:"task_id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Difficulty           Difficulty `json:"difficulty"`
	EstimatedTimeMinutes int        `json:"estimated_time_minutes"`
	LearningObjective    string     `json:"learning_objective"`
}

// VideoRecommendation suggests a short explainer video for a topic.
type VideoRecommendation struct {
	Topic                string     `json:"topic"`
	Title                string     `json:"title"`
	QueryTerms           []string   `json:"query_terms"`
	RecommendedLengthMin int        `json:"recommended_length_min"`
	Difficulty           Difficulty `json:"difficulty"`
	SourcePriority       []string   `json:"source_priority"`
}
