package classify

// Subject is the broad subject family a question belongs to.
type Subject string

const (
	SubjectMathematics  Subject = "mathematics"
	SubjectHistory      Subject = "history"
	SubjectMathLiteracy Subject = "math-literacy"
	SubjectPhysics      Subject = "physics"
	SubjectOther        Subject = "other"
)

// Classification is the result of classifying a question's text.
type Classification struct {
	Subject    Subject
	Domain     string
	Topic      string
	Tags       []string
	Difficulty int     // 1-5
	Confidence float64 // 0.0-1.0
}

// Meta is explicit topic metadata attached to pre-tagged content, such as
// generated practice questions. When present it takes precedence over
// heuristic text classification.
type Meta struct {
	Domain    string
	TopicCode string
}
