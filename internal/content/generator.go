// Package content generates localized homework tasks and video
// recommendations from per-topic analysis results.
package content

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/qazprep/qazprep/internal/analysis"
	"github.com/qazprep/qazprep/internal/locale"
)

// confidentCut separates low-confidence classifications from trusted ones.
// Low-confidence weak topics get fewer, simpler tasks: overloading a student
// on an uncertain weakness signal helps nobody. A low-confidence strong
// topic gets nothing at all, since there is not enough evidence to certify
// mastery either way.
const confidentCut = 0.5

// Generate produces homework and video recommendations for every topic.
func Generate(topics []analysis.TopicAnalysis, cfg Config) ([]HomeworkTask, []VideoRecommendation) {
	var homework []HomeworkTask
	var videos []VideoRecommendation
	tbl := locale.Strings(cfg.Lang)

	for _, t := range topics {
		homework = append(homework, tasksForTopic(t, cfg, tbl)...)
		videos = append(videos, videosForTopic(t, cfg, tbl)...)
	}
	return homework, videos
}

func tasksForTopic(t analysis.TopicAnalysis, cfg Config, tbl *locale.Table) []HomeworkTask {
	confident := t.Confidence >= confidentCut

	base := 10
	if confident {
		base = 15
	}

	var tasks []HomeworkTask
	switch t.Classification {
	case analysis.BandWeak:
		tasks = append(tasks,
			buildTask(t.Topic, tbl.Conceptual, DifficultyEasy, base),
			buildTask(t.Topic, tbl.Guided, DifficultyMedium, base+5),
		)
		if confident {
			tasks = append(tasks, buildTask(t.Topic, tbl.Applied, DifficultyHard, appliedMinutes(base+10, cfg.GradeLevel)))
		}
	case analysis.BandBorderline:
		tasks = append(tasks, buildTask(t.Topic, tbl.Guided, DifficultyMedium, base))
		if confident {
			tasks = append(tasks, buildTask(t.Topic, tbl.Applied, DifficultyHard, appliedMinutes(base+5, cfg.GradeLevel)))
		}
	case analysis.BandStrong:
		if confident {
			tasks = append(tasks, buildTask(t.Topic, tbl.Review, DifficultyEasy, 10))
		}
	}
	return tasks
}

func buildTask(topic string, ts locale.TaskStrings, diff Difficulty, minutes int) HomeworkTask {
	return HomeworkTask{
		Topic:                topic,
		TaskID:               newTaskID(),
		Title:                fmt.Sprintf(ts.Title, topic),
		Description:          fmt.Sprintf(ts.Description, topic),
		Difficulty:           diff,
		EstimatedTimeMinutes: minutes,
		LearningObjective:    fmt.Sprintf(ts.Objective, topic),
	}
}

// appliedMinutes bumps applied-task time for senior grades: their exam
// problems take longer.
func appliedMinutes(minutes, gradeLevel int) int {
	if gradeLevel >= 10 {
		return minutes + 5
	}
	return minutes
}

func videosForTopic(t analysis.TopicAnalysis, cfg Config, tbl *locale.Table) []VideoRecommendation {
	var count int
	var diff Difficulty
	var length int

	switch t.Classification {
	case analysis.BandWeak:
		count = cfg.VideoCountWeakMax
		if t.Confidence < confidentCut {
			count = cfg.VideoCountWeakMin
		}
		diff = DifficultyEasy
		length = 6
	case analysis.BandBorderline:
		count = cfg.VideoCountBorderline
		diff = DifficultyMedium
		length = 8
	default:
		count = cfg.VideoCountStrong
		diff = DifficultyMedium
		length = 4
	}

	videos := make([]VideoRecommendation, 0, count)
	for i := 0; i < count; i++ {
		videos = append(videos, VideoRecommendation{
			Topic:                t.Topic,
			Title:                fmt.Sprintf(tbl.VideoTitle, t.Topic),
			QueryTerms:           queryTerms(t.Topic, tbl),
			RecommendedLengthMin: length,
			Difficulty:           diff,
			SourcePriority:       sourcePriority(cfg.Lang),
		})
	}
	return videos
}

func queryTerms(topic string, tbl *locale.Table) []string {
	terms := make([]string, 0, 1+len(tbl.VideoQueryTerms))
	terms = append(terms, topic)
	terms = append(terms, tbl.VideoQueryTerms...)
	return terms
}

// sourcePriority orders video providers. Kazakh and Russian learners get
// the local platform first; its coverage in those languages is better.
func sourcePriority(lang locale.Lang) []string {
	switch lang {
	case locale.LangRU, locale.LangKZ:
		return []string{"bilimland", "youtube", "khanacademy"}
	default:
		return []string{"youtube", "khanacademy", "bilimland"}
	}
}

// newTaskID builds an ID from a random prefix and a timestamp. Uniqueness
// is practical, not cryptographic, and IDs are not stable across
// re-analysis: homework is meant to be regenerated, not deduplicated.
func newTaskID() string {
	return "hw-" + uuid.NewString()[:8] + "-" + strconv.FormatInt(time.Now().UnixNano(), 36)
}
