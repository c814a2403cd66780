// Package engine runs the full test-result diagnostic pipeline: aggregate
// per-question outcomes by topic, classify each topic, derive a practice
// allocation, generate localized homework and videos, and build the
// narrative summaries.
//
// One Analyze call is pure and synchronous: no I/O, no shared state between
// calls, and no error return. Malformed input degrades confidence instead
// of failing.
package engine

import (
	"time"

	"github.com/qazprep/qazprep/internal/allocation"
	"github.com/qazprep/qazprep/internal/analysis"
	"github.com/qazprep/qazprep/internal/attempt"
	"github.com/qazprep/qazprep/internal/content"
	"github.com/qazprep/qazprep/internal/locale"
	"github.com/qazprep/qazprep/internal/report"
)

// AnalysisOutput is the root result of one analysis run. The caller owns it
// after return; the engine keeps no state about it.
type AnalysisOutput struct {
	StudentID                       string                        `json:"student_id"`
	TestID                          string                        `json:"test_id"`
	Timestamp                       time.Time                     `json:"timestamp"`
	OverallScorePct                 float64                       `json:"overall_score_pct"`
	Topics                          []analysis.TopicAnalysis      `json:"topics"`
	RecommendedPracticeDistribution []allocation.Item             `json:"recommended_practice_distribution"`
	Homework                        []content.HomeworkTask        `json:"homework"`
	VideoRecommendations            []content.VideoRecommendation `json:"video_recommendations"`
	TeacherNotes                    string                        `json:"teacher_notes"`
	StudentMessage                  string                        `json:"student_message"`
}

// Analyze computes the full diagnostic output for one attempt. Outcomes
// without a topic are excluded from aggregation. Topic classifications,
// statistics and the practice distribution are deterministic for identical
// input; homework task IDs are regenerated on every call.
func Analyze(att *attempt.TestAttempt, cfg Config) *AnalysisOutput {
	kept, _ := attempt.SplitUntopiced(att.Questions)

	stats, overall := analysis.Aggregate(kept)
	topics := analysis.BuildTopics(stats, cfg.thresholds())
	dist := allocation.Plan(topics, cfg.allocation())

	pref := cfg.Language
	if pref == "" {
		pref = att.Metadata.PreferredLanguage
	}
	lang := locale.Resolve(pref)
	grade := att.Metadata.GradeLevel

	homework, videos := content.Generate(topics, cfg.content(lang, grade))
	opts := cfg.reportOptions(lang, grade)

	return &AnalysisOutput{
		StudentID:                       att.StudentID,
		TestID:                          att.TestID,
		Timestamp:                       att.Timestamp,
		OverallScorePct:                 overall,
		Topics:                          topics,
		RecommendedPracticeDistribution: dist,
		Homework:                        homework,
		VideoRecommendations:            videos,
		TeacherNotes:                    report.TeacherNotes(topics, overall, opts),
		StudentMessage:                  report.StudentMessage(topics, opts),
	}
}

// Diagnostic renders the standalone rule-based diagnostic report for an
// analysis, in the given language.
func Diagnostic(out *AnalysisOutput, lang locale.Lang) string {
	return report.DiagnosticReport(report.FromAnalysis(out.Topics), lang)
}
