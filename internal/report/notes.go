// Package report builds the localized narrative artifacts of an analysis:
// teacher notes, the student message, and a standalone rule-based
// diagnostic report.
package report

import (
	"fmt"
	"strings"

	"github.com/qazprep/qazprep/internal/analysis"
	"github.com/qazprep/qazprep/internal/locale"
)

// TeacherNotes summarizes an analysis for the teacher: the overall
// percentage followed by clauses naming weak, borderline and strong topics
// and an optional grade-level note. The concise style keeps at most 3
// clauses, detailed allows 4.
func TeacherNotes(topics []analysis.TopicAnalysis, overallPct float64, opts Options) string {
	tbl := locale.Strings(opts.Lang)

	var clauses []string
	if names := topicNames(topics, analysis.BandWeak); len(names) > 0 {
		clauses = append(clauses, fmt.Sprintf(tbl.WeakList, strings.Join(names, ", ")))
	}
	if names := topicNames(topics, analysis.BandBorderline); len(names) > 0 {
		clauses = append(clauses, fmt.Sprintf(tbl.BorderlineList, strings.Join(names, ", ")))
	}
	if names := topicNames(topics, analysis.BandStrong); len(names) > 0 {
		clauses = append(clauses, fmt.Sprintf(tbl.StrongList, strings.Join(names, ", ")))
	}
	if opts.GradeLevel > 0 {
		clauses = append(clauses, fmt.Sprintf(tbl.GradeNote, opts.GradeLevel))
	}

	limit := 3
	if opts.NotesStyle == NotesDetailed {
		limit = 4
	}
	if len(clauses) > limit {
		clauses = clauses[:limit]
	}

	parts := append([]string{fmt.Sprintf(tbl.OverallResult, overallPct)}, clauses...)
	return strings.Join(parts, "; ") + "."
}

func topicNames(topics []analysis.TopicAnalysis, band analysis.Band) []string {
	var names []string
	for _, t := range topics {
		if t.Classification == band {
			names = append(names, t.Topic)
		}
	}
	return names
}
