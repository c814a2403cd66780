package report

import (
	"fmt"
	"strings"

	"github.com/qazprep/qazprep/internal/analysis"
	"github.com/qazprep/qazprep/internal/locale"
)

// maxDiagnosticTopics caps the report length; a report covering everything
// prioritizes nothing.
const maxDiagnosticTopics = 10

// DiagnosticItem is the flat input of the rule-based diagnostic report.
// Percent is optional; when absent the report prints a qualitative estimate
// for the band instead.
type DiagnosticItem struct {
	Topic   string
	Percent *float64
	Band    analysis.Band
}

// FromAnalysis adapts per-topic analysis results into diagnostic items.
func FromAnalysis(topics []analysis.TopicAnalysis) []DiagnosticItem {
	items := make([]DiagnosticItem, 0, len(topics))
	for _, t := range topics {
		p := t.PercentCorrect
		items = append(items, DiagnosticItem{
			Topic:   t.Topic,
			Percent: &p,
			Band:    t.Classification,
		})
	}
	return items
}

// DiagnosticReport renders a two-section human-readable report: topics
// needing attention first, then strong topics. Each topic gets its
// percentage (or a band estimate), a recommendation tier, a one-line
// rationale, three numbered actions and a time budget. At most 10 topics
// are covered; a fixed weekly-plan sentence closes the report.
func DiagnosticReport(items []DiagnosticItem, lang locale.Lang) string {
	tbl := locale.Strings(lang)

	var focus, strong []DiagnosticItem
	for _, it := range items {
		if it.Band == analysis.BandStrong {
			strong = append(strong, it)
		} else {
			focus = append(focus, it)
		}
	}

	remaining := maxDiagnosticTopics
	var b strings.Builder

	if len(focus) > 0 && remaining > 0 {
		b.WriteString(tbl.DiagHeaderFocus)
		b.WriteString("\n")
		for i, it := range focus {
			if remaining == 0 {
				break
			}
			writeTopicBlock(&b, i+1, it, tbl)
			remaining--
		}
	}
	if len(strong) > 0 && remaining > 0 {
		b.WriteString(tbl.DiagHeaderStrong)
		b.WriteString("\n")
		for i, it := range strong {
			if remaining == 0 {
				break
			}
			writeTopicBlock(&b, i+1, it, tbl)
			remaining--
		}
	}

	b.WriteString(tbl.WeeklyPlan)
	b.WriteString("\n")
	return b.String()
}

func writeTopicBlock(b *strings.Builder, n int, it DiagnosticItem, tbl *locale.Table) {
	fmt.Fprintf(b, "%d. %s — %s — %s\n", n, it.Topic, percentLabel(it, tbl), tierLabel(it.Band, tbl))
	fmt.Fprintf(b, "   %s\n", rationaleLabel(it.Band, tbl))
	for i, action := range actionsLabel(it.Band, tbl) {
		fmt.Fprintf(b, "   %d) %s\n", i+1, action)
	}
	fmt.Fprintf(b, "   %s\n", budgetLabel(it.Band, tbl))
}

func percentLabel(it DiagnosticItem, tbl *locale.Table) string {
	if it.Percent != nil {
		return fmt.Sprintf("%.0f%%", *it.Percent)
	}
	switch it.Band {
	case analysis.BandWeak:
		return tbl.EstimateWeak
	case analysis.BandBorderline:
		return tbl.EstimateBorder
	default:
		return tbl.EstimateStrong
	}
}

func tierLabel(band analysis.Band, tbl *locale.Table) string {
	switch band {
	case analysis.BandWeak:
		return tbl.TierFull
	case analysis.BandBorderline:
		return tbl.TierBrief
	default:
		return tbl.TierMaintain
	}
}

func rationaleLabel(band analysis.Band, tbl *locale.Table) string {
	switch band {
	case analysis.BandWeak:
		return tbl.RationaleWeak
	case analysis.BandBorderline:
		return tbl.RationaleBorder
	default:
		return tbl.RationaleStrong
	}
}

func actionsLabel(band analysis.Band, tbl *locale.Table) [3]string {
	switch band {
	case analysis.BandWeak:
		return tbl.ActionsWeak
	case analysis.BandBorderline:
		return tbl.ActionsBorder
	default:
		return tbl.ActionsStrong
	}
}

func budgetLabel(band analysis.Band, tbl *locale.Table) string {
	if band == analysis.BandWeak {
		return tbl.BudgetWeak
	}
	return tbl.BudgetOther
}
