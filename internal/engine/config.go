package engine

import (
	"github.com/qazprep/qazprep/internal/allocation"
	"github.com/qazprep/qazprep/internal/analysis"
	"github.com/qazprep/qazprep/internal/content"
	"github.com/qazprep/qazprep/internal/locale"
	"github.com/qazprep/qazprep/internal/report"
)

// Config is the flat options record of the diagnostic engine. Every field
// has a documented default from DefaultConfig; callers override what they
// need and pass the record to Analyze.
type Config struct {
	// Classification.
	WeakThreshold         float64 // accuracy ratio below which a topic is weak
	BorderlineThreshold   float64 // ratio both metrics must clear for strong
	MinItemsForConfidence int

	// Practice allocation.
	WeightWeak       float64
	WeightBorderline float64
	WeightStrong     float64
	WeakShareMin     float64
	WeakShareMax     float64
	StrongShareMax   float64

	// Content generation.
	VideoCountWeakMin    int
	VideoCountWeakMax    int
	VideoCountBorderline int
	VideoCountStrong     int

	// Narrative.
	Tone                Tone
	StudentMessageStyle MessageStyle
	TeacherNotesStyle   NotesStyle

	// Language overrides the attempt's preferred language when non-empty.
	Language string
}

// Aliased narrative types so callers configure the engine without importing
// the report package.
type (
	Tone         = report.Tone
	MessageStyle = report.MessageStyle
	NotesStyle   = report.NotesStyle
)

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		WeakThreshold:         0.6,
		BorderlineThreshold:   0.8,
		MinItemsForConfidence: 3,
		WeightWeak:            3,
		WeightBorderline:      1.5,
		WeightStrong:          0.5,
		WeakShareMin:          0.5,
		WeakShareMax:          0.7,
		StrongShareMax:        0.25,
		VideoCountWeakMin:     2,
		VideoCountWeakMax:     3,
		VideoCountBorderline:  1,
		VideoCountStrong:      0,
		Tone:                  report.ToneNeutral,
		StudentMessageStyle:   report.StyleDirect,
		TeacherNotesStyle:     report.NotesConcise,
	}
}

func (c Config) thresholds() analysis.Thresholds {
	return analysis.Thresholds{
		Weak:       c.WeakThreshold,
		Borderline: c.BorderlineThreshold,
		MinItems:   c.MinItemsForConfidence,
	}
}

func (c Config) allocation() allocation.Config {
	return allocation.Config{
		WeightWeak:       c.WeightWeak,
		WeightBorderline: c.WeightBorderline,
		WeightStrong:     c.WeightStrong,
		WeakShareMin:     c.WeakShareMin,
		WeakShareMax:     c.WeakShareMax,
		StrongShareMax:   c.StrongShareMax,
	}
}

func (c Config) content(lang locale.Lang, gradeLevel int) content.Config {
	return content.Config{
		Lang:                 lang,
		GradeLevel:           gradeLevel,
		VideoCountWeakMin:    c.VideoCountWeakMin,
		VideoCountWeakMax:    c.VideoCountWeakMax,
		VideoCountBorderline: c.VideoCountBorderline,
		VideoCountStrong:     c.VideoCountStrong,
	}
}

func (c Config) reportOptions(lang locale.Lang, gradeLevel int) report.Options {
	return report.Options{
		Lang:         lang,
		Tone:         c.Tone,
		MessageStyle: c.StudentMessageStyle,
		NotesStyle:   c.TeacherNotesStyle,
		GradeLevel:   gradeLevel,
	}
}
