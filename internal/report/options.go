package report

import "github.com/qazprep/qazprep/internal/locale"

// Tone adjusts the register of the student message.
type Tone string

const (
	ToneNeutral      Tone = "neutral"
	ToneSupportive   Tone = "supportive"
	ToneStrict       Tone = "strict"
	ToneMotivational Tone = "motivational"
)

// MessageStyle selects the student-message variant.
type MessageStyle string

const (
	StyleShort    MessageStyle = "short"
	StyleDirect   MessageStyle = "direct"
	StyleFriendly MessageStyle = "friendly"
)

// NotesStyle selects how many clauses the teacher notes carry.
type NotesStyle string

const (
	NotesConcise  NotesStyle = "concise"
	NotesDetailed NotesStyle = "detailed"
)

// Options configures narrative generation.
type Options struct {
	Lang         locale.Lang
	Tone         Tone
	MessageStyle MessageStyle
	NotesStyle   NotesStyle
	GradeLevel   int // 0 when unknown
}

// DefaultOptions returns the standard narrative settings.
func DefaultOptions() Options {
	return Options{
		Lang:         locale.LangEN,
		Tone:         ToneNeutral,
		MessageStyle: StyleDirect,
		NotesStyle:   NotesConcise,
	}
}
