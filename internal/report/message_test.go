package report

import (
	"strings"
	"testing"

	"github.com/qazprep/qazprep/internal/analysis"
	"github.com/qazprep/qazprep/internal/locale"
)

func TestStudentMessage_WeakTopicsNamed(t *testing.T) {
	topics := []analysis.TopicAnalysis{
		analyzed("Fractions", analysis.BandWeak),
		analyzed("Decimals", analysis.BandWeak),
		analyzed("Geometry", analysis.BandStrong),
	}
	got := StudentMessage(topics, DefaultOptions())
	want := "Pay attention to these topics: Fractions, Decimals. Complete the tasks and watch the short videos!"
	if got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestStudentMessage_PraiseWithoutWeakTopics(t *testing.T) {
	topics := []analysis.TopicAnalysis{analyzed("Geometry", analysis.BandStrong)}
	got := StudentMessage(topics, DefaultOptions())
	if got != "Great work! Keep it up!" {
		t.Errorf("message = %q, want praise", got)
	}
}

func TestStudentMessage_Styles(t *testing.T) {
	topics := []analysis.TopicAnalysis{analyzed("Fractions", analysis.BandWeak)}

	opts := DefaultOptions()
	opts.MessageStyle = StyleShort
	if got := StudentMessage(topics, opts); got != "Pay attention to these topics: Fractions." {
		t.Errorf("short message = %q", got)
	}

	opts.MessageStyle = StyleFriendly
	if got := StudentMessage(topics, opts); !strings.HasPrefix(got, "Hi! ") {
		t.Errorf("friendly message = %q, want Hi! prefix", got)
	}
}

func TestStudentMessage_Tones(t *testing.T) {
	topics := []analysis.TopicAnalysis{analyzed("Fractions", analysis.BandWeak)}

	opts := DefaultOptions()
	opts.Tone = ToneStrict
	if got := StudentMessage(topics, opts); strings.Contains(got, "!") {
		t.Errorf("strict message still has exclamation marks: %q", got)
	}

	opts.Tone = ToneMotivational
	if got := StudentMessage(topics, opts); !strings.HasSuffix(got, motivationalSuffix) {
		t.Errorf("motivational message = %q, want %q suffix", got, motivationalSuffix)
	}
}

func TestStudentMessage_KazakhShortKeepsWholeSentence(t *testing.T) {
	topics := []analysis.TopicAnalysis{analyzed("Бөлшектер", analysis.BandWeak)}
	opts := DefaultOptions()
	opts.Lang = locale.LangKZ
	opts.MessageStyle = StyleShort

	got := StudentMessage(topics, opts)
	want := "Мына тақырыптарға назар аудар: Бөлшектер."
	if got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestFirstSentence(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"One. Two.", "One."},
		{"Done! Next", "Done!"},
		{"no terminator", "no terminator"},
	}
	for _, tt := range tests {
		if got := firstSentence(tt.in); got != tt.want {
			t.Errorf("firstSentence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
