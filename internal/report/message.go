package report

import (
	"fmt"
	"strings"

	"github.com/qazprep/qazprep/internal/analysis"
	"github.com/qazprep/qazprep/internal/locale"
)

// motivationalSuffix is appended by the motivational tone in every language.
const motivationalSuffix = " \U0001F4AA"

// StudentMessage builds the message shown to the student. With weak topics
// present it names them and points at the generated tasks and videos;
// otherwise it congratulates. Style picks the base variant, tone transforms
// it afterwards.
func StudentMessage(topics []analysis.TopicAnalysis, opts Options) string {
	tbl := locale.Strings(opts.Lang)

	var msg string
	if weak := topicNames(topics, analysis.BandWeak); len(weak) > 0 {
		msg = fmt.Sprintf(tbl.StudentWeak, strings.Join(weak, ", "))
	} else {
		msg = tbl.StudentPraise
	}

	switch opts.MessageStyle {
	case StyleShort:
		msg = firstSentence(msg)
	case StyleFriendly:
		msg = tbl.FriendlyPrefix + msg
	}

	switch opts.Tone {
	case ToneStrict:
		msg = strings.ReplaceAll(msg, "!", ".")
	case ToneMotivational:
		msg += motivationalSuffix
	}
	return msg
}

// firstSentence truncates after the first sentence terminator.
func firstSentence(s string) string {
	for i, r := range s {
		if r == '.' || r == '!' || r == '?' {
			return s[:i+utf8Len(r)]
		}
	}
	return s
}

func utf8Len(r rune) int {
	return len(string(r))
}
