// Package classify maps free-text question content to canonical topic
// labels. Classification is heuristic and never fails: unmatched text lands
// in a per-subject catch-all bucket with lowered confidence.
package classify

import (
	"fmt"
	"strings"
	"unicode"
)

// subjectRules lists each subject's rule set in detection priority order.
var subjectRules = []struct {
	subject Subject
	rules   []Rule
}{
	{SubjectMathematics, mathRules},
	{SubjectHistory, historyRules},
	{SubjectMathLiteracy, mathLitRules},
	{SubjectPhysics, physicsRules},
}

// Classify detects the subject from the text and classifies within it.
func Classify(text string) Classification {
	return ClassifyIn(DetectSubject(text), text)
}

// DetectSubject scores each subject by how many of its rules match and
// returns the best scorer. Text that matches nothing is SubjectOther.
func DetectSubject(text string) Subject {
	lower := strings.ToLower(text)
	best := SubjectOther
	bestScore := 0
	for _, sr := range subjectRules {
		score := 0
		for _, r := range sr.rules {
			if r.Applies(lower) {
				score++
			}
		}
		if score > bestScore {
			best = sr.subject
			bestScore = score
		}
	}
	return best
}

// ClassifyIn classifies text within a known subject. The first matching
// rule wins; unmatched text gets the subject's catch-all topic.
func ClassifyIn(subject Subject, text string) Classification {
	lower := strings.ToLower(text)

	var rules []Rule
	for _, sr := range subjectRules {
		if sr.subject == subject {
			rules = sr.rules
			break
		}
	}

	var c Classification
	if r, ok := runRules(rules, lower); ok {
		c = Classification{
			Subject:    subject,
			Domain:     r.Domain,
			Topic:      r.Topic,
			Tags:       append([]string(nil), r.Tags...),
			Difficulty: r.Difficulty,
			Confidence: r.Confidence,
		}
	} else {
		c = fallbackFor(subject, text)
	}

	if subject == SubjectHistory {
		// Century inference runs on the original text regardless of
		// which rule (or the catch-all) produced the topic: roman
		// numerals are matched uppercase only.
		if century, note, ok := InferCentury(text); ok {
			c.Tags = append(c.Tags, fmt.Sprintf("century:%d", century))
		} else if note != "" {
			c.Tags = append(c.Tags, note)
		}
	}
	return c
}

// FromMeta builds a classification from explicit content metadata.
// Explicit tagging always takes precedence over heuristic detection, so the
// confidence is full.
func FromMeta(meta Meta) Classification {
	subject := subjectFromDomain(meta.Domain)
	topic := humanizeCode(meta.TopicCode)
	if topic == "" {
		return fallbackFor(subject, "")
	}
	return Classification{
		Subject:    subject,
		Domain:     meta.Domain,
		Topic:      topic,
		Difficulty: 3,
		Confidence: 1.0,
	}
}

func fallbackFor(subject Subject, text string) Classification {
	conf := 0.6
	if strings.TrimSpace(text) == "" {
		conf = 0.55
	}
	topic := "General knowledge"
	switch subject {
	case SubjectMathematics, SubjectMathLiteracy:
		topic = "General problem solving"
	case SubjectHistory:
		topic = "Historical facts and chronology"
	}
	return Classification{
		Subject:    subject,
		Domain:     "general",
		Topic:      topic,
		Difficulty: 3,
		Confidence: conf,
	}
}

func subjectFromDomain(domain string) Subject {
	switch strings.ToLower(domain) {
	case "math", "mathematics", "algebra", "geometry":
		return SubjectMathematics
	case "history":
		return SubjectHistory
	case "math-literacy", "mathlit":
		return SubjectMathLiteracy
	case "physics":
		return SubjectPhysics
	default:
		return SubjectOther
	}
}

// humanizeCode turns a topic code like "quadratic-equations" into
// "Quadratic equations".
func humanizeCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	words := strings.FieldsFunc(code, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})
	s := strings.Join(words, " ")
	runes := []rune(s)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
