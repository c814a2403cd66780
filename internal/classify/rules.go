package classify

import "strings"

// Rule is one entry in an ordered rule list. Rules are evaluated in order
// and the first matching predicate wins, so more specific rules
// ("quadratic") must be listed before generic ones ("equation").
type Rule struct {
	Applies    func(text string) bool
	Domain     string
	Topic      string
	Tags       []string
	Difficulty int
	Confidence float64
}

// runRules evaluates rules against already-lowercased text.
func runRules(rules []Rule, text string) (Rule, bool) {
	for _, r := range rules {
		if r.Applies(text) {
			return r, true
		}
	}
	return Rule{}, false
}

// keywordAny matches when any of the given substrings occurs in the text.
// Keywords must be supplied lowercase.
func keywordAny(words ...string) func(string) bool {
	return func(text string) bool {
		for _, w := range words {
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	}
}
