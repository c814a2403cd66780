package classify

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// historyRules classifies history questions (Kazakhstan-centric banks).
var historyRules = []Rule{
	{
		// Stems, not full forms: Russian and Kazakh inflect these.
		Applies:    keywordAny("казахское ханство", "қазақ хандығы", "ханств", "хандық", "хандығ", "khanate"),
		Domain:     "medieval",
		Topic:      "Kazakh Khanate",
		Tags:       []string{"statehood"},
		Difficulty: 3,
		Confidence: 0.9,
	},
	{
		Applies:    keywordAny("золотая орда", "алтын орда", "орда", "horde"),
		Domain:     "medieval",
		Topic:      "Golden Horde and medieval states",
		Tags:       []string{"statehood"},
		Difficulty: 3,
		Confidence: 0.85,
	},
	{
		Applies:    keywordAny("независимост", "тәуелсіздік", "independence"),
		Domain:     "modern",
		Topic:      "Independent Kazakhstan",
		Tags:       []string{"modern"},
		Difficulty: 2,
		Confidence: 0.85,
	},
	{
		Applies:    keywordAny("советск", "кеңес", "ссср", "коллективизаци", "soviet"),
		Domain:     "modern",
		Topic:      "Soviet period",
		Tags:       []string{"modern"},
		Difficulty: 3,
		Confidence: 0.85,
	},
	{
		Applies:    keywordAny("войн", "соғыс", "сражен", "шайқас", "battle", " war"),
		Domain:     "military",
		Topic:      "Wars and battles",
		Tags:       []string{"military"},
		Difficulty: 3,
		Confidence: 0.8,
	},
	{
		Applies:    keywordAny("революц", "реформ", "restructuring", "қайта құру"),
		Domain:     "modern",
		Topic:      "Revolutions and reforms",
		Tags:       []string{"modern"},
		Difficulty: 3,
		Confidence: 0.8,
	},
	{
		Applies:    keywordAny("сак", "сақ", "ғұн", "гунн", "үйсін", "кангюй", "древн", "көне", "ancient"),
		Domain:     "ancient",
		Topic:      "Ancient history",
		Tags:       []string{"ancient"},
		Difficulty: 3,
		Confidence: 0.8,
	},
}

const historyFallbackTopic = "Historical facts and chronology"

var (
	// "XVIII–XIX вв.", "XV-XVI ғғ." and similar century ranges. The
	// suffix is optional: two dash-joined roman numerals are already
	// unambiguous, and both sides must still parse as centuries (1-21).
	// No \b after the suffix: Go's \b is ASCII-only and never fires
	// after Cyrillic letters.
	romanRangeRe = regexp.MustCompile(`([IVX]{1,6})\s*[-–—]\s*([IVX]{1,6})(?:\s*(?:вв|в|ғғ|ғ|cc|c))?`)
	// "XVIII в.", "XV ғасыр", "XIX century".
	romanCenturyRe = regexp.MustCompile(`([IVX]{1,6})\s*(?:в\.|век|ғ\.|ғасыр|c\.|century)`)
	yearRe         = regexp.MustCompile(`\b(\d{3,4})\b`)
)

// InferCentury extracts a century from history question text. A matched
// century range yields ok=false with a note recording the range instead of
// guessing a single value; a single roman numeral or an explicit 3-4 digit
// year yields a concrete century. Roman numerals are matched uppercase only,
// so lowercase prose never triggers a false century.
func InferCentury(text string) (century int, note string, ok bool) {
	if m := romanRangeRe.FindStringSubmatch(text); m != nil {
		lo, loOK := parseRoman(m[1])
		hi, hiOK := parseRoman(m[2])
		if loOK && hiOK && lo <= hi {
			return 0, fmt.Sprintf("century range %s-%s", m[1], m[2]), false
		}
	}
	if m := romanCenturyRe.FindStringSubmatch(text); m != nil {
		if c, pOK := parseRoman(m[1]); pOK {
			return c, "", true
		}
	}
	if m := yearRe.FindStringSubmatch(text); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil && year >= 100 {
			return (year + 99) / 100, "", true
		}
	}
	return 0, "", false
}

var romanValues = map[byte]int{'I': 1, 'V': 5, 'X': 10}

// parseRoman parses numerals built from I, V and X (centuries run 1-21, so
// L, C, D and M never appear in this context).
func parseRoman(s string) (int, bool) {
	s = strings.ToUpper(s)
	total := 0
	for i := 0; i < len(s); i++ {
		v, known := romanValues[s[i]]
		if !known {
			return 0, false
		}
		if i+1 < len(s) && romanValues[s[i+1]] > v {
			total -= v
		} else {
			total += v
		}
	}
	if total < 1 || total > 21 {
		return 0, false
	}
	return total, true
}
