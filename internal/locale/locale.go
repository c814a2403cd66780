package locale

import "strings"

// Lang identifies an output language for generated text.
type Lang string

const (
	LangEN Lang = "en"
	LangRU Lang = "ru"
	LangKZ Lang = "kz"
)

// Resolve maps a preferred-language value to a supported Lang using a
// 2-letter prefix match. Unrecognized or empty values fall back to English.
func Resolve(pref string) Lang {
	p := strings.ToLower(strings.TrimSpace(pref))
	if len(p) > 2 {
		p = p[:2]
	}
	switch p {
	case "ru":
		return LangRU
	case "kz", "kk": // "kk" is the ISO code, "kz" the app-internal one
		return LangKZ
	case "en":
		return LangEN
	default:
		return LangEN
	}
}

// AllLangs returns the supported languages in display order.
func AllLangs() []Lang {
	return []Lang{LangEN, LangRU, LangKZ}
}
