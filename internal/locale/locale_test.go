package locale

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		pref string
		want Lang
	}{
		{"en", LangEN},
		{"ru", LangRU},
		{"kz", LangKZ},
		{"kk", LangKZ},
		{"ru-RU", LangRU},
		{"kk-Cyrl-KZ", LangKZ},
		{"EN", LangEN},
		{"  ru  ", LangRU},
		{"fr", LangEN},
		{"", LangEN},
		{"r", LangEN},
	}
	for _, tt := range tests {
		if got := Resolve(tt.pref); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.pref, got, tt.want)
		}
	}
}

func TestStrings_CoversAllLangs(t *testing.T) {
	for _, lang := range AllLangs() {
		tbl := Strings(lang)
		if tbl == nil {
			t.Fatalf("Strings(%q) = nil", lang)
		}
		if tbl.Conceptual.Title == "" || tbl.VideoTitle == "" || tbl.WeeklyPlan == "" {
			t.Errorf("Strings(%q) has empty entries", lang)
		}
	}
}

func TestStrings_TablesDiffer(t *testing.T) {
	en, ru, kz := Strings(LangEN), Strings(LangRU), Strings(LangKZ)
	if en.StudentPraise == ru.StudentPraise || ru.StudentPraise == kz.StudentPraise {
		t.Error("language tables share praise text")
	}
	if Strings(Lang("unknown")) != en {
		t.Error("unknown lang should fall back to the English table")
	}
}
