package classify

import "testing"

func TestInferCentury_FromYear(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Восстание 1837 года", 19},
		{"События 1900 года", 19}, // exact century boundary rounds up
		{"Реформы 1901 года", 20},
		{"Поход 998 года", 10},
	}
	for _, tt := range tests {
		got, _, ok := InferCentury(tt.text)
		if !ok {
			t.Errorf("InferCentury(%q): no century found", tt.text)
			continue
		}
		if got != tt.want {
			t.Errorf("InferCentury(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestInferCentury_FromRoman(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Казахское ханство образовалось в XV в.", 15},
		{"XIX ғасырдағы реформалар", 19},
		{"Events of the IX century", 9},
	}
	for _, tt := range tests {
		got, _, ok := InferCentury(tt.text)
		if !ok {
			t.Errorf("InferCentury(%q): no century found", tt.text)
			continue
		}
		if got != tt.want {
			t.Errorf("InferCentury(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestInferCentury_RangeYieldsNoteOnly(t *testing.T) {
	tests := []struct {
		text string
		note string
	}{
		{"Культура Казахстана XVIII–XIX вв.", "century range XVIII-XIX"},
		// Suffix-less: two dash-joined numerals are already a range.
		{"XVIII–XIX", "century range XVIII-XIX"},
		{"XV-XVI ғғ. сәулет өнері", "century range XV-XVI"},
	}
	for _, tt := range tests {
		_, note, ok := InferCentury(tt.text)
		if ok {
			t.Errorf("InferCentury(%q): range must not resolve to a single century", tt.text)
		}
		if note != tt.note {
			t.Errorf("InferCentury(%q) note = %q, want %q", tt.text, note, tt.note)
		}
	}
}

func TestInferCentury_NothingFound(t *testing.T) {
	_, note, ok := InferCentury("Назовите столицу ханства")
	if ok || note != "" {
		t.Errorf("got ok=%v note=%q, want no result", ok, note)
	}
}

func TestParseRoman(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"I", 1, true},
		{"IV", 4, true},
		{"IX", 9, true},
		{"XV", 15, true},
		{"XVIII", 18, true},
		{"XXI", 21, true},
		{"XXIX", 0, false}, // out of century range
		{"ABC", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseRoman(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseRoman(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
