package content

import (
	"strings"
	"testing"

	"github.com/qazprep/qazprep/internal/analysis"
	"github.com/qazprep/qazprep/internal/locale"
)

func topic(name string, band analysis.Band, conf float64) analysis.TopicAnalysis {
	return analysis.TopicAnalysis{Topic: name, Classification: band, Confidence: conf}
}

func TestGenerate_WeakHighConfidence(t *testing.T) {
	hw, videos := Generate([]analysis.TopicAnalysis{topic("Fractions", analysis.BandWeak, 0.8)}, DefaultConfig())

	if len(hw) != 3 {
		t.Fatalf("got %d tasks, want 3 (conceptual, guided, applied)", len(hw))
	}
	wantDiff := []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
	wantMinutes := []int{15, 20, 25}
	for i, task := range hw {
		if task.Difficulty != wantDiff[i] {
			t.Errorf("task %d difficulty = %q, want %q", i, task.Difficulty, wantDiff[i])
		}
		if task.EstimatedTimeMinutes != wantMinutes[i] {
			t.Errorf("task %d minutes = %d, want %d", i, task.EstimatedTimeMinutes, wantMinutes[i])
		}
	}
	if len(videos) != 3 {
		t.Errorf("got %d videos, want 3 for confident weak topic", len(videos))
	}
}

func TestGenerate_WeakLowConfidence(t *testing.T) {
	hw, videos := Generate([]analysis.TopicAnalysis{topic("Fractions", analysis.BandWeak, 0.3)}, DefaultConfig())
	if len(hw) != 2 {
		t.Fatalf("got %d tasks, want 2 (no applied task below the confidence cut)", len(hw))
	}
	if hw[0].EstimatedTimeMinutes != 10 || hw[1].EstimatedTimeMinutes != 15 {
		t.Errorf("minutes = %d, %d; want 10, 15", hw[0].EstimatedTimeMinutes, hw[1].EstimatedTimeMinutes)
	}
	if len(videos) != 2 {
		t.Errorf("got %d videos, want 2 for low-confidence weak topic", len(videos))
	}
}

func TestGenerate_Borderline(t *testing.T) {
	hw, videos := Generate([]analysis.TopicAnalysis{topic("Decimals", analysis.BandBorderline, 0.7)}, DefaultConfig())
	if len(hw) != 2 {
		t.Errorf("got %d tasks, want guided + applied", len(hw))
	}
	if len(videos) != 1 {
		t.Errorf("got %d videos, want exactly 1", len(videos))
	}

	hw, videos = Generate([]analysis.TopicAnalysis{topic("Decimals", analysis.BandBorderline, 0.2)}, DefaultConfig())
	if len(hw) != 1 {
		t.Errorf("got %d tasks, want guided only", len(hw))
	}
	if len(videos) != 1 {
		t.Errorf("got %d videos, want exactly 1 regardless of confidence", len(videos))
	}
}

func TestGenerate_Strong(t *testing.T) {
	hw, videos := Generate([]analysis.TopicAnalysis{topic("Geometry", analysis.BandStrong, 0.9)}, DefaultConfig())
	if len(hw) != 1 {
		t.Errorf("got %d tasks, want one quick review", len(hw))
	}
	if len(videos) != 0 {
		t.Errorf("got %d videos, want none by default", len(videos))
	}

	// Low-confidence strong: no evidence to certify mastery, nothing
	// recommended either way.
	hw, _ = Generate([]analysis.TopicAnalysis{topic("Geometry", analysis.BandStrong, 0.4)}, DefaultConfig())
	if len(hw) != 0 {
		t.Errorf("got %d tasks, want none for uncertain strong topic", len(hw))
	}
}

func TestGenerate_GradeLevelExtendsAppliedTasks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GradeLevel = 11
	hw, _ := Generate([]analysis.TopicAnalysis{topic("Fractions", analysis.BandWeak, 0.8)}, cfg)
	if hw[2].EstimatedTimeMinutes != 30 {
		t.Errorf("applied task minutes = %d, want 30 for grade 11", hw[2].EstimatedTimeMinutes)
	}
}

func TestGenerate_TaskIDsUniqueAndFresh(t *testing.T) {
	topics := []analysis.TopicAnalysis{topic("Fractions", analysis.BandWeak, 0.8)}
	first, _ := Generate(topics, DefaultConfig())
	second, _ := Generate(topics, DefaultConfig())

	seen := map[string]bool{}
	for _, task := range append(first, second...) {
		if task.TaskID == "" {
			t.Fatal("empty task ID")
		}
		if seen[task.TaskID] {
			t.Errorf("duplicate task ID %q", task.TaskID)
		}
		seen[task.TaskID] = true
	}
}

func TestGenerate_KazakhOutputHasNoRussian(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lang = locale.LangKZ
	hw, videos := Generate([]analysis.TopicAnalysis{topic("Бөлшектер", analysis.BandWeak, 0.8)}, cfg)

	for _, task := range hw {
		if !strings.Contains(task.Description, "тақырыбы") {
			t.Errorf("description %q does not look Kazakh", task.Description)
		}
		if strings.Contains(task.Title, "Разбор") || strings.Contains(task.Description, "задани") {
			t.Errorf("Russian text leaked into Kazakh output: %q / %q", task.Title, task.Description)
		}
	}
	for _, v := range videos {
		if v.Title != "Бөлшектер — қысқа бейнетүсіндірме" {
			t.Errorf("video title = %q, want Kazakh template", v.Title)
		}
	}
}

func TestGenerate_SourcePriorityByLanguage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lang = locale.LangRU
	_, videos := Generate([]analysis.TopicAnalysis{topic("Дроби", analysis.BandWeak, 0.8)}, cfg)
	if videos[0].SourcePriority[0] != "bilimland" {
		t.Errorf("got first provider %q, want bilimland for ru", videos[0].SourcePriority[0])
	}

	cfg.Lang = locale.LangEN
	_, videos = Generate([]analysis.TopicAnalysis{topic("Fractions", analysis.BandWeak, 0.8)}, cfg)
	if videos[0].SourcePriority[0] != "youtube" {
		t.Errorf("got first provider %q, want youtube for en", videos[0].SourcePriority[0])
	}
}
