package assessment

import (
	"testing"
	"time"
)

func viewWith(t *testing.T, answers map[string]int) View {
	t.Helper()
	var log Log
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for id, val := range answers {
		log.Append(id, val, at)
	}
	return log.View()
}

func uniformView(t *testing.T, ids []string, value int) View {
	t.Helper()
	answers := make(map[string]int, len(ids))
	for _, id := range ids {
		answers[id] = value
	}
	return viewWith(t, answers)
}

func sumView(t *testing.T, ids []string, total, perItemMax int) View {
	t.Helper()
	answers := make(map[string]int, len(ids))
	remaining := total
	for _, id := range ids {
		v := min(remaining, perItemMax)
		answers[id] = v
		remaining -= v
	}
	if remaining != 0 {
		t.Fatalf("cannot distribute %d across %d items (max %d)", total, len(ids), perItemMax)
	}
	return viewWith(t, answers)
}

func TestScorePHQ9Cutoffs(t *testing.T) {
	tests := []struct {
		total int
		tier  string
	}{
		{0, "minimal"},
		{4, "minimal"},
		{5, "mild"},
		{9, "mild"},
		{10, "moderate"},
		{14, "moderate"},
		{15, "moderately-severe"},
		{19, "moderately-severe"},
		{20, "severe"},
		{27, "severe"},
	}
	for _, tt := range tests {
		got := ScorePHQ9(sumView(t, phq9Items, tt.total, 3))
		if got.Score != tt.total {
			t.Errorf("total %d: score = %d", tt.total, got.Score)
		}
		if got.Tier != tt.tier {
			t.Errorf("total %d: tier = %q, want %q", tt.total, got.Tier, tt.tier)
		}
		if got.Interpretation == "" || len(got.Recommendations) == 0 {
			t.Errorf("total %d: missing interpretation or recommendations", tt.total)
		}
	}
}

func TestScoreGAD7Cutoffs(t *testing.T) {
	tests := []struct {
		total int
		tier  string
	}{
		{0, "minimal"},
		{4, "minimal"},
		{5, "mild"},
		{9, "mild"},
		{10, "moderate"},
		{14, "moderate"},
		{15, "severe"},
		{21, "severe"},
	}
	for _, tt := range tests {
		got := ScoreGAD7(sumView(t, gad7Items, tt.total, 3))
		if got.Score != tt.total || got.Tier != tt.tier {
			t.Errorf("total %d: got (%d, %q), want (%d, %q)", tt.total, got.Score, got.Tier, tt.total, tt.tier)
		}
	}
}

func TestScoreStressCutoffs(t *testing.T) {
	tests := []struct {
		total int
		tier  string
	}{
		{0, "low"},
		{7, "low"},
		{8, "moderate"},
		{14, "moderate"},
		{15, "high"},
		{20, "high"},
	}
	for _, tt := range tests {
		got := ScoreStress(sumView(t, stressItems, tt.total, 4))
		if got.Score != tt.total || got.Tier != tt.tier {
			t.Errorf("total %d: got (%d, %q), want (%d, %q)", tt.total, got.Score, got.Tier, tt.total, tt.tier)
		}
	}
}

func TestScoreWellBeing(t *testing.T) {
	tests := []struct {
		raw   int
		score int
		tier  string
	}{
		{0, 0, "poor"},
		{6, 24, "poor"},
		{7, 28, "below-average"},
		{12, 48, "below-average"},
		{13, 52, "average"},
		{16, 64, "average"},
		{17, 68, "good"},
		{20, 80, "good"},
		{21, 84, "excellent"},
		{25, 100, "excellent"},
	}
	for _, tt := range tests {
		got := ScoreWellBeing(sumView(t, wellBeingItems, tt.raw, 5))
		if got.Score != tt.score || got.Tier != tt.tier {
			t.Errorf("raw %d: got (%d, %q), want (%d, %q)", tt.raw, got.Score, got.Tier, tt.score, tt.tier)
		}
		if got.Score%4 != 0 {
			t.Errorf("raw %d: score %d is not a multiple of 4", tt.raw, got.Score)
		}
	}
}

func TestScoringRanges(t *testing.T) {
	// All-max answers hit the documented ceilings.
	if got := ScorePHQ9(uniformView(t, phq9Items, 3)).Score; got != 27 {
		t.Errorf("PHQ-9 max = %d, want 27", got)
	}
	if got := ScoreGAD7(uniformView(t, gad7Items, 3)).Score; got != 21 {
		t.Errorf("GAD-7 max = %d, want 21", got)
	}
	if got := ScoreStress(uniformView(t, stressItems, 4)).Score; got != 20 {
		t.Errorf("stress max = %d, want 20", got)
	}
	if got := ScoreWellBeing(uniformView(t, wellBeingItems, 5)).Score; got != 100 {
		t.Errorf("well-being max = %d, want 100", got)
	}
}

func TestScoringMonotonicity(t *testing.T) {
	prev := -1
	for total := 0; total <= 27; total++ {
		got := ScorePHQ9(sumView(t, phq9Items, total, 3))
		lvl, ok := ParseRiskLevel(got.Tier)
		if !ok {
			t.Fatalf("total %d: unparseable tier %q", total, got.Tier)
		}
		if int(lvl) < prev {
			t.Fatalf("tier regressed at total %d", total)
		}
		prev = int(lvl)
	}
}

func TestScoringMissingItemsCountZero(t *testing.T) {
	// Partial data scores as if unanswered items were zero.
	got := ScorePHQ9(viewWith(t, map[string]int{"phq9_1": 3, "phq9_2": 3}))
	if got.Score != 6 || got.Tier != "mild" {
		t.Errorf("partial PHQ-9 = (%d, %q), want (6, mild)", got.Score, got.Tier)
	}
}

func TestScoringDeterminism(t *testing.T) {
	v := sumView(t, phq9Items, 13, 3)
	first := ScorePHQ9(v)
	for i := 0; i < 5; i++ {
		if again := ScorePHQ9(v); again.Score != first.Score || again.Tier != first.Tier {
			t.Fatalf("run %d diverged: (%d, %q)", i, again.Score, again.Tier)
		}
	}
}

func TestReverseScoredOptionsInverted(t *testing.T) {
	for _, id := range []string{"pss_4", "pss_5"} {
		q, ok := FindQuestion(id)
		if !ok {
			t.Fatalf("question %s missing from catalog", id)
		}
		first := q.Options[0].Value.(int)
		last := q.Options[len(q.Options)-1].Value.(int)
		if first != 4 || last != 0 {
			t.Errorf("%s options not reverse-scored: first=%d last=%d", id, first, last)
		}
	}
}

func TestFindQuestionUnknownID(t *testing.T) {
	if _, ok := FindQuestion("phq9_99"); ok {
		t.Error("unexpected hit for unknown question id")
	}
}

func TestCatalogIntegrity(t *testing.T) {
	if got := TotalQuestions(); got != 32 {
		t.Errorf("TotalQuestions = %d, want 32", got)
	}
	seen := make(map[string]bool)
	for _, s := range Sections {
		for _, q := range s.Questions {
			if seen[q.ID] {
				t.Errorf("duplicate question id %q", q.ID)
			}
			seen[q.ID] = true
			if q.Type == TypeScale && len(q.Options) == 0 {
				t.Errorf("scale question %q has no options", q.ID)
			}
		}
	}
	for _, id := range append(append(append(phq9Items, gad7Items...), stressItems...), wellBeingItems...) {
		if !seen[id] {
			t.Errorf("scored item %q missing from catalog", id)
		}
	}
}
