package assessment

import (
	"slices"
	"testing"
	"time"
)

func TestOverallRiskLevel(t *testing.T) {
	tests := []struct {
		name  string
		phq9  string
		gad7  string
		want  RiskLevel
		anoms int
	}{
		{"both minimal", "minimal", "minimal", RiskMinimal, 0},
		{"depression higher", "moderately-severe", "mild", RiskModeratelySevere, 0},
		{"anxiety higher", "mild", "severe", RiskSevere, 0},
		{"equal", "moderate", "moderate", RiskModerate, 0},
		{"unknown phq9 tier", "bogus", "mild", RiskMild, 1},
		{"unknown gad7 tier", "severe", "high", RiskSevere, 1},
		{"both unknown", "", "", RiskMinimal, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, anoms := OverallRiskLevel(tt.phq9, tt.gad7)
			if got != tt.want {
				t.Errorf("OverallRiskLevel(%q, %q) = %v, want %v", tt.phq9, tt.gad7, got, tt.want)
			}
			if len(anoms) != tt.anoms {
				t.Errorf("anomalies = %v, want %d", anoms, tt.anoms)
			}
		})
	}
}

func TestParseRiskLevelRoundTrip(t *testing.T) {
	for lvl := RiskMinimal; lvl <= RiskSevere; lvl++ {
		parsed, ok := ParseRiskLevel(lvl.String())
		if !ok || parsed != lvl {
			t.Errorf("round trip failed for %v", lvl)
		}
	}
}

// Severe depression answers plus high anxiety must surface as severe
// overall risk with crisis follow-up.
func TestBuildResultSevereScenario(t *testing.T) {
	var log Log
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range phq9Items {
		log.Append(id, 3, at)
	}
	for _, id := range gad7Items {
		log.Append(id, 2, at)
	}
	log.Append("primary_concern", "depression", at)

	r := BuildResult("user-1", "assess-1", log, at)

	if r.Scores.PHQ9.Score != 27 || r.Scores.PHQ9.Tier != "severe" {
		t.Errorf("PHQ-9 = (%d, %q)", r.Scores.PHQ9.Score, r.Scores.PHQ9.Tier)
	}
	if r.Scores.GAD7.Score != 14 || r.Scores.GAD7.Tier != "moderate" {
		t.Errorf("GAD-7 = (%d, %q)", r.Scores.GAD7.Score, r.Scores.GAD7.Tier)
	}
	if r.RiskLevel != "severe" {
		t.Errorf("RiskLevel = %q, want severe", r.RiskLevel)
	}
	if !r.SuicideRisk || !r.RequiresCrisisSupport() {
		t.Error("expected suicide risk and crisis support flags")
	}
	if !slices.Contains(r.Recommendations, "Connect with a therapist who specializes in depression") {
		t.Errorf("missing concern recommendation in %v", r.Recommendations)
	}
	if len(r.Anomalies) != 0 {
		t.Errorf("unexpected anomalies: %v", r.Anomalies)
	}
}

// All-zero clinical answers is a valid pass and must come out minimal.
func TestBuildResultAllZeros(t *testing.T) {
	var log Log
	at := time.Now()
	for _, id := range append(append(append(phq9Items, gad7Items...), stressItems...), wellBeingItems...) {
		log.Append(id, 0, at)
	}

	r := BuildResult("user-2", "assess-2", log, at)

	if r.RiskLevel != "minimal" {
		t.Errorf("RiskLevel = %q, want minimal", r.RiskLevel)
	}
	if r.SuicideRisk {
		t.Error("all-zero answers flagged suicide risk")
	}
	if len(r.Recommendations) == 0 {
		t.Error("recommendations must never be empty")
	}
}

func TestBuildResultDeduplicatesRecommendations(t *testing.T) {
	var log Log
	at := time.Now()
	r := BuildResult("user-3", "assess-3", log, at)

	seen := make(map[string]bool)
	for _, rec := range r.Recommendations {
		if seen[rec] {
			t.Errorf("duplicate recommendation %q", rec)
		}
		seen[rec] = true
	}
}

func TestLogLastWriteWins(t *testing.T) {
	var log Log
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	log.Append("phq9_1", 3, at)
	log.Append("phq9_1", 1, at.Add(time.Minute))

	v := log.View()
	if got := v.Item("phq9_1"); got != 1 {
		t.Errorf("Item = %d, want latest answer 1", got)
	}
	if len(log) != 2 {
		t.Errorf("log length = %d, appends must not overwrite", len(log))
	}
}

func TestViewItemValueCoercion(t *testing.T) {
	var log Log
	at := time.Now()
	log.Append("phq9_1", float64(2), at) // JSON decode shape
	log.Append("phq9_2", "3", at)
	log.Append("phq9_3", "not a number", at)

	v := log.View()
	if got := v.Item("phq9_1"); got != 2 {
		t.Errorf("float64 value = %d, want 2", got)
	}
	if got := v.Item("phq9_2"); got != 3 {
		t.Errorf("string digit value = %d, want 3", got)
	}
	if got := v.Item("phq9_3"); got != 0 {
		t.Errorf("garbage value = %d, want 0", got)
	}
	if got := v.Item("phq9_9"); got != 0 {
		t.Errorf("missing value = %d, want 0", got)
	}
}

func TestIndicatesSuicideRisk(t *testing.T) {
	var log Log
	at := time.Now()
	log.Append("phq9_9", 0, at)
	if IndicatesSuicideRisk(log.View()) {
		t.Error("zero self-harm answer flagged")
	}
	log.Append("phq9_9", 1, at.Add(time.Second))
	if !IndicatesSuicideRisk(log.View()) {
		t.Error("positive self-harm answer not flagged")
	}
}
