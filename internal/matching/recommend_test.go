package matching

import (
	"slices"
	"testing"
	"time"

	"github.com/govently/govently_backend/internal/assessment"
)

func resultWith(t *testing.T, answers map[string]any) assessment.Result {
	t.Helper()
	var log assessment.Log
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for id, val := range answers {
		log.Append(id, val, at)
	}
	return assessment.BuildResult("user-1", "assess-1", log, at)
}

func TestRecommendSeverePresentation(t *testing.T) {
	answers := map[string]any{"primary_concern": "trauma"}
	for _, id := range []string{"phq9_1", "phq9_2", "phq9_3", "phq9_4", "phq9_5", "phq9_6", "phq9_7"} {
		answers[id] = 3
	}
	for _, id := range []string{"gad7_1", "gad7_2", "gad7_3", "gad7_4"} {
		answers[id] = 3
	}
	answers["phq9_9"] = 1

	rec := Recommend(resultWith(t, answers))

	if rec.Urgency != UrgencyImmediate {
		t.Errorf("Urgency = %q, want immediate", rec.Urgency)
	}
	if rec.SessionFrequency != "weekly" {
		t.Errorf("SessionFrequency = %q, want weekly", rec.SessionFrequency)
	}
	if rec.EstimatedDuration != "6-12 months" {
		t.Errorf("EstimatedDuration = %q, want 6-12 months", rec.EstimatedDuration)
	}
	for _, want := range []string{"Depression", "Anxiety Disorders", "Trauma Therapy", "PTSD Treatment"} {
		if !slices.Contains(rec.Specializations, want) {
			t.Errorf("missing specialization %q in %v", want, rec.Specializations)
		}
	}
	for _, want := range []string{
		"Dialectical Behavior Therapy (DBT)",
		"EMDR",
		"Trauma-Focused CBT",
	} {
		if !slices.Contains(rec.Approaches, want) {
			t.Errorf("missing approach %q in %v", want, rec.Approaches)
		}
	}
	for _, want := range []string{"Crisis intervention", "Safety planning", "Sleep hygiene counseling", "Anxiety management techniques"} {
		if !slices.Contains(rec.SpecificNeeds, want) {
			t.Errorf("missing need %q in %v", want, rec.SpecificNeeds)
		}
	}
}

func TestRecommendRoutinePresentation(t *testing.T) {
	rec := Recommend(resultWith(t, map[string]any{
		"who5_1": 5, "who5_2": 5, "who5_3": 5, "who5_4": 5, "who5_5": 5,
	}))

	if rec.Urgency != UrgencyRoutine {
		t.Errorf("Urgency = %q, want routine", rec.Urgency)
	}
	if rec.SessionFrequency != "monthly" {
		t.Errorf("SessionFrequency = %q, want monthly", rec.SessionFrequency)
	}
	if rec.EstimatedDuration != "1-3 months" {
		t.Errorf("EstimatedDuration = %q, want 1-3 months", rec.EstimatedDuration)
	}
	if !slices.Contains(rec.Approaches, "Cognitive Behavioral Therapy (CBT)") {
		t.Errorf("baseline CBT approach missing from %v", rec.Approaches)
	}
	if len(rec.SpecificNeeds) != 0 {
		t.Errorf("unexpected needs for healthy presentation: %v", rec.SpecificNeeds)
	}
}

func TestRecommendDeduplicatesSpecializations(t *testing.T) {
	// Low well-being plus the life_transitions concern both add
	// "Life Transitions"; it must appear once.
	rec := Recommend(resultWith(t, map[string]any{"primary_concern": "life_transitions"}))

	count := 0
	for _, s := range rec.Specializations {
		if s == "Life Transitions" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Life Transitions appears %d times in %v", count, rec.Specializations)
	}
}

func TestClientAssessmentFromResult(t *testing.T) {
	tests := []struct {
		name         string
		answers      map[string]any
		wantSeverity SeverityLevel
		wantConcern  string
		wantTrauma   bool
		wantCrisis   bool
	}{
		{
			name:         "healthy defaults",
			answers:      map[string]any{},
			wantSeverity: SeverityMild,
			wantConcern:  "general",
		},
		{
			name: "moderate depression",
			answers: map[string]any{
				"primary_concern": "depression",
				"phq9_1":          3, "phq9_2": 3, "phq9_3": 3, "phq9_4": 2,
			},
			wantSeverity: SeverityModerate,
			wantConcern:  "depression",
		},
		{
			name: "crisis from depression score",
			answers: map[string]any{
				"primary_concern": "trauma",
				"phq9_1":          3, "phq9_2": 3, "phq9_3": 3, "phq9_4": 3,
				"phq9_5": 3, "phq9_6": 3, "phq9_7": 2,
			},
			wantSeverity: SeverityCrisis,
			wantConcern:  "trauma",
			wantTrauma:   true,
			wantCrisis:   true,
		},
		{
			name: "stress scaled before comparison",
			answers: map[string]any{
				"pss_1": 4, "pss_2": 4, "pss_3": 4, "pss_4": 4, "pss_5": 4,
			},
			// Max stress of 20 scales to 8, below the moderate bar.
			wantSeverity: SeverityMild,
			wantConcern:  "general",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClientAssessmentFromResult(resultWith(t, tt.answers))
			if got.SeverityLevel != tt.wantSeverity {
				t.Errorf("SeverityLevel = %q, want %q", got.SeverityLevel, tt.wantSeverity)
			}
			if got.PrimaryConcern != tt.wantConcern {
				t.Errorf("PrimaryConcern = %q, want %q", got.PrimaryConcern, tt.wantConcern)
			}
			if got.TraumaHistory != tt.wantTrauma {
				t.Errorf("TraumaHistory = %v, want %v", got.TraumaHistory, tt.wantTrauma)
			}
			if got.CrisisHistory != tt.wantCrisis {
				t.Errorf("CrisisHistory = %v, want %v", got.CrisisHistory, tt.wantCrisis)
			}
		})
	}
}
