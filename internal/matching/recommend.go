package matching

import (
	"strings"

	"github.com/govently/govently_backend/internal/assessment"
)

// Urgency tiers how quickly a client should be seen.
type Urgency string

const (
	UrgencyImmediate Urgency = "immediate"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyRoutine   Urgency = "routine"
)

// Recommendation is treatment guidance derived from one completed
// assessment alone, independent of any therapist roster.
type Recommendation struct {
	Specializations   []string `json:"specializations"`
	Approaches        []string `json:"approaches"`
	Urgency           Urgency  `json:"urgency"`
	SessionFrequency  string   `json:"session_frequency"`
	EstimatedDuration string   `json:"estimated_duration"`
	SpecificNeeds     []string `json:"specific_needs"`
}

// Recommend builds a recommendation profile from a completed
// assessment result.
func Recommend(result assessment.Result) Recommendation {
	v := result.Responses.View()
	return Recommendation{
		Specializations:   recommendedSpecializations(result, v),
		Approaches:        recommendedApproaches(result, v),
		Urgency:           urgencyFor(result.RiskLevel),
		SessionFrequency:  sessionFrequencyFor(result.RiskLevel),
		EstimatedDuration: estimatedDurationFor(result.RiskLevel),
		SpecificNeeds:     specificNeeds(result, v),
	}
}

func recommendedSpecializations(result assessment.Result, v assessment.View) []string {
	var specs []string

	if result.Scores.PHQ9.Score >= 10 {
		specs = append(specs, "Depression", "Mood Disorders")
	}
	if result.Scores.GAD7.Score >= 10 {
		specs = append(specs, "Anxiety Disorders", "Generalized Anxiety")
	}
	if result.Scores.Stress.Score >= 14 {
		specs = append(specs, "Stress Management", "Burnout Prevention")
	}
	if result.Scores.WellBeing.Score < 50 {
		specs = append(specs, "Life Transitions", "Self-Esteem")
	}

	switch v.Choice("primary_concern") {
	case "relationships":
		specs = append(specs, "Relationship Counseling", "Communication Skills")
	case "trauma":
		specs = append(specs, "Trauma Therapy", "PTSD Treatment")
	case "life_transitions":
		specs = append(specs, "Life Transitions", "Adjustment Disorders")
	}

	return dedup(specs)
}

func recommendedApproaches(result assessment.Result, v assessment.View) []string {
	approaches := []string{"Cognitive Behavioral Therapy (CBT)"}

	if result.Scores.PHQ9.Score >= 15 || result.Scores.GAD7.Score >= 15 {
		approaches = append(approaches, "Dialectical Behavior Therapy (DBT)", "Acceptance and Commitment Therapy (ACT)")
	}
	if result.Scores.Stress.Score >= 14 {
		approaches = append(approaches, "Mindfulness-Based Stress Reduction", "Relaxation Training")
	}

	switch v.Choice("primary_concern") {
	case "trauma":
		approaches = append(approaches, "EMDR", "Trauma-Focused CBT")
	case "relationships":
		approaches = append(approaches, "Emotionally Focused Therapy (EFT)", "Gottman Method")
	}

	return approaches
}

func urgencyFor(riskLevel string) Urgency {
	switch riskLevel {
	case "severe", "moderately-severe":
		return UrgencyImmediate
	case "moderate":
		return UrgencyUrgent
	default:
		return UrgencyRoutine
	}
}

func sessionFrequencyFor(riskLevel string) string {
	switch riskLevel {
	case "severe", "moderately-severe":
		return "weekly"
	case "moderate":
		return "bi-weekly"
	default:
		return "monthly"
	}
}

func estimatedDurationFor(riskLevel string) string {
	switch riskLevel {
	case "severe":
		return "6-12 months"
	case "moderately-severe":
		return "4-8 months"
	case "moderate":
		return "2-6 months"
	default:
		return "1-3 months"
	}
}

func specificNeeds(result assessment.Result, v assessment.View) []string {
	var needs []string

	if v.Item("phq9_9") > 0 {
		needs = append(needs, "Crisis intervention", "Safety planning", "Risk assessment")
	}
	if v.Item("phq9_3") >= 2 {
		needs = append(needs, "Sleep hygiene counseling")
	}
	if v.Item("phq9_7") >= 2 {
		needs = append(needs, "Cognitive enhancement techniques")
	}
	if result.Scores.GAD7.Score >= 10 {
		needs = append(needs, "Anxiety management techniques", "Relaxation training")
	}

	return needs
}

// ClientAssessmentFromResult projects a completed assessment into the
// matching engine's input shape, deriving the coarse severity band from
// the dominant instrument score. The stress score is scaled onto the
// PHQ-9/GAD-7 range before comparison.
func ClientAssessmentFromResult(result assessment.Result) ClientAssessment {
	v := result.Responses.View()

	concern := v.Choice("primary_concern")
	if concern == "" {
		concern = "general"
	}

	maxScore := float64(result.Scores.PHQ9.Score)
	if g := float64(result.Scores.GAD7.Score); g > maxScore {
		maxScore = g
	}
	if s := float64(result.Scores.Stress.Score) * 0.4; s > maxScore {
		maxScore = s
	}

	severity := SeverityMild
	switch {
	case maxScore >= 20:
		severity = SeverityCrisis
	case maxScore >= 15:
		severity = SeveritySevere
	case maxScore >= 10:
		severity = SeverityModerate
	}

	preference := v.Choice("therapy_preference")
	if preference == "" {
		preference = "no_preference"
	}
	experience := v.Choice("therapy_experience")
	if experience == "" {
		experience = "never"
	}

	return ClientAssessment{
		AgeGroup:             v.Choice("age_group"),
		RelationshipStatus:   v.Choice("relationship_status"),
		TherapyExperience:    experience,
		TherapyPreference:    preference,
		PrimaryConcern:       concern,
		SeverityLevel:        severity,
		PreferredSessionType: SessionIndividual,
		PreferredLanguages:   []string{"English"},
		LocationPreference:   "hybrid",
		CrisisHistory:        result.SuicideRisk || severity == SeverityCrisis,
		TraumaHistory:        strings.Contains(concern, "trauma") || strings.Contains(concern, "ptsd"),
	}
}

func dedup(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
