package matching

import (
	"math"
	"sort"
	"strings"
)

// Factor weights reflect clinical importance and sum to exactly 1.0.
const (
	weightSpecialization = 0.25
	weightExperience     = 0.15
	weightApproach       = 0.20
	weightAvailability   = 0.15
	weightCost           = 0.10
	weightPreference     = 0.10
	weightCrisis         = 0.05
)

// minimumTotalScore is the inclusion floor; below this a match is not
// clinically meaningful and is dropped from results entirely.
const minimumTotalScore = 0.30

// RecommendedThreshold partitions surviving matches into "recommended"
// and "other" buckets in listings. Distinct from the inclusion floor.
const RecommendedThreshold = 0.70

// concernSpecializations maps a client's primary concern to the
// clinical specializations that serve it.
var concernSpecializations = map[string][]string{
	"anxiety":       {"Anxiety Disorders", "OCD", "Panic Disorder"},
	"depression":    {"Depression", "Mood Disorders", "Bipolar Disorder"},
	"trauma":        {"Trauma and PTSD", "EMDR", "Complex Trauma"},
	"relationships": {"Relationship Issues", "Couples Counseling", "Communication Skills"},
	"family":        {"Family Therapy", "Family Systems", "Parenting Support"},
	"grief":         {"Grief and Loss", "Bereavement Counseling"},
	"stress":        {"Stress Management", "Burnout Prevention", "Life Transitions"},
	"self_esteem":   {"Self-Esteem Building", "Identity Issues", "Personal Growth"},
}

// concernApproaches maps a primary concern to evidence-based treatment
// modalities for it.
var concernApproaches = map[string][]string{
	"anxiety":       {"Cognitive Behavioral Therapy (CBT)", "Acceptance and Commitment Therapy (ACT)", "Mindfulness-Based Therapy"},
	"depression":    {"Cognitive Behavioral Therapy (CBT)", "Psychodynamic Therapy", "Interpersonal Therapy"},
	"trauma":        {"Eye Movement Desensitization and Reprocessing (EMDR)", "Trauma-Focused CBT", "Somatic Therapies"},
	"relationships": {"Emotionally Focused Therapy (EFT)", "Gottman Method", "Solution-Focused Brief Therapy (SFBT)"},
	"addiction":     {"Motivational Interviewing", "Dialectical Behavior Therapy (DBT)", "Cognitive Behavioral Therapy (CBT)"},
}

// FindMatches scores every therapist in the roster against the client,
// drops totals below the inclusion floor and returns the rest sorted
// descending by total score. Ties keep roster order.
func FindMatches(client ClientAssessment, roster []TherapistProfile) []MatchScore {
	matches := make([]MatchScore, 0, len(roster))
	for _, t := range roster {
		m := Score(client, t)
		if m.TotalScore >= minimumTotalScore {
			matches = append(matches, m)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].TotalScore > matches[j].TotalScore
	})
	return matches
}

// Score computes one client/therapist pairing: the seven factor
// sub-scores, their weighted total rounded to two decimal places, and
// the explainability annotations.
func Score(client ClientAssessment, t TherapistProfile) MatchScore {
	b := Breakdown{
		SpecializationMatch: specializationMatch(client, t),
		ExperienceMatch:     experienceMatch(client, t),
		ApproachMatch:       approachMatch(client, t),
		AvailabilityMatch:   availabilityMatch(t),
		CostMatch:           costMatch(client, t),
		PreferenceMatch:     preferenceMatch(client, t),
		CrisisReadiness:     crisisReadiness(client, t),
	}

	total := b.SpecializationMatch*weightSpecialization +
		b.ExperienceMatch*weightExperience +
		b.ApproachMatch*weightApproach +
		b.AvailabilityMatch*weightAvailability +
		b.CostMatch*weightCost +
		b.PreferenceMatch*weightPreference +
		b.CrisisReadiness*weightCrisis

	return MatchScore{
		TherapistID:          t.ID,
		TotalScore:           math.Round(total*100) / 100,
		Breakdown:            b,
		CompatibilityReasons: compatibilityReasons(client, t, b),
		PotentialConcerns:    potentialConcerns(client, t, b),
	}
}

// specializationMatch scores the overlap between the specializations
// relevant to the client's primary concern and the therapist's, via
// case-insensitive substring containment in either direction.
func specializationMatch(client ClientAssessment, t TherapistProfile) float64 {
	relevant, ok := concernSpecializations[client.PrimaryConcern]
	if !ok {
		relevant = []string{client.PrimaryConcern}
	}

	matched := 0
	for _, spec := range t.Specializations {
		for _, rel := range relevant {
			if containsFold(spec, rel) || containsFold(rel, spec) {
				matched++
				break
			}
		}
	}

	ratio := float64(matched) / float64(max(len(relevant), 1))
	return math.Min(ratio, 1.0)
}

// experienceMatch compares the therapist's years of experience against
// the threshold demanded by the client's case complexity.
func experienceMatch(client ClientAssessment, t TherapistProfile) float64 {
	required := requiredExperience(clientComplexity(client))
	if t.YearsExperience >= required {
		return 1.0
	}
	return float64(t.YearsExperience) / float64(required)
}

func approachMatch(client ClientAssessment, t TherapistProfile) float64 {
	recommended := concernApproaches[client.PrimaryConcern]
	if len(recommended) == 0 {
		return 0.5
	}

	matched := 0
	for _, approach := range t.TherapyApproaches {
		for _, rec := range recommended {
			if containsFold(approach, rec) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(recommended))
}

// availabilityMatch is a coarse check: any open slots at all, and
// whether the standard 60-minute session is offered.
func availabilityMatch(t TherapistProfile) float64 {
	score := 0.0
	if len(t.AvailabilitySlots) > 0 {
		score += 0.6
	}
	for _, d := range t.SessionDurations {
		if d == 60 {
			score += 0.4
			break
		}
	}
	return math.Min(score, 1.0)
}

func costMatch(client ClientAssessment, t TherapistProfile) float64 {
	if client.BudgetRange == nil {
		return 0.5
	}
	rate := t.HourlyRates.For(client.PreferredSessionType)
	if rate == 0 {
		return 0.5
	}

	switch {
	case rate >= client.BudgetRange.Min && rate <= client.BudgetRange.Max:
		return 1.0
	case t.SlidingScaleAvailable && rate > client.BudgetRange.Max:
		return 0.7
	case rate < client.BudgetRange.Min:
		// Cheaper than expected.
		return 0.8
	default:
		overage := (rate - client.BudgetRange.Max) / client.BudgetRange.Max
		return math.Max(0, 1-overage)
	}
}

// preferenceMatch accumulates per-preference credit and normalizes over
// the preferences the client actually specified. Zero stated
// preferences yields the neutral 0.5.
func preferenceMatch(client ClientAssessment, t TherapistProfile) float64 {
	score := 0.0
	stated := 0

	if client.TherapyPreference != "" && client.TherapyPreference != "no_preference" {
		stated++
		if t.Gender == client.TherapyPreference || t.Gender == "not_specified" {
			score += 0.4
		}
	}

	if len(client.PreferredLanguages) > 0 {
		stated++
		if anyLanguageOverlap(client.PreferredLanguages, t.Languages) {
			score += 0.4
		}
	}

	if client.InsuranceProvider != "" {
		stated++
		for _, ins := range t.InsuranceAccepted {
			if ins == client.InsuranceProvider {
				score += 0.2
				break
			}
		}
	}

	if stated == 0 {
		return 0.5
	}
	// The raw normalization can exceed 1 when high-credit preferences
	// are satisfied; clamp so the factor stays in [0,1].
	return math.Min(score/(float64(stated)*0.2), 1.0)
}

func crisisReadiness(client ClientAssessment, t TherapistProfile) float64 {
	if client.SeverityLevel != SeverityCrisis && !client.CrisisHistory {
		return 0.5
	}

	score := 0.0
	if t.CrisisInterventionTrained {
		score += 0.5
	}
	if t.EmergencyAvailability {
		score += 0.3
	}
	if t.YearsExperience >= 5 {
		score += 0.2
	}
	return math.Min(score, 1.0)
}

type complexity int

const (
	complexityLow complexity = iota
	complexityModerate
	complexityHigh
)

// clientComplexity grades the case from severity, history and prior
// therapy outcome on a simple point system.
func clientComplexity(client ClientAssessment) complexity {
	points := 0
	switch client.SeverityLevel {
	case SeveritySevere, SeverityCrisis:
		points += 2
	case SeverityModerate:
		points++
	}
	if client.TraumaHistory {
		points++
	}
	if client.CrisisHistory {
		points++
	}
	if client.TherapyExperience == "past_unhelpful" {
		points++
	}

	switch {
	case points >= 4:
		return complexityHigh
	case points >= 2:
		return complexityModerate
	default:
		return complexityLow
	}
}

func requiredExperience(c complexity) int {
	switch c {
	case complexityHigh:
		return 7
	case complexityModerate:
		return 3
	default:
		return 1
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyLanguageOverlap(preferred, spoken []string) bool {
	for _, p := range preferred {
		for _, s := range spoken {
			if p == s {
				return true
			}
		}
	}
	return false
}
