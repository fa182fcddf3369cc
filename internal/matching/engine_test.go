package matching

import (
	"math"
	"reflect"
	"slices"
	"testing"
)

func sampleTherapist() TherapistProfile {
	return TherapistProfile{
		ID:                   "t-1",
		FullName:             "Dr. Jordan Avery",
		Gender:               "female",
		LicenseType:          "LCSW",
		YearsExperience:      8,
		YearsPrivatePractice: 6,
		Specializations:      []string{"Anxiety Disorders", "Panic Disorder", "OCD", "Depression"},
		TherapyApproaches:    []string{"Cognitive Behavioral Therapy (CBT)", "Mindfulness-Based Therapy"},
		Languages:            []string{"English", "Spanish"},
		AvailabilitySlots:    []AvailabilitySlot{{Day: "monday", StartTime: "09:00", EndTime: "17:00"}},
		SessionDurations:     []int{45, 60},
		HourlyRates:          HourlyRates{Individual: 80, Couples: 120},
		InsuranceAccepted:    []string{"Aetna", "Cigna"},
		ServicesOffered:      []string{"online"},
	}
}

func anxiousClient() ClientAssessment {
	return ClientAssessment{
		TherapyPreference:    "female",
		PrimaryConcern:       "anxiety",
		SeverityLevel:        SeverityModerate,
		PreferredSessionType: SessionIndividual,
		InsuranceProvider:    "Aetna",
		BudgetRange:          &BudgetRange{Min: 50, Max: 100},
		PreferredLanguages:   []string{"English"},
		LocationPreference:   "online",
	}
}

func TestScoreWeightConservation(t *testing.T) {
	m := Score(anxiousClient(), sampleTherapist())

	b := m.Breakdown
	for name, v := range map[string]float64{
		"specialization_match": b.SpecializationMatch,
		"experience_match":     b.ExperienceMatch,
		"approach_match":       b.ApproachMatch,
		"availability_match":   b.AvailabilityMatch,
		"cost_match":           b.CostMatch,
		"preference_match":     b.PreferenceMatch,
		"crisis_readiness":     b.CrisisReadiness,
	} {
		if v < 0 || v > 1 {
			t.Errorf("%s = %v out of [0,1]", name, v)
		}
	}

	weighted := b.SpecializationMatch*0.25 + b.ExperienceMatch*0.15 +
		b.ApproachMatch*0.20 + b.AvailabilityMatch*0.15 +
		b.CostMatch*0.10 + b.PreferenceMatch*0.10 + b.CrisisReadiness*0.05
	if math.Abs(m.TotalScore-math.Round(weighted*100)/100) > 1e-6 {
		t.Errorf("TotalScore %v diverges from weighted sum %v", m.TotalScore, weighted)
	}
}

func TestFindMatchesFloorAndOrder(t *testing.T) {
	strong := sampleTherapist()

	weak := TherapistProfile{
		ID:              "t-weak",
		Gender:          "male",
		YearsExperience: 0,
		HourlyRates:     HourlyRates{Individual: 400},
	}

	middling := sampleTherapist()
	middling.ID = "t-2"
	middling.Specializations = []string{"Grief and Loss"}
	middling.TherapyApproaches = nil

	matches := FindMatches(anxiousClient(), []TherapistProfile{weak, middling, strong})

	for _, m := range matches {
		if m.TherapistID == "t-weak" {
			t.Fatalf("below-floor therapist included with score %v", m.TotalScore)
		}
		if m.TotalScore < 0.30 {
			t.Errorf("match %s below floor: %v", m.TherapistID, m.TotalScore)
		}
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].TotalScore > matches[i-1].TotalScore {
			t.Errorf("matches not sorted descending at %d", i)
		}
	}
	if len(matches) == 0 || matches[0].TherapistID != "t-1" {
		t.Errorf("expected strong therapist first, got %+v", matches)
	}
}

func TestFindMatchesTiesKeepRosterOrder(t *testing.T) {
	a := sampleTherapist()
	a.ID = "t-a"
	b := sampleTherapist()
	b.ID = "t-b"

	matches := FindMatches(anxiousClient(), []TherapistProfile{a, b})
	if len(matches) != 2 || matches[0].TherapistID != "t-a" || matches[1].TherapistID != "t-b" {
		t.Errorf("tied therapists reordered: %+v", matches)
	}
}

func TestFindMatchesIdempotent(t *testing.T) {
	client := anxiousClient()
	roster := []TherapistProfile{sampleTherapist()}

	first := FindMatches(client, roster)
	second := FindMatches(client, roster)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different matches")
	}
}

func TestCostMatch(t *testing.T) {
	client := anxiousClient()

	tests := []struct {
		name    string
		rate    float64
		sliding bool
		want    float64
		decay   bool
	}{
		{"within budget", 80, false, 1.0, false},
		{"over budget with sliding scale", 150, true, 0.7, false},
		{"under budget", 30, false, 0.8, false},
		{"over budget decaying", 150, false, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := sampleTherapist()
			th.HourlyRates.Individual = tt.rate
			th.SlidingScaleAvailable = tt.sliding

			got := costMatch(client, th)
			if tt.decay {
				if got <= 0 || got >= 0.7 {
					t.Errorf("costMatch = %v, want strictly between 0 and 0.7", got)
				}
				return
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("costMatch = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("no budget is neutral", func(t *testing.T) {
		client := anxiousClient()
		client.BudgetRange = nil
		if got := costMatch(client, sampleTherapist()); got != 0.5 {
			t.Errorf("costMatch = %v, want 0.5", got)
		}
	})

	t.Run("no rate for session type is neutral", func(t *testing.T) {
		client := anxiousClient()
		client.PreferredSessionType = SessionGroup
		if got := costMatch(client, sampleTherapist()); got != 0.5 {
			t.Errorf("costMatch = %v, want 0.5", got)
		}
	})
}

func TestPreferenceMatch(t *testing.T) {
	t.Run("no stated preferences is neutral", func(t *testing.T) {
		client := ClientAssessment{TherapyPreference: "no_preference"}
		if got := preferenceMatch(client, sampleTherapist()); got != 0.5 {
			t.Errorf("preferenceMatch = %v, want 0.5", got)
		}
	})

	t.Run("all preferences satisfied caps at one", func(t *testing.T) {
		if got := preferenceMatch(anxiousClient(), sampleTherapist()); got != 1.0 {
			t.Errorf("preferenceMatch = %v, want 1.0", got)
		}
	})

	t.Run("partial satisfaction", func(t *testing.T) {
		// Gender preference unmet, insurance met: 0.2 over 2×0.2.
		client := ClientAssessment{TherapyPreference: "male", InsuranceProvider: "Aetna"}
		if got := preferenceMatch(client, sampleTherapist()); math.Abs(got-0.5) > 1e-9 {
			t.Errorf("preferenceMatch = %v, want 0.5", got)
		}
	})

	t.Run("unspecified therapist gender satisfies preference", func(t *testing.T) {
		th := sampleTherapist()
		th.Gender = "not_specified"
		th.Languages = nil
		client := ClientAssessment{TherapyPreference: "male", InsuranceProvider: "None Accepted"}
		// Gender credit only: 0.4 over 2×0.2.
		if got := preferenceMatch(client, th); got != 1.0 {
			t.Errorf("preferenceMatch = %v, want 1.0", got)
		}
	})
}

func TestExperienceMatchComplexityTiers(t *testing.T) {
	tests := []struct {
		name     string
		client   ClientAssessment
		years    int
		want     float64
	}{
		{"low complexity met", ClientAssessment{SeverityLevel: SeverityMild}, 1, 1.0},
		{"moderate complexity partial", ClientAssessment{SeverityLevel: SeveritySevere}, 2, 2.0 / 3.0},
		{
			"high complexity partial",
			ClientAssessment{SeverityLevel: SeverityCrisis, TraumaHistory: true, CrisisHistory: true},
			5,
			5.0 / 7.0,
		},
		{
			"past unhelpful therapy raises bar",
			ClientAssessment{SeverityLevel: SeverityMild, TherapyExperience: "past_unhelpful", TraumaHistory: true},
			3,
			1.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := sampleTherapist()
			th.YearsExperience = tt.years
			if got := experienceMatch(tt.client, th); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("experienceMatch = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpecializationMatchSubstringBothDirections(t *testing.T) {
	th := sampleTherapist()
	th.Specializations = []string{"anxiety disorders and panic", "Sports Psychology"}

	client := anxiousClient()
	got := specializationMatch(client, th)
	// One of three synonyms matched.
	if math.Abs(got-1.0/3.0) > 1e-9 {
		t.Errorf("specializationMatch = %v, want 1/3", got)
	}

	t.Run("unmapped concern falls back to itself", func(t *testing.T) {
		client := anxiousClient()
		client.PrimaryConcern = "burnout"
		th := sampleTherapist()
		th.Specializations = []string{"Burnout Prevention"}
		if got := specializationMatch(client, th); got != 1.0 {
			t.Errorf("specializationMatch = %v, want 1.0", got)
		}
	})
}

func TestCrisisReadiness(t *testing.T) {
	calm := ClientAssessment{SeverityLevel: SeverityMild}
	if got := crisisReadiness(calm, sampleTherapist()); got != 0.5 {
		t.Errorf("non-crisis client = %v, want neutral 0.5", got)
	}

	inCrisis := ClientAssessment{SeverityLevel: SeverityCrisis}
	ready := sampleTherapist()
	ready.CrisisInterventionTrained = true
	ready.EmergencyAvailability = true
	if got := crisisReadiness(inCrisis, ready); got != 1.0 {
		t.Errorf("fully ready therapist = %v, want capped 1.0", got)
	}

	unready := sampleTherapist()
	unready.YearsExperience = 2
	if got := crisisReadiness(inCrisis, unready); got != 0 {
		t.Errorf("unready therapist = %v, want 0", got)
	}
}

// A trauma client in crisis matched against a therapist with no crisis
// or trauma credentials must see both gaps called out.
func TestScoreTraumaCrisisGaps(t *testing.T) {
	client := ClientAssessment{
		PrimaryConcern: "trauma",
		SeverityLevel:  SeverityCrisis,
		TraumaHistory:  true,
	}
	th := sampleTherapist()
	th.CrisisInterventionTrained = false
	th.TraumaInformedCertified = false

	m := Score(client, th)

	if !slices.Contains(m.PotentialConcerns, "Not specifically trained in crisis intervention") {
		t.Errorf("missing crisis training gap in %v", m.PotentialConcerns)
	}
	if !slices.Contains(m.PotentialConcerns, "No specific trauma-informed care certification") {
		t.Errorf("missing trauma certification gap in %v", m.PotentialConcerns)
	}
	if m.Breakdown.CrisisReadiness > 0.5 {
		t.Errorf("crisis_readiness = %v, must not exceed neutral", m.Breakdown.CrisisReadiness)
	}
}

func TestCompatibilityReasons(t *testing.T) {
	m := Score(anxiousClient(), sampleTherapist())

	for _, want := range []string{
		"Specializes in anxiety treatment",
		"8+ years of experience",
		"Rates fit within your budget range",
		"Fluent in English",
	} {
		if !slices.Contains(m.CompatibilityReasons, want) {
			t.Errorf("missing reason %q in %v", want, m.CompatibilityReasons)
		}
	}
}
