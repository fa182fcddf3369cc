// Package matching scores therapists against a client's assessment
// profile using a weighted combination of seven compatibility factors,
// and derives treatment recommendations from completed assessments.
//
// Both engines are pure: no I/O, no clocks, no shared state. The same
// inputs always produce the same outputs, so callers may invoke them
// concurrently and persist or discard results as they see fit.
package matching

// SeverityLevel is the client-facing severity band used by matching.
// It is coarser than the clinical risk tiers.
type SeverityLevel string

const (
	SeverityMild     SeverityLevel = "mild"
	SeverityModerate SeverityLevel = "moderate"
	SeveritySevere   SeverityLevel = "severe"
	SeverityCrisis   SeverityLevel = "crisis"
)

// SessionType distinguishes rate cards and care formats.
type SessionType string

const (
	SessionIndividual SessionType = "individual"
	SessionCouples    SessionType = "couples"
	SessionFamily     SessionType = "family"
	SessionGroup      SessionType = "group"
)

// BudgetRange is the client's acceptable per-session cost band.
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ClientAssessment is the matching-relevant projection of a client's
// intake and clinical assessment. Optional fields use zero values; every
// factor rule defines a neutral fallback for absent data.
type ClientAssessment struct {
	AgeGroup             string        `json:"age_group"`
	RelationshipStatus   string        `json:"relationship_status"`
	TherapyExperience    string        `json:"therapy_experience"`
	TherapyPreference    string        `json:"therapy_preference"` // therapist gender preference
	PrimaryConcern       string        `json:"primary_concern"`
	SeverityLevel        SeverityLevel `json:"severity_level"`
	PreferredSessionType SessionType   `json:"preferred_session_type"`
	InsuranceProvider    string        `json:"insurance_provider,omitempty"`
	BudgetRange          *BudgetRange  `json:"budget_range,omitempty"`
	PreferredLanguages   []string      `json:"preferred_languages"`
	PreferredSchedule    []string      `json:"preferred_schedule"`
	LocationPreference   string        `json:"location_preference"`
	CrisisHistory        bool          `json:"crisis_history"`
	TraumaHistory        bool          `json:"trauma_history"`
}

// AvailabilitySlot is a recurring weekly opening in a therapist's
// calendar.
type AvailabilitySlot struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// HourlyRates holds per-session-type pricing. A zero rate means the
// therapist does not offer that format.
type HourlyRates struct {
	Individual float64 `json:"individual"`
	Couples    float64 `json:"couples"`
	Family     float64 `json:"family"`
	Group      float64 `json:"group"`
}

// For reports the rate for a session type, defaulting to individual.
func (r HourlyRates) For(t SessionType) float64 {
	switch t {
	case SessionCouples:
		return r.Couples
	case SessionFamily:
		return r.Family
	case SessionGroup:
		return r.Group
	default:
		return r.Individual
	}
}

// TherapistProfile is a candidate therapist as exposed to the matcher.
type TherapistProfile struct {
	ID                        string             `json:"id"`
	FullName                  string             `json:"full_name"`
	Gender                    string             `json:"gender"` // male, female, non_binary, not_specified
	LicenseType               string             `json:"license_type"`
	YearsExperience           int                `json:"years_experience"`
	YearsPrivatePractice      int                `json:"years_private_practice"`
	Specializations           []string           `json:"specializations"`
	TherapyApproaches         []string           `json:"therapy_approaches"`
	ClientDemographics        []string           `json:"client_demographics"`
	SeverityLevels            []string           `json:"severity_levels"`
	CrisisInterventionTrained bool               `json:"crisis_intervention_trained"`
	TraumaInformedCertified   bool               `json:"trauma_informed_certified"`
	Languages                 []string           `json:"languages"`
	AvailabilitySlots         []AvailabilitySlot `json:"availability_slots"`
	SessionDurations          []int              `json:"session_durations"`
	HourlyRates               HourlyRates        `json:"hourly_rates"`
	SlidingScaleAvailable     bool               `json:"sliding_scale_available"`
	InsuranceAccepted         []string           `json:"insurance_accepted"`
	Location                  string             `json:"location"`
	ServicesOffered           []string           `json:"services_offered"` // in_person, online
	EmergencyAvailability     bool               `json:"emergency_availability"`
}

// Breakdown carries the seven factor sub-scores, each in [0,1].
type Breakdown struct {
	SpecializationMatch float64 `json:"specialization_match"`
	ExperienceMatch     float64 `json:"experience_match"`
	ApproachMatch       float64 `json:"approach_match"`
	AvailabilityMatch   float64 `json:"availability_match"`
	CostMatch           float64 `json:"cost_match"`
	PreferenceMatch     float64 `json:"preference_match"`
	CrisisReadiness     float64 `json:"crisis_readiness"`
}

// MatchScore is one scored (client, therapist) pairing with its
// explainability annotations.
type MatchScore struct {
	TherapistID          string    `json:"therapist_id"`
	TotalScore           float64   `json:"total_score"`
	Breakdown            Breakdown `json:"breakdown"`
	CompatibilityReasons []string  `json:"compatibility_reasons"`
	PotentialConcerns    []string  `json:"potential_concerns"`
}
