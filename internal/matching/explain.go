package matching

import (
	"fmt"
	"strings"
)

// compatibilityReasons emits the human-readable positives for a scored
// pairing. Each line has a single trigger condition.
func compatibilityReasons(client ClientAssessment, t TherapistProfile, b Breakdown) []string {
	var reasons []string

	if b.SpecializationMatch > 0.7 {
		reasons = append(reasons, fmt.Sprintf("Specializes in %s treatment", client.PrimaryConcern))
	}
	if b.ExperienceMatch == 1.0 {
		reasons = append(reasons, fmt.Sprintf("%d+ years of experience", t.YearsExperience))
	}
	if b.ApproachMatch > 0.6 {
		reasons = append(reasons, "Uses evidence-based therapeutic approaches for your concerns")
	}
	if b.CostMatch > 0.8 {
		reasons = append(reasons, "Rates fit within your budget range")
	}
	if t.SlidingScaleAvailable {
		reasons = append(reasons, "Offers sliding scale pricing for financial flexibility")
	}
	if t.CrisisInterventionTrained && (client.CrisisHistory || client.SeverityLevel == SeverityCrisis) {
		reasons = append(reasons, "Trained in crisis intervention")
	}
	if anyLanguageOverlap(client.PreferredLanguages, t.Languages) {
		reasons = append(reasons, "Fluent in "+strings.Join(client.PreferredLanguages, ", "))
	}

	return reasons
}

// potentialConcerns emits the warnings a client should weigh before
// booking.
func potentialConcerns(client ClientAssessment, t TherapistProfile, b Breakdown) []string {
	var concerns []string

	if b.SpecializationMatch < 0.3 {
		concerns = append(concerns, "Limited specialization match with your primary concerns")
	}
	if b.ExperienceMatch < 0.5 {
		concerns = append(concerns, "May have limited experience with your specific needs")
	}
	if b.CostMatch < 0.5 {
		concerns = append(concerns, "Rates may exceed your budget range")
	}
	if client.SeverityLevel == SeverityCrisis && !t.CrisisInterventionTrained {
		concerns = append(concerns, "Not specifically trained in crisis intervention")
	}
	if client.TraumaHistory && !t.TraumaInformedCertified {
		concerns = append(concerns, "No specific trauma-informed care certification")
	}
	if b.AvailabilityMatch < 0.3 {
		concerns = append(concerns, "Limited availability may affect scheduling")
	}

	return concerns
}
