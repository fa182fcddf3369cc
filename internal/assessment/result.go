package assessment

import (
	"fmt"
	"time"
)

// Scores bundles the four instrument scores of one assessment pass.
type Scores struct {
	PHQ9      InstrumentScore `json:"phq9"`
	GAD7      InstrumentScore `json:"gad7"`
	Stress    InstrumentScore `json:"stress"`
	WellBeing InstrumentScore `json:"well_being"`
}

// Result is one completed assessment pass. Scoring is stateless; the
// one-current-result-per-user policy lives in storage, not here.
type Result struct {
	UserID          string    `json:"user_id"`
	AssessmentID    string    `json:"assessment_id"`
	Responses       Log       `json:"responses"`
	Scores          Scores    `json:"scores"`
	RiskLevel       string    `json:"risk_level"`
	Recommendations []string  `json:"recommendations"`
	SuicideRisk     bool      `json:"suicide_risk"`
	CompletedAt     time.Time `json:"completed_at"`

	// Anomalies records contract violations that were tolerated during
	// scoring, such as an unrecognized tier name. Callers should log them.
	Anomalies []string `json:"-"`
}

// genericRecommendations keeps a result from ever being empty-handed.
var genericRecommendations = []string{
	"Maintain regular self-care and healthy daily routines",
	"Stay connected with supportive friends and family",
	"Consider speaking with a mental health professional",
}

// BuildResult scores all four instruments against the latest answer per
// question and aggregates them into one result.
func BuildResult(userID, assessmentID string, log Log, completedAt time.Time) Result {
	v := log.View()

	scores := Scores{
		PHQ9:      ScorePHQ9(v),
		GAD7:      ScoreGAD7(v),
		Stress:    ScoreStress(v),
		WellBeing: ScoreWellBeing(v),
	}

	overall, anomalies := OverallRiskLevel(scores.PHQ9.Tier, scores.GAD7.Tier)

	return Result{
		UserID:          userID,
		AssessmentID:    assessmentID,
		Responses:       log,
		Scores:          scores,
		RiskLevel:       overall.String(),
		Recommendations: mergeRecommendations(scores, v.Choice("primary_concern")),
		SuicideRisk:     IndicatesSuicideRisk(v),
		CompletedAt:     completedAt,
		Anomalies:       anomalies,
	}
}

// OverallRiskLevel is the more severe of the PHQ-9 and GAD-7 tiers on
// the five-level ordering. GAD-7 defines only four tiers; its "severe"
// ranks at the top of the shared scale. Unrecognized tier names rank as
// minimal and are reported as anomalies rather than escalating risk.
func OverallRiskLevel(phq9Tier, gad7Tier string) (RiskLevel, []string) {
	var anomalies []string

	d, ok := ParseRiskLevel(phq9Tier)
	if !ok {
		anomalies = append(anomalies, fmt.Sprintf("unrecognized PHQ-9 tier %q, ranked as minimal", phq9Tier))
	}
	a, ok := ParseRiskLevel(gad7Tier)
	if !ok {
		anomalies = append(anomalies, fmt.Sprintf("unrecognized GAD-7 tier %q, ranked as minimal", gad7Tier))
	}

	if a > d {
		return a, anomalies
	}
	return d, anomalies
}

// mergeRecommendations flattens the four instrument lists, deduplicated
// in order of first occurrence, appends a therapist pointer for the
// stated primary concern, and falls back to generic guidance if the
// union came out empty.
func mergeRecommendations(s Scores, primaryConcern string) []string {
	seen := make(map[string]struct{})
	var merged []string
	for _, list := range [][]string{
		s.PHQ9.Recommendations,
		s.GAD7.Recommendations,
		s.Stress.Recommendations,
		s.WellBeing.Recommendations,
	} {
		for _, r := range list {
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
			merged = append(merged, r)
		}
	}

	if len(merged) == 0 {
		merged = append(merged, genericRecommendations...)
	}
	if primaryConcern != "" {
		merged = append(merged, "Connect with a therapist who specializes in "+primaryConcern)
	}
	return merged
}

// IndicatesSuicideRisk reports whether the PHQ-9 self-harm item was
// answered above zero. Any positive answer interrupts the assessment
// flow with crisis resources and raises a clinical alert.
func IndicatesSuicideRisk(v View) bool {
	return v.Item("phq9_9") > 0
}

// RequiresCrisisSupport reports whether a completed result warrants
// immediate crisis follow-up.
func (r Result) RequiresCrisisSupport() bool {
	return r.SuicideRisk || r.RiskLevel == "severe"
}
