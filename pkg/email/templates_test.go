package email

import (
	"strings"
	"testing"
	"time"
)

func TestBuildCrisisAlertEmail(t *testing.T) {
	indicated := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	msg := BuildCrisisAlertEmail(CrisisAlertData{
		Recipients:   []string{"oncall@example.com", "clinical@example.com"},
		UserID:       "user-123",
		AssessmentID: "assess-456",
		RiskLevel:    "severe",
		PHQ9Score:    22,
		GAD7Score:    15,
		IndicatedAt:  indicated,
	})

	if len(msg.To) != 2 {
		t.Fatalf("expected 2 recipients, got %d", len(msg.To))
	}
	if !strings.HasPrefix(msg.Headers["X-Priority"], "1") {
		t.Errorf("expected highest X-Priority, got %q", msg.Headers["X-Priority"])
	}
	for _, want := range []string{"user-123", "assess-456", "severe", "22", "15"} {
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
	}
	if !strings.Contains(msg.TextBody, indicated.Format(time.RFC3339)) {
		t.Error("text body missing timestamp")
	}
	if msg.HTMLBody == "" {
		t.Error("expected HTML body")
	}
}

func TestBuildAssessmentSummaryEmail(t *testing.T) {
	msg := BuildAssessmentSummaryEmail(AssessmentSummaryData{
		Email:     "client@example.com",
		FirstName: "Jordan",
		RiskLevel: "mild",
		Recommendations: []string{
			"Consider speaking with a mental health professional",
			"Stay connected with supportive friends and family",
		},
	})

	if len(msg.To) != 1 || msg.To[0] != "client@example.com" {
		t.Fatalf("unexpected recipients: %v", msg.To)
	}
	if !strings.Contains(msg.TextBody, "Jordan") {
		t.Error("text body missing first name")
	}
	for _, rec := range []string{
		"Consider speaking with a mental health professional",
		"Stay connected with supportive friends and family",
	} {
		if !strings.Contains(msg.TextBody, rec) {
			t.Errorf("text body missing recommendation %q", rec)
		}
	}
	if !strings.Contains(msg.Subject, "Govently") {
		t.Errorf("subject should carry default app name, got %q", msg.Subject)
	}
}
