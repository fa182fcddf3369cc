package email

import (
	"fmt"
	"strings"
	"time"
)

// CrisisAlertData feeds the clinical crisis-alert template, sent to the
// on-call clinical team whenever an assessment indicates suicide risk.
type CrisisAlertData struct {
	Recipients   []string
	UserID       string
	AssessmentID string
	RiskLevel    string
	PHQ9Score    int
	GAD7Score    int
	IndicatedAt  time.Time
	AppName      string
}

// BuildCrisisAlertEmail creates the clinical follow-up alert raised by a
// positive suicidal-ideation response.
func BuildCrisisAlertEmail(data CrisisAlertData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Govently"
	}

	subject := fmt.Sprintf("[%s] Suicide risk indicated — assessment %s requires follow-up", appName, data.AssessmentID)

	textBody := fmt.Sprintf(`Clinical follow-up required.

An assessment has indicated suicide risk (PHQ-9 item 9 answered above zero).

User ID:        %s
Assessment ID:  %s
Risk level:     %s
PHQ-9 score:    %d
GAD-7 score:    %d
Indicated at:   %s

Per protocol, review the assessment and initiate outreach within the
required follow-up window.`,
		data.UserID, data.AssessmentID, data.RiskLevel,
		data.PHQ9Score, data.GAD7Score,
		data.IndicatedAt.Format(time.RFC3339))

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">Clinical follow-up required</h2>
    <p>An assessment has indicated suicide risk (PHQ-9 item 9 answered above zero).</p>
    <table style="border-collapse: collapse; width: 100%%;">
        <tr><td style="padding: 6px 12px; color: #6b7280;">User ID</td><td style="padding: 6px 12px;"><code>%s</code></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Assessment ID</td><td style="padding: 6px 12px;"><code>%s</code></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Risk level</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">PHQ-9 score</td><td style="padding: 6px 12px;">%d</td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">GAD-7 score</td><td style="padding: 6px 12px;">%d</td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Indicated at</td><td style="padding: 6px 12px;">%s</td></tr>
    </table>
    <p style="margin-top: 20px;">Per protocol, review the assessment and initiate outreach within the required follow-up window.</p>
</body>
</html>`,
		data.UserID, data.AssessmentID, data.RiskLevel,
		data.PHQ9Score, data.GAD7Score,
		data.IndicatedAt.Format(time.RFC3339))

	return Message{
		To:       data.Recipients,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
		Headers:  map[string]string{"X-Priority": "1 (Highest)"},
	}
}

// AssessmentSummaryData feeds the post-assessment summary sent to the
// user after completing an assessment pass.
type AssessmentSummaryData struct {
	Email           string
	FirstName       string
	RiskLevel       string
	Recommendations []string
	AppName         string
}

// BuildAssessmentSummaryEmail creates the user-facing completion summary.
func BuildAssessmentSummaryEmail(data AssessmentSummaryData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Govently"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("Your %s assessment results are ready", appName)

	var recText strings.Builder
	var recHTML strings.Builder
	for _, r := range data.Recommendations {
		recText.WriteString("  - " + r + "\n")
		recHTML.WriteString("<li>" + r + "</li>")
	}

	textBody := fmt.Sprintf(`Hi %s,

Thank you for completing your mental wellness assessment.

Based on your responses, here is what we suggest:

%s
You can view your full results and browse matched therapists any time
from your dashboard.

Take care,
The %s Team`,
		firstName, recText.String(), appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Thank you for completing your mental wellness assessment.</p>
    <p>Based on your responses, here is what we suggest:</p>
    <ul>%s</ul>
    <p>You can view your full results and browse matched therapists any time from your dashboard.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Take care,<br>The %s Team</p>
</body>
</html>`,
		firstName, recHTML.String(), appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
