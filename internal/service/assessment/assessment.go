package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/govently/govently_backend/config"
	core "github.com/govently/govently_backend/internal/assessment"
	"github.com/govently/govently_backend/internal/repo"
	entassessment "github.com/govently/govently_backend/internal/repo/mentalassessment"
	entuser "github.com/govently/govently_backend/internal/repo/user"
	"github.com/govently/govently_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SubmitRequest struct {
	AssessmentID string
	Responses    []core.Response
}

// CrisisResources is returned when a response indicates an immediate
// safety concern, so the client can show an interstitial before the
// assessment continues.
type CrisisResources struct {
	Triggered bool   `json:"triggered"`
	Message   string `json:"message,omitempty"`
	Hotline   string `json:"hotline,omitempty"`
	TextLine  string `json:"text_line,omitempty"`
}

// Stats summarizes the user's current assessment for dashboards.
type Stats struct {
	RiskLevel     string         `json:"risk_level"`
	Scores        map[string]int `json:"scores"`
	Strengths     []string       `json:"strengths"`
	CompletedAt   time.Time      `json:"completed_at"`
	CrisisSupport bool           `json:"crisis_support"`
}

type startedEvent struct {
	UserID       string    `json:"user_id"`
	AssessmentID string    `json:"assessment_id"`
	StartedAt    time.Time `json:"started_at"`
}

// SuicideRiskEvent is the payload published on
// govently.assessment.suicide_risk.<user_id>. The crisis worker turns
// it into a clinical alert email.
type SuicideRiskEvent struct {
	UserID       string    `json:"user_id"`
	AssessmentID string    `json:"assessment_id"`
	RiskLevel    string    `json:"risk_level"`
	PHQ9Score    int       `json:"phq9_score"`
	GAD7Score    int       `json:"gad7_score"`
	IndicatedAt  time.Time `json:"indicated_at"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Catalog returns the full question catalog, section by section.
	Catalog() []core.Section

	// Start registers the beginning of an assessment pass and emits the
	// corresponding event.
	Start(ctx context.Context, userID uuid.UUID, assessmentID string) error

	// CheckResponse evaluates a single answer for immediate safety
	// concerns. It never fails the assessment flow.
	CheckResponse(questionID string, value any) CrisisResources

	// Submit scores a completed assessment, persists it as the user's
	// current assessment, and triggers crisis handling when indicated.
	Submit(ctx context.Context, userID uuid.UUID, req SubmitRequest) (core.Result, error)

	GetCurrent(ctx context.Context, userID uuid.UUID) (core.Result, error)
	GetByAssessmentID(ctx context.Context, assessmentID string) (core.Result, error)
	GetStats(ctx context.Context, userID uuid.UUID) (Stats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type assessmentService struct {
	db     *repo.Client
	nc     *nats.Conn
	mailer *email.Client
	cfg    *config.Config
}

func New(db *repo.Client, nc *nats.Conn, mailer *email.Client, cfg *config.Config) Service {
	return &assessmentService{db: db, nc: nc, mailer: mailer, cfg: cfg}
}

func (s *assessmentService) Catalog() []core.Section {
	return core.Sections
}

func (s *assessmentService) Start(ctx context.Context, userID uuid.UUID, assessmentID string) error {
	s.publish("govently.assessment.started."+userID.String(), startedEvent{
		UserID:       userID.String(),
		AssessmentID: assessmentID,
		StartedAt:    time.Now(),
	})
	return nil
}

func (s *assessmentService) CheckResponse(questionID string, value any) CrisisResources {
	if questionID != "phq9_9" {
		return CrisisResources{}
	}

	v := core.Log{}
	v.Append(questionID, value, time.Now())
	if !core.IndicatesSuicideRisk(v.View()) {
		return CrisisResources{}
	}

	return CrisisResources{
		Triggered: true,
		Message:   "If you are having thoughts of harming yourself, please reach out for support right now. You are not alone.",
		Hotline:   s.cfg.Clinical.CrisisHotline,
		TextLine:  s.cfg.Clinical.CrisisTextLine,
	}
}

func (s *assessmentService) Submit(ctx context.Context, userID uuid.UUID, req SubmitRequest) (core.Result, error) {
	if len(req.Responses) == 0 {
		return core.Result{}, ErrEmptyResponses
	}

	var log core.Log
	for _, r := range req.Responses {
		if _, ok := core.FindQuestion(r.QuestionID); !ok {
			return core.Result{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, r.QuestionID)
		}
		log.Append(r.QuestionID, r.Value, r.Timestamp)
	}

	result := core.BuildResult(userID.String(), req.AssessmentID, log, time.Now())

	for _, a := range result.Anomalies {
		slog.Warn("assessment scoring anomaly", "user_id", userID, "detail", a)
	}

	// Crisis handling must fire even when the save below fails.
	if result.SuicideRisk {
		s.publish("govently.assessment.suicide_risk."+userID.String(), SuicideRiskEvent{
			UserID:       userID.String(),
			AssessmentID: req.AssessmentID,
			RiskLevel:    result.RiskLevel,
			PHQ9Score:    result.Scores.PHQ9.Score,
			GAD7Score:    result.Scores.GAD7.Score,
			IndicatedAt:  result.CompletedAt,
		})
	}

	if err := s.persist(ctx, userID, result); err != nil {
		// The computed result stays visible to the caller even when the
		// save fails, so nothing clinically relevant is discarded.
		return result, err
	}

	s.sendSummary(ctx, userID, result)

	return result, nil
}

func (s *assessmentService) GetCurrent(ctx context.Context, userID uuid.UUID) (core.Result, error) {
	row, err := s.db.MentalAssessment.Query().
		Where(entassessment.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return core.Result{}, ErrNotFound
		}
		return core.Result{}, fmt.Errorf("get current assessment: %w", err)
	}
	return resultFromRow(row), nil
}

func (s *assessmentService) GetByAssessmentID(ctx context.Context, assessmentID string) (core.Result, error) {
	row, err := s.db.MentalAssessment.Query().
		Where(entassessment.AssessmentID(assessmentID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return core.Result{}, ErrNotFound
		}
		return core.Result{}, fmt.Errorf("get assessment: %w", err)
	}
	return resultFromRow(row), nil
}

func (s *assessmentService) GetStats(ctx context.Context, userID uuid.UUID) (Stats, error) {
	result, err := s.GetCurrent(ctx, userID)
	if err != nil {
		return Stats{}, err
	}

	var strengths []string
	if result.Scores.PHQ9.Score <= 4 {
		strengths = append(strengths, "Low depression symptoms")
	}
	if result.Scores.GAD7.Score <= 4 {
		strengths = append(strengths, "Well-managed anxiety")
	}
	if result.Scores.WellBeing.Score >= 60 {
		strengths = append(strengths, "Good overall well-being")
	}

	return Stats{
		RiskLevel: result.RiskLevel,
		Scores: map[string]int{
			"phq9":       result.Scores.PHQ9.Score,
			"gad7":       result.Scores.GAD7.Score,
			"stress":     result.Scores.Stress.Score,
			"well_being": result.Scores.WellBeing.Score,
		},
		Strengths:     strengths,
		CompletedAt:   result.CompletedAt,
		CrisisSupport: result.RequiresCrisisSupport(),
	}, nil
}

// ---------------------------------------------------------------------------
// Persistence
// ---------------------------------------------------------------------------

func (s *assessmentService) persist(ctx context.Context, userID uuid.UUID, result core.Result) error {
	responses := responsesJSON(result.Responses)

	existing, err := s.db.MentalAssessment.Query().
		Where(entassessment.UserID(userID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return fmt.Errorf("query assessment: %w", err)
	}

	if existing != nil {
		err = s.db.MentalAssessment.UpdateOne(existing).
			SetAssessmentID(result.AssessmentID).
			SetResponses(responses).
			SetPhq9Score(result.Scores.PHQ9.Score).
			SetGad7Score(result.Scores.GAD7.Score).
			SetPssScore(result.Scores.Stress.Score).
			SetWhoWellbeingScore(result.Scores.WellBeing.Score).
			SetRiskLevel(result.RiskLevel).
			SetSuicideRisk(result.SuicideRisk).
			SetRecommendations(result.Recommendations).
			SetCompletedAt(result.CompletedAt).
			Exec(ctx)
	} else {
		err = s.db.MentalAssessment.Create().
			SetUserID(userID).
			SetAssessmentID(result.AssessmentID).
			SetResponses(responses).
			SetPhq9Score(result.Scores.PHQ9.Score).
			SetGad7Score(result.Scores.GAD7.Score).
			SetPssScore(result.Scores.Stress.Score).
			SetWhoWellbeingScore(result.Scores.WellBeing.Score).
			SetRiskLevel(result.RiskLevel).
			SetSuicideRisk(result.SuicideRisk).
			SetRecommendations(result.Recommendations).
			SetCompletedAt(result.CompletedAt).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	return nil
}

func resultFromRow(row *repo.MentalAssessment) core.Result {
	var log core.Log
	for _, r := range row.Responses {
		id, _ := r["question_id"].(string)
		ts := time.Time{}
		if raw, ok := r["timestamp"].(string); ok {
			ts, _ = time.Parse(time.RFC3339Nano, raw)
		}
		log.Append(id, r["value"], ts)
	}

	result := core.BuildResult(row.UserID.String(), row.AssessmentID, log, row.CompletedAt)
	// Storage holds the authoritative copy written at submit time.
	result.RiskLevel = row.RiskLevel
	result.SuicideRisk = row.SuicideRisk
	result.Recommendations = row.Recommendations
	return result
}

func responsesJSON(log core.Log) []map[string]any {
	out := make([]map[string]any, 0, len(log))
	for _, r := range log {
		out = append(out, map[string]any{
			"question_id": r.QuestionID,
			"value":       r.Value,
			"timestamp":   r.Timestamp.Format(time.RFC3339Nano),
		})
	}
	return out
}

// ---------------------------------------------------------------------------
// Side effects
// ---------------------------------------------------------------------------

func (s *assessmentService) publish(subject string, payload any) {
	if s.nc == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("marshal event", "subject", subject, "error", err)
		return
	}
	if err := s.nc.Publish(subject, data); err != nil {
		slog.Error("publish event", "subject", subject, "error", err)
	}
}

func (s *assessmentService) sendSummary(ctx context.Context, userID uuid.UUID, result core.Result) {
	if s.mailer == nil {
		return
	}

	u, err := s.db.User.Query().Where(entuser.ID(userID)).Only(ctx)
	if err != nil {
		slog.Warn("load user for summary", "user_id", userID, "error", err)
		return
	}

	msg := email.BuildAssessmentSummaryEmail(email.AssessmentSummaryData{
		Email:           u.Email,
		FirstName:       u.FirstName,
		RiskLevel:       result.RiskLevel,
		Recommendations: result.Recommendations,
	})

	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.Warn("send assessment summary", "user_id", userID, "error", err)
	}
}
