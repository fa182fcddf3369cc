package matchmaking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/govently/govently_backend/internal/matching"
	"github.com/govently/govently_backend/internal/repo"
	entmatch "github.com/govently/govently_backend/internal/repo/matchresult"
	svcassessment "github.com/govently/govently_backend/internal/service/assessment"
	"github.com/govently/govently_backend/internal/service/therapist"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// MatchSet partitions scored therapists by the recommendation threshold.
type MatchSet struct {
	Recommended []matching.MatchScore `json:"recommended"`
	Alternative []matching.MatchScore `json:"alternative"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// FindMatches scores every approved therapist against the user's
	// current assessment, persists the results, and partitions them by
	// the recommendation threshold.
	FindMatches(ctx context.Context, userID uuid.UUID) (MatchSet, error)

	// Recommend derives the therapy recommendation profile from the
	// user's current assessment.
	Recommend(ctx context.Context, userID uuid.UUID) (matching.Recommendation, error)

	// History lists the user's previously computed matches, most recent
	// first.
	History(ctx context.Context, userID uuid.UUID, limit int) ([]*repo.MatchResult, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type matchmakingService struct {
	db         *repo.Client
	assessment svcassessment.Service
	therapists therapist.Service
}

func New(db *repo.Client, assessment svcassessment.Service, therapists therapist.Service) Service {
	return &matchmakingService{db: db, assessment: assessment, therapists: therapists}
}

func (s *matchmakingService) FindMatches(ctx context.Context, userID uuid.UUID) (MatchSet, error) {
	client, err := s.clientAssessment(ctx, userID)
	if err != nil {
		return MatchSet{}, err
	}

	roster, err := s.therapists.Roster(ctx)
	if err != nil {
		return MatchSet{}, err
	}
	if len(roster) == 0 {
		return MatchSet{}, ErrEmptyRoster
	}

	scores := matching.FindMatches(client, roster)

	s.persist(ctx, userID, scores)

	set := MatchSet{
		Recommended: []matching.MatchScore{},
		Alternative: []matching.MatchScore{},
	}
	for _, m := range scores {
		if m.TotalScore >= matching.RecommendedThreshold {
			set.Recommended = append(set.Recommended, m)
		} else {
			set.Alternative = append(set.Alternative, m)
		}
	}
	return set, nil
}

func (s *matchmakingService) Recommend(ctx context.Context, userID uuid.UUID) (matching.Recommendation, error) {
	result, err := s.assessment.GetCurrent(ctx, userID)
	if err != nil {
		if errors.Is(err, svcassessment.ErrNotFound) {
			return matching.Recommendation{}, ErrNoAssessment
		}
		return matching.Recommendation{}, err
	}
	return matching.Recommend(result), nil
}

func (s *matchmakingService) History(ctx context.Context, userID uuid.UUID, limit int) ([]*repo.MatchResult, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	rows, err := s.db.MatchResult.Query().
		Where(entmatch.UserID(userID)).
		Order(entmatch.ByCreatedAt(sql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list match history: %w", err)
	}
	return rows, nil
}

func (s *matchmakingService) clientAssessment(ctx context.Context, userID uuid.UUID) (matching.ClientAssessment, error) {
	result, err := s.assessment.GetCurrent(ctx, userID)
	if err != nil {
		if errors.Is(err, svcassessment.ErrNotFound) {
			return matching.ClientAssessment{}, ErrNoAssessment
		}
		return matching.ClientAssessment{}, err
	}
	return matching.ClientAssessmentFromResult(result), nil
}

// persist writes each score as an append-only history row. A failure
// here never fails the match request itself.
func (s *matchmakingService) persist(ctx context.Context, userID uuid.UUID, scores []matching.MatchScore) {
	for _, m := range scores {
		therapistID, err := uuid.Parse(m.TherapistID)
		if err != nil {
			slog.Warn("skip match row with non-uuid therapist id", "therapist_id", m.TherapistID)
			continue
		}
		err = s.db.MatchResult.Create().
			SetUserID(userID).
			SetTherapistID(therapistID).
			SetTotalScore(m.TotalScore).
			SetBreakdown(map[string]float64{
				"specialization_match": m.Breakdown.SpecializationMatch,
				"experience_match":     m.Breakdown.ExperienceMatch,
				"approach_match":       m.Breakdown.ApproachMatch,
				"availability_match":   m.Breakdown.AvailabilityMatch,
				"cost_match":           m.Breakdown.CostMatch,
				"preference_match":     m.Breakdown.PreferenceMatch,
				"crisis_readiness":     m.Breakdown.CrisisReadiness,
			}).
			SetCompatibilityReasons(m.CompatibilityReasons).
			SetPotentialConcerns(m.PotentialConcerns).
			Exec(ctx)
		if err != nil {
			slog.Error("persist match result", "user_id", userID, "therapist_id", m.TherapistID, "error", err)
		}
	}
}
