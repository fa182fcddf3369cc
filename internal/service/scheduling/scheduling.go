package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/govently/govently_backend/internal/repo"
	entslot "github.com/govently/govently_backend/internal/repo/timeslot"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateSlotRequest struct {
	StartTime time.Time
	EndTime   time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Slot management (therapist-facing)
	ListSlots(ctx context.Context, therapistID uuid.UUID, from, to time.Time) ([]*repo.TimeSlot, error)
	CreateSlot(ctx context.Context, therapistID uuid.UUID, req CreateSlotRequest) (*repo.TimeSlot, error)
	DeleteSlot(ctx context.Context, therapistID, slotID uuid.UUID) error

	// Public — no auth required
	ListPublicSlots(ctx context.Context, therapistID uuid.UUID, from, to time.Time) ([]*repo.TimeSlot, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type schedulingService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &schedulingService{db: db}
}

func (s *schedulingService) ListSlots(ctx context.Context, therapistID uuid.UUID, from, to time.Time) ([]*repo.TimeSlot, error) {
	slots, err := s.db.TimeSlot.Query().
		Where(
			entslot.TherapistID(therapistID),
			entslot.StartTimeGTE(from),
			entslot.StartTimeLT(to),
		).
		Order(entslot.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return slots, nil
}

func (s *schedulingService) CreateSlot(ctx context.Context, therapistID uuid.UUID, req CreateSlotRequest) (*repo.TimeSlot, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	// Overlap check: existing non-cancelled slots for this therapist that overlap
	overlaps, err := s.db.TimeSlot.Query().
		Where(
			entslot.TherapistID(therapistID),
			entslot.StatusNotIn(entslot.StatusCancelled),
			entslot.StartTimeLT(req.EndTime),
			entslot.EndTimeGTE(req.StartTime),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	if overlaps {
		return nil, ErrOverlappingSlot
	}

	slot, err := s.db.TimeSlot.Create().
		SetTherapistID(therapistID).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime).
		SetDurationMin(int(req.EndTime.Sub(req.StartTime) / time.Minute)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}
	return slot, nil
}

func (s *schedulingService) DeleteSlot(ctx context.Context, therapistID, slotID uuid.UUID) error {
	slot, err := s.db.TimeSlot.Query().
		Where(entslot.ID(slotID), entslot.TherapistID(therapistID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrSlotNotFound
		}
		return fmt.Errorf("get slot: %w", err)
	}
	if slot.Status == entslot.StatusBooked {
		return ErrSlotAlreadyBooked
	}
	return s.db.TimeSlot.DeleteOne(slot).Exec(ctx)
}

func (s *schedulingService) ListPublicSlots(ctx context.Context, therapistID uuid.UUID, from, to time.Time) ([]*repo.TimeSlot, error) {
	slots, err := s.db.TimeSlot.Query().
		Where(
			entslot.TherapistID(therapistID),
			entslot.StatusEQ(entslot.StatusAvailable),
			entslot.StartTimeGTE(from),
			entslot.StartTimeLT(to),
		).
		Order(entslot.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list public slots: %w", err)
	}
	return slots, nil
}
