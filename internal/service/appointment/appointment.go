package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/govently/govently_backend/internal/repo"
	entappt "github.com/govently/govently_backend/internal/repo/appointment"
	entslot "github.com/govently/govently_backend/internal/repo/timeslot"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	TherapistID *uuid.UUID
	ClientID    *uuid.UUID
	Status      *string
	From        *time.Time
	To          *time.Time
	Page        int
	PerPage     int
}

type BookRequest struct {
	TherapistID  uuid.UUID
	ClientID     uuid.UUID
	TimeSlotID   *uuid.UUID
	AssessmentID *uuid.UUID
	StartTime    time.Time
	EndTime      time.Time
	Type         string // initial_consultation | follow_up | assessment_review | therapy_session
	Notes        *string
}

type CancelRequest struct {
	Reason      *string
	RequestedBy string // "client" | "therapist"
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error)
	GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	Book(ctx context.Context, req BookRequest) (*repo.Appointment, error)
	Confirm(ctx context.Context, therapistID, apptID uuid.UUID) error
	Cancel(ctx context.Context, apptID uuid.UUID, req CancelRequest) error
	Complete(ctx context.Context, therapistID, apptID uuid.UUID) error
	MarkNoShow(ctx context.Context, therapistID, apptID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &appointmentService{db: db}
}

func (s *appointmentService) List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	if req.TherapistID != nil {
		q = q.Where(entappt.TherapistID(*req.TherapistID))
	}
	if req.ClientID != nil {
		q = q.Where(entappt.ClientID(*req.ClientID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.StartTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.StartTimeLT(*req.To))
	}

	q = q.Order(entappt.ByStartTime(sql.OrderDesc()))

	appts, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) Book(ctx context.Context, req BookRequest) (*repo.Appointment, error) {
	// If a time slot ID is provided, lock the slot atomically
	if req.TimeSlotID != nil {
		updated, err := s.db.TimeSlot.Update().
			Where(
				entslot.ID(*req.TimeSlotID),
				entslot.TherapistID(req.TherapistID),
				entslot.StatusEQ(entslot.StatusAvailable),
			).
			SetStatus(entslot.StatusBooked).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("lock slot: %w", err)
		}
		if updated == 0 {
			return nil, ErrSlotNotAvailable
		}
	}

	c := s.db.Appointment.Create().
		SetTherapistID(req.TherapistID).
		SetClientID(req.ClientID).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime)

	if req.Type != "" {
		c = c.SetType(entappt.Type(req.Type))
	}
	if req.TimeSlotID != nil {
		c = c.SetTimeSlotID(*req.TimeSlotID)
	}
	if req.AssessmentID != nil {
		c = c.SetAssessmentID(*req.AssessmentID)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	appt, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) Confirm(ctx context.Context, therapistID, apptID uuid.UUID) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}
	if appt.TherapistID != therapistID {
		return ErrNotFound
	}
	if appt.Status == entappt.StatusCancelled {
		return ErrAlreadyCancelled
	}
	if appt.Status == entappt.StatusCompleted {
		return ErrAlreadyCompleted
	}
	return s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusConfirmed).
		Exec(ctx)
}

func (s *appointmentService) Cancel(ctx context.Context, apptID uuid.UUID, req CancelRequest) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}

	if appt.Status == entappt.StatusCancelled {
		return ErrAlreadyCancelled
	}
	if appt.Status == entappt.StatusCompleted {
		return ErrAlreadyCompleted
	}

	upd := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCancelled).
		SetCancelledAt(time.Now()).
		SetCancelRequestedBy(entappt.CancelRequestedBy(req.RequestedBy))

	if req.Reason != nil {
		upd = upd.SetCancellationReason(*req.Reason)
	}

	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}

	// Restore slot to available if this appointment had a slot reference
	if appt.TimeSlotID != nil {
		_ = s.db.TimeSlot.Update().
			Where(
				entslot.ID(*appt.TimeSlotID),
				entslot.StatusEQ(entslot.StatusBooked),
			).
			SetStatus(entslot.StatusAvailable).
			Exec(ctx)
	}

	return nil
}

func (s *appointmentService) Complete(ctx context.Context, therapistID, apptID uuid.UUID) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}
	if appt.TherapistID != therapistID {
		return ErrNotFound
	}

	if appt.Status == entappt.StatusCompleted {
		return ErrAlreadyCompleted
	}
	if appt.Status == entappt.StatusCancelled {
		return ErrAlreadyCancelled
	}

	return s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
}

func (s *appointmentService) MarkNoShow(ctx context.Context, therapistID, apptID uuid.UUID) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}
	if appt.TherapistID != therapistID {
		return ErrNotFound
	}

	if appt.Status == entappt.StatusCompleted {
		return ErrAlreadyCompleted
	}
	if appt.Status == entappt.StatusCancelled {
		return ErrAlreadyCancelled
	}

	return s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusNoShow).
		Exec(ctx)
}
