package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/govently/govently_backend/internal/service/scheduling"
	"github.com/govently/govently_backend/internal/service/therapist"
)

type ScheduleHandler struct {
	svc        scheduling.Service
	therapists therapist.Service
}

func NewScheduleHandler(svc scheduling.Service, therapists therapist.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, therapists: therapists}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	switch {
	case errors.Is(err, scheduling.ErrSlotNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scheduling.ErrSlotAlreadyBooked):
		return conflict(c, err.Error())
	case errors.Is(err, scheduling.ErrOverlappingSlot):
		return conflict(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidTimeRange):
		return badRequest(c, err.Error())
	case errors.Is(err, therapist.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// ownProfileID resolves the authenticated user's therapist profile.
func (h *ScheduleHandler) ownProfileID(c fiber.Ctx) (uuid.UUID, error) {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return uuid.UUID{}, fiber.ErrUnauthorized
	}
	p, err := h.therapists.GetByUser(c.Context(), userID)
	if err != nil {
		return uuid.UUID{}, err
	}
	return p.ID, nil
}

func timeRangeQuery(c fiber.Ctx) (time.Time, time.Time) {
	var q struct {
		From string `query:"from"`
		To   string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	from := time.Now()
	to := from.AddDate(0, 1, 0)

	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			from = t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			to = t
		}
	}
	return from, to
}

// ---------------------------------------------------------------------------
// Slots
// ---------------------------------------------------------------------------

// GET /schedule/slots
func (h *ScheduleHandler) ListSlots(c fiber.Ctx) error {
	profileID, err := h.ownProfileID(c)
	if err != nil {
		return mapScheduleError(c, err)
	}

	from, to := timeRangeQuery(c)

	slots, err := h.svc.ListSlots(c.Context(), profileID, from, to)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, slots)
}

// POST /schedule/slots
func (h *ScheduleHandler) CreateSlot(c fiber.Ctx) error {
	profileID, err := h.ownProfileID(c)
	if err != nil {
		return mapScheduleError(c, err)
	}

	var body struct {
		StartTime time.Time `json:"start_time"`
		EndTime   time.Time `json:"end_time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	slot, err := h.svc.CreateSlot(c.Context(), profileID, scheduling.CreateSlotRequest{
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, slot)
}

// DELETE /schedule/slots/:id
func (h *ScheduleHandler) DeleteSlot(c fiber.Ctx) error {
	profileID, err := h.ownProfileID(c)
	if err != nil {
		return mapScheduleError(c, err)
	}

	slotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid slot id")
	}

	if err := h.svc.DeleteSlot(c.Context(), profileID, slotID); err != nil {
		return mapScheduleError(c, err)
	}
	return noContent(c)
}

// GET /therapists/:id/slots — public
func (h *ScheduleHandler) ListPublicSlots(c fiber.Ctx) error {
	therapistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	from, to := timeRangeQuery(c)

	slots, err := h.svc.ListPublicSlots(c.Context(), therapistID, from, to)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, slots)
}
