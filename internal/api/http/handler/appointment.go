package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/govently/govently_backend/internal/service/appointment"
	"github.com/govently/govently_backend/internal/service/therapist"
)

type AppointmentHandler struct {
	svc        appointment.Service
	therapists therapist.Service
}

func NewAppointmentHandler(svc appointment.Service, therapists therapist.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, therapists: therapists}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrSlotNotAvailable):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrAlreadyCompleted):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrAlreadyCancelled):
		return conflict(c, err.Error())
	case errors.Is(err, therapist.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Role    string `query:"role"` // "therapist" to list as the therapist
		Status  string `query:"status"`
		From    string `query:"from"`
		To      string `query:"to"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{Page: q.Page, PerPage: q.PerPage}

	if q.Role == "therapist" {
		p, err := h.therapists.GetByUser(c.Context(), userID)
		if err != nil {
			return mapAppointmentError(c, err)
		}
		req.TherapistID = &p.ID
	} else {
		req.ClientID = &userID
	}

	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			req.To = &t
		}
	}

	appts, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appts)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	if _, valid := userIDFromLocals(c); !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		TherapistID  string    `json:"therapist_id"`
		TimeSlotID   string    `json:"time_slot_id"`
		AssessmentID string    `json:"assessment_id"`
		StartTime    time.Time `json:"start_time"`
		EndTime      time.Time `json:"end_time"`
		Type         string    `json:"type"`
		Notes        string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	therapistID, err := uuid.Parse(body.TherapistID)
	if err != nil {
		return badRequest(c, "invalid therapist_id")
	}

	req := appointment.BookRequest{
		TherapistID: therapistID,
		ClientID:    userID,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		Type:        body.Type,
	}
	if body.TimeSlotID != "" {
		id, err := uuid.Parse(body.TimeSlotID)
		if err != nil {
			return badRequest(c, "invalid time_slot_id")
		}
		req.TimeSlotID = &id
	}
	if body.AssessmentID != "" {
		id, err := uuid.Parse(body.AssessmentID)
		if err != nil {
			return badRequest(c, "invalid assessment_id")
		}
		req.AssessmentID = &id
	}
	if body.Notes != "" {
		req.Notes = &body.Notes
	}

	appt, err := h.svc.Book(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, appt)
}

// PATCH /appointments/:id/confirm
func (h *AppointmentHandler) Confirm(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	p, err := h.therapists.GetByUser(c.Context(), userID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	if err := h.svc.Confirm(c.Context(), p.ID, apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	if _, valid := userIDFromLocals(c); !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason      string `json:"reason"`
		RequestedBy string `json:"requested_by"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RequestedBy != "client" && body.RequestedBy != "therapist" {
		return badRequest(c, "requested_by must be client or therapist")
	}

	req := appointment.CancelRequest{RequestedBy: body.RequestedBy}
	if body.Reason != "" {
		req.Reason = &body.Reason
	}

	if err := h.svc.Cancel(c.Context(), apptID, req); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// PATCH /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	p, err := h.therapists.GetByUser(c.Context(), userID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	if err := h.svc.Complete(c.Context(), p.ID, apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// PATCH /appointments/:id/no-show
func (h *AppointmentHandler) MarkNoShow(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	p, err := h.therapists.GetByUser(c.Context(), userID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	if err := h.svc.MarkNoShow(c.Context(), p.ID, apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}
