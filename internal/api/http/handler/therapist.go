package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/govently/govently_backend/internal/service/therapist"
)

type TherapistHandler struct {
	svc therapist.Service
}

func NewTherapistHandler(svc therapist.Service) *TherapistHandler {
	return &TherapistHandler{svc: svc}
}

func mapTherapistError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, therapist.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, therapist.ErrAlreadyExists):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /therapists
func (h *TherapistHandler) Directory(c fiber.Ctx) error {
	var q struct {
		Specialization string `query:"specialization"`
		Language       string `query:"language"`
		Insurance      string `query:"insurance"`
		Gender         string `query:"gender"`
		Search         string `query:"search"`
		Page           int    `query:"page"`
		PerPage        int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := therapist.DirectoryRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Specialization != "" {
		req.Specialization = &q.Specialization
	}
	if q.Language != "" {
		req.Language = &q.Language
	}
	if q.Insurance != "" {
		req.Insurance = &q.Insurance
	}
	if q.Gender != "" {
		req.Gender = &q.Gender
	}
	if q.Search != "" {
		req.SearchQuery = &q.Search
	}

	profiles, err := h.svc.Directory(c.Context(), req)
	if err != nil {
		return mapTherapistError(c, err)
	}
	return ok(c, profiles)
}

// GET /therapists/filter-options
func (h *TherapistHandler) FilterOptions(c fiber.Ctx) error {
	opts, err := h.svc.FilterOptions(c.Context())
	if err != nil {
		return mapTherapistError(c, err)
	}
	return ok(c, opts)
}

// GET /therapists/:id
func (h *TherapistHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	p, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapTherapistError(c, err)
	}
	return ok(c, p)
}

// GET /therapists/me
func (h *TherapistHandler) GetOwn(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.GetByUser(c.Context(), userID)
	if err != nil {
		return mapTherapistError(c, err)
	}
	return ok(c, p)
}

// POST /therapists/me
func (h *TherapistHandler) CreateOwn(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body therapist.UpsertProfileRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.CreateProfile(c.Context(), userID, body)
	if err != nil {
		return mapTherapistError(c, err)
	}
	return created(c, p)
}

// PUT /therapists/me
func (h *TherapistHandler) UpdateOwn(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body therapist.UpsertProfileRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.UpdateProfile(c.Context(), userID, body)
	if err != nil {
		return mapTherapistError(c, err)
	}
	return ok(c, p)
}

// PATCH /therapists/:id/status
func (h *TherapistHandler) SetStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	switch body.Status {
	case "pending", "approved", "rejected", "suspended":
	default:
		return badRequest(c, "invalid status")
	}

	if err := h.svc.SetStatus(c.Context(), id, body.Status); err != nil {
		return mapTherapistError(c, err)
	}
	return noContent(c)
}
