package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	core "github.com/govently/govently_backend/internal/assessment"
	"github.com/govently/govently_backend/internal/service/assessment"
)

type AssessmentHandler struct {
	svc assessment.Service
}

func NewAssessmentHandler(svc assessment.Service) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

func mapAssessmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, assessment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, assessment.ErrEmptyResponses):
		return badRequest(c, err.Error())
	case errors.Is(err, assessment.ErrUnknownQuestion):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /assessments/catalog
func (h *AssessmentHandler) Catalog(c fiber.Ctx) error {
	return ok(c, h.svc.Catalog())
}

// POST /assessments/start
func (h *AssessmentHandler) Start(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		AssessmentID string `json:"assessment_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.AssessmentID == "" {
		return badRequest(c, "assessment_id is required")
	}

	if err := h.svc.Start(c.Context(), userID, body.AssessmentID); err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, fiber.Map{"assessment_id": body.AssessmentID})
}

// POST /assessments/check-response
func (h *AssessmentHandler) CheckResponse(c fiber.Ctx) error {
	if _, valid := userIDFromLocals(c); !valid {
		return unauthorized(c)
	}

	var body struct {
		QuestionID string `json:"question_id"`
		Value      any    `json:"value"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	return ok(c, h.svc.CheckResponse(body.QuestionID, body.Value))
}

// POST /assessments/submit
func (h *AssessmentHandler) Submit(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		AssessmentID string `json:"assessment_id"`
		Responses    []struct {
			QuestionID string    `json:"question_id"`
			Value      any       `json:"value"`
			Timestamp  time.Time `json:"timestamp"`
		} `json:"responses"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := assessment.SubmitRequest{AssessmentID: body.AssessmentID}
	for _, r := range body.Responses {
		req.Responses = append(req.Responses, core.Response{
			QuestionID: r.QuestionID,
			Value:      r.Value,
			Timestamp:  r.Timestamp,
		})
	}

	result, err := h.svc.Submit(c.Context(), userID, req)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return created(c, result)
}

// GET /assessments/current
func (h *AssessmentHandler) GetCurrent(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	result, err := h.svc.GetCurrent(c.Context(), userID)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, result)
}

// GET /assessments/:id
func (h *AssessmentHandler) GetByAssessmentID(c fiber.Ctx) error {
	if _, valid := userIDFromLocals(c); !valid {
		return unauthorized(c)
	}

	result, err := h.svc.GetByAssessmentID(c.Context(), c.Params("id"))
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, result)
}

// GET /assessments/stats
func (h *AssessmentHandler) GetStats(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	stats, err := h.svc.GetStats(c.Context(), userID)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, stats)
}
