package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/govently/govently_backend/internal/service/matchmaking"
)

type MatchingHandler struct {
	svc matchmaking.Service
}

func NewMatchingHandler(svc matchmaking.Service) *MatchingHandler {
	return &MatchingHandler{svc: svc}
}

func mapMatchingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, matchmaking.ErrNoAssessment):
		return notFound(c, err.Error())
	case errors.Is(err, matchmaking.ErrEmptyRoster):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /matches
func (h *MatchingHandler) FindMatches(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	set, err := h.svc.FindMatches(c.Context(), userID)
	if err != nil {
		return mapMatchingError(c, err)
	}
	return ok(c, set)
}

// GET /matches/recommendation
func (h *MatchingHandler) Recommend(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	rec, err := h.svc.Recommend(c.Context(), userID)
	if err != nil {
		return mapMatchingError(c, err)
	}
	return ok(c, rec)
}

// GET /matches/history
func (h *MatchingHandler) History(c fiber.Ctx) error {
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Limit int `query:"limit"`
	}
	_ = c.Bind().Query(&q)

	rows, err := h.svc.History(c.Context(), userID, q.Limit)
	if err != nil {
		return mapMatchingError(c, err)
	}
	return ok(c, rows)
}
