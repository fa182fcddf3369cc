package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/govently/govently_backend/internal/api/http/handler"
)

func (r *Router) registerMatchingRoutes(
	api fiber.Router,
	h *handler.MatchingHandler,
	authRequired fiber.Handler,
) {
	matches := api.Group("/matches", authRequired)
	matches.Post("/", h.FindMatches)
	matches.Get("/recommendation", h.Recommend)
	matches.Get("/history", h.History)
}
