package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/govently/govently_backend/internal/api/http/handler"
)

func (r *Router) registerAssessmentRoutes(
	api fiber.Router,
	h *handler.AssessmentHandler,
	authRequired fiber.Handler,
) {
	// Public: the question catalog needs no account
	api.Get("/assessments/catalog", h.Catalog)

	assessments := api.Group("/assessments", authRequired)
	assessments.Post("/start", h.Start)
	assessments.Post("/check-response", h.CheckResponse)
	assessments.Post("/submit", h.Submit)
	assessments.Get("/current", h.GetCurrent)
	assessments.Get("/stats", h.GetStats)
	assessments.Get("/:id", h.GetByAssessmentID)
}
