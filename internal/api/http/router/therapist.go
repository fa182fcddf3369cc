package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/govently/govently_backend/internal/api/http/handler"
)

func (r *Router) registerTherapistRoutes(
	api fiber.Router,
	h *handler.TherapistHandler,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
	therapistOnly fiber.Handler,
	adminOnly fiber.Handler,
) {
	// Public directory
	api.Get("/therapists", h.Directory)
	api.Get("/therapists/filter-options", h.FilterOptions)

	// Own profile routes must register before the :id wildcard
	api.Get("/therapists/me", authRequired, therapistOnly, h.GetOwn)
	api.Post("/therapists/me", authRequired, therapistOnly, h.CreateOwn)
	api.Put("/therapists/me", authRequired, therapistOnly, h.UpdateOwn)

	api.Get("/therapists/:id", h.GetByID)
	api.Get("/therapists/:id/slots", sh.ListPublicSlots)

	api.Patch("/therapists/:id/status", authRequired, adminOnly, h.SetStatus)
}
