package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/govently/govently_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	h *handler.AppointmentHandler,
	authRequired fiber.Handler,
) {
	appointments := api.Group("/appointments", authRequired)

	appointments.Get("/", h.List)
	appointments.Post("/", h.Book)
	appointments.Get("/:id", h.GetByID)
	appointments.Patch("/:id/confirm", h.Confirm)
	appointments.Patch("/:id/cancel", h.Cancel)
	appointments.Patch("/:id/complete", h.Complete)
	appointments.Patch("/:id/no-show", h.MarkNoShow)
}
