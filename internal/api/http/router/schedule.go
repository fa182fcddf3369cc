package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/govently/govently_backend/internal/api/http/handler"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
	therapistOnly fiber.Handler,
) {
	schedule := api.Group("/schedule", authRequired, therapistOnly)

	schedule.Get("/slots", sh.ListSlots)
	schedule.Post("/slots", sh.CreateSlot)
	schedule.Delete("/slots/:id", sh.DeleteSlot)
}
