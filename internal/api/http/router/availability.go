package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/curaline/curaline_backend/internal/api/http/handler"
	"github.com/curaline/curaline_backend/pkg/authorize"
)

func (r *Router) registerAvailabilityRoutes(
	api fiber.Router,
	ah *handler.AvailabilityHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	slots := api.Group("/availability/slots", authRequired)
	slots.Post("/", requirePerm(authorize.ResourceAvailabilitySlot, authorize.ActionCreate), ah.CreateSlot)
	slots.Get("/", requirePerm(authorize.ResourceAvailabilitySlot, authorize.ActionList), ah.ListSlots)
	slots.Delete("/:id", requirePerm(authorize.ResourceAvailabilitySlot, authorize.ActionDelete), ah.DeleteSlot)

	timeOff := api.Group("/availability/time-off", authRequired)
	timeOff.Post("/", requirePerm(authorize.ResourceTimeOff, authorize.ActionCreate), ah.CreateTimeOff)
	timeOff.Get("/", requirePerm(authorize.ResourceTimeOff, authorize.ActionList), ah.ListTimeOff)
	timeOff.Delete("/:id", requirePerm(authorize.ResourceTimeOff, authorize.ActionDelete), ah.DeleteTimeOff)
}
