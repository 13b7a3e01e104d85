package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/curaline/curaline_backend/internal/api/http/handler"
	"github.com/curaline/curaline_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	uh *handler.UserHandler,
	ah *handler.AvailabilityHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public doctor directory
	api.Get("/doctors", uh.ListDoctors)
	api.Get("/doctors/:id", uh.GetDoctor)
	api.Get("/doctors/:id/slots", ah.ListPublic)

	me := api.Group("/me", authRequired)
	me.Get("/", uh.Me)
	me.Patch("/", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), uh.UpdateProfile)

	me.Get("/calendar", requirePerm(authorize.ResourceCalendarCredential, authorize.ActionRead), uh.GetCalendarStatus)
	me.Post("/calendar", requirePerm(authorize.ResourceCalendarCredential, authorize.ActionCreate), uh.ConnectCalendar)
	me.Delete("/calendar", requirePerm(authorize.ResourceCalendarCredential, authorize.ActionDelete), uh.DisconnectCalendar)
}
