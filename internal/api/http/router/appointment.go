package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/curaline/curaline_backend/internal/api/http/handler"
	"github.com/curaline/curaline_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.List)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), ah.Book)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.GetByID)
	a.Get("/history", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.History)
	a.Post("/confirm", requirePerm(authorize.ResourceAppointment, authorize.ActionConfirm), ah.Confirm)
	a.Post("/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionCancel), ah.Cancel)
	a.Post("/complete", requirePerm(authorize.ResourceAppointment, authorize.ActionComplete), ah.Complete)
	a.Post("/no-show", requirePerm(authorize.ResourceAppointment, authorize.ActionComplete), ah.NoShow)
	a.Post("/reschedule", requirePerm(authorize.ResourceReschedule, authorize.ActionCreate), ah.RequestReschedule)

	reschedules := api.Group("/reschedules", authRequired)
	reschedules.Post("/:id/approve", requirePerm(authorize.ResourceReschedule, authorize.ActionUpdate), ah.ApproveReschedule)
}
