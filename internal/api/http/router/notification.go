package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/curaline/curaline_backend/internal/api/http/handler"
	"github.com/curaline/curaline_backend/pkg/authorize"
)

func (r *Router) registerNotificationRoutes(
	api fiber.Router,
	nh *handler.NotificationHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	notifs := api.Group("/notifications", authRequired)

	notifs.Get("/", requirePerm(authorize.ResourceNotification, authorize.ActionList), nh.List)
	notifs.Get("/unread-count", requirePerm(authorize.ResourceNotification, authorize.ActionList), nh.UnreadCount)
	notifs.Post("/read-all", requirePerm(authorize.ResourceNotification, authorize.ActionUpdate), nh.MarkAllRead)
	notifs.Post("/:id/read", requirePerm(authorize.ResourceNotification, authorize.ActionUpdate), nh.MarkRead)
}
