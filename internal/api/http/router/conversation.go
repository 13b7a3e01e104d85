package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/curaline/curaline_backend/internal/api/http/handler"
	"github.com/curaline/curaline_backend/pkg/authorize"
)

func (r *Router) registerConversationRoutes(
	api fiber.Router,
	ch *handler.ConversationHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	convs := api.Group("/conversations", authRequired)

	convs.Get("/", requirePerm(authorize.ResourceConversation, authorize.ActionList), ch.List)
	convs.Post("/", requirePerm(authorize.ResourceConversation, authorize.ActionRead), ch.GetOrCreate)

	conv := convs.Group("/:id")
	conv.Get("/", requirePerm(authorize.ResourceConversation, authorize.ActionRead), ch.GetByID)
	conv.Get("/messages", requirePerm(authorize.ResourceMessage, authorize.ActionList), ch.ListMessages)
	conv.Post("/messages", requirePerm(authorize.ResourceMessage, authorize.ActionCreate), ch.SendMessage)
	conv.Post("/read", requirePerm(authorize.ResourceMessage, authorize.ActionUpdate), ch.MarkAsRead)
	conv.Post("/messages/:messageId/pin", requirePerm(authorize.ResourceMessage, authorize.ActionUpdate), ch.TogglePin)
	conv.Delete("/messages/:messageId", requirePerm(authorize.ResourceMessage, authorize.ActionDelete), ch.DeleteMessage)
}
