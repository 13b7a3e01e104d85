package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/curaline/curaline_backend/internal/api/http/handler"
	"github.com/curaline/curaline_backend/pkg/authorize"
)

func (r *Router) registerRatingRoutes(
	api fiber.Router,
	rh *handler.RatingHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public doctor rating views
	api.Get("/doctors/:id/ratings", rh.List)
	api.Get("/doctors/:id/ratings/summary", rh.Average)

	api.Post("/doctors/:id/ratings", authRequired,
		requirePerm(authorize.ResourceRating, authorize.ActionCreate), rh.Create)

	ratings := api.Group("/ratings", authRequired)
	ratings.Get("/mine", requirePerm(authorize.ResourceRating, authorize.ActionList), rh.ListMine)
	ratings.Patch("/:id", requirePerm(authorize.ResourceRating, authorize.ActionUpdate), rh.Edit)
	ratings.Delete("/:id", requirePerm(authorize.ResourceRating, authorize.ActionDelete), rh.Delete)
}
