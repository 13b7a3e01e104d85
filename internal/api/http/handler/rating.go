package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/curaline/curaline_backend/internal/service/rating"
)

type RatingHandler struct {
	svc rating.Service
}

func NewRatingHandler(svc rating.Service) *RatingHandler {
	return &RatingHandler{svc: svc}
}

func mapRatingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, rating.ErrNotFound),
		errors.Is(err, rating.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, rating.ErrAlreadyRated):
		return conflict(c, err.Error())
	case errors.Is(err, rating.ErrInvalidRating):
		return badRequest(c, err.Error())
	case errors.Is(err, rating.ErrForbidden):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /doctors/:id/ratings
func (h *RatingHandler) Create(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		Rating int     `json:"rating"`
		Review *string `json:"review"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.svc.Create(c.Context(), actor, rating.CreateRequest{
		DoctorID: doctorID,
		Rating:   body.Rating,
		Review:   body.Review,
	})
	if err != nil {
		return mapRatingError(c, err)
	}
	return created(c, r)
}

// GET /doctors/:id/ratings
func (h *RatingHandler) List(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	ratings, total, err := h.svc.List(c.Context(), doctorID, q.Page, q.PerPage)
	if err != nil {
		return mapRatingError(c, err)
	}
	page, perPage := q.Page, q.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return paginated(c, ratings, total, page, perPage)
}

// GET /doctors/:id/ratings/summary
func (h *RatingHandler) Average(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	summary, err := h.svc.Average(c.Context(), doctorID)
	if err != nil {
		return mapRatingError(c, err)
	}
	return ok(c, fiber.Map{
		"average": summary.Average,
		"count":   summary.Count,
	})
}

// GET /ratings/mine
func (h *RatingHandler) ListMine(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	ratings, err := h.svc.ListForPatient(c.Context(), actor)
	if err != nil {
		return mapRatingError(c, err)
	}
	return ok(c, ratings)
}

// PATCH /ratings/:id
func (h *RatingHandler) Edit(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	ratingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid rating id")
	}

	var body struct {
		Rating *int    `json:"rating"`
		Review *string `json:"review"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.svc.Edit(c.Context(), actor, ratingID, rating.EditRequest{
		Rating: body.Rating,
		Review: body.Review,
	})
	if err != nil {
		return mapRatingError(c, err)
	}
	return ok(c, r)
}

// DELETE /ratings/:id
func (h *RatingHandler) Delete(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	ratingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid rating id")
	}

	if err := h.svc.Delete(c.Context(), actor, ratingID); err != nil {
		return mapRatingError(c, err)
	}
	return noContent(c)
}
