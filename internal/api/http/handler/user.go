package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/curaline/curaline_backend/internal/service/user"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrForbidden):
		return forbidden(c)
	case errors.Is(err, user.ErrCalendarNotConnected):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrCalendarExchange):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// userView hides credential fields from API responses.
type userView struct {
	ID            uuid.UUID `json:"id"`
	FirstName     *string   `json:"first_name"`
	LastName      *string   `json:"last_name"`
	Email         *string   `json:"email"`
	Phone         *string   `json:"phone"`
	Role          string    `json:"role"`
	Specialty     *string   `json:"specialty,omitempty"`
	Bio           *string   `json:"bio,omitempty"`
	AverageRating float64   `json:"average_rating"`
	RatingCount   int       `json:"rating_count"`
}

// GET /me
func (h *UserHandler) Me(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), actor.UserID)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, userView{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Phone:         u.Phone,
		Role:          string(u.Role),
		Specialty:     u.Specialty,
		Bio:           u.Bio,
		AverageRating: u.AverageRating,
		RatingCount:   u.RatingCount,
	})
}

// PATCH /me
func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Phone     *string `json:"phone"`
		Specialty *string `json:"specialty"`
		Bio       *string `json:"bio"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.UpdateProfile(c.Context(), actor, user.UpdateProfileRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Specialty: body.Specialty,
		Bio:       body.Bio,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// GET /doctors
func (h *UserHandler) ListDoctors(c fiber.Ctx) error {
	var q struct {
		Specialty string `query:"specialty"`
		Search    string `query:"search"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := user.ListDoctorsRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Specialty != "" {
		req.Specialty = &q.Specialty
	}
	if q.Search != "" {
		req.Search = &q.Search
	}

	page, err := h.svc.ListDoctors(c.Context(), req)
	if err != nil {
		return mapUserError(c, err)
	}

	views := make([]userView, 0, len(page.Items))
	for _, u := range page.Items {
		views = append(views, userView{
			ID:            u.ID,
			FirstName:     u.FirstName,
			LastName:      u.LastName,
			Role:          string(u.Role),
			Specialty:     u.Specialty,
			Bio:           u.Bio,
			AverageRating: u.AverageRating,
			RatingCount:   u.RatingCount,
		})
	}
	return paginated(c, views, page.Total, page.Page, page.PerPage)
}

// GET /doctors/:id
func (h *UserHandler) GetDoctor(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	u, err := h.svc.GetByID(c.Context(), doctorID)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, userView{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Role:          string(u.Role),
		Specialty:     u.Specialty,
		Bio:           u.Bio,
		AverageRating: u.AverageRating,
		RatingCount:   u.RatingCount,
	})
}

// POST /me/calendar
func (h *UserHandler) ConnectCalendar(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	var body struct {
		Code        string `json:"code"`
		RedirectURI string `json:"redirect_uri"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Code == "" {
		return badRequest(c, "code is required")
	}

	status, err := h.svc.ConnectCalendar(c.Context(), actor, user.ConnectCalendarRequest{
		Code:        body.Code,
		RedirectURI: body.RedirectURI,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, status)
}

// DELETE /me/calendar
func (h *UserHandler) DisconnectCalendar(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	if err := h.svc.DisconnectCalendar(c.Context(), actor); err != nil {
		return mapUserError(c, err)
	}
	return noContent(c)
}

// GET /me/calendar
func (h *UserHandler) GetCalendarStatus(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	status, err := h.svc.GetCalendarStatus(c.Context(), actor)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, status)
}
