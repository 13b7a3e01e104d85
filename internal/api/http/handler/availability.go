package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/curaline/curaline_backend/internal/service/availability"
)

type AvailabilityHandler struct {
	svc availability.Service
}

func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

func mapAvailabilityError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, availability.ErrSlotNotFound),
		errors.Is(err, availability.ErrTimeOffNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, availability.ErrInvalidTimeRange):
		return badRequest(c, err.Error())
	case errors.Is(err, availability.ErrForbidden):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /availability/slots
func (h *AvailabilityHandler) CreateSlot(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	var body struct {
		StartTime time.Time `json:"start_time"`
		EndTime   time.Time `json:"end_time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	slot, err := h.svc.CreateSlot(c.Context(), actor, availability.CreateSlotRequest{
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return created(c, slot)
}

// GET /availability/slots
func (h *AvailabilityHandler) ListSlots(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	var q struct {
		From string `query:"from"`
		To   string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	from := time.Now()
	to := from.AddDate(0, 1, 0)
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			from = t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			to = t
		}
	}

	slots, err := h.svc.ListSlots(c.Context(), actor, from, to)
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return ok(c, slots)
}

// DELETE /availability/slots/:id
func (h *AvailabilityHandler) DeleteSlot(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	slotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid slot id")
	}

	if err := h.svc.DeleteSlot(c.Context(), actor, slotID); err != nil {
		return mapAvailabilityError(c, err)
	}
	return noContent(c)
}

// POST /availability/time-off
func (h *AvailabilityHandler) CreateTimeOff(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	var body struct {
		StartTime time.Time `json:"start_time"`
		EndTime   time.Time `json:"end_time"`
		Reason    *string   `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	timeOff, err := h.svc.CreateTimeOff(c.Context(), actor, availability.CreateTimeOffRequest{
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Reason:    body.Reason,
	})
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return created(c, timeOff)
}

// GET /availability/time-off
func (h *AvailabilityHandler) ListTimeOff(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	timeOffs, err := h.svc.ListTimeOff(c.Context(), actor)
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return ok(c, timeOffs)
}

// DELETE /availability/time-off/:id
func (h *AvailabilityHandler) DeleteTimeOff(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	timeOffID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid time off id")
	}

	if err := h.svc.DeleteTimeOff(c.Context(), actor, timeOffID); err != nil {
		return mapAvailabilityError(c, err)
	}
	return noContent(c)
}

// GET /doctors/:id/slots  (public directory view)
func (h *AvailabilityHandler) ListPublic(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var q struct {
		IsBooked *bool  `query:"is_booked"`
		From     string `query:"from"`
		To       string `query:"to"`
		Page     int    `query:"page"`
		PerPage  int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	filters := availability.PublicSlotFilters{
		DoctorID: &doctorID,
		IsBooked: q.IsBooked,
		Page:     q.Page,
		PerPage:  q.PerPage,
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			filters.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			filters.To = &t
		}
	}

	page, err := h.svc.ListPublic(c.Context(), filters)
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return paginated(c, page.Items, page.Total, page.Page, page.PerPage)
}
