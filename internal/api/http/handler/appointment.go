package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/curaline/curaline_backend/internal/api/http/middleware"
	"github.com/curaline/curaline_backend/internal/service/appointment"
	"github.com/curaline/curaline_backend/pkg/reqctx"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func actorFromCtx(c fiber.Ctx) (reqctx.Actor, bool) {
	return middleware.ActorFromFiber(c)
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, appointment.ErrRescheduleNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrForbidden):
		return forbidden(c)
	case errors.Is(err, appointment.ErrSlotUnavailable):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidTransition),
		errors.Is(err, appointment.ErrRescheduleNotPending):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrCalendarNotConnected):
		return preconditionFailed(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	var q struct {
		DoctorID  string `query:"doctor_id"`
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		From      string `query:"from"`
		To        string `query:"to"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			req.To = &t
		}
	}

	page, err := h.svc.List(c.Context(), actor, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return paginated(c, page.Items, page.Total, page.Page, page.PerPage)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), actor, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// GET /appointments/:id/history
func (h *AppointmentHandler) History(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	events, err := h.svc.History(c.Context(), actor, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, events)
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	var body struct {
		DoctorID        string  `json:"doctor_id"`
		AvailabilityID  string  `json:"availability_id"`
		AppointmentType string  `json:"appointment_type"`
		Reason          *string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	availabilityID, err := uuid.Parse(body.AvailabilityID)
	if err != nil {
		return badRequest(c, "invalid availability_id")
	}

	appt, err := h.svc.Book(c.Context(), actor, appointment.BookRequest{
		DoctorID:        doctorID,
		AvailabilityID:  availabilityID,
		AppointmentType: body.AppointmentType,
		Reason:          body.Reason,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// POST /appointments/:id/confirm
func (h *AppointmentHandler) Confirm(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	result, err := h.svc.Confirm(c.Context(), actor, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, fiber.Map{
		"appointment": result.Appointment,
		"meet_link":   result.MeetLink,
	})
}

// POST /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	_ = c.Bind().JSON(&body)

	if err := h.svc.Cancel(c.Context(), actor, apptID, appointment.CancelRequest{Reason: body.Reason}); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}

// POST /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.MarkCompleted(c.Context(), actor, apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// POST /appointments/:id/no-show
func (h *AppointmentHandler) NoShow(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.MarkNoShow(c.Context(), actor, apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// POST /appointments/:id/reschedule
func (h *AppointmentHandler) RequestReschedule(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		NewAvailabilityID string `json:"new_availability_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	newAvailabilityID, err := uuid.Parse(body.NewAvailabilityID)
	if err != nil {
		return badRequest(c, "invalid new_availability_id")
	}

	resch, err := h.svc.RequestReschedule(c.Context(), actor, apptID, appointment.RescheduleRequest{
		NewAvailabilityID: newAvailabilityID,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, resch)
}

// POST /reschedules/:id/approve
func (h *AppointmentHandler) ApproveReschedule(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	rescheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid reschedule id")
	}

	appt, err := h.svc.ApproveReschedule(c.Context(), actor, rescheduleID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}
