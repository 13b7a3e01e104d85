package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/curaline/curaline_backend/internal/repo"
	entappt "github.com/curaline/curaline_backend/internal/repo/appointment"
	entevent "github.com/curaline/curaline_backend/internal/repo/appointmentevent"
	entmeet "github.com/curaline/curaline_backend/internal/repo/appointmentmeeting"
	entres "github.com/curaline/curaline_backend/internal/repo/appointmentreschedule"
	entslot "github.com/curaline/curaline_backend/internal/repo/availabilityslot"
	entcred "github.com/curaline/curaline_backend/internal/repo/calendarcredential"
	entlink "github.com/curaline/curaline_backend/internal/repo/doctorpatient"
	"github.com/curaline/curaline_backend/pkg/calendar"
	"github.com/curaline/curaline_backend/pkg/database"
	"github.com/curaline/curaline_backend/pkg/email"
	"github.com/curaline/curaline_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type BookRequest struct {
	DoctorID        uuid.UUID
	AvailabilityID  uuid.UUID
	AppointmentType string
	Reason          *string
}

type CancelRequest struct {
	Reason *string
}

type RescheduleRequest struct {
	NewAvailabilityID uuid.UUID
}

type ListRequest struct {
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Status    *string
	From      *time.Time
	To        *time.Time
	Page      int
	PerPage   int
}

type ListPage struct {
	Items   []*repo.Appointment
	Total   int
	Page    int
	PerPage int
}

// ConfirmResult carries the confirmed appointment together with the meeting
// link minted for it.
type ConfirmResult struct {
	Appointment *repo.Appointment
	MeetLink    string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Book(ctx context.Context, actor reqctx.Actor, req BookRequest) (*repo.Appointment, error)
	Confirm(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID) (*ConfirmResult, error)
	Cancel(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID, req CancelRequest) error
	MarkCompleted(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID) error
	MarkNoShow(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID) error
	RequestReschedule(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID, req RescheduleRequest) (*repo.AppointmentReschedule, error)
	ApproveReschedule(ctx context.Context, actor reqctx.Actor, rescheduleID uuid.UUID) (*repo.Appointment, error)
	List(ctx context.Context, actor reqctx.Actor, req ListRequest) (*ListPage, error)
	GetByID(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID) (*repo.Appointment, error)
	History(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID) ([]*repo.AppointmentEvent, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db     *repo.Client
	mailer *email.Client
	cal    *calendar.Client
	nc     *nats.Conn
}

func New(db *repo.Client, mailer *email.Client, cal *calendar.Client, nc *nats.Conn) Service {
	return &appointmentService{db: db, mailer: mailer, cal: cal, nc: nc}
}

func (s *appointmentService) List(ctx context.Context, actor reqctx.Actor, req ListRequest) (*ListPage, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	// Non-admin callers only ever see their own side of the table.
	switch {
	case actor.IsDoctor():
		q = q.Where(entappt.DoctorID(actor.UserID))
	case actor.IsPatient():
		q = q.Where(entappt.PatientID(actor.UserID))
	default:
		if req.DoctorID != nil {
			q = q.Where(entappt.DoctorID(*req.DoctorID))
		}
		if req.PatientID != nil {
			q = q.Where(entappt.PatientID(*req.PatientID))
		}
	}

	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.ScheduledStartGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.ScheduledStartLT(*req.To))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	appts, err := q.
		Order(entappt.ByScheduledStart(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	return &ListPage{Items: appts, Total: total, Page: req.Page, PerPage: req.PerPage}, nil
}

func (s *appointmentService) GetByID(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID) (*repo.Appointment, error) {
	q := s.db.Appointment.Query().Where(entappt.ID(apptID))
	switch {
	case actor.IsDoctor():
		q = q.Where(entappt.DoctorID(actor.UserID))
	case actor.IsPatient():
		q = q.Where(entappt.PatientID(actor.UserID))
	}
	appt, err := q.Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) History(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID) ([]*repo.AppointmentEvent, error) {
	if _, err := s.GetByID(ctx, actor, apptID); err != nil {
		return nil, err
	}
	events, err := s.db.AppointmentEvent.Query().
		Where(entevent.AppointmentID(apptID)).
		Order(entevent.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointment events: %w", err)
	}
	return events, nil
}

func (s *appointmentService) Book(ctx context.Context, actor reqctx.Actor, req BookRequest) (*repo.Appointment, error) {
	if req.AppointmentType == "" {
		req.AppointmentType = "video"
	}

	var appt *repo.Appointment
	err := database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		// Lock the slot atomically; zero rows means somebody else got it first.
		updated, err := tx.AvailabilitySlot.Update().
			Where(
				entslot.ID(req.AvailabilityID),
				entslot.DoctorID(req.DoctorID),
				entslot.IsBooked(false),
			).
			SetIsBooked(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("lock slot: %w", err)
		}
		if updated == 0 {
			return ErrSlotUnavailable
		}

		slot, err := tx.AvailabilitySlot.Get(ctx, req.AvailabilityID)
		if err != nil {
			return fmt.Errorf("load slot: %w", err)
		}

		c := tx.Appointment.Create().
			SetPatientID(actor.UserID).
			SetDoctorID(req.DoctorID).
			SetAvailabilityID(req.AvailabilityID).
			SetAppointmentType(req.AppointmentType).
			SetScheduledStart(slot.StartTime).
			SetScheduledEnd(slot.EndTime)
		if req.Reason != nil {
			c = c.SetNillableReason(req.Reason)
		}
		appt, err = c.Save(ctx)
		if err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}

		if err := s.recordEvent(ctx, tx, appt.ID, nil, entevent.NewStatusPending, actor, nil); err != nil {
			return err
		}

		doctor, err := tx.User.Get(ctx, req.DoctorID)
		if err != nil {
			return fmt.Errorf("load doctor: %w", err)
		}
		patient, err := tx.User.Get(ctx, actor.UserID)
		if err != nil {
			return fmt.Errorf("load patient: %w", err)
		}

		if err := s.notify(ctx, tx, doctor.ID, appt.ID, "appointment_created",
			"New appointment request",
			fmt.Sprintf("%s requested an appointment on %s.", displayName(patient), slot.StartTime.Format("Mon, 2 Jan 2006 15:04")),
		); err != nil {
			return err
		}

		if doctor.Email != nil {
			msg := email.BuildAppointmentBookedEmail(email.AppointmentEmailData{
				RecipientName: displayName(doctor),
				DoctorName:    displayName(doctor),
				PatientName:   displayName(patient),
				Start:         slot.StartTime,
				End:           slot.EndTime,
				Reason:        deref(req.Reason),
			})
			msg.To = []string{*doctor.Email}
			if err := s.sendEmail(ctx, msg); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("curaline.appointment.created", appt)
	return appt, nil
}

func (s *appointmentService) Confirm(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID) (*ConfirmResult, error) {
	appt, err := s.GetByID(ctx, actor, apptID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !actor.Is(appt.DoctorID) {
		return nil, ErrForbidden
	}

	// Re-confirming an already confirmed appointment is a no-op: return the
	// existing meeting link instead of failing the transition.
	if appt.Status == entappt.StatusConfirmed {
		meeting, err := s.db.AppointmentMeeting.Query().
			Where(entmeet.AppointmentID(appt.ID)).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrMeetingLinkMissing
			}
			return nil, fmt.Errorf("load meeting: %w", err)
		}
		return &ConfirmResult{Appointment: appt, MeetLink: meeting.MeetLink}, nil
	}

	if !CanTransition(appt.Status, entappt.StatusConfirmed) {
		return nil, ErrInvalidTransition
	}

	cred, err := s.db.CalendarCredential.Query().
		Where(entcred.DoctorID(appt.DoctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCalendarNotConnected
		}
		return nil, fmt.Errorf("load calendar credential: %w", err)
	}

	var result *ConfirmResult
	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		event, err := s.cal.CreateEvent(ctx, cred.RefreshToken, calendar.EventInput{
			Summary:   "Curaline appointment",
			Start:     appt.ScheduledStart,
			End:       appt.ScheduledEnd,
			RequestID: appt.ID.String(),
		})
		if err != nil {
			if errors.Is(err, calendar.ErrDisabled) || errors.Is(err, calendar.ErrUnauthorized) {
				return ErrCalendarNotConnected
			}
			return fmt.Errorf("create calendar event: %w", err)
		}

		if err := tx.AppointmentMeeting.Create().
			SetAppointmentID(appt.ID).
			SetMeetLink(event.MeetLink).
			SetCalendarEventID(event.ID).
			Exec(ctx); err != nil {
			return fmt.Errorf("save meeting: %w", err)
		}

		updated, err := tx.Appointment.UpdateOne(appt).
			SetStatus(entappt.StatusConfirmed).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("confirm appointment: %w", err)
		}

		old := appt.Status
		if err := s.recordEvent(ctx, tx, appt.ID, &old, entevent.NewStatusConfirmed, actor, nil); err != nil {
			return err
		}

		if err := s.ensureLink(ctx, tx, appt.DoctorID, appt.PatientID); err != nil {
			return err
		}

		doctor, err := tx.User.Get(ctx, appt.DoctorID)
		if err != nil {
			return fmt.Errorf("load doctor: %w", err)
		}
		patient, err := tx.User.Get(ctx, appt.PatientID)
		if err != nil {
			return fmt.Errorf("load patient: %w", err)
		}

		if err := s.notify(ctx, tx, patient.ID, appt.ID, "appointment_confirmed",
			"Appointment confirmed",
			fmt.Sprintf("Your appointment with %s on %s is confirmed.", displayName(doctor), appt.ScheduledStart.Format("Mon, 2 Jan 2006 15:04")),
		); err != nil {
			return err
		}

		if patient.Email != nil {
			msg := email.BuildAppointmentConfirmedEmail(email.AppointmentEmailData{
				RecipientName: displayName(patient),
				DoctorName:    displayName(doctor),
				PatientName:   displayName(patient),
				Start:         appt.ScheduledStart,
				End:           appt.ScheduledEnd,
				MeetLink:      event.MeetLink,
			})
			msg.To = []string{*patient.Email}
			if err := s.sendEmail(ctx, msg); err != nil {
				return err
			}
		}

		result = &ConfirmResult{Appointment: updated, MeetLink: event.MeetLink}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("curaline.appointment.confirmed", result.Appointment)
	return result, nil
}

func (s *appointmentService) Cancel(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID, req CancelRequest) error {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get appointment: %w", err)
	}

	if actor.IsDoctor() && !actor.Is(appt.DoctorID) {
		return ErrForbidden
	}

	if !CanTransition(appt.Status, entappt.StatusCancelled) {
		return ErrInvalidTransition
	}

	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		now := time.Now()
		upd := tx.Appointment.UpdateOne(appt).
			SetStatus(entappt.StatusCancelled).
			SetCancelledBy(entappt.CancelledBy(actor.Role)).
			SetCancelledAt(now)
		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("cancel appointment: %w", err)
		}

		// Free the slot for rebooking.
		if _, err := tx.AvailabilitySlot.Update().
			Where(entslot.ID(appt.AvailabilityID), entslot.IsBooked(true)).
			SetIsBooked(false).
			Save(ctx); err != nil {
			return fmt.Errorf("release slot: %w", err)
		}

		old := appt.Status
		if err := s.recordEvent(ctx, tx, appt.ID, &old, entevent.NewStatusCancelled, actor, req.Reason); err != nil {
			return err
		}

		if err := s.removeCalendarEvent(ctx, tx, appt); err != nil {
			return err
		}

		// The patient only hears about cancellations they did not initiate.
		if !actor.IsPatient() {
			doctor, err := tx.User.Get(ctx, appt.DoctorID)
			if err != nil {
				return fmt.Errorf("load doctor: %w", err)
			}
			patient, err := tx.User.Get(ctx, appt.PatientID)
			if err != nil {
				return fmt.Errorf("load patient: %w", err)
			}
			if err := s.notify(ctx, tx, patient.ID, appt.ID, "appointment_cancelled",
				"Appointment cancelled",
				fmt.Sprintf("Your appointment with %s on %s was cancelled.", displayName(doctor), appt.ScheduledStart.Format("Mon, 2 Jan 2006 15:04")),
			); err != nil {
				return err
			}
			if patient.Email != nil {
				msg := email.BuildAppointmentCancelledEmail(email.AppointmentEmailData{
					RecipientName: displayName(patient),
					DoctorName:    displayName(doctor),
					PatientName:   displayName(patient),
					Start:         appt.ScheduledStart,
					End:           appt.ScheduledEnd,
					Reason:        deref(req.Reason),
				})
				msg.To = []string{*patient.Email}
				if err := s.sendEmail(ctx, msg); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish("curaline.appointment.cancelled", appt)
	return nil
}

func (s *appointmentService) MarkCompleted(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID) error {
	return s.finish(ctx, actor, apptID, entappt.StatusCompleted, entevent.NewStatusCompleted)
}

func (s *appointmentService) MarkNoShow(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID) error {
	return s.finish(ctx, actor, apptID, entappt.StatusNoShow, entevent.NewStatusNoShow)
}

func (s *appointmentService) finish(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID, to entappt.Status, eventStatus entevent.NewStatus) error {
	appt, err := s.GetByID(ctx, actor, apptID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && !actor.Is(appt.DoctorID) {
		return ErrForbidden
	}
	if !CanTransition(appt.Status, to) {
		return ErrInvalidTransition
	}

	return database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		upd := tx.Appointment.UpdateOne(appt).SetStatus(to)
		if to == entappt.StatusCompleted {
			upd = upd.SetCompletedAt(time.Now())
		}
		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("update appointment: %w", err)
		}
		old := appt.Status
		return s.recordEvent(ctx, tx, appt.ID, &old, eventStatus, actor, nil)
	})
}

func (s *appointmentService) RequestReschedule(ctx context.Context, actor reqctx.Actor, apptID uuid.UUID, req RescheduleRequest) (*repo.AppointmentReschedule, error) {
	appt, err := s.GetByID(ctx, actor, apptID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !actor.Is(appt.PatientID) && !actor.Is(appt.DoctorID) {
		return nil, ErrForbidden
	}
	if IsTerminal(appt.Status) {
		return nil, ErrInvalidTransition
	}

	// The candidate slot must belong to the same doctor; it is only locked
	// when the doctor approves.
	exists, err := s.db.AvailabilitySlot.Query().
		Where(
			entslot.ID(req.NewAvailabilityID),
			entslot.DoctorID(appt.DoctorID),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if !exists {
		return nil, ErrSlotUnavailable
	}

	resch, err := s.db.AppointmentReschedule.Create().
		SetAppointmentID(appt.ID).
		SetOldAvailabilityID(appt.AvailabilityID).
		SetNewAvailabilityID(req.NewAvailabilityID).
		SetRequestedBy(actor.UserID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create reschedule: %w", err)
	}
	return resch, nil
}

func (s *appointmentService) ApproveReschedule(ctx context.Context, actor reqctx.Actor, rescheduleID uuid.UUID) (*repo.Appointment, error) {
	resch, err := s.db.AppointmentReschedule.Query().
		Where(entres.ID(rescheduleID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrRescheduleNotFound
		}
		return nil, fmt.Errorf("get reschedule: %w", err)
	}
	if resch.Status != entres.StatusRequested {
		return nil, ErrRescheduleNotPending
	}

	appt, err := s.db.Appointment.Get(ctx, resch.AppointmentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if !actor.IsAdmin() && !actor.Is(appt.DoctorID) {
		return nil, ErrForbidden
	}
	if IsTerminal(appt.Status) {
		return nil, ErrInvalidTransition
	}

	var updated *repo.Appointment
	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		locked, err := tx.AvailabilitySlot.Update().
			Where(entslot.ID(resch.NewAvailabilityID), entslot.IsBooked(false)).
			SetIsBooked(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("lock new slot: %w", err)
		}
		if locked == 0 {
			return ErrSlotUnavailable
		}

		if _, err := tx.AvailabilitySlot.Update().
			Where(entslot.ID(resch.OldAvailabilityID), entslot.IsBooked(true)).
			SetIsBooked(false).
			Save(ctx); err != nil {
			return fmt.Errorf("release old slot: %w", err)
		}

		slot, err := tx.AvailabilitySlot.Get(ctx, resch.NewAvailabilityID)
		if err != nil {
			return fmt.Errorf("load new slot: %w", err)
		}

		updated, err = tx.Appointment.UpdateOne(appt).
			SetAvailabilityID(slot.ID).
			SetScheduledStart(slot.StartTime).
			SetScheduledEnd(slot.EndTime).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("move appointment: %w", err)
		}

		if err := tx.AppointmentReschedule.UpdateOne(resch).
			SetStatus(entres.StatusApproved).
			Exec(ctx); err != nil {
			return fmt.Errorf("approve reschedule: %w", err)
		}

		note := "rescheduled"
		old := appt.Status
		if err := s.recordEvent(ctx, tx, appt.ID, &old, entevent.NewStatus(appt.Status), actor, &note); err != nil {
			return err
		}

		if appt.Status == entappt.StatusConfirmed {
			if err := s.moveCalendarEvent(ctx, tx, appt, slot.StartTime, slot.EndTime); err != nil {
				return err
			}
		}

		doctor, err := tx.User.Get(ctx, appt.DoctorID)
		if err != nil {
			return fmt.Errorf("load doctor: %w", err)
		}
		return s.notify(ctx, tx, appt.PatientID, appt.ID, "appointment_rescheduled",
			"Appointment rescheduled",
			fmt.Sprintf("Your appointment with %s moved to %s.", displayName(doctor), slot.StartTime.Format("Mon, 2 Jan 2006 15:04")),
		)
	})
	if err != nil {
		return nil, err
	}

	s.publish("curaline.appointment.rescheduled", updated)
	return updated, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *appointmentService) recordEvent(ctx context.Context, tx *repo.Tx, apptID uuid.UUID, old *entappt.Status, next entevent.NewStatus, actor reqctx.Actor, note *string) error {
	c := tx.AppointmentEvent.Create().
		SetAppointmentID(apptID).
		SetNewStatus(next).
		SetChangedBy(actor.UserID).
		SetActorRole(actor.Role)
	if old != nil {
		c = c.SetOldStatus(entevent.OldStatus(*old))
	}
	if note != nil {
		c = c.SetNillableNote(note)
	}
	if err := c.Exec(ctx); err != nil {
		return fmt.Errorf("record appointment event: %w", err)
	}
	return nil
}

func (s *appointmentService) ensureLink(ctx context.Context, tx *repo.Tx, doctorID, patientID uuid.UUID) error {
	exists, err := tx.DoctorPatient.Query().
		Where(entlink.DoctorID(doctorID), entlink.PatientID(patientID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check doctor-patient link: %w", err)
	}
	if exists {
		return nil
	}
	if err := tx.DoctorPatient.Create().
		SetDoctorID(doctorID).
		SetPatientID(patientID).
		Exec(ctx); err != nil {
		return fmt.Errorf("link doctor and patient: %w", err)
	}
	return nil
}

func (s *appointmentService) notify(ctx context.Context, tx *repo.Tx, userID, apptID uuid.UUID, typ, title, body string) error {
	if err := tx.Notification.Create().
		SetUserID(userID).
		SetAppointmentID(apptID).
		SetType(typ).
		SetTitle(title).
		SetBody(body).
		Exec(ctx); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

// sendEmail delivers m, treating a disabled mailer as success so that local
// environments without SMTP still work.
func (s *appointmentService) sendEmail(ctx context.Context, m email.Message) error {
	if err := s.mailer.Send(ctx, m); err != nil {
		if errors.Is(err, email.ErrDisabled{}) {
			return nil
		}
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

func (s *appointmentService) removeCalendarEvent(ctx context.Context, tx *repo.Tx, appt *repo.Appointment) error {
	meeting, err := tx.AppointmentMeeting.Query().
		Where(entmeet.AppointmentID(appt.ID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("load meeting: %w", err)
	}
	if meeting.CalendarEventID == nil {
		return nil
	}
	cred, err := tx.CalendarCredential.Query().
		Where(entcred.DoctorID(appt.DoctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("load calendar credential: %w", err)
	}
	if err := s.cal.DeleteEvent(ctx, cred.RefreshToken, *meeting.CalendarEventID); err != nil {
		if errors.Is(err, calendar.ErrDisabled) {
			return nil
		}
		return fmt.Errorf("delete calendar event: %w", err)
	}
	return nil
}

func (s *appointmentService) moveCalendarEvent(ctx context.Context, tx *repo.Tx, appt *repo.Appointment, start, end time.Time) error {
	meeting, err := tx.AppointmentMeeting.Query().
		Where(entmeet.AppointmentID(appt.ID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("load meeting: %w", err)
	}
	if meeting.CalendarEventID == nil {
		return nil
	}
	cred, err := tx.CalendarCredential.Query().
		Where(entcred.DoctorID(appt.DoctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("load calendar credential: %w", err)
	}
	if _, err := s.cal.PatchEvent(ctx, cred.RefreshToken, *meeting.CalendarEventID, start, end); err != nil {
		if errors.Is(err, calendar.ErrDisabled) || errors.Is(err, calendar.ErrEventNotFound) {
			return nil
		}
		return fmt.Errorf("patch calendar event: %w", err)
	}
	return nil
}

func (s *appointmentService) publish(subject string, appt *repo.Appointment) {
	if s.nc == nil || appt == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"appointment_id": appt.ID,
		"doctor_id":      appt.DoctorID,
		"patient_id":     appt.PatientID,
		"status":         appt.Status,
		"occurred_at":    time.Now().UTC(),
	})
	if err != nil {
		return
	}
	_ = s.nc.Publish(subject, payload)
}

func displayName(u *repo.User) string {
	first, last := deref(u.FirstName), deref(u.LastName)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	case u.Email != nil:
		return *u.Email
	default:
		return "Curaline user"
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
