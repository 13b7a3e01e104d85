package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/curaline/curaline_backend/config"
	"github.com/curaline/curaline_backend/internal/repo"
	entappt "github.com/curaline/curaline_backend/internal/repo/appointment"
	entres "github.com/curaline/curaline_backend/internal/repo/appointmentreschedule"
	entslot "github.com/curaline/curaline_backend/internal/repo/availabilityslot"
	"github.com/curaline/curaline_backend/internal/repo/enttest"
	entuser "github.com/curaline/curaline_backend/internal/repo/user"
	"github.com/curaline/curaline_backend/pkg/calendar"
	"github.com/curaline/curaline_backend/pkg/email"
	"github.com/curaline/curaline_backend/pkg/reqctx"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func newTestService(t *testing.T, client *repo.Client) Service {
	t.Helper()
	mailer, err := email.New(email.Config{Enabled: false, From: "noreply@curaline.test"})
	if err != nil {
		t.Fatalf("new mailer: %v", err)
	}
	return New(client, mailer, calendar.New(config.CalendarConfig{}), nil)
}

func seedUser(t *testing.T, client *repo.Client, role entuser.Role, addr string) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetRole(role).
		SetEmail(addr).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed %s: %v", role, err)
	}
	return u
}

func seedSlot(t *testing.T, client *repo.Client, doctor *repo.User, start time.Time) *repo.AvailabilitySlot {
	t.Helper()
	slot, err := client.AvailabilitySlot.Create().
		SetDoctorID(doctor.ID).
		SetStartTime(start).
		SetEndTime(start.Add(30 * time.Minute)).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	return slot
}

func actorFor(u *repo.User) reqctx.Actor {
	return reqctx.Actor{UserID: u.ID, Role: string(u.Role)}
}

func TestBookRejectsBookedSlot(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := newTestService(t, client)

	doctor := seedUser(t, client, entuser.RoleDoctor, "doctor@curaline.test")
	first := seedUser(t, client, entuser.RolePatient, "first@curaline.test")
	second := seedUser(t, client, entuser.RolePatient, "second@curaline.test")
	slot := seedSlot(t, client, doctor, time.Now().Add(24*time.Hour))

	appt, err := svc.Book(ctx, actorFor(first), BookRequest{DoctorID: doctor.ID, AvailabilityID: slot.ID})
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if appt.Status != entappt.StatusPending {
		t.Errorf("status = %s, want pending", appt.Status)
	}

	if _, err := svc.Book(ctx, actorFor(second), BookRequest{DoctorID: doctor.ID, AvailabilityID: slot.ID}); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("second booking err = %v, want ErrSlotUnavailable", err)
	}

	if n := client.Appointment.Query().CountX(ctx); n != 1 {
		t.Errorf("appointment rows = %d, want 1", n)
	}
	if !client.AvailabilitySlot.GetX(ctx, slot.ID).IsBooked {
		t.Error("slot should stay booked after the failed second attempt")
	}
}

func TestCancelFreesSlot(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := newTestService(t, client)

	doctor := seedUser(t, client, entuser.RoleDoctor, "doctor@curaline.test")
	patient := seedUser(t, client, entuser.RolePatient, "patient@curaline.test")
	slot := seedSlot(t, client, doctor, time.Now().Add(24*time.Hour))

	appt, err := svc.Book(ctx, actorFor(patient), BookRequest{DoctorID: doctor.ID, AvailabilityID: slot.ID})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if err := svc.Cancel(ctx, actorFor(patient), appt.ID, CancelRequest{}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	got := client.Appointment.GetX(ctx, appt.ID)
	if got.Status != entappt.StatusCancelled {
		t.Errorf("status = %s, want cancelled", got.Status)
	}
	if got.CancelledBy == nil || *got.CancelledBy != entappt.CancelledByPatient {
		t.Errorf("cancelled_by = %v, want patient", got.CancelledBy)
	}
	if client.AvailabilitySlot.GetX(ctx, slot.ID).IsBooked {
		t.Error("slot should be free again after cancel")
	}

	// A freed slot is bookable by somebody else.
	other := seedUser(t, client, entuser.RolePatient, "other@curaline.test")
	if _, err := svc.Book(ctx, actorFor(other), BookRequest{DoctorID: doctor.ID, AvailabilityID: slot.ID}); err != nil {
		t.Fatalf("rebooking freed slot: %v", err)
	}
}

func TestConfirmIsIdempotent(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := newTestService(t, client)

	doctor := seedUser(t, client, entuser.RoleDoctor, "doctor@curaline.test")
	patient := seedUser(t, client, entuser.RolePatient, "patient@curaline.test")
	slot := seedSlot(t, client, doctor, time.Now().Add(24*time.Hour))

	appt, err := svc.Book(ctx, actorFor(patient), BookRequest{DoctorID: doctor.ID, AvailabilityID: slot.ID})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	client.Appointment.UpdateOneID(appt.ID).SetStatus(entappt.StatusConfirmed).ExecX(ctx)
	client.AppointmentMeeting.Create().
		SetAppointmentID(appt.ID).
		SetMeetLink("https://meet.curaline.test/abc").
		ExecX(ctx)

	first, err := svc.Confirm(ctx, actorFor(doctor), appt.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	again, err := svc.Confirm(ctx, actorFor(doctor), appt.ID)
	if err != nil {
		t.Fatalf("re-confirm: %v", err)
	}

	if first.MeetLink != "https://meet.curaline.test/abc" || again.MeetLink != first.MeetLink {
		t.Errorf("meet links = %q / %q, want the stored link both times", first.MeetLink, again.MeetLink)
	}
	if n := client.AppointmentMeeting.Query().CountX(ctx); n != 1 {
		t.Errorf("meeting rows = %d, want 1", n)
	}
}

func TestApproveRescheduleMovesBooking(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := newTestService(t, client)

	doctor := seedUser(t, client, entuser.RoleDoctor, "doctor@curaline.test")
	patient := seedUser(t, client, entuser.RolePatient, "patient@curaline.test")
	oldSlot := seedSlot(t, client, doctor, time.Now().Add(24*time.Hour))
	newSlot := seedSlot(t, client, doctor, time.Now().Add(48*time.Hour))

	appt, err := svc.Book(ctx, actorFor(patient), BookRequest{DoctorID: doctor.ID, AvailabilityID: oldSlot.ID})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	resch, err := svc.RequestReschedule(ctx, actorFor(patient), appt.ID, RescheduleRequest{NewAvailabilityID: newSlot.ID})
	if err != nil {
		t.Fatalf("request reschedule: %v", err)
	}

	updated, err := svc.ApproveReschedule(ctx, actorFor(doctor), resch.ID)
	if err != nil {
		t.Fatalf("approve reschedule: %v", err)
	}

	if updated.AvailabilityID != newSlot.ID {
		t.Errorf("availability_id = %s, want the new slot", updated.AvailabilityID)
	}
	if !updated.ScheduledStart.Equal(newSlot.StartTime) || !updated.ScheduledEnd.Equal(newSlot.EndTime) {
		t.Error("scheduled times should snapshot the new slot")
	}
	if client.AvailabilitySlot.GetX(ctx, oldSlot.ID).IsBooked {
		t.Error("old slot should be freed")
	}
	if !client.AvailabilitySlot.GetX(ctx, newSlot.ID).IsBooked {
		t.Error("new slot should be booked")
	}
	if n := client.AvailabilitySlot.Query().Where(entslot.IsBooked(true)).CountX(ctx); n != 1 {
		t.Errorf("booked slots = %d, want exactly 1", n)
	}
	if st := client.AppointmentReschedule.GetX(ctx, resch.ID).Status; st != entres.StatusApproved {
		t.Errorf("reschedule status = %s, want approved", st)
	}
}

func TestSendEmailTreatsDisabledMailerAsSuccess(t *testing.T) {
	mailer, err := email.New(email.Config{Enabled: false, From: "noreply@curaline.test"})
	if err != nil {
		t.Fatalf("new mailer: %v", err)
	}
	s := &appointmentService{mailer: mailer}

	msg := email.Message{
		To:       []string{"doctor@curaline.test"},
		Subject:  "Appointment booked",
		TextBody: "details",
	}
	if err := s.sendEmail(context.Background(), msg); err != nil {
		t.Fatalf("sendEmail with disabled mailer = %v, want nil", err)
	}
}
