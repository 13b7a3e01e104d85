package availability

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/curaline/curaline_backend/internal/repo"
	"github.com/curaline/curaline_backend/internal/repo/enttest"
	entuser "github.com/curaline/curaline_backend/internal/repo/user"
	"github.com/curaline/curaline_backend/pkg/reqctx"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestDeleteSlotRestrictedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client)

	doctor, err := client.User.Create().
		SetRole(entuser.RoleDoctor).
		SetEmail("doctor@curaline.test").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	patient, err := client.User.Create().
		SetRole(entuser.RolePatient).
		SetEmail("patient@curaline.test").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	start := time.Now().Add(24 * time.Hour)
	slot, err := client.AvailabilitySlot.Create().
		SetDoctorID(doctor.ID).
		SetStartTime(start).
		SetEndTime(start.Add(30 * time.Minute)).
		SetIsBooked(true).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	if err := client.Appointment.Create().
		SetPatientID(patient.ID).
		SetDoctorID(doctor.ID).
		SetAvailabilityID(slot.ID).
		SetScheduledStart(slot.StartTime).
		SetScheduledEnd(slot.EndTime).
		Exec(ctx); err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	actor := reqctx.Actor{UserID: doctor.ID, Role: reqctx.RoleDoctor}
	if err := svc.DeleteSlot(ctx, actor, slot.ID); err == nil {
		t.Fatal("deleting a slot an appointment references should fail")
	}
	if n := client.AvailabilitySlot.Query().CountX(ctx); n != 1 {
		t.Errorf("slot rows = %d, want the slot to survive", n)
	}

	// Unreferenced slots delete normally.
	free, err := client.AvailabilitySlot.Create().
		SetDoctorID(doctor.ID).
		SetStartTime(start.Add(time.Hour)).
		SetEndTime(start.Add(90 * time.Minute)).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed free slot: %v", err)
	}
	if err := svc.DeleteSlot(ctx, actor, free.ID); err != nil {
		t.Fatalf("deleting an unreferenced slot: %v", err)
	}
}
