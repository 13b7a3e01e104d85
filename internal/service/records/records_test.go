package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

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

func linkDoctorPatient(t *testing.T, client *repo.Client, doctor, patient *repo.User) {
	t.Helper()
	if err := client.DoctorPatient.Create().
		SetDoctorID(doctor.ID).
		SetPatientID(patient.ID).
		Exec(context.Background()); err != nil {
		t.Fatalf("link doctor and patient: %v", err)
	}
}

func actorFor(u *repo.User) reqctx.Actor {
	return reqctx.Actor{UserID: u.ID, Role: string(u.Role)}
}

func TestCreatePrescriptionRequiresLink(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client)

	doctor := seedUser(t, client, entuser.RoleDoctor, "doctor@curaline.test")
	patient := seedUser(t, client, entuser.RolePatient, "patient@curaline.test")

	req := CreatePrescriptionRequest{PatientID: patient.ID, Title: "Amoxicillin 500mg"}
	if _, err := svc.CreatePrescription(ctx, actorFor(doctor), req); !errors.Is(err, ErrNotLinked) {
		t.Fatalf("unlinked create err = %v, want ErrNotLinked", err)
	}
	if n := client.Prescription.Query().CountX(ctx); n != 0 {
		t.Fatalf("prescription rows = %d, want 0 after rejected create", n)
	}

	linkDoctorPatient(t, client, doctor, patient)
	rx, err := svc.CreatePrescription(ctx, actorFor(doctor), req)
	if err != nil {
		t.Fatalf("linked create: %v", err)
	}
	if rx.DoctorID != doctor.ID || rx.PatientID != patient.ID {
		t.Error("prescription should record the issuing doctor and patient")
	}
}

func TestListPrescriptionsVisibility(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client)

	doctor := seedUser(t, client, entuser.RoleDoctor, "doctor@curaline.test")
	patient := seedUser(t, client, entuser.RolePatient, "patient@curaline.test")
	stranger := seedUser(t, client, entuser.RolePatient, "stranger@curaline.test")
	linkDoctorPatient(t, client, doctor, patient)

	if _, err := svc.CreatePrescription(ctx, actorFor(doctor), CreatePrescriptionRequest{PatientID: patient.ID, Title: "Ibuprofen 200mg"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	own, err := svc.ListPrescriptions(ctx, actorFor(patient), patient.ID)
	if err != nil {
		t.Fatalf("patient listing own: %v", err)
	}
	if len(own) != 1 {
		t.Errorf("patient sees %d prescriptions, want 1", len(own))
	}

	if _, err := svc.ListPrescriptions(ctx, actorFor(stranger), patient.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger listing err = %v, want ErrForbidden", err)
	}

	authored, err := svc.ListAuthoredPrescriptions(ctx, actorFor(doctor))
	if err != nil {
		t.Fatalf("doctor listing authored: %v", err)
	}
	if len(authored) != 1 {
		t.Errorf("doctor sees %d authored prescriptions, want 1", len(authored))
	}
}

func TestDeletePrescriptionSoftDeletes(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client)

	doctor := seedUser(t, client, entuser.RoleDoctor, "doctor@curaline.test")
	patient := seedUser(t, client, entuser.RolePatient, "patient@curaline.test")
	linkDoctorPatient(t, client, doctor, patient)

	rx, err := svc.CreatePrescription(ctx, actorFor(doctor), CreatePrescriptionRequest{PatientID: patient.ID, Title: "Cetirizine 10mg"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeletePrescription(ctx, actorFor(doctor), rx.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	listed, err := svc.ListPrescriptions(ctx, actorFor(patient), patient.ID)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("listed %d prescriptions after delete, want 0", len(listed))
	}
	// The row survives as a tombstone.
	if got := client.Prescription.GetX(ctx, rx.ID); got.DeletedAt == nil {
		t.Error("deleted_at should be set")
	}

	if _, err := svc.CreatePrescription(ctx, actorFor(patient), CreatePrescriptionRequest{PatientID: patient.ID, Title: "Self-issued"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("patient create err = %v, want ErrForbidden", err)
	}
}
