package rating

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

func patientActor(u *repo.User) reqctx.Actor {
	return reqctx.Actor{UserID: u.ID, Role: reqctx.RolePatient}
}

func TestCreateFoldsIntoDoctorAggregate(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client)

	doctor := seedUser(t, client, entuser.RoleDoctor, "doctor@curaline.test")
	first := seedUser(t, client, entuser.RolePatient, "first@curaline.test")
	second := seedUser(t, client, entuser.RolePatient, "second@curaline.test")

	if _, err := svc.Create(ctx, patientActor(first), CreateRequest{DoctorID: doctor.ID, Rating: 5}); err != nil {
		t.Fatalf("first rating: %v", err)
	}
	if _, err := svc.Create(ctx, patientActor(second), CreateRequest{DoctorID: doctor.ID, Rating: 3}); err != nil {
		t.Fatalf("second rating: %v", err)
	}

	got := client.User.GetX(ctx, doctor.ID)
	if got.RatingCount != 2 {
		t.Errorf("rating_count = %d, want 2", got.RatingCount)
	}
	if got.AverageRating != 4 {
		t.Errorf("average_rating = %v, want 4", got.AverageRating)
	}
}

func TestCreateRejectsSecondRatingFromSamePatient(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	svc := New(client)

	doctor := seedUser(t, client, entuser.RoleDoctor, "doctor@curaline.test")
	patient := seedUser(t, client, entuser.RolePatient, "patient@curaline.test")

	if _, err := svc.Create(ctx, patientActor(patient), CreateRequest{DoctorID: doctor.ID, Rating: 4}); err != nil {
		t.Fatalf("first rating: %v", err)
	}
	if _, err := svc.Create(ctx, patientActor(patient), CreateRequest{DoctorID: doctor.ID, Rating: 2}); !errors.Is(err, ErrAlreadyRated) {
		t.Fatalf("duplicate rating err = %v, want ErrAlreadyRated", err)
	}

	got := client.User.GetX(ctx, doctor.ID)
	if got.RatingCount != 1 {
		t.Errorf("rating_count = %d, want 1 after rejected duplicate", got.RatingCount)
	}
}
