package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/curaline/curaline_backend/pkg/reqctx"
)

func TestSubjectFromContext(t *testing.T) {
	validUUID := uuid.New()

	tests := []struct {
		name        string
		setupCtx    func() context.Context
		wantSubject GroupSubject
		wantErr     bool
	}{
		{
			name: "actor in context",
			setupCtx: func() context.Context {
				actor := reqctx.Actor{UserID: validUUID, Role: reqctx.RoleDoctor}
				return reqctx.WithActor(context.Background(), actor)
			},
			wantSubject: GroupSubject(validUUID.String()),
			wantErr:     false,
		},
		{
			name: "no actor in context",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantSubject: "",
			wantErr:     true,
		},
		{
			name: "zero actor in context",
			setupCtx: func() context.Context {
				return reqctx.WithActor(context.Background(), reqctx.Actor{})
			},
			wantSubject: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.setupCtx()
			subject, err := SubjectFromContext(ctx)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if subject != tt.wantSubject {
					t.Errorf("SubjectFromContext() = %q, want %q", subject, tt.wantSubject)
				}
			}
		})
	}
}

func TestMustSubjectFromContext(t *testing.T) {
	t.Run("panics when no actor", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic but didn't get one")
			}
		}()
		MustSubjectFromContext(context.Background())
	})

	t.Run("returns subject when actor exists", func(t *testing.T) {
		validUUID := uuid.New()
		actor := reqctx.Actor{UserID: validUUID, Role: reqctx.RolePatient}
		ctx := reqctx.WithActor(context.Background(), actor)

		subject := MustSubjectFromContext(ctx)
		expected := GroupSubject(validUUID.String())
		if subject != expected {
			t.Errorf("MustSubjectFromContext() = %q, want %q", subject, expected)
		}
	})
}

func TestRBACRoleForActor(t *testing.T) {
	tests := []struct {
		name     string
		actor    reqctx.Actor
		wantRole Role
		wantOK   bool
	}{
		{"patient", reqctx.Actor{UserID: uuid.New(), Role: reqctx.RolePatient}, RolePatient, true},
		{"doctor", reqctx.Actor{UserID: uuid.New(), Role: reqctx.RoleDoctor}, RoleDoctor, true},
		{"admin", reqctx.Actor{UserID: uuid.New(), Role: reqctx.RoleAdmin}, RoleAdmin, true},
		{"unknown role", reqctx.Actor{UserID: uuid.New(), Role: "nurse"}, Role(""), false},
		{"empty role", reqctx.Actor{UserID: uuid.New()}, Role(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RBACRoleForActor(tt.actor)
			if ok != tt.wantOK {
				t.Fatalf("RBACRoleForActor() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.wantRole {
				t.Errorf("RBACRoleForActor() = %q, want %q", got, tt.wantRole)
			}
		})
	}
}
