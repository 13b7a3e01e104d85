package reqctx

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestActorRoundTrip(t *testing.T) {
	id := uuid.New()
	ctx := WithActor(context.Background(), Actor{UserID: id, Role: RoleDoctor})

	actor, ok := ActorFromContext(ctx)
	if !ok {
		t.Fatal("expected actor in context")
	}
	if actor.UserID != id {
		t.Errorf("UserID = %s, want %s", actor.UserID, id)
	}
	if !actor.IsDoctor() {
		t.Errorf("IsDoctor() = false, want true")
	}
	if actor.IsAdmin() || actor.IsPatient() {
		t.Error("actor should only match its own role")
	}
}

func TestActorFromContextMissing(t *testing.T) {
	if _, ok := ActorFromContext(context.Background()); ok {
		t.Error("expected no actor in empty context")
	}
}

func TestActorFromContextZero(t *testing.T) {
	ctx := WithActor(context.Background(), Actor{})
	if _, ok := ActorFromContext(ctx); ok {
		t.Error("zero actor should not count as authenticated")
	}
}

func TestActorIs(t *testing.T) {
	id := uuid.New()
	actor := Actor{UserID: id, Role: RolePatient}

	if !actor.Is(id) {
		t.Error("Is(own id) = false, want true")
	}
	if actor.Is(uuid.New()) {
		t.Error("Is(other id) = true, want false")
	}
	if (Actor{}).Is(uuid.Nil) {
		t.Error("zero actor must never match uuid.Nil")
	}
}

func TestMustActorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustActor should panic without an actor")
		}
	}()
	MustActor(context.Background())
}
