package reqctx

import (
	"context"

	"github.com/google/uuid"
)

// Actor identifies who is performing the current operation. It is built by
// the auth middleware from verified token claims and passed explicitly to
// service-layer calls, so a service never has to guess the caller from
// ambient state.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

// Well-known role names, mirrored by the authorization policies.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

func (a Actor) IsZero() bool    { return a.UserID == uuid.Nil }
func (a Actor) IsPatient() bool { return a.Role == RolePatient }
func (a Actor) IsDoctor() bool  { return a.Role == RoleDoctor }
func (a Actor) IsAdmin() bool   { return a.Role == RoleAdmin }

// Is reports whether the actor is the given user. Admins are not special
// here; ownership checks that want an admin override must test IsAdmin
// explicitly.
func (a Actor) Is(userID uuid.UUID) bool {
	return a.UserID != uuid.Nil && a.UserID == userID
}

// ActorFromClaims builds an Actor from verified claims.
func ActorFromClaims(claims AuthClaims) Actor {
	if claims == nil {
		return Actor{}
	}
	return Actor{UserID: claims.GetUserID(), Role: claims.GetRole()}
}

// WithActor stores the actor in the context.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, keyActor, actor)
}

// ActorFromContext retrieves the actor from the context.
// Returns a zero Actor and false when the request is unauthenticated.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	v := ctx.Value(keyActor)
	if v == nil {
		return Actor{}, false
	}
	actor, ok := v.(Actor)
	if !ok || actor.IsZero() {
		return Actor{}, false
	}
	return actor, true
}

// MustActor retrieves the actor from the context.
// Panics if not set. Use only behind auth middleware.
func MustActor(ctx context.Context) Actor {
	actor, ok := ActorFromContext(ctx)
	if !ok {
		panic("reqctx: Actor not found in context")
	}
	return actor
}
