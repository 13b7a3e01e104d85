package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/curaline/curaline_backend/pkg/reqctx"
)

var (
	ErrNoSubjectInContext = errors.New("no subject found in context")
)

// ClaimsProvider is an interface that any claims type can implement
// to provide user identification for authorization.
type ClaimsProvider interface {
	GetUserID() uuid.UUID
}

// SubjectFromContext extracts the GroupSubject (user ID) from the actor or
// claims stored in the context by the auth middleware.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	if actor, ok := reqctx.ActorFromContext(ctx); ok {
		return GroupSubject(actor.UserID.String()), nil
	}

	claims := reqctx.ClaimsFromContext(ctx)
	if claims != nil {
		userID := claims.GetUserID()
		if userID != uuid.Nil {
			return GroupSubject(userID.String()), nil
		}
	}

	return "", ErrNoSubjectInContext
}

// MustSubjectFromContext extracts the GroupSubject from context or panics.
// Use only when you're certain the subject exists (behind auth middleware).
func MustSubjectFromContext(ctx context.Context) GroupSubject {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return subject
}

// UserIDFromContext extracts the user ID as uuid.UUID from context.
// Returns uuid.Nil and error if not found.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	if actor, ok := reqctx.ActorFromContext(ctx); ok {
		return actor.UserID, nil
	}

	claims := reqctx.ClaimsFromContext(ctx)
	if claims != nil {
		userID := claims.GetUserID()
		if userID != uuid.Nil {
			return userID, nil
		}
	}

	return uuid.Nil, ErrNoSubjectInContext
}

// RBACRoleForActor maps the actor's token role to its Casbin role.
// Returns false when the role string is unknown.
func RBACRoleForActor(actor reqctx.Actor) (Role, bool) {
	r, ok := UserRoleToRBACRole[actor.Role]
	return r, ok
}
