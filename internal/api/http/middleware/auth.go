package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	pasetotoken "github.com/curaline/curaline_backend/pkg/paseto"
	"github.com/curaline/curaline_backend/pkg/reqctx"
)

const LocalsActor = "auth.actor"

// AuthRequired validates a Bearer PASETO access token and checks the session
// in Redis. On success it stores *pasetotoken.Claims and the derived
// reqctx.Actor in the request locals.
func AuthRequired(mgr *pasetotoken.Manager, rdb *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}

		raw, ok := pasetotoken.BearerToken(h)
		if !ok {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(raw)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		// Only access tokens are accepted on protected routes
		if claims.Type != pasetotoken.TokenTypeAccess {
			return fiber.ErrUnauthorized
		}

		// Validate session in Redis
		if claims.SessionID != nil {
			key := "session:" + claims.SessionID.String()
			if err := rdb.Get(c.Context(), key).Err(); err != nil {
				return fiber.ErrUnauthorized
			}
		}

		actor := reqctx.ActorFromClaims(claims)
		if actor.IsZero() {
			return fiber.ErrUnauthorized
		}

		c.Locals(pasetotoken.CtxKeyClaims, claims)
		c.Locals(LocalsActor, actor)

		// Mirror into the request context so code that only sees a
		// context.Context (authorization, audit logging) can read the actor.
		ctx := reqctx.WithActor(c.Context(), actor)
		c.SetContext(reqctx.WithClaims(ctx, claims))
		return c.Next()
	}
}

// ActorFromFiber retrieves the authenticated actor set by AuthRequired.
func ActorFromFiber(c fiber.Ctx) (reqctx.Actor, bool) {
	v := c.Locals(LocalsActor)
	actor, ok := v.(reqctx.Actor)
	return actor, ok && !actor.IsZero()
}
