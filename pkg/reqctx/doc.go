// Package reqctx provides centralized request context management.
//
// This package is the single source of truth for all request-scoped data,
// including the authenticated actor and request metadata. Distributed
// tracing context is carried by OpenTelemetry (pkg/observability), not here.
//
// # Context Keys
//
// All context keys are private unexported types to prevent collisions.
// Access is provided through type-safe getter and setter functions.
//
// # Usage
//
// Setting values (typically in middleware):
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID:   "abc-123",
//	    ClientIP:    "192.168.1.1",
//	    UserAgent:   "Mozilla/5.0",
//	    RequestedAt: time.Now(),
//	})
//
//	ctx = reqctx.WithClaims(ctx, claims)
//	ctx = reqctx.WithActor(ctx, reqctx.ActorFromClaims(claims))
//
// Getting values (in handlers, services, etc.):
//
//	meta, ok := reqctx.RequestMetaFromContext(ctx)
//	actor, ok := reqctx.ActorFromContext(ctx)
//	if reqctx.IsAuthenticated(ctx) {
//	    userID, _ := reqctx.UserIDFromContext(ctx)
//	}
//
// Services receive the Actor as an explicit argument rather than digging it
// out of the context themselves; the context accessors exist for middleware
// and for code paths (loggers, audit hooks) that only see a context.
//
// # Contracts
//
// The following contracts are guaranteed:
//
//   - RequestMeta is always set by HTTP middleware for all requests
//   - Claims and Actor are set only for authenticated requests (token
//     present and valid)
package reqctx
