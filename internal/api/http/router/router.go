package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/curaline/curaline_backend/config"
	"github.com/curaline/curaline_backend/internal/api/http/handler"
	"github.com/curaline/curaline_backend/internal/api/http/middleware"
	"github.com/curaline/curaline_backend/internal/service/appointment"
	"github.com/curaline/curaline_backend/internal/service/availability"
	"github.com/curaline/curaline_backend/internal/service/conversation"
	"github.com/curaline/curaline_backend/internal/service/notification"
	"github.com/curaline/curaline_backend/internal/service/rating"
	"github.com/curaline/curaline_backend/internal/service/records"
	"github.com/curaline/curaline_backend/internal/service/user"
	"github.com/curaline/curaline_backend/pkg/authorize"
	pasetotoken "github.com/curaline/curaline_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	AvailabilitySvc availability.Service
	AppointmentSvc  appointment.Service
	RatingSvc       rating.Service
	ConversationSvc conversation.Service
	RecordsSvc      records.Service
	NotificationSvc notification.Service
	UserSvc         user.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	availabilityH := handler.NewAvailabilityHandler(r.p.AvailabilitySvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	ratingH := handler.NewRatingHandler(r.p.RatingSvc)
	conversationH := handler.NewConversationHandler(r.p.ConversationSvc)
	recordsH := handler.NewRecordsHandler(r.p.RecordsSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerUserRoutes(api, userH, availabilityH, authRequired, requirePerm)
	r.registerAvailabilityRoutes(api, availabilityH, authRequired, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, requirePerm)
	r.registerRatingRoutes(api, ratingH, authRequired, requirePerm)
	r.registerConversationRoutes(api, conversationH, authRequired, requirePerm)
	r.registerRecordsRoutes(api, recordsH, authRequired, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
