package app

import (
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/curaline/curaline_backend/config"
	"github.com/curaline/curaline_backend/internal/repo"
	"github.com/curaline/curaline_backend/internal/service/appointment"
	"github.com/curaline/curaline_backend/internal/service/availability"
	"github.com/curaline/curaline_backend/internal/service/conversation"
	"github.com/curaline/curaline_backend/internal/service/notification"
	"github.com/curaline/curaline_backend/internal/service/rating"
	"github.com/curaline/curaline_backend/internal/service/records"
	"github.com/curaline/curaline_backend/internal/service/user"
	"github.com/curaline/curaline_backend/pkg/calendar"
	"github.com/curaline/curaline_backend/pkg/email"
	pasetotoken "github.com/curaline/curaline_backend/pkg/paseto"
)

// ServiceModule provides all domain services.
var ServiceModule = fx.Module("services",
	fx.Provide(ProvideAvailabilityService),
	fx.Provide(ProvideAppointmentService),
	fx.Provide(ProvideRatingService),
	fx.Provide(ProvideConversationService),
	fx.Provide(ProvideRecordsService),
	fx.Provide(ProvideNotificationService),
	fx.Provide(ProvideUserService),
	fx.Provide(ProvidePasetoManager),
)

func ProvideAvailabilityService(db *repo.Client) availability.Service {
	return availability.New(db)
}

func ProvideAppointmentService(db *repo.Client, mailer *email.Client, cal *calendar.Client, nc *nats.Conn) appointment.Service {
	return appointment.New(db, mailer, cal, nc)
}

func ProvideRatingService(db *repo.Client) rating.Service {
	return rating.New(db)
}

func ProvideConversationService(db *repo.Client, nc *nats.Conn) conversation.Service {
	return conversation.New(db, nc)
}

func ProvideRecordsService(db *repo.Client) records.Service {
	return records.New(db)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvideUserService(db *repo.Client, cal *calendar.Client) user.Service {
	return user.New(db, cal)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
