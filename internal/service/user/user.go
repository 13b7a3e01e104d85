package user

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/curaline/curaline_backend/internal/repo"
	entcred "github.com/curaline/curaline_backend/internal/repo/calendarcredential"
	entuser "github.com/curaline/curaline_backend/internal/repo/user"
	"github.com/curaline/curaline_backend/pkg/calendar"
	"github.com/curaline/curaline_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListDoctorsRequest struct {
	Specialty *string
	Search    *string
	Page      int
	PerPage   int
}

type DoctorPage struct {
	Items   []*repo.User
	Total   int
	Page    int
	PerPage int
}

type UpdateProfileRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Specialty *string
	Bio       *string
}

type ConnectCalendarRequest struct {
	Code        string
	RedirectURI string
}

// CalendarStatus reports whether a doctor has a linked calendar without
// exposing the stored token.
type CalendarStatus struct {
	Connected     bool
	Provider      string
	ProviderEmail string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	ListDoctors(ctx context.Context, req ListDoctorsRequest) (*DoctorPage, error)
	UpdateProfile(ctx context.Context, actor reqctx.Actor, req UpdateProfileRequest) (*repo.User, error)

	ConnectCalendar(ctx context.Context, actor reqctx.Actor, req ConnectCalendarRequest) (*CalendarStatus, error)
	DisconnectCalendar(ctx context.Context, actor reqctx.Actor) error
	GetCalendarStatus(ctx context.Context, actor reqctx.Actor) (*CalendarStatus, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db  *repo.Client
	cal *calendar.Client
}

func New(db *repo.Client, cal *calendar.Client) Service {
	return &userService{db: db, cal: cal}
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) ListDoctors(ctx context.Context, req ListDoctorsRequest) (*DoctorPage, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.User.Query().
		Where(
			entuser.RoleEQ(entuser.RoleDoctor),
			entuser.StatusEQ(entuser.StatusACTIVE),
			entuser.DeletedAtIsNil(),
		)

	if req.Specialty != nil {
		q = q.Where(entuser.SpecialtyEqualFold(*req.Specialty))
	}
	if req.Search != nil {
		q = q.Where(
			entuser.Or(
				entuser.FirstNameContainsFold(*req.Search),
				entuser.LastNameContainsFold(*req.Search),
			),
		)
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count doctors: %w", err)
	}

	doctors, err := q.
		Order(entuser.ByAverageRating(sql.OrderDesc()), entuser.ByRatingCount(sql.OrderDesc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	return &DoctorPage{Items: doctors, Total: total, Page: req.Page, PerPage: req.PerPage}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor reqctx.Actor, req UpdateProfileRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)
	if req.FirstName != nil {
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Phone != nil {
		upd = upd.SetPhone(*req.Phone)
	}
	// Specialty and bio only make sense on a doctor profile.
	if actor.IsDoctor() {
		if req.Specialty != nil {
			upd = upd.SetSpecialty(*req.Specialty)
		}
		if req.Bio != nil {
			upd = upd.SetBio(*req.Bio)
		}
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Calendar credentials
// ---------------------------------------------------------------------------

func (s *userService) ConnectCalendar(ctx context.Context, actor reqctx.Actor, req ConnectCalendarRequest) (*CalendarStatus, error) {
	if !actor.IsDoctor() {
		return nil, ErrForbidden
	}

	token, err := s.cal.Exchange(ctx, req.Code, req.RedirectURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCalendarExchange, err)
	}
	if token.RefreshToken == "" {
		return nil, ErrCalendarExchange
	}

	existing, err := s.db.CalendarCredential.Query().
		Where(entcred.DoctorID(actor.UserID)).
		Only(ctx)
	switch {
	case err == nil:
		if err := s.db.CalendarCredential.UpdateOne(existing).
			SetRefreshToken(token.RefreshToken).
			SetUpdatedAt(time.Now()).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("update calendar credential: %w", err)
		}
	case repo.IsNotFound(err):
		if err := s.db.CalendarCredential.Create().
			SetDoctorID(actor.UserID).
			SetRefreshToken(token.RefreshToken).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("create calendar credential: %w", err)
		}
	default:
		return nil, fmt.Errorf("get calendar credential: %w", err)
	}

	return s.GetCalendarStatus(ctx, actor)
}

func (s *userService) DisconnectCalendar(ctx context.Context, actor reqctx.Actor) error {
	deleted, err := s.db.CalendarCredential.Delete().
		Where(entcred.DoctorID(actor.UserID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete calendar credential: %w", err)
	}
	if deleted == 0 {
		return ErrCalendarNotConnected
	}
	return nil
}

func (s *userService) GetCalendarStatus(ctx context.Context, actor reqctx.Actor) (*CalendarStatus, error) {
	cred, err := s.db.CalendarCredential.Query().
		Where(entcred.DoctorID(actor.UserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return &CalendarStatus{Connected: false}, nil
		}
		return nil, fmt.Errorf("get calendar credential: %w", err)
	}

	status := &CalendarStatus{Connected: true, Provider: cred.Provider}
	if cred.ProviderEmail != nil {
		status.ProviderEmail = *cred.ProviderEmail
	}
	return status, nil
}
