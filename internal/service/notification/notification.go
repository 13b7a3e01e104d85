package notification

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/curaline/curaline_backend/internal/repo"
	entnotif "github.com/curaline/curaline_backend/internal/repo/notification"
	"github.com/curaline/curaline_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	UserID        uuid.UUID
	AppointmentID *uuid.UUID
	Type          string
	Title         string
	Body          *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Notification, error)
	List(ctx context.Context, actor reqctx.Actor, unreadOnly bool, page, perPage int) ([]*repo.Notification, error)
	UnreadCount(ctx context.Context, actor reqctx.Actor) (int, error)
	MarkRead(ctx context.Context, actor reqctx.Actor, notifID uuid.UUID) error
	MarkAllRead(ctx context.Context, actor reqctx.Actor) error
	MarkPushed(ctx context.Context, notifID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notificationService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &notificationService{db: db}
}

func (s *notificationService) Create(ctx context.Context, req CreateRequest) (*repo.Notification, error) {
	c := s.db.Notification.Create().
		SetUserID(req.UserID).
		SetType(req.Type).
		SetTitle(req.Title)

	if req.AppointmentID != nil {
		c = c.SetAppointmentID(*req.AppointmentID)
	}
	if req.Body != nil {
		c = c.SetBody(*req.Body)
	}

	n, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *notificationService) List(ctx context.Context, actor reqctx.Actor, unreadOnly bool, page, perPage int) ([]*repo.Notification, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	q := s.db.Notification.Query().
		Where(entnotif.UserID(actor.UserID))

	if unreadOnly {
		q = q.Where(entnotif.IsRead(false))
	}

	notifs, err := q.
		Order(entnotif.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifs, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, actor reqctx.Actor) (int, error) {
	count, err := s.db.Notification.Query().
		Where(entnotif.UserID(actor.UserID), entnotif.IsRead(false)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, actor reqctx.Actor, notifID uuid.UUID) error {
	n, err := s.db.Notification.Query().
		Where(entnotif.ID(notifID), entnotif.UserID(actor.UserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get notification: %w", err)
	}

	return s.db.Notification.UpdateOne(n).
		SetIsRead(true).
		Exec(ctx)
}

func (s *notificationService) MarkAllRead(ctx context.Context, actor reqctx.Actor) error {
	return s.db.Notification.Update().
		Where(entnotif.UserID(actor.UserID), entnotif.IsRead(false)).
		SetIsRead(true).
		Exec(ctx)
}

// MarkPushed is called by the push worker after a successful delivery.
func (s *notificationService) MarkPushed(ctx context.Context, notifID uuid.UUID) error {
	return s.db.Notification.Update().
		Where(entnotif.ID(notifID)).
		SetIsPushed(true).
		Exec(ctx)
}
