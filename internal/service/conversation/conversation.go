package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/curaline/curaline_backend/internal/repo"
	entconv "github.com/curaline/curaline_backend/internal/repo/conversation"
	entmsg "github.com/curaline/curaline_backend/internal/repo/message"
	entaudit "github.com/curaline/curaline_backend/internal/repo/messageauditlog"
	entreceipt "github.com/curaline/curaline_backend/internal/repo/messagereadreceipt"
	"github.com/curaline/curaline_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListMessagesRequest struct {
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetOrCreate(ctx context.Context, actor reqctx.Actor, otherUserID uuid.UUID) (*repo.Conversation, error)
	List(ctx context.Context, actor reqctx.Actor, page, perPage int) ([]*repo.Conversation, error)
	GetByID(ctx context.Context, actor reqctx.Actor, convID uuid.UUID) (*repo.Conversation, error)
	ListMessages(ctx context.Context, actor reqctx.Actor, convID uuid.UUID, req ListMessagesRequest) ([]*repo.Message, error)
	SendMessage(ctx context.Context, actor reqctx.Actor, convID uuid.UUID, content string) (*repo.Message, error)
	MarkAsRead(ctx context.Context, actor reqctx.Actor, convID uuid.UUID, messageIDs []uuid.UUID) error
	TogglePin(ctx context.Context, actor reqctx.Actor, convID, messageID uuid.UUID) (*repo.Message, error)
	DeleteMessage(ctx context.Context, actor reqctx.Actor, convID, messageID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type conversationService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &conversationService{db: db, nc: nc}
}

func (s *conversationService) GetOrCreate(ctx context.Context, actor reqctx.Actor, otherUserID uuid.UUID) (*repo.Conversation, error) {
	var doctorID, patientID uuid.UUID
	switch {
	case actor.IsDoctor():
		doctorID, patientID = actor.UserID, otherUserID
	case actor.IsPatient():
		doctorID, patientID = otherUserID, actor.UserID
	default:
		return nil, ErrForbidden
	}

	conv, err := s.db.Conversation.Query().
		Where(
			entconv.DoctorID(doctorID),
			entconv.PatientID(patientID),
		).
		Only(ctx)
	if err == nil {
		return conv, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	conv, err = s.db.Conversation.Create().
		SetDoctorID(doctorID).
		SetPatientID(patientID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return conv, nil
}

func (s *conversationService) List(ctx context.Context, actor reqctx.Actor, page, perPage int) ([]*repo.Conversation, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	convs, err := s.db.Conversation.Query().
		Where(
			entconv.Or(
				entconv.DoctorID(actor.UserID),
				entconv.PatientID(actor.UserID),
			),
		).
		Order(entconv.ByLastMessageAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

func (s *conversationService) GetByID(ctx context.Context, actor reqctx.Actor, convID uuid.UUID) (*repo.Conversation, error) {
	conv, err := s.db.Conversation.Query().
		Where(entconv.ID(convID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	if !actor.IsAdmin() && !actor.Is(conv.DoctorID) && !actor.Is(conv.PatientID) {
		return nil, ErrNotParticipant
	}
	return conv, nil
}

func (s *conversationService) ListMessages(ctx context.Context, actor reqctx.Actor, convID uuid.UUID, req ListMessagesRequest) ([]*repo.Message, error) {
	if _, err := s.GetByID(ctx, actor, convID); err != nil {
		return nil, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 50
	}
	offset := (req.Page - 1) * req.PerPage

	msgs, err := s.db.Message.Query().
		Where(
			entmsg.ConversationID(convID),
			entmsg.DeletedAtIsNil(),
		).
		Order(entmsg.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (s *conversationService) SendMessage(ctx context.Context, actor reqctx.Actor, convID uuid.UUID, content string) (*repo.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}

	conv, err := s.GetByID(ctx, actor, convID)
	if err != nil {
		return nil, err
	}

	msg, err := s.db.Message.Create().
		SetConversationID(convID).
		SetSenderID(actor.UserID).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	_ = s.db.Conversation.Update().
		Where(entconv.ID(convID)).
		SetLastMessageAt(msg.CreatedAt).
		Exec(ctx)

	s.audit(ctx, convID, &msg.ID, actor.UserID, entaudit.ActionCreate)

	if s.nc != nil {
		subject := fmt.Sprintf("curaline.message.new.%s", convID.String())
		_ = s.nc.Publish(subject, []byte(msg.ID.String()))

		recipient := conv.DoctorID
		if actor.Is(conv.DoctorID) {
			recipient = conv.PatientID
		}
		_ = s.nc.Publish(fmt.Sprintf("curaline.conversation.updated.%s", recipient.String()), []byte(convID.String()))
	}

	return msg, nil
}

func (s *conversationService) MarkAsRead(ctx context.Context, actor reqctx.Actor, convID uuid.UUID, messageIDs []uuid.UUID) error {
	if _, err := s.GetByID(ctx, actor, convID); err != nil {
		return err
	}
	if len(messageIDs) == 0 {
		return nil
	}

	// Only messages from the other side can be marked read.
	msgs, err := s.db.Message.Query().
		Where(
			entmsg.IDIn(messageIDs...),
			entmsg.ConversationID(convID),
			entmsg.SenderIDNEQ(actor.UserID),
			entmsg.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}

	now := time.Now()
	for _, msg := range msgs {
		if !msg.IsRead {
			if err := s.db.Message.UpdateOne(msg).
				SetIsRead(true).
				SetReadAt(now).
				Exec(ctx); err != nil {
				return fmt.Errorf("mark message read: %w", err)
			}
		}

		exists, err := s.db.MessageReadReceipt.Query().
			Where(
				entreceipt.MessageID(msg.ID),
				entreceipt.ReaderID(actor.UserID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check read receipt: %w", err)
		}
		if !exists {
			if err := s.db.MessageReadReceipt.Create().
				SetMessageID(msg.ID).
				SetReaderID(actor.UserID).
				Exec(ctx); err != nil {
				return fmt.Errorf("create read receipt: %w", err)
			}
			s.audit(ctx, convID, &msg.ID, actor.UserID, entaudit.ActionRead)
		}
	}
	return nil
}

func (s *conversationService) TogglePin(ctx context.Context, actor reqctx.Actor, convID, messageID uuid.UUID) (*repo.Message, error) {
	conv, err := s.GetByID(ctx, actor, convID)
	if err != nil {
		return nil, err
	}
	// Pinning is a doctor-side moderation tool.
	if !actor.IsAdmin() && !(actor.IsDoctor() && actor.Is(conv.DoctorID)) {
		return nil, ErrForbidden
	}

	msg, err := s.getMessage(ctx, convID, messageID)
	if err != nil {
		return nil, err
	}

	updated, err := s.db.Message.UpdateOne(msg).
		SetIsPinned(!msg.IsPinned).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("toggle pin: %w", err)
	}

	action := entaudit.ActionPin
	if !updated.IsPinned {
		action = entaudit.ActionUnpin
	}
	s.audit(ctx, convID, &msg.ID, actor.UserID, action)

	return updated, nil
}

func (s *conversationService) DeleteMessage(ctx context.Context, actor reqctx.Actor, convID, messageID uuid.UUID) error {
	if _, err := s.GetByID(ctx, actor, convID); err != nil {
		return err
	}

	msg, err := s.getMessage(ctx, convID, messageID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && !actor.Is(msg.SenderID) {
		return ErrForbidden
	}

	if err := s.db.Message.UpdateOne(msg).
		SetDeletedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}

	s.audit(ctx, convID, &msg.ID, actor.UserID, entaudit.ActionDelete)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *conversationService) getMessage(ctx context.Context, convID, messageID uuid.UUID) (*repo.Message, error) {
	msg, err := s.db.Message.Query().
		Where(
			entmsg.ID(messageID),
			entmsg.ConversationID(convID),
			entmsg.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("get message: %w", err)
	}
	return msg, nil
}

// audit appends a row to the message audit log. Audit failures never fail
// the user-facing operation.
func (s *conversationService) audit(ctx context.Context, convID uuid.UUID, messageID *uuid.UUID, actorID uuid.UUID, action entaudit.Action) {
	c := s.db.MessageAuditLog.Create().
		SetConversationID(convID).
		SetActorID(actorID).
		SetAction(action)
	if messageID != nil {
		c = c.SetMessageID(*messageID)
	}
	_ = c.Exec(ctx)
}
