package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/curaline/curaline_backend/internal/service/conversation"
)

type ConversationHandler struct {
	svc conversation.Service
}

func NewConversationHandler(svc conversation.Service) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

func mapConversationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, conversation.ErrNotFound),
		errors.Is(err, conversation.ErrMessageNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, conversation.ErrNotParticipant),
		errors.Is(err, conversation.ErrForbidden):
		return forbidden(c)
	case errors.Is(err, conversation.ErrEmptyMessage):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /conversations
func (h *ConversationHandler) GetOrCreate(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	var body struct {
		UserID string `json:"user_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	otherID, err := uuid.Parse(body.UserID)
	if err != nil {
		return badRequest(c, "invalid user_id")
	}

	conv, err := h.svc.GetOrCreate(c.Context(), actor, otherID)
	if err != nil {
		return mapConversationError(c, err)
	}
	return ok(c, conv)
}

// GET /conversations
func (h *ConversationHandler) List(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	convs, err := h.svc.List(c.Context(), actor, q.Page, q.PerPage)
	if err != nil {
		return mapConversationError(c, err)
	}
	return ok(c, convs)
}

// GET /conversations/:id
func (h *ConversationHandler) GetByID(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid conversation id")
	}

	conv, err := h.svc.GetByID(c.Context(), actor, convID)
	if err != nil {
		return mapConversationError(c, err)
	}
	return ok(c, conv)
}

// GET /conversations/:id/messages
func (h *ConversationHandler) ListMessages(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid conversation id")
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	msgs, err := h.svc.ListMessages(c.Context(), actor, convID, conversation.ListMessagesRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return mapConversationError(c, err)
	}
	return ok(c, msgs)
}

// POST /conversations/:id/messages
func (h *ConversationHandler) SendMessage(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid conversation id")
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	msg, err := h.svc.SendMessage(c.Context(), actor, convID, body.Content)
	if err != nil {
		return mapConversationError(c, err)
	}
	return created(c, msg)
}

// POST /conversations/:id/read
func (h *ConversationHandler) MarkAsRead(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid conversation id")
	}

	var body struct {
		MessageIDs []string `json:"message_ids"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	ids := make([]uuid.UUID, 0, len(body.MessageIDs))
	for _, raw := range body.MessageIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid message id: "+raw)
		}
		ids = append(ids, id)
	}

	if err := h.svc.MarkAsRead(c.Context(), actor, convID, ids); err != nil {
		return mapConversationError(c, err)
	}
	return noContent(c)
}

// POST /conversations/:id/messages/:messageId/pin
func (h *ConversationHandler) TogglePin(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid conversation id")
	}
	messageID, err := uuid.Parse(c.Params("messageId"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	msg, err := h.svc.TogglePin(c.Context(), actor, convID, messageID)
	if err != nil {
		return mapConversationError(c, err)
	}
	return ok(c, msg)
}

// DELETE /conversations/:id/messages/:messageId
func (h *ConversationHandler) DeleteMessage(c fiber.Ctx) error {
	actor, found := actorFromCtx(c)
	if !found {
		return unauthorized(c)
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid conversation id")
	}
	messageID, err := uuid.Parse(c.Params("messageId"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	if err := h.svc.DeleteMessage(c.Context(), actor, convID, messageID); err != nil {
		return mapConversationError(c, err)
	}
	return noContent(c)
}
