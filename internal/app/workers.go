package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/curaline/curaline_backend/internal/repo"
	entconv "github.com/curaline/curaline_backend/internal/repo/conversation"
	entmsg "github.com/curaline/curaline_backend/internal/repo/message"
	entnotif "github.com/curaline/curaline_backend/internal/repo/notification"
	"github.com/curaline/curaline_backend/internal/service/notification"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startMessageWorker(p.NC, p.DB, p.NotifSvc)
			startPushWorker(p.NC, p.DB, p.NotifSvc)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// message_worker
// ---------------------------------------------------------------------------

func startMessageWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service) {
	_, err := nc.Subscribe("curaline.message.new.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		convID, err := uuid.Parse(parts[3])
		if err != nil {
			return
		}

		msgID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		ctx := context.Background()

		conv, err := db.Conversation.Query().
			Where(entconv.ID(convID)).
			Only(ctx)
		if err != nil {
			slog.Warn("message_worker: conversation not found", "id", convID, "err", err)
			return
		}

		message, err := db.Message.Query().
			Where(entmsg.ID(msgID)).
			Only(ctx)
		if err != nil {
			slog.Warn("message_worker: message not found", "id", msgID, "err", err)
			return
		}

		recipientID := conv.DoctorID
		if conv.DoctorID == message.SenderID {
			recipientID = conv.PatientID
		}

		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: recipientID,
			Type:   "message_new",
			Title:  "New message",
		})
		if err != nil {
			slog.Warn("message_worker: create notification failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("message_worker: subscribe message.new failed", "err", err)
	}

	slog.Info("message_worker: started")
}

// ---------------------------------------------------------------------------
// push_worker
// ---------------------------------------------------------------------------

func startPushWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service) {
	deliver := func(userID uuid.UUID) {
		ctx := context.Background()

		pending, err := db.Notification.Query().
			Where(
				entnotif.UserID(userID),
				entnotif.IsPushed(false),
			).
			All(ctx)
		if err != nil {
			slog.Warn("push_worker: list pending failed", "user_id", userID, "err", err)
			return
		}

		for _, n := range pending {
			// Gateway delivery deferred: device token registration is not built yet,
			// so pending notifications are only marked as handed off.
			if err := notifSvc.MarkPushed(ctx, n.ID); err != nil {
				slog.Warn("push_worker: mark pushed failed", "id", n.ID, "err", err)
			}
		}

		if len(pending) > 0 {
			slog.Debug("push_worker: delivered", "user_id", userID, "count", len(pending))
		}
	}

	_, err := nc.Subscribe("curaline.conversation.updated.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		userID, err := uuid.Parse(parts[3])
		if err != nil {
			return
		}
		deliver(userID)
	})
	if err != nil {
		slog.Error("push_worker: subscribe conversation.updated failed", "err", err)
	}

	_, err = nc.Subscribe("curaline.appointment.*", func(msg *nats.Msg) {
		var payload struct {
			DoctorID  uuid.UUID `json:"doctor_id"`
			PatientID uuid.UUID `json:"patient_id"`
		}
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			return
		}
		deliver(payload.DoctorID)
		deliver(payload.PatientID)
	})
	if err != nil {
		slog.Error("push_worker: subscribe appointment events failed", "err", err)
	}

	slog.Info("push_worker: started")
}
