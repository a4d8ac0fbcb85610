package app

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/atriumhq/atrium_backend/config"
	"github.com/atriumhq/atrium_backend/internal/repo"
	entinquiry "github.com/atriumhq/atrium_backend/internal/repo/inquiry"
	"github.com/atriumhq/atrium_backend/internal/service/contact"
	"github.com/atriumhq/atrium_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc    fx.Lifecycle
	NC    *nats.Conn
	DB    *repo.Client
	Email *email.Client
	Cfg   *config.Config
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startInquiryWorker(p.NC, p.DB, p.Email, p.Cfg.Contact)
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// inquiry_worker
// ---------------------------------------------------------------------------

// startInquiryWorker emails staff about each new inquiry. It runs off the
// event bus so a slow SMTP server never delays the submitting visitor.
func startInquiryWorker(nc *nats.Conn, db *repo.Client, emailCli *email.Client, cfg config.ContactConfig) {
	if cfg.NotifyRecipient == "" {
		slog.Info("inquiry_worker: no notify recipient configured, skipping")
		return
	}

	_, err := nc.Subscribe(contact.SubjectInquiryCreated, func(msg *nats.Msg) {
		var event struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			slog.Warn("inquiry_worker: bad event payload", "err", err)
			return
		}
		inquiryID, err := uuid.Parse(event.ID)
		if err != nil {
			slog.Warn("inquiry_worker: bad inquiry id", "id", event.ID)
			return
		}

		ctx := context.Background()

		inq, err := db.Inquiry.Query().
			Where(entinquiry.ID(inquiryID)).
			Only(ctx)
		if err != nil {
			slog.Warn("inquiry_worker: inquiry not found", "id", event.ID, "err", err)
			return
		}

		_, err = emailCli.Send(ctx, email.BuildInquiryNotificationEmail(email.InquiryEmailData{
			To:        cfg.NotifyRecipient,
			Subject:   inq.Subject,
			SiteName:  cfg.SiteName,
			Body:      inq.Message,
			Submitter: inq.Email,
		}))
		if err != nil {
			slog.Warn("inquiry_worker: staff notification failed", "inquiry_id", inq.ID, "err", err)
		}
	})
	if err != nil {
		slog.Error("inquiry_worker: subscribe failed", "err", err)
		return
	}

	slog.Info("inquiry_worker: started")
}
