package contact

import (
	"context"

	"github.com/atriumhq/atrium_backend/config"
	"github.com/atriumhq/atrium_backend/pkg/email"
)

// smtpMailer is the production Mailer, backed by the shared SMTP client.
type smtpMailer struct {
	cli      *email.Client
	siteName string
}

func NewMailer(cli *email.Client, cfg config.ContactConfig) Mailer {
	return &smtpMailer{
		cli:      cli,
		siteName: cfg.SiteName,
	}
}

func (m *smtpMailer) SendInquiryReceived(ctx context.Context, to, subject string) (string, error) {
	return m.cli.Send(ctx, email.BuildInquiryReceivedEmail(email.InquiryEmailData{
		To:       to,
		Subject:  subject,
		SiteName: m.siteName,
	}))
}

func (m *smtpMailer) SendInquiryReply(ctx context.Context, to, subject, body string, headers map[string]string) (string, error) {
	return m.cli.Send(ctx, email.BuildInquiryReplyEmail(email.InquiryEmailData{
		To:       to,
		Subject:  subject,
		SiteName: m.siteName,
		Body:     body,
		Headers:  headers,
	}))
}
