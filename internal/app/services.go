package app

import (
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/atriumhq/atrium_backend/config"
	"github.com/atriumhq/atrium_backend/internal/repo"
	"github.com/atriumhq/atrium_backend/internal/service/blog"
	"github.com/atriumhq/atrium_backend/internal/service/contact"
	"github.com/atriumhq/atrium_backend/pkg/captcha"
	"github.com/atriumhq/atrium_backend/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideContactService,
		ProvideBlogService,
	),
)

func ProvideContactService(
	db *repo.Client,
	emailClient *email.Client,
	captchaCli *captcha.Client,
	nc *nats.Conn,
	cfg *config.Config,
) contact.Service {
	return contact.New(
		contact.NewEntStore(db),
		contact.NewMailer(emailClient, cfg.Contact),
		captchaCli,
		nc,
	)
}

func ProvideBlogService(db *repo.Client) blog.Service {
	return blog.New(db)
}
