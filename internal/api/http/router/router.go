package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/atriumhq/atrium_backend/config"
	"github.com/atriumhq/atrium_backend/internal/api/http/handler"
	"github.com/atriumhq/atrium_backend/internal/api/http/middleware"
	"github.com/atriumhq/atrium_backend/internal/service/blog"
	"github.com/atriumhq/atrium_backend/internal/service/contact"
	"github.com/atriumhq/atrium_backend/pkg/database"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Redis      *redis.Client
	DB         *database.DB
	ContactSvc contact.Service
	BlogSvc    blog.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	adminRequired := middleware.AdminRequired(r.p.Cfg.Server.AdminToken)
	submitLimiter := middleware.NewLimiterWithRedis(r.p.Redis)

	contactH := handler.NewContactHandler(r.p.ContactSvc)
	inquiryH := handler.NewInquiryHandler(r.p.ContactSvc)
	blogH := handler.NewBlogHandler(r.p.BlogSvc)
	blogAdminH := handler.NewBlogAdminHandler(r.p.BlogSvc)

	api := app.Group("/api/v1")

	r.registerContactRoutes(api, contactH, submitLimiter)
	r.registerBlogRoutes(api, blogH)

	admin := api.Group("/admin", adminRequired)
	r.registerInquiryRoutes(admin, inquiryH)
	r.registerBlogAdminRoutes(admin, blogAdminH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return r.p.DB.Ping() == nil },
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
