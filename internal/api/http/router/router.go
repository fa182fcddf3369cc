package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/govently/govently_backend/config"
	"github.com/govently/govently_backend/internal/api/http/handler"
	"github.com/govently/govently_backend/internal/api/http/middleware"
	"github.com/govently/govently_backend/internal/repo"
	entuser "github.com/govently/govently_backend/internal/repo/user"
	"github.com/govently/govently_backend/internal/service/appointment"
	"github.com/govently/govently_backend/internal/service/assessment"
	"github.com/govently/govently_backend/internal/service/matchmaking"
	"github.com/govently/govently_backend/internal/service/scheduling"
	"github.com/govently/govently_backend/internal/service/therapist"
	pasetotoken "github.com/govently/govently_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Redis          *redis.Client
	DB             *repo.Client
	AssessmentSvc  assessment.Service
	TherapistSvc   therapist.Service
	MatchmakingSvc matchmaking.Service
	SchedulingSvc  scheduling.Service
	AppointmentSvc appointment.Service
	PasetoMgr      *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	therapistOnly := middleware.RequireRole(r.p.DB, entuser.RoleTherapist)
	adminOnly := middleware.RequireRole(r.p.DB, entuser.RoleAdmin)

	assessmentH := handler.NewAssessmentHandler(r.p.AssessmentSvc)
	therapistH := handler.NewTherapistHandler(r.p.TherapistSvc)
	matchingH := handler.NewMatchingHandler(r.p.MatchmakingSvc)
	scheduleH := handler.NewScheduleHandler(r.p.SchedulingSvc, r.p.TherapistSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc, r.p.TherapistSvc)

	api := app.Group("/api/v1")

	r.registerAssessmentRoutes(api, assessmentH, authRequired)
	r.registerTherapistRoutes(api, therapistH, scheduleH, authRequired, therapistOnly, adminOnly)
	r.registerMatchingRoutes(api, matchingH, authRequired)
	r.registerScheduleRoutes(api, scheduleH, authRequired, therapistOnly)
	r.registerAppointmentRoutes(api, appointmentH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			return r.p.Redis.Ping(c.Context()).Err() == nil
		},
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
