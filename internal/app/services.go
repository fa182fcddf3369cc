package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/govently/govently_backend/config"
	"github.com/govently/govently_backend/internal/repo"
	"github.com/govently/govently_backend/internal/service/appointment"
	svcassessment "github.com/govently/govently_backend/internal/service/assessment"
	"github.com/govently/govently_backend/internal/service/matchmaking"
	"github.com/govently/govently_backend/internal/service/scheduling"
	"github.com/govently/govently_backend/internal/service/therapist"
	"github.com/govently/govently_backend/pkg/email"
	pasetotoken "github.com/govently/govently_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAssessmentService,
		ProvideTherapistService,
		ProvideMatchmakingService,
		ProvideSchedulingService,
		ProvideAppointmentService,
		ProvidePasetoManager,
	),
)

func ProvideAssessmentService(db *repo.Client, nc *nats.Conn, mailer *email.Client, cfg *config.Config) svcassessment.Service {
	return svcassessment.New(db, nc, mailer, cfg)
}

func ProvideTherapistService(db *repo.Client, rdb *redis.Client) therapist.Service {
	return therapist.New(db, rdb)
}

func ProvideMatchmakingService(db *repo.Client, assess svcassessment.Service, therapists therapist.Service) matchmaking.Service {
	return matchmaking.New(db, assess, therapists)
}

func ProvideSchedulingService(db *repo.Client) scheduling.Service {
	return scheduling.New(db)
}

func ProvideAppointmentService(db *repo.Client) appointment.Service {
	return appointment.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
