package app

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/govently/govently_backend/config"
	svcassessment "github.com/govently/govently_backend/internal/service/assessment"
	"github.com/govently/govently_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc     fx.Lifecycle
	NC     *nats.Conn
	Mailer *email.Client
	Cfg    *config.Config
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startCrisisWorker(p.NC, p.Mailer, p.Cfg)
			startAuditWorker(p.NC)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// crisis_worker
// ---------------------------------------------------------------------------

// startCrisisWorker turns suicide-risk events into clinical alert
// emails. Delivery failures are logged, never retried here; the
// on-call team also sees the risk flag on the stored assessment.
func startCrisisWorker(nc *nats.Conn, mailer *email.Client, cfg *config.Config) {
	_, err := nc.Subscribe("govently.assessment.suicide_risk.*", func(msg *nats.Msg) {
		var ev svcassessment.SuicideRiskEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Error("crisis worker: bad payload", "subject", msg.Subject, "error", err)
			return
		}

		if len(cfg.Clinical.CrisisAlertRecipients) == 0 {
			slog.Warn("crisis worker: no alert recipients configured", "user_id", ev.UserID)
			return
		}

		m := email.BuildCrisisAlertEmail(email.CrisisAlertData{
			Recipients:   cfg.Clinical.CrisisAlertRecipients,
			UserID:       ev.UserID,
			AssessmentID: ev.AssessmentID,
			RiskLevel:    ev.RiskLevel,
			PHQ9Score:    ev.PHQ9Score,
			GAD7Score:    ev.GAD7Score,
			IndicatedAt:  ev.IndicatedAt,
		})

		if err := mailer.Send(context.Background(), m); err != nil {
			slog.Error("crisis worker: send alert", "user_id", ev.UserID, "error", err)
		}
	})
	if err != nil {
		slog.Error("crisis worker: subscribe failed", "error", err)
	}
}

// ---------------------------------------------------------------------------
// audit_worker
// ---------------------------------------------------------------------------

// startAuditWorker logs assessment lifecycle events for the clinical
// audit trail.
func startAuditWorker(nc *nats.Conn) {
	_, err := nc.Subscribe("govently.assessment.started.*", func(msg *nats.Msg) {
		var ev struct {
			UserID       string `json:"user_id"`
			AssessmentID string `json:"assessment_id"`
		}
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Error("audit worker: bad payload", "subject", msg.Subject, "error", err)
			return
		}
		slog.Info("assessment started", "user_id", ev.UserID, "assessment_id", ev.AssessmentID)
	})
	if err != nil {
		slog.Error("audit worker: subscribe failed", "error", err)
	}
}
