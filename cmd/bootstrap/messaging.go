package bootstrap

import (
	"context"
	"log/slog"

	"bookstore-api/internal/infra/messaging"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/config"
	"bookstore-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Invoke(StartOutboxRelay),
)

func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock) {
	if !cfg.Kafka.Enabled() {
		slog.Info("outbox relay disabled", "reason", "KAFKA_BROKERS not set")
		return
	}

	relay := messaging.NewOutboxRelay(uow, messaging.NewWriter(cfg.Kafka), clk, cfg.Outbox)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})
}
