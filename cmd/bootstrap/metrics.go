package bootstrap

import (
	"bookstore-api/internal/pkg/config"
	"bookstore-api/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		func(cfg config.Config) *metrics.ServerMetrics {
			return metrics.NewServerMetrics(cfg.Server.ServiceName)
		},
	),
)
