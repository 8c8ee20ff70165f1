package analytics_fx

import (
	"go.uber.org/fx"

	"memberclub/internal/services"
)

var Module = fx.Provide(
	services.NewAnalyticsService)
