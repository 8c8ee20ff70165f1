package subscriptions_fx

import (
	"go.uber.org/fx"

	"memberclub/internal/repositories"
	"memberclub/internal/services"
)

var Module = fx.Options(
	fx.Provide(repositories.NewSubscriptionRepository),
	fx.Provide(services.NewSubscriptionService))
