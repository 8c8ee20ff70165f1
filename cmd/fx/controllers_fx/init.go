package controllers_fx

import (
	"go.uber.org/fx"

	"memberclub/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewMembershipController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewAnalyticsController))
