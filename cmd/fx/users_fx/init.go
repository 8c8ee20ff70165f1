package users_fx

import (
	"go.uber.org/fx"

	"memberclub/internal/repositories"
	"memberclub/internal/services"
)

var Module = fx.Options(
	fx.Provide(repositories.NewUserRepository),
	fx.Provide(services.NewUserService))
