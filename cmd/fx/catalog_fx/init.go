package catalog_fx

import (
	"go.uber.org/fx"

	"memberclub/internal/repositories"
	"memberclub/internal/services"
)

var Module = fx.Options(
	fx.Provide(repositories.NewTierRepository),
	fx.Provide(repositories.NewPlanRepository),
	fx.Provide(services.NewCatalogService))
