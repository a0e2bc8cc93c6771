package catalog_fx

import (
	"context"

	"go.uber.org/fx"
	"traveldna/internal/api/controllers"
	"traveldna/internal/services"
)

var Module = fx.Options(
	fx.Provide(services.NewCatalogService),
	fx.Provide(controllers.NewCatalogController),
	fx.Invoke(seedCatalog),
)

func seedCatalog(lc fx.Lifecycle, catalog services.CatalogServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return catalog.Seed(ctx)
		},
	})
}
