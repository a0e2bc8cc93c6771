package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"traveldna/internal/config"
	"traveldna/internal/infra"
	"traveldna/internal/repositories"
)

var Module = fx.Provide(
	provideCatalogRepository)

// provideCatalogRepository uses postgres when POSTGRES_URL is set and keeps
// the catalog in memory otherwise.
func provideCatalogRepository(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (repositories.CatalogRepositoryInterface, error) {
	if cfg.Database.PostgresURL == "" {
		logger.Info("POSTGRES_URL not set, sample catalog kept in memory")
		return repositories.NewMemoryCatalogRepository(), nil
	}

	db, err := infra.InitPostgresql(cfg.Database.PostgresURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return repositories.NewCatalogRepository(db), nil
}
