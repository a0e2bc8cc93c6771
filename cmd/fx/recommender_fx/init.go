package recommender_fx

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"traveldna/internal/config"
	"traveldna/internal/services"
)

var Module = fx.Provide(ProvideRecommender)

// ProvideRecommender picks the recommendation backend from RECOMMENDER_PROVIDER.
func ProvideRecommender(
	lc fx.Lifecycle,
	cfg *config.Config,
	logger *zap.Logger,
	catalog services.CatalogServiceInterface,
) (services.RecommenderInterface, error) {
	provider := strings.ToLower(cfg.Recommendation.Provider)
	logger.Info("initializing recommender", zap.String("provider", provider))

	switch provider {
	case config.ProviderHTTP:
		return services.NewHTTPRecommender(cfg.Recommendation, logger), nil
	case config.ProviderOpenAI:
		return services.NewOpenAIRecommender(cfg.AI.OpenAIKey, cfg.AI.OpenAIModel, logger), nil
	case config.ProviderGemini:
		client, err := services.NewGeminiRecommender(context.Background(), cfg.AI.GeminiKey, cfg.AI.GeminiModel, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return client, nil
	case config.ProviderSample:
		return services.NewSampleRecommender(catalog), nil
	default:
		return nil, fmt.Errorf("unsupported recommender provider: %s. Use 'http', 'openai', 'gemini' or 'sample'", provider)
	}
}
