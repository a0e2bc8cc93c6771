package quiz_fx

import (
	"go.uber.org/fx"
	"traveldna/internal/api/controllers"
	"traveldna/internal/globe"
	"traveldna/internal/services"
)

var Module = fx.Options(
	fx.Provide(globe.SceneFactory),
	fx.Provide(services.NewQuizService),
	fx.Provide(services.NewRecommendationService),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewRecommendationController),
)
