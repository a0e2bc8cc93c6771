package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"traveldna/internal/api/controllers"
	"traveldna/internal/config"
	"traveldna/pkg/middleware"
	"traveldna/pkg/utils"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	Logger         *zap.Logger
	Shell          *controllers.ShellController
	Quiz           *controllers.QuizController
	Recommendation *controllers.RecommendationController
	Catalog        *controllers.CatalogController
}

func NewRouter(p RouterParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(p.Config.Server.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		p.Logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})

	RegisterRoutes(r, p)
	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/", p.Shell.Index)
	r.GET("/health", p.Shell.Health)
	p.Shell.RegisterAssets(r)

	quizGroup := r.Group("/quiz")
	quizGroup.GET("/steps", p.Quiz.ListSteps)

	sessions := quizGroup.Group("/sessions")
	sessions.POST("", p.Quiz.OpenSession)
	sessions.GET("/:id", p.Quiz.GetSession)
	sessions.DELETE("/:id", p.Quiz.CloseSession)
	sessions.POST("/:id/select", p.Quiz.Select)
	sessions.POST("/:id/next", p.Quiz.Next)
	sessions.POST("/:id/back", p.Quiz.Back)
	sessions.POST("/:id/restart", p.Quiz.Restart)

	results := sessions.Group("/:id/recommendations")
	results.GET("", p.Recommendation.GetRecommendations)
	results.POST("/retry", p.Recommendation.Retry)
	results.POST("/select", p.Recommendation.SelectPackage)
	results.POST("/reset", p.Recommendation.ResetSelection)

	globeGroup := sessions.Group("/:id/globe")
	globeGroup.GET("", p.Recommendation.GetGlobe)
	globeGroup.POST("/click", p.Recommendation.ClickGlobe)
	globeGroup.POST("/resize", p.Recommendation.ResizeGlobe)
	globeGroup.POST("/reload", p.Recommendation.ReloadGlobe)

	packages := r.Group("/packages")
	packages.GET("/sample", p.Catalog.ListSamplePackages)
}
