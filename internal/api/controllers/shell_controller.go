package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"traveldna/internal/config"
	"traveldna/internal/services"
	"traveldna/pkg/utils"
	"traveldna/web"
)

// ShellController serves the landing page, its assets and the health probe.
type ShellController struct {
	sessions services.SessionStoreInterface
	cfg      *config.Config
}

func NewShellController(sessions services.SessionStoreInterface, cfg *config.Config) *ShellController {
	return &ShellController{
		sessions: sessions,
		cfg:      cfg,
	}
}

func (sc *ShellController) Index(c *gin.Context) {
	page, err := web.Index()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (sc *ShellController) RegisterAssets(r gin.IRoutes) {
	r.StaticFS("/assets", http.FS(web.Assets()))
}

func (sc *ShellController) Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"sessions": sc.sessions.Len(),
		"provider": sc.cfg.Recommendation.Provider,
	}, "ok")
}
