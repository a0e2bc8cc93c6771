package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"traveldna/internal/models/request_models"
	"traveldna/internal/services"
	"traveldna/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

// GetRecommendations godoc
// @Summary Results view state
// @Description Loading flag, retryable error, mapped packages and the current selection
// @Tags Recommendations
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /quiz/sessions/{id}/recommendations [get]
func (rc *RecommendationController) GetRecommendations(c *gin.Context) {
	st, err := rc.recommendationService.Recommendations(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, st, "Fetched recommendations successfully")
}

func (rc *RecommendationController) Retry(c *gin.Context) {
	st, err := rc.recommendationService.Retry(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, st, "Retrying recommendations")
}

func (rc *RecommendationController) SelectPackage(c *gin.Context) {
	var req request_models.SelectPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "package_id is required")
		return
	}

	st, err := rc.recommendationService.SelectPackage(c.Param("id"), *req.PackageID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, st, "Package selected")
}

func (rc *RecommendationController) ResetSelection(c *gin.Context) {
	st, err := rc.recommendationService.ResetSelection(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, st, "Selection cleared")
}

// GetGlobe godoc
// @Summary Globe state
// @Description Renderer status and the scene snapshot the browser mirrors
// @Tags Globe
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /quiz/sessions/{id}/globe [get]
func (rc *RecommendationController) GetGlobe(c *gin.Context) {
	st, err := rc.recommendationService.Globe(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, st, "Fetched globe successfully")
}

func (rc *RecommendationController) ClickGlobe(c *gin.Context) {
	var req request_models.SelectPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "package_id is required")
		return
	}

	st, err := rc.recommendationService.ClickGlobe(c.Param("id"), *req.PackageID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, st, "Point selected")
}

func (rc *RecommendationController) ResizeGlobe(c *gin.Context) {
	var req request_models.GlobeResizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "width and height must be positive")
		return
	}

	st, err := rc.recommendationService.ResizeGlobe(c.Param("id"), req.Width, req.Height)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, st, "Globe resized")
}

func (rc *RecommendationController) ReloadGlobe(c *gin.Context) {
	st, err := rc.recommendationService.ReloadGlobe(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, st, "Globe reloaded")
}
