package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"traveldna/internal/models/request_models"
	"traveldna/internal/services"
	"traveldna/internal/travel"
	"traveldna/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListSamplePackages godoc
// @Summary Sample packages
// @Description Demo catalog ranked by personality, interests and budget
// @Tags Packages
// @Produce json
// @Param personality query string false "Personality"
// @Param budget_level query string false "Budget level"
// @Param interests query []string false "Interests" collectionFormat(multi)
// @Success 200 {object} utils.APIResponse
// @Router /packages/sample [get]
func (cc *CatalogController) ListSamplePackages(c *gin.Context) {
	var q request_models.SamplePackagesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	resp, err := cc.catalogService.SamplePackages(c.Request.Context(), travel.Preferences{
		Personality: q.Personality,
		BudgetLevel: q.BudgetLevel,
		Interests:   q.Interests,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Fetched sample packages successfully")
}
