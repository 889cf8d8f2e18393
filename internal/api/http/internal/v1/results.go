package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/referendum-atlas/backend/internal/domain"
)

func (h *Handler) initResultsRoutes(api *gin.RouterGroup) {
	results := api.Group("/results")
	{
		results.GET("", h.getResults)
		results.GET("/:code", h.getRegionResult)
	}
}

type resultsResponse struct {
	RunID       string                `json:"run_id"`
	GeneratedAt string                `json:"generated_at"`
	Results     []domain.RegionResult `json:"results"`
}

// @Summary Get Results
// @Tags Results
// @Description Get the current run's aggregated results, one row per region
// @ModuleID getResults
// @Accept  json
// @Produce  json
// @Success 200 {object} resultsResponse
// @Failure 500 {object} ErrorStruct
// @Router /results [get]
func (h *Handler) getResults(c *gin.Context) {
	c.JSON(http.StatusOK, resultsResponse{
		RunID:       h.report.RunID.String(),
		GeneratedAt: h.report.GeneratedAt.Format(time.RFC3339),
		Results:     h.report.Results,
	})
}

type regionResultRequest struct {
	Code string `uri:"code" binding:"required,regioncode"`
}

// @Summary Get Region Result
// @Tags Results
// @Description Get one region's aggregated result by region code
// @ModuleID getRegionResult
// @Accept  json
// @Produce  json
// @Param code path string true "region code"
// @Success 200 {object} domain.RegionResult
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /results/{code} [get]
func (h *Handler) getRegionResult(c *gin.Context) {
	var req regionResultRequest
	if err := c.ShouldBindUri(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	for _, res := range h.report.Results {
		if res.CodeReg == req.Code {
			c.JSON(http.StatusOK, res)
			return
		}
	}

	errorResponse(c, http.StatusNotFound, RegionNotFoundCode)
}
