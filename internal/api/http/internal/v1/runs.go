package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/referendum-atlas/backend/internal/domain"
	"github.com/referendum-atlas/backend/pkg/logger"
)

func (h *Handler) initRunsRoutes(api *gin.RouterGroup) {
	runs := api.Group("/runs")
	{
		runs.GET("", h.getRuns)
		runs.GET("/:id", h.getRunResults)
	}
}

type runResponse struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
	RegionCount int    `json:"region_count"`
	Registered  int64  `json:"registered"`
}

type runsResponse struct {
	Runs []runResponse `json:"runs"`
}

// @Summary Get Runs
// @Tags Runs
// @Description Get archived runs, newest first
// @ModuleID getRuns
// @Accept  json
// @Produce  json
// @Param limit query int false "number of runs to return (default 20, max 100)"
// @Success 200 {object} runsResponse
// @Failure 500 {object} ErrorStruct
// @Failure 503 {object} ErrorStruct
// @Router /runs [get]
func (h *Handler) getRuns(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	runs, err := h.services.Runs.History(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, domain.ErrStoreDisabled) {
			errorResponse(c, http.StatusServiceUnavailable, ArchiveDisabledCode)
			return
		}
		logger.Error("get runs failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]runResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, runResponse{
			ID:          run.ID.String(),
			CreatedAt:   run.CreatedAt.Format(time.RFC3339),
			RegionCount: run.RegionCount,
			Registered:  run.Registered,
		})
	}

	c.JSON(http.StatusOK, runsResponse{Runs: out})
}

// @Summary Get Run Results
// @Tags Runs
// @Description Get the stored per-region results of one archived run
// @ModuleID getRunResults
// @Accept  json
// @Produce  json
// @Param id path string true "run id"
// @Success 200 {object} []domain.RegionResult
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 503 {object} ErrorStruct
// @Router /runs/{id} [get]
func (h *Handler) getRunResults(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, InvalidRunIDCode)
		return
	}

	results, err := h.services.Runs.Results(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStoreDisabled):
			errorResponse(c, http.StatusServiceUnavailable, ArchiveDisabledCode)
		case errors.Is(err, domain.ErrNotFound):
			errorResponse(c, http.StatusNotFound, RunNotFoundCode)
		default:
			logger.Error("get run results failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, results)
}
