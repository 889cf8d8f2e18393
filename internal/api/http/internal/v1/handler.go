package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/referendum-atlas/backend/internal/config"
	"github.com/referendum-atlas/backend/internal/domain"
	"github.com/referendum-atlas/backend/internal/render"
	"github.com/referendum-atlas/backend/internal/service"
)

// @title Referendum Atlas API
// @version 1.0
// @description Referendum results by French region: aggregated counts, the rendered choropleth and the run archive.

// @BasePath /api/v1

type Handler struct {
	services  *service.Services
	config    *config.Config
	report    *domain.Report
	regionMap *render.RegionMap
}

func NewHandler(
	services *service.Services,
	config *config.Config,
	report *domain.Report,
	regionMap *render.RegionMap,
) *Handler {
	return &Handler{
		services:  services,
		config:    config,
		report:    report,
		regionMap: regionMap,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initResultsRoutes(v1)
	h.initMapRoutes(v1)
	h.initRunsRoutes(v1)
}
