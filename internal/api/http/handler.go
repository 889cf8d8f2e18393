package apiHttp

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/referendum-atlas/backend/docs"
	"github.com/referendum-atlas/backend/pkg/limiter"
	"github.com/referendum-atlas/backend/pkg/logger"
	"github.com/referendum-atlas/backend/pkg/validator"

	internalV1 "github.com/referendum-atlas/backend/internal/api/http/internal/v1"
	"github.com/referendum-atlas/backend/internal/config"
	"github.com/referendum-atlas/backend/internal/domain"
	"github.com/referendum-atlas/backend/internal/render"
	"github.com/referendum-atlas/backend/internal/service"

	"github.com/gin-gonic/gin"
)

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Referendum Atlas</title>
</head>
<body>
  <h1>Referendum results by region</h1>
  <img src="/api/v1/map" alt="Choropleth of the Choice A share by region">
  <p>
    <a href="/api/v1/results">results</a> |
    <a href="/api/v1/map/features">map features</a> |
    <a href="/api/v1/runs">runs</a>
  </p>
</body>
</html>
`

type Handler struct {
	services  *service.Services
	config    *config.Config
	report    *domain.Report
	regionMap *render.RegionMap
}

func NewHandlers(
	services *service.Services,
	cfg *config.Config,
	report *domain.Report,
	regionMap *render.RegionMap,
) *Handler {
	return &Handler{
		services:  services,
		config:    cfg,
		report:    report,
		regionMap: regionMap,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware,
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
	})

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services, h.config, h.report, h.regionMap)
	api := router.Group("/api")
	internalHandlersV1.Init(api)
}
