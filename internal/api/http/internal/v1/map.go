package v1

import (
	"bytes"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/referendum-atlas/backend/pkg/logger"
)

func (h *Handler) initMapRoutes(api *gin.RouterGroup) {
	m := api.Group("/map")
	{
		m.GET("", h.getMap)
		m.GET("/features", h.getMapFeatures)
	}
}

// @Summary Get Map
// @Tags Map
// @Description Get the rendered choropleth of the Choice A share by region
// @ModuleID getMap
// @Produce  png
// @Success 200 {file} binary
// @Failure 500 {object} ErrorStruct
// @Router /map [get]
func (h *Handler) getMap(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.regionMap.PNG(&buf); err != nil {
		logger.Error("encode map failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

type mapFeatureResponse struct {
	CodeReg     string `json:"code_reg"`
	NameReg     string `json:"name_reg"`
	Registered  int64  `json:"registered"`
	Abstentions int64  `json:"abstentions"`
	Null        int64  `json:"null"`
	ChoiceA     int64  `json:"choice_a"`
	ChoiceB     int64  `json:"choice_b"`
	// Ratio is null when the region has no expressed votes.
	Ratio *float64 `json:"ratio"`
}

type mapFeaturesResponse struct {
	Features []mapFeatureResponse `json:"features"`
}

// @Summary Get Map Features
// @Tags Map
// @Description Get the merged geographic table behind the map, one row per region shape
// @ModuleID getMapFeatures
// @Accept  json
// @Produce  json
// @Success 200 {object} mapFeaturesResponse
// @Router /map/features [get]
func (h *Handler) getMapFeatures(c *gin.Context) {
	features := make([]mapFeatureResponse, 0, len(h.regionMap.Features))
	for _, f := range h.regionMap.Features {
		resp := mapFeatureResponse{
			CodeReg:     f.CodeReg,
			NameReg:     f.NameReg,
			Registered:  f.Registered,
			Abstentions: f.Abstentions,
			Null:        f.Null,
			ChoiceA:     f.ChoiceA,
			ChoiceB:     f.ChoiceB,
		}
		if !math.IsNaN(f.Ratio) {
			ratio := f.Ratio
			resp.Ratio = &ratio
		}
		features = append(features, resp)
	}

	c.JSON(http.StatusOK, mapFeaturesResponse{Features: features})
}
