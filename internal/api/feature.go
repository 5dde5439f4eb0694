package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/platefit/platefit-v2/backend/internal/service"
)

// FeatureHandler exposes runtime feature toggles for operators.
type FeatureHandler struct {
	features service.IFeatureService
}

func NewFeatureHandler(features service.IFeatureService) *FeatureHandler {
	return &FeatureHandler{features: features}
}

func (h *FeatureHandler) RegisterRoutes(router *gin.RouterGroup) {
	features := router.Group("/features")
	{
		features.GET("/:name", h.GetFeature)
		features.PUT("/:name", h.SetFeature)
	}
}

func (h *FeatureHandler) GetFeature(c *gin.Context) {
	name := c.Param("name")
	c.JSON(http.StatusOK, gin.H{
		"name":    name,
		"enabled": h.features.IsEnabled(c.Request.Context(), name),
	})
}

type setFeatureRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *FeatureHandler) SetFeature(c *gin.Context) {
	name := c.Param("name")

	var req setFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.features.SetEnabled(c.Request.Context(), name, *req.Enabled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update feature"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":    name,
		"enabled": *req.Enabled,
	})
}
