package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labelscan/internal/config"
	"labelscan/internal/service"
)

// HealthHandler handles health check and informational endpoints.
type HealthHandler struct {
	svc       service.ExtractionService
	parserCfg *config.ParserConfig
	extCfg    *config.ExtractConfig
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(svc service.ExtractionService, parserCfg *config.ParserConfig, extCfg *config.ExtractConfig) *HealthHandler {
	return &HealthHandler{svc: svc, parserCfg: parserCfg, extCfg: extCfg}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Health handles GET /api/health
// @Summary Service health and configuration
// @Description Reports the configured model, credential status, OCR availability, and upload ceiling
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any "Health report"
// @Router /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"model":              h.parserCfg.DefaultModel,
		"api_key_configured": h.parserCfg.APIKey != "",
		"ocr_available":      h.svc.OCRAvailable(),
		"max_pdf_size_mb":    h.extCfg.MaxPDFSizeMB,
	})
}

// Root handles GET /
// @Summary API information
// @Description Static descriptive payload with the available endpoints
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any "API description"
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "PDF Allergen & Nutrition Extractor API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"extract": "POST /api/extract (upload PDF)",
			"health":  "GET /api/health",
		},
		"documentation": "/swagger/index.html",
	})
}
