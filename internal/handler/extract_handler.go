package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"labelscan/internal/config"
	"labelscan/internal/service"
)

// ExtractHandler handles the PDF extraction endpoint.
type ExtractHandler struct {
	svc service.ExtractionService
	cfg *config.ExtractConfig
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(svc service.ExtractionService, cfg *config.ExtractConfig) *ExtractHandler {
	return &ExtractHandler{svc: svc, cfg: cfg}
}

// Extract handles POST /api/extract
// @Summary Extract allergen and nutrition data from a PDF
// @Description Upload a food-label PDF and receive structured allergen and nutrition data
// @Tags extract
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF to process (application/pdf)"
// @Success 200 {object} domain.ExtractionResult "Structured extraction result"
// @Failure 400 {object} APIResponse "Missing file or wrong content type"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 500 {object} APIResponse "Processing failed"
// @Failure 504 {object} APIResponse "Model call timed out"
// @Router /api/extract [post]
func (h *ExtractHandler) Extract(c *gin.Context) {
	// Bound the body read before multipart parsing so an oversized upload
	// never buffers fully. One extra MB covers multipart framing; the
	// decoded-size check below stays authoritative for the ceiling itself.
	maxBytes := (h.cfg.MaxPDFSizeMB + 1) << 20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
				fmt.Sprintf("request body exceeds the %dMB upload limit", h.cfg.MaxPDFSizeMB))
			return
		}
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	if ct := header.Header.Get("Content-Type"); ct != "application/pdf" {
		RespondError(c, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE",
			fmt.Sprintf("invalid file type: %s; only PDF files are accepted", ct))
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	sizeMB := float64(len(fileBytes)) / (1024 * 1024)
	if sizeMB > float64(h.cfg.MaxPDFSizeMB) {
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
			fmt.Sprintf("file too large: %.1fMB; maximum size is %dMB", sizeMB, h.cfg.MaxPDFSizeMB))
		return
	}

	result, err := h.svc.Process(c.Request.Context(), fileBytes, header.Filename)
	if err != nil {
		HandleError(c, err)
		return
	}

	// The extraction response is the bare result shape, not the envelope.
	c.JSON(http.StatusOK, result)
}
