// Package pdftext acquires plain text from PDF documents. It tries the
// embedded text layer first and falls back to OCR for scanned documents.
package pdftext

import (
	"context"
	"log"
	"os/exec"
	"strings"

	"labelscan/internal/config"
	"labelscan/internal/domain"
)

// Extractor implements port.TextExtractor with a direct-then-OCR strategy.
type Extractor struct {
	cfg *config.ExtractConfig
}

// NewExtractor creates an Extractor from extraction config.
func NewExtractor(cfg *config.ExtractConfig) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract pulls text from the PDF at pdfPath. Direct text-layer extraction is
// attempted first; when it yields too little text, pages are rasterized and
// OCR'd. Stage failures are logged and degrade to an empty stage result, so
// the returned document is always usable (possibly with ModeEmpty).
func (e *Extractor) Extract(ctx context.Context, pdfPath string) (*domain.ExtractedDocument, error) {
	text, pages, err := e.extractDirect(pdfPath)
	if err != nil {
		log.Printf("pdftext.Extract: direct extraction error: %v", err)
		text = ""
	}

	if len(strings.TrimSpace(text)) > e.cfg.MinDirectChars {
		log.Printf("pdftext.Extract: extracted %d chars using direct method", len(text))
		return &domain.ExtractedDocument{RawText: text, PageCount: pages, Mode: domain.ModeDirect}, nil
	}

	log.Printf("pdftext.Extract: direct extraction insufficient, using OCR")
	text, pages, err = e.extractOCR(ctx, pdfPath)
	if err != nil {
		log.Printf("pdftext.Extract: OCR extraction error: %v", err)
		text = ""
	}

	if text != "" {
		log.Printf("pdftext.Extract: extracted %d chars using OCR", len(text))
		return &domain.ExtractedDocument{RawText: text, PageCount: pages, Mode: domain.ModeOCR}, nil
	}

	return &domain.ExtractedDocument{RawText: "", PageCount: pages, Mode: domain.ModeEmpty}, nil
}

// OCRAvailable reports whether the configured tesseract binary is on PATH.
func (e *Extractor) OCRAvailable() bool {
	_, err := exec.LookPath(e.cfg.TesseractPath)
	return err == nil
}
